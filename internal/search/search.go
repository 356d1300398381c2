//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package search implements iterative-deepening negamax with alpha-beta
// pruning, quiescence search and the move-ordering/repetition machinery
// described for this engine. It is strictly single-threaded: all
// recursion runs depth-first on one Position via Do/UndoMove, the only
// concurrency being the goroutine StartSearch launches so the caller
// gets control back immediately and a cooperative timer that flips a
// stop flag the recursion polls.
package search

import (
	"context"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/op/go-logging"

	"github.com/eligolfer91/endamat-chess/internal/config"
	"github.com/eligolfer91/endamat-chess/internal/evaluator"
	"github.com/eligolfer91/endamat-chess/internal/history"
	myLogging "github.com/eligolfer91/endamat-chess/internal/logging"
	"github.com/eligolfer91/endamat-chess/internal/moveslice"
	"github.com/eligolfer91/endamat-chess/internal/position"
	. "github.com/eligolfer91/endamat-chess/internal/types"
	"github.com/eligolfer91/endamat-chess/internal/util"
)

var out = message.NewPrinter(language.German)

// aspirationWindow is the half-width of the window iterative deepening
// opens around the previous iteration's score, in centipawns.
const aspirationWindow = 50

// nullMoveReduction is R in the null-move pruning condition
// depth-1-R >= 0. Mirrored by config.Settings.Search.NmpReduction so it
// can be retuned without a rebuild; this constant documents the
// default.
const nullMoveReduction = 2

// deltaMargin is the quiescence delta-pruning margin: roughly a queen's
// worth of material plus change.
const deltaMargin = Value(975)

// checkTimeoutNodes is how often (in visited nodes) the searcher polls
// the deadline: tight under 5s budgets, relaxed for 5-10s budgets where
// poll overhead starts to show, back to the default beyond that.
const (
	checkTimeoutDefault = 2000
	checkTimeoutLong    = 12000
	checkTimeoutShort   = 800
)

// Search runs iterative-deepening negamax over a single Position. One
// Search instance is reused across the moves of a game, and NewGame
// resets it between games; a fresh one is cheap to build if that is
// more convenient for a caller.
type Search struct {
	log  *logging.Logger
	slog *logging.Logger

	initSemaphore *semaphore.Weighted
	isRunning     *semaphore.Weighted

	eval    *evaluator.Evaluator
	history *history.History

	// OnIteration, if set, is called after every completed iterative
	// deepening depth with the result so far - the external "search
	// info stream" collaborator interface a UCI-style front end wants. The
	// core never requires a listener; it is nil by default.
	OnIteration func(Result)

	lastSearchResult *Result

	stopFlag  bool
	startTime time.Time

	searchLimits *Limits
	timeLimit    time.Duration
	extraTime    time.Duration

	nodesVisited      uint64
	checkTimeoutNodes uint64

	pvTable [MaxPly + 2][MaxPly + 2]Move
	pvLen   [MaxPly + 2]int
	killers [MaxPly + 2][2]Move

	// prevPV is the principal variation the previous iterative
	// deepening depth finished with. Every node of the current depth
	// orders the move it lists for the node's ply first when that move
	// is legal there, whether or not the path to the node follows the
	// line.
	prevPV moveslice.MoveSlice

	rootMoves         *moveslice.MoveSlice
	bestRootMoveSoFar Move

	statistics Statistics
}

// //////////////////////////////////////////////////////
// // Public
// //////////////////////////////////////////////////////

// NewSearch creates a new Search instance.
func NewSearch() *Search {
	return &Search{
		log:           myLogging.GetLog(),
		slog:          myLogging.GetSearchTraceLog(),
		initSemaphore: semaphore.NewWeighted(int64(1)),
		isRunning:     semaphore.NewWeighted(int64(1)),
		eval:          evaluator.NewEvaluator(),
		history:       history.NewHistory(),
	}
}

// NewGame stops any running search and resets history between games.
func (s *Search) NewGame() {
	s.StopSearch()
	s.history = history.NewHistory()
}

// StartSearch starts the search on a copy of p with the given limits.
// Search can be stopped with StopSearch(); status can be checked with
// IsSearching(). Returns once the search goroutine has finished its
// (cheap) initialization, not once the search itself is done.
func (s *Search) StartSearch(p position.Position, sl Limits) {
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.searchLimits = &sl
	go s.run(&p, &sl)
	_ = s.initSemaphore.Acquire(context.TODO(), 1)
	s.initSemaphore.Release(1)
}

// StopSearch stops a running search as quickly as possible and waits
// for it to actually stop before returning.
func (s *Search) StopSearch() {
	s.stopFlag = true
	s.WaitWhileSearching()
}

// IsSearching reports whether a search is currently running.
func (s *Search) IsSearching() bool {
	if !s.isRunning.TryAcquire(1) {
		return true
	}
	s.isRunning.Release(1)
	return false
}

// WaitWhileSearching blocks until no search is running.
func (s *Search) WaitWhileSearching() {
	_ = s.isRunning.Acquire(context.TODO(), 1)
	s.isRunning.Release(1)
}

// LastSearchResult returns a copy of the most recently completed
// search's result.
func (s *Search) LastSearchResult() Result {
	if s.lastSearchResult == nil {
		return Result{}
	}
	return *s.lastSearchResult
}

// NodesVisited returns the number of nodes visited by the last search.
func (s *Search) NodesVisited() uint64 { return s.nodesVisited }

// Statistics returns a pointer to the last search's statistics.
func (s *Search) Statistics() *Statistics { return &s.statistics }

// //////////////////////////////////////////////////////
// // Private: search driver
// //////////////////////////////////////////////////////

// run is launched as a goroutine by StartSearch. It owns the entire
// search lifecycle for one call: timer, iterative deepening, result
// bookkeeping.
func (s *Search) run(p *position.Position, sl *Limits) {
	if !s.isRunning.TryAcquire(1) {
		s.log.Error("Search already running")
		return
	}
	defer s.isRunning.Release(1)

	s.startTime = time.Now()
	s.log.Infof("Searching: %s", p.StringFen())

	s.stopFlag = false
	s.timeLimit = 0
	s.extraTime = 0
	s.nodesVisited = 0
	s.statistics = Statistics{}
	s.killers = [MaxPly + 2][2]Move{}
	s.pvTable = [MaxPly + 2][MaxPly + 2]Move{}
	s.pvLen = [MaxPly + 2]int{}
	s.prevPV = nil
	s.bestRootMoveSoFar = MoveNone

	s.setupSearchLimits(p, sl)
	s.checkTimeoutNodes = s.pickCheckTimeoutCadence()

	if s.searchLimits.TimeControl && !s.searchLimits.Ponder {
		s.startTimer()
	}

	// release the init-phase lock so StartSearch() can return to its caller
	s.initSemaphore.Release(1)

	result := s.iterativeDeepening(p)
	result.SearchTime = time.Since(s.startTime)
	result.Nodes = s.nodesVisited

	s.log.Info(out.Sprintf("Search finished after %s, %d nodes (%d nps)",
		result.SearchTime, result.Nodes, util.Nps(result.Nodes, result.SearchTime)))
	s.slog.Debugf("Search stats: %s", s.statistics.String())
	s.log.Infof("Search result: %s", result.String())

	s.lastSearchResult = result
	s.stopFlag = true
}

// iterativeDeepening runs negamax at depth 1, 2, ... up to the search
// limit. Depths 1 to 3 use the full window; from depth 4 on, an
// aspiration window around the previous iteration's score is used,
// re-searching with the full window on a fail-high/fail-low.
func (s *Search) iterativeDeepening(p *position.Position) *Result {
	if s.isRepetition(p) {
		msg := "search called on a position that is already a draw by repetition or the fifty-move rule"
		s.log.Warning(msg)
		return &Result{BestValue: ValueDraw}
	}

	s.rootMoves = p.GenerateLegalMoves()
	if s.rootMoves.Len() == 0 {
		if p.HasCheck() {
			s.statistics.Checkmates++
			return &Result{BestValue: -MateValue}
		}
		s.statistics.Stalemates++
		return &Result{BestValue: ValueDraw}
	}

	maxDepth := MaxPly
	if s.searchLimits.Depth > 0 && s.searchLimits.Depth < maxDepth {
		maxDepth = s.searchLimits.Depth
	}

	bestValue := ValueNA
	var result *Result

	for depth := 1; depth <= maxDepth; depth++ {
		s.statistics.CurrentIterationDepth = depth
		s.statistics.CurrentSearchDepth = depth

		var score Value
		if depth > 3 {
			score = s.aspirationSearch(p, depth, bestValue)
		} else {
			score = s.searchRoot(p, depth, ValueMin, ValueMax)
		}

		if s.stopFlag && depth > 1 {
			break
		}
		bestValue = score

		result = &Result{
			BestMove:    s.pvTable[0][0],
			BestValue:   bestValue,
			SearchDepth: s.statistics.CurrentSearchDepth,
			ExtraDepth:  s.statistics.CurrentExtraSearchDepth,
			Nodes:       s.nodesVisited,
		}
		if s.pvLen[0] > 1 {
			result.PonderMove = s.pvTable[0][1]
		}
		result.Pv = append(moveslice.MoveSlice{}, s.pvTable[0][:s.pvLen[0]]...)
		s.prevPV = append(moveslice.MoveSlice{}, result.Pv...)

		if s.OnIteration != nil {
			s.OnIteration(*result)
		}
		s.slog.Debugf(out.Sprintf("depth %d value %d nodes %d pv %s",
			depth, bestValue, s.nodesVisited, result.Pv.StringUci()))

		if s.stopConditions() || s.rootMoves.Len() <= 1 {
			break
		}
	}

	if result == nil {
		// stopped before the first iteration even finished one move
		result = &Result{BestMove: s.rootMoves.At(0)}
	}
	return result
}

// aspirationSearch re-uses the previous iteration's score to open a
// narrow alpha-beta window; on a fail-high or fail-low it re-searches
// the same depth with the maximal window.
func (s *Search) aspirationSearch(p *position.Position, depth int, prevScore Value) Value {
	alpha := prevScore - aspirationWindow
	beta := prevScore + aspirationWindow
	score := s.searchRoot(p, depth, alpha, beta)
	if s.stopFlag {
		return score
	}
	if score <= alpha || score >= beta {
		score = s.searchRoot(p, depth, ValueMin, ValueMax)
	}
	return score
}

// searchRoot runs one negamax pass at the root over s.rootMoves.
// orderMoves re-scores every root move at the start of each pass, so the
// search scores a pass stamps onto the moves do not order the next pass.
func (s *Search) searchRoot(p *position.Position, depth int, alpha, beta Value) Value {
	s.pvLen[0] = 0
	moves := s.rootMoves
	pvMove := s.pvMoveAt(0)
	s.orderMoves(p, moves, 0, pvMove)
	moves.Sort()

	best := ValueMin
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		score := -s.negamax(p, depth-1, 1, -beta, -alpha, true)
		p.UndoMove()

		if s.stopFlag {
			return ValueZero
		}

		moves.Set(i, m.SetValue(int32(score)))

		if score > best {
			best = score
			s.bestRootMoveSoFar = m
		}
		if score > alpha {
			alpha = score
			s.pvTable[0][0] = m
			copy(s.pvTable[0][1:1+s.pvLen[1]], s.pvTable[1][1:1+s.pvLen[1]])
			s.pvLen[0] = 1 + s.pvLen[1]
			if score >= beta {
				return clampValue(score, alpha, beta)
			}
		}
	}
	return clampValue(best, alpha, beta)
}

func clampValue(v, alpha, beta Value) Value {
	if v < alpha {
		return alpha
	}
	if v > beta {
		return beta
	}
	return v
}

// pvMoveAt returns the move the previous iterative-deepening depth's
// principal variation expects at ply, or MoveNone if that line didn't
// reach this ply (or this is the first iteration).
func (s *Search) pvMoveAt(ply int) Move {
	if ply < s.prevPV.Len() {
		return s.prevPV.At(ply)
	}
	return MoveNone
}

// negamax implements fail-hard negamax: a beta cutoff returns beta and a
// node that raises no score returns alpha; the draw score of a
// repetition and the mate or stalemate score of a node without legal
// moves are returned unclamped. ply is the distance from
// the search root; the move the previous iteration's principal
// variation expects at this ply (if any) gets a move-ordering bonus.
func (s *Search) negamax(p *position.Position, depth, ply int, alpha, beta Value, allowNull bool) Value {
	if ply >= MaxPly {
		return clampValue(s.eval.Evaluate(p), alpha, beta)
	}
	s.pvLen[ply] = 0

	if ply > 0 && s.isRepetition(p) {
		return ValueDraw
	}

	inCheck := p.HasCheck()
	if inCheck && config.Settings.Search.UseCheckExt {
		depth++
		s.statistics.CheckExtension++
	}

	if depth <= 0 {
		return s.quiescence(p, alpha, beta, ply)
	}

	s.nodesVisited++
	if s.nodesVisited%s.checkTimeoutNodes == 0 && s.timeIsUp() {
		s.stopFlag = true
		return ValueZero
	}

	if allowNull && ply > 0 && !inCheck && config.Settings.Search.UseNullMove {
		r := config.Settings.Search.NmpReduction
		if r <= 0 {
			r = nullMoveReduction
		}
		if depth-1-r >= 0 {
			p.DoNullMove()
			score := -s.negamax(p, depth-1-r, ply+1, -beta, -beta+1, false)
			p.UndoNullMove()
			if s.stopFlag {
				return ValueZero
			}
			if score >= beta {
				s.statistics.NullMoveCuts++
				return beta
			}
		}
	}

	moves := p.GenerateLegalMoves()
	if moves.Len() == 0 {
		if inCheck {
			return -MateValue + Value(ply)
		}
		return ValueDraw
	}

	pvMove := s.pvMoveAt(ply)
	s.orderMoves(p, moves, ply, pvMove)
	moves.Sort()

	firstMove := true
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)

		p.DoMove(m)
		score := -s.negamax(p, depth-1, ply+1, -beta, -alpha, true)
		p.UndoMove()

		if s.stopFlag {
			return ValueZero
		}

		if score > alpha {
			alpha = score
			if isQuiet(p, m) {
				s.history.HistoryCount[m.Piece.ColorOf()][m.From][m.To] += int64(depth)
			}
			s.pvTable[ply][ply] = m
			copy(s.pvTable[ply][ply+1:ply+1+s.pvLen[ply+1]], s.pvTable[ply+1][ply+1:ply+1+s.pvLen[ply+1]])
			s.pvLen[ply] = 1 + s.pvLen[ply+1]

			if score >= beta {
				if isQuiet(p, m) && config.Settings.Search.UseKiller {
					s.killers[ply][1] = s.killers[ply][0]
					s.killers[ply][0] = m
				}
				s.statistics.BetaCuts++
				if firstMove {
					s.statistics.BetaCuts1st++
				}
				return beta
			}
		}
		firstMove = false
	}

	return alpha
}

// quiescence extends the search past the nominal horizon over captures
// only, to avoid the horizon effect on hanging material. Stand-pat and
// delta pruning bound the work; MVV-LVA orders the capture list.
func (s *Search) quiescence(p *position.Position, alpha, beta Value, ply int) Value {
	s.nodesVisited++
	if s.nodesVisited%s.checkTimeoutNodes == 0 && s.timeIsUp() {
		s.stopFlag = true
		return ValueZero
	}
	if ply > s.statistics.CurrentExtraSearchDepth {
		s.statistics.CurrentExtraSearchDepth = ply
	}

	standPat := s.eval.Evaluate(p)
	s.statistics.LeafPositionsEvaluated++

	if !config.Settings.Search.UseQuiescence {
		return clampValue(standPat, alpha, beta)
	}

	if standPat >= beta {
		s.statistics.StandpatCuts++
		return beta
	}
	if config.Settings.Search.UseMDP && standPat < alpha-deltaMargin {
		s.statistics.Mdp++
		return alpha
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := p.GenerateLegalCaptures()
	s.orderCaptures(p, moves)
	moves.Sort()

	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		p.DoMove(m)
		score := -s.quiescence(p, -beta, -alpha, ply+1)
		p.UndoMove()

		if s.stopFlag {
			return ValueZero
		}
		if score >= beta {
			s.statistics.BetaCuts++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}

// isRepetition reports whether p is a draw by threefold repetition or
// the fifty-move rule.
func (s *Search) isRepetition(p *position.Position) bool {
	return p.CheckRepetitions(3) || p.HalfMoveClock() >= 100
}

func (s *Search) timeIsUp() bool {
	if !s.searchLimits.TimeControl {
		return false
	}
	return time.Since(s.startTime) >= s.timeLimit+s.extraTime
}

// pickCheckTimeoutCadence chooses how many nodes elapse between time
// checks: tight for short time budgets, loose for long ones, matching
// the configured time budget.
func (s *Search) pickCheckTimeoutCadence() uint64 {
	if !s.searchLimits.TimeControl {
		return checkTimeoutDefault
	}
	switch {
	case s.timeLimit < 5*time.Second:
		return checkTimeoutShort
	case s.timeLimit <= 10*time.Second:
		return checkTimeoutLong
	default:
		return checkTimeoutDefault
	}
}

// isQuiet reports whether m is neither a capture nor an en-passant
// capture - the class of move the history heuristic and killer slots
// track.
func isQuiet(p *position.Position, m Move) bool {
	return m.MType != EnPassant && p.GetPiece(m.To) == PieceNone
}

// mvvValue is the small capture-ordering value table, distinct from
// the evaluator's material values: pawn=1, knight=bishop=3, rook=4,
// queen=5, king=6.
var mvvValue = [PtLength]int32{0, 6, 1, 3, 3, 4, 5}

// orderMoves assigns each move in moves a sort score (PV > captures by
// MVV-LVA > killers > history) ready for moves.Sort() to apply
// descending.
func (s *Search) orderMoves(p *position.Position, moves *moveslice.MoveSlice, ply int, pvMove Move) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		// compare with sort scores cleared: stored PV and killer moves keep
		// the score they were ordered with
		bare := m.SetValue(0)
		var v int32
		switch {
		case pvMove != MoveNone && bare == pvMove.SetValue(0):
			v = 20000
		case !isQuiet(p, m):
			v = 10000 + 8*mvvValue[captureVictimType(p, m)] - mvvValue[m.Piece.TypeOf()]
		case config.Settings.Search.UseKiller && bare == s.killers[ply][0].SetValue(0):
			v = 9000
		case config.Settings.Search.UseKiller && bare == s.killers[ply][1].SetValue(0):
			v = 8000
		default:
			v = int32(s.history.HistoryCount[m.Piece.ColorOf()][m.From][m.To])
		}
		moves.Set(i, m.SetValue(v))
	}
}

// orderCaptures scores a capture-only list by MVV-LVA alone, as
// quiescence never consults PV/killers/history.
func (s *Search) orderCaptures(p *position.Position, moves *moveslice.MoveSlice) {
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		v := 8*mvvValue[captureVictimType(p, m)] - mvvValue[m.Piece.TypeOf()]
		moves.Set(i, m.SetValue(v))
	}
}

func captureVictimType(p *position.Position, m Move) PieceType {
	if m.MType == EnPassant {
		return Pawn
	}
	return p.GetPiece(m.To).TypeOf()
}

// //////////////////////////////////////////////////////
// // Time control
// //////////////////////////////////////////////////////

// setupSearchLimits logs the active search mode and, for time-controlled
// searches, computes the per-move time budget.
func (s *Search) setupSearchLimits(p *position.Position, sl *Limits) {
	switch {
	case sl.Infinite:
		s.log.Info("Search mode: Infinite")
	case sl.Mate > 0:
		s.log.Infof("Search mode: Search for mate in %d", sl.Mate)
	}
	if sl.TimeControl {
		s.timeLimit = s.setupTimeControl(p, sl)
		s.extraTime = 0
		s.log.Info(out.Sprintf("Search mode: Time controlled: time limit %s", s.timeLimit))
	} else {
		s.log.Info("Search mode: No time control")
	}
	if sl.Depth > 0 {
		s.log.Debugf("Search mode: Depth limited: %d", sl.Depth)
	}
	if sl.Nodes > 0 {
		s.log.Infof(out.Sprintf("Search mode: Nodes limited: %d", sl.Nodes))
	}
}

// setupTimeControl computes a per-move time budget from sl, either
// directly from MoveTime or estimated from the classical time-control
// fields (time left, increment, moves to go), following a
// game-phase-aware moves-left estimate when MovesToGo is unset.
func (s *Search) setupTimeControl(p *position.Position, sl *Limits) time.Duration {
	if sl.MoveTime > 0 {
		duration := sl.MoveTime - 20*time.Millisecond
		if duration < 0 {
			return sl.MoveTime
		}
		return duration
	}

	movesLeft := int64(sl.MovesToGo)
	if movesLeft == 0 {
		movesLeft = int64(15 + 25*p.GamePhaseFactor())
	}

	var timeLeft time.Duration
	var inc time.Duration
	switch p.NextPlayer() {
	case White:
		timeLeft, inc = sl.WhiteTime, sl.WhiteInc
	case Black:
		timeLeft, inc = sl.BlackTime, sl.BlackInc
	}
	budget := timeLeft + time.Duration(movesLeft*inc.Nanoseconds())
	timeLimit := time.Duration(budget.Nanoseconds() / movesLeft)

	if timeLimit.Milliseconds() < 100 {
		timeLimit = time.Duration(int64(0.8 * float64(timeLimit.Nanoseconds())))
	} else {
		timeLimit = time.Duration(int64(0.9 * float64(timeLimit.Nanoseconds())))
	}
	return timeLimit
}

// stopConditions reports whether the search must stop before the next
// iterative deepening depth: either the deadline/stopFlag fired, or the
// node budget set in the search limits has been reached.
func (s *Search) stopConditions() bool {
	if s.stopFlag {
		return true
	}
	if s.searchLimits.Nodes > 0 && s.nodesVisited >= s.searchLimits.Nodes {
		s.stopFlag = true
	}
	return s.stopFlag
}

// startTimer launches the cooperative deadline watcher: a relaxed
// busy-wait that sets stopFlag once the time budget (plus any extra
// time granted mid-search) elapses.
func (s *Search) startTimer() {
	go func() {
		for !s.stopFlag && time.Since(s.startTime) < s.timeLimit+s.extraTime {
			time.Sleep(5 * time.Millisecond)
		}
		s.stopFlag = true
	}()
}
