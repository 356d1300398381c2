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

// Package engine wires Position, Search and Evaluator into the single
// object a driver (a UCI command loop, a GUI, a test harness) actually
// holds. It is intentionally thin: the external collaborators - the
// opening book, the Syzygy tablebase probe, the UCI loop itself - stay
// out of this module, represented here only as the narrow interfaces a
// caller may plug in. No bundled implementation of either is provided;
// the core works identically with both nil.
package engine

import (
	"github.com/eligolfer91/endamat-chess/internal/evaluator"
	"github.com/eligolfer91/endamat-chess/internal/notation"
	"github.com/eligolfer91/endamat-chess/internal/position"
	"github.com/eligolfer91/endamat-chess/internal/search"
	. "github.com/eligolfer91/endamat-chess/internal/types"
)

// OpeningBook is the narrow interface an opening-book reader implements
// to hand the engine a book move for the current position, keyed by its
// Zobrist hash. A caller that has no book at all simply never sets one;
// Engine.Go falls straight through to the searcher.
type OpeningBook interface {
	// MoveFor returns a book move for the position with the given
	// Zobrist key, and whether one was found.
	MoveFor(zobristKey uint64) (Move, bool)
}

// TablebaseProbe is the narrow interface a Syzygy (or other) tablebase
// reader implements to answer a win/draw/loss query for positions with
// few enough pieces left. The core never requires one; a driver that has
// a probe attached can ask through Engine.ProbeTablebase before deciding
// whether a search is worth running.
type TablebaseProbe interface {
	// ProbeWDL returns the tablebase result from the side-to-move's
	// point of view (positive: win, zero: draw, negative: loss) and
	// whether p's piece count is within the probe's supported range.
	ProbeWDL(p *position.Position) (wdl int, ok bool)
}

// Driver is the search-info-stream collaborator interface: whatever a
// UCI loop or GUI wants notified of as the search progresses. It is
// satisfied trivially by leaving Search.OnIteration nil, which is the
// default; Engine only forwards to it when one is attached.
type Driver interface {
	// OnIteration is called once per completed iterative-deepening
	// depth with the result accumulated so far.
	OnIteration(result search.Result)
	// OnBestMove is called with the final choice when Engine.Stop ends
	// a search and when a book move answers Engine.Go. A search that
	// ends by itself (time, depth or node limit) does not call it; its
	// result is read with Engine.LastResult.
	OnBestMove(best, ponder Move)
}

// Engine owns one Position and the Search/Evaluator pair that operate
// on it, plus the optional external collaborators. It is the object a
// driver actually holds; every external surface of the engine routes
// through it.
type Engine struct {
	pos    *position.Position
	search *search.Search
	eval   *evaluator.Evaluator

	Book      OpeningBook
	Tablebase TablebaseProbe
	driver    Driver
}

// NewEngine creates an Engine on the standard starting position.
func NewEngine() *Engine {
	e := &Engine{
		pos:    position.NewPosition(),
		search: search.NewSearch(),
		eval:   evaluator.NewEvaluator(),
	}
	return e
}

// SetDriver attaches the search-info-stream collaborator. Passing nil
// detaches it; Engine.search.OnIteration is kept in sync either way.
func (e *Engine) SetDriver(d Driver) {
	e.driver = d
	if d == nil {
		e.search.OnIteration = nil
		return
	}
	e.search.OnIteration = d.OnIteration
}

// SetPositionUci replays a UCI "position" command: a FEN (or
// "startpos") followed by a sequence of long-algebraic moves.
func (e *Engine) SetPositionUci(fen string, moves []string) error {
	p, err := notation.PositionFromUci(fen, moves)
	if err != nil {
		return err
	}
	e.pos = p
	return nil
}

// Position returns the engine's current position.
func (e *Engine) Position() *position.Position { return e.pos }

// NewGame resets the search's history table between games (killer moves
// are already cleared at the start of every search).
func (e *Engine) NewGame() {
	e.search.NewGame()
}

// Go starts a search under the given limits, first consulting the
// opening book if one is attached; a book hit answers the move without
// searching at all. Returns once the search has been launched (or the
// book answered) - same asynchronous contract Search.StartSearch has.
func (e *Engine) Go(limits search.Limits) {
	if e.Book != nil {
		if m, ok := e.Book.MoveFor(e.pos.ZobristKey()); ok && e.pos.IsLegalMove(m) {
			if e.driver != nil {
				e.driver.OnBestMove(m, MoveNone)
			}
			return
		}
	}
	e.search.StartSearch(*e.pos, limits)
}

// Stop stops a running search, keeping whatever depth it had completed.
func (e *Engine) Stop() {
	e.search.StopSearch()
	if e.driver != nil {
		result := e.search.LastSearchResult()
		e.driver.OnBestMove(result.BestMove, result.PonderMove)
	}
}

// IsSearching reports whether a search is currently running.
func (e *Engine) IsSearching() bool { return e.search.IsSearching() }

// LastResult returns the most recently completed search's result.
func (e *Engine) LastResult() search.Result { return e.search.LastSearchResult() }

// Evaluate returns the static evaluation of the current position, from
// the side to move's point of view.
func (e *Engine) Evaluate() Value { return e.eval.Evaluate(e.pos) }

// ProbeTablebase asks the attached tablebase for a win/draw/loss verdict
// on the current position. Returns ok=false when no probe is attached or
// the position is outside the probe's piece-count range.
func (e *Engine) ProbeTablebase() (wdl int, ok bool) {
	if e.Tablebase == nil {
		return 0, false
	}
	return e.Tablebase.ProbeWDL(e.pos)
}
