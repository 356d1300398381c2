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

// Package position holds the board representation: a 10x12 mailbox array
// plus the incrementally maintained bookkeeping (Zobrist key, material,
// piece-square accumulators, game phase, king squares) make/unmake needs
// to stay cheap. Legal move generation also lives here (see generate.go
// and check.go) because the pin/check resolver walks the same raw
// mailbox array the board does; internal/movegen is only a thin host
// for perft over this package's generator.
package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/eligolfer91/endamat-chess/internal/pst"
	. "github.com/eligolfer91/endamat-chess/internal/types"
	"github.com/eligolfer91/endamat-chess/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// undo is the snapshot taken before a move is made. UndoMove restores
// every field verbatim rather than reversing each bookkeeping update
// step by step - a little more copying, a lot fewer ways to get it wrong.
type undo struct {
	move            Move
	capturedPiece   Piece
	castlingRights  CastlingRights
	enPassantSquare Square
	zobristKey      uint64
	halfMoveClock   int
	kingSquare      [2]Square
	material        [2]Value
	materialNonPawn [2]Value
	pieceTypeCount  [2][PtLength]int
	psqMid          [2]int
	psqEnd          [2]int
	gamePhase       int
	wasLegal        bool
}

// nullUndo is the (much smaller) snapshot for DoNullMove/UndoNullMove.
type nullUndo struct {
	enPassantSquare Square
	zobristKey      uint64
	halfMoveClock   int
}

// repEntry is one slot of the repetition stack: the key after a move,
// and whether that move was irreversible (capture or pawn move), which
// bounds how far back a repetition search needs to look.
type repEntry struct {
	key          uint64
	irreversible bool
}

// Position is a mutable chess position: a 10x12 mailbox board plus the
// incremental bookkeeping the search and evaluator read on every node.
type Position struct {
	mailbox [120]Piece

	sideToMove      Color
	castlingRights  CastlingRights
	enPassantSquare Square
	halfMoveClock   int
	plyCount        int

	zobristKey uint64

	kingSquare      [2]Square
	material        [2]Value
	materialNonPawn [2]Value
	pieceTypeCount  [2][PtLength]int
	psqMid          [2]int
	psqEnd          [2]int
	gamePhase       int

	lastMove          Move
	lastCapturedPiece Piece
	wasLegal          bool

	moveLog    []undo
	nullLog    []nullUndo
	repetition []repEntry
}

// NewPosition builds a Position from an optional FEN string, defaulting
// to the standard starting position. Panics on a malformed FEN; use
// NewPositionFen if the FEN comes from an untrusted source.
func NewPosition(fen ...string) *Position {
	f := StartFen
	if len(fen) > 0 && strings.TrimSpace(fen[0]) != "" {
		f = fen[0]
	}
	p, err := NewPositionFen(f)
	if err != nil {
		panic(fmt.Sprintf("position: %s", err))
	}
	return p
}

// NewPositionFen builds a Position from a FEN string, returning an error
// if the FEN is malformed.
func NewPositionFen(fen string) (*Position, error) {
	p := &Position{
		enPassantSquare:   SqNone,
		lastMove:          MoveNone,
		lastCapturedPiece: PieceNone,
		wasLegal:          true,
	}
	for mb := range p.mailbox {
		p.mailbox[mb] = PieceInvalid
	}
	for sq := Square(0); sq < 64; sq++ {
		p.mailbox[sq.Sq120()] = PieceNone
	}
	if err := p.setupBoard(fen); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Position) setupBoard(fen string) error {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 4 {
		return fmt.Errorf("fen %q: expected at least 4 fields, got %d", fen, len(fields))
	}
	for len(fields) < 6 {
		fields = append(fields, "")
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("fen %q: expected 8 ranks, got %d", fen, len(ranks))
	}

	kings := [2]int{}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			if file >= 8 {
				return fmt.Errorf("fen %q: rank %d overflows files", fen, 8-i)
			}
			piece := PieceFromChar(string(ch))
			if piece == PieceNone {
				return fmt.Errorf("fen %q: invalid piece letter %q", fen, ch)
			}
			sq := MakeSquare(File(file), r)
			p.putPiece(piece, sq)
			if piece.TypeOf() == King {
				kings[piece.ColorOf()]++
			}
			file++
		}
		if file != 8 {
			return fmt.Errorf("fen %q: rank %d has %d files, expected 8", fen, 8-i, file)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("fen %q: expected exactly one king per side", fen)
	}

	switch fields[1] {
	case "w":
		p.sideToMove = White
	case "b":
		p.sideToMove = Black
		p.zobristKey ^= zobrist.Side
	default:
		return fmt.Errorf("fen %q: invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				p.castlingRights.Add(CastlingWhiteOO)
			case 'Q':
				p.castlingRights.Add(CastlingWhiteOOO)
			case 'k':
				p.castlingRights.Add(CastlingBlackOO)
			case 'q':
				p.castlingRights.Add(CastlingBlackOOO)
			default:
				return fmt.Errorf("fen %q: invalid castling letter %q", fen, ch)
			}
		}
	}
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)

	if fields[3] != "-" && fields[3] != "" {
		if len(fields[3]) != 2 || fields[3][0] < 'a' || fields[3][0] > 'h' ||
			(fields[3][1] != '3' && fields[3][1] != '6') {
			return fmt.Errorf("fen %q: invalid en passant square %q", fen, fields[3])
		}
		sq := SquareFromString(fields[3])
		p.enPassantSquare = sq
		p.zobristKey ^= zobrist.EnPassantKey(sq)
	}

	halfMove := 0
	if fields[4] != "" {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return fmt.Errorf("fen %q: invalid halfmove clock %q", fen, fields[4])
		}
		halfMove = n
	}
	p.halfMoveClock = halfMove

	fullMove := 1
	if fields[5] != "" {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return fmt.Errorf("fen %q: invalid fullmove number %q", fen, fields[5])
		}
		fullMove = n
	}
	p.plyCount = (fullMove - 1) * 2
	if p.sideToMove == Black {
		p.plyCount++
	}

	p.repetition = append(p.repetition, repEntry{key: p.zobristKey, irreversible: true})
	return nil
}

// putPiece places piece on sq and incrementally updates every
// bookkeeping field the move generator, evaluator and search depend on.
func (p *Position) putPiece(piece Piece, sq Square) {
	p.mailbox[sq.Sq120()] = piece
	p.zobristKey ^= zobrist.PieceKey(piece, sq)

	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.pieceTypeCount[c][pt]++
	p.material[c] += pt.ValueOf()
	if pt != Pawn {
		p.materialNonPawn[c] += pt.ValueOf()
	}
	p.gamePhase += pt.GamePhaseValue()

	mid, end := pst.PstValue(c, pt, sq)
	p.psqMid[c] += mid
	p.psqEnd[c] += end

	if pt == King {
		p.kingSquare[c] = sq
	}
}

// removePiece clears sq and undoes every update putPiece made for the
// piece standing there, returning that piece.
func (p *Position) removePiece(sq Square) Piece {
	piece := p.mailbox[sq.Sq120()]
	p.mailbox[sq.Sq120()] = PieceNone
	p.zobristKey ^= zobrist.PieceKey(piece, sq)

	c := piece.ColorOf()
	pt := piece.TypeOf()
	p.pieceTypeCount[c][pt]--
	p.material[c] -= pt.ValueOf()
	if pt != Pawn {
		p.materialNonPawn[c] -= pt.ValueOf()
	}
	p.gamePhase -= pt.GamePhaseValue()

	mid, end := pst.PstValue(c, pt, sq)
	p.psqMid[c] -= mid
	p.psqEnd[c] -= end

	return piece
}

// rookCastleSquares returns the rook's origin and destination for the
// castling move landing the king on kingTo.
func rookCastleSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case MustSquare("g1"):
		return MustSquare("h1"), MustSquare("f1")
	case MustSquare("c1"):
		return MustSquare("a1"), MustSquare("d1")
	case MustSquare("g8"):
		return MustSquare("h8"), MustSquare("f8")
	case MustSquare("c8"):
		return MustSquare("a8"), MustSquare("d8")
	default:
		panic(fmt.Sprintf("position: %s is not a castling destination", kingTo))
	}
}

// DoMove makes m on the board. The caller is responsible for only
// passing moves returned by the generator (or validated with
// IsLegalMove) - DoMove does not itself check legality.
func (p *Position) DoMove(m Move) {
	us := p.sideToMove
	them := us.Flip()
	from, to := m.From, m.To
	piece := m.Piece

	u := undo{
		move:            m,
		castlingRights:  p.castlingRights,
		enPassantSquare: p.enPassantSquare,
		zobristKey:      p.zobristKey,
		halfMoveClock:   p.halfMoveClock,
		kingSquare:      p.kingSquare,
		material:        p.material,
		materialNonPawn: p.materialNonPawn,
		pieceTypeCount:  p.pieceTypeCount,
		psqMid:          p.psqMid,
		psqEnd:          p.psqEnd,
		gamePhase:       p.gamePhase,
		wasLegal:        p.wasLegal,
	}

	p.halfMoveClock++
	p.plyCount++

	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantKey(p.enPassantSquare)
		p.enPassantSquare = SqNone
	}

	capturedPiece := PieceNone
	switch {
	case m.MType == EnPassant:
		capSq := SquareOf(to.Sq120() - int(us.PawnForward()))
		capturedPiece = p.removePiece(capSq)
		p.halfMoveClock = 0
	case p.mailbox[to.Sq120()] != PieceNone:
		capturedPiece = p.removePiece(to)
		p.halfMoveClock = 0
	}
	u.capturedPiece = capturedPiece

	p.removePiece(from)
	p.putPiece(piece, to)

	if piece.TypeOf() == King {
		p.kingSquare[us] = to
		if m.MType == Castling {
			rookFrom, rookTo := rookCastleSquares(to)
			rook := p.removePiece(rookFrom)
			p.putPiece(rook, rookTo)
		}
	}

	if m.MType.IsPromotion() {
		p.removePiece(to)
		p.putPiece(MakePiece(us, m.MType.PromotionType()), to)
		p.halfMoveClock = 0
	}

	if piece.TypeOf() == Pawn {
		p.halfMoveClock = 0
		if m.MType == TwoStep {
			epSq := SquareOf(from.Sq120() + int(us.PawnForward()))
			p.enPassantSquare = epSq
			p.zobristKey ^= zobrist.EnPassantKey(epSq)
		}
	}

	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)
	p.castlingRights &= RightsMask(from) & RightsMask(to)
	p.zobristKey ^= zobrist.CastlingKey(p.castlingRights)

	p.sideToMove = them
	p.zobristKey ^= zobrist.Side

	p.lastMove = m
	p.lastCapturedPiece = capturedPiece
	p.wasLegal = !p.IsAttacked(p.kingSquare[us], them)

	p.moveLog = append(p.moveLog, u)
	p.repetition = append(p.repetition, repEntry{
		key:          p.zobristKey,
		irreversible: capturedPiece != PieceNone || piece.TypeOf() == Pawn,
	})
}

// UndoMove reverses the most recent DoMove. Calling it with no prior
// DoMove panics.
func (p *Position) UndoMove() {
	n := len(p.moveLog)
	if n == 0 {
		panic("position: UndoMove called with an empty move log")
	}
	u := p.moveLog[n-1]
	p.moveLog = p.moveLog[:n-1]
	if n == 1 {
		// back to the constructor's nil log, so do+undo restores every field
		p.moveLog = nil
	}
	p.repetition = p.repetition[:len(p.repetition)-1]

	m := u.move
	us := p.sideToMove.Flip()
	from, to := m.From, m.To

	p.mailbox[from.Sq120()] = m.Piece

	switch m.MType {
	case EnPassant:
		capSq := SquareOf(to.Sq120() - int(us.PawnForward()))
		p.mailbox[to.Sq120()] = PieceNone
		p.mailbox[capSq.Sq120()] = u.capturedPiece
	case Castling:
		rookFrom, rookTo := rookCastleSquares(to)
		p.mailbox[rookTo.Sq120()] = PieceNone
		p.mailbox[rookFrom.Sq120()] = MakePiece(us, Rook)
		p.mailbox[to.Sq120()] = PieceNone
	default:
		p.mailbox[to.Sq120()] = u.capturedPiece
	}

	p.sideToMove = us
	p.castlingRights = u.castlingRights
	p.enPassantSquare = u.enPassantSquare
	p.zobristKey = u.zobristKey
	p.halfMoveClock = u.halfMoveClock
	p.kingSquare = u.kingSquare
	p.material = u.material
	p.materialNonPawn = u.materialNonPawn
	p.pieceTypeCount = u.pieceTypeCount
	p.psqMid = u.psqMid
	p.psqEnd = u.psqEnd
	p.gamePhase = u.gamePhase
	p.plyCount--

	if n := len(p.moveLog); n > 0 {
		prev := p.moveLog[n-1]
		p.lastMove = prev.move
		p.lastCapturedPiece = prev.capturedPiece
	} else {
		p.lastMove = MoveNone
		p.lastCapturedPiece = PieceNone
	}
	p.wasLegal = u.wasLegal
}

// DoNullMove passes the move without touching the board, used by null
// move pruning. Only the side to move, the Zobrist side term, any
// en-passant target, the halfmove clock and the ply count change.
func (p *Position) DoNullMove() {
	u := nullUndo{
		enPassantSquare: p.enPassantSquare,
		zobristKey:      p.zobristKey,
		halfMoveClock:   p.halfMoveClock,
	}
	if p.enPassantSquare != SqNone {
		p.zobristKey ^= zobrist.EnPassantKey(p.enPassantSquare)
		p.enPassantSquare = SqNone
	}
	p.zobristKey ^= zobrist.Side
	p.sideToMove = p.sideToMove.Flip()
	p.halfMoveClock++
	p.plyCount++
	p.nullLog = append(p.nullLog, u)
}

// UndoNullMove reverses the most recent DoNullMove.
func (p *Position) UndoNullMove() {
	n := len(p.nullLog)
	if n == 0 {
		panic("position: UndoNullMove called with an empty null-move log")
	}
	u := p.nullLog[n-1]
	p.nullLog = p.nullLog[:n-1]
	p.sideToMove = p.sideToMove.Flip()
	p.zobristKey = u.zobristKey
	p.enPassantSquare = u.enPassantSquare
	p.halfMoveClock = u.halfMoveClock
	p.plyCount--
}

// CheckRepetitions reports whether the current position's Zobrist key
// has occurred reps times in the repetition stack, scanning backward
// from the most recent entry and stopping at the last irreversible
// move (capture or pawn push), beyond which no repetition is possible.
func (p *Position) CheckRepetitions(reps int) bool {
	count := 0
	key := p.zobristKey
	for i := len(p.repetition) - 1; i >= 0; i-- {
		entry := p.repetition[i]
		if entry.key == key {
			count++
			if count >= reps {
				return true
			}
		}
		if entry.irreversible {
			break
		}
	}
	return false
}

// HasInsufficientMaterial reports whether neither side has enough
// material to deliver checkmate: king vs king, king+minor vs king, or
// king+bishop vs king+bishop with same-colored bishops.
func (p *Position) HasInsufficientMaterial() bool {
	for c := White; c <= Black; c++ {
		if p.pieceTypeCount[c][Pawn] > 0 || p.pieceTypeCount[c][Rook] > 0 || p.pieceTypeCount[c][Queen] > 0 {
			return false
		}
	}
	minors := func(c Color) int {
		return p.pieceTypeCount[c][Knight] + p.pieceTypeCount[c][Bishop]
	}
	wm, bm := minors(White), minors(Black)
	if wm == 0 && bm == 0 {
		return true
	}
	if wm+bm == 1 {
		return true
	}
	if wm == 1 && bm == 1 && p.pieceTypeCount[White][Knight] == 0 && p.pieceTypeCount[Black][Knight] == 0 {
		var shade [2]int
		for sq := Square(0); sq < 64; sq++ {
			if pc := p.mailbox[sq.Sq120()]; pc != PieceNone && pc.TypeOf() == Bishop {
				shade[pc.ColorOf()] = (int(sq.File()) + int(sq.Rank())) % 2
			}
		}
		return shade[White] == shade[Black]
	}
	return false
}

// IsCapturingMove reports whether playing move (which must be
// pseudo-legal in the current position) would capture a piece.
func (p *Position) IsCapturingMove(move Move) bool {
	if move.MType == EnPassant {
		return true
	}
	return p.mailbox[move.To.Sq120()] != PieceNone
}

// GivesCheck reports whether playing move would leave the opponent in
// check. It makes and immediately unmakes the move.
func (p *Position) GivesCheck(move Move) bool {
	p.DoMove(move)
	check := p.HasCheck()
	p.UndoMove()
	return check
}

// IsLegalMove reports whether move is one of the legal moves in the
// current position.
func (p *Position) IsLegalMove(move Move) bool {
	legal := p.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From == move.From && m.To == move.To && m.MType == move.MType {
			return true
		}
	}
	return false
}

// HasCheck reports whether the side to move is currently in check.
// Always computed directly from the board rather than cached, so it
// can never go stale across a sequence of Do/UndoMove calls.
func (p *Position) HasCheck() bool {
	return p.isInCheck(p.sideToMove)
}

func (p *Position) isInCheck(us Color) bool {
	return p.IsAttacked(p.kingSquare[us], us.Flip())
}

// ZobristKey returns the position's current Zobrist hash.
func (p *Position) ZobristKey() uint64 { return p.zobristKey }

// NextPlayer returns the side to move.
func (p *Position) NextPlayer() Color { return p.sideToMove }

// GetPiece returns the piece standing on sq, or PieceNone if empty.
func (p *Position) GetPiece(sq Square) Piece { return p.mailbox[sq.Sq120()] }

// GamePhase returns the incrementally maintained game-phase score
// (OpeningPhaseScore at the start, decreasing as material is traded).
func (p *Position) GamePhase() int { return p.gamePhase }

// GamePhaseFactor returns GamePhase clamped to [0,1] of OpeningPhaseScore,
// used to interpolate between the evaluator's mid- and end-game scores.
func (p *Position) GamePhaseFactor() float64 {
	if p.gamePhase >= OpeningPhaseScore {
		return 1.0
	}
	if p.gamePhase <= 0 {
		return 0.0
	}
	return float64(p.gamePhase) / float64(OpeningPhaseScore)
}

// GetEnPassantSquare returns the current en-passant target square, or
// SqNone if none is available.
func (p *Position) GetEnPassantSquare() Square { return p.enPassantSquare }

// CastlingRights returns the current castling-rights mask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// KingSquare returns the square the king of color c stands on.
func (p *Position) KingSquare(c Color) Square { return p.kingSquare[c] }

// HalfMoveClock returns the number of halfmoves since the last capture
// or pawn move, for fifty-move-rule detection.
func (p *Position) HalfMoveClock() int { return p.halfMoveClock }

// PlyCount returns the number of halfmoves played since the game start
// (or since the FEN's fullmove counter, for a position set up mid-game).
func (p *Position) PlyCount() int { return p.plyCount }

// Material returns the material sum (pawns included) of color c.
func (p *Position) Material(c Color) Value { return p.material[c] }

// MaterialNonPawn returns the material sum of color c excluding pawns.
func (p *Position) MaterialNonPawn(c Color) Value { return p.materialNonPawn[c] }

// PieceTypeCount returns how many pieces of type pt color c has on the
// board.
func (p *Position) PieceTypeCount(c Color, pt PieceType) int { return p.pieceTypeCount[c][pt] }

// PsqMidValue returns the mid-game piece-square accumulator of color c.
func (p *Position) PsqMidValue(c Color) int { return p.psqMid[c] }

// PsqEndValue returns the end-game piece-square accumulator of color c.
func (p *Position) PsqEndValue(c Color) int { return p.psqEnd[c] }

// LastMove returns the most recently made move, or MoveNone if none
// has been made.
func (p *Position) LastMove() Move { return p.lastMove }

// LastCapturedPiece returns the piece captured by the most recent move,
// or PieceNone if it was not a capture.
func (p *Position) LastCapturedPiece() Piece { return p.lastCapturedPiece }

// WasCapturingMove reports whether the most recent move was a capture.
func (p *Position) WasCapturingMove() bool { return p.lastCapturedPiece != PieceNone }

// WasLegalMove reports whether the most recently made move left its
// own king safe. Legal moves returned by GenerateLegalMoves always
// satisfy this; the accessor exists for callers that make a move from
// another source (e.g. a UCI driver) before validating it.
func (p *Position) WasLegalMove() bool { return p.wasLegal }

// StringFen renders the position as a FEN string.
func (p *Position) StringFen() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for f := 0; f < 8; f++ {
			sq := MakeSquare(File(f), Rank(r))
			pc := p.mailbox[sq.Sq120()]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteString("/")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.sideToMove.String())
	sb.WriteString(" ")
	sb.WriteString(p.castlingRights.String())
	sb.WriteString(" ")
	sb.WriteString(p.enPassantSquare.String())
	fullMove := p.plyCount/2 + 1
	sb.WriteString(fmt.Sprintf(" %d %d", p.halfMoveClock, fullMove))
	return sb.String()
}

// StringBoard renders an ASCII board diagram for debug logging.
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		sb.WriteString(Rank(r).String())
		sb.WriteString(" ")
		for f := 0; f < 8; f++ {
			sq := MakeSquare(File(f), Rank(r))
			pc := p.mailbox[sq.Sq120()]
			if pc == PieceNone {
				sb.WriteString(". ")
				continue
			}
			sb.WriteString(pc.Char())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// String renders the board diagram followed by the FEN string.
func (p *Position) String() string {
	return p.StringBoard() + p.StringFen()
}
