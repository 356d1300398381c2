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

package position

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligolfer91/endamat-chess/internal/config"
	myLogging "github.com/eligolfer91/endamat-chess/internal/logging"
	"github.com/eligolfer91/endamat-chess/internal/pst"
	. "github.com/eligolfer91/endamat-chess/internal/types"
	"github.com/eligolfer91/endamat-chess/internal/zobrist"
)

var logTest *logging.Logger

// make tests run in the projects root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

// Setup the tests
func TestMain(m *testing.M) {
	config.Setup()
	logTest = myLogging.GetTestLog()
	code := m.Run()
	os.Exit(code)
}

// mv builds a move from square labels, reading the moved piece off the
// board so tests do not have to spell it out.
func mv(p *Position, from, to string, mt MoveType) Move {
	f := MustSquare(from)
	return MoveOf(f, MustSquare(to), mt, p.GetPiece(f))
}

func TestPositionCreation(t *testing.T) {
	p, err := NewPositionFen(StartFen)
	require.NoError(t, err)

	assert.Equal(t, MakePiece(White, Rook), p.GetPiece(MustSquare("a1")))
	assert.Equal(t, MakePiece(White, King), p.GetPiece(MustSquare("e1")))
	assert.Equal(t, MakePiece(Black, Queen), p.GetPiece(MustSquare("d8")))
	assert.Equal(t, MakePiece(Black, Pawn), p.GetPiece(MustSquare("e7")))
	assert.Equal(t, PieceNone, p.GetPiece(MustSquare("e4")))

	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, CastlingAny, p.CastlingRights())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, MustSquare("e1"), p.KingSquare(White))
	assert.Equal(t, MustSquare("e8"), p.KingSquare(Black))
	assert.Equal(t, OpeningPhaseScore, p.GamePhase())
	assert.Equal(t, Value(0), p.Material(White)-p.Material(Black))
	assert.Equal(t, 0, p.PsqMidValue(White)-p.PsqMidValue(Black))
	assert.Equal(t, 0, p.PsqEndValue(White)-p.PsqEndValue(Black))
	assert.Equal(t, StartFen, p.StringFen())

	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	p, err = NewPositionFen(fen)
	require.NoError(t, err)
	assert.Equal(t, Black, p.NextPlayer())
	assert.Equal(t, CastlingBlack, p.CastlingRights())
	assert.Equal(t, MustSquare("e3"), p.GetEnPassantSquare())
	assert.Equal(t, MustSquare("g1"), p.KingSquare(White))
	assert.Equal(t, MustSquare("e8"), p.KingSquare(Black))
	assert.Equal(t, 3, p.PieceTypeCount(Black, Queen))
	assert.Equal(t, fen, p.StringFen())
}

func TestPositionFenValidation(t *testing.T) {
	invalid := []string{
		"",                                        // empty
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP",      // too few fields
		"rnbqkbnr/pppppppp/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",      // 7 ranks
		"rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",   // 9 files in a rank
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq -",    // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq -",    // bad castling letter
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4",   // ep not on rank 3/6
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1", // negative halfmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",   // fullmove < 1
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x",     // non-numeric halfmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 x",   // non-numeric fullmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQLBNR w KQkq -",       // invalid piece letter
		"rnbq1bnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -",       // black king missing
		"rnbqkknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQ1BNR w KQkq -",       // two black kings
	}
	for _, fen := range invalid {
		_, err := NewPositionFen(fen)
		assert.Error(t, err, "fen %q should be rejected", fen)
	}

	// halfmove/fullmove default to 0/1 when absent
	p, err := NewPositionFen("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	require.NoError(t, err)
	assert.Equal(t, 0, p.HalfMoveClock())
	assert.Equal(t, StartFen, p.StringFen())
}

func TestPosition_DoUndoMove(t *testing.T) {
	p := NewPosition()
	startZobrist := p.ZobristKey()
	p.DoMove(mv(p, "e2", "e4", TwoStep))
	p.DoMove(mv(p, "d7", "d5", TwoStep))
	p.DoMove(mv(p, "e4", "d5", Normal))
	p.DoMove(mv(p, "d8", "d5", Normal))
	p.DoMove(mv(p, "b1", "c3", Normal))
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()
	p.UndoMove()
	assert.Equal(t, StartFen, p.StringFen())
	assert.Equal(t, startZobrist, p.ZobristKey())
}

func TestPosition_DoMoveNormal(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(mv(p, "c4", "d4", Normal))
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/3qPp2/B5R1/p1p2PPP/1R4K1 w kq - 1 2", p.StringFen())

	p, _ = NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(mv(p, "c4", "e4", Normal))
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/4qp2/B5R1/p1p2PPP/1R4K1 w kq - 0 2", p.StringFen())

	p, _ = NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 w kq - 0 1")
	p.DoMove(mv(p, "g3", "g6", Normal))
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1R1/8/2q1Pp2/B7/p1p2PPP/1R4K1 b kq - 0 1", p.StringFen())
}

func TestPosition_DoMoveCastling(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.DoMove(mv(p, "e1", "g1", Castling))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1", p.StringFen())
	p.UndoMove()
	p.DoMove(mv(p, "e1", "c1", Castling))
	assert.Equal(t, "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1", p.StringFen())
	p.UndoMove()

	p, _ = NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1")
	p.DoMove(mv(p, "e8", "g8", Castling))
	assert.Equal(t, "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2", p.StringFen())
	p.UndoMove()
	p.DoMove(mv(p, "e8", "c8", Castling))
	assert.Equal(t, "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2", p.StringFen())
}

func TestPosition_RookMoveClearsCastlingRight(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.DoMove(mv(p, "h1", "h8", Normal)) // rook leaves h1 and captures on h8
	// both the moving rook's and the captured rook's rights are gone
	assert.Equal(t, CastlingWhiteOOO|CastlingBlackOOO, p.CastlingRights())
	p.UndoMove()
	assert.Equal(t, CastlingAny, p.CastlingRights())
}

func TestPosition_DoMoveEnPassant(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(mv(p, "f4", "e3", EnPassant))
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q5/B3p1R1/p1p2PPP/1R4K1 w kq - 0 2", p.StringFen())
	p.UndoMove()
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1", p.StringFen())
}

func TestPosition_DoMovePromotion(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	p.DoMove(mv(p, "a2", "a1", PromoQ))
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/2p2PPP/qR4K1 w kq - 0 2", p.StringFen())
	p.UndoMove()

	p.DoMove(mv(p, "a2", "b1", PromoR)) // capture promotion
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/2p2PPP/1r4K1 w kq - 0 2", p.StringFen())
	p.UndoMove()
	assert.Equal(t, "r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1", p.StringFen())
}

func TestPosition_IsAttacked(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/6R1/p1p2PPP/1R4K1 b kq e3 0 1")

	// pawns
	assert.True(t, p.IsAttacked(MustSquare("g3"), White))
	assert.True(t, p.IsAttacked(MustSquare("e3"), White))
	assert.True(t, p.IsAttacked(MustSquare("b1"), Black))
	assert.True(t, p.IsAttacked(MustSquare("e3"), Black))

	// knight
	assert.True(t, p.IsAttacked(MustSquare("e5"), Black))
	assert.True(t, p.IsAttacked(MustSquare("f4"), Black))
	assert.False(t, p.IsAttacked(MustSquare("g1"), Black))

	// sliding
	assert.True(t, p.IsAttacked(MustSquare("g6"), White))
	assert.True(t, p.IsAttacked(MustSquare("a5"), Black))

	p, _ = NewPositionFen("rnbqkbnr/1ppppppp/8/p7/Q1P5/8/PP1PPPPP/RNB1KBNR b KQkq - 1 2")

	// king
	assert.True(t, p.IsAttacked(MustSquare("d1"), White))
	assert.False(t, p.IsAttacked(MustSquare("e1"), Black))

	// rook
	assert.True(t, p.IsAttacked(MustSquare("a5"), Black))
	assert.False(t, p.IsAttacked(MustSquare("a4"), Black))

	// queen
	assert.False(t, p.IsAttacked(MustSquare("e8"), White))
	assert.True(t, p.IsAttacked(MustSquare("d7"), White))

	// blocked sliders do not attack through pieces
	p, _ = NewPositionFen("r1bqk1nr/pppp1ppp/2nb4/1B2B3/3pP3/8/PPP2PPP/RN1QK1NR b KQkq - 0 1")
	assert.False(t, p.IsAttacked(MustSquare("e8"), White))
	assert.False(t, p.IsAttacked(MustSquare("e1"), Black))
}

// recomputed is a full from-scratch recomputation of every incrementally
// maintained field, used to verify the make/unmake bookkeeping.
type recomputed struct {
	zobristKey     uint64
	material       [2]Value
	pieceTypeCount [2][PtLength]int
	psqMid         [2]int
	psqEnd         [2]int
	gamePhase      int
	kingSquare     [2]Square
}

func recompute(p *Position) recomputed {
	var r recomputed
	for sq := Square(0); sq < 64; sq++ {
		piece := p.GetPiece(sq)
		if piece == PieceNone {
			continue
		}
		r.zobristKey ^= zobrist.PieceKey(piece, sq)
		c := piece.ColorOf()
		pt := piece.TypeOf()
		r.pieceTypeCount[c][pt]++
		r.material[c] += pt.ValueOf()
		r.gamePhase += pt.GamePhaseValue()
		mid, end := pst.PstValue(c, pt, sq)
		r.psqMid[c] += mid
		r.psqEnd[c] += end
		if pt == King {
			r.kingSquare[c] = sq
		}
	}
	if p.GetEnPassantSquare() != SqNone {
		r.zobristKey ^= zobrist.EnPassantKey(p.GetEnPassantSquare())
	}
	r.zobristKey ^= zobrist.CastlingKey(p.CastlingRights())
	if p.NextPlayer() == Black {
		r.zobristKey ^= zobrist.Side
	}
	return r
}

func assertIncrementalsMatch(t *testing.T, p *Position, context string) {
	t.Helper()
	r := recompute(p)
	assert.Equal(t, r.zobristKey, p.ZobristKey(), "zobrist key %s", context)
	assert.Equal(t, r.gamePhase, p.GamePhase(), "game phase %s", context)
	for c := White; c <= Black; c++ {
		assert.Equal(t, r.material[c], p.Material(c), "material[%s] %s", c, context)
		assert.Equal(t, r.psqMid[c], p.PsqMidValue(c), "psqMid[%s] %s", c, context)
		assert.Equal(t, r.psqEnd[c], p.PsqEndValue(c), "psqEnd[%s] %s", c, context)
		assert.Equal(t, r.kingSquare[c], p.KingSquare(c), "kingSquare[%s] %s", c, context)
		for pt := King; pt < PtLength; pt++ {
			assert.Equal(t, r.pieceTypeCount[c][pt], p.PieceTypeCount(c, pt),
				"pieceTypeCount[%s][%s] %s", c, pt, context)
		}
	}
}

// Every incrementally maintained field must equal a full recomputation
// after every make and again after the matching unmake, and the position
// must come back field-for-field identical.
func TestPosition_IncrementalInvariants(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1",
		"n1n5/PPPk4/8/8/8/8/4Kppp/5N1N w - - 0 1", // promotion playground
	}
	for _, fen := range fens {
		p, err := NewPositionFen(fen)
		require.NoError(t, err)
		assertIncrementalsMatch(t, p, "after setup of "+fen)

		before := *p
		moves := p.GenerateLegalMoves()
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			p.DoMove(m)
			assertIncrementalsMatch(t, p, "after "+m.String()+" in "+fen)
			p.UndoMove()
			assertIncrementalsMatch(t, p, "after undo of "+m.String()+" in "+fen)
			assert.Equal(t, before, *p, "position not restored after %s in %s", m.String(), fen)
		}
	}
}

func TestPosition_GenerateLegalMovesCounts(t *testing.T) {
	p := NewPosition()
	assert.Equal(t, 20, p.GenerateLegalMoves().Len())

	// Kiwipete has 48 legal moves at depth 1
	p, _ = NewPositionFen("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	assert.Equal(t, 48, p.GenerateLegalMoves().Len())
}

func TestPosition_PinnedPieceMayOnlyMoveAlongPin(t *testing.T) {
	// the white knight on d2 is pinned by the rook on d8 and has no moves
	p, _ := NewPositionFen("3r3k/8/8/8/8/8/3N4/3K4 w - - 0 1")
	moves := p.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, MustSquare("d2"), moves.At(i).From)
	}

	// a rook pinned on a file may still slide along it
	p, _ = NewPositionFen("3r3k/8/8/8/8/8/3R4/3K4 w - - 0 1")
	moves = p.GenerateLegalMoves()
	rookMoves := 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From == MustSquare("d2") {
			rookMoves++
			assert.Equal(t, FileD, m.To.File(), "pinned rook left the pin file with %s", m.String())
		}
	}
	assert.Equal(t, 6, rookMoves) // d3..d8
}

func TestPosition_EnPassantPinnedOnRank(t *testing.T) {
	// capturing en passant would remove both pawns from the 5th rank and
	// expose the white king on a5 to the rook on h5 - must not be generated
	p, _ := NewPositionFen("8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1")
	moves := p.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, EnPassant, moves.At(i).MType, "illegal en passant %s generated", moves.At(i).String())
	}
}

func TestPosition_DoubleCheckOnlyKingMoves(t *testing.T) {
	// knight on f6 and rook on e1 both give check
	p, _ := NewPositionFen("4k3/8/5N2/8/8/8/8/4R1K1 b - - 0 1")
	require.True(t, p.HasCheck())
	moves := p.GenerateLegalMoves()
	require.Greater(t, moves.Len(), 0)
	for i := 0; i < moves.Len(); i++ {
		assert.Equal(t, King, moves.At(i).Piece.TypeOf(), "non-king move %s under double check", moves.At(i).String())
	}
}

func TestPosition_CheckEvasionsBlockOrCapture(t *testing.T) {
	// rook gives check along the e-file; legal replies are king moves,
	// blocks on the e-file, or capturing the rook
	p, _ := NewPositionFen("4r1k1/8/8/8/8/8/3B4/R3K3 w - - 0 1")
	require.True(t, p.HasCheck())
	moves := p.GenerateLegalMoves()
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.Piece.TypeOf() == King {
			continue
		}
		onCheckRay := m.To.File() == FileE
		capturesChecker := m.To == MustSquare("e8")
		assert.True(t, onCheckRay || capturesChecker, "move %s neither blocks nor captures", m.String())
	}
}

func TestPosition_GenerateLegalCaptures(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/3q4/3Q4/8/8/R3K2R w KQkq - 0 1")
	captures := p.GenerateLegalCaptures()
	require.Greater(t, captures.Len(), 0)
	for i := 0; i < captures.Len(); i++ {
		assert.True(t, p.IsCapturingMove(captures.At(i)))
	}

	// promotion captures outside check emit only the queen promotion
	p, _ = NewPositionFen("1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	captures = p.GenerateLegalCaptures()
	promos := 0
	for i := 0; i < captures.Len(); i++ {
		if captures.At(i).MType.IsPromotion() {
			promos++
			assert.Equal(t, PromoQ, captures.At(i).MType)
		}
	}
	assert.Equal(t, 1, promos)
}

func TestPosition_CheckmateAndStalemate(t *testing.T) {
	// checkmate: no legal moves and in check
	p, _ := NewPositionFen("8/8/8/8/8/3k4/3q4/3K4 w - - 0 1")
	assert.Equal(t, 0, p.GenerateLegalMoves().Len())
	assert.True(t, p.HasCheck())

	// stalemate: no legal moves and not in check
	p, _ = NewPositionFen("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	assert.Equal(t, 0, p.GenerateLegalMoves().Len())
	assert.False(t, p.HasCheck())
}

func TestPosition_CheckRepetitions(t *testing.T) {
	p := NewPosition()
	p.DoMove(mv(p, "e2", "e4", TwoStep))
	p.DoMove(mv(p, "e7", "e5", TwoStep))
	assert.False(t, p.CheckRepetitions(3))
	// shuffle the knights three times; the key right after e7e5 carries the
	// e6 en-passant term, so the position reached by each shuffle is a new
	// key the first time and occurs a third time after the third shuffle
	for i := 0; i < 3; i++ {
		p.DoMove(mv(p, "g1", "f3", Normal))
		p.DoMove(mv(p, "b8", "c6", Normal))
		p.DoMove(mv(p, "f3", "g1", Normal))
		p.DoMove(mv(p, "c6", "b8", Normal))
	}
	assert.True(t, p.CheckRepetitions(3))
}

func TestPosition_RepetitionScanStopsAtPawnMoveOrCapture(t *testing.T) {
	p := NewPosition()
	p.DoMove(mv(p, "g1", "f3", Normal))
	p.DoMove(mv(p, "b8", "c6", Normal))
	p.DoMove(mv(p, "f3", "g1", Normal))
	p.DoMove(mv(p, "c6", "b8", Normal))
	p.DoMove(mv(p, "g1", "f3", Normal))
	p.DoMove(mv(p, "b8", "c6", Normal))
	p.DoMove(mv(p, "f3", "g1", Normal))
	p.DoMove(mv(p, "c6", "b8", Normal))
	// startpos occurred three times
	assert.True(t, p.CheckRepetitions(3))
	// a pawn move is irreversible; earlier occurrences no longer count
	p.DoMove(mv(p, "e2", "e4", TwoStep))
	assert.False(t, p.CheckRepetitions(3))
}

func TestPosition_DoNullMove(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/1ppn3p/2q1q1n1/8/2q1Pp2/B5R1/p1p2PPP/1R4K1 b kq e3 0 1")
	before := *p
	p.DoNullMove()
	assert.Equal(t, White, p.NextPlayer())
	assert.Equal(t, SqNone, p.GetEnPassantSquare())
	assert.NotEqual(t, before.ZobristKey(), p.ZobristKey())
	p.UndoNullMove()
	assert.Equal(t, before.StringFen(), p.StringFen())
	assert.Equal(t, before.ZobristKey(), p.ZobristKey())
}

func TestPosition_CheckInsufficientMaterial(t *testing.T) {
	// both sides have a bare king
	p, _ := NewPositionFen("8/3k4/8/8/8/8/4K3/8 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())

	// one side has a king and a minor piece against a bare king
	p, _ = NewPositionFen("8/3k4/8/8/8/2B5/4K3/8 w - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())
	p, _ = NewPositionFen("8/8/4K3/8/8/2b5/4k3/8 b - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())

	// king and bishop each
	p, _ = NewPositionFen("8/8/3BK3/8/8/2b5/4k3/8 b - - 0 1")
	assert.True(t, p.HasInsufficientMaterial())

	// two bishops can force mate
	p, _ = NewPositionFen("8/8/2B1K3/2B5/8/8/4k3/8 b - - 0 1")
	assert.False(t, p.HasInsufficientMaterial())

	// any pawn, rook or queen is enough
	p, _ = NewPositionFen("8/3k4/8/8/8/8/4KP2/8 w - - 0 1")
	assert.False(t, p.HasInsufficientMaterial())
	p, _ = NewPositionFen("8/3k4/8/8/8/8/4K3/7R w - - 0 1")
	assert.False(t, p.HasInsufficientMaterial())
}

func TestPosition_WasLegalMove(t *testing.T) {
	p, _ := NewPositionFen("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	p.DoMove(mv(p, "e1", "g1", Castling))
	assert.True(t, p.WasLegalMove())
	p.UndoMove()

	// moving the a1 rook away leaves the king safe too
	p.DoMove(mv(p, "a1", "a8", Normal))
	assert.True(t, p.WasLegalMove())
}

func TestPosition_IsLegalMove(t *testing.T) {
	p := NewPosition()
	assert.True(t, p.IsLegalMove(mv(p, "e2", "e4", TwoStep)))
	assert.False(t, p.IsLegalMove(mv(p, "e2", "e5", Normal)))
	assert.False(t, p.IsLegalMove(mv(p, "e1", "g1", Castling)))
}

func TestPosition_GivesCheck(t *testing.T) {
	p, _ := NewPositionFen("6k1/p3q2p/1n1Q2pB/8/5P2/6P1/PP5P/3R2K1 b - - 0 1")
	assert.True(t, p.GivesCheck(mv(p, "e7", "e3", Normal)))
	assert.False(t, p.GivesCheck(mv(p, "e7", "e4", Normal)))
}
