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
	. "github.com/eligolfer91/endamat-chess/internal/types"
	"github.com/eligolfer91/endamat-chess/internal/moveslice"
)

// GenerateLegalMoves generates every legal move (quiet and capturing)
// for the side to move. When in check it only returns moves that
// evade the check(s); when not in check it returns the full move set.
func (p *Position) GenerateLegalMoves() *moveslice.MoveSlice {
	return p.generateMoves(false)
}

// GenerateLegalCaptures generates every legal capturing move (including
// en passant) for the side to move. Promotion captures emit all four
// promotion kinds only while evading check; otherwise only the queen
// promotion is emitted, since the quiescence search this feeds never
// needs the under-promotions.
func (p *Position) GenerateLegalCaptures() *moveslice.MoveSlice {
	return p.generateMoves(true)
}

// HasLegalMove reports whether the side to move has at least one legal
// move, i.e. whether the position is neither checkmate nor stalemate.
func (p *Position) HasLegalMove() bool {
	return p.GenerateLegalMoves().Len() > 0
}

func allowedByCheck(ctx checkContext, target Square) bool {
	if !ctx.inCheck {
		return true
	}
	for _, s := range ctx.blockOrCapture {
		if s == target {
			return true
		}
	}
	return false
}

func (p *Position) generateMoves(capturesOnly bool) *moveslice.MoveSlice {
	us := p.sideToMove
	them := us.Flip()
	ctx := p.computeCheckContext(us)
	moves := moveslice.NewMoveSlice(48)

	p.genKingMoves(moves, us, ctx, capturesOnly)
	if !capturesOnly && !ctx.double {
		p.genCastling(moves, us, ctx)
	}

	if ctx.double {
		return moves
	}

	for sq := Square(0); sq < 64; sq++ {
		pc := p.mailbox[sq.Sq120()]
		if pc == PieceNone || pc.ColorOf() != us {
			continue
		}
		switch pc.TypeOf() {
		case Pawn:
			p.genPawnMoves(moves, sq, us, them, ctx, capturesOnly)
		case Knight:
			p.genKnightMoves(moves, sq, us, ctx, capturesOnly)
		case Bishop:
			p.genSliderMoves(moves, sq, us, BishopDirs[:], ctx, capturesOnly)
		case Rook:
			p.genSliderMoves(moves, sq, us, RookDirs[:], ctx, capturesOnly)
		case Queen:
			p.genSliderMoves(moves, sq, us, KingDirs[:], ctx, capturesOnly)
		}
	}
	return moves
}

func (p *Position) genKingMoves(moves *moveslice.MoveSlice, us Color, ctx checkContext, capturesOnly bool) {
	kingSq := p.kingSquare[us]
	piece := p.mailbox[kingSq.Sq120()]
	for _, d := range KingDirs {
		mb := kingSq.Sq120() + int(d)
		destSq := SquareOf(mb)
		if destSq == SqInvalid {
			continue
		}
		occ := p.mailbox[mb]
		if occ != PieceNone && occ.ColorOf() == us {
			continue
		}
		if occ == PieceNone && capturesOnly {
			continue
		}
		if !p.kingMoveLegal(kingSq, destSq, us) {
			continue
		}
		moves.PushBack(Move{From: kingSq, To: destSq, MType: Normal, Piece: piece})
	}
}

func (p *Position) genCastling(moves *moveslice.MoveSlice, us Color, ctx checkContext) {
	if ctx.inCheck {
		return
	}
	them := us.Flip()
	king := MakePiece(us, King)

	empty := func(sq Square) bool { return p.mailbox[sq.Sq120()] == PieceNone }
	safe := func(sq Square) bool { return !p.IsAttacked(sq, them) }

	if us == White {
		if p.castlingRights.Has(CastlingWhiteOO) {
			f1, g1 := MustSquare("f1"), MustSquare("g1")
			if empty(f1) && empty(g1) && safe(f1) && safe(g1) {
				moves.PushBack(Move{From: MustSquare("e1"), To: g1, MType: Castling, Piece: king})
			}
		}
		if p.castlingRights.Has(CastlingWhiteOOO) {
			b1, c1, d1 := MustSquare("b1"), MustSquare("c1"), MustSquare("d1")
			if empty(b1) && empty(c1) && empty(d1) && safe(d1) && safe(c1) {
				moves.PushBack(Move{From: MustSquare("e1"), To: c1, MType: Castling, Piece: king})
			}
		}
	} else {
		if p.castlingRights.Has(CastlingBlackOO) {
			f8, g8 := MustSquare("f8"), MustSquare("g8")
			if empty(f8) && empty(g8) && safe(f8) && safe(g8) {
				moves.PushBack(Move{From: MustSquare("e8"), To: g8, MType: Castling, Piece: king})
			}
		}
		if p.castlingRights.Has(CastlingBlackOOO) {
			b8, c8, d8 := MustSquare("b8"), MustSquare("c8"), MustSquare("d8")
			if empty(b8) && empty(c8) && empty(d8) && safe(d8) && safe(c8) {
				moves.PushBack(Move{From: MustSquare("e8"), To: c8, MType: Castling, Piece: king})
			}
		}
	}
}

func (p *Position) genKnightMoves(moves *moveslice.MoveSlice, sq Square, us Color, ctx checkContext, capturesOnly bool) {
	if ctx.pinnedDir[sq] != 0 {
		return
	}
	piece := p.mailbox[sq.Sq120()]
	for _, d := range KnightDirs {
		mb := sq.Sq120() + int(d)
		destSq := SquareOf(mb)
		if destSq == SqInvalid {
			continue
		}
		occ := p.mailbox[mb]
		if occ == PieceNone {
			if !capturesOnly && allowedByCheck(ctx, destSq) {
				moves.PushBack(Move{From: sq, To: destSq, MType: Normal, Piece: piece})
			}
		} else if occ.ColorOf() != us && allowedByCheck(ctx, destSq) {
			moves.PushBack(Move{From: sq, To: destSq, MType: Normal, Piece: piece})
		}
	}
}

func (p *Position) genSliderMoves(moves *moveslice.MoveSlice, sq Square, us Color, dirs []MboxDir, ctx checkContext, capturesOnly bool) {
	pinDir := ctx.pinnedDir[sq]
	piece := p.mailbox[sq.Sq120()]
	for _, dir := range dirs {
		if pinDir != 0 && dir != pinDir && dir != -pinDir {
			continue
		}
		mb := sq.Sq120()
		for {
			mb += int(dir)
			occ := p.mailbox[mb]
			if occ == PieceInvalid {
				break
			}
			destSq := SquareOf(mb)
			if occ == PieceNone {
				if !capturesOnly && allowedByCheck(ctx, destSq) {
					moves.PushBack(Move{From: sq, To: destSq, MType: Normal, Piece: piece})
				}
				continue
			}
			if occ.ColorOf() != us && allowedByCheck(ctx, destSq) {
				moves.PushBack(Move{From: sq, To: destSq, MType: Normal, Piece: piece})
			}
			break
		}
	}
}

func (p *Position) addPawnMove(moves *moveslice.MoveSlice, from, to Square, piece Piece, promoRank Rank, allFour bool) {
	if to.Rank() != promoRank {
		moves.PushBack(Move{From: from, To: to, MType: Normal, Piece: piece})
		return
	}
	moves.PushBack(Move{From: from, To: to, MType: PromoQ, Piece: piece})
	if allFour {
		moves.PushBack(Move{From: from, To: to, MType: PromoR, Piece: piece})
		moves.PushBack(Move{From: from, To: to, MType: PromoB, Piece: piece})
		moves.PushBack(Move{From: from, To: to, MType: PromoN, Piece: piece})
	}
}

func (p *Position) genPawnMoves(moves *moveslice.MoveSlice, sq Square, us, them Color, ctx checkContext, capturesOnly bool) {
	piece := p.mailbox[sq.Sq120()]
	forward := us.PawnForward()
	pinDir := ctx.pinnedDir[sq]
	promoRank := us.PawnPromotionRank()

	if !capturesOnly && (pinDir == 0 || forward == pinDir || forward == -pinDir) {
		pushMb := sq.Sq120() + int(forward)
		if p.mailbox[pushMb] == PieceNone {
			pushSq := SquareOf(pushMb)
			if allowedByCheck(ctx, pushSq) {
				p.addPawnMove(moves, sq, pushSq, piece, promoRank, true)
			}
			if sq.Rank() == us.PawnStartRank() {
				dbMb := pushMb + int(forward)
				if p.mailbox[dbMb] == PieceNone {
					dbSq := SquareOf(dbMb)
					if allowedByCheck(ctx, dbSq) {
						moves.PushBack(Move{From: sq, To: dbSq, MType: TwoStep, Piece: piece})
					}
				}
			}
		}
	}

	allFourCaptures := !capturesOnly || ctx.inCheck
	for _, dir := range [2]MboxDir{forward - 1, forward + 1} {
		if pinDir != 0 && dir != pinDir && dir != -pinDir {
			continue
		}
		mb := sq.Sq120() + int(dir)
		destSq := SquareOf(mb)
		if destSq == SqInvalid {
			continue
		}
		occ := p.mailbox[mb]
		if occ != PieceNone {
			if occ.ColorOf() == them && allowedByCheck(ctx, destSq) {
				p.addPawnMove(moves, sq, destSq, piece, promoRank, allFourCaptures)
			}
			continue
		}
		if p.enPassantSquare == SqNone || destSq != p.enPassantSquare {
			continue
		}
		capturedSq := SquareOf(mb - int(forward))
		if ctx.inCheck {
			inBlock := false
			for _, s := range ctx.blockOrCapture {
				if s == capturedSq {
					inBlock = true
					break
				}
			}
			if !inBlock {
				continue
			}
		}
		if p.enPassantRevealsCheck(sq, capturedSq, us) {
			continue
		}
		moves.PushBack(Move{From: sq, To: destSq, MType: EnPassant, Piece: piece})
	}
}
