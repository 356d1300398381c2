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
)

// checkContext is the result of one king-ray scan: whether the side to
// move is in check, whether it is in check from two pieces at once (in
// which case only king moves are legal), the set of squares a non-king
// move must land on to block or capture a single checker, and the
// mailbox direction along which each square is pinned (zero meaning
// not pinned - no real king-step direction is zero, so it doubles as
// the sentinel).
type checkContext struct {
	inCheck        bool
	double         bool
	blockOrCapture []Square
	pinnedDir      [64]MboxDir
}

// pawnCheckDirs returns the two diagonal directions, walked outward
// from us's king, along which an enemy pawn standing one square away
// gives check: the a8-side diagonals for White's king, the h1-side
// diagonals for Black's.
func pawnCheckDirs(us Color) [2]MboxDir {
	if us == White {
		return [2]MboxDir{NorthWestDir, NorthEastDir}
	}
	return [2]MboxDir{SouthWestDir, SouthEastDir}
}

// raySquares lists every square stepped through from fromMb to toMb
// (exclusive of fromMb, inclusive of toMb) along dir.
func raySquares(fromMb int, dir MboxDir, toMb int) []Square {
	squares := make([]Square, 0, 7)
	mb := fromMb
	for {
		mb += int(dir)
		squares = append(squares, SquareOf(mb))
		if mb == toMb {
			break
		}
	}
	return squares
}

// computeCheckContext scans outward from us's king along the eight
// king directions and the eight knight offsets to find checks and
// pins. A ray's first occupied square, if friendly, is a pin candidate;
// if the next occupied square beyond it is an enemy slider aligned with
// the ray, that candidate is pinned. A ray whose first occupied square
// is an aligned enemy slider (or, at distance one, a pawn on the
// correct diagonal) is a check with no pin.
func (p *Position) computeCheckContext(us Color) checkContext {
	var ctx checkContext
	them := us.Flip()
	kingMb := p.kingSquare[us].Sq120()
	checkers := 0

	for _, dir := range KingDirs {
		mb := kingMb
		steps := 0
		candidateSq := SqNone
		for {
			mb += int(dir)
			steps++
			pc := p.mailbox[mb]
			if pc == PieceInvalid {
				break
			}
			if pc == PieceNone {
				continue
			}
			if candidateSq == SqNone && pc.ColorOf() == us {
				candidateSq = SquareOf(mb)
				continue
			}
			if pc.ColorOf() != them {
				break
			}
			checks := false
			if dir.IsOrthogonal() {
				checks = pc.TypeOf() == Rook || pc.TypeOf() == Queen
			} else {
				checks = pc.TypeOf() == Bishop || pc.TypeOf() == Queen
				if !checks && steps == 1 && pc.TypeOf() == Pawn {
					for _, pd := range pawnCheckDirs(us) {
						if pd == dir {
							checks = true
							break
						}
					}
				}
			}
			if checks {
				if candidateSq != SqNone {
					ctx.pinnedDir[candidateSq] = dir
				} else {
					checkers++
					if checkers == 1 {
						ctx.blockOrCapture = raySquares(kingMb, dir, mb)
					}
				}
			}
			break
		}
	}

	for _, d := range KnightDirs {
		mb := kingMb + int(d)
		sq := SquareOf(mb)
		if sq == SqInvalid {
			continue
		}
		if pc := p.mailbox[mb]; pc != PieceNone && pc.ColorOf() == them && pc.TypeOf() == Knight {
			checkers++
			if checkers == 1 {
				ctx.blockOrCapture = []Square{sq}
			}
		}
	}

	ctx.inCheck = checkers > 0
	ctx.double = checkers > 1
	return ctx
}

// IsAttacked reports whether sq is attacked by any piece of color by.
// Used for castling legality, king-move legality and check detection;
// it never consults pin/check state, only the raw board.
func (p *Position) IsAttacked(sq Square, by Color) bool {
	mb := sq.Sq120()

	fwd := by.PawnForward()
	for _, dd := range [2]int{-1, 1} {
		amb := mb - int(fwd) + dd
		if p.mailbox[amb] == MakePiece(by, Pawn) {
			return true
		}
	}

	for _, d := range KnightDirs {
		if p.mailbox[mb+int(d)] == MakePiece(by, Knight) {
			return true
		}
	}

	for _, d := range KingDirs {
		if p.mailbox[mb+int(d)] == MakePiece(by, King) {
			return true
		}
	}

	for _, d := range KingDirs {
		m := mb
		for {
			m += int(d)
			pc := p.mailbox[m]
			if pc == PieceInvalid {
				break
			}
			if pc == PieceNone {
				continue
			}
			if pc.ColorOf() == by {
				pt := pc.TypeOf()
				if pt == Queen || (d.IsOrthogonal() && pt == Rook) || (d.IsDiagonal() && pt == Bishop) {
					return true
				}
			}
			break
		}
	}

	return false
}

// kingMoveLegal reports whether moving the king of color us from
// kingSq to destSq leaves it safe. It provisionally removes the king
// from its origin (and whatever stands on destSq, if this is a
// capture) so that a slider "seeing through" the vacated origin square
// is still caught, then restores the board before returning.
func (p *Position) kingMoveLegal(kingSq, destSq Square, us Color) bool {
	them := us.Flip()
	origKing := p.mailbox[kingSq.Sq120()]
	capturedAtDest := p.mailbox[destSq.Sq120()]
	p.mailbox[kingSq.Sq120()] = PieceNone
	p.mailbox[destSq.Sq120()] = PieceNone
	attacked := p.IsAttacked(destSq, them)
	p.mailbox[kingSq.Sq120()] = origKing
	p.mailbox[destSq.Sq120()] = capturedAtDest
	return !attacked
}

// enPassantRevealsCheck reports whether capturing en passant - removing
// the capturing pawn from from and the captured pawn from capturedSq
// simultaneously - would expose us's king to check. This is distinct
// from the static pin scan above because it is the only move that
// removes two pieces from the same rank at once; a rook or queen
// behind both pawns only becomes visible when both are gone.
func (p *Position) enPassantRevealsCheck(from, capturedSq Square, us Color) bool {
	them := us.Flip()
	origFrom := p.mailbox[from.Sq120()]
	origCaptured := p.mailbox[capturedSq.Sq120()]
	p.mailbox[from.Sq120()] = PieceNone
	p.mailbox[capturedSq.Sq120()] = PieceNone
	attacked := p.IsAttacked(p.kingSquare[us], them)
	p.mailbox[from.Sq120()] = origFrom
	p.mailbox[capturedSq.Sq120()] = origCaptured
	return attacked
}
