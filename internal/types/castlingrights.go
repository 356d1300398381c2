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

package types

import "strings"

// CastlingRights is a 4-bit mask: bit 0 white kingside, bit 1 white
// queenside, bit 2 black kingside, bit 3 black queenside.
type CastlingRights uint8

// Constants for castling rights.
const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1
	CastlingWhiteOOO CastlingRights = 2
	CastlingBlackOO  CastlingRights = 4
	CastlingBlackOOO CastlingRights = 8
	CastlingWhite                   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack
)

// Has checks if all bits of rhs are set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given castling right(s).
func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

// Add sets the given castling right(s).
func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

// String returns the FEN castling-availability field, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteString("q")
	}
	return sb.String()
}

// rightsMask is the 120-entry mailbox-indexed table describing:
// 15 (CastlingAny) everywhere except on king/rook home squares, where the
// matching right(s) are cleared. Applied at both the from- and to-square
// of every move: rights &= rightsMask[from] & rightsMask[to].
var rightsMask = func() [120]CastlingRights {
	var masks [120]CastlingRights
	for i := range masks {
		masks[i] = CastlingAny
	}
	clear := func(label string, bits CastlingRights) {
		masks[MustSquare(label).Sq120()] = CastlingAny &^ bits
	}
	clear("e1", CastlingWhite)
	clear("e8", CastlingBlack)
	clear("a1", CastlingWhiteOOO)
	clear("h1", CastlingWhiteOO)
	clear("a8", CastlingBlackOOO)
	clear("h8", CastlingBlackOO)
	return masks
}()

// RightsMask returns the castling-rights mask for a move touching this
// real square (used at both its from- and to-square).
func RightsMask(sq Square) CastlingRights {
	return rightsMask[sq.Sq120()]
}
