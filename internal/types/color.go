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

import "fmt"

// Color represents constants for each chess color White and Black.
type Color uint8

// Constants for each color.
const (
	White       Color = 0
	Black       Color = 1
	ColorLength int   = 2
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// IsValid checks if c represents a valid color.
func (c Color) IsValid() bool {
	return c < 2
}

// String returns a string representation of color as "w" or "b".
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		panic(fmt.Sprintf("invalid color %d", c))
	}
}

// moveDirectionFactor mirrors the sign flip applied to the evaluator's
// side-to-move relative score.
var moveDirectionFactor = [2]int{1, -1}

// Direction returns +1 for White and -1 for Black.
func (c Color) Direction() int {
	return moveDirectionFactor[c]
}

// pawnForward is the mailbox-step direction a pawn of this color
// advances: -10 (towards rank 8) for White, +10 (towards rank 1) for Black.
var pawnForward = [2]MboxDir{NorthDir, SouthDir}

// PawnForward returns the forward step direction of a pawn of this color.
func (c Color) PawnForward() MboxDir {
	return pawnForward[c]
}

// pawnStartRank is the rank a pawn of this color starts on.
var pawnStartRank = [2]Rank{Rank2, Rank7}

// PawnStartRank returns the starting rank of pawns of this color.
func (c Color) PawnStartRank() Rank {
	return pawnStartRank[c]
}

// pawnPromotionRank is the rank a pawn of this color promotes on.
var pawnPromotionRank = [2]Rank{Rank8, Rank1}

// PawnPromotionRank returns the promotion rank for pawns of this color.
func (c Color) PawnPromotionRank() Rank {
	return pawnPromotionRank[c]
}
