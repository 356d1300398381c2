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

package pst

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/eligolfer91/endamat-chess/internal/types"
)

// A single table per piece type serves both colors through the vertical
// reflection: black's value on a square must equal white's value on the
// mirrored square, for both game phases.
func TestPstColorReflection(t *testing.T) {
	for pt := King; pt < PtLength; pt++ {
		for sq := Square(0); sq < 64; sq++ {
			mirror := MakeSquare(sq.File(), Rank8-sq.Rank())
			wMid, wEnd := PstValue(White, pt, sq)
			bMid, bEnd := PstValue(Black, pt, mirror)
			assert.Equal(t, wMid, bMid, "%s mid %s vs %s", pt, sq, mirror)
			assert.Equal(t, wEnd, bEnd, "%s end %s vs %s", pt, sq, mirror)
		}
	}
}

func TestPstPawnHomeAndPromotionRanksAreZero(t *testing.T) {
	for f := FileA; f <= FileH; f++ {
		for _, r := range []Rank{Rank1, Rank8} {
			mid, end := PstValue(White, Pawn, MakeSquare(f, r))
			assert.Zero(t, mid)
			assert.Zero(t, end)
		}
	}
}

func TestCenterDistance(t *testing.T) {
	assert.Equal(t, 0, CenterDistance(MustSquare("d4")))
	assert.Equal(t, 0, CenterDistance(MustSquare("e5")))
	assert.Equal(t, 6, CenterDistance(MustSquare("a1")))
	assert.Equal(t, 6, CenterDistance(MustSquare("h8")))
	// symmetric under the vertical mirror
	for sq := Square(0); sq < 64; sq++ {
		mirror := MakeSquare(sq.File(), Rank8-sq.Rank())
		assert.Equal(t, CenterDistance(sq), CenterDistance(mirror))
	}
}

func TestSquareDistance(t *testing.T) {
	assert.Equal(t, 0, SquareDistance(MustSquare("e4"), MustSquare("e4")))
	assert.Equal(t, 2, SquareDistance(MustSquare("e4"), MustSquare("d5")))
	assert.Equal(t, 14, SquareDistance(MustSquare("a1"), MustSquare("h8")))
	assert.Equal(t, SquareDistance(MustSquare("b2"), MustSquare("g5")),
		SquareDistance(MustSquare("g5"), MustSquare("b2")))
}
