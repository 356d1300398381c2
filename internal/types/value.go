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

// Value is a centipawn evaluation or search score.
type Value int32

// Search and evaluation bounds.
const (
	ValueZero    Value = 0
	ValueDraw    Value = 0
	ValueNA      Value = 17000
	ValueMin     Value = -99000
	ValueMax     Value = 99000
	MateValue    Value = 99000
	MateScore    Value = 98000
	MaxPly             = 60
)

// IsMate reports whether v represents a mate score (win or loss) rather
// than a centipawn evaluation.
func (v Value) IsMate() bool {
	if v < 0 {
		v = -v
	}
	return v > MateScore
}

// MateDistance returns the number of moves to mate implied by a mate
// score v, positive if the side to move delivers mate, negative if it
// is mated.
func (v Value) MateDistance() int {
	if v > 0 {
		return (int(MateValue-v) / 2) + 1
	}
	return -(int(MateValue+v) / 2)
}
