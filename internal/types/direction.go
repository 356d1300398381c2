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

// MboxDir is a step on the 10x12 mailbox board: adding it to a mailbox
// index moves one square in that direction. Off-board landings are
// caught by SquareOf returning SqInvalid.
type MboxDir int8

// The eight king-step directions, in the fixed order the move
// generator walks them: orthogonals first, then diagonals.
const (
	NorthDir     MboxDir = -10
	WestDir      MboxDir = -1
	EastDir      MboxDir = 1
	SouthDir     MboxDir = 10
	NorthWestDir MboxDir = -11
	NorthEastDir MboxDir = -9
	SouthWestDir MboxDir = 9
	SouthEastDir MboxDir = 11
)

// KingDirs lists the eight king-step vectors: four orthogonal, then
// four diagonal.
var KingDirs = [8]MboxDir{NorthDir, WestDir, SouthDir, EastDir, NorthWestDir, NorthEastDir, SouthWestDir, SouthEastDir}

// BishopDirs are the four diagonal king-step vectors, also the
// sliding directions of a bishop.
var BishopDirs = [4]MboxDir{NorthWestDir, NorthEastDir, SouthWestDir, SouthEastDir}

// RookDirs are the four orthogonal king-step vectors, also the
// sliding directions of a rook.
var RookDirs = [4]MboxDir{NorthDir, WestDir, SouthDir, EastDir}

// KnightDirs are the eight knight-move offsets on the mailbox board.
var KnightDirs = [8]MboxDir{-21, -19, -12, -8, 8, 12, 19, 21}

// IsDiagonal reports whether d is one of the four bishop directions.
func (d MboxDir) IsDiagonal() bool {
	return d == NorthWestDir || d == NorthEastDir || d == SouthWestDir || d == SouthEastDir
}

// IsOrthogonal reports whether d is one of the four rook directions.
func (d MboxDir) IsOrthogonal() bool {
	return d == NorthDir || d == SouthDir || d == EastDir || d == WestDir
}
