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

// PieceType is a set of constants for piece types in chess.
type PieceType uint8

// PieceType constants. PtNone must stay zero so a zeroed PieceType
// compares equal to "no piece type".
const (
	PtNone PieceType = iota
	King
	Pawn
	Knight
	Bishop
	Rook
	Queen
	PtLength
)

// IsValid checks if pt is a valid piece type.
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// IsSlider reports whether pt moves along rays (bishop, rook, queen).
func (pt PieceType) IsSlider() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// array of values for each piece type when calculating game phase.
// Pawns and kings contribute zero. Knight and bishop weigh 258,
// rook 516, queen 1032, so that a full set of minors/majors
// (2*Q + 4*R + 4*B + 4*N) sums to exactly OpeningPhaseScore.
var gamePhaseValue = [PtLength]int{0, 0, 0, 258, 258, 516, 1032}

// GamePhaseValue returns the weight of this piece type toward the
// incrementally maintained phase score.
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// OpeningPhaseScore is the phase score of the full starting material:
// 2 queens, 4 rooks, 4 bishops, 4 knights at their game-phase weights.
const OpeningPhaseScore = 6192

// array of static material values per piece type, in centipawns.
var pieceTypeValue = [PtLength]Value{0, 2000, 100, 320, 330, 500, 900}

// ValueOf returns the static material value of this piece type.
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

var pieceTypeToString = [PtLength]string{"NoPieceType", "King", "Pawn", "Knight", "Bishop", "Rook", "Queen"}

// String returns a human-readable name for the piece type.
func (pt PieceType) String() string {
	if pt >= PtLength {
		return "NoPieceType"
	}
	return pieceTypeToString[pt]
}

var pieceTypeToChar = "-KPNBRQ"

// Char returns the single uppercase FEN letter for the piece type.
func (pt PieceType) Char() string {
	if pt >= PtLength {
		return "-"
	}
	return string(pieceTypeToChar[pt])
}

// PieceTypeFromChar parses a single uppercase FEN piece letter.
func PieceTypeFromChar(c string) PieceType {
	for pt := King; pt < PtLength; pt++ {
		if pieceTypeToChar[pt:pt+1] == c {
			return pt
		}
	}
	return PtNone
}
