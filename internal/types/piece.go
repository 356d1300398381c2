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

// Piece is a (color, type) pair encoded as color*6 + type, giving a
// dense 12-way index usable directly into per-piece tables (PST,
// Zobrist). PieceNone is the sentinel for an empty real square.
// PieceInvalid is the sentinel for an off-board mailbox cell; it
// compares unequal to every legal piece so sliding-piece loops can
// stop on it without an extra bounds check.
type Piece int8

// Piece constants. White pieces occupy 0..5, black pieces 6..11.
const (
	PieceNone    Piece = -1
	PieceInvalid Piece = -2

	WhiteKing Piece = iota - 2
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	BlackKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen

	PieceLength = 12
)

// MakePiece creates the piece given by color and piece type.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)*6 + int(pt-King))
}

// ColorOf returns the color of the given piece.
func (p Piece) ColorOf() Color {
	return Color(p / 6)
}

// TypeOf returns the piece type of the given piece.
func (p Piece) TypeOf() PieceType {
	return King + PieceType(p%6)
}

// ValueOf returns the static material value of the piece.
func (p Piece) ValueOf() Value {
	if p < 0 {
		return 0
	}
	return p.TypeOf().ValueOf()
}

// IsValid reports whether p names one of the twelve real pieces.
func (p Piece) IsValid() bool {
	return p >= 0 && p < PieceLength
}

var pieceToChar = [PieceLength]string{"K", "P", "N", "B", "R", "Q", "k", "p", "n", "b", "r", "q"}

// Char returns the FEN letter for the piece (uppercase for White).
func (p Piece) Char() string {
	if !p.IsValid() {
		return "-"
	}
	return pieceToChar[p]
}

// String returns the FEN letter for the piece, "-" for an empty
// square and "X" for an off-board cell.
func (p Piece) String() string {
	switch p {
	case PieceNone:
		return "-"
	case PieceInvalid:
		return "X"
	default:
		return p.Char()
	}
}

// PieceFromChar parses a single FEN piece letter, returning PieceNone
// if c is not a recognised letter.
func PieceFromChar(c string) Piece {
	if len(c) != 1 {
		return PieceNone
	}
	for p := Piece(0); p < PieceLength; p++ {
		if pieceToChar[p] == c {
			return p
		}
	}
	return PieceNone
}
