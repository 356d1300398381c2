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

// Square is one of the 64 real squares, numbered 0 (a8) .. 63 (h1) row
// by row from the 8th rank down. Sq120 maps it to its cell of the 10x12
// mailbox board: 120 cells, a two-row guard band top and bottom and a
// one-file guard band on each side, where the real squares sit at
// a8=21 .. h8=28, a7=31 .. h7=38, ... a1=91 .. h1=98.
// Off-board cells are never addressed through Square arithmetic that
// stays on the board; the occupant found there is PieceInvalid.
type Square int8

// SqNone is the sentinel for "no square" (e.g. no en-passant target).
const SqNone Square = -1

// SqInvalid marks an off-board mailbox index reached by walking a
// direction vector off the playable 8x8 area.
const SqInvalid Square = -2

const (
	mailboxFiles = 10
	mailboxRanks = 12
)

// board10x12 holds, per mailbox index, the real Square it maps to,
// or SqInvalid for the guard ring. Built as a variable initializer (not
// an init func) so package variables derived from it - squareLabels
// here, the castling rights-mask table - are ordered after it by the
// compiler's initialization dependency analysis.
var board10x12 = func() [120]Square {
	var b [120]Square
	for i := range b {
		b[i] = SqInvalid
	}
	real := Square(0)
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			b[(row+2)*mailboxFiles+(col+1)] = real
			real++
		}
	}
	return b
}()

// square120 holds, per real square (0..63, a8..h1 row major), the
// mailbox index it lives at.
var square120 = func() [64]int {
	var s [64]int
	for mb, sq := range board10x12 {
		if sq != SqInvalid {
			s[sq] = mb
		}
	}
	return s
}()

// Sq120 returns the mailbox index (0..119) of a real square.
func (sq Square) Sq120() int {
	return square120[sq]
}

// SquareOf returns the real Square living at mailbox index mb, or
// SqInvalid if mb is part of the guard ring.
func SquareOf(mb int) Square {
	if mb < 0 || mb >= len(board10x12) {
		return SqInvalid
	}
	return board10x12[mb]
}

// IsValid reports whether sq addresses one of the 64 real squares.
func (sq Square) IsValid() bool {
	return sq >= 0 && int(sq) < 64
}

// File returns the file (a-h) of a real square.
func (sq Square) File() File {
	return File(sq.Sq120()%mailboxFiles - 1)
}

// Rank returns the rank (1-8) counted from the 1st rank, of a real square.
// Mailbox row 2 is the 8th rank, row 9 is the 1st rank.
func (sq Square) Rank() Rank {
	row := sq.Sq120()/mailboxFiles - 2
	return Rank(7 - row)
}

// MakeSquare builds a real Square from 0-based file and rank (rank 0 = rank 1).
func MakeSquare(f File, r Rank) Square {
	row := 7 - int(r)
	mb := (row+2)*mailboxFiles + (int(f) + 1)
	return board10x12[mb]
}

var squareLabels = func() [64]string {
	var labels [64]string
	for sq := Square(0); sq < 64; sq++ {
		labels[sq] = sq.File().String() + sq.Rank().String()
	}
	return labels
}()

// String returns the algebraic label of a square (e.g. "e4"), or "-"
// for SqNone/SqInvalid.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return squareLabels[sq]
}

// SquareFromString parses an algebraic square label such as "e4".
// Returns SqNone if s is not a valid square label.
func SquareFromString(s string) Square {
	if len(s) != 2 {
		return SqNone
	}
	f := s[0]
	r := s[1]
	if f < 'a' || f > 'h' || r < '1' || r > '8' {
		return SqNone
	}
	return MakeSquare(File(f-'a'), Rank(r-'1'))
}

// MustSquare is SquareFromString but panics on bad input; useful for
// building constant tables from literal labels.
func MustSquare(s string) Square {
	sq := SquareFromString(s)
	if sq == SqNone {
		panic(fmt.Sprintf("invalid square label %q", s))
	}
	return sq
}
