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

// Package zobrist holds the process-wide, read-only Zobrist tables used
// to incrementally maintain a Position's hash key. The tables are
// derived from a fixed seed so two engine instances (and every test
// run) produce byte-identical keys.
package zobrist

import (
	. "github.com/eligolfer91/endamat-chess/internal/types"
)

// randomState seeds the deterministic xorshift32 generator so two
// engine instances produce identical keys and perft/search fixtures
// stay reproducible.
const randomState uint32 = 1804289383

// rng32 is a minimal xorshift32 PRNG. Not suitable for anything beyond
// deterministic table generation.
type rng32 struct {
	state uint32
}

func (r *rng32) next32() uint32 {
	n := r.state
	n ^= n << 13
	n ^= n >> 17
	n ^= n << 5
	r.state = n
	return n
}

// next64 combines four 16-bit slices of successive 32-bit draws into
// one 64-bit value.
func (r *rng32) next64() uint64 {
	n1 := uint64(r.next32() & 0xFFFF)
	n2 := uint64(r.next32() & 0xFFFF)
	n3 := uint64(r.next32() & 0xFFFF)
	n4 := uint64(r.next32() & 0xFFFF)
	return n1 | (n2 << 16) | (n3 << 32) | (n4 << 48)
}

// Tables are the process-wide Zobrist constants: one 64-bit term per
// (piece, mailbox-square) pair, per en-passant target square, per
// castling-rights value, and one side-to-move term. Off-board mailbox
// cells are never hashed; the tables are sized to cover them only so
// they can be indexed directly by Square.Sq120() without translation.
var (
	Pieces         [PieceLength][120]uint64
	enPassantTable [120]uint64
	castlingTable  [16]uint64
	Side           uint64
)

func init() {
	r := rng32{state: randomState}
	for p := Piece(0); p < PieceLength; p++ {
		for sq := 0; sq < 120; sq++ {
			Pieces[p][sq] = r.next64()
		}
	}
	for sq := 0; sq < 120; sq++ {
		enPassantTable[sq] = r.next64()
	}
	for i := 0; i < 16; i++ {
		castlingTable[i] = r.next64()
	}
	Side = r.next64()
}

// PieceKey returns the XOR term for a piece standing on a real square.
func PieceKey(p Piece, sq Square) uint64 {
	return Pieces[p][sq.Sq120()]
}

// EnPassantKey returns the XOR term for an en-passant target square.
func EnPassantKey(sq Square) uint64 {
	return enPassantTable[sq.Sq120()]
}

// CastlingKey returns the XOR term for a castling-rights value.
func CastlingKey(cr CastlingRights) uint64 {
	return castlingTable[cr]
}
