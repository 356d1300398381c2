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

// MoveType is the finite set of move kinds.
type MoveType uint8

// Move kinds. The four promotion kinds are encoded as PromoN..PromoQ.
const (
	Normal MoveType = iota
	TwoStep
	EnPassant
	Castling
	PromoN
	PromoB
	PromoR
	PromoQ
)

// IsPromotion reports whether mt is one of the four promotion kinds.
func (mt MoveType) IsPromotion() bool {
	return mt >= PromoN && mt <= PromoQ
}

// PromotionType returns the piece type a promotion move kind produces.
// Only meaningful when IsPromotion() is true.
func (mt MoveType) PromotionType() PieceType {
	switch mt {
	case PromoN:
		return Knight
	case PromoB:
		return Bishop
	case PromoR:
		return Rook
	case PromoQ:
		return Queen
	default:
		return PtNone
	}
}

// PromotionMoveType is the inverse of PromotionType.
func PromotionMoveType(pt PieceType) MoveType {
	switch pt {
	case Knight:
		return PromoN
	case Bishop:
		return PromoB
	case Rook:
		return PromoR
	case Queen:
		return PromoQ
	default:
		return Normal
	}
}

// Move is a plain value: start square, end square, move kind, the
// piece that moved, and a sort-score slot filled in by the move
// generator's caller for ordering. It owns nothing and is copied by
// value everywhere (move log, repetition stack, PV table, killers).
type Move struct {
	From      Square
	To        Square
	MType     MoveType
	Piece     Piece
	SortValue int32
}

// MoveNone is the sentinel representing "no move". It is not the zero
// Move, whose from- and to-square are both a8 (0).
var MoveNone = Move{From: SqNone, To: SqNone}

// IsValid reports whether m names an actual move (as opposed to the
// MoveNone sentinel).
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid()
}

// String renders the move in long algebraic form plus, for
// promotions, the promoted piece letter, e.g. "e7e8q".
func (m Move) String() string {
	if !m.IsValid() {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.MType.IsPromotion() {
		sb.WriteString(strings.ToLower(m.MType.PromotionType().Char()))
	}
	return sb.String()
}

// StringUci is the UCI wire form of the move, identical to String().
func (m Move) StringUci() string {
	return m.String()
}

// MoveOf builds a Move from its fields. Convenience constructor mirrored
// after the move generator's need to build and immediately score a move.
func MoveOf(from, to Square, mt MoveType, p Piece) Move {
	return Move{From: from, To: to, MType: mt, Piece: p}
}

// SetValue stamps the move's sort score in place, returning the move
// for chaining in move-generation hot loops.
func (m Move) SetValue(v int32) Move {
	m.SortValue = v
	return m
}
