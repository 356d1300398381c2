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

// Package notation holds the two small parsing surfaces an external
// collaborator (a UCI command loop, an opening-book reader, a GUI) needs
// to talk to the core without reaching into position internals: long
// algebraic move parsing against the legal-move list, and FEN
// construction from an untrusted string. Neither is the core's
// business - the core only consumes a FEN at construction and emits
// Move/Position values - but a driver needs somewhere to turn wire
// strings into those values, and this is that somewhere.
package notation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/eligolfer91/endamat-chess/internal/position"
	. "github.com/eligolfer91/endamat-chess/internal/types"
)

// regexUciMove matches a long-algebraic move: from-square, to-square,
// and an optional promotion letter. Upper case promotion letters are
// accepted even though UCI specifies lower case only for convenience -
// many hand-written test and book files get the case wrong.
var regexUciMove = regexp.MustCompile(`^([a-h][1-8][a-h][1-8])([nbrqNBRQ])?$`)

// ParseUciMove parses a long-algebraic move string (e.g. "e2e4",
// "a7a8q") and matches it against p's legal moves, returning an error
// if the string is malformed or names a move that is not legal in p.
// This is the only supported way for an external collaborator to turn
// wire input into a Move: the core never trusts a Move it did not
// generate itself.
func ParseUciMove(p *position.Position, uci string) (Move, error) {
	matches := regexUciMove.FindStringSubmatch(strings.TrimSpace(uci))
	if matches == nil {
		return MoveNone, fmt.Errorf("notation: %q is not a long-algebraic move", uci)
	}
	movePart := matches[1]
	promoPart := strings.ToUpper(matches[2])

	legal := p.GenerateLegalMoves()
	for i := 0; i < legal.Len(); i++ {
		m := legal.At(i)
		if m.From.String()+m.To.String() != movePart {
			continue
		}
		wantPromo := ""
		if m.MType.IsPromotion() {
			wantPromo = m.MType.PromotionType().Char()
		}
		if wantPromo == promoPart {
			return m, nil
		}
	}
	return MoveNone, fmt.Errorf("notation: %q is not a legal move in %s", uci, p.StringFen())
}

// FormatUciMove renders m in long algebraic form, identical to
// Move.StringUci but named for symmetry with ParseUciMove at call
// sites that only import this package.
func FormatUciMove(m Move) string {
	return m.StringUci()
}

// FormatUciMoves renders a sequence of moves as a space-separated
// long-algebraic list, the form a "position ... moves ..." command or
// a PV line uses.
func FormatUciMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.StringUci()
	}
	return strings.Join(parts, " ")
}

// PositionFromUci builds a Position from a FEN (or the standard start
// position when fen is "startpos" or empty) and then replays a sequence
// of long-algebraic moves onto it, the same two-stage construction a
// UCI "position" command performs. Returns an error as soon as the FEN
// or any move fails to parse. On a FEN error the position is nil; on a
// move error it is usable (up to the last successfully applied move),
// mirroring how a driver
// would want to report exactly which token was bad.
func PositionFromUci(fen string, moves []string) (*position.Position, error) {
	f := strings.TrimSpace(fen)
	if f == "" || f == "startpos" {
		f = position.StartFen
	}
	p, err := position.NewPositionFen(f)
	if err != nil {
		return nil, fmt.Errorf("notation: %w", err)
	}
	for _, mv := range moves {
		m, err := ParseUciMove(p, mv)
		if err != nil {
			return p, err
		}
		p.DoMove(m)
	}
	return p, nil
}
