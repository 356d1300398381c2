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

// Package movegen is a thin perft host over internal/position's legal
// move generator: it exists to count and time leaf nodes, not to
// generate moves itself.
package movegen

import (
	"time"

	"github.com/eligolfer91/endamat-chess/internal/position"
)

// PerftResult carries the node counts a Perft run tallies.
type PerftResult struct {
	Depth       int
	Nodes       uint64
	Captures    uint64
	Checks      uint64
	Duration    time.Duration
	NodesPerSec uint64
}

// Perft walks the full legal-move tree to depth d below p and returns
// the aggregate counts. p is left unmodified: every recursive make is
// paired with an unmake before returning.
func Perft(p *position.Position, depth int) PerftResult {
	start := time.Now()
	result := PerftResult{Depth: depth}
	perft(p, depth, &result)
	result.Duration = time.Since(start)
	if secs := result.Duration.Seconds(); secs > 0 {
		result.NodesPerSec = uint64(float64(result.Nodes) / secs)
	}
	return result
}

func perft(p *position.Position, depth int, result *PerftResult) {
	if depth == 0 {
		result.Nodes++
		return
	}

	moves := p.GenerateLegalMoves()
	if depth == 1 {
		result.Nodes += uint64(moves.Len())
		for i := 0; i < moves.Len(); i++ {
			m := moves.At(i)
			if p.IsCapturingMove(m) {
				result.Captures++
			}
			if p.GivesCheck(m) {
				result.Checks++
			}
		}
		return
	}

	for i := 0; i < moves.Len(); i++ {
		p.DoMove(moves.At(i))
		perft(p, depth-1, result)
		p.UndoMove()
	}
}
