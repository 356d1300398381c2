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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/eligolfer91/endamat-chess/internal/logging"
	"github.com/eligolfer91/endamat-chess/internal/position"
	"github.com/eligolfer91/endamat-chess/internal/pst"
	. "github.com/eligolfer91/endamat-chess/internal/types"
)

var out = message.NewPrinter(language.German)

// endgamePhaseScore is the game-phase weight of about two minor pieces'
// worth of material (a knight or bishop weighs 258).
const endgamePhaseScore = 518

// mopUpPhaseThreshold is the game-phase ceiling for the mop-up term,
// twice endgamePhaseScore.
const mopUpPhaseThreshold = 2 * endgamePhaseScore

// Evaluator computes a static score for a position from the material
// and piece-square accumulators Position maintains incrementally across
// make/unmake. It is deliberately thin: sophisticated evaluation terms
// (bishop pair, pawn structure, mobility, king safety) are never
// evaluated; their config toggles exist but are not read here.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates a new instance of an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate returns the static score of p in centipawns from the view of
// the side to move: positive means the side to move stands better.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	score := Score{
		MidGameValue: int(p.Material(White)-p.Material(Black)) + p.PsqMidValue(White) - p.PsqMidValue(Black),
		EndGameValue: int(p.Material(White)-p.Material(Black)) + p.PsqEndValue(White) - p.PsqEndValue(Black),
	}

	value := score.ValueFromScore(p.GamePhaseFactor())
	if mopUp, ok := e.mopUp(p); ok {
		value = mopUp
	}

	return value * Value(p.NextPlayer().Direction())
}

// mopUp is the lone-king-hunt evaluation, replacing the tapered score
// once the board is pawnless and the game phase of both sides together
// is at most mopUpPhaseThreshold (1036: four minor pieces, two rooks or
// one queen beyond the kings). The base is half the endgame score,
// which resists pointless piece sacrifices; when one side additionally
// has no rook or queen left while the other holds mating material, a
// bonus rewards driving the weaker king to the edge and the stronger
// king towards it. The result is from White's point of view; Evaluate
// negates it for Black.
func (e *Evaluator) mopUp(p *position.Position) (Value, bool) {
	if p.GamePhase() > mopUpPhaseThreshold {
		return 0, false
	}
	if p.PieceTypeCount(White, Pawn) != 0 || p.PieceTypeCount(Black, Pawn) != 0 {
		return 0, false
	}

	base := Value(0.5 * float64(int(p.Material(White)-p.Material(Black))+
		p.PsqEndValue(White)-p.PsqEndValue(Black)))

	if base > 0 {
		base += mopUpBonus(p, White, Black)
	} else if base < 0 {
		base -= mopUpBonus(p, Black, White)
	}
	return base, true
}

// mopUpBonus returns the bonus for stronger hunting weaker, or 0 if
// stronger does not qualify: weaker must have no rook or queen left to
// give it counterplay, and stronger must hold at least a rook, a queen,
// or two bishops to actually force the win.
func mopUpBonus(p *position.Position, stronger, weaker Color) Value {
	if p.PieceTypeCount(weaker, Rook) != 0 || p.PieceTypeCount(weaker, Queen) != 0 {
		return 0
	}
	dominant := p.PieceTypeCount(stronger, Rook) != 0 ||
		p.PieceTypeCount(stronger, Queen) != 0 ||
		p.PieceTypeCount(stronger, Bishop) >= 2
	if !dominant {
		return 0
	}

	losingKing := p.KingSquare(weaker)
	strongKing := p.KingSquare(stronger)
	kingsDistance := pst.SquareDistance(losingKing, strongKing)
	return Value(10.0 * (4.7*float64(pst.CenterDistance(losingKing)) + 1.6*float64(14-kingsDistance)))
}

// Report prints a human-readable evaluation breakdown. Used in debugging.
func (e *Evaluator) Report(p *position.Position) string {
	var report strings.Builder

	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position: %s\n", p.StringFen()))
	report.WriteString(out.Sprintf("%s\n", p.StringBoard()))
	report.WriteString(out.Sprintf("GamePhase Factor: %f\n", p.GamePhaseFactor()))
	report.WriteString(out.Sprintf("Eval value  : %d \n(from the view of next player = %s)\n", e.Evaluate(p), p.NextPlayer().String()))

	return report.String()
}
