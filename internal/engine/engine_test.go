//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligolfer91/endamat-chess/internal/position"
	"github.com/eligolfer91/endamat-chess/internal/search"
	. "github.com/eligolfer91/endamat-chess/internal/types"
)

func TestSetPositionUciReplaysMoves(t *testing.T) {
	e := NewEngine()
	err := e.SetPositionUci("startpos", []string{"e2e4", "e7e5", "g1f3"})
	require.NoError(t, err)
	assert.Equal(t, Black, e.Position().NextPlayer())
}

func TestSetPositionUciRejectsIllegalMove(t *testing.T) {
	e := NewEngine()
	err := e.SetPositionUci("startpos", []string{"e2e5"})
	assert.Error(t, err)
}

type stubBook struct {
	move Move
	ok   bool
}

func (b stubBook) MoveFor(uint64) (Move, bool) { return b.move, b.ok }

type stubDriver struct {
	bestMove Move
	calls    int
}

func (d *stubDriver) OnIteration(search.Result) {}
func (d *stubDriver) OnBestMove(best, ponder Move) {
	d.bestMove = best
	d.calls++
}

func TestGoUsesBookMoveWhenAvailable(t *testing.T) {
	e := NewEngine()
	d := &stubDriver{}
	e.SetDriver(d)

	book := e.Position().GenerateLegalMoves().At(0)
	e.Book = stubBook{move: book, ok: true}

	e.Go(search.Limits{})
	assert.Equal(t, 1, d.calls)
	assert.Equal(t, book, d.bestMove)
	assert.False(t, e.IsSearching())
}

type stubTablebase struct {
	wdl int
	ok  bool
}

func (s stubTablebase) ProbeWDL(*position.Position) (int, bool) { return s.wdl, s.ok }

func TestProbeTablebase(t *testing.T) {
	e := NewEngine()
	_, ok := e.ProbeTablebase()
	assert.False(t, ok)

	e.Tablebase = stubTablebase{wdl: 2, ok: true}
	wdl, ok := e.ProbeTablebase()
	assert.True(t, ok)
	assert.Equal(t, 2, wdl)
}

func TestGoFallsBackToSearchWithoutBook(t *testing.T) {
	e := NewEngine()
	limits := search.NewSearchLimits()
	limits.TimeControl = true
	limits.MoveTime = 50 * time.Millisecond

	e.Go(*limits)
	e.search.WaitWhileSearching()

	result := e.LastResult()
	assert.True(t, result.BestMove.IsValid())
}
