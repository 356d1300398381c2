//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eligolfer91/endamat-chess/internal/position"
	. "github.com/eligolfer91/endamat-chess/internal/types"
)

func TestParseUciMove(t *testing.T) {
	p := position.NewPosition()
	m, err := ParseUciMove(p, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, "e2", m.From.String())
	assert.Equal(t, "e4", m.To.String())
}

func TestParseUciMovePromotion(t *testing.T) {
	p := position.NewPosition("8/P7/8/8/8/8/8/k6K w - - 0 1")
	m, err := ParseUciMove(p, "a7a8q")
	require.NoError(t, err)
	assert.True(t, m.MType.IsPromotion())
	assert.Equal(t, "q", FormatUciMove(m)[len(FormatUciMove(m))-1:])
}

func TestParseUciMoveMalformed(t *testing.T) {
	p := position.NewPosition()
	_, err := ParseUciMove(p, "not-a-move")
	assert.Error(t, err)
}

func TestParseUciMoveIllegal(t *testing.T) {
	p := position.NewPosition()
	_, err := ParseUciMove(p, "e2e5")
	assert.Error(t, err)
}

func TestPositionFromUciStartpos(t *testing.T) {
	p, err := PositionFromUci("startpos", []string{"e2e4", "e7e5"})
	require.NoError(t, err)
	assert.Equal(t, "e6", p.GetEnPassantSquare().String())
}

func TestPositionFromUciBadMove(t *testing.T) {
	_, err := PositionFromUci("startpos", []string{"e2e5"})
	assert.Error(t, err)
}

func TestFormatUciMoves(t *testing.T) {
	p := position.NewPosition()
	m, err := ParseUciMove(p, "e2e4")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", FormatUciMoves([]Move{m}))
}
