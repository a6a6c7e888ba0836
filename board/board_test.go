package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zayadnimrod/fairychess/board"
)

func TestRectBoardBounds(t *testing.T) {
	b := board.RectBoard{XMin: 0, XMax: 7, YMin: 0, YMax: 7}

	assert.Equal(t, board.Empty, b.TileAt(0, 0))
	assert.Equal(t, board.Empty, b.TileAt(7, 7))
	assert.Equal(t, board.Impassable, b.TileAt(-1, 0))
	assert.Equal(t, board.Impassable, b.TileAt(8, 0))
	assert.Equal(t, board.Impassable, b.TileAt(0, 8))
}

func TestGridBoardExplicitSet(t *testing.T) {
	b := board.NewGridBoard([][2]int{{1, 1}, {2, 2}})

	assert.Equal(t, board.Empty, b.TileAt(1, 1))
	assert.Equal(t, board.Empty, b.TileAt(2, 2))
	assert.Equal(t, board.Impassable, b.TileAt(1, 2))
}

func TestPredicateBoardEvaluatesExpression(t *testing.T) {
	b, err := board.NewPredicateBoard("x >= 0 && x <= 7 && y >= 0 && y <= 7 && !(x == 5 && y == 5)")
	require.NoError(t, err)

	assert.Equal(t, board.Empty, b.TileAt(0, 0))
	assert.Equal(t, board.Impassable, b.TileAt(5, 5))
	assert.Equal(t, board.Impassable, b.TileAt(8, 0))
}

func TestPredicateBoardRejectsInvalidExpression(t *testing.T) {
	_, err := board.NewPredicateBoard("x >= (")
	assert.Error(t, err)
}
