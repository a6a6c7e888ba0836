package piece_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zayadnimrod/fairychess/piece"
)

func TestJumpInvert(t *testing.T) {
	j := piece.Jump{X: 1, Y: 1}

	assert.Equal(t, piece.Jump{X: -1, Y: 1}, j.Invert(true, false))
	assert.Equal(t, piece.Jump{X: 1, Y: -1}, j.Invert(false, true))
	assert.Equal(t, piece.Jump{X: -1, Y: -1}, j.Invert(true, true))
	assert.Equal(t, j, j.Invert(false, false))
}

func TestJumpMirrors(t *testing.T) {
	j := piece.Jump{X: 2, Y: 3}

	assert.Equal(t, piece.Jump{X: 2, Y: -3}, piece.MirrorHorizontal(j))
	assert.Equal(t, piece.Jump{X: -2, Y: 3}, piece.MirrorVertical(j))
	// Diagonal mirror is an axis swap, not a geometric reflection.
	assert.Equal(t, piece.Jump{X: 3, Y: 2}, piece.MirrorDiagonal(j))
}

func TestJumpIsZero(t *testing.T) {
	assert.True(t, piece.Jump{}.IsZero())
	assert.False(t, piece.Jump{X: 1}.IsZero())
}

func TestModNotation(t *testing.T) {
	cases := map[string]piece.Mod{
		"-":       {Kind: piece.HorizontalMirror},
		"|":       {Kind: piece.VerticalMirror},
		"/":       {Kind: piece.DiagonalMirror},
		"^0":      piece.Exp(0),
		"^4":      piece.Exp(4),
		"^[1..4]": piece.ExpRange(1, 4),
		"^*":      piece.ExpInfinite(1),
		"^[2..*]": piece.ExpInfinite(2),
	}
	for want, m := range cases {
		assert.Equal(t, want, m.Notation())
	}
}
