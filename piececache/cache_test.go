package piececache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zayadnimrod/fairychess/moveexpr"
	"github.com/zayadnimrod/fairychess/parser"
	"github.com/zayadnimrod/fairychess/piececache"
)

func lower(t *testing.T, notation string) *moveexpr.MoveExpr {
	t.Helper()
	raw, err := parser.Parse(notation)
	require.NoError(t, err)
	return moveexpr.Lower(raw)
}

func TestCacheReturnsSameGraphForEqualExpressions(t *testing.T) {
	c := piececache.New()

	g1, err := c.Compile(lower(t, "[1,2]|-/"))
	require.NoError(t, err)
	g2, err := c.Compile(lower(t, "[1,2]|-/"))
	require.NoError(t, err)

	assert.Same(t, g1, g2)
	stats := c.Stats()
	assert.Equal(t, 1, stats.Entries)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, uint64(1), stats.Misses)
}

func TestCacheDistinguishesDifferentExpressions(t *testing.T) {
	c := piececache.New()

	_, err := c.Compile(lower(t, "[1,2]"))
	require.NoError(t, err)
	_, err = c.Compile(lower(t, "[2,1]"))
	require.NoError(t, err)

	assert.Equal(t, 2, c.Stats().Entries)
}
