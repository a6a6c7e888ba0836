package board

import (
	"fmt"

	"github.com/Knetic/govaluate"
)

// PredicateBoard decides Empty/Impassable with a govaluate boolean
// expression over parameters x and y, evaluating to Empty when the
// expression is true. This lets a scenario describe an arbitrarily
// shaped board ("inside a ring", "checkerboard parity") without a Go
// recompile.
type PredicateBoard struct {
	expr *govaluate.EvaluableExpression
}

// NewPredicateBoard compiles expression once; TileAt then evaluates it
// per query.
func NewPredicateBoard(expression string) (*PredicateBoard, error) {
	expr, err := govaluate.NewEvaluableExpression(expression)
	if err != nil {
		return nil, fmt.Errorf("board: invalid predicate expression %q: %w", expression, err)
	}
	return &PredicateBoard{expr: expr}, nil
}

// TileAt implements Board.
func (b *PredicateBoard) TileAt(x, y int) TileState {
	result, err := b.expr.Evaluate(map[string]interface{}{
		"x": float64(x),
		"y": float64(y),
	})
	if err != nil {
		return Impassable
	}
	if truthy, ok := result.(bool); ok && truthy {
		return Empty
	}
	return Impassable
}
