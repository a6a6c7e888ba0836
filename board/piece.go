package board

import (
	"github.com/zayadnimrod/fairychess/movegraph"
	"github.com/zayadnimrod/fairychess/moveexpr"
)

// Piece pairs a standard (non-capturing) move pattern with an
// optional distinct capturing pattern for a fairy-chess piece. The
// two-state tile abstraction rules out true capture semantics (there
// is no "occupied by an enemy" tile), so Piece is purely a convenience
// for a caller that wants to compile and query both patterns together;
// it introduces no new board state.
type Piece struct {
	Standard *moveexpr.MoveExpr
	// Capture is the capturing move pattern, or nil if it is identical
	// to Standard.
	Capture *moveexpr.MoveExpr
}

// Graphs compiles both of p's move patterns, reusing the standard
// graph for capture when Capture is nil.
func (p Piece) Graphs() (standard, capture *movegraph.MoveGraph) {
	standard = movegraph.Compile(p.Standard)
	if p.Capture == nil {
		return standard, standard
	}
	return standard, movegraph.Compile(p.Capture)
}
