package reachability

import "github.com/zayadnimrod/fairychess/movegraph"

// historyStep is one cons cell of a trace's persistent history:
// the (position, node) the trace was at before its most recent Jump.
// Forking traces share tails rather than copying them, keeping memory
// sub-quadratic across many alternatives with a common prefix.
type historyStep struct {
	position [2]int
	node     movegraph.NodeID
	prev     *historyStep
}

// trace is the engine's unit of work: the current graph node, the
// current board position, and the persistent history of positions
// visited so far via Jump edges.
type trace struct {
	node     movegraph.NodeID
	position [2]int
	history  *historyStep
}

// MoveTrace is the ordered sequence of board coordinates a successful
// CheckMove actually walked, path[0] == start and path[len-1] == target.
type MoveTrace [][2]int

// path reconstructs the coordinate sequence from a trace's history
// plus its own final position.
func (t trace) path() MoveTrace {
	var positions [][2]int
	for h := t.history; h != nil; h = h.prev {
		positions = append(positions, h.position)
	}
	// positions is newest-first; reverse it, then append the final position.
	out := make(MoveTrace, 0, len(positions)+1)
	for i := len(positions) - 1; i >= 0; i-- {
		out = append(out, positions[i])
	}
	out = append(out, t.position)
	return out
}

// visitedKey identifies a (position, node) pair for the engine's
// dedup set.
type visitedKey struct {
	position [2]int
	node     movegraph.NodeID
}
