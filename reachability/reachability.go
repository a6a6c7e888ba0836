package reachability

import (
	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/zayadnimrod/fairychess/board"
	"github.com/zayadnimrod/fairychess/movegraph"
)

// CheckMove is the engine's public entry point: it checks whether
// target is reachable from start by walking graph's automaton against
// b, applying the given axis inversions to every jump. It returns the
// MoveTrace actually walked and true on success, or (nil, false)
// otherwise.
func CheckMove(graph *movegraph.MoveGraph, b board.Board, start, target [2]int, opts ...Option) (MoveTrace, bool) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	worklist := arraystack.New()
	worklist.Push(trace{node: graph.Head(), position: start})
	visited := make(map[visitedKey]bool)

	for !worklist.Empty() {
		raw, _ := worklist.Pop()
		h := raw.(trace)

		if h.position == target && graph.Accepting(h.node) {
			return h.path(), true
		}

		key := visitedKey{position: h.position, node: h.node}
		if visited[key] {
			continue
		}
		visited[key] = true
		o.TilesVisited++
		if o.OnExpand != nil {
			o.OnExpand(h.position, uint64(h.node))
		}

		outs := graph.OutgoingEdges(h.node)
		if b.TileAt(h.position[0], h.position[1]) == board.Impassable {
			outs = onlyDummy(outs)
		}

		var produced []trace
		for _, e := range outs {
			switch e.Kind {
			case movegraph.EdgeDummyRequired, movegraph.EdgeDummyOptional:
				produced = append(produced, trace{node: e.To, position: h.position, history: h.history})
			case movegraph.EdgeJump:
				j := e.Jump.Invert(o.InvertX, o.InvertY)
				produced = append(produced, trace{
					node:     e.To,
					position: j.Add(h.position),
					history:  &historyStep{position: h.position, node: h.node, prev: h.history},
				})
			}
		}

		for _, t := range eagerDummyRequired(graph, produced) {
			worklist.Push(t)
		}
	}

	return nil, false
}

// onlyDummy restricts edges to the dummy kinds, the step-3 filter
// applied when the current position is Impassable: the walk stays in
// graph-space without stepping onto the blocked square.
func onlyDummy(edges []*movegraph.Edge) []*movegraph.Edge {
	out := make([]*movegraph.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Kind == movegraph.EdgeDummyRequired || e.Kind == movegraph.EdgeDummyOptional {
			out = append(out, e)
		}
	}
	return out
}

// eagerDummyRequired eagerly advances a freshly produced trace across
// any outgoing DummyRequired edge of its current node (position
// unchanged) before the trace ever reaches the worklist, repeating
// until no trace in the round advances this way. A trace sitting at a
// node with no outgoing DummyRequired edge — whether it is fully
// accepting or still has a board-moving Jump edge pending — is left
// for the ordinary pop/expand loop and passed through unchanged.
//
// This is what lets a trace that has just landed on a (possibly
// Impassable) target square walk the rest of its required structural
// transitions immediately, so the accept check on the next pop sees
// the automaton's true accepting state rather than an intermediate
// merge node.
func eagerDummyRequired(g *movegraph.MoveGraph, traces []trace) []trace {
	for {
		changed := false
		var next []trace
		for _, t := range traces {
			var dummyRequired []*movegraph.Edge
			for _, e := range g.OutgoingEdges(t.node) {
				if e.Kind == movegraph.EdgeDummyRequired {
					dummyRequired = append(dummyRequired, e)
				}
			}
			if len(dummyRequired) == 0 {
				next = append(next, t)
				continue
			}
			changed = true
			for _, e := range dummyRequired {
				next = append(next, trace{node: e.To, position: t.position, history: t.history})
			}
		}
		traces = next
		if !changed {
			return traces
		}
	}
}
