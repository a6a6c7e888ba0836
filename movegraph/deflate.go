package movegraph

import "golang.org/x/exp/slices"

// Deflate runs the two structural simplification rules below to
// fixpoint, mutating g in place. Each iteration strictly decreases the
// node count, so termination is bounded by the graph's initial size.
func Deflate(g *MoveGraph) {
	for {
		changedA := deflateRuleA(g)
		changedB := deflateRuleB(g)
		if !changedA && !changedB {
			return
		}
	}
}

// snapshotNodes returns g's current nodes in ascending ID order, so
// repeated deflation of the same compiled graph visits nodes in the
// same order every time instead of following Go's unspecified
// map-iteration order.
func (g *MoveGraph) snapshotNodes() []NodeID {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	nodes := make([]NodeID, 0, len(g.nodes))
	for n := range g.nodes {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	return nodes
}

func (g *MoveGraph) exists(n NodeID) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[n]
	return ok
}

func (g *MoveGraph) hasEdgeBetween(from, to NodeID) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	ids, ok := g.adjacency[from][to]
	return ok && len(ids) > 0
}

// deflateRuleA implements choice collapse: for every node n, every
// outgoing DummyRequired edge n→m is eligible for collapse when m has
// exactly one incoming edge (that edge) and no edge back from m to n;
// the edge is removed and m is merged into n. All eligible targets of a single n are merged in one batch before
// moving to the next n, so a node merged away earlier in the pass is
// never revisited as a merge target.
func deflateRuleA(g *MoveGraph) bool {
	changed := false
	deleted := make(map[NodeID]bool)

	for _, n := range g.snapshotNodes() {
		if deleted[n] || !g.exists(n) {
			continue
		}

		var targets []*Edge
		for _, e := range g.OutgoingEdges(n) {
			if e.Kind != EdgeDummyRequired {
				continue
			}
			m := e.To
			if deleted[m] || m == n {
				continue
			}
			if g.IncomingCount(m) != 1 {
				continue
			}
			if g.hasEdgeBetween(m, n) {
				continue
			}
			targets = append(targets, e)
		}

		for _, e := range targets {
			m := e.To
			if deleted[m] {
				continue
			}
			g.removeEdge(e.ID)
			g.merge(n, m)
			deleted[m] = true
			changed = true
		}
	}

	return changed
}

// deflateRuleB implements pass-through collapse: the first node found
// with exactly one outgoing edge, of kind DummyRequired, has that edge
// removed and its target merged into it. Only one such collapse happens per call —
// repeated calls from Deflate's loop pick up the rest.
func deflateRuleB(g *MoveGraph) bool {
	for _, n := range g.snapshotNodes() {
		if !g.exists(n) {
			continue
		}
		edges := g.OutgoingEdges(n)
		if len(edges) != 1 || edges[0].Kind != EdgeDummyRequired {
			continue
		}
		m := edges[0].To
		if m == n {
			continue
		}
		g.removeEdge(edges[0].ID)
		g.merge(n, m)
		return true
	}
	return false
}
