// Package movegraph compiles a moveexpr.MoveExpr into a MoveGraph, the
// directed-multigraph automaton the reachability engine traverses, and
// provides the deflater that simplifies a compiled graph in place.
//
// MoveGraph uses the construction discipline of a general-purpose
// graph library: a flat node catalog keyed by opaque ID, a nested
// adjacency map (adjacency[from][to][edgeID]) for O(1) edge lookup and
// removal, an atomic edge-ID counter, and a pair of sync.RWMutex
// guarding the node catalog and the adjacency/edge maps separately.
// Unlike a general-purpose weighted multigraph, MoveGraph is a
// special-purpose automaton: edges carry an EdgeKind (Jump,
// DummyRequired, DummyOptional) instead of a weight, and nodes are
// opaque states rather than user-labeled vertices.
package movegraph
