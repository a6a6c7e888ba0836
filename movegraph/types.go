package movegraph

import (
	"sync"
	"sync/atomic"

	"golang.org/x/exp/slices"

	"github.com/zayadnimrod/fairychess/piece"
)

// NodeID is an opaque node identifier. Nodes carry no payload — all
// structure lives in the edges.
type NodeID uint64

// EdgeKind discriminates the three transition kinds an automaton edge
// can carry: a board-affecting jump, or one of two epsilon-like dummy
// transitions distinguished by whether taking them is required.
type EdgeKind int

const (
	// EdgeJump is a required displacement on the board.
	EdgeJump EdgeKind = iota
	// EdgeDummyRequired is an epsilon edge that must be taken to make progress.
	EdgeDummyRequired
	// EdgeDummyOptional is an epsilon edge that may be taken (loop-back
	// for infinite repetition).
	EdgeDummyOptional
)

// Edge is one transition of the automaton. Jump is meaningful only
// when Kind == EdgeJump.
type Edge struct {
	ID   uint64
	From NodeID
	To   NodeID
	Kind EdgeKind
	Jump piece.Jump
}

// Required reports whether taking this edge counts as structural
// progress — Jump and DummyRequired do, DummyOptional does not.
func (e Edge) Required() bool {
	return e.Kind == EdgeJump || e.Kind == EdgeDummyRequired
}

// MoveGraph is the directed multigraph automaton compiled from a
// moveexpr.MoveExpr: a flat node set, a nested adjacency index for
// O(1) edge lookup by (from, to, id), and an atomic edge-ID counter,
// guarded by a pair of RWMutexes so a compiled graph can be shared
// read-only across concurrent reachability queries while still being
// safe to deflate once before publishing.
type MoveGraph struct {
	muNode sync.RWMutex // guards nodes and nextNodeID
	muEdge sync.RWMutex // guards edges and adjacency

	nextNodeID uint64
	nextEdgeID uint64

	nodes map[NodeID]struct{}
	edges map[uint64]*Edge

	// adjacency[from][to][edgeID] = struct{}{}
	adjacency map[NodeID]map[NodeID]map[uint64]struct{}
	// incoming[to] = count of incoming edges, maintained incrementally
	// so node-merge and deflation can check the "every node but head
	// has ≥1 incoming edge" invariant in O(1).
	incoming map[NodeID]int

	head NodeID
}

// newMoveGraph allocates an empty graph with no nodes.
func newMoveGraph() *MoveGraph {
	return &MoveGraph{
		nodes:     make(map[NodeID]struct{}),
		edges:     make(map[uint64]*Edge),
		adjacency: make(map[NodeID]map[NodeID]map[uint64]struct{}),
		incoming:  make(map[NodeID]int),
	}
}

// Head returns the graph's unique entry node.
func (g *MoveGraph) Head() NodeID {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return g.head
}

func (g *MoveGraph) addNode() NodeID {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	id := NodeID(atomic.AddUint64(&g.nextNodeID, 1))
	g.nodes[id] = struct{}{}
	return id
}

func (g *MoveGraph) addEdge(from, to NodeID, kind EdgeKind, jump piece.Jump) *Edge {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	id := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge{ID: id, From: from, To: to, Kind: kind, Jump: jump}
	g.edges[id] = e
	g.attachAdjacencyLocked(from, to, id)
	g.incoming[to]++
	return e
}

func (g *MoveGraph) removeEdge(id uint64) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()
	g.removeEdgeLocked(id)
}

func (g *MoveGraph) removeEdgeLocked(id uint64) {
	e, ok := g.edges[id]
	if !ok {
		return
	}
	delete(g.edges, id)
	g.detachAdjacencyLocked(e.From, e.To, id)
	g.incoming[e.To]--
}

// attachAdjacencyLocked records edge id as outgoing from->to in the
// adjacency index. Caller holds muEdge.
func (g *MoveGraph) attachAdjacencyLocked(from, to NodeID, id uint64) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[NodeID]map[uint64]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[uint64]struct{})
	}
	g.adjacency[from][to][id] = struct{}{}
}

// detachAdjacencyLocked removes edge id as outgoing from->to from the
// adjacency index. Caller holds muEdge.
func (g *MoveGraph) detachAdjacencyLocked(from, to NodeID, id uint64) {
	if adj, ok := g.adjacency[from]; ok {
		if ids, ok := adj[to]; ok {
			delete(ids, id)
			if len(ids) == 0 {
				delete(adj, to)
			}
		}
	}
}

// OutgoingEdges returns n's outgoing edges in construction order
// (ascending edge ID), the order the reachability engine's worklist
// traversal follows.
func (g *MoveGraph) OutgoingEdges(n NodeID) []*Edge {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.outgoingLocked(n)
}

func (g *MoveGraph) outgoingLocked(n NodeID) []*Edge {
	var out []*Edge
	for _, ids := range g.adjacency[n] {
		for id := range ids {
			out = append(out, g.edges[id])
		}
	}
	slices.SortFunc(out, func(a, b *Edge) bool { return a.ID < b.ID })
	return out
}

// IncomingCount returns n's number of incoming edges.
func (g *MoveGraph) IncomingCount(n NodeID) int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.incoming[n]
}

// Accepting reports whether n has no outgoing required edge (Jump or
// DummyRequired): reaching n with the walked position already equal
// to the target completes the move.
func (g *MoveGraph) Accepting(n NodeID) bool {
	for _, e := range g.OutgoingEdges(n) {
		if e.Required() {
			return false
		}
	}
	return true
}

// Stats is a read-only snapshot of graph size.
type Stats struct {
	Nodes int
	Edges int
}

// Stats returns a point-in-time snapshot of the graph's size.
func (g *MoveGraph) Stats() Stats {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
}

// merge folds drop's incoming and outgoing edges onto keep and
// deletes drop. Edges that would become self-loops on keep are kept
// as self-loops; the deflater removes the edge it collapses before
// calling merge, so only the other edges between the two nodes can
// end up as self-loops.
//
// Each redirected edge keeps its original ID rather than being
// removed and re-added under a new one: OutgoingEdges sorts by
// ascending edge ID to realize construction order, so reassigning IDs
// here would let a node's outgoing order drift with Go's unspecified
// map-iteration order on every merge.
func (g *MoveGraph) merge(keep, drop NodeID) {
	if keep == drop {
		return
	}

	g.muEdge.Lock()
	var redirected []*Edge
	for _, e := range g.edges {
		if e.From == drop || e.To == drop {
			redirected = append(redirected, e)
		}
	}
	slices.SortFunc(redirected, func(a, b *Edge) bool { return a.ID < b.ID })

	for _, e := range redirected {
		oldTo := e.To
		g.detachAdjacencyLocked(e.From, e.To, e.ID)

		if e.From == drop {
			e.From = keep
		}
		if e.To == drop {
			e.To = keep
		}
		g.attachAdjacencyLocked(e.From, e.To, e.ID)

		if oldTo != e.To {
			g.incoming[oldTo]--
			g.incoming[e.To]++
		}
	}
	g.muEdge.Unlock()

	g.muNode.Lock()
	delete(g.nodes, drop)
	if g.head == drop {
		g.head = keep
	}
	g.muNode.Unlock()
}
