package movegraph

import (
	"github.com/zayadnimrod/fairychess/moveexpr"
	"github.com/zayadnimrod/fairychess/piece"
)

// Compile translates a MoveExpr into a MoveGraph by structural
// recursion, then runs the deflater to fixpoint before returning.
// Each recursive call below returns a (head, tail) pair of fresh
// nodes representing the sub-automaton, following the composition
// rules for each MoveExpr case.
func Compile(e *moveexpr.MoveExpr) *MoveGraph {
	g := newMoveGraph()
	head, _ := g.build(e)
	g.head = head
	Deflate(g)
	return g
}

func (g *MoveGraph) build(e *moveexpr.MoveExpr) (NodeID, NodeID) {
	switch e.Kind {
	case moveexpr.KindJump:
		h := g.addNode()
		t := g.addNode()
		g.addEdge(h, t, EdgeJump, e.Jump)
		return h, t

	case moveexpr.KindSequence:
		return g.buildSequence(e.Children)

	case moveexpr.KindChoice:
		return g.buildChoice(e.Children)

	case moveexpr.KindModded:
		return g.buildModded(e.Inner, e.Mod)

	default:
		panic("movegraph: unknown moveexpr.Kind")
	}
}

// buildSequence builds each child's sub-automaton and merges each
// child's head into the previous child's tail, leaving the first
// child's head as the overall head and the last child's tail as the
// overall tail — no separate placeholder node is needed since the
// first child's head already serves that role.
func (g *MoveGraph) buildSequence(children []*moveexpr.MoveExpr) (NodeID, NodeID) {
	head, tail := g.build(children[0])
	for _, c := range children[1:] {
		h, t := g.build(c)
		g.merge(tail, h)
		tail = t
	}
	return head, tail
}

func (g *MoveGraph) buildChoice(children []*moveexpr.MoveExpr) (NodeID, NodeID) {
	H := g.addNode()
	T := g.addNode()
	for _, c := range children {
		h, t := g.build(c)
		g.addEdge(H, h, EdgeDummyRequired, piece.Jump{})
		g.addEdge(t, T, EdgeDummyRequired, piece.Jump{})
	}
	return H, T
}

func (g *MoveGraph) buildModded(inner *moveexpr.MoveExpr, mod piece.Mod) (NodeID, NodeID) {
	switch mod.Kind {
	case piece.HorizontalMirror:
		return g.buildChoice([]*moveexpr.MoveExpr{moveexpr.Map(inner, piece.MirrorHorizontal), inner})

	case piece.VerticalMirror:
		return g.buildChoice([]*moveexpr.MoveExpr{moveexpr.Map(inner, piece.MirrorVertical), inner})

	case piece.DiagonalMirror:
		return g.buildChoice([]*moveexpr.MoveExpr{moveexpr.Map(inner, piece.MirrorDiagonal), inner})

	case piece.Exponentiate:
		return g.buildExponent(inner, mod.N)

	case piece.ExponentiateRange:
		return g.buildExponentRange(inner, mod.Lo, mod.Hi)

	case piece.ExponentiateInfinite:
		return g.buildExponentInfinite(inner, mod.Lo)

	default:
		panic("movegraph: unknown piece.ModKind")
	}
}

// buildExponent realizes e^n: an empty accepting move at n=0, e
// itself at n=1, and Sequence(e^(n-1), e) for n>1.
func (g *MoveGraph) buildExponent(inner *moveexpr.MoveExpr, n uint) (NodeID, NodeID) {
	switch {
	case n == 0:
		h := g.addNode()
		t := g.addNode()
		g.addEdge(h, t, EdgeDummyRequired, piece.Jump{})
		return h, t

	case n == 1:
		return g.build(inner)

	default:
		head, tMid := g.buildExponent(inner, n-1)
		hMid, tail := g.build(inner)
		g.merge(tMid, hMid)
		return head, tail
	}
}

func (g *MoveGraph) buildExponentRange(inner *moveexpr.MoveExpr, lo, hi uint) (NodeID, NodeID) {
	H := g.addNode()
	T := g.addNode()
	for n := lo; n <= hi; n++ {
		h, t := g.buildExponent(inner, n)
		g.addEdge(H, h, EdgeDummyRequired, piece.Jump{})
		g.addEdge(t, T, EdgeDummyRequired, piece.Jump{})
	}
	return H, T
}

// buildExponentInfinite realizes e^[lo..*). For lo>=1, it builds
// e^(lo-1) followed by one copy of e with an optional back-edge onto
// that copy's own head, so the engine may re-enter it any number of
// times once the mandatory lo-1 prefix is satisfied.
//
// lo==0 (zero-or-more) isn't literally covered by the lo-1 formula, so
// it is instead built as a choice between an empty accepting move and
// the lo==1 (one-or-more) automaton.
func (g *MoveGraph) buildExponentInfinite(inner *moveexpr.MoveExpr, lo uint) (NodeID, NodeID) {
	if lo == 0 {
		H := g.addNode()
		T := g.addNode()

		emptyH, emptyT := g.buildExponent(inner, 0)
		g.addEdge(H, emptyH, EdgeDummyRequired, piece.Jump{})
		g.addEdge(emptyT, T, EdgeDummyRequired, piece.Jump{})

		plusH, plusT := g.buildExponentInfinite(inner, 1)
		g.addEdge(H, plusH, EdgeDummyRequired, piece.Jump{})
		g.addEdge(plusT, T, EdgeDummyRequired, piece.Jump{})

		return H, T
	}

	head, tMid := g.buildExponent(inner, lo-1)
	hMid, tail := g.build(inner)
	g.addEdge(tail, hMid, EdgeDummyOptional, piece.Jump{})
	g.merge(tMid, hMid)
	return head, tail
}
