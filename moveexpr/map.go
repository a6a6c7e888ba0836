package moveexpr

import "github.com/zayadnimrod/fairychess/piece"

// Map applies f to every Jump leaf of e, returning a new tree of the
// same shape. Used to build the mirrored variant a Modded mirror node
// expands into (e.g. X| ≡ Choice(Map(X, (x,y)→(-x,y)), X)).
func Map(e *MoveExpr, f func(piece.Jump) piece.Jump) *MoveExpr {
	switch e.Kind {
	case KindJump:
		return NewJump(f(e.Jump))

	case KindChoice:
		children := make([]*MoveExpr, len(e.Children))
		for i, c := range e.Children {
			children[i] = Map(c, f)
		}
		return &MoveExpr{Kind: KindChoice, Children: children}

	case KindSequence:
		children := make([]*MoveExpr, len(e.Children))
		for i, c := range e.Children {
			children[i] = Map(c, f)
		}
		return &MoveExpr{Kind: KindSequence, Children: children}

	case KindModded:
		return &MoveExpr{Kind: KindModded, Inner: Map(e.Inner, f), Mod: e.Mod}

	default:
		panic("moveexpr: unknown Kind")
	}
}
