package moveexpr

import "github.com/zayadnimrod/fairychess/parser"

// Lower folds a parser.RawExpr into the canonical MoveExpr tree.
func Lower(r *parser.RawExpr) *MoveExpr {
	switch r.Kind {
	case parser.RawJump:
		return NewJump(r.Jump)

	case parser.RawGroup:
		// Parentheses are pure grouping — no node of their own.
		return Lower(r.Inner)

	case parser.RawSeq:
		var children []*MoveExpr
		for node := r; node != nil; node = node.Tail {
			children = append(children, Lower(node.Head))
		}
		return NewSequence(children...)

	case parser.RawOptions:
		children := make([]*MoveExpr, 0, len(r.Options))
		for _, opt := range r.Options {
			children = append(children, Lower(opt))
		}
		return NewChoice(children...)

	case parser.RawModded:
		// Mods is the modifier list in left-to-right parse order;
		// folding it into a left-associative chain makes the last mod
		// parsed the outermost node, i.e. the last one applied.
		current := Lower(r.Inner)
		for _, m := range r.Mods {
			current = NewModded(current, m)
		}
		return current

	default:
		panic("moveexpr: unknown RawKind")
	}
}
