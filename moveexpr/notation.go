package moveexpr

import (
	"fmt"
	"strings"
)

// Notation renders e in canonical DSL text. Two MoveExpr trees that are
// structurally equal always render identically, and parser.Parse's
// output, once lowered, always round-trips through Notation back to an
// equal MoveExpr.
func Notation(e *MoveExpr) string {
	switch e.Kind {
	case KindJump:
		return fmt.Sprintf("[%d,%d]", e.Jump.X, e.Jump.Y)

	case KindChoice:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			parts[i] = Notation(c)
		}
		return "{" + strings.Join(parts, ",") + "}"

	case KindSequence:
		parts := make([]string, len(e.Children))
		for i, c := range e.Children {
			parts[i] = Notation(c)
		}
		return strings.Join(parts, "*")

	case KindModded:
		inner := Notation(e.Inner)
		if e.Inner.Kind == KindSequence {
			// Without the parentheses the modifier would bind to the
			// sequence's last element on reparse.
			inner = "(" + inner + ")"
		}
		return inner + e.Mod.Notation()

	default:
		panic("moveexpr: unknown Kind")
	}
}
