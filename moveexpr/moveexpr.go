package moveexpr

import "github.com/zayadnimrod/fairychess/piece"

// Kind discriminates the cases of MoveExpr.
type Kind int

const (
	// KindJump is a leaf displacement.
	KindJump Kind = iota
	// KindChoice is a non-deterministic selection among Children.
	KindChoice
	// KindSequence is an ordered, left-to-right composition of Children.
	KindSequence
	// KindModded applies Mod to Inner.
	KindModded
)

// MoveExpr is the canonical move expression tree: Jump | Choice |
// Sequence | Modded, with Choice and Sequence already flattened and
// Modded already reduced to a single modifier per node. This is what
// moveexpr.Lower produces and what movegraph.Compile consumes —
// parser.RawExpr never reaches the compiler directly.
type MoveExpr struct {
	Kind Kind

	// Jump is populated when Kind == KindJump.
	Jump piece.Jump

	// Children holds the flattened operands of a Choice or Sequence.
	Children []*MoveExpr

	// Inner and Mod are populated when Kind == KindModded.
	Inner *MoveExpr
	Mod   piece.Mod
}

// NewJump builds a KindJump leaf.
func NewJump(j piece.Jump) *MoveExpr {
	return &MoveExpr{Kind: KindJump, Jump: j}
}

// NewChoice builds a KindChoice node over children, splicing any
// children that are themselves KindChoice so Choice never nests.
func NewChoice(children ...*MoveExpr) *MoveExpr {
	return &MoveExpr{Kind: KindChoice, Children: flattenChoice(children)}
}

// NewSequence builds a KindSequence node over children, splicing any
// children that are themselves KindSequence so Sequence never nests.
func NewSequence(children ...*MoveExpr) *MoveExpr {
	flat := flattenSequence(children)
	if len(flat) == 1 {
		return flat[0]
	}
	return &MoveExpr{Kind: KindSequence, Children: flat}
}

// NewModded builds a KindModded node wrapping inner with a single mod.
func NewModded(inner *MoveExpr, mod piece.Mod) *MoveExpr {
	return &MoveExpr{Kind: KindModded, Inner: inner, Mod: mod}
}

func flattenChoice(children []*MoveExpr) []*MoveExpr {
	var out []*MoveExpr
	for _, c := range children {
		if c.Kind == KindChoice {
			out = append(out, c.Children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

func flattenSequence(children []*MoveExpr) []*MoveExpr {
	var out []*MoveExpr
	for _, c := range children {
		if c.Kind == KindSequence {
			out = append(out, c.Children...)
		} else {
			out = append(out, c)
		}
	}
	return out
}
