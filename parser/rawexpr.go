package parser

import "github.com/zayadnimrod/fairychess/piece"

// RawExpr is the direct image of the grammar in doc.go: one node per
// grammar symbol, still shaped the way the recursive descent produced
// it (a Modded node carries its whole modifier list; a Seq node is a
// right-leaning cons list). moveexpr.Lower folds this into the
// canonical, flattened MoveExpr.
type RawExpr struct {
	// Kind discriminates which grammar production built this node.
	Kind RawKind

	// Jump is populated when Kind == RawJump.
	Jump piece.Jump

	// Head/Tail encode a Seq node: Head is a RawModded node, or the
	// bare Option when it has no modifiers; Tail is the rest of the
	// sequence (nil if this is the last element).
	Head *RawExpr
	Tail *RawExpr

	// Inner is the operand of a Modded node, or the single child of a
	// parenthesized Option.
	Inner *RawExpr

	// Mods is the modifier list attached to Inner, in the order parsed:
	// "X|-" applies | then - to the preceding Option, left to right.
	Mods []piece.Mod

	// Options holds the comma-separated alternatives of a brace Option
	// (each itself a Seq RawExpr).
	Options []*RawExpr
}

// RawKind discriminates the cases of RawExpr.
type RawKind int

const (
	// RawJump is a leaf [x,y] displacement.
	RawJump RawKind = iota
	// RawModded wraps Inner with one or more Mods.
	RawModded
	// RawSeq is one element (Head) followed by the rest (Tail), or a
	// single trailing element when Tail is nil.
	RawSeq
	// RawOptions is a '{' ... '}' alternation of Seq nodes.
	RawOptions
	// RawGroup is a parenthesized '(' Seq ')'.
	RawGroup
)
