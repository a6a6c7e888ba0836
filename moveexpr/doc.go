// Package moveexpr defines MoveExpr, the canonical, flattened move
// expression tree the graph compiler consumes, and Lower, which folds
// a parser.RawExpr into one.
//
// Lowering does three things parser.RawExpr leaves undone: it flattens
// nested Seq left-spines into a single flat Sequence, it flattens
// nested brace Choice alternatives into one Choice (`{{a,b},{c,d}}` ≡
// `{a,b,c,d}`), and it re-associates a Modded node's modifier list into
// a left-associative chain of single-Mod Modded nodes, outermost
// modifier applied last.
package moveexpr
