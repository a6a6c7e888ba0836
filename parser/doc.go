// Package parser implements a hand-written recursive-descent parser
// for the fairy-chess move-notation DSL:
//
//	Seq      ::= Modded ('*' Seq)?
//	Modded   ::= Option ( '|' | '-' | '/' | '^' ExpArg | '?' )*
//	ExpArg   ::= UInt | '[' UInt '..' ( UInt | '*' ) ']'
//	Option   ::= '{' Seq (',' Seq)* '}' | '{' '}' | '(' Seq ')' | Jump
//	Jump     ::= '[' Int ',' Int ']'
//
// Whitespace (space, tab) is discarded before parsing. '?' desugars to
// '^[0..1]'; a bare '^*' desugars to '^[1..*)'.
//
// Parse produces a RawExpr tree — the direct image of the grammar
// above, still carrying the parser's nested-modifier-list shape. The
// moveexpr package lowers RawExpr into the canonical, flattened
// MoveExpr the graph compiler consumes.
//
// Errors never panic; every failure is a *ParsingError carrying a Kind
// (and, for the kinds that record one, a position), unwrapping to one of the package's sentinel errors so
// callers can branch with errors.Is in the usual sentinel-plus-wrap
// style.
package parser
