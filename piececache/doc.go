// Package piececache memoizes compiled MoveGraphs keyed by a content
// hash of their source MoveExpr. A MoveGraph itself is immutable and
// safe to share once compiled, so a repeatedly-parsed piece notation
// (a REPL re-evaluating the same move, a transport server serving
// many requests for one piece) never pays the graph-compiler cost
// twice.
package piececache
