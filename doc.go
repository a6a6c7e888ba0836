// Package fairychess evaluates fairy-chess piece movement: given a
// compact textual description of how a piece moves and a board that
// answers whether tiles are passable, it decides whether a target
// square is reachable from a start square and, when it is, returns
// one concrete move path.
//
// The module is organized as a three-stage pipeline, leaves first:
//
//	piece/         — Jump, Mod: the leaf value types of the move DSL
//	parser/        — hand-written recursive-descent parser producing RawExpr
//	moveexpr/      — MoveExpr, the canonical, flattened move expression tree
//	movegraph/     — the MoveGraph automaton, its compiler, and its deflater
//	board/         — the Board contract and reference board implementations
//	reachability/  — CheckMove, the traversal engine
//
// Two supporting packages sit alongside the pipeline:
//
//	piececache/    — compiled-MoveGraph memoization keyed by expression hash
//	transport/     — an optional NATS request/reply front-end for CheckMove
//
// and cmd/fairycli drives the whole pipeline from the command line.
//
//	go get github.com/zayadnimrod/fairychess
package fairychess
