// Package board defines the Board contract the reachability engine
// queries — a pure function from coordinate to TileState — along with
// a handful of concrete boards: a rectangular-bounds board, an
// explicit-set board, a govaluate expression board, and a YAML
// scenario loader for all three.
//
// A Board must be deterministic across a single reachability query and
// is never mutated by the core. Nothing here is thread-unsafe to call
// concurrently, since every implementation only reads its own
// immutable configuration.
package board
