// Package piece defines the two leaf value types of the move-notation
// DSL: Jump, a single signed board displacement, and Mod, a tagged
// modifier (mirror or exponent) applied to a move expression.
//
// Both types are small, comparable, and copied by value throughout the
// pipeline (parser → moveexpr → movegraph), the usual treatment for
// plain, freely-copied graph data.
package piece
