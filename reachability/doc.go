// Package reachability implements CheckMove, the traversal engine:
// given a compiled MoveGraph, a Board, a start and target square, and
// an optional axis inversion, it searches for a path of graph
// transitions from start to target and returns the MoveTrace walked.
//
// The worklist is an explicit LIFO stack (emirpasic/gods/arraystack)
// in the same explicit-container style a graph traversal keeps its
// own visitor state, not the call stack — so deeply repetitive moves
// (knightrider, infinite king) don't risk Go stack exhaustion. Traces
// share history via a persistent cons-list so forking paths don't each
// pay for a full copy of their prefix.
package reachability
