// Package cyclespace enumerates the closure of a cycle basis.
//
// Each cycle is encoded as an IncidenceVector over nodes 1..N (bit i set iff
// node i+1 is a member, backed by github.com/soniakeys/bits). Enumerate starts
// from the basis and repeatedly combines two known vectors that share a node,
// keeping the symmetric difference when it has at least three members and has
// not been seen before. It stops when no pair is left to try.
//
// # Node incidence, not edge incidence
//
// Textbook cycle-space arithmetic XORs edge sets and combines cycles that share
// an edge. This package combines node sets and tests node overlap, so some of
// its results are node sets rather than cycles of the graph, and some edge-space
// cycles are missed (two triangles sharing an edge differ in only two nodes).
// Callers that need a closed walk for a derived element recover it from the
// graph, e.g. with render.ClosedWalk.
//
// # Cost
//
// The closure can hold up to 2^(E−N+1) elements and the worklist grows with the
// square of that. WithMaxCycles and WithContext bound a run; WithWorkers spreads
// pair evaluation over goroutines without changing the result.
package cyclespace
