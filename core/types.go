// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphStats types, sentinel errors and the NewGraph constructor.
// Policy:
//   - Nodes are the contiguous integers 1..N fixed at construction.
//   - Edges are undirected, weighted (w > 0) and simple (no loops, no multi-edges).
//   - Storage is a packed upper triangle keyed by (min(u,v), max(u,v)).

package core

import (
	"errors"
	"fmt"
	"sync"
)

// MinNodes is the smallest graph order accepted by NewGraph.
const MinNodes = 2

// Sentinel errors for core graph operations.
//
// ErrLoopNotAllowed, ErrVertexNotFound and ErrBadWeight are refinements of
// ErrInvalidParameter: errors.Is(err, ErrInvalidParameter) holds for all of them.
var (
	// ErrInvalidParameter indicates a bad node count, node id or edge argument.
	ErrInvalidParameter = errors.New("core: invalid parameter")

	// ErrLoopNotAllowed indicates an AddEdge(u, u, ...) call.
	ErrLoopNotAllowed = fmt.Errorf("%w: self-loop not allowed", ErrInvalidParameter)

	// ErrVertexNotFound indicates a node id outside 1..N.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrInvalidParameter)

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = fmt.Errorf("%w: weight must be positive", ErrInvalidParameter)

	// ErrDuplicateEdge indicates an edge between the canonical pair already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")
)

// Edge is an undirected weighted edge, always reported with From < To.
type Edge struct {
	From   int   `yaml:"from" json:"from"`
	To     int   `yaml:"to" json:"to"`
	Weight int64 `yaml:"weight" json:"weight"`
}

// GraphStats is a read-only snapshot of a graph's size.
type GraphStats struct {
	NodeCount        int
	EdgeCount        int
	MinDegree        int
	MaxDegree        int
	CyclomaticNumber int
}

// Graph is an undirected, weighted, simple graph over nodes 1..N.
//
// weights holds the strict upper triangle row by row: row i (1 ≤ i < N) stores
// the pairs (i, i+1) … (i, N). A zero entry means "no edge".
// mu guards weights and edges; n never changes after construction.
type Graph struct {
	mu sync.RWMutex

	n       int
	edges   int
	weights []int64
}

// NewGraph creates an empty graph over nodes 1..n.
// Returns ErrInvalidParameter if n < MinNodes.
// Complexity: O(n²) space for the triangle.
func NewGraph(n int) (*Graph, error) {
	if n < MinNodes {
		return nil, fmt.Errorf("core: NewGraph: n=%d < min=%d: %w", n, MinNodes, ErrInvalidParameter)
	}

	return &Graph{
		n:       n,
		weights: make([]int64, n*(n-1)/2),
	}, nil
}

// canonical orders a pair so that the smaller endpoint comes first.
func canonical(u, v int) (int, int) {
	if u > v {
		return v, u
	}

	return u, v
}

// index maps a canonical pair (i < j) to its slot in the packed triangle.
// Row i starts after Σ_{k<i}(n-k) = (i-1)(2n-i)/2 entries.
func (g *Graph) index(i, j int) int {
	return (i-1)*(2*g.n-i)/2 + (j - i - 1)
}

// valid reports whether node lies in 1..N.
func (g *Graph) valid(node int) bool {
	return node >= 1 && node <= g.n
}
