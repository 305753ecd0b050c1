// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and edge queries (AddEdge, CanAddEdge, HasEdge, Weight, Edges, EdgeCount).
// Determinism:
//   - Edges() is sorted by (From, To) ascending because it walks the triangle row by row.
// Concurrency:
//   - AddEdge holds the write lock; every query holds the read lock.

package core

import "fmt"

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Implementation:
//   - Stage 1: Reject u == v (ErrLoopNotAllowed) and ids outside 1..N (ErrVertexNotFound).
//   - Stage 2: Reject w ≤ 0 (ErrBadWeight); zero is the "no edge" marker in storage.
//   - Stage 3: Canonicalize to (min, max) and reject an occupied slot (ErrDuplicateEdge).
//   - Stage 4: Store the weight.
//
// The graph is not mutated when an error is returned.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u == v {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("core: AddEdge(%d,%d): n=%d: %w", u, v, g.n, ErrVertexNotFound)
	}
	if w <= 0 {
		return fmt.Errorf("core: AddEdge(%d,%d): w=%d: %w", u, v, w, ErrBadWeight)
	}

	i, j := canonical(u, v)

	g.mu.Lock()
	defer g.mu.Unlock()

	idx := g.index(i, j)
	if g.weights[idx] != 0 {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", i, j, ErrDuplicateEdge)
	}
	g.weights[idx] = w
	g.edges++

	return nil
}

// CanAddEdge reports whether AddEdge(u, v, w>0) would succeed:
// u ≠ v, both ids are in range and the pair is still free.
// Complexity: O(1).
func (g *Graph) CanAddEdge(u, v int) bool {
	if u == v || !g.valid(u) || !g.valid(v) {
		return false
	}
	i, j := canonical(u, v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weights[g.index(i, j)] == 0
}

// HasEdge reports whether the edge {u, v} exists. Order of u and v is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u == v || !g.valid(u) || !g.valid(v) {
		return false
	}
	i, j := canonical(u, v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weights[g.index(i, j)] != 0
}

// Weight returns the weight of {u, v}, or 0 when the pair has no edge.
// Returns ErrVertexNotFound / ErrLoopNotAllowed for an invalid pair.
func (g *Graph) Weight(u, v int) (int64, error) {
	if u == v {
		return 0, fmt.Errorf("core: Weight(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if !g.valid(u) || !g.valid(v) {
		return 0, fmt.Errorf("core: Weight(%d,%d): n=%d: %w", u, v, g.n, ErrVertexNotFound)
	}
	i, j := canonical(u, v)

	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.weights[g.index(i, j)], nil
}

// Edges returns every edge sorted by (From, To) ascending, with From < To.
// Complexity: O(N²) scan of the triangle.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	var i, j int
	for i = 1; i < g.n; i++ {
		for j = i + 1; j <= g.n; j++ {
			if w := g.weights[g.index(i, j)]; w != 0 {
				out = append(out, Edge{From: i, To: j, Weight: w})
			}
		}
	}

	return out
}

// EdgeCount returns the number of stored edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}
