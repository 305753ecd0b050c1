// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, Degree) over the triangular storage.
// Determinism:
//   - Neighbors() is ascending by node id without any sorting step.

package core

import "fmt"

// Neighbors returns every node adjacent to node, ascending by id.
//
// Storage keeps each edge once, so the query reads two partitions:
//   - Stage 1: the column of node (pairs (i, node) with i < node), i.e. node as larger endpoint.
//   - Stage 2: the row of node (pairs (node, j) with j > node), i.e. node as smaller endpoint.
//
// Stage 1 yields ids < node and stage 2 ids > node, so the concatenation is sorted
// and the relation is symmetric: v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v).
//
// Errors:
//   - ErrVertexNotFound if node is outside 1..N.
//
// Complexity: O(N).
func (g *Graph) Neighbors(node int) ([]int, error) {
	if !g.valid(node) {
		return nil, fmt.Errorf("core: Neighbors(%d): n=%d: %w", node, g.n, ErrVertexNotFound)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	var i int
	for i = 1; i < node; i++ {
		if g.weights[g.index(i, node)] != 0 {
			out = append(out, i)
		}
	}
	for i = node + 1; i <= g.n; i++ {
		if g.weights[g.index(node, i)] != 0 {
			out = append(out, i)
		}
	}

	return out, nil
}

// Degree returns |Neighbors(node)|.
// Complexity: O(N).
func (g *Graph) Degree(node int) (int, error) {
	nbrs, err := g.Neighbors(node)
	if err != nil {
		return 0, fmt.Errorf("core: Degree: %w", err)
	}

	return len(nbrs), nil
}
