// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters, Clone and Stats.
// Policy:
//   - No algorithms here beyond O(N²) snapshots.

package core

// NodeCount returns N. The node set 1..N never changes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return g.n
}

// CyclomaticNumber returns E − N + 1, the cycle-space dimension of a connected graph.
// For a disconnected graph the true dimension is E − N + C; callers check connectivity.
// Complexity: O(1).
func (g *Graph) CyclomaticNumber() int {
	return g.EdgeCount() - g.n + 1
}

// Clone returns an independent deep copy of g.
// Complexity: O(N²).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		n:       g.n,
		edges:   g.edges,
		weights: make([]int64, len(g.weights)),
	}
	copy(clone.weights, g.weights)

	return clone
}

// Stats produces a snapshot of order, size, degree bounds and cyclomatic number.
// Complexity: O(N²).
func (g *Graph) Stats() *GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	deg := make([]int, g.n+1)
	var i, j int
	for i = 1; i < g.n; i++ {
		for j = i + 1; j <= g.n; j++ {
			if g.weights[g.index(i, j)] != 0 {
				deg[i]++
				deg[j]++
			}
		}
	}

	stats := GraphStats{
		NodeCount:        g.n,
		EdgeCount:        g.edges,
		MinDegree:        deg[1],
		MaxDegree:        deg[1],
		CyclomaticNumber: g.edges - g.n + 1,
	}
	for i = 2; i <= g.n; i++ {
		if deg[i] < stats.MinDegree {
			stats.MinDegree = deg[i]
		}
		if deg[i] > stats.MaxDegree {
			stats.MaxDegree = deg[i]
		}
	}

	return &stats
}
