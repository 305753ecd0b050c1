// SPDX-License-Identifier: MIT
//
// File: walk.go
// Role: recover a closed walk through a node set.

package render

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/cyclespace/core"
)

// ErrNoClosedWalk indicates that the nodes admit no simple closed walk in g.
var ErrNoClosedWalk = errors.New("render: no closed walk through node set")

// ErrGraphNil indicates a nil *core.Graph argument.
var ErrGraphNil = errors.New("render: graph is nil")

// ClosedWalk orders nodes into a simple closed walk of g that visits every one
// of them exactly once, i.e. a Hamiltonian cycle of the induced subgraph. The
// walk starts at the smallest node and neighbors are tried ascending, so the
// result is deterministic.
//
// Derived cycles carry only a member set; this recovers an order for display.
//
// Errors: ErrGraphNil, core.ErrVertexNotFound, ErrNoClosedWalk (fewer than
// three distinct nodes, or no such walk).
// Complexity: exponential in len(nodes) in the worst case (backtracking).
func ClosedWalk(g *core.Graph, nodes []int) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	set := slices.Clone(nodes)
	slices.Sort(set)
	set = slices.Compact(set)
	if len(set) < 3 {
		return nil, fmt.Errorf("render: ClosedWalk(%v): %w", nodes, ErrNoClosedWalk)
	}

	for _, v := range set {
		if v < 1 || v > g.NodeCount() {
			return nil, fmt.Errorf("render: ClosedWalk: node %d: %w", v, core.ErrVertexNotFound)
		}
	}

	// Induced adjacency, ascending.
	adj := make(map[int][]int, len(set))
	for _, u := range set {
		for _, v := range set {
			if u != v && g.HasEdge(u, v) {
				adj[u] = append(adj[u], v)
			}
		}
		if len(adj[u]) < 2 {
			return nil, fmt.Errorf("render: ClosedWalk(%v): node %d has degree %d: %w", nodes, u, len(adj[u]), ErrNoClosedWalk)
		}
	}

	start := set[0]
	walk := make([]int, 1, len(set))
	walk[0] = start
	used := map[int]bool{start: true}

	var extend func() bool
	extend = func() bool {
		last := walk[len(walk)-1]
		if len(walk) == len(set) {
			return g.HasEdge(last, start)
		}
		for _, next := range adj[last] {
			if used[next] {
				continue
			}
			used[next] = true
			walk = append(walk, next)
			if extend() {
				return true
			}
			walk = walk[:len(walk)-1]
			used[next] = false
		}
		return false
	}

	if !extend() {
		return nil, fmt.Errorf("render: ClosedWalk(%v): %w", nodes, ErrNoClosedWalk)
	}

	return walk, nil
}
