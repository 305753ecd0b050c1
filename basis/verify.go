// SPDX-License-Identifier: MIT
//
// File: verify.go
// Role: structural checks for cycles and bases.

package basis

import (
	"fmt"

	"github.com/katalvlaran/cyclespace/core"
)

// MinCycleLen is the length of the shortest simple cycle (a triangle).
const MinCycleLen = 3

// Verify checks that every cycle is a simple closed walk of g: at least
// MinCycleLen nodes, no node repeated, every consecutive pair and the closing
// pair (last, first) joined by an edge.
//
// Errors: ErrGraphNil, ErrNotCycle (wrapped with the offending index).
// Complexity: O(Σ|cycle|).
func Verify(g *core.Graph, cycles [][]int) error {
	if g == nil {
		return ErrGraphNil
	}

	seen := make([]int, g.NodeCount()+1)
	for i, c := range cycles {
		if len(c) < MinCycleLen {
			return fmt.Errorf("basis: Verify: cycle %d has %d nodes: %w", i, len(c), ErrNotCycle)
		}
		for k, node := range c {
			if node < 1 || node >= len(seen) {
				return fmt.Errorf("basis: Verify: cycle %d: node %d: %w: %w", i, node, ErrNotCycle, core.ErrVertexNotFound)
			}
			if seen[node] == i+1 {
				return fmt.Errorf("basis: Verify: cycle %d repeats node %d: %w", i, node, ErrNotCycle)
			}
			seen[node] = i + 1

			next := c[(k+1)%len(c)]
			if !g.HasEdge(node, next) {
				return fmt.Errorf("basis: Verify: cycle %d: no edge {%d,%d}: %w", i, node, next, ErrNotCycle)
			}
		}
	}

	return nil
}

// VerifyBasis runs Verify and checks the basis size against the cyclomatic
// number E − N + 1. g must be connected for the size check to be meaningful.
func VerifyBasis(g *core.Graph, cycles [][]int) error {
	if err := Verify(g, cycles); err != nil {
		return err
	}
	if want := g.CyclomaticNumber(); len(cycles) != want {
		return fmt.Errorf("basis: VerifyBasis: got %d cycles, want %d: %w", len(cycles), want, ErrBasisSize)
	}

	return nil
}
