// SPDX-License-Identifier: MIT
// Package: cyclespace/builder
//
// impl_min_degree.go - raise every node to a minimum degree.
//
// Contract:
//   - 1 ≤ k ≤ n−1, otherwise ErrTooFewVertices (a simple graph cannot exceed n−1).
//   - cfg.rng must be non-nil, otherwise ErrNeedRandSource.
//   - Nodes are processed 1..n; for each node below k, partners are drawn with
//     rng.Intn(n)+1 and rejected while they equal the node or are already adjacent.
//   - Existing edges are never removed, so earlier nodes keep their degree.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclespace/core"
)

func newMinDegree(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if k < 1 || k > n-1 {
			return fmt.Errorf("%s: k=%d outside [1,%d]: %w: %w", MethodMinDegree, k, n-1, ErrTooFewVertices, core.ErrInvalidParameter)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodMinDegree, ErrNeedRandSource)
		}

		var (
			node, partner, deg int
			err                error
		)
		for node = 1; node <= n; node++ {
			if deg, err = g.Degree(node); err != nil {
				return fmt.Errorf("%s: %w", MethodMinDegree, err)
			}
			for ; deg < k; deg++ {
				// deg < k ≤ n−1 guarantees at least one free partner exists.
				for {
					partner = cfg.rng.Intn(n) + 1
					if g.CanAddEdge(node, partner) {
						break
					}
				}
				if err = g.AddEdge(node, partner, cfg.weight()); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodMinDegree, node, partner, err)
				}
			}
		}

		return nil
	}
}
