// SPDX-License-Identifier: MIT
// Package: cyclespace/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) edge sampling over an existing node set.
//
// Contract:
//   - 0 < p ≤ 1, otherwise ErrInvalidProbability.
//   - cfg.rng must be non-nil, otherwise ErrNeedRandSource.
//   - One rng.Float64() draw per unordered pair, i ascending then j ascending.
//   - Pairs that already hold an edge are skipped without consuming a draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclespace/core"
)

func newRandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if !(p > 0 && p <= MaxProbability) {
			return fmt.Errorf("%s: p=%v: %w: %w", MethodRandomSparse, p, ErrInvalidProbability, core.ErrInvalidParameter)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}

		n := g.NodeCount()
		var i, j int
		for i = 1; i < n; i++ {
			for j = i + 1; j <= n; j++ {
				if !g.CanAddEdge(i, j) {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := g.AddEdge(i, j, cfg.weight()); err != nil {
					return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodRandomSparse, i, j, err)
				}
			}
		}

		return nil
	}
}
