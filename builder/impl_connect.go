// SPDX-License-Identifier: MIT
// Package: cyclespace/builder
//
// impl_connect.go - merge every component into the component of a root node.
//
// Algorithm (repeat until a traversal from root reaches every node):
//   - U := nodes unreachable from root (ascending), R := nodes reachable (ascending).
//   - Pick two distinct members of U (the same node twice when |U| = 1) and two
//     distinct members of R; add the edges {u₁,r₁} and {u₂,r₂}.
//   - An edge is added only when the pair is still free, so no duplicates arise.
//
// Two bridging edges per round keep the minimum degree of the merged graph and
// add a cycle through the bridge when the picks differ.
//
// Each round shrinks U by at least one component, so the loop runs at most
// (#components − 1) times.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclespace/core"
	"github.com/katalvlaran/cyclespace/dfs"
)

func newConnect(root int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := g.NodeCount()
		if root < 1 || root > n {
			return fmt.Errorf("%s: root=%d outside [1,%d]: %w: %w", MethodConnect, root, n, ErrTooFewVertices, core.ErrInvalidParameter)
		}

		for {
			res, err := dfs.DFS(g, root)
			if err != nil {
				return fmt.Errorf("%s: %w", MethodConnect, err)
			}

			var reached, missing []int
			for node := 1; node <= n; node++ {
				if res.Visited[node] {
					reached = append(reached, node)
				} else {
					missing = append(missing, node)
				}
			}
			if len(missing) == 0 {
				return nil
			}
			if cfg.rng == nil {
				return fmt.Errorf("%s: %d unreachable nodes: %w", MethodConnect, len(missing), ErrNeedRandSource)
			}

			u1, u2 := pickTwo(cfg, missing)
			r1, r2 := pickTwo(cfg, reached)
			if err = addIfFree(g, cfg, u1, r1); err != nil {
				return err
			}
			if err = addIfFree(g, cfg, u2, r2); err != nil {
				return err
			}
		}
	}
}

// pickTwo draws two distinct members of nodes uniformly at random. A single
// member is returned twice.
func pickTwo(cfg builderConfig, nodes []int) (int, int) {
	if len(nodes) == 1 {
		return nodes[0], nodes[0]
	}
	i := cfg.rng.Intn(len(nodes))
	j := cfg.rng.Intn(len(nodes) - 1)
	if j >= i {
		j++
	}

	return nodes[i], nodes[j]
}

func addIfFree(g *core.Graph, cfg builderConfig, u, v int) error {
	if !g.CanAddEdge(u, v) {
		return nil
	}
	if err := g.AddEdge(u, v, cfg.weight()); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", MethodConnect, u, v, err)
	}

	return nil
}
