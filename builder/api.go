// SPDX-License-Identifier: MIT
// Package: cyclespace/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cyclespace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only add edges; the node set 1..N is fixed by core.NewGraph.
//   - Preserve determinism for the same config and call order.
//
// Complexity (this type): O(1) to pass; actual cost is in the closure body.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph over nodes 1..n, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately; the partially built graph is discarded.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - core.ErrInvalidParameter if n < core.MinNodes.
//   - ErrConstructFailed for a nil constructor.
//   - Wrapped constructor errors; branch with errors.Is against builder sentinels.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
	}

	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildGraph, i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildGraph, err)
		}
	}

	return g, nil
}

// Synthesize produces a connected weighted graph over nodes 1..n in which every
// node has degree ≥ 2. It runs three phases against one RNG stream:
//
//  1. RandomSparse(density): each unordered pair becomes an edge with probability density.
//  2. MinDegree(2): a node of degree < 2 is joined to uniformly chosen non-neighbors.
//  3. Connect(1): nodes unreachable from node 1 are linked into its component.
//
// The RNG must be provided with WithSeed or WithRand; a given seed always yields
// the same graph.
//
// Errors:
//   - ErrTooFewVertices (also core.ErrInvalidParameter) if n < MinSynthNodes.
//   - ErrInvalidProbability (also core.ErrInvalidParameter) if density ∉ (0,1].
//   - ErrNeedRandSource if no RNG is configured.
//
// Complexity: O(n²) for phase 1 and O(n²) expected for phases 2-3.
func Synthesize(n int, density float64, opts ...BuilderOption) (*core.Graph, error) {
	if n < MinSynthNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w: %w",
			MethodSynthesize, n, MinSynthNodes, ErrTooFewVertices, core.ErrInvalidParameter)
	}
	if !(density > 0 && density <= MaxProbability) {
		return nil, fmt.Errorf("%s: density=%v ∉ (0,1]: %w: %w",
			MethodSynthesize, density, ErrInvalidProbability, core.ErrInvalidParameter)
	}

	g, err := BuildGraph(n, opts,
		RandomSparse(density),
		MinDegree(MinSynthDegree),
		Connect(RootNode),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSynthesize, err)
	}

	return g, nil
}

// RandomSparse returns a Constructor adding each unordered pair {i,j} as an
// edge with probability p. Pairs are visited i ascending, then j ascending.
// See impl_random_sparse.go.
func RandomSparse(p float64) Constructor {
	return newRandomSparse(p)
}

// MinDegree returns a Constructor raising every node to degree ≥ k by joining
// it to uniformly chosen non-neighbors. See impl_min_degree.go.
func MinDegree(k int) Constructor {
	return newMinDegree(k)
}

// Connect returns a Constructor that links every component not reachable from
// root into root's component. See impl_connect.go.
func Connect(root int) Constructor {
	return newConnect(root)
}
