// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for cyclespace/core.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclespace/core"
)

// Common weights used across core tests.
const (
	Weight1 = 1
	Weight3 = 3
	Weight7 = 7
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentNodes = 60
	NReaders         = 50
	NCloners         = 20
)

// pair is an unordered edge fixture.
type pair struct{ U, V int }

// pattonFixture is the published 8-node reference graph; node 8 is isolated.
var pattonFixture = []pair{
	{1, 2}, {1, 5}, {2, 4}, {3, 4}, {3, 5}, {3, 6},
	{3, 7}, {4, 6}, {4, 7}, {5, 6}, {5, 7}, {6, 7},
}

// mustGraph builds a graph of order n with the given edges, all weighted Weight1.
func mustGraph(t *testing.T, n int, edges []pair) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(n)
	require.NoError(t, err, "NewGraph(%d)", n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.U, e.V, Weight1), "AddEdge(%d,%d)", e.U, e.V)
	}

	return g
}
