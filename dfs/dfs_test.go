package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclespace/core"
	"github.com/katalvlaran/cyclespace/dfs"
)

// buildGraph creates a graph of order n from unordered pairs, all weight 1.
func buildGraph(t *testing.T, n int, pairs [][2]int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, p := range pairs {
		require.NoError(t, g.AddEdge(p[0], p[1], 1))
	}

	return g
}

// buildChain creates a path 1—2—…—n.
func buildChain(t *testing.T, n int) *core.Graph {
	t.Helper()
	pairs := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		pairs = append(pairs, [2]int{i, i + 1})
	}

	return buildGraph(t, n, pairs)
}

// twoComponents is a triangle {1,2,3} next to a denser block {4..8}.
func twoComponents(t *testing.T) *core.Graph {
	return buildGraph(t, 8, [][2]int{
		{1, 2}, {2, 3}, {1, 3},
		{4, 5}, {4, 6}, {5, 6}, {5, 7}, {6, 7}, {4, 7}, {4, 8}, {7, 8},
	})
}

func TestDFS_NilGraph(t *testing.T) {
	res, err := dfs.DFS(nil, 1)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestDFS_StartNotFound(t *testing.T) {
	g := buildChain(t, 3)
	for _, start := range []int{0, 4} {
		res, err := dfs.DFS(g, start)
		assert.Nil(t, res)
		assert.ErrorIs(t, err, dfs.ErrStartVertexNotFound)
	}
}

func TestDFS_ChainOrderDepthParent(t *testing.T) {
	g := buildChain(t, 5)

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.Order)
	for i := 1; i <= 5; i++ {
		assert.True(t, res.Visited[i])
		assert.Equal(t, i-1, res.Depth[i])
	}
	_, hasParent := res.Parent[1]
	assert.False(t, hasParent, "start vertex should have no parent")
	assert.Equal(t, 3, res.Parent[4])
}

func TestDFS_StackDiscipline(t *testing.T) {
	// Star around 1: neighbors pushed ascending, so popped descending.
	g := buildGraph(t, 4, [][2]int{{1, 2}, {1, 3}, {1, 4}})

	res, err := dfs.DFS(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 3, 2}, res.Order)
}

func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g := buildChain(t, 6)

	res, err := dfs.DFS(g, 1, dfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)

	res, err = dfs.DFS(g, 1, dfs.WithFilterNeighbor(func(node int) bool { return node != 4 }))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
}

func TestDFS_OnVisitErrorAborts(t *testing.T) {
	g := buildChain(t, 5)
	stop := errors.New("stop")

	_, err := dfs.DFS(g, 1, dfs.WithOnVisit(func(node int) error {
		if node == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestDFS_Cancelled(t *testing.T) {
	g := buildChain(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := dfs.DFS(g, 1, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUnreachable(t *testing.T) {
	g := twoComponents(t)

	rest, err := dfs.Unreachable(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6, 7, 8}, rest)

	rest, err = dfs.Unreachable(g, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, rest)

	ok, err := dfs.Connected(g)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.AddEdge(3, 4, 1))
	rest, err = dfs.Unreachable(g, 1)
	require.NoError(t, err)
	assert.Empty(t, rest)

	ok, err = dfs.Connected(g)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = dfs.Unreachable(nil, 1)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}
