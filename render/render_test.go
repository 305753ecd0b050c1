package render_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cyclespace/basis"
	"github.com/katalvlaran/cyclespace/core"
	"github.com/katalvlaran/cyclespace/cyclespace"
	"github.com/katalvlaran/cyclespace/render"
)

func fixtureGraph(t *testing.T) *core.Graph {
	t.Helper()

	g, err := core.NewGraph(8)
	require.NoError(t, err)
	for _, p := range [][2]int{
		{1, 2}, {1, 5}, {2, 4}, {3, 4}, {3, 5}, {3, 6},
		{3, 7}, {4, 6}, {4, 7}, {5, 6}, {5, 7}, {6, 7},
	} {
		require.NoError(t, g.AddEdge(p[0], p[1], int64(p[0]+p[1])))
	}

	return g
}

func TestCycles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, render.Cycles(&buf, [][]int{{3, 5, 7}, {2, 1, 5, 7, 4}}))
	want := "2 cycles were found\n" +
		"  3 ->  5 ->  7 ->  3\n" +
		"  2 ->  1 ->  5 ->  7 ->  4 ->  2\n"
	assert.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, render.Cycles(&buf, nil))
	assert.Equal(t, "0 cycles were found\n", buf.String())
}

func TestClosedWalk(t *testing.T) {
	t.Parallel()

	g := fixtureGraph(t)
	tests := []struct {
		nodes []int
		want  []int
	}{
		{[]int{3, 4, 6}, []int{3, 4, 6}},
		{[]int{6, 5, 4, 3}, []int{3, 4, 6, 5}},
		{[]int{2, 1, 5, 7, 4}, []int{1, 2, 4, 7, 5}},
	}
	for _, tc := range tests {
		got, err := render.ClosedWalk(g, tc.nodes)
		require.NoError(t, err, "%v", tc.nodes)
		assert.Equal(t, tc.want, got)
		require.NoError(t, basis.Verify(g, [][]int{got}))
	}
}

func TestClosedWalk_Rejects(t *testing.T) {
	t.Parallel()

	g := fixtureGraph(t)

	// {1,2,3,4} is a node-set combination with no cycle behind it: 1 has one induced neighbor.
	_, err := render.ClosedWalk(g, []int{1, 2, 3, 4})
	assert.ErrorIs(t, err, render.ErrNoClosedWalk)

	_, err = render.ClosedWalk(g, []int{3, 5, 5})
	assert.ErrorIs(t, err, render.ErrNoClosedWalk)

	_, err = render.ClosedWalk(g, []int{3, 5, 9})
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	_, err = render.ClosedWalk(nil, []int{1, 2, 3})
	assert.True(t, errors.Is(err, render.ErrGraphNil))
}

func TestReport_Encoders(t *testing.T) {
	t.Parallel()

	g := fixtureGraph(t)
	b, err := basis.FundamentalCycles(g)
	require.NoError(t, err)
	cycles, err := cyclespace.Enumerate(b, g.NodeCount())
	require.NoError(t, err)

	r := render.NewReport("run-1", 42, g, b, cycles, true)
	require.Len(t, r.Cycles, 24)
	assert.Equal(t, 12, len(r.Graph.Edges))
	assert.Equal(t, 5, r.Graph.CyclomaticNumber, "E−N+1 counts the isolated node")

	walks := 0
	for _, c := range r.Cycles {
		if c.Basis {
			assert.Nil(t, c.Walk)
			continue
		}
		if c.Walk != nil {
			walks++
			assert.ElementsMatch(t, c.Nodes, c.Walk)
		}
	}
	assert.Positive(t, walks)

	var ybuf bytes.Buffer
	require.NoError(t, render.WriteYAML(&ybuf, r))
	assert.True(t, strings.HasPrefix(ybuf.String(), "run_id: run-1\n"))
	var fromYAML render.Report
	require.NoError(t, yaml.Unmarshal(ybuf.Bytes(), &fromYAML))
	assert.Equal(t, *r, fromYAML)

	var jbuf bytes.Buffer
	require.NoError(t, render.WriteJSON(&jbuf, r))
	var fromJSON render.Report
	require.NoError(t, json.Unmarshal(jbuf.Bytes(), &fromJSON))
	assert.Equal(t, r.Cycles, fromJSON.Cycles)
	assert.Contains(t, jbuf.String(), `"weight": 3`)
}
