// SPDX-License-Identifier: MIT
//
// File: adjacency.go
// Role: node-node adjacency matrix of a core.Graph and its labeled text table.

package matrix

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/cyclespace/core"
)

// cellWidth is the right-aligned width of every table cell; cells are
// separated by one space.
const cellWidth = 4

// AdjacencyMatrix is a dense symmetric snapshot of edge weights; zero means
// "no edge". Rows and columns are indexed by node id 1..N.
type AdjacencyMatrix struct {
	n int
	d *Dense
}

// NewAdjacencyMatrix snapshots the weights of g.
//
// Errors: ErrGraphNil.
// Complexity: O(N²).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	d, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("matrix: NewAdjacencyMatrix: %w", err)
	}
	for _, e := range g.Edges() {
		// Indices come from the graph itself and are always in range.
		_ = d.Set(e.From-1, e.To-1, e.Weight)
		_ = d.Set(e.To-1, e.From-1, e.Weight)
	}

	return &AdjacencyMatrix{n: n, d: d}, nil
}

// N returns the number of nodes.
func (m *AdjacencyMatrix) N() int { return m.n }

// At returns the weight of {u, v}, or 0 when there is no edge.
//
// Errors: ErrIndexOutOfBounds if u or v lies outside 1..N.
func (m *AdjacencyMatrix) At(u, v int) (int64, error) {
	w, err := m.d.At(u-1, v-1)
	if err != nil {
		return 0, fmt.Errorf("matrix: AdjacencyMatrix.At(%d,%d): %w", u, v, err)
	}

	return w, nil
}

// Dense returns a copy of the underlying zero-based matrix.
func (m *AdjacencyMatrix) Dense() *Dense { return m.d.Clone() }

// Format writes the upper triangle as a labeled table: a title line, the
// column labels 2..N, a rule, and one row per node 1..N−1 holding the weight
// to every column node (0 on and below the diagonal or without an edge).
func (m *AdjacencyMatrix) Format(w io.Writer) error {
	var sb strings.Builder
	cell := func(s any) {
		fmt.Fprintf(&sb, "%*v ", cellWidth, s)
	}

	fmt.Fprintf(&sb, "Graph with %d vertices\n", m.n)

	cell(" ")
	cell(" ")
	for j := 2; j <= m.n; j++ {
		cell(j)
	}
	sb.WriteString("\n")

	cell(" ")
	cell(" ")
	for j := 2; j <= m.n; j++ {
		cell("--")
	}
	sb.WriteString("\n")

	for i := 1; i < m.n; i++ {
		cell(i)
		cell("|")
		for j := 2; j <= m.n; j++ {
			var v int64
			if j > i {
				v = m.d.data[(i-1)*m.n+(j-1)]
			}
			cell(v)
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// String returns the Format table.
func (m *AdjacencyMatrix) String() string {
	var sb strings.Builder
	_ = m.Format(&sb)

	return sb.String()
}
