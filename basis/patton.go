// SPDX-License-Identifier: MIT
//
// File: patton.go
// Role: fundamental cycle basis by spanning-tree growth (Paton, CACM 1969).

package basis

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/cyclespace/core"
)

// FundamentalCycles grows a spanning tree from Root with an explicit stack and
// returns one cycle per back edge, in discovery order.
//
// Steps:
//  1. Root is its own parent and starts finished; its neighbors are seeded
//     with parent Root and pushed ascending.
//  2. Pop u; for each neighbor w ascending: finished → skip; has a parent →
//     back edge (u, w), extract a cycle; otherwise parent(w) = u and push w.
//  3. u becomes finished.
//
// Each cycle is a node sequence of a closed walk: the tree path from w up to the
// first common ancestor of u and w, then the tree path down to u. The edge
// (u, w) closes it.
//
// Only the component of Root is walked; on a connected graph the result has
// exactly E − N + 1 cycles.
//
// Errors: ErrGraphNil.
// Complexity: O(V·N + C·V) time for C cycles, O(V) extra memory.
func FundamentalCycles(g *core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	b := &builder{
		graph:  g,
		parent: make([]int, n+1),
		colors: make([]color, n+1),
		onPath: make([]int, n+1),
	}

	return b.run()
}

// builder holds the walk state for one FundamentalCycles call.
type builder struct {
	graph  *core.Graph
	parent []int   // 0 = no parent yet
	colors []color // indexed by node id
	onPath []int   // stamp marking nodes of the current P_w
	stamp  int
	cycles [][]int
}

func (b *builder) run() ([][]int, error) {
	stack := arraystack.New()

	b.parent[Root] = Root
	b.colors[Root] = finished
	seeds, err := b.graph.Neighbors(Root)
	if err != nil {
		return nil, fmt.Errorf("basis: Neighbors(%d): %w", Root, err)
	}
	for _, w := range seeds {
		b.parent[w] = Root
		b.colors[w] = frontier
		stack.Push(w)
	}

	for !stack.Empty() {
		top, _ := stack.Pop()
		u := top.(int)

		nbs, err := b.graph.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("basis: Neighbors(%d): %w", u, err)
		}
		for _, w := range nbs {
			switch {
			case b.colors[w] == finished:
			case b.parent[w] != 0:
				b.cycles = append(b.cycles, b.extract(u, w))
			default:
				b.parent[w] = u
				b.colors[w] = frontier
				stack.Push(w)
			}
		}
		b.colors[u] = finished
	}

	return b.cycles, nil
}

// extract returns P_w cut at the first common ancestor, followed by P_u reversed.
func (b *builder) extract(u, w int) []int {
	b.stamp++

	// P_w: w, parent(w), ..., Root.
	var pw []int
	for x := w; ; x = b.parent[x] {
		pw = append(pw, x)
		b.onPath[x] = b.stamp
		if x == Root {
			break
		}
	}

	// P_u: u upward, stopping at the first node already on P_w.
	var pu []int
	x := u
	for b.onPath[x] != b.stamp {
		pu = append(pu, x)
		x = b.parent[x]
	}
	ancestor := x

	cycle := make([]int, 0, len(pw)+len(pu))
	for _, y := range pw {
		cycle = append(cycle, y)
		if y == ancestor {
			break
		}
	}
	for i := len(pu) - 1; i >= 0; i-- {
		cycle = append(cycle, pu[i])
	}

	return cycle
}
