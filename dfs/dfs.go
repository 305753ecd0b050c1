// Package dfs implements an iterative depth-first search on core.Graph.
//
// The traversal keeps an explicit stack (github.com/emirpasic/gods arraystack)
// instead of recursing, so graph depth is bounded by heap memory rather than
// the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V·N) with the triangular core storage (Neighbors is O(N)), plus hooks and filters.
//   - Memory: O(V + E) for the stack (a node may be pushed once per incident edge) and result maps.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is outside 1..N.
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/cyclespace/core"
)

// frame is one pending stack entry: the node, who pushed it and at what depth.
type frame struct {
	node   int
	parent int
	depth  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
}

// DFS performs an iterative depth-first search on g from start.
// Neighbors are pushed in ascending order, so they are popped in descending order.
// A node already visited when popped is discarded; a node is visited at most once.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph and start node
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.NodeCount()
	if start < 1 || start > n {
		return nil, fmt.Errorf("dfs: start=%d, n=%d: %w", start, n, ErrStartVertexNotFound)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hints
	res := &DFSResult{
		Order:   make([]int, 0, n),
		Depth:   make(map[int]int, n),
		Parent:  make(map[int]int, n),
		Visited: make([]bool, n+1),
	}
	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	if err := walker.traverse(start); err != nil {
		return res, err
	}
	res.SkippedNeighbors = walker.opts.SkippedNeighbors

	return res, nil
}

// traverse drains the explicit stack seeded with start.
func (w *dfsWalker) traverse(start int) error {
	stack := arraystack.New()
	stack.Push(frame{node: start, depth: 0})

	for !stack.Empty() {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top, _ := stack.Pop()
		f := top.(frame)
		if w.res.Visited[f.node] {
			continue
		}

		// 2. Mark visited, record depth and tree parent
		w.res.Visited[f.node] = true
		w.res.Depth[f.node] = f.depth
		if f.node != start {
			w.res.Parent[f.node] = f.parent
		}
		w.res.Order = append(w.res.Order, f.node)

		// 3. Pre-order hook
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.node); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %d: %w", f.node, err)
			}
		}

		// 4. Depth limit: do not expand beyond MaxDepth
		if w.opts.MaxDepth >= 0 && f.depth >= w.opts.MaxDepth {
			continue
		}

		// 5. Push unvisited neighbors
		nbs, err := w.graph.Neighbors(f.node)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", f.node, err)
		}
		for _, nb := range nbs {
			if w.res.Visited[nb] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
				w.opts.SkippedNeighbors++
				continue
			}
			stack.Push(frame{node: nb, parent: f.node, depth: f.depth + 1})
		}
	}

	return nil
}
