package dfs

import (
	"fmt"

	"github.com/katalvlaran/cyclespace/core"
)

// Unreachable runs a full iterative traversal from start and returns, ascending,
// every node id that was not visited. An empty result means g is connected.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound.
// Complexity: O(V·N) time, O(V + E) memory.
func Unreachable(g *core.Graph, start int) ([]int, error) {
	res, err := DFS(g, start)
	if err != nil {
		return nil, fmt.Errorf("dfs: Unreachable: %w", err)
	}

	var out []int
	for node := 1; node < len(res.Visited); node++ {
		if !res.Visited[node] {
			out = append(out, node)
		}
	}

	return out, nil
}

// Connected reports whether every node of g is reachable from node 1.
func Connected(g *core.Graph) (bool, error) {
	rest, err := Unreachable(g, 1)
	if err != nil {
		return false, err
	}

	return len(rest) == 0, nil
}
