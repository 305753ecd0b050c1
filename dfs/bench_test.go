package dfs_test

import (
	"testing"

	"github.com/katalvlaran/cyclespace/core"
	"github.com/katalvlaran/cyclespace/dfs"
)

// BenchmarkUnreachable_Chain2000 measures a full traversal of a 2,000-node path.
// The explicit stack keeps the 2,000-deep walk off the goroutine stack.
func BenchmarkUnreachable_Chain2000(b *testing.B) {
	const n = 2000
	g, _ := core.NewGraph(n)
	for i := 1; i < n; i++ {
		_ = g.AddEdge(i, i+1, 1)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.Unreachable(g, 1)
	}
}
