// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cyclespace/core"
)

// TestConcurrentAddEdge races many writers on the same pairs; exactly one insert per pair wins.
func TestConcurrentAddEdge(t *testing.T) {
	g, err := core.NewGraph(NConcurrentNodes)
	require.NoError(t, err)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		wins int
		errs []error
	)
	// Two goroutines per spoke 1—v, with opposite argument order.
	for v := 2; v <= NConcurrentNodes; v++ {
		wg.Add(2)
		go func(a, b int) {
			defer wg.Done()
			err := g.AddEdge(a, b, Weight1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else {
				errs = append(errs, err)
			}
		}(1, v)
		go func(a, b int) {
			defer wg.Done()
			err := g.AddEdge(a, b, Weight1)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else {
				errs = append(errs, err)
			}
		}(v, 1)
	}
	wg.Wait()

	require.Equal(t, NConcurrentNodes-1, wins)
	require.Equal(t, NConcurrentNodes-1, g.EdgeCount())
	for _, err := range errs {
		require.True(t, errors.Is(err, core.ErrDuplicateEdge), "unexpected error: %v", err)
	}
	deg, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, NConcurrentNodes-1, deg)
}

// TestConcurrentNeighborsAndClone validates concurrent reads and clones do not race.
func TestConcurrentNeighborsAndClone(t *testing.T) {
	g := mustGraph(t, 8, pattonFixture)

	var wg sync.WaitGroup
	results := make(chan int, NReaders)
	wg.Add(NReaders + NCloners)
	for i := 0; i < NReaders; i++ {
		go func() {
			defer wg.Done()
			nbs, err := g.Neighbors(3)
			if err == nil {
				results <- len(nbs)
			}
		}()
	}
	for i := 0; i < NCloners; i++ {
		go func() {
			defer wg.Done()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for n := range results {
		require.Equal(t, 4, n)
		count++
	}
	require.Equal(t, NReaders, count)
}
