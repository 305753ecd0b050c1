// SPDX-License-Identifier: MIT
//
// File: enumerate.go
// Role: closure of a cycle basis under node-set symmetric difference.

package cyclespace

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// MinCycleNodes is the smallest member count a combination must have to be kept.
const MinCycleNodes = 3

// Cycle is one element of the enumerated cycle space.
type Cycle struct {
	// Vector is the node-incidence vector.
	Vector IncidenceVector
	// Nodes is the closed-walk order for basis cycles and the ascending member
	// set for derived cycles.
	Nodes []int
	// Basis reports whether the cycle came from the input basis.
	Basis bool
}

// pair indexes two known cycles, i < j.
type pair struct{ i, j int }

// enumerator owns the working set of one Enumerate call.
type enumerator struct {
	opts  options
	n     int
	known []Cycle
	index map[string]int
	queue *linkedlistqueue.Queue
}

// Enumerate returns every distinct cycle reachable from basis by repeated
// combination, basis cycles first and then derived cycles in discovery order.
//
// Two known vectors A and B are combined when they share a node; C = A ⊕ B is
// kept if it has at least MinCycleNodes members and is new, and C is then
// paired with every vector known before it. Pairs are taken from a FIFO
// worklist, and each unordered pair is enqueued exactly once because a new
// vector is only paired with earlier ones.
//
// Combination works on node membership, not edge membership. On graphs where
// two cycles meet in isolated nodes, or share a node but no edge, the result
// may contain node sets that are not cycles of the graph and may miss cycles
// that edge-space XOR would find.
//
// A basis cycle whose node set equals an earlier one is dropped.
//
// Errors:
//   - ErrBadLength if n < 1, ErrNodeOutOfRange for a basis node outside 1..n.
//   - ErrNotCycle for a basis cycle with fewer than MinCycleNodes distinct nodes.
//   - ErrCycleLimit under WithMaxCycles; the cycles found so far are returned.
//   - ctx.Err() under WithContext; the cycles found so far are returned.
//
// Complexity: O(K²·N/64) time and O(K²) worklist memory for K resulting cycles;
// K is up to 2^(E−N+1).
func Enumerate(basis [][]int, n int, opts ...Option) ([]Cycle, error) {
	if n < 1 {
		return nil, fmt.Errorf("cyclespace: Enumerate: n=%d: %w", n, ErrBadLength)
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	e := &enumerator{
		opts:  o,
		n:     n,
		index: make(map[string]int, len(basis)),
		queue: linkedlistqueue.New(),
	}
	if err := e.seed(basis); err != nil {
		return e.known, err
	}

	var err error
	if o.workers > 1 {
		err = e.runParallel()
	} else {
		err = e.runSequential()
	}

	return e.known, err
}

// seed records the basis and enqueues every unordered pair of it.
func (e *enumerator) seed(basis [][]int) error {
	for i, nodes := range basis {
		vec, err := NewIncidenceVector(nodes, e.n)
		if err != nil {
			return fmt.Errorf("cyclespace: Enumerate: basis cycle %d: %w", i, err)
		}
		if vec.Count() < MinCycleNodes {
			return fmt.Errorf("cyclespace: Enumerate: basis cycle %d has %d nodes: %w", i, vec.Count(), ErrNotCycle)
		}
		if _, dup := e.index[vec.Key()]; dup {
			continue
		}
		walk := make([]int, len(nodes))
		copy(walk, nodes)
		if err = e.record(Cycle{Vector: vec, Nodes: walk, Basis: true}, false); err != nil {
			return err
		}
	}

	var i, j int
	for j = 1; j < len(e.known); j++ {
		for i = 0; i < j; i++ {
			e.queue.Enqueue(pair{i: i, j: j})
		}
	}

	return nil
}

// record appends c as a new known cycle, optionally pairing it with every
// earlier one.
func (e *enumerator) record(c Cycle, pairUp bool) error {
	if e.opts.maxCycles > 0 && len(e.known) >= e.opts.maxCycles {
		return fmt.Errorf("cyclespace: Enumerate: limit %d: %w", e.opts.maxCycles, ErrCycleLimit)
	}

	k := len(e.known)
	e.known = append(e.known, c)
	e.index[c.Vector.Key()] = k
	if pairUp {
		for x := 0; x < k; x++ {
			e.queue.Enqueue(pair{i: x, j: k})
		}
	}

	return nil
}

// combine evaluates one pair. ok is false when the pair yields nothing.
func (e *enumerator) combine(p pair) (IncidenceVector, bool) {
	a, b := e.known[p.i].Vector, e.known[p.j].Vector
	if !a.overlaps(b) {
		return IncidenceVector{}, false
	}
	c := a.xor(b)
	if c.Count() < MinCycleNodes {
		return IncidenceVector{}, false
	}

	return c, true
}

// merge records c if it is new.
func (e *enumerator) merge(c IncidenceVector) error {
	if _, ok := e.index[c.Key()]; ok {
		return nil
	}

	return e.record(Cycle{Vector: c, Nodes: c.Nodes()}, true)
}

// cancelCheckEvery is how many pairs the sequential loop processes between
// context checks.
const cancelCheckEvery = 1024

func (e *enumerator) runSequential() error {
	for steps := 0; !e.queue.Empty(); steps++ {
		if steps%cancelCheckEvery == 0 {
			if err := e.opts.ctx.Err(); err != nil {
				return err
			}
		}

		head, _ := e.queue.Dequeue()
		c, ok := e.combine(head.(pair))
		if !ok {
			continue
		}
		if err := e.merge(c); err != nil {
			return err
		}
	}

	return nil
}
