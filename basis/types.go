// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: sentinel errors and the node coloring of the spanning-tree walk.

package basis

import "errors"

// Sentinel errors for basis construction and verification.
var (
	// ErrGraphNil indicates a nil *core.Graph argument.
	ErrGraphNil = errors.New("basis: graph is nil")

	// ErrNotCycle indicates a node sequence that is not a simple closed walk of g.
	ErrNotCycle = errors.New("basis: not a cycle")

	// ErrBasisSize indicates a basis whose length differs from E − N + 1.
	ErrBasisSize = errors.New("basis: wrong basis size")
)

// Root is the node every spanning tree is grown from.
const Root = 1

// color tracks a node through the walk: unvisited → frontier → finished.
type color uint8

const (
	unvisited color = iota
	frontier
	finished
)
