// SPDX-License-Identifier: MIT

package cyclespace

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cyclespace/core"
)

// Sentinel errors for incidence vectors and enumeration.
var (
	// ErrNodeOutOfRange indicates a node id outside 1..N; it is a core.ErrInvalidParameter.
	ErrNodeOutOfRange = fmt.Errorf("%w: node out of range", core.ErrInvalidParameter)

	// ErrBadLength indicates a vector length below 1; it is a core.ErrInvalidParameter.
	ErrBadLength = fmt.Errorf("%w: vector length must be positive", core.ErrInvalidParameter)

	// ErrNotCycle indicates a basis cycle with fewer than MinCycleNodes distinct nodes.
	ErrNotCycle = errors.New("cyclespace: basis entry is not a cycle")

	// ErrLengthMismatch indicates an operation on vectors of different lengths.
	ErrLengthMismatch = errors.New("cyclespace: vector length mismatch")

	// ErrCycleLimit indicates that enumeration stopped at the WithMaxCycles bound.
	ErrCycleLimit = errors.New("cyclespace: cycle limit reached")
)
