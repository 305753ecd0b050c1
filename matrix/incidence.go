// SPDX-License-Identifier: MIT
//
// File: incidence.go
// Role: cycle×node incidence matrix over GF(2) and its rank.

package matrix

import (
	"fmt"
	"strings"

	"github.com/soniakeys/bits"
)

// IncidenceMatrix has one row per cycle and one column per node 1..N; entry
// (r, v) is 1 iff node v is on cycle r.
type IncidenceMatrix struct {
	n    int
	rows []bits.Bits
}

// NewIncidenceMatrix builds the matrix for cycles over nodes 1..n.
//
// Errors: ErrInvalidDimensions if n < 1, ErrIndexOutOfBounds for a node outside 1..n.
// Complexity: O(Σ|cycle| + len(cycles)·n/64).
func NewIncidenceMatrix(cycles [][]int, n int) (*IncidenceMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("matrix: NewIncidenceMatrix: n=%d: %w", n, ErrInvalidDimensions)
	}

	rows := make([]bits.Bits, len(cycles))
	for r, c := range cycles {
		rows[r] = bits.New(n)
		for _, node := range c {
			if node < 1 || node > n {
				return nil, fmt.Errorf("matrix: NewIncidenceMatrix: cycle %d node %d: %w", r, node, ErrIndexOutOfBounds)
			}
			rows[r].SetBit(node-1, 1)
		}
	}

	return &IncidenceMatrix{n: n, rows: rows}, nil
}

// Rows returns the number of cycles.
func (m *IncidenceMatrix) Rows() int { return len(m.rows) }

// Cols returns the number of nodes.
func (m *IncidenceMatrix) Cols() int { return m.n }

// At reports entry (row, node) as 0 or 1; row is zero-based, node is 1..N.
func (m *IncidenceMatrix) At(row, node int) (int, error) {
	if row < 0 || row >= len(m.rows) || node < 1 || node > m.n {
		return 0, fmt.Errorf("matrix: IncidenceMatrix.At(%d,%d): %w", row, node, ErrIndexOutOfBounds)
	}

	return m.rows[row].Bit(node - 1), nil
}

// Rank returns the rank over GF(2) by Gaussian elimination on copies of the rows.
// Complexity: O(R·N·N/64).
func (m *IncidenceMatrix) Rank() int {
	work := make([]bits.Bits, len(m.rows))
	for i, r := range m.rows {
		work[i] = bits.New(m.n)
		work[i].Xor(work[i], r)
	}

	rank := 0
	for col := 0; col < m.n && rank < len(work); col++ {
		pivot := -1
		for i := rank; i < len(work); i++ {
			if work[i].Bit(col) == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		work[rank], work[pivot] = work[pivot], work[rank]
		for i := rank + 1; i < len(work); i++ {
			if work[i].Bit(col) == 1 {
				work[i].Xor(work[i], work[rank])
			}
		}
		rank++
	}

	return rank
}

// String renders one row per cycle as N characters of 0/1.
func (m *IncidenceMatrix) String() string {
	var sb strings.Builder
	for _, r := range m.rows {
		for i := 0; i < m.n; i++ {
			sb.WriteByte(byte('0' + r.Bit(i)))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
