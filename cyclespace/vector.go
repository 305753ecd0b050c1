// SPDX-License-Identifier: MIT
//
// File: vector.go
// Role: IncidenceVector, a fixed-length node-membership bit set.

package cyclespace

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/soniakeys/bits"
)

// IncidenceVector marks which of the nodes 1..N belong to a cycle: bit i is set
// iff node i+1 is a member. Vectors are values; operations never mutate their
// receiver.
type IncidenceVector struct {
	b bits.Bits
}

// NewIncidenceVector sets the bit of every listed node in a vector of length n.
// Duplicated nodes are accepted and set once.
//
// Errors: ErrBadLength if n < 1, ErrNodeOutOfRange for a node outside 1..n.
// Complexity: O(n/64 + len(nodes)).
func NewIncidenceVector(nodes []int, n int) (IncidenceVector, error) {
	if n < 1 {
		return IncidenceVector{}, fmt.Errorf("cyclespace: NewIncidenceVector: n=%d: %w", n, ErrBadLength)
	}

	b := bits.New(n)
	for _, node := range nodes {
		if node < 1 || node > n {
			return IncidenceVector{}, fmt.Errorf("cyclespace: NewIncidenceVector: node=%d, n=%d: %w", node, n, ErrNodeOutOfRange)
		}
		b.SetBit(node-1, 1)
	}

	return IncidenceVector{b: b}, nil
}

// Len returns N, the number of positions.
func (v IncidenceVector) Len() int {
	return v.b.Num
}

// Has reports whether node is a member. Nodes outside 1..N are never members.
func (v IncidenceVector) Has(node int) bool {
	if node < 1 || node > v.b.Num {
		return false
	}

	return v.b.Bit(node-1) == 1
}

// Nodes returns the member nodes ascending.
func (v IncidenceVector) Nodes() []int {
	pos := v.b.Slice()
	out := make([]int, len(pos))
	for i, p := range pos {
		out[i] = p + 1
	}

	return out
}

// Count returns the number of member nodes.
func (v IncidenceVector) Count() int {
	return v.b.OnesCount()
}

// IsZero reports whether no node is a member.
func (v IncidenceVector) IsZero() bool {
	return v.b.AllZeros()
}

// Overlaps reports whether v and o share at least one node.
// Vectors of different lengths never overlap.
func (v IncidenceVector) Overlaps(o IncidenceVector) bool {
	if v.b.Num != o.b.Num {
		return false
	}

	return v.overlaps(o)
}

func (v IncidenceVector) overlaps(o IncidenceVector) bool {
	for i, w := range v.b.Bits {
		if w&o.b.Bits[i] != 0 {
			return true
		}
	}

	return false
}

// Xor returns the symmetric difference of the member sets.
//
// Errors: ErrLengthMismatch if the lengths differ.
func (v IncidenceVector) Xor(o IncidenceVector) (IncidenceVector, error) {
	if v.b.Num != o.b.Num {
		return IncidenceVector{}, fmt.Errorf("cyclespace: Xor: %d vs %d: %w", v.b.Num, o.b.Num, ErrLengthMismatch)
	}

	return v.xor(o), nil
}

func (v IncidenceVector) xor(o IncidenceVector) IncidenceVector {
	z := bits.New(v.b.Num)
	z.Xor(v.b, o.b)

	return IncidenceVector{b: z}
}

// Equal reports structural equality: same length and same members.
func (v IncidenceVector) Equal(o IncidenceVector) bool {
	return v.b.Num == o.b.Num && v.b.Equal(o.b)
}

// Key returns a comparable identity: equal vectors yield equal keys and
// vectors of the same length with different members yield different keys.
// The key is the packed words in little-endian byte order.
func (v IncidenceVector) Key() string {
	buf := make([]byte, 0, 8*len(v.b.Bits))
	for _, w := range v.b.Bits {
		buf = binary.LittleEndian.AppendUint64(buf, w)
	}

	return string(buf)
}

// String renders the vector as N characters, position 1 first, e.g. "1010100010".
func (v IncidenceVector) String() string {
	var sb strings.Builder
	sb.Grow(v.b.Num)
	for i := 0; i < v.b.Num; i++ {
		if v.b.Bit(i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
