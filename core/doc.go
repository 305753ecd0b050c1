// Package core provides the weighted, undirected, simple Graph that every other
// cyclespace package consumes.
//
// The Graph G = (V,E) has:
//
//   - Nodes fixed at construction: the contiguous integers 1..N (N ≥ 2).
//   - Undirected edges {u,v}, u ≠ v, with a positive int64 weight.
//   - At most one edge per unordered pair (no multigraph).
//   - Growth only: edges are inserted, never removed, and nodes are never added.
//
// Storage:
//
// Each edge is stored once in a packed upper triangle keyed by the canonical
// pair (min(u,v), max(u,v)), the layout of a node-node adjacency matrix whose
// rows are 1..N-1 and columns 2..N. Every lookup canonicalizes first, and
// Neighbors scans both the column and the row of a node so that adjacency
// stays symmetric even though storage is not.
//
// Core Methods:
//
//	NewGraph(n int) (*Graph, error)            // O(N²) space
//	AddEdge(u, v int, w int64) error           // O(1)
//	CanAddEdge(u, v int) bool                  // O(1)
//	HasEdge(u, v int) bool                     // O(1)
//	Weight(u, v int) (int64, error)            // O(1)
//	Neighbors(node int) ([]int, error)         // O(N), ascending
//	Degree(node int) (int, error)              // O(N)
//	NodeCount() int, EdgeCount() int           // O(1)
//	Edges() []Edge                             // O(N²), sorted by (From, To)
//	CyclomaticNumber() int                     // E − N + 1
//	Clone() *Graph, Stats() *GraphStats        // O(N²)
//
// Errors:
//
//	ErrInvalidParameter – bad node count or edge argument (parent of the next three)
//	ErrLoopNotAllowed   – u == v
//	ErrVertexNotFound   – node id outside 1..N
//	ErrBadWeight        – weight ≤ 0
//	ErrDuplicateEdge    – the canonical pair already holds an edge
//
// All methods are safe for concurrent use; a single RWMutex guards storage.
package core
