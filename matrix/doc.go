// Package matrix offers matrix views of graphs and cycle sets for inspection.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 matrix with bounds-checked At/Set.
//   - AdjacencyMatrix with O(1) weight lookups by node id and the labeled
//     upper-triangle table used in reports ("Graph with N vertices").
//   - IncidenceMatrix for cycle×node membership, with Rank over GF(2).
//
// Matrices are best for small graphs where O(N²) memory is acceptable.
package matrix
