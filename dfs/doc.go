// Package dfs implements depth-first traversal and reachability on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking,
//     driven by an explicit stack. Supports a pre-order hook, cancellation via
//     context.Context, depth limiting and neighbor filtering.
//   - Unreachable: the complement of the nodes a full traversal from a start
//     node visits. The graph builder uses it to enforce connectivity and tests
//     use it to assert it.
//   - Connected: Unreachable(g, 1) is empty.
//
// Why iterative:
//
//	Reachability is naturally recursive, but synthesized graphs may be large
//	and deep; the explicit stack keeps traversal depth off the call stack.
//
// Complexity:
//
//   - DFS / Unreachable: Time O(V·N) on triangular storage, Memory O(V+E)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start node outside 1..N
//   - context.Canceled        traversal canceled via context
//   - hook errors             propagated from OnVisit
package dfs
