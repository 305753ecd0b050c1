// Package basis builds a fundamental cycle basis of an undirected graph.
//
// A spanning tree is grown from node 1 with an explicit stack. Every non-tree
// edge met while the tree is still growing closes exactly one cycle through
// the tree, and the set of those cycles spans the cycle space. For a connected
// graph with E edges and N nodes the basis has E − N + 1 members.
//
// Nodes move through three colors:
//
//	unvisited → frontier (has a tree parent, waiting on the stack) → finished (expanded)
//
// A neighbor already finished is ignored, so every back edge is recorded once.
//
// Cycles are returned as node sequences in walk order; Verify and VerifyBasis
// check them against the graph.
package basis
