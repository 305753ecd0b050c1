// Package cyclespace is the root of a small toolkit that synthesizes random
// connected graphs and explores their cycle space.
//
// What is inside:
//
//   - core:       weighted, undirected, simple Graph over nodes 1..N (triangular storage, RW locks)
//   - builder:    seeded random synthesis with minimum degree 2 and guaranteed connectivity
//   - dfs:        iterative depth-first traversal and reachability
//   - basis:      fundamental cycle basis from a spanning tree grown at node 1
//   - cyclespace: incidence vectors and closure enumeration, sequential or on a worker group
//   - matrix:     adjacency table and cycle×node incidence matrix with GF(2) rank
//   - render:     cycle lists, closed-walk recovery, YAML/JSON reports
//   - pipeline:   synthesize → basis → enumerate with structured logging
//   - config:     defaults, YAML file, .env and CYCLESPACE_* environment
//   - cmd/cyclespace: command-line entry point
//
// Quick start:
//
//	g, _ := builder.Synthesize(10, 0.1, builder.WithSeed(1))
//	b, _ := basis.FundamentalCycles(g)
//	cycles, _ := cyclespace.Enumerate(b, g.NodeCount())
//
// The closure is exponential in the cyclomatic number E − N + 1; bound it with
// cyclespace.WithMaxCycles or a context.
package cyclespace
