// Package builder synthesizes the random weighted graphs that the cycle-space
// pipeline consumes. It follows a "functional-options" style: a BuilderOption
// mutates a private builderConfig, and Constructors mutate a core.Graph in order.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG and the weight function.
//     – WithSeed, WithRand: the RNG source; stochastic constructors require one.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   uniform integers in [DefaultMinWeight, DefaultMaxWeight].
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integers in [min, max].
//   - Constructors:
//     – RandomSparse(p):   G(n,p) edge sampling, one Float64 draw per pair.
//     – MinDegree(k):      joins every node of degree < k to random non-neighbors.
//     – Connect(root):     bridges every unreachable component into root's component.
//   - Orchestration:
//     – BuildGraph(n, opts, cons...): runs constructors in order.
//     – Synthesize(n, density, opts...): RandomSparse, MinDegree(2), Connect(1).
//
// Guarantees of Synthesize:
//
//   - The graph is simple: no loops, no duplicate edges.
//   - Every node has degree ≥ 2 and every node is reachable from node 1.
//   - The same (n, density, seed, weight function) always yields the same graph.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the method name; branch
// with errors.Is. Option constructors panic on meaningless input, constructors never do.
package builder
