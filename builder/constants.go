// Package builder defines shared constants used by the graph synthesizer, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildGraph is the canonical name for the BuildGraph orchestrator.
	MethodBuildGraph = "BuildGraph"
	// MethodSynthesize is the canonical name for the Synthesize entry point.
	MethodSynthesize = "Synthesize"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodMinDegree is the canonical name for the MinDegree constructor.
	MethodMinDegree = "MinDegree"
	// MethodConnect is the canonical name for the Connect constructor.
	MethodConnect = "Connect"
)

//-----------------------------------------------------------------------------
// Synthesis Defaults
//-----------------------------------------------------------------------------

// RootNode is the node from which connectivity is enforced and checked.
const RootNode = 1

// MinSynthDegree is the minimum degree every synthesized node reaches.
const MinSynthDegree = 2

// MinSynthNodes is the smallest order for which minimum degree 2 is reachable
// in a simple graph (K_3).
const MinSynthNodes = MinSynthDegree + 1

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultMinWeight and DefaultMaxWeight bound the default uniform integer weights.
const (
	DefaultMinWeight int64 = 1
	DefaultMaxWeight int64 = 10
)

// MaxProbability is the inclusive upper bound of a density; the lower bound 0 is exclusive.
const MaxProbability = 1.0
