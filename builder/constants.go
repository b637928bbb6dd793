// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodWheel is the canonical name for the Wheel constructor.
	MethodWheel = "Wheel"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a valid ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: center plus one leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: C_3 plus the hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size for K_n; K_1 has no edges.
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomNodes is the smallest vertex count of the random constructors.
const MinRandomNodes = 1

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the weight of every edge when no WeightFn is configured.
const DefaultEdgeWeight float64 = 1

// MinProbability is the lower bound for p in RandomSparse, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p in RandomSparse, inclusive.
const MaxProbability = 1.0
