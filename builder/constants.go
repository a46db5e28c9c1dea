// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
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
	// MethodCompleteBipartite is the canonical name for the CompleteBipartite constructor.
	MethodCompleteBipartite = "CompleteBipartite"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomRegular is the canonical name for the RandomRegular constructor.
	MethodRandomRegular = "RandomRegular"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a cycle of at least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinCompleteNodes allows K_1 (a single isolated node).
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a Grid.
// A 1×1 grid has no edges, but is considered valid.
const MinGridDim = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound for RandomSparse's p.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for RandomSparse's p.
const MaxProbability = 1.0

// maxStubMatchingAttempts bounds RandomRegular reshuffles.
const maxStubMatchingAttempts = 64
