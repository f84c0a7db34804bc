// Package builder defines shared constants used by complex builders, ensuring
// consistent minima and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodBuildComplex is the canonical name for the BuildComplex orchestrator.
	MethodBuildComplex = "BuildComplex"
	// MethodBottomUp is the canonical name for the BottomUp generator.
	MethodBottomUp = "BottomUp"
	// MethodTopDown is the canonical name for the TopDown generator.
	MethodTopDown = "TopDown"
	// MethodRandomFlag is the canonical name for the RandomFlag generator.
	MethodRandomFlag = "RandomFlag"
	// MethodFullSimplex is the canonical name for the FullSimplex constructor.
	MethodFullSimplex = "FullSimplex"
	// MethodSphereBoundary is the canonical name for the SphereBoundary constructor.
	MethodSphereBoundary = "SphereBoundary"
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
	// MethodPlatonicSurface is the canonical name for the PlatonicSurface constructor.
	MethodPlatonicSurface = "PlatonicSurface"
	// MethodShift is the canonical name for the Shift wrapper.
	MethodShift = "Shift"
	// MethodCone is the canonical name for the Cone wrapper.
	MethodCone = "Cone"
)

//-----------------------------------------------------------------------------
// Minimum Vertex Counts
//-----------------------------------------------------------------------------

// MinCycleVertices is the smallest cycle that is a simplicial complex
// (two vertices cannot bound a loop without a repeated edge).
const MinCycleVertices = 3

// MinPathVertices is the smallest path; a single vertex is a path of length 0.
const MinPathVertices = 1

// MinStarVertices is one center plus at least one leaf.
const MinStarVertices = 2

// MinWheelVertices is a hub plus a rim cycle of at least 3 vertices.
const MinWheelVertices = 4

// MinSimplexVertices is the smallest full simplex (a single vertex).
const MinSimplexVertices = 1

// MinSphereVertices is the smallest sphere boundary: two points (S⁰).
const MinSphereVertices = 2

// MinPartitionSize is the smallest side of a complete bipartite graph.
const MinPartitionSize = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for any probability parameter, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for any probability parameter, inclusive.
const MaxProbability = 1.0
