// Package builder provides "functional-options"-style constructors for
// simplicial complexes: the two stochastic generators studied by the sampling
// driver (bottom-up growth and top-down erosion), a random flag complex, and
// deterministic fixtures with known homology used as test oracles.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:  a function that mutates builderConfig before use.
//     – builderConfig:  holds the RNG (nil unless WithSeed/WithRand is given).
//   - Orchestration:
//     – BuildComplex(opts, cons...): runs constructors in order and returns the
//     union of their complexes.
//     – RandomBottomUp / RandomTopDown: one-call wrappers taking a *rand.Rand.
//   - Stochastic constructors: BottomUp, TopDown, RandomFlag.
//   - Fixtures: FullSimplex, SphereBoundary, Cycle, Path, Star, Wheel, Complete,
//     CompleteBipartite, PlatonicSurface, Torus, ProjectivePlane.
//   - Wrappers: Shift (relabel for disjoint unions), Cone (join with an apex).
//   - Shared constants: MinCycleVertices, MinPathVertices, …, Method* tags.
//
// Guarantees:
//
//   - Every returned complex is downward closed.
//   - Reproducibility: the same constructor, parameters and seed produce the
//     same complex. No package-level random state is used, so independent
//     builds may run concurrently with separate RNGs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors: parameter failures are *core.InvalidParameterError
//     values whose cause is a builder sentinel that itself wraps
//     core.ErrInvalidParameter.
//
// Bottom-up and top-down generators enumerate candidates combinatorially;
// they are intended for tens of vertices, not hundreds.
package builder
