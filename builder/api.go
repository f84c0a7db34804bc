// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildComplex(opts, cons...). Resolves cfg, runs cons in
//     order and unions their simplex sets into one core.Complex.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical complexes.
//   - Safety: never panic; constructors return sentinel errors.
//
// Hints:
//   - Compose constructors to assemble fixtures; relabel with Shift to keep
//     pieces disjoint (Cycle(3) and Shift(3, Cycle(4)) give two loops).
//   - Use WithSeed(...) to freeze stochastic paths (BottomUp, TopDown, RandomFlag).
//   - Constructors sharing one RNG consume it in call order.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Constructor produces one complex using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Label vertices 0..n-1 unless documented otherwise.
//   - Preserve determinism for the same config and call order.
type Constructor func(cfg builderConfig) (*core.Complex, error)

// BuildComplex resolves the builder configuration from opts and applies all
// constructors in order, returning the union of their simplex sets. With no
// constructors the result is the empty complex.
//
// Any constructor error is wrapped with the context "BuildComplex: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Σ cost of each constructor plus O(S) for the union.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor errors (errors.Is against builder sentinels and core.ErrInvalidParameter).
func BuildComplex(opts []BuilderOption, cons ...Constructor) (*core.Complex, error) {
	cfg := newBuilderConfig(opts...)

	parts := make([]*core.Complex, 0, len(cons))
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", MethodBuildComplex, i, ErrConstructFailed)
		}
		c, err := fn(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBuildComplex, err)
		}
		parts = append(parts, c)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}

	return core.Union(parts...), nil
}

// RandomBottomUp is a convenience wrapper for BottomUp with an explicit RNG.
// A nil rng is accepted as long as every probability is 0 or 1.
func RandomBottomUp(rng *rand.Rand, n int, probs map[int]float64) (*core.Complex, error) {
	return BuildComplex(randOpts(rng), BottomUp(n, probs))
}

// RandomTopDown is a convenience wrapper for TopDown with an explicit RNG.
// A nil rng is accepted when pKeep is 0 or 1.
func RandomTopDown(rng *rand.Rand, n int, pKeep float64) (*core.Complex, error) {
	return BuildComplex(randOpts(rng), TopDown(n, pKeep))
}

// randOpts turns a possibly nil RNG into options without tripping the
// WithRand(nil) panic.
func randOpts(rng *rand.Rand) []BuilderOption {
	if rng == nil {
		return nil
	}

	return []BuilderOption{WithRand(rng)}
}

// =============================================================================
// Factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Stochastic:
//   BottomUp(n, probs)        growth by dimension, boundary-gated draws.
//   TopDown(n, pKeep)         erosion of the full simplex, dimension by dimension.
//   RandomFlag(n, p, maxDim)  clique complex of an Erdős–Rényi graph.
//
// Deterministic fixtures:
//   FullSimplex(n)            the (n-1)-simplex and all faces; contractible.
//   SphereBoundary(n)         boundary of the (n-1)-simplex; an (n-2)-sphere.
//   Cycle(n), Path(n)         1-dimensional loop / segment.
//   Star(n), Wheel(n)         tree with one hub / triangulated disk.
//   Complete(n)               1-skeleton of K_n.
//   CompleteBipartite(a, b)   1-skeleton of K_{a,b}.
//   PlatonicSurface(name)     triangulated boundary of a Platonic solid (a 2-sphere).
//   Torus(), ProjectivePlane() minimal triangulations (7 and 6 vertices).
//
// Wrappers:
//   Shift(offset, con)        relabel vertices v ↦ v+offset.
//   Cone(con)                 join with a new apex vertex.
