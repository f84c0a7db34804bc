// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_simplex.go — FullSimplex(n), SphereBoundary(n), Shift(offset, con)
// and the shared facet helper.
//
// Contract:
//   • FullSimplex(n): n ≥ 1. The simplex on 0..n-1 with all 2ⁿ−1 faces. Contractible.
//   • SphereBoundary(n): n ≥ 2. Every proper face of the (n-1)-simplex: an
//     (n-2)-sphere, so β₀ = 1 and β_{n-2} = 1 (β₀ = 2 for n = 2).
//   • Shift(offset, con): offset ≥ 0; relabels every vertex v ↦ v+offset.
//     Used to place fixtures side by side in one BuildComplex call.
//
// Complexity:
//   • FullSimplex/SphereBoundary O(2ⁿ·n); keep n small.

package builder

import (
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// FullSimplex returns a Constructor for the full (n-1)-simplex.
func FullSimplex(n int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < MinSimplexVertices {
			return nil, paramError(MethodFullSimplex, "n", n, ErrTooFewVertices)
		}
		full := make([]int, n)
		for i := range full {
			full[i] = i
		}

		return fromFacets(MethodFullSimplex, [][]int{full})
	}
}

// SphereBoundary returns a Constructor for the boundary of the (n-1)-simplex.
func SphereBoundary(n int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < MinSphereVertices {
			return nil, paramError(MethodSphereBoundary, "n", n, ErrTooFewVertices)
		}
		facets := make([][]int, 0, n)
		core.Combinations(n, n-1, func(s core.Simplex) bool {
			facets = append(facets, append([]int(nil), s...))
			return true
		})

		return fromFacets(MethodSphereBoundary, facets)
	}
}

// Shift returns a Constructor that relabels con's complex by offset.
func Shift(offset int, con Constructor) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if offset < 0 {
			return nil, paramError(MethodShift, "offset", offset, ErrTooFewVertices)
		}
		if con == nil {
			return nil, fmt.Errorf("%s: nil constructor: %w", MethodShift, ErrConstructFailed)
		}
		base, err := con(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodShift, err)
		}
		if offset == 0 {
			return base, nil
		}

		shifted := base.Simplices()
		for _, s := range shifted {
			for i := range s {
				s[i] += offset
			}
		}
		c, err := core.FromSimplices(shifted)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodShift, err)
		}

		return c, nil
	}
}

// fromFacets expands facets and attaches the method tag to any error.
func fromFacets(method string, facets [][]int) (*core.Complex, error) {
	c, err := core.FromMaximalSimplices(facets)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return c, nil
}
