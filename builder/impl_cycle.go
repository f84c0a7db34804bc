// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_cycle.go — implementation of Cycle(n) and Path(n).
//
// Contract:
//   • Cycle: n ≥ 3 (else ErrTooFewVertices). Vertices 0..n-1, edges {i, (i+1) mod n}.
//     Homology: β₀ = 1, β₁ = 1.
//   • Path: n ≥ 1 (else ErrTooFewVertices). Vertices 0..n-1, edges {i-1, i}.
//     Homology: β₀ = 1 (contractible).
//
// Complexity:
//   • Time: O(n) simplices.

package builder

import (
	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Cycle returns a Constructor that builds the n-vertex loop C_n.
func Cycle(n int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < MinCycleVertices {
			return nil, paramError(MethodCycle, "n", n, ErrTooFewVertices)
		}
		facets := make([][]int, 0, n)
		for i := 0; i < n; i++ {
			facets = append(facets, []int{i, (i + 1) % n})
		}

		return fromFacets(MethodCycle, facets)
	}
}

// Path returns a Constructor that builds the path P_n on n vertices.
func Path(n int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < MinPathVertices {
			return nil, paramError(MethodPath, "n", n, ErrTooFewVertices)
		}
		facets := [][]int{{0}}
		for i := 1; i < n; i++ {
			facets = append(facets, []int{i - 1, i})
		}

		return fromFacets(MethodPath, facets)
	}
}
