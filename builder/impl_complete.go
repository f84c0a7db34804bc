// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_complete.go — 1-skeleta of complete and complete bipartite graphs.
//
// Contract:
//   • Complete(n): n ≥ 1. Vertices 0..n-1, every edge {i,j}, i<j.
//     Homology: β₀ = 1, β₁ = C(n,2) − n + 1.
//   • CompleteBipartite(a, b): a, b ≥ 1. Left side 0..a-1, right side a..a+b-1.
//     Homology: β₀ = 1, β₁ = (a−1)(b−1).
//
// Complexity:
//   • Time: O(n²) / O(a·b) edges.

package builder

import (
	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Complete returns a Constructor for the 1-skeleton of K_n.
func Complete(n int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < MinSimplexVertices {
			return nil, paramError(MethodComplete, "n", n, ErrTooFewVertices)
		}
		facets := [][]int{{0}}
		core.Combinations(n, 2, func(e core.Simplex) bool {
			facets = append(facets, []int{e[0], e[1]})
			return true
		})

		return fromFacets(MethodComplete, facets)
	}
}

// CompleteBipartite returns a Constructor for the 1-skeleton of K_{a,b}.
func CompleteBipartite(a, b int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if a < MinPartitionSize {
			return nil, paramError(MethodCompleteBipartite, "a", a, ErrTooFewVertices)
		}
		if b < MinPartitionSize {
			return nil, paramError(MethodCompleteBipartite, "b", b, ErrTooFewVertices)
		}
		facets := make([][]int, 0, a*b)
		for i := 0; i < a; i++ {
			for j := 0; j < b; j++ {
				facets = append(facets, []int{i, a + j})
			}
		}

		return fromFacets(MethodCompleteBipartite, facets)
	}
}
