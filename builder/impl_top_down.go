// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_top_down.go — implementation of the TopDown(n, pKeep) erosion generator.
//
// Canonical model:
//   • The maximal set starts as the single simplex on all n vertices.
//   • For d = n-1 down to 1: the candidates are the distinct (d+1)-vertex faces
//     of the current maximal set, visited in lexicographic order. Each candidate
//     is kept iff draw < pKeep. The kept faces become the next maximal set.
//   • If nothing survives a step, erosion stops and the result is empty.
//   • The final maximal set is expanded with core.FromMaximalSimplices.
//
// Behavior highlights:
//   • The first step (d = n-1) considers the full simplex itself, so with
//     probability 1-pKeep the result is empty.
//   • The last step (d = 1) keeps edges, so a non-empty result for n ≥ 2 is a
//     graph (dimension 1). n = 1 yields the single vertex, n = 0 the empty complex.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices).
//   • pKeep ∈ [0,1] (else ErrInvalidProbability).
//   • cfg.rng required when 0 < pKeep < 1 (else ErrNeedRandSource).
//
// Complexity:
//   • Time O(Σ_d |maximal|·C(d+2, d+1)) face generation plus sorting; the
//     number of maximal simplices is bounded by C(n, d+1) at step d.

package builder

import (
	"fmt"
	"slices"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// TopDown returns a Constructor that erodes the full simplex on n vertices.
func TopDown(n int, pKeep float64) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < 0 {
			return nil, paramError(MethodTopDown, "n", n, ErrTooFewVertices)
		}
		if !validProbability(pKeep) {
			return nil, paramError(MethodTopDown, "pKeep", pKeep, ErrInvalidProbability)
		}
		if cfg.rng == nil && needsRandomness(pKeep) {
			return nil, paramError(MethodTopDown, "pKeep", pKeep, ErrNeedRandSource)
		}
		if n == 0 {
			return core.Union(), nil
		}

		full := make(core.Simplex, n)
		for i := range full {
			full[i] = i
		}
		current := []core.Simplex{full}

		for d := n - 1; d >= 1; d-- {
			var kept []core.Simplex
			for _, face := range distinctFaces(current, d+1) {
				if cfg.draw(pKeep) {
					kept = append(kept, face)
				}
			}
			if len(kept) == 0 {
				return core.Union(), nil
			}
			current = kept
		}

		facets := make([][]int, len(current))
		for i, s := range current {
			facets[i] = s
		}
		c, err := core.FromMaximalSimplices(facets)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodTopDown, err)
		}

		return c, nil
	}
}

// distinctFaces returns the distinct size-m subsets of the given simplices in
// lexicographic order.
func distinctFaces(simplices []core.Simplex, m int) []core.Simplex {
	seen := make(map[string]struct{})
	var out []core.Simplex
	for _, s := range simplices {
		core.CombinationsOf(s, m, func(sub core.Simplex) bool {
			key := sub.Key()
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				out = append(out, slices.Clone(sub))
			}

			return true
		})
	}
	slices.SortFunc(out, core.Compare)

	return out
}
