// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_random_flag.go - implementation of RandomFlag(n, p, maxDim).
//
// Canonical model:
//   - Erdős–Rényi graph: each edge {i,j}, i<j, is drawn in lexicographic order
//     and kept iff draw < p.
//   - Flag (clique) completion: every clique of the graph with at most
//     maxDim+1 vertices is added as a simplex. No further draws are made.
//
// Contract:
//   - n ≥ 0 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - maxDim ≥ 1 (else ErrInvalidDimension).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n²) Bernoulli trials plus clique growth (see growth.go).
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (j > i).
//   - RandomFlag(n, p, 1) consumes the same draws as BottomUp(n, {1: p}) and
//     produces the same graph.

package builder

import (
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// RandomFlag returns a Constructor for the clique complex of a random graph,
// truncated at dimension maxDim.
func RandomFlag(n int, p float64, maxDim int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < 0 {
			return nil, paramError(MethodRandomFlag, "n", n, ErrTooFewVertices)
		}
		if !validProbability(p) {
			return nil, paramError(MethodRandomFlag, "p", p, ErrInvalidProbability)
		}
		if maxDim < 1 {
			return nil, paramError(MethodRandomFlag, "maxDim", maxDim, ErrInvalidDimension)
		}
		if cfg.rng == nil && needsRandomness(p) {
			return nil, paramError(MethodRandomFlag, "p", p, ErrNeedRandSource)
		}

		top := min(maxDim, n-1)
		all := growLevels(n, top, func(k int) (func() bool, bool) {
			if k == 1 {
				return func() bool { return cfg.draw(p) }, true
			}

			return func() bool { return true }, true
		})

		c, err := core.FromSimplices(all)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodRandomFlag, err)
		}

		return c, nil
	}
}
