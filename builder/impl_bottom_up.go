// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_bottom_up.go — implementation of the BottomUp(n, probs) generator.
//
// Canonical model:
//   • Start with vertices 0..n-1 (every vertex is always present).
//   • For k = 1..n-1: if probs[k] is absent or 0, skip dimension k entirely.
//     Otherwise visit every k-simplex candidate (k+1 vertices) in lexicographic
//     order; when all of its faces are present, draw once from the RNG and
//     include it iff draw < probs[k].
//   • Candidates whose boundary is incomplete consume no randomness.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices). n = 0 yields the empty complex.
//   • Every key k ≥ 1 (else ErrInvalidDimension); keys ≥ n are accepted and ignored.
//   • Every probability in [0,1] (else ErrInvalidProbability).
//   • cfg.rng is required when some active probability lies strictly in (0,1)
//     (else ErrNeedRandSource).
//
// Determinism:
//   • Same n, probs and seed ⇒ identical complex: candidates are visited in a
//     fixed order and only boundary-complete candidates draw.

package builder

import (
	"fmt"
	"math"
	"slices"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// BottomUp returns a Constructor that grows a random complex dimension by
// dimension. The returned complex always passes downward-closure validation.
func BottomUp(n int, probs map[int]float64) Constructor {
	// copy so later caller mutations cannot change the closure
	ps := make(map[int]float64, len(probs))
	for k, p := range probs {
		ps[k] = p
	}

	return func(cfg builderConfig) (*core.Complex, error) {
		if err := validateBottomUp(n, ps, cfg); err != nil {
			return nil, err
		}

		all := growLevels(n, n-1, func(k int) (func() bool, bool) {
			p, ok := ps[k]
			if !ok || p == 0 {
				return nil, false
			}

			return func() bool { return cfg.draw(p) }, true
		})

		c, err := core.FromSimplices(all)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodBottomUp, err)
		}

		return c, nil
	}
}

// validateBottomUp applies the checks in the documented priority order,
// visiting dimension keys in ascending order.
func validateBottomUp(n int, ps map[int]float64, cfg builderConfig) error {
	if n < 0 {
		return paramError(MethodBottomUp, "n", n, ErrTooFewVertices)
	}
	keys := make([]int, 0, len(ps))
	for k := range ps {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if k < 1 {
			return paramError(MethodBottomUp, "dimension", k, ErrInvalidDimension)
		}
	}
	for _, k := range keys {
		if !validProbability(ps[k]) {
			return paramError(MethodBottomUp, fmt.Sprintf("p[%d]", k), ps[k], ErrInvalidProbability)
		}
	}
	if cfg.rng == nil {
		for _, k := range keys {
			if k < n && needsRandomness(ps[k]) {
				return paramError(MethodBottomUp, fmt.Sprintf("p[%d]", k), ps[k], ErrNeedRandSource)
			}
		}
	}

	return nil
}

// validProbability reports p ∈ [0,1]; NaN is rejected.
func validProbability(p float64) bool {
	return !math.IsNaN(p) && p >= MinProbability && p <= MaxProbability
}

// needsRandomness reports whether a Bernoulli(p) trial is not a foregone conclusion.
func needsRandomness(p float64) bool {
	return p > MinProbability && p < MaxProbability
}
