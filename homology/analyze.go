// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/homology
//
// analyze.go — one-pass summary of a complex's invariants.

package homology

import (
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Summary bundles the invariants of one complex.
type Summary struct {
	Dimension int   // Dimension() of the complex, -1 when empty
	Counts    []int // f-vector: Counts[k] = number of k-simplices
	Ranks     []int // Ranks[k] = rank ∂ₖ for k = 0..Dimension+1 (Ranks[0] = 0)
	Euler     int   // χ from simplex counts
	Betti     Betti // βₖ for k = 0..Dimension
}

// Analyze computes counts, boundary ranks, χ and Betti numbers of c in a single
// grouping pass. It is equivalent to calling EulerCharacteristic and
// BettiNumbers separately but shares the grouping work.
func Analyze(c *core.Complex) Summary {
	b := GroupByDimension(c)
	if b.MaxDim() < 0 {
		return Summary{Dimension: -1, Counts: []int{}, Ranks: []int{}, Betti: Betti{0: 0}}
	}
	counts := b.Counts()
	ranks := BoundaryRanks(b)
	chi := 0
	for k, n := range counts {
		chi += sign(k) * n
	}

	return Summary{
		Dimension: b.MaxDim(),
		Counts:    counts,
		Ranks:     ranks,
		Euler:     chi,
		Betti:     bettiFromRanks(counts, ranks),
	}
}

// Consistent reports whether the Euler–Poincaré identity χ = Σ (−1)^k βₖ holds.
// A false result indicates a bug in rank computation, never a property of the input.
func (s Summary) Consistent() bool {
	return s.Euler == s.Betti.EulerCharacteristic()
}

// String renders a one-line description, e.g. "dim=2 f=[3 3 1] χ=1 β0=1 β1=0 β2=0".
func (s Summary) String() string {
	return fmt.Sprintf("dim=%d f=%v χ=%d %s", s.Dimension, s.Counts, s.Euler, s.Betti)
}
