// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/homology
//
// betti.go — Euler characteristic and Betti numbers.
//
// Formulas (rank–nullity over GF(2)):
//   - β₀ = |C₀| − rank ∂₁
//   - βₖ = (|Cₖ| − rank ∂ₖ) − rank ∂ₖ₊₁   for 1 ≤ k ≤ maxdim
//   - χ  = Σₖ (−1)^k |Cₖ| = Σₖ (−1)^k βₖ   (Euler–Poincaré)

package homology

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Betti maps dimension k to βₖ. BettiNumbers always returns keys 0..maxdim
// with no gaps; the empty complex maps to {0: 0}.
type Betti map[int]int

// Dims returns the dimensions present, ascending.
func (b Betti) Dims() []int {
	dims := make([]int, 0, len(b))
	for k := range b {
		dims = append(dims, k)
	}
	slices.Sort(dims)

	return dims
}

// MaxDim returns the largest dimension key, or -1 for an empty map.
func (b Betti) MaxDim() int {
	top := -1
	for k := range b {
		if k > top {
			top = k
		}
	}

	return top
}

// Slice returns β₀..β_maxDim as a slice; missing dimensions read as 0.
// A negative maxDim yields an empty slice.
func (b Betti) Slice(maxDim int) []int {
	if maxDim < 0 {
		return []int{}
	}
	out := make([]int, maxDim+1)
	for k := range out {
		out[k] = b[k]
	}

	return out
}

// EulerCharacteristic returns Σ (−1)^k βₖ.
func (b Betti) EulerCharacteristic() int {
	chi := 0
	for k, v := range b {
		chi += sign(k) * v
	}

	return chi
}

// String renders "β0=1 β1=0 ..." in dimension order.
func (b Betti) String() string {
	parts := make([]string, 0, len(b))
	for _, k := range b.Dims() {
		parts = append(parts, fmt.Sprintf("β%d=%d", k, b[k]))
	}

	return strings.Join(parts, " ")
}

// sign returns (−1)^k.
func sign(k int) int {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// EulerCharacteristic returns χ(c) = Σ over simplices of (−1)^dim.
// The empty (or nil) complex has χ = 0.
//
// Complexity: O(S).
func EulerCharacteristic(c *core.Complex) int {
	if c == nil {
		return 0
	}
	chi := 0
	for k, n := range c.Counts() {
		chi += sign(k) * n
	}

	return chi
}

// BettiNumbers returns βₖ for k = 0..Dimension(c) over GF(2).
//
// Implementation:
//   - Stage 1: group simplices by dimension; an empty complex returns {0: 0}.
//   - Stage 2: ranks of ∂ₖ for k = 1..maxdim+1 (BoundaryRanks).
//   - Stage 3: rank–nullity per dimension.
//
// Complexity: dominated by elimination, Σ O(|Cₖ₋₁|·|Cₖ|·min(|Cₖ₋₁|,|Cₖ|)).
func BettiNumbers(c *core.Complex) Betti {
	b := GroupByDimension(c)
	if b.MaxDim() < 0 {
		return Betti{0: 0}
	}

	return bettiFromRanks(b.Counts(), BoundaryRanks(b))
}

// bettiFromRanks applies rank–nullity. counts has maxdim+1 entries and ranks
// maxdim+2 entries (indexed by k).
func bettiFromRanks(counts, ranks []int) Betti {
	top := len(counts) - 1
	out := make(Betti, top+1)
	out[0] = counts[0] - ranks[1]
	for k := 1; k <= top; k++ {
		out[k] = (counts[k] - ranks[k]) - ranks[k+1]
	}

	return out
}
