// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/homology
//
// boundary.go — boundary operators as GF(2) matrices and their ranks.

package homology

import (
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
	"github.com/mkerr316/multiscale-tda-geomorphology/matrix"
)

// BoundaryMatrix builds ∂ₖ: Cₖ → Cₖ₋₁ for the grouped simplices.
//
// Implementation:
//   - Stage 1: allocate a zero matrix of shape (|Cₖ₋₁|, |Cₖ|). Either side may
//     be zero; for k ≤ 0 there is no (k−1)-chain group and the row count is 0.
//   - Stage 2: for each column simplex σ (lexicographic order) and each face
//     τ = σ minus one vertex, set entry (row(τ), col(σ)) to 1.
//
// Behavior highlights:
//   - Entries are assigned, not toggled: the faces of a canonical simplex are
//     pairwise distinct, so no entry is ever written twice for one column.
//   - Faces absent from Cₖ₋₁ are skipped; for a valid complex this never happens.
//
// Complexity:
//   - Time O(|Cₖ|·k² + |Cₖ₋₁|·|Cₖ|) including zero-fill, Space O(|Cₖ₋₁|·|Cₖ|).
func BoundaryMatrix(k int, b Buckets) *matrix.Dense {
	rows := 0
	if k >= 1 {
		rows = b.Len(k - 1)
	}
	cols := b.Len(k)
	m := mustDense(rows, cols)
	if rows == 0 || cols == 0 {
		return m
	}

	rowOf := b.index(k - 1)
	for j, s := range b.At(k) {
		for _, face := range core.Faces(s) {
			i, ok := rowOf[face.Key()]
			if !ok {
				continue
			}
			mustSet(m, i, j)
		}
	}

	return m
}

// BoundaryRanks returns rank ∂ₖ over GF(2) for k = 1 … MaxDim()+1.
// The slice is indexed by k; ranks[0] is always 0 (∂₀ is the zero map) and
// ranks[MaxDim()+1] is 0 because no (MaxDim()+1)-simplices exist.
// Empty buckets yield nil.
//
// Complexity: Σ O(|Cₖ₋₁|·|Cₖ|·min(|Cₖ₋₁|,|Cₖ|)).
func BoundaryRanks(b Buckets) []int {
	top := b.MaxDim()
	if top < 0 {
		return nil
	}
	ranks := make([]int, top+2)
	for k := 1; k <= top+1; k++ {
		ranks[k] = mustRank(BoundaryMatrix(k, b))
	}

	return ranks
}

// The helpers below turn matrix errors into panics. Shapes are bucket lengths
// and indices come from bucket positions, so an error means a bug here.

func mustDense(rows, cols int) *matrix.Dense {
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		panic(fmt.Sprintf("homology: boundary matrix %d×%d: %v", rows, cols, err))
	}

	return m
}

func mustSet(m *matrix.Dense, i, j int) {
	if err := m.Set(i, j, 1); err != nil {
		panic(fmt.Sprintf("homology: boundary entry (%d,%d): %v", i, j, err))
	}
}

func mustRank(m *matrix.Dense) int {
	r, err := matrix.Rank(m)
	if err != nil {
		panic(fmt.Sprintf("homology: rank: %v", err))
	}

	return r
}
