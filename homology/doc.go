// Package homology computes simplicial homology invariants over GF(2).
//
// Given an immutable core.Complex it provides:
//
//   - GroupByDimension: the simplices of each dimension in lexicographic order.
//     This ordering fixes the row and column order of every boundary matrix.
//   - BoundaryMatrix: the k-th boundary operator ∂ₖ: Cₖ → Cₖ₋₁ as a 0/1
//     matrix.Dense of shape (|Cₖ₋₁|, |Cₖ|). Empty chain groups give empty
//     matrices, never errors.
//   - EulerCharacteristic: χ = Σ (−1)^dim σ over all simplices.
//   - BettiNumbers: βₖ by rank–nullity, with ranks computed by
//     matrix.Rank (exact elimination, addition is XOR).
//   - Analyze: a Summary bundling counts, ranks, χ and Betti numbers, with an
//     Euler–Poincaré consistency check (χ = Σ (−1)^k βₖ).
//
// Working over GF(2) ignores orientation, so every coefficient is 0 or 1 and
// no sign bookkeeping is needed. All results are deterministic: nothing here
// draws randomness or depends on map iteration order.
//
// Example:
//
//	c, _ := core.FromMaximalSimplices([][]int{{0, 1}, {1, 2}, {0, 2}})
//	b := homology.BettiNumbers(c) // {0: 1, 1: 1}: one component, one loop
package homology
