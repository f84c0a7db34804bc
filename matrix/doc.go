// Package matrix offers small dense matrices over the two-element field GF(2).
//
// The matrix package provides:
//
//   - Dense, a row-major 0/1 buffer with safe accessors (At, Set, Flip) that
//     return ErrOutOfRange instead of panicking. Zero-row and zero-column shapes
//     are legal values.
//   - Rank, exact Gaussian elimination where row addition is XOR.
//   - Mul and Transpose, used to check identities such as ∂∘∂ = 0.
//
// Dense storage is deliberate: boundary matrices of complexes on tens of
// vertices are small, and the cost of the topology engine is dominated by
// candidate enumeration in the generators, not by elimination.
//
// Example:
//
//	m, _ := matrix.FromRows([][]int{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}})
//	r, _ := matrix.Rank(m) // 2: the third row is the XOR of the first two
package matrix
