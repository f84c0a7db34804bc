// SPDX-License-Identifier: MIT
// Package matrix provides GF(2) operations on *Dense: rank via Gaussian
// elimination, products and transposes. Operands are never mutated; results
// are freshly allocated.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opRank      = "Rank"
	opMul       = "Mul"
	opTranspose = "Transpose"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Only call with err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Rank returns the rank of m over GF(2).
//
// Implementation:
//   - Stage 1: degenerate shapes (zero rows or zero columns) return 0 without
//     touching the data.
//   - Stage 2: work on a private copy of the buffer.
//   - Stage 3: column sweep; for each column find a row at or below the current
//     pivot row holding a 1, swap it into place, then XOR the pivot row into
//     every other row with a 1 in that column (full reduction).
//   - Stage 4: the number of pivots found is the rank.
//
// Behavior highlights:
//   - Exact: there is no floating point anywhere; addition is XOR.
//   - Deterministic: fixed column-major pivot search and row order.
//
// Errors:
//   - ErrNilMatrix for a nil input.
//
// Complexity:
//   - Time O(r·c·min(r,c)), Space O(r*c) for the working copy.
func Rank(m *Dense) (int, error) {
	if m == nil {
		return 0, matrixErrorf(opRank, ErrNilMatrix)
	}
	if m.IsEmpty() {
		return 0, nil
	}

	rows, cols := m.r, m.c
	a := make([]byte, len(m.data))
	copy(a, m.data)

	rank := 0
	pivotRow := 0
	for col := 0; col < cols && pivotRow < rows; col++ {
		// find a pivot in this column
		pivot := -1
		for i := pivotRow; i < rows; i++ {
			if a[i*cols+col] == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		if pivot != pivotRow {
			swapRows(a, cols, pivot, pivotRow)
		}
		// eliminate every other 1 in this column
		prow := a[pivotRow*cols : (pivotRow+1)*cols]
		for i := 0; i < rows; i++ {
			if i == pivotRow || a[i*cols+col] == 0 {
				continue
			}
			row := a[i*cols : (i+1)*cols]
			for j := col; j < cols; j++ {
				row[j] ^= prow[j]
			}
		}
		rank++
		pivotRow++
	}

	return rank, nil
}

// swapRows exchanges rows i and j of a row-major buffer with the given width.
func swapRows(a []byte, cols, i, j int) {
	ri := a[i*cols : (i+1)*cols]
	rj := a[j*cols : (j+1)*cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// Mul returns the GF(2) product a·b.
//
// Behavior highlights:
//   - Shapes (r×n)·(n×c) → r×c; n may be zero, giving the r×c zero matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols() != b.Rows()).
//
// Complexity:
//   - Time O(r·n·c), Space O(r*c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("(%d×%d)·(%d×%d): %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	out, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		orow := out.data[i*b.c : (i+1)*b.c]
		for k := 0; k < a.c; k++ {
			if a.data[i*a.c+k] == 0 {
				continue
			}
			brow := b.data[k*b.c : (k+1)*b.c]
			for j := range orow {
				orow[j] ^= brow[j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}
