// SPDX-License-Identifier: MIT

// Package matrix - Dense storage over GF(2) (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Store field elements of GF(2) = {0,1}; every write is reduced mod 2.
//   - Guarantee safety at the public surface: At/Set/Flip return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Flip: O(1); Clone: O(r*c); String: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxFlip = "Flip"
	ctxRow  = "Row"
)

// ---------- formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = " "
)

// denseErrorf wraps a sentinel with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <sentinel>" and still matches errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major 0/1 matrix over GF(2).
//   - r,c hold dimensions (rows, cols); either may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - every stored byte is 0 or 1.
type Dense struct {
	r, c int    // row and column counts (>= 0)
	data []byte // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer of length rows*cols.
//
// Behavior highlights:
//   - Unlike a general-purpose dense type, 0×N and N×0 shapes are legal here:
//     a boundary operator between an empty chain group and anything is a
//     well-defined empty matrix, not an error.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense{r: rows, c: cols, data: make([]byte, rows*cols)}, nil
}

// FromRows builds a Dense from a rectangular [][]int, reducing entries mod 2.
// All rows must have the same length; an empty input yields a 0×0 matrix.
//
// Errors:
//   - ErrDimensionMismatch for ragged input.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows(rows [][]int) (*Dense, error) {
	if len(rows) == 0 {
		return NewDense(0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			m.data[i*cols+j] = mod2(v)
		}
	}

	return m, nil
}

// mod2 reduces any integer to {0,1}, negatives included.
func mod2(v int) byte {
	if v%2 == 0 {
		return 0
	}

	return 1
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsEmpty reports whether the matrix has zero rows or zero columns.
func (m *Dense) IsEmpty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method tag.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col) as 0 or 1.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return int(m.data[idx]), nil
}

// Set assigns v mod 2 at (row, col).
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = mod2(v)

	return nil
}

// Flip adds 1 (mod 2) at (row, col), i.e. toggles the entry.
// Errors: ErrOutOfRange. Complexity: O(1).
func (m *Dense) Flip(row, col int) error {
	idx, err := m.indexOf(ctxFlip, row, col)
	if err != nil {
		return err
	}
	m.data[idx] ^= 1

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange. Complexity: O(c).
func (m *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	for j := range out {
		out[j] = int(m.data[i*m.c+j])
	}

	return out, nil
}

// NonZeros counts the entries equal to 1.
func (m *Dense) NonZeros() int {
	n := 0
	for _, b := range m.data {
		n += int(b)
	}

	return n
}

// IsZero reports whether every entry is 0. Empty matrices are zero.
func (m *Dense) IsZero() bool { return m.NonZeros() == 0 }

// Equal reports whether m and o have the same shape and entries.
func (m *Dense) Equal(o *Dense) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for i := range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]byte, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String renders rows as "[1 0 1]" lines. Intended for diagnostics.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base := i * m.c
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteByte('0' + m.data[base+j])
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
