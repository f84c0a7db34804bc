// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/core
//
// simplex.go — the Simplex value type.
//
// Representation:
//   - A Simplex is a strictly increasing []int of non-negative vertex labels.
//   - Dimension is len(s)-1; the empty slice is not a simplex and never stored.
//   - Ordering is lexicographic with a shorter prefix first, i.e. the same order
//     as tuples; within one dimension this is plain lexicographic order.
//
// Determinism:
//   - Faces are produced in deletion order: drop index 0, then 1, ... len-1.
//     For a sorted simplex this is descending lexicographic order of the faces.

package core

import (
	"slices"
	"strconv"
	"strings"
)

const methodNewSimplex = "NewSimplex"

// Simplex is a canonical (sorted, duplicate-free) list of vertex labels.
// Values handed out by this package are fresh copies; mutating them does not
// affect any Complex.
type Simplex []int

// NewSimplex canonicalizes vertices into a Simplex: labels are sorted and
// duplicates dropped. Negative labels are rejected with ErrInvalidParameter,
// and an empty input is rejected as well (there is no (-1)-simplex here).
//
// Complexity: O(m log m) for m input labels.
func NewSimplex(vertices ...int) (Simplex, error) {
	if len(vertices) == 0 {
		return nil, NewParameterError(methodNewSimplex, "vertices", "[]", nil)
	}
	for _, v := range vertices {
		if v < 0 {
			return nil, NewParameterError(methodNewSimplex, "vertex", v, nil)
		}
	}

	return canonical(vertices), nil
}

// canonical copies, sorts and dedupes vs without validating labels.
func canonical(vs []int) Simplex {
	out := make(Simplex, len(vs))
	copy(out, vs)
	slices.Sort(out)

	return slices.Compact(out)
}

// Dim returns the dimension len(s)-1.
func (s Simplex) Dim() int { return len(s) - 1 }

// Key returns a compact string usable as a map key. Two simplices have equal
// keys iff they are equal.
func (s Simplex) Key() string {
	buf := make([]byte, 0, len(s)*3)
	for i, v := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}

	return string(buf)
}

// Face returns a new simplex equal to s with the i-th vertex removed.
// i must be in [0, len(s)); the result is nil for a 0-simplex.
func (s Simplex) Face(i int) Simplex {
	if len(s) <= 1 {
		return nil
	}
	out := make(Simplex, 0, len(s)-1)
	out = append(out, s[:i]...)

	return append(out, s[i+1:]...)
}

// Faces returns the codimension-1 faces of s in deletion order. A vertex has no
// faces (nil). For a canonical simplex all returned faces are pairwise distinct,
// which is what lets boundary matrices be filled by assignment rather than
// mod-2 accumulation.
//
// Complexity: O(len(s)^2).
func Faces(s Simplex) []Simplex {
	if len(s) <= 1 {
		return nil
	}
	faces := make([]Simplex, len(s))
	for i := range s {
		faces[i] = s.Face(i)
	}

	return faces
}

// Equal reports whether s and t contain the same labels in the same order.
func (s Simplex) Equal(t Simplex) bool { return slices.Equal(s, t) }

// Compare orders simplices like tuples: element-wise, shorter prefix first.
func Compare(a, b Simplex) int { return slices.Compare(a, b) }

// String renders the simplex as a tuple, e.g. "(0,1,2)".
func (s Simplex) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	sb.WriteString(s.Key())
	sb.WriteByte(')')

	return sb.String()
}
