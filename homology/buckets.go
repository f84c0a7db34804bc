// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/homology
//
// buckets.go — simplices grouped by dimension.
//
// The order inside each bucket is lexicographic and is the single source of
// truth for row/column order in boundary matrices.

package homology

import "github.com/mkerr316/multiscale-tda-geomorphology/core"

// Buckets holds the simplices of a complex split by dimension.
// byDim[k] lists the k-simplices in lexicographic order.
type Buckets struct {
	byDim [][]core.Simplex
}

// GroupByDimension splits c into per-dimension, lexicographically sorted lists.
// The result is identical across repeated calls on the same complex.
// A nil or empty complex yields empty Buckets (MaxDim() == -1).
//
// Complexity: O(S·d) for S simplices of dimension ≤ d.
func GroupByDimension(c *core.Complex) Buckets {
	if c == nil || c.IsEmpty() {
		return Buckets{}
	}
	byDim := make([][]core.Simplex, c.Dimension()+1)
	// Simplices() is already in canonical order (dimension, then lexicographic)
	for _, s := range c.Simplices() {
		byDim[s.Dim()] = append(byDim[s.Dim()], s)
	}

	return Buckets{byDim: byDim}
}

// MaxDim returns the highest non-empty dimension, or -1 when there is none.
func (b Buckets) MaxDim() int { return len(b.byDim) - 1 }

// At returns the k-simplices; out-of-range k yields nil.
// The returned slice is shared; do not modify it.
func (b Buckets) At(k int) []core.Simplex {
	if k < 0 || k >= len(b.byDim) {
		return nil
	}

	return b.byDim[k]
}

// Len returns the number of k-simplices (0 for out-of-range k).
func (b Buckets) Len(k int) int { return len(b.At(k)) }

// Counts returns the f-vector (number of simplices per dimension).
func (b Buckets) Counts() []int {
	out := make([]int, len(b.byDim))
	for k, list := range b.byDim {
		out[k] = len(list)
	}

	return out
}

// index maps each k-simplex key to its row/column position.
func (b Buckets) index(k int) map[string]int {
	list := b.At(k)
	idx := make(map[string]int, len(list))
	for i, s := range list {
		idx[s.Key()] = i
	}

	return idx
}
