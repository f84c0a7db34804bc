// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/core
//
// combinations.go — lexicographic subset enumeration.
//
// The callbacks receive a buffer that is reused between calls; copy it (for
// example with slices.Clone) before retaining it. Returning false from the
// callback stops the enumeration early.

package core

// Combinations visits every k-subset of {0..n-1} in lexicographic order.
// Nothing is visited when k < 1 or k > n.
//
// Complexity: O(C(n,k)·k).
func Combinations(n, k int, fn func(Simplex) bool) {
	if n < 0 {
		return
	}
	src := make([]int, n)
	for i := range src {
		src[i] = i
	}
	CombinationsOf(src, k, fn)
}

// CombinationsOf visits every k-subset of src (taken in src order) in
// lexicographic index order. For a sorted src the emitted subsets are sorted
// simplices in lexicographic order.
func CombinationsOf(src []int, k int, fn func(Simplex) bool) {
	n := len(src)
	if k < 1 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	buf := make(Simplex, k)
	for {
		for i, j := range idx {
			buf[i] = src[j]
		}
		if !fn(buf) {
			return
		}
		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Subsets visits all 2^m-1 non-empty subsets of s, grouped by size (1..m) and
// lexicographic within each size.
func Subsets(s Simplex, fn func(Simplex) bool) {
	stop := false
	for k := 1; k <= len(s) && !stop; k++ {
		CombinationsOf(s, k, func(sub Simplex) bool {
			if !fn(sub) {
				stop = true
			}

			return !stop
		})
	}
}
