// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// growth.go — level-by-level growth shared by BottomUp and RandomFlag.
//
// Candidate enumeration:
//   • A (k+1)-vertex candidate σ can only have all of its faces present if its
//     prefix τ = σ minus its largest vertex is a present k-vertex simplex.
//   • Extending every present τ (lexicographic order) by each larger vertex v
//     (ascending) therefore visits exactly the candidates whose boundary may be
//     present, and visits them in lexicographic order. This is the same visit
//     order as enumerating all C(n, k+1) subsets and skipping those with a
//     missing face, without touching the subsets that are skipped.
//
// Complexity:
//   • Time O(Σₖ |present(k−1)|·n·k²) for the face checks.
//   • Space O(S) for the present-set index. Worst case (all probabilities 1)
//     is the full simplex, 2ⁿ−1 simplices, so keep n in the tens.

package builder

import (
	"slices"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// levelRule reports, for dimension k, whether the level is active and, if so,
// the admission decision for one candidate whose faces are all present.
type levelRule func(k int) (admit func() bool, active bool)

// growLevels starts from vertices 0..n-1 and grows dimensions 1..top.
// Inactive levels are skipped without visiting candidates. The result lists
// every grown simplex, vertices first, each dimension in lexicographic order.
func growLevels(n, top int, rule levelRule) []core.Simplex {
	present := make(map[string]struct{}, n)
	all := make([]core.Simplex, 0, n)
	prev := make([]core.Simplex, 0, n)
	for v := 0; v < n; v++ {
		s := core.Simplex{v}
		present[s.Key()] = struct{}{}
		prev = append(prev, s)
		all = append(all, s)
	}

	buf := make(core.Simplex, 0, n)
	for k := 1; k <= top; k++ {
		admit, active := rule(k)
		if !active || len(prev) == 0 {
			prev = nil // nothing at this level, so nothing above it either
			continue
		}

		var next []core.Simplex
		for _, tau := range prev {
			for v := tau[len(tau)-1] + 1; v < n; v++ {
				buf = append(append(buf[:0], tau...), v)
				if !boundaryPresent(buf, present) {
					continue
				}
				if admit() {
					next = append(next, slices.Clone(buf))
				}
			}
		}
		for _, s := range next {
			present[s.Key()] = struct{}{}
		}
		all = append(all, next...)
		prev = next
	}

	return all
}

// boundaryPresent checks the faces of sigma other than its prefix (the face
// that drops the last vertex), which the caller already knows is present.
func boundaryPresent(sigma core.Simplex, present map[string]struct{}) bool {
	for i := 0; i < len(sigma)-1; i++ {
		if _, ok := present[sigma.Face(i).Key()]; !ok {
			return false
		}
	}

	return true
}
