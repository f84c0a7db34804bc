// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/core
//
// complex.go — the Complex type: construction, validation and queries.
//
// Invariants:
//   - Every stored simplex is canonical (sorted, duplicate-free, non-negative).
//   - Downward closure: for every s with dim ≥ 1 and every i, s.Face(i) is stored.
//   - A Complex is never mutated after construction; every transformation
//     (Union, builder constructors) produces a new value.
//
// Determinism:
//   - Simplices() and Facets() return canonical order: dimension ascending, then
//     lexicographic. Map iteration never leaks into results.

package core

import (
	"fmt"
	"slices"
)

const (
	methodNew                  = "New"
	methodFromMaximalSimplices = "FromMaximalSimplices"
)

// Complex is an immutable abstract simplicial complex.
// The zero value is not usable; construct with New, FromSimplices,
// FromMaximalSimplices or Union.
type Complex struct {
	set  map[string]struct{} // membership by Simplex.Key
	list []Simplex           // canonical order, owned by the Complex
	dim  int                 // max dimension, -1 when empty
}

// New builds a Complex from explicit simplices. Each tuple is canonicalized
// (sorted, deduplicated) first. The set must already be downward closed:
// a missing face yields *InvalidComplexError (errors.Is ErrInvalidComplex) and
// is never inserted automatically.
//
// Errors:
//   - ErrInvalidParameter for an empty tuple or a negative label.
//   - ErrInvalidComplex when downward closure fails.
//
// Complexity: O(S·d²) for S simplices of dimension ≤ d.
func New(simplices ...[]int) (*Complex, error) {
	set := make(map[string]Simplex, len(simplices))
	for _, raw := range simplices {
		s, err := NewSimplex(raw...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodNew, err)
		}
		set[s.Key()] = s
	}
	c := fromSet(set)
	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// FromSimplices is New for values that are already typed as Simplex.
func FromSimplices(simplices []Simplex) (*Complex, error) {
	raw := make([][]int, len(simplices))
	for i, s := range simplices {
		raw[i] = s
	}

	return New(raw...)
}

// FromMaximalSimplices builds the smallest complex containing every facet:
// each facet is deduplicated and sorted, then all of its 2^m-1 non-empty
// subsets are added. Empty facets are skipped. The result is downward closed
// by construction, so the only possible error is a negative label.
//
// Complexity: O(Σ 2^m·m) over facets of size m.
func FromMaximalSimplices(facets [][]int) (*Complex, error) {
	set := make(map[string]Simplex)
	for _, f := range facets {
		if len(f) == 0 {
			continue
		}
		s, err := NewSimplex(f...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodFromMaximalSimplices, err)
		}
		Subsets(s, func(sub Simplex) bool {
			key := sub.Key()
			if _, ok := set[key]; !ok {
				set[key] = slices.Clone(sub)
			}

			return true
		})
	}

	return fromSet(set), nil
}

// Union returns the complex whose simplex set is the union of the inputs.
// A union of downward-closed sets is downward closed, so no validation is needed.
// Nil inputs are ignored.
func Union(cs ...*Complex) *Complex {
	set := make(map[string]Simplex)
	for _, c := range cs {
		if c == nil {
			continue
		}
		for _, s := range c.list {
			set[s.Key()] = s
		}
	}

	return fromSet(set)
}

// fromSet freezes a keyed simplex set into a Complex (no validation).
func fromSet(set map[string]Simplex) *Complex {
	c := &Complex{
		set:  make(map[string]struct{}, len(set)),
		list: make([]Simplex, 0, len(set)),
		dim:  -1,
	}
	for key, s := range set {
		c.set[key] = struct{}{}
		c.list = append(c.list, s)
		if s.Dim() > c.dim {
			c.dim = s.Dim()
		}
	}
	SortCanonical(c.list)

	return c
}

// validate checks downward closure in canonical order and reports the first
// violation.
func (c *Complex) validate() error {
	for _, s := range c.list {
		if len(s) < 2 {
			continue
		}
		for i := range s {
			face := s.Face(i)
			if _, ok := c.set[face.Key()]; !ok {
				return &InvalidComplexError{Simplex: slices.Clone(s), Missing: face}
			}
		}
	}

	return nil
}

// SortCanonical sorts simplices by dimension, then lexicographically.
func SortCanonical(list []Simplex) {
	slices.SortFunc(list, func(a, b Simplex) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}

		return Compare(a, b)
	})
}

// Simplices returns a copy of every simplex in canonical order.
// Complexity: O(S·d).
func (c *Complex) Simplices() []Simplex {
	out := make([]Simplex, len(c.list))
	for i, s := range c.list {
		out[i] = slices.Clone(s)
	}

	return out
}

// Dimension returns the highest simplex dimension, or -1 for the empty complex.
func (c *Complex) Dimension() int { return c.dim }

// Len returns the number of simplices.
func (c *Complex) Len() int { return len(c.list) }

// IsEmpty reports whether the complex has no simplices.
func (c *Complex) IsEmpty() bool { return len(c.list) == 0 }

// Contains reports whether the simplex spanned by vertices is a member.
// Input order and duplicates do not matter.
func (c *Complex) Contains(vertices ...int) bool {
	if len(vertices) == 0 {
		return false
	}
	_, ok := c.set[canonical(vertices).Key()]

	return ok
}

// Vertices returns the sorted vertex labels (the 0-simplices).
func (c *Complex) Vertices() []int {
	var out []int
	for _, s := range c.list {
		if len(s) != 1 {
			break // canonical order puts all vertices first
		}
		out = append(out, s[0])
	}

	return out
}

// Counts returns the f-vector: Counts()[k] is the number of k-simplices,
// for k = 0..Dimension(). Empty complex → empty slice.
func (c *Complex) Counts() []int {
	counts := make([]int, c.dim+1)
	for _, s := range c.list {
		counts[s.Dim()]++
	}

	return counts
}

// Facets returns the maximal simplices (those that are not a face of another
// member) in canonical order.
//
// Complexity: O(S·d²).
func (c *Complex) Facets() []Simplex {
	covered := make(map[string]struct{}, len(c.list))
	for _, s := range c.list {
		for _, f := range Faces(s) {
			covered[f.Key()] = struct{}{}
		}
	}
	var out []Simplex
	for _, s := range c.list {
		if _, ok := covered[s.Key()]; !ok {
			out = append(out, slices.Clone(s))
		}
	}

	return out
}

// String summarizes the complex, e.g. "Complex(vertices=3, simplices=7, dim=2)".
func (c *Complex) String() string {
	return fmt.Sprintf("Complex(vertices=%d, simplices=%d, dim=%d)", len(c.Vertices()), len(c.list), c.dim)
}
