// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_star.go — Star(n), Wheel(n) and the Cone wrapper.
//
// Contract:
//   • Star(n): n ≥ 2. Hub 0 joined by an edge to each leaf 1..n-1. Contractible.
//   • Wheel(n): n ≥ 4. Hub 0, rim cycle 1..n-1, and the triangles {0, i, next(i)}.
//     A triangulated disk, so contractible (β₀ = 1, all else 0).
//   • Cone(con): joins the apex max(label)+1 to every facet of con's complex.
//     Every cone is contractible; the cone over the empty complex is the apex.
//
// Complexity:
//   • Star/Wheel O(n); Cone O(Σ 2^m) over facets of size m.

package builder

import (
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Star returns a Constructor for the star tree with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < MinStarVertices {
			return nil, paramError(MethodStar, "n", n, ErrTooFewVertices)
		}
		facets := make([][]int, 0, n-1)
		for leaf := 1; leaf < n; leaf++ {
			facets = append(facets, []int{0, leaf})
		}

		return fromFacets(MethodStar, facets)
	}
}

// Wheel returns a Constructor for the triangulated disk W_n (hub 0, rim 1..n-1).
func Wheel(n int) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if n < MinWheelVertices {
			return nil, paramError(MethodWheel, "n", n, ErrTooFewVertices)
		}
		rim := n - 1
		facets := make([][]int, 0, rim)
		for i := 0; i < rim; i++ {
			facets = append(facets, []int{0, 1 + i, 1 + (i+1)%rim})
		}

		return fromFacets(MethodWheel, facets)
	}
}

// Cone returns a Constructor that builds con's complex and joins it to a new
// apex vertex labeled one past the largest existing label.
func Cone(con Constructor) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		if con == nil {
			return nil, fmt.Errorf("%s: nil constructor: %w", MethodCone, ErrConstructFailed)
		}
		base, err := con(cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", MethodCone, err)
		}

		apex := 0
		if vs := base.Vertices(); len(vs) > 0 {
			apex = vs[len(vs)-1] + 1
		}
		facets := [][]int{{apex}}
		for _, f := range base.Facets() {
			facets = append(facets, append(f, apex))
		}

		return fromFacets(MethodCone, facets)
	}
}
