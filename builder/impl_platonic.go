// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// impl_platonic.go — PlatonicSurface(name), Torus() and ProjectivePlane().
//
// Canonical model:
//   • PlatonicSurface triangulates the boundary of a Platonic solid. Triangular
//     faces are used as is; squares and pentagons are fanned from their first
//     vertex. The result is a 2-sphere: β = (1, 0, 1), χ = 2.
//   • Torus is the 7-vertex Möbius torus: triangles {i, i+1, i+3} and
//     {i, i+2, i+3} mod 7. β = (1, 2, 1), χ = 0.
//   • ProjectivePlane is the 6-vertex hemi-icosahedron. Over GF(2),
//     β = (1, 1, 1), χ = 1.
//
// Contract:
//   • Unknown name → ErrUnknownSolid.
//
// Complexity:
//   • O(F) for the chosen surface (F ≤ 36 triangles).

package builder

import (
	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Surface constants (no magic numbers).
const (
	torusVertices = 7
)

// projectivePlaneFacets is the minimal 6-vertex triangulation of RP².
var projectivePlaneFacets = [][]int{
	{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 1, 5},
	{1, 2, 4}, {2, 3, 5}, {1, 3, 4}, {2, 4, 5}, {1, 3, 5},
}

// PlatonicSurface returns a Constructor for the triangulated boundary of the
// chosen Platonic solid, vertices 0..V-1.
func PlatonicSurface(name PlatonicName) Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		faces, ok := platonicFaces[name]
		if !ok {
			return nil, paramError(MethodPlatonicSurface, "name", name, ErrUnknownSolid)
		}

		return fromFacets(MethodPlatonicSurface, fanTriangulate(faces))
	}
}

// fanTriangulate splits each cyclic polygon v0..vm into triangles {v0, vi, vi+1}.
func fanTriangulate(polygons [][]int) [][]int {
	var out [][]int
	for _, poly := range polygons {
		for i := 1; i+1 < len(poly); i++ {
			out = append(out, []int{poly[0], poly[i], poly[i+1]})
		}
	}

	return out
}

// Torus returns a Constructor for the 7-vertex triangulated torus.
func Torus() Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		facets := make([][]int, 0, 2*torusVertices)
		for i := 0; i < torusVertices; i++ {
			facets = append(facets,
				[]int{i, (i + 1) % torusVertices, (i + 3) % torusVertices},
				[]int{i, (i + 2) % torusVertices, (i + 3) % torusVertices},
			)
		}

		return fromFacets("Torus", facets)
	}
}

// ProjectivePlane returns a Constructor for the 6-vertex real projective plane.
func ProjectivePlane() Constructor {
	return func(cfg builderConfig) (*core.Complex, error) {
		return fromFacets("ProjectivePlane", projectivePlaneFacets)
	}
}
