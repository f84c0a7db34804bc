// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// variants_platonic.go — canonical face data for the Platonic surfaces.
//
// Design:
//   • Single source of truth for the five Platonic solids: vertex counts and
//     polygonal faces, each listed in cyclic boundary order.
//   • Labels follow one fixed embedding per solid (documented per entry).
//   • Non-triangular faces are fan-triangulated from their first vertex in
//     impl_platonic.go, which keeps every surface a 2-sphere.
//
// Invariants (checked by tests):
//   • V − E + F = 2 after triangulation, and every edge lies on exactly two triangles.

package builder

// PlatonicName enumerates the five Platonic solids.
type PlatonicName int

// String provides a readable identifier for logs/errors (deterministic).
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

// Enum values (stable ordering).
const (
	Tetrahedron  PlatonicName = iota // V=4,  F=4 triangles
	Cube                             // V=8,  F=6 squares
	Octahedron                       // V=6,  F=8 triangles
	Dodecahedron                     // V=20, F=12 pentagons
	Icosahedron                      // V=12, F=20 triangles
)

// platonicVertexCounts maps each PlatonicName to its vertex count.
var platonicVertexCounts = map[PlatonicName]int{
	Tetrahedron:  4,
	Cube:         8,
	Octahedron:   6,
	Dodecahedron: 20,
	Icosahedron:  12,
}

// platonicFaces maps each PlatonicName to its polygonal faces in cyclic order.
var platonicFaces = map[PlatonicName][][]int{
	// -------------------------------------------------------------------------
	// Tetrahedron: every 3-subset of {0,1,2,3}.
	// -------------------------------------------------------------------------
	Tetrahedron: {
		{0, 1, 2}, {0, 1, 3}, {0, 2, 3}, {1, 2, 3},
	},

	// -------------------------------------------------------------------------
	// Cube:
	//   Bottom face: 0-1-2-3-0
	//   Top face:    4-5-6-7-4
	//   Verticals:   0-4, 1-5, 2-6, 3-7
	// -------------------------------------------------------------------------
	Cube: {
		{0, 1, 2, 3}, {4, 5, 6, 7},
		{0, 1, 5, 4}, {1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	},

	// -------------------------------------------------------------------------
	// Octahedron: poles {0,1}, equator cycle 2-4-3-5-2.
	// -------------------------------------------------------------------------
	Octahedron: {
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 4}, {1, 4, 3}, {1, 3, 5}, {1, 5, 2},
	},

	// Dodecahedron and Icosahedron are generated below.
	Dodecahedron: dodecahedronFaces(),
	Icosahedron:  icosahedronFaces(),
}

// dodecahedronFaces lists the 12 pentagons of the dodecahedron labeled as:
//   - Top pentagon:    0-1-2-3-4
//   - Bottom pentagon: 5-6-7-8-9
//   - Middle ring:     10-11-...-19-10
//   - Spokes: top i → 10+2i, bottom 5+j → 11+2j
func dodecahedronFaces() [][]int {
	ring := func(i int) int { return 10 + ((i%10)+10)%10 }
	faces := [][]int{{0, 1, 2, 3, 4}, {5, 6, 7, 8, 9}}
	for i := 0; i < 5; i++ {
		// upper pentagon between top edge i-(i+1) and the ring
		faces = append(faces, []int{i, (i + 1) % 5, ring(2*i + 2), ring(2*i + 1), ring(2 * i)})
	}
	for j := 0; j < 5; j++ {
		// lower pentagon between bottom edge j-(j+1) and the ring
		faces = append(faces, []int{5 + j, 5 + (j+1)%5, ring(2*j + 3), ring(2*j + 2), ring(2*j + 1)})
	}

	return faces
}

// icosahedronFaces lists the 20 triangles of the icosahedron labeled as:
//   - Top pole 0, top ring 1..5, bottom ring 6..10, bottom pole 11
//   - Top ring vertex Ti (1..5) touches bottom ring vertices Bi and B(i+1 mod 5)
func icosahedronFaces() [][]int {
	var faces [][]int
	for i := 0; i < 5; i++ {
		t, tNext := 1+i, 1+(i+1)%5
		b, bNext := 6+i, 6+(i+1)%5
		faces = append(faces,
			[]int{0, t, tNext},     // top cap
			[]int{t, b, bNext},     // band, pointing down
			[]int{t, tNext, bNext}, // band, pointing up
			[]int{11, b, bNext},    // bottom cap
		)
	}

	return faces
}
