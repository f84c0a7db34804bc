// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/gridcomplex
//
// gridcomplex.go — construction of the land complex of a raster grid.
//
// Triangulation:
//   - Every land cell (value ≥ LandThreshold) is a vertex.
//   - Conn4: an edge joins orthogonal land neighbours. A 2×2 block whose four
//     cells are land is filled by the triangles {a,b,d} and {a,c,d}, where a is
//     the top-left cell and d the bottom-right one, so the block is a disk.
//   - Conn8: the flag complex of the 8-neighbour graph. Every clique of that
//     graph lies inside one 2×2 block, so the land cells of each block form a
//     simplex (up to a tetrahedron).
//
// In both cases β₀ of the complex equals the number of islands found by
// ConnectedComponents with the same connectivity.

package gridcomplex

import (
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridComplex constructs a GridComplex from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrConnectivity for an
// unknown opts.Conn.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridComplex(values [][]int, opts GridOptions) (*GridComplex, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	var offsets [][2]int
	switch opts.Conn {
	case Conn4:
		offsets = offsets4
	case Conn8:
		offsets = offsets8
	default:
		return nil, fmt.Errorf("NewGridComplex: %s: %w", opts.Conn, ErrConnectivity)
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	gc := &GridComplex{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		LandThreshold: opts.LandThreshold,
		offsets:       offsets,
	}

	c, err := core.FromMaximalSimplices(gc.facets())
	if err != nil {
		return nil, fmt.Errorf("NewGridComplex: %w", err)
	}
	gc.complex = c

	return gc, nil
}

// facets lists a generating family of simplices: land vertices, orthogonal
// edges and the per-block fillings. Non-maximal entries are harmless since
// FromMaximalSimplices takes the downward closure.
func (gc *GridComplex) facets() [][]int {
	var out [][]int
	for y := 0; y < gc.Height; y++ {
		for x := 0; x < gc.Width; x++ {
			if !gc.IsLand(x, y) {
				continue
			}
			u := gc.index(x, y)
			out = append(out, []int{u})
			if gc.IsLand(x+1, y) {
				out = append(out, []int{u, gc.index(x+1, y)})
			}
			if gc.IsLand(x, y+1) {
				out = append(out, []int{u, gc.index(x, y+1)})
			}
		}
	}
	for y := 0; y+1 < gc.Height; y++ {
		for x := 0; x+1 < gc.Width; x++ {
			out = append(out, gc.blockFacets(x, y)...)
		}
	}

	return out
}

// blockFacets fills the 2×2 block whose top-left cell is (x,y).
func (gc *GridComplex) blockFacets(x, y int) [][]int {
	a, b := gc.index(x, y), gc.index(x+1, y)
	c, d := gc.index(x, y+1), gc.index(x+1, y+1)
	if gc.Conn == Conn4 {
		if gc.IsLand(x, y) && gc.IsLand(x+1, y) && gc.IsLand(x, y+1) && gc.IsLand(x+1, y+1) {
			return [][]int{{a, b, d}, {a, c, d}}
		}

		return nil
	}

	land := make([]int, 0, 4)
	for _, p := range [][3]int{{x, y, a}, {x + 1, y, b}, {x, y + 1, c}, {x + 1, y + 1, d}} {
		if gc.IsLand(p[0], p[1]) {
			land = append(land, p[2])
		}
	}
	if len(land) < 2 {
		return nil
	}

	return [][]int{land}
}

// Complex returns the land complex. It is shared, not copied; complexes are
// immutable.
func (gc *GridComplex) Complex() *core.Complex {
	return gc.complex
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gc *GridComplex) InBounds(x, y int) bool {
	return x >= 0 && x < gc.Width && y >= 0 && y < gc.Height
}

// IsLand reports whether (x,y) is inside the grid and at or above the threshold.
func (gc *GridComplex) IsLand(x, y int) bool {
	return gc.InBounds(x, y) && gc.CellValues[y][x] >= gc.LandThreshold
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gc *GridComplex) NeighborOffsets() [][2]int {
	return gc.offsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gc *GridComplex) index(x, y int) int {
	return y*gc.Width + x
}

// Coordinate converts a row‑major index (a vertex label) back to (x,y).
// Complexity: O(1).
func (gc *GridComplex) Coordinate(idx int) (x, y int) {
	return idx % gc.Width, idx / gc.Width
}
