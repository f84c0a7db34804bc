// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/gridcomplex
//
// bridge.go — cheapest causeway between two islands.
//
// Cost model: entering a water cell costs 1, entering land costs 0. Cells are
// settled in cost layers: layer c holds every cell reachable by filling c water
// cells, and a layer is closed under free land moves before the next one opens.
// The first settled cell of the target island ends the search.
//
// Filling the path's water cells up to LandThreshold joins the two islands, so
// β₀ of the filled complex is at least one lower. Crossing a third island on
// the way merges it too.

package gridcomplex

import (
	"slices"

	"github.com/mkerr316/multiscale-tda-geomorphology/homology"
)

// Causeway is a cheapest water crossing between two islands together with the
// land complex obtained by filling it.
type Causeway struct {
	From, To int              // island indices, in ConnectedComponents order
	Path     []int            // row-major cells from island From to island To, ends included
	Fill     []int            // water cells of Path in path order; len(Fill) is the cost
	Filled   *GridComplex     // the grid with Fill raised to LandThreshold
	Before   homology.Summary // topology of the original land
	After    homology.Summary // topology of Filled
}

// Cost returns the number of water cells to fill.
func (c *Causeway) Cost() int { return len(c.Fill) }

// Bridge plans the causeway from island from to island to.
// Returns ErrComponentIndex for an index outside ConnectedComponents().
//
// Complexity: O(W·H·d) search plus one rebuild and analysis of the filled grid.
func (gc *GridComplex) Bridge(from, to int) (*Causeway, error) {
	comps := gc.ConnectedComponents()
	if from < 0 || from >= len(comps) || to < 0 || to >= len(comps) {
		return nil, ErrComponentIndex
	}

	path := gc.cheapestCrossing(comps[from], comps[to])
	if path == nil {
		return nil, ErrNoPath
	}

	values := gc.values()
	var fill []int
	for _, idx := range path {
		x, y := gc.Coordinate(idx)
		if !gc.IsLand(x, y) {
			fill = append(fill, idx)
			values[y][x] = gc.LandThreshold
		}
	}
	filled, err := NewGridComplex(values, GridOptions{LandThreshold: gc.LandThreshold, Conn: gc.Conn})
	if err != nil {
		return nil, err
	}

	return &Causeway{
		From:   from,
		To:     to,
		Path:   path,
		Fill:   fill,
		Filled: filled,
		Before: homology.Analyze(gc.Complex()),
		After:  homology.Analyze(filled.Complex()),
	}, nil
}

// cheapestCrossing returns a minimum-cost path from any cell of src to any
// cell of dst, or nil when dst is unreachable.
func (gc *GridComplex) cheapestCrossing(src, dst []int) []int {
	n := gc.Width * gc.Height
	target := make([]bool, n)
	for _, i := range dst {
		target[i] = true
	}
	cost := make([]int, n)
	prev := make([]int, n)
	settled := make([]bool, n)
	for i := range cost {
		cost[i] = n + 1
		prev[i] = -1
	}

	layer := slices.Clone(src)
	for _, i := range src {
		cost[i] = 0
	}
	for c := 0; len(layer) > 0; c++ {
		var next []int
		for len(layer) > 0 {
			u := layer[len(layer)-1]
			layer = layer[:len(layer)-1]
			if settled[u] {
				continue
			}
			settled[u] = true
			if target[u] {
				return gc.trace(prev, u)
			}
			ux, uy := gc.Coordinate(u)
			for _, d := range gc.offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gc.InBounds(vx, vy) {
					continue
				}
				v := gc.index(vx, vy)
				if settled[v] {
					continue
				}
				if gc.IsLand(vx, vy) {
					if c < cost[v] {
						cost[v], prev[v] = c, u
						layer = append(layer, v)
					}
				} else if c+1 < cost[v] {
					cost[v], prev[v] = c+1, u
					next = append(next, v)
				}
			}
		}
		layer = next
	}

	return nil
}

// trace walks predecessors back from end and returns the path in forward order.
func (gc *GridComplex) trace(prev []int, end int) []int {
	var path []int
	for at := end; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	slices.Reverse(path)

	return path
}

// values returns a deep copy of the cell values.
func (gc *GridComplex) values() [][]int {
	out := make([][]int, gc.Height)
	for y := range out {
		out[y] = slices.Clone(gc.CellValues[y])
	}

	return out
}
