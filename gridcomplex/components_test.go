// File: gridcomplex/components_test.go
package gridcomplex

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
	"github.com/mkerr316/multiscale-tda-geomorphology/homology"
)

func mustGrid(t *testing.T, values [][]int, conn Connectivity) *GridComplex {
	t.Helper()
	opts := DefaultGridOptions()
	opts.Conn = conn
	gc, err := NewGridComplex(values, opts)
	require.NoError(t, err)

	return gc
}

func sizes(comps [][]int) []int {
	out := make([]int, len(comps))
	for i, c := range comps {
		out[i] = len(c)
	}
	sort.Ints(out)

	return out
}

// TestConnectedComponents_Simple4 tests ConnectedComponents on a simple 4×3 grid
// with orthogonal connectivity (Conn4).
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 islands of sizes 4 and 2, no triangles (no full 2×2 block).
func TestConnectedComponents_Simple4(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gc := mustGrid(t, grid, Conn4)

	comps := gc.ConnectedComponents()
	assert.Equal(t, []int{2, 4}, sizes(comps))

	s := homology.Analyze(gc.Complex())
	assert.Equal(t, []int{6, 4}, s.Counts)
	assert.Equal(t, homology.Betti{0: 2, 1: 0}, s.Betti)
}

// TestConnectedComponents_Simple8 uses the same grid with diagonals: the
// corner contact at (1,1)–(2,2) merges the islands and the two L-shaped
// blocks become triangles.
func TestConnectedComponents_Simple8(t *testing.T) {
	grid := [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	}
	gc := mustGrid(t, grid, Conn8)

	assert.Len(t, gc.ConnectedComponents(), 1)

	s := homology.Analyze(gc.Complex())
	assert.Equal(t, []int{6, 7, 2}, s.Counts)
	assert.Equal(t, homology.Betti{0: 1, 1: 0, 2: 0}, s.Betti)
	assert.True(t, gc.Complex().Contains(1, 4, 5))
	assert.True(t, gc.Complex().Contains(5, 10))
}

// TestConnectedComponents_Diagonal8 tests an X-shaped pattern that only
// connects under Conn8.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
func TestConnectedComponents_Diagonal8(t *testing.T) {
	grid := [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	gc := mustGrid(t, grid, Conn8)
	comps := gc.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)
	assert.Equal(t, homology.Betti{0: 1, 1: 0}, homology.BettiNumbers(gc.Complex()), "the X is a tree")

	gc4 := mustGrid(t, grid, Conn4)
	assert.Len(t, gc4.ConnectedComponents(), 9)
}

// TestLakes checks β₁ on rings of land around water.
func TestLakes(t *testing.T) {
	ring := [][]int{
		{1, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	diamond := [][]int{
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	}
	full := [][]int{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}
	tests := []struct {
		name   string
		grid   [][]int
		conn   Connectivity
		counts []int
		betti  homology.Betti
	}{
		{"ring/4", ring, Conn4, []int{8, 8}, homology.Betti{0: 1, 1: 1}},
		{"ring/8", ring, Conn8, []int{8, 12, 4}, homology.Betti{0: 1, 1: 1, 2: 0}},
		{"diamond/4", diamond, Conn4, []int{4}, homology.Betti{0: 4}},
		{"diamond/8", diamond, Conn8, []int{4, 4}, homology.Betti{0: 1, 1: 1}},
		{"full/4", full, Conn4, []int{9, 16, 8}, homology.Betti{0: 1, 1: 0, 2: 0}},
		{"full/8", full, Conn8, []int{9, 20, 16, 4}, homology.Betti{0: 1, 1: 0, 2: 0, 3: 0}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gc := mustGrid(t, tc.grid, tc.conn)
			s := homology.Analyze(gc.Complex())
			assert.Equal(t, tc.counts, s.Counts)
			assert.Equal(t, tc.betti, s.Betti)
			assert.True(t, s.Consistent())
		})
	}
}

// TestComponents_MatchBetti0 checks on random rasters that the BFS island
// count equals β₀ of the land complex, for both connectivities.
func TestComponents_MatchBetti0(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 40; i++ {
		h, w := 1+rng.Intn(9), 1+rng.Intn(9)
		grid := make([][]int, h)
		for y := range grid {
			grid[y] = make([]int, w)
			for x := range grid[y] {
				grid[y][x] = rng.Intn(4)
			}
		}
		for _, conn := range []Connectivity{Conn4, Conn8} {
			gc, err := NewGridComplex(grid, GridOptions{LandThreshold: 1 + rng.Intn(3), Conn: conn})
			require.NoError(t, err)

			s := homology.Analyze(gc.Complex())
			assert.Equal(t, len(gc.ConnectedComponents()), s.Betti[0], "grid %v conn %s", grid, conn)
			assert.True(t, s.Consistent())

			_, err = core.FromSimplices(gc.Complex().Simplices())
			require.NoError(t, err)
		}
	}
}

// TestConnectedComponents_EmptyAndAllWater tests edge cases:
//   - completely water grid → zero components, empty complex
//   - single‐cell land grid → one component of size 1
func TestConnectedComponents_EmptyAndAllWater(t *testing.T) {
	gc1 := mustGrid(t, [][]int{{0, 0}, {0, 0}}, Conn4)
	assert.Empty(t, gc1.ConnectedComponents())
	assert.True(t, gc1.Complex().IsEmpty())
	assert.Equal(t, homology.Betti{0: 0}, homology.BettiNumbers(gc1.Complex()))

	gc2 := mustGrid(t, [][]int{{0, 1}}, Conn8)
	comps := gc2.ConnectedComponents()
	require.Len(t, comps, 1)
	assert.Equal(t, []int{1}, comps[0])
	assert.Equal(t, []int{1}, gc2.Complex().Vertices())
}

// TestLandThreshold checks that the threshold, not a fixed value, separates
// land from water.
func TestLandThreshold(t *testing.T) {
	grid := [][]int{{3, 1, 3}}
	gc, err := NewGridComplex(grid, GridOptions{LandThreshold: 2, Conn: Conn4})
	require.NoError(t, err)
	assert.Len(t, gc.ConnectedComponents(), 2)
	assert.False(t, gc.IsLand(1, 0))
	assert.False(t, gc.IsLand(3, 0), "out of bounds is never land")

	gc, err = NewGridComplex(grid, GridOptions{LandThreshold: -5, Conn: Conn4})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, gc.Complex().Counts())
}

// TestNewGridComplex_Invalid ensures NewGridComplex rejects bad inputs.
func TestNewGridComplex_Invalid(t *testing.T) {
	_, err := NewGridComplex(nil, DefaultGridOptions())
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = NewGridComplex([][]int{{}}, DefaultGridOptions())
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = NewGridComplex([][]int{{1}, {}}, DefaultGridOptions())
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = NewGridComplex([][]int{{1}}, GridOptions{Conn: Connectivity(6)})
	assert.ErrorIs(t, err, ErrConnectivity)
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestNewGridComplex_CopiesInput(t *testing.T) {
	grid := [][]int{{1, 1}}
	gc := mustGrid(t, grid, Conn4)
	grid[0][1] = 0
	assert.Equal(t, 1, gc.CellValues[0][1])
	assert.Equal(t, []int{2, 1}, gc.Complex().Counts())
}

func TestCoordinate(t *testing.T) {
	gc := mustGrid(t, [][]int{{0, 0, 0}, {0, 0, 1}}, Conn4)
	x, y := gc.Coordinate(5)
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
	assert.Equal(t, 5, gc.index(x, y))
	assert.Len(t, gc.NeighborOffsets(), 4)
}

func TestParseConnectivity(t *testing.T) {
	c, err := ParseConnectivity("8")
	require.NoError(t, err)
	assert.Equal(t, Conn8, c)
	assert.Equal(t, "4", Conn4.String())

	_, err = ParseConnectivity("6")
	assert.ErrorIs(t, err, ErrConnectivity)
}
