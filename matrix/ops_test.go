package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkerr316/multiscale-tda-geomorphology/matrix"
)

func mustRows(t *testing.T, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// TestRank_Table covers the rank of small matrices whose rank over GF(2)
// differs from the rank over the reals.
func TestRank_Table(t *testing.T) {
	cases := []struct {
		name string
		rows [][]int
		want int
	}{
		{"zero", [][]int{{0, 0}, {0, 0}}, 0},
		{"identity", [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 3},
		{"xor-dependent", [][]int{{1, 1, 0}, {0, 1, 1}, {1, 0, 1}}, 2},
		{"duplicate rows", [][]int{{1, 0, 1}, {1, 0, 1}}, 1},
		// det = 2 over the reals, 0 over GF(2)
		{"even determinant", [][]int{{1, 1}, {1, -1}}, 1},
		{"needs swap", [][]int{{0, 1}, {1, 0}}, 2},
		{"wide", [][]int{{1, 1, 1, 1}}, 1},
		{"tall", [][]int{{1}, {1}, {0}, {1}}, 1},
		// boundary of the triangle (0,1,2): rows 0,1,2; cols 01,02,12
		{"triangle boundary", [][]int{{1, 1, 0}, {1, 0, 1}, {0, 1, 1}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := matrix.Rank(mustRows(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestRank_EmptyShapes(t *testing.T) {
	for _, shape := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		m, err := matrix.NewDense(shape[0], shape[1])
		require.NoError(t, err)
		r, err := matrix.Rank(m)
		require.NoError(t, err)
		assert.Zero(t, r, "shape %v", shape)
	}

	_, err := matrix.Rank(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestRank_DoesNotMutate checks that elimination works on a private copy and is
// repeatable.
func TestRank_DoesNotMutate(t *testing.T) {
	m := mustRows(t, [][]int{{0, 1, 1}, {1, 1, 0}, {1, 0, 1}})
	before := m.Clone()

	r1, err := matrix.Rank(m)
	require.NoError(t, err)
	r2, err := matrix.Rank(m)
	require.NoError(t, err)

	assert.Equal(t, r1, r2)
	assert.True(t, before.Equal(m))
}

func TestRank_TransposeInvariant(t *testing.T) {
	m := mustRows(t, [][]int{{1, 0, 1, 1}, {0, 1, 1, 0}, {1, 1, 0, 1}})
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)

	r, _ := matrix.Rank(m)
	rt, _ := matrix.Rank(mt)
	assert.Equal(t, r, rt)
	assert.Equal(t, 4, mt.Rows())
}

func TestMul(t *testing.T) {
	a := mustRows(t, [][]int{{1, 1}, {0, 1}})
	b := mustRows(t, [][]int{{1, 0}, {1, 1}})
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	// [[1+1, 1], [1, 1]] mod 2
	assert.True(t, mustRows(t, [][]int{{0, 1}, {1, 1}}).Equal(p))

	_, err = matrix.Mul(a, mustRows(t, [][]int{{1, 0, 1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMul_InnerZero: (r×0)·(0×c) is the r×c zero matrix.
func TestMul_InnerZero(t *testing.T) {
	a, _ := matrix.NewDense(3, 0)
	b, _ := matrix.NewDense(0, 2)
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	r, c := p.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.True(t, p.IsZero())
}
