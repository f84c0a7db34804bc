// Package matrix_test contains unit tests for the GF(2) Dense type.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkerr316/multiscale-tda-geomorphology/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions only.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 5) // empty shapes are values
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	r, c := m.Shape()
	require.Equal(t, 0, r)
	require.Equal(t, 5, c)
}

// TestAtSetOutOfRange ensures accessors return ErrOutOfRange instead of panicking.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Flip(0, -1), matrix.ErrOutOfRange)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetReducesModTwo checks that writes are reduced into {0,1}.
func TestSetReducesModTwo(t *testing.T) {
	m, err := matrix.NewDense(1, 4)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 0, 3))
	require.NoError(t, m.Set(0, 1, 2))
	require.NoError(t, m.Set(0, 2, -1))
	require.NoError(t, m.Flip(0, 3))

	row, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 1, 1}, row)

	require.NoError(t, m.Flip(0, 3))
	v, err := m.At(0, 3)
	require.NoError(t, err)
	require.Zero(t, v)
	require.Equal(t, 2, m.NonZeros())
}

func TestFromRows(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 0}, {0, 1}, {1, 1}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, "[1 0]\n[0 1]\n[1 1]\n", m.String())

	_, err = matrix.FromRows([][]int{{1, 0}, {1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	empty, err := matrix.FromRows(nil)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
	require.True(t, empty.IsZero())
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.FromRows([][]int{{1, 0}, {0, 1}})
	require.NoError(t, err)

	c := m.Clone()
	require.True(t, m.Equal(c))
	require.NoError(t, c.Flip(0, 1))
	require.False(t, m.Equal(c))

	v, _ := m.At(0, 1)
	require.Zero(t, v)
}

func TestEqual_Shapes(t *testing.T) {
	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(3, 2)
	require.False(t, a.Equal(b))

	var nilDense *matrix.Dense
	require.False(t, a.Equal(nilDense))
}
