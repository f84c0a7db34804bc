package core_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

func TestNewSimplex(t *testing.T) {
	s, err := core.NewSimplex(3, 1, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, core.Simplex{1, 2, 3}, s)
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, "1,2,3", s.Key())
	assert.Equal(t, "(1,2,3)", s.String())

	_, err = core.NewSimplex()
	assert.True(t, errors.Is(err, core.ErrInvalidParameter))

	_, err = core.NewSimplex(0, -4)
	var pe *core.InvalidParameterError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, -4, pe.Value)
}

// TestKey_Injective guards against ambiguous key encodings such as (1,23) vs (12,3).
func TestKey_Injective(t *testing.T) {
	a := core.Simplex{1, 23}
	b := core.Simplex{12, 3}
	assert.NotEqual(t, a.Key(), b.Key())
}

// TestFaces_DeletionOrder pins the face order used by boundary matrices.
func TestFaces_DeletionOrder(t *testing.T) {
	faces := core.Faces(core.Simplex{0, 1, 2})
	assert.Equal(t, []core.Simplex{{1, 2}, {0, 2}, {0, 1}}, faces)
	assert.Nil(t, core.Faces(core.Simplex{7}))
}

// TestFaces_PairwiseDistinct asserts that no simplex ever yields the same face
// twice. Boundary matrices rely on this to assign entries directly instead of
// accumulating them mod 2.
func TestFaces_PairwiseDistinct(t *testing.T) {
	for k := 2; k <= 8; k++ {
		core.Combinations(9, k, func(s core.Simplex) bool {
			seen := make(map[string]bool, k)
			for _, f := range core.Faces(s) {
				require.Len(t, f, k-1)
				require.False(t, seen[f.Key()], "duplicate face %v of %v", f, s)
				seen[f.Key()] = true
			}

			return true
		})
	}
}

func TestCompare_TupleOrder(t *testing.T) {
	assert.Negative(t, core.Compare(core.Simplex{0, 1}, core.Simplex{0, 2}))
	assert.Negative(t, core.Compare(core.Simplex{0}, core.Simplex{0, 1}))
	assert.Positive(t, core.Compare(core.Simplex{1}, core.Simplex{0, 5}))
	assert.Zero(t, core.Compare(core.Simplex{2, 3}, core.Simplex{2, 3}))
	assert.True(t, core.Simplex{2, 3}.Equal(core.Simplex{2, 3}))
}

func TestCombinations_Lexicographic(t *testing.T) {
	var got []core.Simplex
	core.Combinations(4, 2, func(s core.Simplex) bool {
		got = append(got, slices.Clone(s))
		return true
	})
	want := []core.Simplex{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	assert.Equal(t, want, got)
}

func TestCombinations_Degenerate(t *testing.T) {
	calls := 0
	count := func(core.Simplex) bool { calls++; return true }
	core.Combinations(3, 0, count)
	core.Combinations(3, 4, count)
	core.Combinations(-1, 1, count)
	assert.Zero(t, calls)

	core.Combinations(5, 5, count)
	assert.Equal(t, 1, calls)
}

func TestCombinations_EarlyStop(t *testing.T) {
	calls := 0
	core.Combinations(10, 3, func(core.Simplex) bool {
		calls++
		return calls < 4
	})
	assert.Equal(t, 4, calls)
}

func TestSubsets(t *testing.T) {
	var got []core.Simplex
	core.Subsets(core.Simplex{2, 5, 9}, func(s core.Simplex) bool {
		got = append(got, slices.Clone(s))
		return true
	})
	want := []core.Simplex{{2}, {5}, {9}, {2, 5}, {2, 9}, {5, 9}, {2, 5, 9}}
	assert.Equal(t, want, got)

	n := 0
	core.Subsets(core.Simplex{0, 1, 2, 3, 4, 5}, func(core.Simplex) bool { n++; return true })
	assert.Equal(t, 63, n)
}
