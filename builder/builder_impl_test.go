// File: builder_impl_test.go
// Package builder_test contains functional tests for the deterministic
// constructors in the builder package, verifying f-vectors, labels and
// composition through BuildComplex.
package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkerr316/multiscale-tda-geomorphology/builder"
	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// build runs BuildComplex without options and fails the test on error.
func build(t *testing.T, cons ...builder.Constructor) *core.Complex {
	t.Helper()
	c, err := builder.BuildComplex(nil, cons...)
	require.NoError(t, err)

	return c
}

// TestBuilders_Functional runs table-driven functional tests for each fixture.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		counts []int // expected f-vector
	}{
		{"FullSimplex(1)", builder.FullSimplex(1), []int{1}},
		{"FullSimplex(4)", builder.FullSimplex(4), []int{4, 6, 4, 1}},
		{"SphereBoundary(2)", builder.SphereBoundary(2), []int{2}},
		{"SphereBoundary(4)", builder.SphereBoundary(4), []int{4, 6, 4}},
		{"Cycle(5)", builder.Cycle(5), []int{5, 5}},
		{"Path(1)", builder.Path(1), []int{1}},
		{"Path(4)", builder.Path(4), []int{4, 3}},
		{"Star(5)", builder.Star(5), []int{5, 4}},
		{"Wheel(6)", builder.Wheel(6), []int{6, 10, 5}},
		{"Complete(1)", builder.Complete(1), []int{1}},
		{"Complete(5)", builder.Complete(5), []int{5, 10}},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), []int{5, 6}},
		{"Tetrahedron", builder.PlatonicSurface(builder.Tetrahedron), []int{4, 6, 4}},
		{"Cube", builder.PlatonicSurface(builder.Cube), []int{8, 18, 12}},
		{"Octahedron", builder.PlatonicSurface(builder.Octahedron), []int{6, 12, 8}},
		{"Dodecahedron", builder.PlatonicSurface(builder.Dodecahedron), []int{20, 54, 36}},
		{"Icosahedron", builder.PlatonicSurface(builder.Icosahedron), []int{12, 30, 20}},
		{"Torus", builder.Torus(), []int{7, 21, 14}},
		{"ProjectivePlane", builder.ProjectivePlane(), []int{6, 15, 10}},
		{"Cone(Cycle(4))", builder.Cone(builder.Cycle(4)), []int{5, 8, 4}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := build(t, tc.ctor)
			assert.Equal(t, tc.counts, c.Counts())

			// labels are 0..V-1
			vs := c.Vertices()
			for i, v := range vs {
				assert.Equal(t, i, v)
			}

			// re-validation through the strict constructor never fails
			_, err := core.FromSimplices(c.Simplices())
			require.NoError(t, err)
		})
	}
}

// TestSurfaces_ClosedPseudomanifold checks that every edge of every surface
// fixture lies on exactly two triangles.
func TestSurfaces_ClosedPseudomanifold(t *testing.T) {
	t.Parallel()

	surfaces := map[string]builder.Constructor{
		"Tetrahedron":     builder.PlatonicSurface(builder.Tetrahedron),
		"Cube":            builder.PlatonicSurface(builder.Cube),
		"Octahedron":      builder.PlatonicSurface(builder.Octahedron),
		"Dodecahedron":    builder.PlatonicSurface(builder.Dodecahedron),
		"Icosahedron":     builder.PlatonicSurface(builder.Icosahedron),
		"Torus":           builder.Torus(),
		"ProjectivePlane": builder.ProjectivePlane(),
		"SphereBoundary":  builder.SphereBoundary(4),
	}
	for name, ctor := range surfaces {
		t.Run(name, func(t *testing.T) {
			c := build(t, ctor)
			cofaces := make(map[string]int)
			for _, s := range c.Simplices() {
				if s.Dim() != 2 {
					continue
				}
				for _, e := range core.Faces(s) {
					cofaces[e.Key()]++
				}
			}
			for _, s := range c.Simplices() {
				if s.Dim() == 1 {
					assert.Equal(t, 2, cofaces[s.Key()], "edge %v", s)
				}
			}
		})
	}
}

// TestBuildComplex_Composition checks unions, relabelling and the empty build.
func TestBuildComplex_Composition(t *testing.T) {
	t.Parallel()

	c := build(t, builder.Cycle(3), builder.Shift(3, builder.Cycle(4)))
	assert.Equal(t, []int{7, 7}, c.Counts())
	assert.True(t, c.Contains(3, 6))
	assert.False(t, c.Contains(2, 3))

	// overlapping constructors merge
	c = build(t, builder.Path(3), builder.Cycle(3))
	assert.Equal(t, []int{3, 3}, c.Counts())

	empty := build(t)
	assert.True(t, empty.IsEmpty())
	assert.Equal(t, -1, empty.Dimension())

	same := build(t, builder.Shift(0, builder.Path(2)))
	assert.Equal(t, []int{2, 1}, same.Counts())
}

func TestCone_EmptyBase(t *testing.T) {
	t.Parallel()

	c := build(t, builder.Cone(builder.BottomUp(0, nil)))
	assert.Equal(t, []int{1}, c.Counts())
	assert.Equal(t, []int{0}, c.Vertices())
}

// TestBuilders_Errors asserts sentinel errors via errors.Is (no string matching).
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"FullSimplex(0)", builder.FullSimplex(0), builder.ErrTooFewVertices},
		{"SphereBoundary(1)", builder.SphereBoundary(1), builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(0)", builder.Path(0), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"CompleteBipartite(0,2)", builder.CompleteBipartite(0, 2), builder.ErrTooFewVertices},
		{"CompleteBipartite(2,0)", builder.CompleteBipartite(2, 0), builder.ErrTooFewVertices},
		{"PlatonicSurface(99)", builder.PlatonicSurface(builder.PlatonicName(99)), builder.ErrUnknownSolid},
		{"Shift(-1)", builder.Shift(-1, builder.Path(2)), builder.ErrTooFewVertices},
		{"Shift(nil)", builder.Shift(1, nil), builder.ErrConstructFailed},
		{"Cone(nil)", builder.Cone(nil), builder.ErrConstructFailed},
		{"Cone(Cycle(1))", builder.Cone(builder.Cycle(1)), builder.ErrTooFewVertices},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildComplex(nil, tc.ctor)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

// TestBuilders_ParameterErrorsWrapCore checks the shared parameter sentinel.
func TestBuilders_ParameterErrorsWrapCore(t *testing.T) {
	t.Parallel()

	_, err := builder.BuildComplex(nil, builder.Cycle(2))
	require.ErrorIs(t, err, core.ErrInvalidParameter)

	var pe *core.InvalidParameterError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, builder.MethodCycle, pe.Op)
	assert.Equal(t, 2, pe.Value)

	// composition errors are not parameter errors
	_, err = builder.BuildComplex(nil, nil)
	assert.False(t, errors.Is(err, core.ErrInvalidParameter))
}

func TestPlatonicName_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Icosahedron", builder.Icosahedron.String())
	assert.Equal(t, "Unknown", builder.PlatonicName(-1).String())
}
