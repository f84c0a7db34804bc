// Package core provides the central data model of the topology engine: the
// Simplex value and the immutable, downward-closed Complex.
//
// A k-simplex is a strictly increasing list of k+1 non-negative vertex labels.
// A Complex is a set of simplices closed under taking faces:
//
//	for every s with dim(s) ≥ 1 and every vertex v ∈ s, s∖{v} is a member.
//
// Construction:
//
//	New(simplices ...[]int)        // explicit set, validated, never repaired
//	FromSimplices([]Simplex)       // same, typed input
//	FromMaximalSimplices([][]int)  // facets, every non-empty subset is added
//	Union(cs ...*Complex)          // set union, closed by construction
//
// Queries:
//
//	Simplices()  Dimension()  Len()  Contains(v...)  Vertices()  Counts()  Facets()
//
// Errors:
//
//	ErrInvalidComplex    - missing face; the concrete value is *InvalidComplexError.
//	ErrInvalidParameter  - negative label, empty tuple; *InvalidParameterError.
//
// Quick ASCII example — the boundary of a triangle (a loop):
//
//	    0
//	   / \
//	  1───2
//
//	c, _ := core.New([]int{0}, []int{1}, []int{2}, []int{0, 1}, []int{1, 2}, []int{0, 2})
//	c.Dimension() // 1
//
// Complexity: membership is a map lookup on Simplex.Key; construction is
// linear in the number of simplices times the squared simplex size.
package core
