// Package gridcomplex turns a 2D raster of integer cells (a coarse elevation
// model, a land/water mask) into a simplicial complex, so the homology engine
// can count islands and enclosed lakes.
//
// What:
//
//   - GridComplex wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Complex() is the land complex: land cells are vertices, neighbours are
//     joined according to GridOptions.Conn, and full 2×2 blocks are filled.
//   - ConnectedComponents identifies islands by BFS; their count equals β₀.
//   - Bridge plans the cheapest causeway between two islands and returns the
//     filled grid with its homology before and after.
//   - Sweep analyses the same raster at several thresholds.
//
// β₁ of the land complex counts lakes: water regions enclosed by land under
// the chosen connectivity.
//
// Complexity:
//
//   - NewGridComplex: O(W×H) plus the closure of at most W×H blocks.
//   - ConnectedComponents, Bridge: O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrConnectivity: Conn is neither Conn4 nor Conn8.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no conversion path exists between specified components.
//   - ErrBadCell: ReadCSV met a non-integer cell.
package gridcomplex
