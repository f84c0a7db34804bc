// SPDX-License-Identifier: MIT
// Package gridcomplex defines core types, options, and sentinel errors
// for turning raster grids into simplicial complexes.
package gridcomplex

import (
	"errors"
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// Sentinel errors for gridcomplex operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridcomplex: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridcomplex: all rows must have the same length")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridcomplex: component index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridcomplex: no path between specified components")
	// ErrConnectivity indicates an unsupported neighbourhood.
	ErrConnectivity = fmt.Errorf("gridcomplex: connectivity must be 4 or 8: %w", core.ErrInvalidParameter)
	// ErrBadCell indicates a grid file cell that is not an integer.
	ErrBadCell = errors.New("gridcomplex: cell is not an integer")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "4"
	case Conn8:
		return "8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// ParseConnectivity accepts "4" or "8".
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4":
		return Conn4, nil
	case "8":
		return Conn8, nil
	}

	return Conn4, fmt.Errorf("%q: %w", s, ErrConnectivity)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered "land".
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are land), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
	}
}

// GridComplex is the land part of a 2D integer grid viewed as a simplicial
// complex. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Land cells become vertices labelled y*Width + x.
type GridComplex struct {
	Width, Height int
	CellValues    [][]int
	Conn          Connectivity
	LandThreshold int
	offsets       [][2]int
	complex       *core.Complex
}
