// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/gridcomplex
//
// sweep.go — topology of a raster at several land thresholds.
//
// Each level is analysed independently (no persistence pairing): the land
// complex is rebuilt at the threshold and handed to homology.Analyze.

package gridcomplex

import (
	"fmt"
	"slices"

	"github.com/mkerr316/multiscale-tda-geomorphology/homology"
)

// Level is the topology of the land at one threshold.
type Level struct {
	Threshold int
	Islands   int
	Summary   homology.Summary
}

// Sweep analyses values at every threshold, in ascending threshold order.
// Duplicate thresholds are analysed once.
func Sweep(values [][]int, thresholds []int, conn Connectivity) ([]Level, error) {
	ts := slices.Clone(thresholds)
	slices.Sort(ts)
	ts = slices.Compact(ts)

	levels := make([]Level, 0, len(ts))
	for _, t := range ts {
		gc, err := NewGridComplex(values, GridOptions{LandThreshold: t, Conn: conn})
		if err != nil {
			return nil, fmt.Errorf("Sweep(threshold=%d): %w", t, err)
		}
		levels = append(levels, Level{
			Threshold: t,
			Islands:   len(gc.ConnectedComponents()),
			Summary:   homology.Analyze(gc.Complex()),
		})
	}

	return levels, nil
}

// Thresholds returns the distinct cell values of a grid in ascending order,
// the natural sweep levels for that grid.
func Thresholds(values [][]int) []int {
	var ts []int
	for _, row := range values {
		ts = append(ts, row...)
	}
	slices.Sort(ts)

	return slices.Compact(ts)
}
