// Package tda is the entry point to a small engine for the combinatorial
// topology of finite simplicial complexes and the raster terrains built
// from them.
//
// What is in the module?
//
//	A pure-Go engine plus a sampling driver that brings together:
//		• Complexes: validated, downward-closed simplex sets and facet closure
//		• Generators: bottom-up growth, top-down erosion, random flag complexes
//		• Fixtures: simplices, spheres, cycles, wheels, Platonic surfaces, T², RP²
//		• Homology: Euler characteristic, boundary matrices, GF(2) Betti numbers
//		• Terrain: land/water grids as complexes, islands, lakes, threshold sweeps
//		• Statistics: parallel seeded sampling with quartiles and histograms
//
// Packages:
//
//	core/        — Simplex, Complex, combinations and shared error types
//	matrix/      — dense GF(2) matrices and rank by elimination
//	builder/     — functional-options constructors, deterministic and random
//	homology/    — grouping by dimension, ∂ₖ, ranks, χ and βₖ
//	gridcomplex/ — integer rasters as complexes, components and bridges
//	sampling/    — the sampling driver and its descriptive statistics
//	cmd/topostat — CLI: sample, betti, grid, runs
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╲ │
//	    3───2
//
//	facets {0,1,2} and {0,2,3}: a disk, χ = 4 − 5 + 2 = 1, β = (1, 0, 0).
//
//	go install github.com/mkerr316/multiscale-tda-geomorphology/cmd/topostat@latest
package tda
