// Package sampling draws many random complexes from one generator and
// summarises their topology: the Euler characteristic distribution (mean,
// median, quartiles, range, histogram) and per-dimension Betti ranges.
//
// Samples are independent. Sample i is built with its own
// rand.New(rand.NewSource(Seed+i)), so a Result depends only on the Config and
// never on Workers or scheduling. Generation of different samples runs in
// parallel on an errgroup bounded by Workers; homology of one complex stays
// sequential.
//
// Every sample is checked against the Euler–Poincaré identity; the number of
// violations is reported in Summary and must be zero.
package sampling
