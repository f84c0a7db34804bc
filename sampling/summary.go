// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/sampling
//
// summary.go — descriptive statistics over samples.
//
// Quantiles use linear interpolation between closest ranks: for sorted values
// v₀..vₙ₋₁ the q-quantile is v[⌊h⌋] + (h−⌊h⌋)(v[⌊h⌋+1] − v[⌊h⌋]) with h = q(n−1).

package sampling

import (
	"maps"
	"math"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Stats describes one integer-valued variable across samples.
type Stats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Q1     float64 `json:"q1" yaml:"q1"`
	Q3     float64 `json:"q3" yaml:"q3"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Min    int     `json:"min" yaml:"min"`
	Max    int     `json:"max" yaml:"max"`
}

// Bin is one bar of an integer histogram.
type Bin struct {
	Value int `json:"value" yaml:"value"`
	Count int `json:"count" yaml:"count"`
}

// BettiStats describes βₖ for one k across samples.
type BettiStats struct {
	Dim       int     `json:"dim" yaml:"dim"`
	Mean      float64 `json:"mean" yaml:"mean"`
	Min       int     `json:"min" yaml:"min"`
	Max       int     `json:"max" yaml:"max"`
	Histogram []Bin   `json:"histogram" yaml:"histogram"`
}

// Summary aggregates a set of samples.
type Summary struct {
	Runs                    int          `json:"runs" yaml:"runs"`
	Euler                   Stats        `json:"euler" yaml:"euler"`
	EulerHistogram          []Bin        `json:"euler_histogram" yaml:"euler_histogram"`
	Dimension               Stats        `json:"dimension" yaml:"dimension"`
	Betti                   []BettiStats `json:"betti" yaml:"betti"`
	EulerPoincareViolations int          `json:"euler_poincare_violations" yaml:"euler_poincare_violations"`
}

// MaxBettiDim returns the largest k present in Betti, or -1.
func (s Summary) MaxBettiDim() int {
	if len(s.Betti) == 0 {
		return -1
	}

	return s.Betti[len(s.Betti)-1].Dim
}

// Summarize computes the summary of samples. Betti dimensions are the union of
// the dimensions of every sample; a sample lacking dimension k counts βₖ = 0.
// An empty input yields a zero Summary.
func Summarize(samples []Sample) Summary {
	sum := Summary{Runs: len(samples)}
	if len(samples) == 0 {
		return sum
	}

	euler := make([]int, len(samples))
	dims := make([]int, len(samples))
	seen := make(map[int]struct{})
	for i, s := range samples {
		euler[i] = s.Euler
		dims[i] = s.Dimension
		for k := range s.Betti {
			seen[k] = struct{}{}
		}
		if !s.Consistent {
			sum.EulerPoincareViolations++
		}
	}
	sum.Euler = Describe(euler)
	sum.EulerHistogram = Histogram(euler)
	sum.Dimension = Describe(dims)

	for _, k := range slices.Sorted(maps.Keys(seen)) {
		vals := make([]int, len(samples))
		for i, s := range samples {
			vals[i] = s.Betti[k]
		}
		d := Describe(vals)
		sum.Betti = append(sum.Betti, BettiStats{
			Dim:       k,
			Mean:      d.Mean,
			Min:       d.Min,
			Max:       d.Max,
			Histogram: Histogram(vals),
		})
	}

	return sum
}

// Describe returns the descriptive statistics of values. StdDev is the
// population standard deviation. An empty input yields a zero Stats.
func Describe(values []int) Stats {
	if len(values) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	xs := make([]float64, len(sorted))
	for i, v := range sorted {
		xs[i] = float64(v)
	}
	mean, std := stat.PopMeanStdDev(xs, nil)

	return Stats{
		Mean:   mean,
		Median: Quantile(sorted, 0.5),
		Q1:     Quantile(sorted, 0.25),
		Q3:     Quantile(sorted, 0.75),
		StdDev: std,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// Quantile returns the q-quantile of sorted by linear interpolation.
// q is clamped to [0,1]; an empty slice yields NaN.
//
// stat.Quantile(q, stat.LinInterp, ...) places the sample points at i/n
// rather than i/(n-1), so it gives different quartiles for small samples.
func Quantile(sorted []int, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
	}
	q = math.Max(0, math.Min(1, q))
	h := q * float64(len(sorted)-1)
	lo := int(math.Floor(h))
	if lo >= len(sorted)-1 {
		return float64(sorted[len(sorted)-1])
	}
	frac := h - float64(lo)

	return float64(sorted[lo]) + frac*float64(sorted[lo+1]-sorted[lo])
}

// Histogram counts each distinct value, in ascending value order.
func Histogram(values []int) []Bin {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	bins := make([]Bin, 0, len(counts))
	for _, v := range slices.Sorted(maps.Keys(counts)) {
		bins = append(bins, Bin{Value: v, Count: counts[v]})
	}

	return bins
}
