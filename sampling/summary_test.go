package sampling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkerr316/multiscale-tda-geomorphology/homology"
	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	s := sampling.Describe([]int{4, 1, 3, 2})
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 2.5, s.Median, 1e-12)
	assert.InDelta(t, 1.75, s.Q1, 1e-12)
	assert.InDelta(t, 3.25, s.Q3, 1e-12)
	assert.InDelta(t, math.Sqrt(1.25), s.StdDev, 1e-12)
	assert.Equal(t, 1, s.Min)
	assert.Equal(t, 4, s.Max)

	one := sampling.Describe([]int{-7})
	assert.Equal(t, sampling.Stats{Mean: -7, Median: -7, Q1: -7, Q3: -7, Min: -7, Max: -7}, one)

	assert.Equal(t, sampling.Stats{}, sampling.Describe(nil))
}

func TestQuantile(t *testing.T) {
	t.Parallel()

	sorted := []int{-3, 0, 0, 5, 10}
	assert.InDelta(t, 0.0, sampling.Quantile(sorted, 0.5), 1e-12)
	assert.InDelta(t, -3.0, sampling.Quantile(sorted, 0), 1e-12)
	assert.InDelta(t, 10.0, sampling.Quantile(sorted, 1), 1e-12)
	assert.InDelta(t, 7.5, sampling.Quantile(sorted, 0.875), 1e-12)
	assert.InDelta(t, 10.0, sampling.Quantile(sorted, 2), 1e-12, "clamped")
	assert.True(t, math.IsNaN(sampling.Quantile(nil, 0.5)))
}

func TestHistogram(t *testing.T) {
	t.Parallel()

	got := sampling.Histogram([]int{3, 1, 3, -2})
	assert.Equal(t, []sampling.Bin{{Value: -2, Count: 1}, {Value: 1, Count: 1}, {Value: 3, Count: 2}}, got)
	assert.Empty(t, sampling.Histogram(nil))
}

// TestSummarize_AbsentDimensions checks that a Betti dimension missing from a
// sample counts as zero.
func TestSummarize_AbsentDimensions(t *testing.T) {
	t.Parallel()

	samples := []sampling.Sample{
		{Index: 0, Dimension: 0, Counts: []int{1}, Euler: 1, Betti: homology.Betti{0: 1}, Consistent: true},
		{Index: 1, Dimension: 1, Counts: []int{4, 6}, Euler: -2, Betti: homology.Betti{0: 1, 1: 3}, Consistent: true},
		{Index: 2, Dimension: 1, Counts: []int{3, 3}, Euler: 0, Betti: homology.Betti{0: 1, 1: 1}, Consistent: false},
	}
	sum := sampling.Summarize(samples)

	assert.Equal(t, 3, sum.Runs)
	assert.Equal(t, 1, sum.EulerPoincareViolations)
	assert.Equal(t, -2, sum.Euler.Min)
	assert.Equal(t, 1, sum.Euler.Max)
	assert.InDelta(t, -1.0/3, sum.Euler.Mean, 1e-12)
	assert.InDelta(t, 0.0, sum.Euler.Median, 1e-12)
	assert.Equal(t, 1, sum.MaxBettiDim())

	assert.Equal(t, []sampling.BettiStats{
		{Dim: 0, Mean: 1, Min: 1, Max: 1, Histogram: []sampling.Bin{{Value: 1, Count: 3}}},
		{Dim: 1, Mean: 4.0 / 3, Min: 0, Max: 3, Histogram: []sampling.Bin{{Value: 0, Count: 1}, {Value: 1, Count: 1}, {Value: 3, Count: 1}}},
	}, sum.Betti)
	assert.Len(t, sum.EulerHistogram, 3)

	res := sampling.Result{Samples: samples, Summary: sum}
	assert.ErrorIs(t, res.Check(), sampling.ErrInconsistent)
}

// TestSummarize_BettiHistograms checks that every βk histogram accounts for
// every sample, including samples whose dimension is below k.
func TestSummarize_BettiHistograms(t *testing.T) {
	t.Parallel()

	samples := []sampling.Sample{
		{Dimension: 2, Counts: []int{4, 6, 4}, Euler: 2, Betti: homology.Betti{0: 1, 1: 0, 2: 1}, Consistent: true},
		{Dimension: 0, Counts: []int{2}, Euler: 2, Betti: homology.Betti{0: 2}, Consistent: true},
		{Dimension: 2, Counts: []int{4, 6, 4}, Euler: 2, Betti: homology.Betti{0: 1, 1: 0, 2: 1}, Consistent: true},
	}
	sum := sampling.Summarize(samples)

	require.Len(t, sum.Betti, 3)
	for _, b := range sum.Betti {
		total := 0
		for _, bin := range b.Histogram {
			total += bin.Count
		}
		assert.Equal(t, len(samples), total, "β%d", b.Dim)
	}
	assert.Equal(t, []sampling.Bin{{Value: 1, Count: 2}, {Value: 2, Count: 1}}, sum.Betti[0].Histogram)
	assert.Equal(t, []sampling.Bin{{Value: 0, Count: 3}}, sum.Betti[1].Histogram)
	assert.Equal(t, []sampling.Bin{{Value: 0, Count: 1}, {Value: 1, Count: 2}}, sum.Betti[2].Histogram)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	sum := sampling.Summarize(nil)
	assert.Zero(t, sum.Runs)
	assert.Equal(t, -1, sum.MaxBettiDim())
}
