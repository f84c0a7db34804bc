package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

// SampleHeader returns the column names of the per-sample table:
// index, seed, dimension, euler, then b0..bK for K = maxBetti.
func SampleHeader(maxBetti int) []string {
	h := []string{"index", "seed", "dimension", "euler"}
	for k := 0; k <= maxBetti; k++ {
		h = append(h, "b"+strconv.Itoa(k))
	}

	return h
}

// maxBettiDim is the largest Betti dimension of any sample (at least 0).
func maxBettiDim(samples []sampling.Sample) int {
	top := 0
	for _, s := range samples {
		if m := s.Betti.MaxDim(); m > top {
			top = m
		}
	}

	return top
}

// sampleRow renders one sample; absent Betti dimensions are 0.
func sampleRow(s sampling.Sample, maxBetti int) []int64 {
	row := []int64{int64(s.Index), s.Seed, int64(s.Dimension), int64(s.Euler)}
	for _, b := range s.Betti.Slice(maxBetti) {
		row = append(row, int64(b))
	}

	return row
}

// WriteCSV writes one row per sample after a header row.
func WriteCSV(w io.Writer, samples []sampling.Sample) error {
	maxBetti := maxBettiDim(samples)
	cw := csv.NewWriter(w)
	if err := cw.Write(SampleHeader(maxBetti)); err != nil {
		return eris.Wrap(err, "report: write csv header")
	}
	rec := make([]string, 0, 5+maxBetti)
	for _, s := range samples {
		rec = rec[:0]
		for _, v := range sampleRow(s, maxBetti) {
			rec = append(rec, strconv.FormatInt(v, 10))
		}
		if err := cw.Write(rec); err != nil {
			return eris.Wrapf(err, "report: write csv row %d", s.Index)
		}
	}
	cw.Flush()

	return eris.Wrap(cw.Error(), "report: flush csv")
}
