package report

import (
	"fmt"
	"maps"
	"slices"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

// Sheet names of the workbook written by WriteXLSX.
const (
	SheetSamples   = "samples"
	SheetSummary   = "summary"
	SheetHistogram = "histograms"
)

// WriteXLSX saves a workbook with three sheets: one row per sample, the
// summary as key/value rows, and the χ and βk histograms as
// (variable, value, count) rows.
func WriteXLSX(path string, res *sampling.Result) error {
	if res == nil {
		return eris.New("report: nil result")
	}
	f := xlsx.NewFile()

	samples, err := f.AddSheet(SheetSamples)
	if err != nil {
		return eris.Wrap(err, "report: add samples sheet")
	}
	maxBetti := maxBettiDim(res.Samples)
	addStringRow(samples, SampleHeader(maxBetti)...)
	for _, s := range res.Samples {
		row := samples.AddRow()
		for _, v := range sampleRow(s, maxBetti) {
			row.AddCell().SetInt64(v)
		}
	}

	summary, err := f.AddSheet(SheetSummary)
	if err != nil {
		return eris.Wrap(err, "report: add summary sheet")
	}
	addStringRow(summary, "key", "value")
	for _, kv := range summaryPairs(res.Config, res.Summary) {
		row := summary.AddRow()
		row.AddCell().SetString(kv.key)
		switch v := kv.value.(type) {
		case int:
			row.AddCell().SetInt(v)
		case int64:
			row.AddCell().SetInt64(v)
		case float64:
			row.AddCell().SetFloat(v)
		default:
			row.AddCell().SetString(fmt.Sprint(v))
		}
	}

	hist, err := f.AddSheet(SheetHistogram)
	if err != nil {
		return eris.Wrap(err, "report: add histogram sheet")
	}
	addStringRow(hist, "variable", "value", "count")
	addBins(hist, "euler", res.Summary.EulerHistogram)
	for _, b := range res.Summary.Betti {
		addBins(hist, fmt.Sprintf("b%d", b.Dim), b.Histogram)
	}

	return eris.Wrap(f.Save(path), "report: save xlsx")
}

func addBins(sheet *xlsx.Sheet, variable string, bins []sampling.Bin) {
	for _, b := range bins {
		row := sheet.AddRow()
		row.AddCell().SetString(variable)
		row.AddCell().SetInt(b.Value)
		row.AddCell().SetInt(b.Count)
	}
}

func addStringRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}

type pair struct {
	key   string
	value any
}

// summaryPairs flattens a run's parameters and summary into ordered rows.
func summaryPairs(cfg sampling.Config, s sampling.Summary) []pair {
	out := []pair{
		{"model", string(cfg.Model)},
		{"vertices", cfg.Vertices},
		{"runs", s.Runs},
		{"seed", cfg.Seed},
	}
	switch cfg.Model {
	case sampling.ModelTopDown:
		out = append(out, pair{"p_keep", cfg.PKeep})
	case sampling.ModelFlag:
		out = append(out, pair{"p_edge", cfg.Probabilities[1]}, pair{"max_dim", cfg.MaxDim})
	default:
		for _, k := range sortedKeys(cfg.Probabilities) {
			out = append(out, pair{fmt.Sprintf("p%d", k), cfg.Probabilities[k]})
		}
	}
	out = append(out,
		pair{"euler_mean", s.Euler.Mean},
		pair{"euler_median", s.Euler.Median},
		pair{"euler_q1", s.Euler.Q1},
		pair{"euler_q3", s.Euler.Q3},
		pair{"euler_stddev", s.Euler.StdDev},
		pair{"euler_min", s.Euler.Min},
		pair{"euler_max", s.Euler.Max},
		pair{"dimension_mean", s.Dimension.Mean},
		pair{"dimension_max", s.Dimension.Max},
	)
	for _, b := range s.Betti {
		out = append(out,
			pair{fmt.Sprintf("b%d_mean", b.Dim), b.Mean},
			pair{fmt.Sprintf("b%d_min", b.Dim), b.Min},
			pair{fmt.Sprintf("b%d_max", b.Dim), b.Max},
		)
	}

	return append(out, pair{"euler_poincare_violations", s.EulerPoincareViolations})
}

func sortedKeys(m map[int]float64) []int {
	return slices.Sorted(maps.Keys(m))
}
