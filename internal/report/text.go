package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

// DefaultHistogramWidth is the bar length of the most frequent value.
const DefaultHistogramWidth = 50

// Histogram draws the χ histogram and one histogram per Betti dimension as
// horizontal bars under a "χ" or "βk" heading, one line per distinct value.
// Each section is scaled so its tallest bar is width characters; non-empty
// counts always get at least one character.
func Histogram(w io.Writer, s sampling.Summary, width int) error {
	if width <= 0 {
		width = DefaultHistogramWidth
	}
	if len(s.EulerHistogram) == 0 {
		_, err := fmt.Fprintln(w, "(no samples)")

		return err
	}

	if err := bars(w, "χ", s.EulerHistogram, width); err != nil {
		return err
	}
	for _, b := range s.Betti {
		if len(b.Histogram) == 0 {
			continue
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if err := bars(w, fmt.Sprintf("β%d", b.Dim), b.Histogram, width); err != nil {
			return err
		}
	}

	return nil
}

// bars writes one titled histogram section.
func bars(w io.Writer, title string, bins []sampling.Bin, width int) error {
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	peak, label := 0, 0
	for _, b := range bins {
		peak = max(peak, b.Count)
		label = max(label, len(fmt.Sprint(b.Value)))
	}
	for _, b := range bins {
		n := b.Count * width / peak
		if n == 0 && b.Count > 0 {
			n = 1
		}
		if _, err := fmt.Fprintf(w, "%*d | %s %d\n", label, b.Value, strings.Repeat("#", n), b.Count); err != nil {
			return err
		}
	}

	return nil
}

// WriteSummary writes a human-readable table of the summary: χ statistics,
// dimension range and per-dimension Betti ranges.
func WriteSummary(out io.Writer, cfg sampling.Config, s sampling.Summary) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "Model:\t%s (n=%d, runs=%d, seed=%d)\n", cfg.Model, cfg.Vertices, s.Runs, cfg.Seed)
	_, _ = fmt.Fprintf(w, "χ mean:\t%.2f\n", s.Euler.Mean)
	_, _ = fmt.Fprintf(w, "χ median:\t%.1f\n", s.Euler.Median)
	_, _ = fmt.Fprintf(w, "χ quartiles:\t%.1f .. %.1f\n", s.Euler.Q1, s.Euler.Q3)
	_, _ = fmt.Fprintf(w, "χ range:\t%d .. %d\n", s.Euler.Min, s.Euler.Max)
	_, _ = fmt.Fprintf(w, "χ stddev:\t%.2f\n", s.Euler.StdDev)
	_, _ = fmt.Fprintf(w, "Dimension:\t%d .. %d (mean %.2f)\n", s.Dimension.Min, s.Dimension.Max, s.Dimension.Mean)
	for _, b := range s.Betti {
		_, _ = fmt.Fprintf(w, "β%d:\t%d .. %d (mean %.2f)\n", b.Dim, b.Min, b.Max, b.Mean)
	}
	_, _ = fmt.Fprintf(w, "Euler–Poincaré violations:\t%d\n", s.EulerPoincareViolations)

	return w.Flush()
}
