package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkerr316/multiscale-tda-geomorphology/internal/config"
	"github.com/mkerr316/multiscale-tda-geomorphology/internal/report"
	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample random complexes and summarise their topology",
	Long: "Generates --runs complexes from one model and reports the distribution of the Euler " +
		"characteristic and Betti numbers. Flags override topostat.yaml and TOPOSTAT_SAMPLING_* settings.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		sc, err := cfg.Sampling.ToSampling()
		if err != nil {
			return err
		}
		if err := applySampleFlags(cmd, &sc); err != nil {
			return err
		}
		out := sampleOutputs{
			CSV:            flagString(cmd, "csv"),
			XLSX:           flagString(cmd, "xlsx"),
			YAML:           flagString(cmd, "yaml"),
			Save:           flagBool(cmd, "save"),
			HistogramWidth: cfg.Report.HistogramWidth,
		}

		return runSample(cmd.Context(), cmd.OutOrStdout(), sc, out)
	},
}

func init() {
	addSampleFlags(sampleCmd)
	rootCmd.AddCommand(sampleCmd)
}

func addSampleFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("model", "", "generator: bottom-up, top-down or flag")
	f.Int("vertices", 0, "number of vertices")
	f.Int("runs", 0, "number of complexes to generate")
	f.Int64("seed", 0, "base seed; sample i uses seed+i")
	f.Int("workers", 0, "parallel generators")
	f.StringArray("prob", nil, "dimension probability k=p (repeatable, replaces configured probabilities)")
	f.Float64("p-keep", 0, "top-down keep probability")
	f.Int("max-dim", 0, "flag model: largest simplex dimension")
	f.String("csv", "", "write per-sample CSV to this file")
	f.String("xlsx", "", "write an XLSX workbook to this file")
	f.String("yaml", "", "write the YAML summary to this file")
	f.Bool("save", false, "store the run in the database")
}

// applySampleFlags overrides configured values with explicitly set flags.
func applySampleFlags(cmd *cobra.Command, sc *sampling.Config) error {
	f := cmd.Flags()
	if f.Changed("model") {
		m, _ := f.GetString("model")
		sc.Model = sampling.Model(m)
	}
	if f.Changed("vertices") {
		sc.Vertices, _ = f.GetInt("vertices")
	}
	if f.Changed("runs") {
		sc.Runs, _ = f.GetInt("runs")
	}
	if f.Changed("seed") {
		sc.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("workers") {
		sc.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("p-keep") {
		sc.PKeep, _ = f.GetFloat64("p-keep")
	}
	if f.Changed("max-dim") {
		sc.MaxDim, _ = f.GetInt("max-dim")
	}
	if f.Changed("prob") {
		pairs, _ := f.GetStringArray("prob")
		probs, err := config.ParseProbabilities(pairs)
		if err != nil {
			return err
		}
		sc.Probabilities = probs
	}

	return nil
}

// sampleOutputs selects the artefacts written after a run.
type sampleOutputs struct {
	CSV, XLSX, YAML string
	Save            bool
	HistogramWidth  int
}

// runSample executes one sampling run and renders it.
func runSample(ctx context.Context, w io.Writer, sc sampling.Config, out sampleOutputs) error {
	log := zap.L().With(zap.String("command", "sample"))

	res, err := sampling.Run(ctx, sc, sampling.WithLogger(log))
	if err != nil {
		return eris.Wrap(err, "sample")
	}
	if err := res.Check(); err != nil {
		return eris.Wrap(err, "sample")
	}

	if err := report.WriteSummary(w, res.Config, res.Summary); err != nil {
		return eris.Wrap(err, "sample: summary")
	}
	_, _ = fmt.Fprintln(w)
	if err := report.Histogram(w, res.Summary, out.HistogramWidth); err != nil {
		return eris.Wrap(err, "sample: histogram")
	}

	if err := writeArtefacts(res, out); err != nil {
		return err
	}

	if out.Save {
		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		run, err := st.SaveRun(ctx, res)
		if err != nil {
			return eris.Wrap(err, "sample: save")
		}
		log.Info("run saved", zap.String("run_id", run.ID))
		_, _ = fmt.Fprintf(w, "\nsaved run %s\n", run.ID)
	}

	return nil
}

// writeArtefacts writes the optional CSV, XLSX and YAML files.
func writeArtefacts(res *sampling.Result, out sampleOutputs) error {
	if out.CSV != "" {
		if err := writeFile(out.CSV, func(w io.Writer) error { return report.WriteCSV(w, res.Samples) }); err != nil {
			return err
		}
	}
	if out.XLSX != "" {
		if err := report.WriteXLSX(out.XLSX, res); err != nil {
			return err
		}
	}
	if out.YAML != "" {
		if err := writeFile(out.YAML, func(w io.Writer) error {
			return report.WriteSummaryYAML(w, res.Config, res.Summary)
		}); err != nil {
			return err
		}
	}

	return nil
}

// writeFile creates path and passes it to fn, reporting close errors.
func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = eris.Wrapf(cerr, "close %s", path)
		}
	}()

	return fn(f)
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)

	return v
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)

	return v
}
