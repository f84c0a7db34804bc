package report

import (
	"io"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

// summaryDoc is the YAML document written by WriteSummaryYAML.
type summaryDoc struct {
	Config  sampling.Config  `yaml:"config"`
	Summary sampling.Summary `yaml:"summary"`
}

// WriteSummaryYAML writes the run parameters and summary as YAML.
func WriteSummaryYAML(w io.Writer, cfg sampling.Config, s sampling.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summaryDoc{Config: cfg, Summary: s}); err != nil {
		return eris.Wrap(err, "report: encode yaml")
	}

	return eris.Wrap(enc.Close(), "report: close yaml encoder")
}

// ReadSummaryYAML parses a document written by WriteSummaryYAML.
func ReadSummaryYAML(r io.Reader) (sampling.Config, sampling.Summary, error) {
	var doc summaryDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return sampling.Config{}, sampling.Summary{}, eris.Wrap(err, "report: decode yaml")
	}

	return doc.Config, doc.Summary, nil
}
