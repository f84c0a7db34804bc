// Package config loads topostat settings from topostat.yaml and TOPOSTAT_*
// environment variables, and initialises the global zap logger.
package config

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mkerr316/multiscale-tda-geomorphology/gridcomplex"
	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

// Config holds the full application configuration.
type Config struct {
	Sampling SamplingConfig `yaml:"sampling" mapstructure:"sampling"`
	Grid     GridConfig     `yaml:"grid" mapstructure:"grid"`
	Store    StoreConfig    `yaml:"store" mapstructure:"store"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// SamplingConfig holds the defaults of the sample command.
// Probabilities are "k=p" pairs, e.g. ["1=0.5", "2=0.2"].
type SamplingConfig struct {
	Model         string   `yaml:"model" mapstructure:"model"`
	Vertices      int      `yaml:"vertices" mapstructure:"vertices"`
	Probabilities []string `yaml:"probabilities" mapstructure:"probabilities"`
	PKeep         float64  `yaml:"p_keep" mapstructure:"p_keep"`
	MaxDim        int      `yaml:"max_dim" mapstructure:"max_dim"`
	Runs          int      `yaml:"runs" mapstructure:"runs"`
	Seed          int64    `yaml:"seed" mapstructure:"seed"`
	Workers       int      `yaml:"workers" mapstructure:"workers"`
}

// GridConfig holds the defaults of the grid command.
type GridConfig struct {
	Threshold    int    `yaml:"threshold" mapstructure:"threshold"`
	Connectivity string `yaml:"connectivity" mapstructure:"connectivity"`
}

// StoreConfig configures the run database.
type StoreConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ReportConfig configures report rendering.
type ReportConfig struct {
	HistogramWidth int `yaml:"histogram_width" mapstructure:"histogram_width"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from ./topostat.yaml (optional) and environment.
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file. An empty path searches the
// working directory for topostat.yaml; a missing default file is not an
// error, a missing explicit file is.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	// Config file
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("topostat")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	// Environment
	v.SetEnvPrefix("TOPOSTAT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sampling.model", string(sampling.ModelBottomUp))
	v.SetDefault("sampling.vertices", sampling.DefaultVertices)
	v.SetDefault("sampling.probabilities", FormatProbabilities(sampling.DefaultProbabilities()))
	v.SetDefault("sampling.p_keep", sampling.DefaultPKeep)
	v.SetDefault("sampling.max_dim", sampling.DefaultMaxDim)
	v.SetDefault("sampling.runs", sampling.DefaultRuns)
	v.SetDefault("sampling.seed", 0)
	v.SetDefault("sampling.workers", sampling.DefaultWorkers)
	v.SetDefault("grid.threshold", 1)
	v.SetDefault("grid.connectivity", gridcomplex.Conn4.String())
	v.SetDefault("store.path", "topostat.db")
	v.SetDefault("report.histogram_width", 50)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Read config file (optional unless explicit)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// ToSampling converts the file/env representation into sampling.Config.
func (s SamplingConfig) ToSampling() (sampling.Config, error) {
	probs, err := ParseProbabilities(s.Probabilities)
	if err != nil {
		return sampling.Config{}, err
	}

	return sampling.Config{
		Model:         sampling.Model(s.Model),
		Vertices:      s.Vertices,
		Probabilities: probs,
		PKeep:         s.PKeep,
		MaxDim:        s.MaxDim,
		Runs:          s.Runs,
		Seed:          s.Seed,
		Workers:       s.Workers,
	}, nil
}

// GridOptions converts the grid settings into gridcomplex.GridOptions.
func (g GridConfig) GridOptions() (gridcomplex.GridOptions, error) {
	conn, err := gridcomplex.ParseConnectivity(g.Connectivity)
	if err != nil {
		return gridcomplex.GridOptions{}, eris.Wrap(err, "config: grid.connectivity")
	}

	return gridcomplex.GridOptions{LandThreshold: g.Threshold, Conn: conn}, nil
}

// ParseProbabilities parses "k=p" pairs. Entries may also be
// comma-separated inside one string. Later keys override earlier ones.
func ParseProbabilities(pairs []string) (map[int]float64, error) {
	out := make(map[int]float64)
	for _, entry := range pairs {
		for _, pair := range strings.Split(entry, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			ks, ps, ok := strings.Cut(pair, "=")
			if !ok {
				return nil, eris.Errorf("config: probability %q: want k=p", pair)
			}
			k, err := strconv.Atoi(strings.TrimSpace(ks))
			if err != nil {
				return nil, eris.Wrapf(err, "config: probability %q: dimension", pair)
			}
			p, err := strconv.ParseFloat(strings.TrimSpace(ps), 64)
			if err != nil {
				return nil, eris.Wrapf(err, "config: probability %q: value", pair)
			}
			out[k] = p
		}
	}

	return out, nil
}

// FormatProbabilities is the inverse of ParseProbabilities, in key order.
func FormatProbabilities(probs map[int]float64) []string {
	keys := slices.Sorted(maps.Keys(probs))
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = fmt.Sprintf("%d=%s", k, strconv.FormatFloat(probs[k], 'g', -1, 64))
	}

	return out
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
