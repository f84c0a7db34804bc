// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/sampling
//
// config.go — sampling parameters and their validation.

package sampling

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/mkerr316/multiscale-tda-geomorphology/builder"
)

// Model names a generator.
type Model string

const (
	// ModelBottomUp grows a complex dimension by dimension (builder.BottomUp).
	ModelBottomUp Model = "bottom-up"
	// ModelTopDown erodes the full simplex (builder.TopDown).
	ModelTopDown Model = "top-down"
	// ModelFlag fills every clique of a random graph (builder.RandomFlag);
	// the edge probability is Probabilities[1].
	ModelFlag Model = "flag"
)

// Models lists the accepted model names.
func Models() []Model {
	return []Model{ModelBottomUp, ModelTopDown, ModelFlag}
}

// Defaults of a sampling run: 100 complexes on 10 vertices with
// p₁ = 0.5, p₂ = 0.2, p₃ = 0.1.
const (
	DefaultVertices = 10
	DefaultRuns     = 100
	DefaultPKeep    = 0.9
	DefaultMaxDim   = 3
	DefaultWorkers  = 4
)

// DefaultProbabilities returns a fresh copy of the default bottom-up
// probabilities.
func DefaultProbabilities() map[int]float64 {
	return map[int]float64{1: 0.5, 2: 0.2, 3: 0.1}
}

// Config describes one sampling run.
type Config struct {
	Model         Model           `json:"model" yaml:"model" mapstructure:"model"`
	Vertices      int             `json:"vertices" yaml:"vertices" mapstructure:"vertices"`
	Probabilities map[int]float64 `json:"probabilities,omitempty" yaml:"probabilities,omitempty" mapstructure:"probabilities"`
	PKeep         float64         `json:"p_keep,omitempty" yaml:"p_keep,omitempty" mapstructure:"p_keep"`
	MaxDim        int             `json:"max_dim,omitempty" yaml:"max_dim,omitempty" mapstructure:"max_dim"`
	Runs          int             `json:"runs" yaml:"runs" mapstructure:"runs"`
	Seed          int64           `json:"seed" yaml:"seed" mapstructure:"seed"`
	Workers       int             `json:"workers" yaml:"workers" mapstructure:"workers"`
}

// DefaultConfig returns the bottom-up defaults with seed 0.
func DefaultConfig() Config {
	return Config{
		Model:         ModelBottomUp,
		Vertices:      DefaultVertices,
		Probabilities: DefaultProbabilities(),
		PKeep:         DefaultPKeep,
		MaxDim:        DefaultMaxDim,
		Runs:          DefaultRuns,
		Workers:       DefaultWorkers,
	}
}

// Validate reports the first invalid field. Generator-level checks (for
// instance probability keys) are repeated by the builder constructors.
func (c Config) Validate() error {
	if !slices.Contains(Models(), c.Model) {
		return fmt.Errorf("model %q: %w", c.Model, ErrUnknownModel)
	}
	if c.Vertices < 0 {
		return fmt.Errorf("vertices %d: %w", c.Vertices, ErrInvalidConfig)
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs %d: %w", c.Runs, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	}

	switch c.Model {
	case ModelBottomUp:
		for _, k := range slices.Sorted(maps.Keys(c.Probabilities)) {
			if k < 1 {
				return fmt.Errorf("probability key %d: %w", k, ErrInvalidConfig)
			}
			if !inUnit(c.Probabilities[k]) {
				return fmt.Errorf("probability[%d]=%v: %w", k, c.Probabilities[k], ErrInvalidConfig)
			}
		}
	case ModelTopDown:
		if !inUnit(c.PKeep) {
			return fmt.Errorf("p_keep %v: %w", c.PKeep, ErrInvalidConfig)
		}
	case ModelFlag:
		if !inUnit(c.Probabilities[1]) {
			return fmt.Errorf("probability[1]=%v: %w", c.Probabilities[1], ErrInvalidConfig)
		}
		if c.MaxDim < 1 {
			return fmt.Errorf("max_dim %d: %w", c.MaxDim, ErrInvalidConfig)
		}
	}

	return nil
}

func inUnit(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}

// constructor returns the builder constructor for one sample.
func (c Config) constructor() builder.Constructor {
	switch c.Model {
	case ModelTopDown:
		return builder.TopDown(c.Vertices, c.PKeep)
	case ModelFlag:
		return builder.RandomFlag(c.Vertices, c.Probabilities[1], c.MaxDim)
	default:
		return builder.BottomUp(c.Vertices, c.Probabilities)
	}
}

// SampleSeed is the seed used for sample i.
func (c Config) SampleSeed(i int) int64 {
	return c.Seed + int64(i)
}
