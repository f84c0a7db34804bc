// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng = nil (pure/deterministic unless seeded)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{rng: nil}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// draw reports whether a Bernoulli(p) trial succeeds.
//
// With an RNG present exactly one Float64() is consumed regardless of p, so the
// draw sequence depends only on which candidates are visited. Without an RNG
// the caller has already verified p ∈ {0,1}.
func (c builderConfig) draw(p float64) bool {
	if c.rng == nil {
		return p >= MaxProbability
	}

	return c.rng.Float64() < p
}
