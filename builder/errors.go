// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Every parameter sentinel wraps core.ErrInvalidParameter, so a caller that
//     only cares about "bad input" can test for that one value.
//   • Failures are reported as *core.InvalidParameterError{Op, Name, Value, Cause}
//     with Cause set to one of the sentinels below (errors.As gives the details).
//   • Constructors never panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

// ErrTooFewVertices indicates that a size parameter (n, partition size, offset)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = fmt.Errorf("builder: parameter too small: %w", core.ErrInvalidParameter)

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] (or is NaN).
var ErrInvalidProbability = fmt.Errorf("builder: probability out of range: %w", core.ErrInvalidParameter)

// ErrInvalidDimension indicates a dimension key < 1 in a bottom-up probability
// map, or a maximum dimension < 1 for flag complexes.
var ErrInvalidDimension = fmt.Errorf("builder: invalid dimension: %w", core.ErrInvalidParameter)

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
// Probabilities of exactly 0 or 1 need no randomness and never raise it.
var ErrNeedRandSource = fmt.Errorf("builder: rng is required: %w", core.ErrInvalidParameter)

// ErrUnknownSolid indicates a PlatonicName outside the known enumeration.
var ErrUnknownSolid = fmt.Errorf("builder: unknown platonic solid: %w", core.ErrInvalidParameter)

// ErrConstructFailed indicates a programmer error in composition, such as a nil
// Constructor passed to BuildComplex. It is not a parameter error.
var ErrConstructFailed = errors.New("builder: construction failed")

// paramError is the single construction point for parameter failures.
func paramError(method, name string, value any, sentinel error) error {
	return core.NewParameterError(method, name, value, sentinel)
}

// --- Implementation Notes ----------------------------------------------------
//
// Priority when several validations fail:
//    • ErrTooFewVertices      — size checks first (n, partitions).
//    • ErrInvalidDimension    — then dimension keys, ascending.
//    • ErrInvalidProbability  — then probability ranges, ascending key order.
//    • ErrNeedRandSource      — then RNG presence.
// The order is fixed so the same bad input always yields the same error.
