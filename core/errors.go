// SPDX-License-Identifier: MIT
// Package: multiscale-tda-geomorphology/core
//
// errors.go — sentinel errors and typed error values for the core package.
//
// Error policy:
//   - Callers branch with errors.Is against the sentinels below.
//   - Typed errors (InvalidComplexError, InvalidParameterError) carry the offending
//     values for diagnostics and are reachable through errors.As.
//   - Nothing in this package panics on user input; construction failures are returned.

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidComplex indicates that a simplex set is not downward closed.
	ErrInvalidComplex = errors.New("core: simplex set is not downward closed")

	// ErrInvalidParameter indicates an out-of-domain argument: negative vertex label,
	// negative vertex count, probability outside [0,1], and similar.
	ErrInvalidParameter = errors.New("core: invalid parameter")
)

// InvalidComplexError reports a simplex whose codimension-1 face is absent.
// Only the first violation found in canonical order is reported.
type InvalidComplexError struct {
	Simplex Simplex // offending simplex
	Missing Simplex // one of its faces that is not a member
}

// Error implements error.
func (e *InvalidComplexError) Error() string {
	return fmt.Sprintf("core: simplex %v is missing face %v", e.Simplex, e.Missing)
}

// Unwrap exposes ErrInvalidComplex to errors.Is.
func (e *InvalidComplexError) Unwrap() error { return ErrInvalidComplex }

// InvalidParameterError reports an argument rejected by a constructor or generator.
//
// Cause is the most specific sentinel known to the caller (for example
// builder.ErrInvalidProbability); it must itself wrap ErrInvalidParameter so that
// errors.Is(err, ErrInvalidParameter) holds for every parameter failure.
type InvalidParameterError struct {
	Op    string // operation tag, e.g. "BottomUp"
	Name  string // parameter name, e.g. "p[2]"
	Value any    // rejected value
	Cause error  // sentinel; nil means ErrInvalidParameter
}

// Error implements error.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %v", e.Op, e.Name, e.Value, e.Unwrap())
}

// Unwrap returns Cause, defaulting to ErrInvalidParameter.
func (e *InvalidParameterError) Unwrap() error {
	if e.Cause == nil {
		return ErrInvalidParameter
	}

	return e.Cause
}

// NewParameterError is a small constructor used across packages to keep the
// error shape uniform.
func NewParameterError(op, name string, value any, cause error) error {
	return &InvalidParameterError{Op: op, Name: name, Value: value, Cause: cause}
}
