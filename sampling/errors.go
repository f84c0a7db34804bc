package sampling

import (
	"errors"
	"fmt"

	"github.com/mkerr316/multiscale-tda-geomorphology/core"
)

var (
	// ErrInvalidConfig indicates a Config field out of range.
	ErrInvalidConfig = fmt.Errorf("sampling: invalid config: %w", core.ErrInvalidParameter)
	// ErrUnknownModel indicates a Model name that is not one of Models().
	ErrUnknownModel = fmt.Errorf("sampling: unknown model: %w", core.ErrInvalidParameter)
	// ErrInconsistent is returned by Result.Check when a sample violates Euler–Poincaré.
	ErrInconsistent = errors.New("sampling: Euler–Poincaré identity violated")
)
