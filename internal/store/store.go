// Package store persists sampling runs and their samples.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

var (
	// ErrNotFound indicates no run matches the requested id.
	ErrNotFound = errors.New("store: run not found")
	// ErrAmbiguous indicates an id prefix that matches more than one run.
	ErrAmbiguous = errors.New("store: run id prefix is ambiguous")
)

// Run is one stored sampling run.
type Run struct {
	ID        string           `json:"id"`
	Config    sampling.Config  `json:"config"`
	Summary   sampling.Summary `json:"summary"`
	CreatedAt time.Time        `json:"created_at"`
}

// Store defines the persistence interface for sampling runs.
type Store interface {
	// SaveRun stores the run and all of its samples atomically.
	SaveRun(ctx context.Context, res *sampling.Result) (*Run, error)
	// GetRun looks a run up by full id or unique id prefix.
	GetRun(ctx context.Context, id string) (*Run, error)
	// ListRuns returns the most recent runs first. limit ≤ 0 means 100.
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	// ListSamples returns the samples of a run in index order.
	ListSamples(ctx context.Context, runID string) ([]sampling.Sample, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
