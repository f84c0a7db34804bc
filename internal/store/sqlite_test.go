package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	st, err := NewSQLite(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() }) //nolint:errcheck
	require.NoError(t, st.Migrate(context.Background()))

	return st
}

func sampleResult(t *testing.T, model sampling.Model, seed int64) *sampling.Result {
	t.Helper()
	cfg := sampling.DefaultConfig()
	cfg.Model = model
	cfg.Vertices = 6
	cfg.Runs = 12
	cfg.Seed = seed
	res, err := sampling.Run(context.Background(), cfg, sampling.WithLogger(zap.NewNop()))
	require.NoError(t, err)

	return res
}

func TestSQLite_SaveAndGetRun(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	res := sampleResult(t, sampling.ModelBottomUp, 3)
	run, err := st.SaveRun(ctx, res)
	require.NoError(t, err)
	require.NotEmpty(t, run.ID)

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, res.Config, got.Config)
	assert.Equal(t, res.Summary, got.Summary)
	assert.WithinDuration(t, run.CreatedAt, got.CreatedAt, time.Second)

	// unique prefix
	got, err = st.GetRun(ctx, run.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
}

func TestSQLite_ListSamples_RoundTrip(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	res := sampleResult(t, sampling.ModelTopDown, 8)
	run, err := st.SaveRun(ctx, res)
	require.NoError(t, err)

	samples, err := st.ListSamples(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Samples, samples)
	assert.Equal(t, res.Summary, sampling.Summarize(samples), "summary recomputes from stored samples")

	none, err := st.ListSamples(ctx, "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLite_ListRuns(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	for i, model := range sampling.Models() {
		_, err := st.SaveRun(ctx, sampleResult(t, model, int64(i)))
		require.NoError(t, err)
	}

	runs, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 3)

	runs, err = st.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	assert.False(t, runs[0].CreatedAt.Before(runs[1].CreatedAt), "newest first")
}

func TestSQLite_GetRun_NotFound(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	_, err := st.GetRun(ctx, "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = st.GetRun(ctx, "")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestSQLite_GetRun_WildcardsAreLiteral(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	run, err := st.SaveRun(ctx, sampleResult(t, sampling.ModelBottomUp, 4))
	require.NoError(t, err)

	for _, id := range []string{"%", "_", "________", run.ID[:4] + "%", "%" + run.ID[4:]} {
		_, err := st.GetRun(ctx, id)
		assert.Truef(t, errors.Is(err, ErrNotFound), "GetRun(%q) = %v", id, err)
	}

	got, err := st.GetRun(ctx, run.ID[:4])
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
}

func TestSQLite_GetRun_Ambiguous(t *testing.T) {
	st := newTestSQLiteStore(t)
	ctx := context.Background()

	// Insert two runs whose ids share a prefix directly.
	for _, id := range []string{"abc-1", "abc-2"} {
		_, err := st.db.ExecContext(ctx,
			`INSERT INTO runs (id, model, vertices, runs, seed, config, summary) VALUES (?, 'bottom-up', 1, 1, 0, '{}', '{}')`, id)
		require.NoError(t, err)
	}

	_, err := st.GetRun(ctx, "abc")
	assert.True(t, errors.Is(err, ErrAmbiguous))

	r, err := st.GetRun(ctx, "abc-2")
	require.NoError(t, err)
	assert.Equal(t, "abc-2", r.ID)
}

func TestSQLite_SaveRun_Nil(t *testing.T) {
	st := newTestSQLiteStore(t)
	_, err := st.SaveRun(context.Background(), nil)
	assert.Error(t, err)
}

func TestSQLite_MigrateIdempotent(t *testing.T) {
	st := newTestSQLiteStore(t)
	require.NoError(t, st.Migrate(context.Background()))
}
