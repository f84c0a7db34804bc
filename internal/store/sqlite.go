package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"github.com/mkerr316/multiscale-tda-geomorphology/homology"
	"github.com/mkerr316/multiscale-tda-geomorphology/sampling"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close() //nolint:errcheck
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}

	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	model      TEXT NOT NULL,
	vertices   INTEGER NOT NULL,
	runs       INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	config     TEXT NOT NULL,
	summary    TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS samples (
	run_id     TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	idx        INTEGER NOT NULL,
	seed       INTEGER NOT NULL,
	dimension  INTEGER NOT NULL,
	euler      INTEGER NOT NULL,
	counts     TEXT NOT NULL,
	betti      TEXT NOT NULL,
	consistent INTEGER NOT NULL,
	PRIMARY KEY (run_id, idx)
);

CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model);
`

// Migrate creates the schema if needed.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)

	return eris.Wrap(err, "sqlite: migrate")
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveRun inserts the run row and one row per sample in a single transaction.
func (s *SQLiteStore) SaveRun(ctx context.Context, res *sampling.Result) (*Run, error) {
	if res == nil {
		return nil, eris.New("sqlite: nil result")
	}
	id := uuid.New().String()
	now := time.Now().UTC()

	configJSON, err := json.Marshal(res.Config)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal config")
	}
	summaryJSON, err := json.Marshal(res.Summary)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: marshal summary")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, model, vertices, runs, seed, config, summary, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, string(res.Config.Model), res.Config.Vertices, res.Config.Runs, res.Config.Seed,
		string(configJSON), string(summaryJSON), now,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: insert run")
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO samples (run_id, idx, seed, dimension, euler, counts, betti, consistent) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: prepare sample insert")
	}
	defer stmt.Close() //nolint:errcheck

	for _, smp := range res.Samples {
		countsJSON, err := json.Marshal(smp.Counts)
		if err != nil {
			return nil, eris.Wrapf(err, "sqlite: marshal counts of sample %d", smp.Index)
		}
		bettiJSON, err := json.Marshal(smp.Betti)
		if err != nil {
			return nil, eris.Wrapf(err, "sqlite: marshal betti of sample %d", smp.Index)
		}
		if _, err := stmt.ExecContext(ctx, id, smp.Index, smp.Seed, smp.Dimension, smp.Euler,
			string(countsJSON), string(bettiJSON), smp.Consistent); err != nil {
			return nil, eris.Wrapf(err, "sqlite: insert sample %d", smp.Index)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, eris.Wrap(err, "sqlite: commit")
	}

	return &Run{ID: id, Config: res.Config, Summary: res.Summary, CreatedAt: now}, nil
}

// GetRun returns the run whose id equals id or starts with it.
func (s *SQLiteStore) GetRun(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, eris.Wrap(ErrNotFound, "sqlite: empty id")
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, config, summary, created_at FROM runs WHERE substr(id, 1, length(?)) = ? ORDER BY id LIMIT 2`,
		id, id,
	)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get run %s", id)
	}
	defer rows.Close()

	var found []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		if r.ID == id {
			return r, nil
		}
		found = append(found, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: get run iterate")
	}

	switch len(found) {
	case 0:
		return nil, eris.Wrapf(ErrNotFound, "sqlite: run %s", id)
	case 1:
		return &found[0], nil
	default:
		return nil, eris.Wrapf(ErrAmbiguous, "sqlite: run %s", id)
	}
}

// ListRuns returns up to limit runs, newest first.
func (s *SQLiteStore) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, config, summary, created_at FROM runs ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list runs")
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, *r)
	}

	return runs, eris.Wrap(rows.Err(), "sqlite: list runs iterate")
}

// ListSamples returns every sample of runID ordered by index.
func (s *SQLiteStore) ListSamples(ctx context.Context, runID string) ([]sampling.Sample, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, seed, dimension, euler, counts, betti, consistent FROM samples WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: list samples %s", runID)
	}
	defer rows.Close()

	var out []sampling.Sample
	for rows.Next() {
		var (
			smp                   sampling.Sample
			countsJSON, bettiJSON string
		)
		if err := rows.Scan(&smp.Index, &smp.Seed, &smp.Dimension, &smp.Euler, &countsJSON, &bettiJSON, &smp.Consistent); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan sample")
		}
		if err := json.Unmarshal([]byte(countsJSON), &smp.Counts); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal counts")
		}
		smp.Betti = homology.Betti{}
		if err := json.Unmarshal([]byte(bettiJSON), &smp.Betti); err != nil {
			return nil, eris.Wrap(err, "sqlite: unmarshal betti")
		}
		out = append(out, smp)
	}

	return out, eris.Wrap(rows.Err(), "sqlite: list samples iterate")
}

type scannable interface {
	Scan(dest ...any) error
}

func scanRun(row scannable) (*Run, error) {
	var r Run
	var configJSON, summaryJSON string

	err := row.Scan(&r.ID, &configJSON, &summaryJSON, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, eris.Wrap(ErrNotFound, "sqlite: scan run")
	}
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: scan run")
	}

	if err := json.Unmarshal([]byte(configJSON), &r.Config); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal config")
	}
	if err := json.Unmarshal([]byte(summaryJSON), &r.Summary); err != nil {
		return nil, eris.Wrap(err, "sqlite: unmarshal summary")
	}

	return &r, nil
}
