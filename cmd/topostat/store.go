package main

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/mkerr316/multiscale-tda-geomorphology/internal/store"
)

// initStore opens and migrates the configured run database.
func initStore(ctx context.Context) (store.Store, error) {
	path := cfg.Store.Path
	if path == "" {
		path = "topostat.db"
	}
	st, err := store.NewSQLite(path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close() //nolint:errcheck
		return nil, eris.Wrap(err, "init store")
	}

	return st, nil
}
