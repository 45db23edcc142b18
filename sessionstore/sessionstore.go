// Package sessionstore provides [scs.Store] implementations backed by the app database.
package sessionstore

import (
	"context"

	"github.com/alexedwards/scs/pgxstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"maragu.dev/errors"

	"maragu.dev/pager/sql"
)

type cleanupStore interface {
	scs.Store
	StopCleanup()
}

// Store is an [scs.Store] which may hold its own database connections, released with [Store.Close].
type Store struct {
	cleanupStore
	pool *pgxpool.Pool
}

// New session store for the database flavor of the connected helper.
// The sessions table is created by the helper migrations.
func New(ctx context.Context, h *sql.Helper) (*Store, error) {
	switch h.Flavor {
	case sql.FlavorSQLite:
		return &Store{cleanupStore: sqlite3store.New(h.DB.DB)}, nil

	case sql.FlavorPostgreSQL:
		pool, err := pgxpool.New(ctx, h.URL())
		if err != nil {
			return nil, errors.Wrap(err, "error creating database pool")
		}
		return &Store{cleanupStore: pgxstore.New(pool), pool: pool}, nil

	default:
		return nil, errors.Newf("unknown database flavor %q, is the helper connected?", h.Flavor)
	}
}

// Close stops the expired session cleanup and closes the PostgreSQL connection pool, if any.
// The SQLite store shares the helper connection, which is left open.
func (s *Store) Close() {
	s.StopCleanup()
	if s.pool != nil {
		s.pool.Close()
	}
}
