package testing

import (
	"testing"

	"maragu.dev/pager/postgrestest"
	"maragu.dev/pager/sql"
	"maragu.dev/pager/sqlitetest"
)

// Run f against both SQLite and PostgreSQL. The PostgreSQL run is skipped unless enabled, see [postgrestest.NewHelper].
func Run(t *testing.T, name string, f func(t *testing.T, h *sql.Helper)) {
	t.Run(name, func(t *testing.T) {
		t.Run("sqlite", func(t *testing.T) {
			db := sqlitetest.NewHelper(t)
			f(t, db)
		})

		t.Run("postgresql", func(t *testing.T) {
			db := postgrestest.NewHelper(t)
			f(t, db)
		})
	})
}
