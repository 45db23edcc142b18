package sqlitetest

import (
	"log/slog"
	"path/filepath"
	"testing"

	"maragu.dev/env"

	"maragu.dev/pager/sql"
)

// NewHelper for testing, with a fresh, migrated database in a temporary directory.
func NewHelper(t *testing.T, opts ...HelperOption) *sql.Helper {
	t.Helper()

	var c helperConfig
	for _, opt := range opts {
		opt(&c)
	}

	_ = env.Load("../.env.test")

	h := sql.NewHelper(sql.NewHelperOptions{
		Log: slog.New(slog.NewTextHandler(&testWriter{t: t}, nil)),
		SQLite: sql.SQLiteOptions{
			Path: filepath.Join(t.TempDir(), env.GetStringOrDefault("DATABASE_PATH", "test.db")),
		},
	})
	if err := h.Connect(t.Context()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := h.DB.Close(); err != nil {
			t.Error(err)
		}
	})

	if err := h.MigrateUp(t.Context()); err != nil {
		t.Fatal(err)
	}

	loadFixtures(t, h, c.fixtures)

	return h
}

type testWriter struct {
	t *testing.T
}

func (t *testWriter) Write(p []byte) (n int, err error) {
	t.t.Log(string(p))
	return len(p), nil
}
