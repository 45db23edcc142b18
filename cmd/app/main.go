package main

import (
	"context"
	"log/slog"
	"time"

	"maragu.dev/env"
	"maragu.dev/errors"

	"maragu.dev/pager/app"
	"maragu.dev/pager/http"
	"maragu.dev/pager/sessionstore"
	"maragu.dev/pager/sql"
)

func main() {
	app.Start(start)
}

func start(ctx context.Context, log *slog.Logger, eg app.Goer) error {
	// PostgreSQL is used if a database URL is given, SQLite otherwise
	databaseURL := env.GetStringOrDefault("DATABASE_URL", "")
	var databasePath string
	if databaseURL == "" {
		databasePath = env.GetStringOrDefault("DATABASE_PATH", "app.db")
	}

	db := sql.NewHelper(sql.NewHelperOptions{
		Log: log,
		Postgres: sql.PostgresOptions{
			ConnectionMaxIdleTime: env.GetDurationOrDefault("DATABASE_CONNECTION_MAX_IDLE_TIME", 10*time.Minute),
			ConnectionMaxLifetime: env.GetDurationOrDefault("DATABASE_CONNECTION_MAX_LIFETIME", time.Hour),
			MaxIdleConnections:    env.GetIntOrDefault("DATABASE_MAX_IDLE_CONNECTIONS", 10),
			MaxOpenConnections:    env.GetIntOrDefault("DATABASE_MAX_OPEN_CONNECTIONS", 10),
			URL:                   databaseURL,
		},
		SQLite: sql.SQLiteOptions{
			Path: databasePath,
		},
	})
	if err := db.Connect(ctx); err != nil {
		return errors.Wrap(err, "error connecting to database")
	}

	if err := db.MigrateUp(ctx); err != nil {
		return errors.Wrap(err, "error migrating database")
	}

	store, err := sessionstore.New(ctx, db)
	if err != nil {
		return errors.Wrap(err, "error creating session store")
	}

	s := http.NewServer(http.NewServerOptions{
		BaseURL:      env.GetStringOrDefault("BASE_URL", ""),
		DB:           db,
		Items:        db,
		Log:          log,
		PageSize:     env.GetIntOrDefault("PAGE_SIZE", 20),
		Port:         env.GetIntOrDefault("SERVER_PORT", 8080),
		SecureCookie: env.GetBoolOrDefault("SECURE_COOKIE", true),
		SessionStore: store,
	})

	eg.Go(func() error {
		return s.Start()
	})

	eg.Go(func() error {
		<-ctx.Done()
		defer store.Close()
		return s.Stop()
	})

	return nil
}
