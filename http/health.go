package http

import (
	"log/slog"
	"net/http"
)

// Health responds with 200 OK if the database can be pinged.
func Health(r *Router, log *slog.Logger, db pinger) {
	r.Mux.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				log.Info("Error pinging database", "error", err)
				http.Error(w, "error pinging database", http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	})
}
