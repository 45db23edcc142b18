package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"maragu.dev/httph"

	"maragu.dev/pager/metrics"
)

// setupRoutes as well as middleware.
func (s *Server) setupRoutes() {
	r := s.r

	r.Use(middleware.Compress(5))
	r.Use(middleware.RealIP)
	r.Use(OpenTelemetry)
	r.Use(metrics.Middleware)

	protection := http.NewCrossOriginProtection()
	if s.baseURL != "" {
		if err := protection.AddTrustedOrigin(s.baseURL); err != nil {
			panic("error adding trusted origin to CrossOriginProtection middleware (with " + s.baseURL + "): " + err.Error())
		}
	}
	r.Use(protection.Handler)

	r.NotFound(NotFound(s.htmlPage))

	r.Mux.Handle("/metrics", metrics.Handler())
	Health(r, s.log, s.db)

	// HTML
	r.Group(func(r *Router) {
		r.Use(httph.NoClickjacking)
		r.Use(s.sm.LoadAndSave)

		Items(r, s.log, s.items, s.sm, s.htmlPage, s.pageSize)
		Item(r, s.log, s.items, s.htmlPage)
	})
}
