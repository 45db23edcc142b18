package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"

	"maragu.dev/pager/html"
	"maragu.dev/pager/model"
)

type itemStore interface {
	CountItems(ctx context.Context, f model.ItemFilter) (int, error)
	GetItems(ctx context.Context, f model.ItemFilter, limit, offset int) ([]model.Item, error)
	GetItem(ctx context.Context, id model.ItemID) (model.Item, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	baseURL  string
	db       pinger
	htmlPage html.PageFunc
	items    itemStore
	log      *slog.Logger
	pageSize int
	port     int
	r        *Router
	server   *http.Server
	sm       *scs.SessionManager
}

type NewServerOptions struct {
	// BaseURL is trusted for cross-origin requests, if set.
	BaseURL string
	DB      pinger
	// HTMLPage to wrap all pages in. Defaults to [html.Page].
	HTMLPage html.PageFunc
	Items    itemStore
	Log      *slog.Logger
	// PageSize used when neither the request nor the session has one. Defaults to 20.
	PageSize     int
	Port         int
	SecureCookie bool
	// SessionStore for sessions. Defaults to an in-memory store.
	SessionStore scs.Store
}

func NewServer(opts NewServerOptions) *Server {
	if opts.Log == nil {
		opts.Log = slog.New(slog.DiscardHandler)
	}

	if opts.Port == 0 {
		opts.Port = 8080
	}

	if opts.PageSize == 0 {
		opts.PageSize = 20
	}

	if opts.HTMLPage == nil {
		opts.HTMLPage = html.Page
	}

	mux := chi.NewRouter()

	sm := scs.New()
	sm.Lifetime = 365 * 24 * time.Hour
	sm.Cookie.Secure = opts.SecureCookie
	sm.Cookie.SameSite = http.SameSiteStrictMode
	if opts.SessionStore != nil {
		sm.Store = opts.SessionStore
	}

	s := &Server{
		baseURL:  opts.BaseURL,
		db:       opts.DB,
		htmlPage: opts.HTMLPage,
		items:    opts.Items,
		log:      opts.Log,
		pageSize: clampLimit(opts.PageSize),
		port:     opts.Port,
		r:        &Router{Mux: mux},
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", opts.Port),
			Handler:      mux,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		sm: sm,
	}

	s.setupRoutes()

	return s
}

// Handler with all routes and middleware.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start the server by listening on the configured port.
func (s *Server) Start() error {
	s.log.Info("Starting server", "address", fmt.Sprintf("http://localhost:%d", s.port))

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// Stop the Server gracefully, waiting for existing HTTP connections to finish.
func (s *Server) Stop() error {
	s.log.Info("Stopping server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}

	s.log.Info("Stopped server")

	return nil
}
