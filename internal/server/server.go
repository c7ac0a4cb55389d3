// Package server exposes the aggregation service over HTTP.
//
// The API mirrors the three package queries plus cache statistics:
//
//	GET /healthz
//	GET /v1/packages/{owner}/{repo}/readme
//	GET /v1/packages/{owner}/{repo}/info
//	GET /v1/search?q=...&author=...&keyword=...&platform=...&license=...
//	GET /v1/cache/stats
//
// All responses are JSON. Structured error codes from pkg/errors map onto
// HTTP statuses, so clients can branch on either.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/swiftscout/swiftscout/pkg/packages"
)

// Server is the HTTP surface over a packages.Service.
type Server struct {
	service *packages.Service
	logger  *log.Logger
	router  chi.Router
}

// New creates a Server. A nil logger selects log.Default().
func New(service *packages.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{service: service, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(s.recoverPanics)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/packages/{owner}/{repo}/readme", s.handleReadme)
		r.Get("/packages/{owner}/{repo}/info", s.handleInfo)
		r.Get("/search", s.handleSearch)
		r.Get("/cache/stats", s.handleCacheStats)
		r.Delete("/cache", s.handleCacheClear)
	})

	s.router = r
	return s
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe runs the server on addr until ctx is cancelled, then
// shuts down gracefully with a short drain window.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("server: listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
