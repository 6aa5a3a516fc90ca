// Package server exposes the query runner as a read-only JSON API.
//
// Routes:
//
//	GET /healthz
//	GET /v1/systems
//	GET /v1/systems/{level}
//	GET /v1/matula/{n}
//	GET /v1/partitions/{n}?limit=k
//	GET /v1/pascal/{n}
//	GET /v1/simplex/{dim}
//	GET /v1/nested/{level}
//
// Failures are reported as {"code": ..., "message": ...} with status 400
// for invalid input and 404 for unknown structural levels.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/cosmos/pkg/query"
)

// Size caps for the public endpoints. Partition enumeration is capped by
// the runner's MaxPartitions instead. Matula numbers are capped here even
// when the runner allows more.
const (
	maxPascalRow   = 1000
	maxNestedLevel = 8
	maxMatula      = 1_000_000
)

// Server serves the HTTP API.
type Server struct {
	runner *query.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by runner.
func New(runner *query.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/systems", s.handleSystems)
		r.Get("/systems/{level}", s.handleSystem)
		r.Get("/matula/{n}", s.handleMatula)
		r.Get("/partitions/{n}", s.handlePartitions)
		r.Get("/pascal/{n}", s.handlePascal)
		r.Get("/simplex/{dim}", s.handleSimplex)
		r.Get("/nested/{level}", s.handleNested)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
