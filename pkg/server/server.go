// Package server exposes the parse -> layout -> render pipeline over HTTP,
// so a caller who does not want to embed a Go module can POST a graph and
// get a computed layout back.
//
// The handler is a thin wrapper around [pipeline.Runner] - it owns no
// layout logic of its own, only request decoding, response encoding, and
// error-code mapping.
package server

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

// Server holds the dependencies shared by every request handler.
type Server struct {
	Runner *pipeline.Runner
	Logger *log.Logger
}

// New returns a Server backed by runner. A nil logger falls back to
// runner's own logger.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{Runner: runner, Logger: logger}
}

// Router builds the chi mux: a request-id middleware (so every log line
// and error response can be correlated back to one HTTP request), a
// request logger, panic recovery, and the routes themselves.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", s.handleHealth)
	r.Post("/layout", s.handleLayout)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
