// Package api serves computed task graphs over HTTP.
//
// Routes:
//
//	GET  /healthz                                  build info
//	POST /v1/graph                                 compute a graph from tasks in the body
//	GET  /v1/projects/{project}/graph              graph of a stored project as JSON
//	GET  /v1/projects/{project}/graph.svg          the same graph rendered as SVG
//	GET  /v1/projects/{project}/diagnostics        blocked tasks, dangling references, cycles
//
// The project routes accept ?focus=<task id> to compute the highlight and
// ?refresh=1 to skip cached graphs and renders. Task lists are read from the
// store on every request.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/core/layout"
	"github.com/tam-pham-duc/ProManage-AI-sub001/pkg/pipeline"
)

// maxBodySize bounds POST /v1/graph request bodies.
const maxBodySize = 8 << 20

// shutdownTimeout bounds graceful shutdown.
const shutdownTimeout = 10 * time.Second

// Options configures the server.
type Options struct {
	// Layout is the geometry used when a request does not override it.
	Layout layout.Config
	// ReadTimeout and WriteTimeout apply to the http.Server.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the taskgraph HTTP API.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	opts   Options
	router chi.Router
}

// New creates a server backed by runner. The runner's Source serves the
// project routes.
func New(runner *pipeline.Runner, logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	opts.Layout = opts.Layout.WithDefaults()

	s := &Server{
		runner: runner,
		logger: logger,
		opts:   opts,
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/graph", s.handleComputeGraph)
		r.Route("/projects/{project}", func(r chi.Router) {
			r.Get("/graph", s.handleProjectGraph)
			r.Get("/graph.svg", s.handleProjectSVG)
			r.Get("/diagnostics", s.handleProjectDiagnostics)
		})
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
