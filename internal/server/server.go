package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/metrics"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/planner"
	"github.com/NP-Code99/CDC-2025-Planetary-Systems/internal/storage"
)

// ImportLogSource lists catalog import runs. *storage.DB satisfies it.
type ImportLogSource interface {
	QueryImportLogs(ctx context.Context, limit int) ([]storage.ImportLog, error)
}

var _ ImportLogSource = (*storage.DB)(nil)

// Options holds the optional collaborators of a Server.
type Options struct {
	CORSOrigin string
	Metrics    *metrics.Manager
	Gatherer   prometheus.Gatherer // serves /metrics when set
	Imports    ImportLogSource     // serves /api/v1/imports when set
	MCP        http.Handler        // serves /mcp when set
}

// Server holds dependencies for HTTP handlers.
type Server struct {
	planner *planner.Service
	opts    Options
	log     *slog.Logger
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(p *planner.Service, opts Options, log *slog.Logger) *Server {
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}
	s := &Server{
		planner: p,
		opts:    opts,
		log:     log,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS(s.opts.CORSOrigin))
	if s.opts.Metrics != nil {
		s.router.Use(RequestMetrics(s.opts.Metrics))
	}

	s.router.Get("/health", s.handleHealth)
	if s.opts.Gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.opts.Gatherer, promhttp.HandlerOpts{}))
	}
	if s.opts.MCP != nil {
		s.router.Handle("/mcp", s.opts.MCP)
	}

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/predict", s.handlePredict)
		r.Post("/plan", s.handlePlan)
		r.Post("/session", s.handleSession)
		r.Get("/exercises", s.handleExercises)
		r.Get("/themes", s.handleThemes)

		r.Get("/exoplanets", s.handleSearchExoplanets)
		r.Get("/exoplanets/stats", s.handleExoplanetStats)
		r.Get("/exoplanets/random", s.handleRandomExoplanets)
		r.Get("/exoplanets/{name}", s.handleGetExoplanet)
		r.Get("/exoplanets/{name}/plan", s.handleExoplanetPlan)

		if s.opts.Imports != nil {
			r.Get("/imports", s.handleImportLogs)
		}
	})
}
