package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"airbnb-dashboard/utils"
)

// Server wraps the HTTP server that exposes the dashboard.
type Server struct {
	httpServer *http.Server
	logger     *utils.Logger
}

// NewRouter wires the pages, API and operational endpoints.
func NewRouter(h *Handler, logger *utils.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger(logger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/explorer", http.StatusFound)
	})
	r.Get("/explorer", h.ExplorerPage)
	r.Get("/insights", h.InsightsPage)
	r.Get("/estimator", h.EstimatorPage)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", h.GetOptions)
		r.Get("/explorer", h.GetExplorer)
		r.Get("/explorer/export.xlsx", h.ExportXLSX)
		r.Get("/explorer/export.csv", h.ExportCSV)
		r.Get("/insights", h.GetInsights)
		r.Get("/estimate", h.GetEstimate)
	})

	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, handler http.Handler, logger *utils.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			ErrorLog:          slog.NewLogLogger(logger.Slog().Handler(), slog.LevelError),
		},
		logger: logger,
	}
}

// Start serves until Stop is called. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.logger.Info("[server] Listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop drains in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("[server] Shutting down")
	return s.httpServer.Shutdown(ctx)
}
