package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/evaldash/internal/config"
	"github.com/dgallion1/evaldash/internal/source"
)

// Server is the HTTP surface of the dashboard.
type Server struct {
	router chi.Router
	src    *source.Watcher
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(src *source.Watcher, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		src: src,
		log: log,
		cfg: cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Page endpoints.
	r.Get("/health", s.handleHealth)
	r.Get("/", s.handleDashboard)
	r.Get("/chart/class-distribution.png", s.handleDistributionChart)

	// API endpoints, bearer-protected when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Get("/api/report", s.handleReport)
		r.Get("/api/report/download", s.handleReportDownload)
		r.Get("/api/stats", s.handleLoadStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
