package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/slidedeck/internal/config"
	"github.com/dgallion1/slidedeck/internal/metrics"
	"github.com/dgallion1/slidedeck/internal/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP API server for slidedeck.
type Server struct {
	router       chi.Router
	sessions     *session.Manager
	stats        *metrics.CompileStats
	presentation *config.Presentation
	log          *slog.Logger
	cfg          config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(sessions *session.Manager, stats *metrics.CompileStats, pres *config.Presentation, log *slog.Logger, cfg config.Config) *Server {
	if pres == nil {
		pres = config.DefaultPresentation()
	}
	s := &Server{
		sessions:     sessions,
		stats:        stats,
		presentation: pres,
		log:          log,
		cfg:          cfg,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		r.Use(RateLimit(s.cfg.RateLimit, s.cfg.RateBurst))

		r.Post("/api/decks/compile", s.handleCompile)
		r.Post("/api/decks/import", s.handleImport)

		r.Post("/api/sessions", s.handleCreateSession)
		r.Route("/api/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", s.handleGetSession)
			r.Delete("/", s.handleDeleteSession)
			r.Get("/outline", s.handleSessionOutline)
			r.Post("/events", s.handleSessionEvent)
			r.Put("/source", s.handleReplaceSource)
		})

		r.Get("/api/stats/compile", s.handleCompileStats)
		r.Get("/api/presentation/config", s.handlePresentationConfig)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
