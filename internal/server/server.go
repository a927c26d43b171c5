package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/liftplan/internal/program"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	routines *program.Service
	log      *slog.Logger
	apiKey   string
	router   chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey leaves
// generation endpoints open.
func New(routines *program.Service, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		routines: routines,
		log:      log,
		apiKey:   apiKey,
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1/routines", func(r chi.Router) {
		r.Get("/", s.handleListRoutines)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.handleGetRoutine)
			r.Get("/parameters", s.handleParameters)
			r.Get("/defaults", s.handleDefaults)

			r.Group(func(r chi.Router) {
				if s.apiKey != "" {
					r.Use(APIKeyAuth(s.apiKey))
				}
				r.Get("/defaults/routine", s.handleDefaultRoutine)
				r.Post("/generate", s.handleGenerate)
			})
		})
	})
}

// SetMCP mounts an MCP transport handler at /mcp. Its tools generate
// routines, so it sits behind the same key as /generate.
func (s *Server) SetMCP(h http.Handler) {
	if s.apiKey != "" {
		h = APIKeyAuth(s.apiKey)(h)
	}
	s.router.Handle("/mcp", h)
}
