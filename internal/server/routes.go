package server

import (
	"github.com/go-chi/chi/v5"

	"github.com/promptloom/promptloom/internal/server/handlers"
)

// registerRoutes registers all HTTP routes.
func (s *Server) registerRoutes() {
	// Health endpoints
	s.router.Get("/health", handlers.HealthHandler)
	s.router.Get("/health/live", handlers.LivenessHandler)
	s.router.Get("/health/ready", handlers.ReadinessHandler)

	// Version endpoint
	s.router.Get("/version", handlers.VersionHandler)

	// Prompt assembly API
	s.router.Route("/v1", func(r chi.Router) {
		r.Get("/nodes", s.api.NodesHandler)
		r.Get("/files", s.api.FilesHandler)
		r.Post("/generate", s.api.GenerateHandler)
		r.Post("/batch", s.api.BatchHandler)
		r.Post("/combine", s.api.CombineHandler)
		r.Post("/rednote", s.api.RedNoteHandler)
		r.Post("/suffix", s.api.SuffixHandler)
	})
}
