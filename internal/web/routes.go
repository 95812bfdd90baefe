package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kozaktomas/card-grid/internal/web/handlers"
)

func (s *Server) setupRoutes() {
	presetsHandler := handlers.NewPresetsHandler(s.config)
	layoutHandler := handlers.NewLayoutHandler(s.config)
	renderHandler := handlers.NewRenderHandler(s.config)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", handlers.HealthCheck)
		r.Get("/presets", presetsHandler.Get)
		r.Post("/layout", layoutHandler.Compute)
		r.Post("/render", renderHandler.Render)
		r.Post("/preview", renderHandler.Preview)
	})

	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}` + "\n"))
	})
}
