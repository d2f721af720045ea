package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"doce-festa/go_backend/internal/app/config"
	"doce-festa/go_backend/internal/app/http/handlers"
	"doce-festa/go_backend/internal/app/http/middleware"
	"doce-festa/go_backend/internal/pkg/logger"
)

func NewRouter(cfg config.Config, h *handlers.Handlers, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.InternalAuth(cfg.InternalToken))

		r.Get("/clients", h.ListClients)
		r.Post("/clients", h.CreateClient)
		r.Get("/materials", h.ListMaterials)
		r.Post("/materials", h.CreateMaterial)
		r.Post("/quotes", h.CreateQuote)
		r.Post("/quotes/preview", h.PreviewQuote)
	})

	return r
}
