package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// probes
	router.Get("/healthz", h.healthz)
	router.Get("/readyz", h.readyz)

	router.Route("/api", func(r chi.Router) {
		r.Get("/config", h.getPublicConfig)
		r.Get("/version/", h.getServerVersion)
		r.Get("/version/build", h.getBuildInfo)
	})

	return router
}
