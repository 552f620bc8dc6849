package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/account/register", h.register)
		r.Post("/api/account/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
	})

	// routes guarded by the bearer-token middleware
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/values", h.getValues)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
