package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	// routes carrying a session
	router.Group(func(r chi.Router) {
		r.Use(h.withSession, h.withIntegrityCheck)

		r.Get("/api/session", h.current)
		r.Post("/api/session/login", h.login)
		r.Post("/api/session/registration", h.requestRegistration)
		r.Post("/api/session/registration/cancel", h.cancelRegistration)
		r.Post("/api/session/register", h.register)
		r.Post("/api/session/navigate", h.navigate)
		r.Post("/api/session/logout", h.logout)
		r.Post("/api/creations", h.submitCreation)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
