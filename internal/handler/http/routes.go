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
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/health", h.health)
		r.Post("/api/v1/auth/register", h.register)
		r.Post("/api/v1/auth/login", h.login)
	})

	// routes behind bearer-token authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/v1/auth/me", h.me)

		r.Route("/api/v1/checks", func(r chi.Router) {
			r.Get("/", h.listChecks)
			r.Post("/", h.createCheck)
			r.Get("/{checkID}", h.getCheck)
			r.Put("/{checkID}", h.updateCheck)
			r.Delete("/{checkID}", h.deleteCheck)
			r.Post("/{checkID}/check-today", h.checkToday)
		})

		r.Get("/api/v1/user/settings", h.getSettings)
		r.Put("/api/v1/user/settings", h.updateSettings)
		r.Delete("/api/v1/user/account", h.deleteAccount)

		r.Get("/api/v1/stats/yearly-activity", h.yearlyActivity)
	})

	return router
}
