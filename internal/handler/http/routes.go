package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		if h.metrics != nil {
			r.Handle("/metrics", h.metrics)
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Head("/api/sync", h.syncHash)
		r.Get("/api/sync", h.syncFetch)
		r.Delete("/api/sync", h.syncReset)

		r.Put("/api/devices", h.registerDevice)
		r.Delete("/api/devices/{token}", h.revokeDevice)

		r.Group(func(r chi.Router) {
			r.Use(h.withContentHash)

			r.Post("/api/profiles", h.createProfile)
			r.Patch("/api/profiles/{uuid}", h.updateProfile)
			r.Post("/api/cards", h.createCard)
			r.Patch("/api/cards/{uuid}", h.updateCard)
			r.Post("/api/relations", h.putRelation)
			r.Post("/api/subscriptions", h.subscribe)
		})

		r.Delete("/api/profiles/{uuid}", h.deleteProfile)
		r.Delete("/api/cards/{uuid}", h.deleteCard)
		r.Delete("/api/relations/{uuid}", h.deleteRelation)
		r.Delete("/api/subscriptions/{uuid}", h.unsubscribe)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
