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
		r.Post("/api/users", h.register)
		r.Post("/api/users/login", h.login)
	})

	// routes behind the session-token check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/users/current", h.currentUser)
		r.Patch("/api/users/current", h.updateCurrentUser)
		r.Delete("/api/users/logout", h.logout)

		r.Post("/api/contacts", h.createContact)
		r.Get("/api/contacts", h.searchContacts)
		r.Get("/api/contacts/{contactID}", h.getContact)
		r.Put("/api/contacts/{contactID}", h.updateContact)
		r.Delete("/api/contacts/{contactID}", h.deleteContact)

		r.Post("/api/contacts/{contactID}/addresses", h.createAddress)
		r.Get("/api/contacts/{contactID}/addresses", h.listAddresses)
		r.Get("/api/contacts/{contactID}/addresses/{addressID}", h.getAddress)
		r.Put("/api/contacts/{contactID}/addresses/{addressID}", h.updateAddress)
		r.Delete("/api/contacts/{contactID}/addresses/{addressID}", h.deleteAddress)
	})

	return router
}
