package handlers

import (
	"github.com/go-chi/chi"
)

// Routes for app
func (h *Handlers) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.handleRoot())
	router.Get("/health", h.handleHealth())

	router.Post("/web-data", h.handleWebData())
	router.Post("/updates", h.handleUpdates())

	router.NotFound(h.handleNotFound())

	return router
}
