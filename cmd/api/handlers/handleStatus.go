package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// handleHealth reports liveness and uptime
func (h *Handlers) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"uptime":    time.Since(h.started).Seconds(),
		})
	}
}

// handleRoot returns service metadata
func (h *Handlers) handleRoot() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(w, map[string]interface{}{
			"message":       "Welcome to the Telegram Bot API!",
			"version":       "1.0.0",
			"documentation": "/docs",
			"homepage":      h.cfg.HomepageURL,
			"webAppUrl":     h.cfg.WebAppURL,
		})
	}
}

// handleNotFound answers any unmatched route
func (h *Handlers) handleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.logger.Warn("route not found",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		respondWithStatus(w, http.StatusNotFound, statusMessage("error", "Resource not found"))
	}
}
