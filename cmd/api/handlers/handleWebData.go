package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HBKLXNDR/telegram-consultant/services/bot"
	"go.uber.org/zap"
)

// handleWebData confirms a mini-app purchase. Validation failures are the
// caller's fault (400); a failed or duplicate query answer is ours (500).
func (h *Handlers) handleWebData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := bot.WebDataRequest{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Warn("failed to decode web-data body", zap.Error(err))
			respondWithStatus(w, http.StatusBadRequest, statusMessage("error", "Missing required fields"))
			return
		}

		err := h.webApp.ConfirmPurchase(req)

		var validationErr *bot.ValidationError
		if errors.As(err, &validationErr) {
			respondWithStatus(w, http.StatusBadRequest, statusMessage("error", validationErr.Reason))
			return
		}
		if err != nil {
			h.logger.Error("failed to process web-data",
				zap.String("query_id", req.QueryID), zap.Error(err))
			respondWithStatus(w, http.StatusInternalServerError, statusMessage("error", err.Error()))
			return
		}

		respond(w, statusMessage("success", "Web data processed successfully"))
	}
}
