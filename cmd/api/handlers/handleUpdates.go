package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/HBKLXNDR/telegram-consultant/models"
	"github.com/HBKLXNDR/telegram-consultant/services/bot"
	"go.uber.org/zap"
)

// handleUpdates receives Telegram webhook notifications. The platform only
// wants a 200; dispatch outcomes are logged, never surfaced, so one bad
// update cannot make Telegram re-deliver or stall the stream.
func (h *Handlers) handleUpdates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		update := models.Update{}
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			h.logger.Error("failed to decode update body", zap.Error(err))
			return
		}

		event, ok := bot.EventFromUpdate(update)
		if !ok {
			return
		}

		_ = h.dispatcher.Dispatch(event)
	}
}
