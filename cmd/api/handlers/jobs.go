package handlers

import (
	"github.com/HBKLXNDR/telegram-consultant/services/workqueue"
	"github.com/gocraft/work"
	"go.uber.org/zap"
)

// JobFollowUp delivers the delayed follow-up of a lead submission once its
// timer fires. Always returns nil: follow-ups are fire-and-forget and a
// queue-level retry would double-message the requester.
func (h *Handlers) JobFollowUp(job *work.Job) error {
	chatID := job.ArgInt64(workqueue.ArgChatID)

	l := h.logger.With(zap.String("job", workqueue.JobFollowUp), zap.Int64("chat_id", chatID))

	if err := job.ArgError(); err != nil {
		l.Error("invalid job arguments", zap.Error(err))
		return nil
	}

	if err := h.pipeline.SendFollowUp(chatID); err != nil {
		l.Error("failed to send follow-up", zap.Error(err))
	}

	return nil
}
