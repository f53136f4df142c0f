package bot

import (
	"time"

	"go.uber.org/zap"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

// FollowUpDelay between the requester's thank-you and the follow-up message.
const FollowUpDelay = 3 * time.Second

// Pipeline runs the notification sequence for a submitted lead: thank the
// requester, alert staff, then a delayed follow-up to the requester.
type Pipeline struct {
	logger    *zap.Logger
	messenger Messenger
	scheduler Scheduler
	cfg       Config
}

// NewPipeline service
func NewPipeline(logger *zap.Logger, messenger Messenger, scheduler Scheduler, cfg Config) *Pipeline {
	return &Pipeline{
		logger:    logger,
		messenger: messenger,
		scheduler: scheduler,
		cfg:       cfg,
	}
}

// LeadSubmitted issues the three steps in order. Steps are fire-and-forget:
// each failure is logged and the next step still runs, so a flaky send to the
// requester never costs the staff notification and vice versa. The follow-up
// timer starts here, not at delivery of the earlier sends.
func (p *Pipeline) LeadSubmitted(chatID int64, lead models.Lead) {
	l := p.logger.With(zap.Int64("chat_id", chatID), zap.String("intent", string(IntentLeadSubmitted)))

	if err := p.messenger.SendMessage(chatID, false, MsgLeadReceived); err != nil {
		l.Warn("failed to thank requester", zap.Error(err))
	}

	// A lost lead has direct business cost, hence error severity with the
	// full contact payload for manual recovery from the logs.
	if err := p.messenger.SendMessage(p.cfg.StaffChatID, false, MsgLeadNotification(lead, time.Now())); err != nil {
		l.Error("failed to notify staff of new lead",
			zap.String("name", lead.Name),
			zap.String("email", lead.Email),
			zap.String("number", lead.Number),
			zap.Error(err))
	}

	if err := p.scheduler.ScheduleFollowUp(chatID, FollowUpDelay); err != nil {
		l.Error("failed to schedule follow-up", zap.Error(err))
	}
}

// SendFollowUp delivers the delayed third message; the work queue calls this
// once the timer fires.
func (p *Pipeline) SendFollowUp(chatID int64) error {
	return p.messenger.SendMessage(chatID, false, MsgFollowUp(p.cfg.StaffUsername, p.cfg.HomepageURL))
}
