// Package bot routes inbound Telegram events to reply handlers and runs the
// lead notification pipeline. It talks to the outside world only through the
// Messenger and Scheduler capabilities so transports can be substituted.
package bot

import (
	"time"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

// Messenger sends outbound messages to the chat platform.
type Messenger interface {
	SendMessage(chatID int64, markdown bool, text string) error
	SendKeyboardMessage(chatID int64, markdown bool, text string, markup interface{}) error
	AnswerCallback(callbackID string) error
	AnswerWebAppQuery(queryID string, article models.WebAppArticle) error
}

// Scheduler defers a follow-up send without blocking the caller.
type Scheduler interface {
	ScheduleFollowUp(chatID int64, delay time.Duration) error
}

// Config holds the fixed identifiers replies are built from.
type Config struct {
	WebAppURL     string
	HomepageURL   string
	StaffChatID   int64
	StaffUsername string
}
