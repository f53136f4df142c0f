package bot

import (
	"strings"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

// Event is one inbound trigger from the chat platform. Every event carries
// exactly one destination, used for all replies it causes.
type Event interface {
	Destination() int64
}

// CommandEvent is a slash command typed into the chat.
type CommandEvent struct {
	ChatID  int64
	Command string
}

// Destination chat
func (e CommandEvent) Destination() int64 { return e.ChatID }

// CallbackEvent is an inline-button press. Its callback id must be
// acknowledged exactly once, whatever the handler does.
type CallbackEvent struct {
	ChatID     int64
	CallbackID string
	Data       string
}

// Destination chat
func (e CallbackEvent) Destination() int64 { return e.ChatID }

// TextEvent is a plain text message, matched against reply-keyboard captions
// by exact equality.
type TextEvent struct {
	ChatID int64
	Text   string
}

// Destination chat
func (e TextEvent) Destination() int64 { return e.ChatID }

// FormEvent carries the serialized mini-app form submission.
type FormEvent struct {
	ChatID  int64
	Payload string
}

// Destination chat
func (e FormEvent) Destination() int64 { return e.ChatID }

// EventFromUpdate converts a webhook update into an event. Updates that carry
// nothing dispatchable (edits, joins, empty messages) yield ok=false.
func EventFromUpdate(update models.Update) (Event, bool) {
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil {
		return CallbackEvent{
			ChatID:     update.CallbackQuery.Message.Chat.ID,
			CallbackID: update.CallbackQuery.ID,
			Data:       update.CallbackQuery.Data,
		}, true
	}

	if update.Message == nil {
		return nil, false
	}

	chatID := update.Message.Chat.ID

	if update.Message.WebAppData != nil {
		return FormEvent{ChatID: chatID, Payload: update.Message.WebAppData.Data}, true
	}

	text := update.Message.Text
	if text == "" {
		return nil, false
	}
	if strings.HasPrefix(text, "/") {
		return CommandEvent{ChatID: chatID, Command: strings.Fields(text)[0]}, true
	}

	return TextEvent{ChatID: chatID, Text: text}, true
}
