package models

import "encoding/json"

// Chat model
type Chat struct {
	ID int64 `json:"id"`
}

// User model
type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username"`
}

// WebAppData carries the serialized payload of a mini-app form submission.
type WebAppData struct {
	Data       string `json:"data"`
	ButtonText string `json:"button_text"`
}

// Message model
type Message struct {
	MessageID  int         `json:"message_id"`
	Chat       Chat        `json:"chat"`
	Text       string      `json:"text"`
	From       User        `json:"from"`
	WebAppData *WebAppData `json:"web_app_data,omitempty"`
}

// CallbackQuery model
type CallbackQuery struct {
	ID      string   `json:"id"`
	From    User     `json:"from"`
	Message *Message `json:"message,omitempty"`
	Data    string   `json:"data"`
}

// Update is a single webhook notification from Telegram.
type Update struct {
	UpdateID      int            `json:"update_id"`
	Message       *Message       `json:"message,omitempty"`
	CallbackQuery *CallbackQuery `json:"callback_query,omitempty"`
}

// Lead is a contact submission from the mini-app form.
type Lead struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Number string `json:"number"`
}

// ParseLead decodes the raw web_app_data payload.
func ParseLead(raw string) (Lead, error) {
	lead := Lead{}
	err := json.Unmarshal([]byte(raw), &lead)
	return lead, err
}

// BotCommand is one entry for setMyCommands.
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}
