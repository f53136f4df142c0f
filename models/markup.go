package models

// Reply markup payloads built here instead of with the bot library's types:
// the library predates web_app buttons, but marshals any ReplyMarkup value
// with encoding/json, so these structs go over the wire as-is.

// WebAppInfo points a keyboard button at a mini-app URL.
type WebAppInfo struct {
	URL string `json:"url"`
}

// InlineButton is one button of an inline keyboard. Exactly one of
// URL, CallbackData or WebApp should be set.
type InlineButton struct {
	Text         string      `json:"text"`
	URL          string      `json:"url,omitempty"`
	CallbackData string      `json:"callback_data,omitempty"`
	WebApp       *WebAppInfo `json:"web_app,omitempty"`
}

// InlineKeyboard markup
type InlineKeyboard struct {
	InlineKeyboard [][]InlineButton `json:"inline_keyboard"`
}

// ReplyButton is one button of a reply keyboard.
type ReplyButton struct {
	Text   string      `json:"text"`
	WebApp *WebAppInfo `json:"web_app,omitempty"`
}

// ReplyKeyboard markup
type ReplyKeyboard struct {
	Keyboard        [][]ReplyButton `json:"keyboard"`
	ResizeKeyboard  bool            `json:"resize_keyboard"`
	OneTimeKeyboard bool            `json:"one_time_keyboard"`
}

// ArticleContent is the message content of a web-app query answer.
type ArticleContent struct {
	MessageText string `json:"message_text"`
}

// WebAppArticle is the inline result sent with answerWebAppQuery.
// A query id can be answered exactly once.
type WebAppArticle struct {
	Type                string         `json:"type"`
	ID                  string         `json:"id"`
	Title               string         `json:"title"`
	InputMessageContent ArticleContent `json:"input_message_content"`
}
