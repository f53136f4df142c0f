package telegram

import (
	"encoding/json"
	"net/url"

	"github.com/HBKLXNDR/telegram-consultant/models"

	tgbotapi "github.com/dilfish/telegram-bot-api-up"
)

// Bot wraps the Telegram transport. Every method reports its failure to the
// caller; the policy for swallowing or surfacing lives with the caller.
type Bot struct {
	BotAPI tgbotapi.BotAPI
}

// New bot from credential token
func New(token string) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{*bot}, nil
}

// SendMessage text
func (bot *Bot) SendMessage(chatID int64, markdown bool, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	msg.DisableWebPagePreview = true
	_, err := bot.BotAPI.Send(msg)
	return err
}

// SendKeyboardMessage sends text with reply markup. The markup value is
// marshalled as-is, so models keyboard structs with web_app buttons work
// even though the library's own types predate them.
func (bot *Bot) SendKeyboardMessage(chatID int64, markdown bool, text string, markup interface{}) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markdown {
		msg.ParseMode = tgbotapi.ModeMarkdown
	}
	msg.ReplyMarkup = markup
	_, err := bot.BotAPI.Send(msg)
	return err
}

// AnswerCallback clears the pending-callback UI state for a callback query.
func (bot *Bot) AnswerCallback(callbackID string) error {
	_, err := bot.BotAPI.AnswerCallbackQuery(tgbotapi.NewCallback(callbackID, ""))
	return err
}

// AnswerWebAppQuery answers a mini-app query with an article result. The
// endpoint is newer than the library, so it goes through MakeRequest.
// Telegram rejects a second answer for the same query id; that rejection
// comes back as an error here.
func (bot *Bot) AnswerWebAppQuery(queryID string, article models.WebAppArticle) error {
	result, err := json.Marshal(article)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Add("web_app_query_id", queryID)
	params.Add("result", string(result))

	_, err = bot.BotAPI.MakeRequest("answerWebAppQuery", params)
	return err
}

// SetCommands registers the command menu shown by the Telegram client.
func (bot *Bot) SetCommands(commands []models.BotCommand) error {
	encoded, err := json.Marshal(commands)
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Add("commands", string(encoded))

	_, err = bot.BotAPI.MakeRequest("setMyCommands", params)
	return err
}
