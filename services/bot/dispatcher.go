package bot

import (
	"go.uber.org/zap"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

// HandlerFunc replies to one intent for one destination.
type HandlerFunc func(chatID int64) error

// Dispatcher routes classified events to their handlers. The registry is
// built once here and never mutated, so concurrent Dispatch calls share it
// without locking.
type Dispatcher struct {
	logger    *zap.Logger
	messenger Messenger
	pipeline  *Pipeline
	cfg       Config
	handlers  map[Intent]HandlerFunc
}

// NewDispatcher with the full intent registry
func NewDispatcher(logger *zap.Logger, messenger Messenger, pipeline *Pipeline, cfg Config) *Dispatcher {
	d := &Dispatcher{
		logger:    logger,
		messenger: messenger,
		pipeline:  pipeline,
		cfg:       cfg,
	}
	d.handlers = map[Intent]HandlerFunc{
		IntentStart:     d.handleStart,
		IntentHelp:      d.handleHelp,
		IntentServices:  d.handleServices,
		IntentPrices:    d.handlePrices,
		IntentPortfolio: d.handlePortfolio,
		IntentContact:   d.handleContact,
		IntentForm:      d.handleForm,
		IntentShop:      d.handleShop,
	}
	return d
}

// Dispatch processes one inbound event. Unrecognized input stays silent.
// The returned error records the failure for the caller's bookkeeping; it
// never needs further handling and never affects other events. A callback
// event is acknowledged exactly once after its handler, even when the
// handler failed, so the client's pending-callback spinner always clears.
func (d *Dispatcher) Dispatch(event Event) error {
	chatID := event.Destination()

	classification, parseErr := Classify(event)
	intent := classification.Intent

	l := d.logger.With(zap.Int64("chat_id", chatID), zap.String("intent", string(intent)))

	var result error
	switch {
	case parseErr != nil:
		l.Error("failed to parse form payload", zap.Error(parseErr))
		result = parseErr
	case intent == IntentUnrecognized:
		// unknown commands and captions get no reply
	case intent == IntentLeadSubmitted:
		d.pipeline.LeadSubmitted(chatID, classification.Lead)
	default:
		if err := d.handlers[intent](chatID); err != nil {
			l.Error("failed to send reply", zap.Error(err))
			result = &DeliveryError{Op: "send reply", Err: err}
		}
	}

	if callback, ok := event.(CallbackEvent); ok {
		if err := d.messenger.AnswerCallback(callback.CallbackID); err != nil {
			l.Error("failed to answer callback query",
				zap.String("callback_id", callback.CallbackID), zap.Error(err))
			if result == nil {
				result = &DeliveryError{Op: "answer callback", Err: err}
			}
		}
	}

	return result
}

func (d *Dispatcher) handleStart(chatID int64) error {
	markup := models.InlineKeyboard{InlineKeyboard: [][]models.InlineButton{
		{
			{Text: BtnOrderSite, WebApp: &models.WebAppInfo{URL: d.cfg.WebAppURL}},
			{Text: BtnLeaveRequest, WebApp: &models.WebAppInfo{URL: d.cfg.WebAppURL + "/form"}},
		},
		{
			{Text: BtnServices, CallbackData: "/services"},
			{Text: BtnPrices, CallbackData: "/prices"},
		},
		{
			{Text: BtnContact, CallbackData: "/contact"},
			{Text: BtnPortfolio, CallbackData: "/portfolio"},
		},
	}}
	return d.messenger.SendKeyboardMessage(chatID, false, MsgStart, markup)
}

func (d *Dispatcher) handleHelp(chatID int64) error {
	return d.messenger.SendMessage(chatID, false, MsgHelp())
}

func (d *Dispatcher) handleServices(chatID int64) error {
	return d.messenger.SendMessage(chatID, true, MsgServices())
}

func (d *Dispatcher) handlePrices(chatID int64) error {
	return d.messenger.SendMessage(chatID, false, MsgPrices())
}

func (d *Dispatcher) handlePortfolio(chatID int64) error {
	return d.messenger.SendMessage(chatID, false, MsgPortfolio(d.cfg.HomepageURL))
}

func (d *Dispatcher) handleContact(chatID int64) error {
	markup := models.InlineKeyboard{InlineKeyboard: [][]models.InlineButton{
		{
			{Text: "📞 Зателефонувати", URL: "tel:+380123456789"},
			{Text: "📧 Написати на Email", URL: "mailto:contact@example.com"},
		},
		{
			{Text: "💬 Написати в Telegram", URL: "https://t.me/support_manager"},
		},
		{
			{Text: "🔙 Головне меню", CallbackData: "/start"},
		},
	}}
	return d.messenger.SendKeyboardMessage(chatID, true, MsgContact(d.cfg.HomepageURL), markup)
}

func (d *Dispatcher) handleForm(chatID int64) error {
	markup := models.ReplyKeyboard{
		Keyboard: [][]models.ReplyButton{
			{{Text: BtnOpenForm, WebApp: &models.WebAppInfo{URL: d.cfg.WebAppURL + "/form"}}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
	return d.messenger.SendKeyboardMessage(chatID, false, MsgFormPrompt, markup)
}

func (d *Dispatcher) handleShop(chatID int64) error {
	markup := models.ReplyKeyboard{
		Keyboard: [][]models.ReplyButton{
			{{Text: BtnOpenShop, WebApp: &models.WebAppInfo{URL: d.cfg.WebAppURL}}},
		},
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
	return d.messenger.SendKeyboardMessage(chatID, false, MsgShopPrompt, markup)
}
