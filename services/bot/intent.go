package bot

import (
	"strings"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

// Intent is the normalized meaning of an inbound event. Commands, callback
// data and keyboard captions all collapse into this one space, so a single
// handler serves all three origins.
type Intent string

// Intents
const (
	IntentUnrecognized  Intent = "unrecognized"
	IntentStart         Intent = "start"
	IntentHelp          Intent = "help"
	IntentServices      Intent = "services"
	IntentPrices        Intent = "prices"
	IntentPortfolio     Intent = "portfolio"
	IntentContact       Intent = "contact"
	IntentForm          Intent = "form"
	IntentShop          Intent = "shop"
	IntentLeadSubmitted Intent = "lead_submitted"
)

// tokenIntents is shared by commands and callback data; both namespaces use
// the same tokens.
var tokenIntents = map[string]Intent{
	"start":     IntentStart,
	"help":      IntentHelp,
	"services":  IntentServices,
	"prices":    IntentPrices,
	"portfolio": IntentPortfolio,
	"contact":   IntentContact,
	"form":      IntentForm,
	"shop":      IntentShop,
}

// captionIntents matches reply-keyboard captions by exact equality.
var captionIntents = map[string]Intent{
	BtnServices: IntentServices,
	BtnPrices:   IntentPrices,
	BtnContact:  IntentContact,
}

// Classification is the outcome of classifying one event. Lead is set only
// for IntentLeadSubmitted.
type Classification struct {
	Intent Intent
	Lead   models.Lead
}

// Classify maps any event to exactly one intent. It is pure: the only error
// it returns is a ParseError for malformed form payloads, which still yields
// IntentUnrecognized so the caller can stay silent.
func Classify(event Event) (Classification, error) {
	switch e := event.(type) {
	case CommandEvent:
		return Classification{Intent: tokenIntent(e.Command)}, nil
	case CallbackEvent:
		return Classification{Intent: tokenIntent(e.Data)}, nil
	case TextEvent:
		if intent, ok := captionIntents[e.Text]; ok {
			return Classification{Intent: intent}, nil
		}
		return Classification{Intent: IntentUnrecognized}, nil
	case FormEvent:
		lead, err := models.ParseLead(e.Payload)
		if err != nil {
			return Classification{Intent: IntentUnrecognized}, &ParseError{Err: err}
		}
		return Classification{Intent: IntentLeadSubmitted, Lead: lead}, nil
	}
	return Classification{Intent: IntentUnrecognized}, nil
}

func tokenIntent(token string) Intent {
	token = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(token)), "/")
	if intent, ok := tokenIntents[token]; ok {
		return intent
	}
	return IntentUnrecognized
}
