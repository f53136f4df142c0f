package bot

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"go.uber.org/zap"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

// Product selected in the mini-app shop.
type Product struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// WebDataRequest is the purchase confirmation posted by the mini-app through
// the HTTP door.
type WebDataRequest struct {
	Products   []Product `json:"products" validate:"required,min=1,dive"`
	TotalPrice float64   `json:"totalPrice" validate:"required,gt=0"`
	QueryID    string    `json:"queryId" validate:"required"`
}

// WebApp bridges validated purchase confirmations to a single web-app query
// answer. Unlike the lead pipeline this path is synchronous: the caller gets
// the delivery outcome back.
type WebApp struct {
	logger    *zap.Logger
	messenger Messenger
	validate  *validator.Validate
	trans     ut.Translator
}

// NewWebApp bridge
func NewWebApp(logger *zap.Logger, messenger Messenger) *WebApp {
	validate := validator.New()

	english := en.New()
	trans, _ := ut.New(english, english).GetTranslator("en")
	_ = entranslations.RegisterDefaultTranslations(validate, trans)

	return &WebApp{
		logger:    logger,
		messenger: messenger,
		validate:  validate,
		trans:     trans,
	}
}

// ConfirmPurchase validates the request and answers its web-app query with a
// confirmation article. Invalid input yields a ValidationError. A failed or
// duplicate answer yields a DeliveryError: Telegram accepts only one answer
// per query id, and a second attempt signals a caller bug worth surfacing.
func (w *WebApp) ConfirmPurchase(req WebDataRequest) error {
	if err := w.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return &ValidationError{Reason: err.Error()}
		}
		reasons := make([]string, 0, len(fieldErrs))
		for _, reason := range fieldErrs.Translate(w.trans) {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		return &ValidationError{Reason: strings.Join(reasons, "; ")}
	}

	article := confirmationArticle(req)
	if err := w.messenger.AnswerWebAppQuery(req.QueryID, article); err != nil {
		w.logger.Error("failed to answer web app query",
			zap.String("query_id", req.QueryID),
			zap.Float64("total_price", req.TotalPrice),
			zap.Error(err))
		return &DeliveryError{Op: "answer web app query", Err: err}
	}

	w.logger.Info("confirmed web purchase",
		zap.String("query_id", req.QueryID),
		zap.Int("products", len(req.Products)),
		zap.Float64("total_price", req.TotalPrice))
	return nil
}

func confirmationArticle(req WebDataRequest) models.WebAppArticle {
	items := make([]string, len(req.Products))
	for i, product := range req.Products {
		items[i] = "- " + product.Title
	}

	text := "🎉 Вітаємо зі зверненням!\n\n" +
		"💰 Сума замовлення: " + strconv.FormatFloat(req.TotalPrice, 'f', -1, 64) + "\n" +
		"📦 Обрані послуги:\n" + strings.Join(items, "\n")

	return models.WebAppArticle{
		Type:                "article",
		ID:                  req.QueryID,
		Title:               MsgPurchaseTitle,
		InputMessageContent: models.ArticleContent{MessageText: text},
	}
}
