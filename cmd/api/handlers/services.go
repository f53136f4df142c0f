package handlers

import (
	"time"

	"github.com/HBKLXNDR/telegram-consultant/cmd/api/config"
	"github.com/HBKLXNDR/telegram-consultant/services/bot"
	"go.uber.org/zap"
)

// Handlers struct
type Handlers struct {
	logger     *zap.Logger
	cfg        config.Config
	dispatcher *bot.Dispatcher
	webApp     *bot.WebApp
	pipeline   *bot.Pipeline
	started    time.Time
}

// New service
func New(
	logger *zap.Logger,
	cfg config.Config,
	dispatcher *bot.Dispatcher,
	webApp *bot.WebApp,
	pipeline *bot.Pipeline,
) *Handlers {
	return &Handlers{logger, cfg, dispatcher, webApp, pipeline, time.Now()}
}
