package config

import (
	"github.com/caarlos0/env"
	"github.com/go-playground/validator/v10"
	// auto loads .env
	_ "github.com/joho/godotenv/autoload"
)

// Config for app. Startup fails when any required value is absent.
type Config struct {
	BotToken      string `env:"BOT_TOKEN" validate:"required" json:"-"`
	Port          string `env:"PORT" envDefault:"8000"`
	WebAppURL     string `env:"WEB_APP_URL" validate:"required,url"`
	HomepageURL   string `env:"HOMEPAGE_URL" validate:"required,url"`
	StaffChatID   int64  `env:"TG_ID" validate:"required"`
	StaffUsername string `env:"TG_USERNAME" validate:"required"`

	RedisURL       string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisPassword  string `env:"REDIS_PASSWORD" envDefault:"" json:"-"`
	RedisNamespace string `env:"REDIS_NAMESPACE" envDefault:"telegram_consultant"`
}

// New app config
func New() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	err := validator.New().Struct(cfg)
	return cfg, err
}
