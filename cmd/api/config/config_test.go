package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("BOT_TOKEN", "123456:test-token")
	t.Setenv("WEB_APP_URL", "https://app.example.com")
	t.Setenv("HOMEPAGE_URL", "https://example.com")
	t.Setenv("TG_ID", "42")
	t.Setenv("TG_USERNAME", "@manager")
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()

	require.NoError(t, err)
	assert.Equal(t, "123456:test-token", cfg.BotToken)
	assert.Equal(t, int64(42), cfg.StaffChatID)
	assert.Equal(t, "@manager", cfg.StaffUsername)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "telegram_consultant", cfg.RedisNamespace)
}

func TestNewFailsFastOnMissingRequiredValue(t *testing.T) {
	required := []string{"BOT_TOKEN", "WEB_APP_URL", "HOMEPAGE_URL", "TG_ID", "TG_USERNAME"}

	for _, name := range required {
		t.Run(name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(name, "")

			_, err := New()

			assert.Error(t, err)
		})
	}
}
