package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "tg-token")
	t.Setenv("NEWS_API_KEY", "news-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "tg-token", cfg.TelegramToken)
	assert.Equal(t, "news-key", cfg.NewsAPIKey)
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("NEWS_API_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultGeminiModel, cfg.GeminiModel)
	assert.Equal(t, DefaultNewsBaseURL, cfg.NewsBaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "8080", cfg.Port)
}

func TestLoadConfig_MissingKeysAreNotFatal(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("NEWS_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.TelegramToken)
	assert.Empty(t, cfg.NewsAPIKey)
}

func TestLoadConfig_InvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "-1s")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP_TIMEOUT")
}
