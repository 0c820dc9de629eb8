package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultNewsBaseURL = "https://newsapi.org"
	DefaultGeminiModel = "gemini-2.0-flash"
)

// Config читается один раз при старте и передаётся в конструкторы
type Config struct {
	TelegramToken string
	NewsAPIKey    string
	GeminiAPIKey  string
	GeminiModel   string
	NewsBaseURL   string
	HTTPTimeout   time.Duration
	Port          string
	LogLevel      string
	LogFormat     string
}

// LoadConfig подхватывает .env (если он есть) и переменные окружения
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetDefault("gemini_model", DefaultGeminiModel)
	v.SetDefault("news_api_base_url", DefaultNewsBaseURL)
	v.SetDefault("http_timeout", "30s")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.AutomaticEnv()

	cfg := &Config{
		TelegramToken: v.GetString("telegram_token"),
		NewsAPIKey:    v.GetString("news_api_key"),
		GeminiAPIKey:  v.GetString("gemini_api_key"),
		GeminiModel:   v.GetString("gemini_model"),
		NewsBaseURL:   v.GetString("news_api_base_url"),
		HTTPTimeout:   v.GetDuration("http_timeout"),
		Port:          v.GetString("port"),
		LogLevel:      v.GetString("log_level"),
		LogFormat:     v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Ключи API здесь не проверяются: без них запросы вернут понятную ошибку пользователю
func (c *Config) validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.Port == "" {
		return errors.New("PORT is empty")
	}
	if c.GeminiModel == "" {
		return errors.New("GEMINI_MODEL is empty")
	}
	return nil
}
