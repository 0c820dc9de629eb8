package app

import (
	"context"

	"github.com/ivanoskov/sentiment_bot/internal/ai"
	"github.com/ivanoskov/sentiment_bot/internal/bot"
	"github.com/ivanoskov/sentiment_bot/internal/config"
	"github.com/ivanoskov/sentiment_bot/internal/news"
	"github.com/ivanoskov/sentiment_bot/internal/service"
	"go.uber.org/zap"
)

// NewBot собирает бота из конфигурации. Отсутствие ключа Gemini не фатально:
// пользователь получит сообщение о том, что ключ не настроен.
func NewBot(ctx context.Context, cfg *config.Config, sender bot.Sender, logger *zap.Logger) *bot.Bot {
	newsClient := news.NewClient(cfg.NewsAPIKey, cfg.NewsBaseURL, cfg.HTTPTimeout, logger)

	classifier, err := ai.NewClassifier(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
	if err != nil {
		logger.Warn("gemini client failed to initialize", zap.Error(err))
	}

	sentiment := service.NewSentimentService(newsClient, classifier, logger)
	return bot.NewBot(sender, sentiment, logger)
}
