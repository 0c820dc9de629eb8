package bot

import (
	"context"
	"strings"

	"github.com/ivanoskov/sentiment_bot/internal/metrics"
	"go.uber.org/zap"
)

const (
	CommandSentiment = "/sentiment"

	UsageText = "Please provide a coin. Example: /sentiment bitcoin"
)

// handleCommand возвращает текст ответа и false, если команда не наша
func (b *Bot) handleCommand(ctx context.Context, logger *zap.Logger, text string) (string, bool) {
	text = strings.ToLower(text)
	if !strings.HasPrefix(text, CommandSentiment) {
		return "", false
	}

	parts := strings.Fields(text)
	if len(parts) < 2 {
		metrics.CommandsHandled.WithLabelValues("missing_subject").Inc()
		return UsageText, true
	}

	subject := parts[1]
	logger.Info("sentiment requested", zap.String("subject", subject))
	metrics.CommandsHandled.WithLabelValues("lookup").Inc()

	return b.analyzer.Analyze(ctx, subject), true
}
