package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ivanoskov/sentiment_bot/internal/metrics"
	"github.com/ivanoskov/sentiment_bot/internal/model"
	"go.uber.org/zap"
)

// MaxHeadlines сколько заголовков уходит в промпт
const MaxHeadlines = 5

// NewsSource источник заголовков (NewsAPI)
type NewsSource interface {
	Headlines(ctx context.Context, subject string) ([]string, error)
}

// Classifier модель, которая оценивает настроение по заголовкам
type Classifier interface {
	Classify(ctx context.Context, subject string, headlines []string) (string, error)
}

// SentimentService связывает поиск новостей и модель
type SentimentService struct {
	news       NewsSource
	classifier Classifier
	logger     *zap.Logger
}

func NewSentimentService(news NewsSource, classifier Classifier, logger *zap.Logger) *SentimentService {
	return &SentimentService{
		news:       news,
		classifier: classifier,
		logger:     logger.With(zap.String("component", "sentiment")),
	}
}

// Analyze всегда возвращает текст для пользователя: либо ответ модели, либо
// сообщение об ошибке. Ошибки дальше не пробрасываются.
func (s *SentimentService) Analyze(ctx context.Context, subject string) string {
	start := time.Now()
	result, err := s.Lookup(ctx, subject)
	metrics.LookupDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		kind := model.KindOf(err)
		metrics.LookupFailures.WithLabelValues(string(kind)).Inc()
		if kind == model.KindEmpty {
			s.logger.Info("no news for subject", zap.String("subject", subject))
		} else {
			s.logger.Warn("sentiment lookup failed",
				zap.String("subject", subject),
				zap.String("kind", string(kind)),
				zap.Error(err))
		}
		return ReplyFor(subject, err)
	}

	metrics.SentimentLabels.WithLabelValues(string(model.ParseSentiment(result))).Inc()
	return result
}

// Lookup то же, что Analyze, но с типизированной ошибкой
func (s *SentimentService) Lookup(ctx context.Context, subject string) (string, error) {
	headlines, err := s.news.Headlines(ctx, subject)
	if err != nil {
		return "", err
	}
	if len(headlines) == 0 {
		return "", &model.LookupError{Kind: model.KindEmpty, Op: "news", Message: "no articles for " + subject}
	}
	if len(headlines) > MaxHeadlines {
		headlines = headlines[:MaxHeadlines]
	}

	text, err := s.classifier.Classify(ctx, subject, headlines)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// ReplyFor переводит ошибку поиска в текст для чата
func ReplyFor(subject string, err error) string {
	var lookupErr *model.LookupError
	if errors.As(err, &lookupErr) {
		if lookupErr.Kind == model.KindEmpty {
			return fmt.Sprintf("No recent news found for %s.", subject)
		}
	}
	return fmt.Sprintf("Error analyzing sentiment: %v", err)
}
