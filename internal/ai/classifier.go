package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/ivanoskov/sentiment_bot/internal/model"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// generator часть genai.Models, которой мы пользуемся
type generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Classifier просит Gemini оценить настроение по заголовкам
type Classifier struct {
	models generator
	model  string
	logger *zap.Logger
}

// NewClassifier создаёт клиент Gemini. Если клиент создать не удалось,
// возвращается классификатор, который на каждый запрос отвечает KindNotConfigured.
func NewClassifier(ctx context.Context, apiKey, modelName string, logger *zap.Logger) (*Classifier, error) {
	c := &Classifier{
		model:  modelName,
		logger: logger.With(zap.String("component", "ai")),
	}
	if apiKey == "" {
		return c, fmt.Errorf("GEMINI_API_KEY is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return c, fmt.Errorf("create gemini client: %w", err)
	}
	c.models = client.Models
	return c, nil
}

// Classify отправляет промпт и возвращает обрезанный текст ответа как есть
func (c *Classifier) Classify(ctx context.Context, subject string, headlines []string) (string, error) {
	if c.models == nil {
		return "", &model.LookupError{Kind: model.KindNotConfigured, Op: "ai", Message: "GEMINI_API_KEY not configured"}
	}

	prompt := BuildPrompt(subject, headlines)
	c.logger.Debug("sending prompt to gemini",
		zap.String("model", c.model),
		zap.Int("headlines", len(headlines)))

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", &model.LookupError{Kind: model.KindNetwork, Op: "ai", Message: "gemini api call failed", Err: err}
	}

	text := strings.TrimSpace(responseText(resp))
	if text == "" {
		return "", &model.LookupError{Kind: model.KindMalformed, Op: "ai", Message: "empty response"}
	}
	return text, nil
}

// Text() пропускает части с размышлениями модели
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Text()
}
