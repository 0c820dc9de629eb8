package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/ivanoskov/sentiment_bot/internal/app"
	"github.com/ivanoskov/sentiment_bot/internal/bot"
	"github.com/ivanoskov/sentiment_bot/internal/config"
	"github.com/ivanoskov/sentiment_bot/internal/logger"
	"go.uber.org/zap"
)

// Request структура входящего запроса от API Gateway
type Request struct {
	Body string `json:"body"`
}

// Response структура ответа для API Gateway
type Response struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers,omitempty"`
}

// function держит клиентов между вызовами одного экземпляра функции.
// Неудачная инициализация не запоминается: следующий вызов попробует снова.
type function struct {
	mu      sync.Mutex
	handler *bot.Bot
	logger  *zap.Logger
}

var instance = &function{}

func (f *function) setup(ctx context.Context) (*bot.Bot, *zap.Logger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.handler != nil {
		return f.handler, f.logger, nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, err
	}

	sender := bot.NewSender(cfg.TelegramToken, cfg.HTTPTimeout, zl)
	f.handler = app.NewBot(ctx, cfg, sender, zl)
	f.logger = zl
	return f.handler, f.logger, nil
}

// Handler подтверждает любое разобранное обновление кодом 200, даже если
// инициализация или отправка ответа не удались: иначе Telegram повторит запрос.
func Handler(ctx context.Context, request Request) (*Response, error) {
	handler, zl, err := instance.setup(ctx)
	if err != nil {
		log.Printf("function init failed: %v", err)
		return jsonResponse(200, map[string]string{"status": "ok"})
	}

	// Обработка webhook-обновления
	if err := handler.HandleWebhook(ctx, []byte(request.Body)); err != nil {
		if errors.Is(err, bot.ErrNoData) {
			return jsonResponse(400, map[string]string{"status": "no data"})
		}
		zl.Error("update handled with error", zap.Error(err))
	}

	return jsonResponse(200, map[string]string{"status": "ok"})
}

func jsonResponse(status int, payload map[string]string) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: status,
		Body:       string(body),
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
	}, nil
}

func main() {
	// Точка входа для локального тестирования
}
