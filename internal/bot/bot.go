package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/ivanoskov/sentiment_bot/internal/metrics"
	"go.uber.org/zap"
)

// ErrNoData тело webhook-запроса пустое или это не JSON
var ErrNoData = errors.New("no update data")

// Sender отправляет сообщения в Telegram; *tgbotapi.BotAPI подходит как есть
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Analyzer возвращает готовый текст ответа по теме
type Analyzer interface {
	Analyze(ctx context.Context, subject string) string
}

type Bot struct {
	api      Sender
	analyzer Analyzer
	logger   *zap.Logger
}

func NewBot(api Sender, analyzer Analyzer, logger *zap.Logger) *Bot {
	return &Bot{
		api:      api,
		analyzer: analyzer,
		logger:   logger.With(zap.String("component", "bot")),
	}
}

// NewSender создаёт клиент Bot API без запроса getMe: на холодном старте
// webhook не должен зависеть от доступности Telegram. Без токена ответы
// только пишутся в лог.
func NewSender(token string, timeout time.Duration, logger *zap.Logger) Sender {
	if token == "" {
		logger.Warn("TELEGRAM_TOKEN not set, replies will only be logged")
		return &logSender{logger: logger}
	}
	return newAPI(token, tgbotapi.APIEndpoint, timeout)
}

func newAPI(token, endpoint string, timeout time.Duration) *tgbotapi.BotAPI {
	api := &tgbotapi.BotAPI{
		Token:  token,
		Client: &http.Client{Timeout: timeout},
		Buffer: 100,
	}
	api.SetAPIEndpoint(endpoint)
	return api
}

// HandleWebhook - точка входа для обработки входящих webhook-обновлений.
// Ошибка отправки ответа возвращается, но на подтверждение webhook не влияет.
func (b *Bot) HandleWebhook(ctx context.Context, body []byte) error {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return ErrNoData
	}

	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		return fmt.Errorf("%w: %v", ErrNoData, err)
	}

	metrics.UpdatesReceived.WithLabelValues("webhook").Inc()
	return b.HandleUpdate(ctx, update)
}

// Start обрабатывает обновления из long polling, пока не закроется канал или ctx
func (b *Bot) Start(ctx context.Context, updates tgbotapi.UpdatesChannel) error {
	b.logger.Info("bot started in long polling mode")
	for {
		select {
		case <-ctx.Done():
			b.logger.Info("bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			metrics.UpdatesReceived.WithLabelValues("polling").Inc()
			if err := b.HandleUpdate(ctx, update); err != nil {
				// Логируем ошибку, но продолжаем работу
				b.logger.Error("error handling update", zap.Error(err))
			}
		}
	}
}

func (b *Bot) HandleUpdate(ctx context.Context, update tgbotapi.Update) error {
	message := update.Message
	if message == nil || message.Chat == nil || message.Text == "" {
		return nil
	}

	logger := b.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.Int("update_id", update.UpdateID),
		zap.Int64("chat_id", message.Chat.ID),
	)

	reply, ok := b.handleCommand(ctx, logger, message.Text)
	if !ok {
		return nil
	}
	return b.sendReply(message.Chat.ID, reply)
}

func (b *Bot) sendReply(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		metrics.RepliesFailed.Inc()
		return fmt.Errorf("send reply to chat %d: %w", chatID, withoutURL(err))
	}
	return nil
}

// withoutURL убирает адрес запроса (в нём токен бота) из сетевой ошибки
func withoutURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s sendMessage: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

// logSender заменяет Telegram, когда токен не задан
type logSender struct {
	logger *zap.Logger
}

func (s *logSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		s.logger.Info("would have sent reply",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("text", msg.Text))
	}
	return tgbotapi.Message{}, nil
}
