package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ivanoskov/sentiment_bot/internal/app"
	"github.com/ivanoskov/sentiment_bot/internal/config"
	"github.com/ivanoskov/sentiment_bot/internal/logger"
	"go.uber.org/zap"
)

// Локальный запуск через long polling, без публичного webhook
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	if cfg.TelegramToken == "" {
		zl.Fatal("TELEGRAM_TOKEN is required for long polling")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		zl.Fatal("telegram client", zap.Error(err))
	}

	// Webhook и getUpdates несовместимы
	if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		zl.Fatal("delete webhook", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := app.NewBot(ctx, cfg, api, zl)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := api.GetUpdatesChan(u)
	defer api.StopReceivingUpdates()

	zl.Info("authorized", zap.String("bot", api.Self.UserName))
	if err := b.Start(ctx, updates); err != nil {
		zl.Fatal("bot stopped", zap.Error(err))
	}
}
