package main

import (
	"flag"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ivanoskov/sentiment_bot/internal/bot"
	"github.com/ivanoskov/sentiment_bot/internal/config"
	"github.com/ivanoskov/sentiment_bot/internal/logger"
	"go.uber.org/zap"
)

// Регистрирует webhook и меню команд в Telegram
func main() {
	webhookURL := flag.String("url", "", "deployment URL, e.g. my-bot.vercel.app")
	commands := flag.Bool("commands", true, "register the command menu")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	if cfg.TelegramToken == "" {
		zl.Fatal("TELEGRAM_TOKEN not found in environment variables")
	}

	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		zl.Fatal("telegram client", zap.Error(err))
	}

	if *webhookURL != "" {
		link, err := bot.RegisterWebhook(api, *webhookURL)
		if err != nil {
			zl.Fatal("webhook registration failed", zap.Error(err))
		}
		zl.Info("webhook set", zap.String("url", link))
	}

	if *commands {
		if err := bot.RegisterCommands(api); err != nil {
			zl.Fatal("command registration failed", zap.Error(err))
		}
		zl.Info("commands registered")
	}
}
