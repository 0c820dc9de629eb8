package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivanoskov/sentiment_bot/internal/app"
	"github.com/ivanoskov/sentiment_bot/internal/bot"
	"github.com/ivanoskov/sentiment_bot/internal/config"
	"github.com/ivanoskov/sentiment_bot/internal/logger"
	"github.com/ivanoskov/sentiment_bot/internal/server"
	"go.uber.org/zap"
)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sender := bot.NewSender(cfg.TelegramToken, cfg.HTTPTimeout, zl)
	b := app.NewBot(ctx, cfg, sender, zl)

	gin.SetMode(gin.ReleaseMode)
	router := server.NewRouter(server.NewWebhookController(b, zl), zl)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("webhook server starting", zap.String("addr", srv.Addr), zap.String("path", bot.WebhookPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}
	zl.Info("server stopped")
}
