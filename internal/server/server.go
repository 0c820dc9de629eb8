package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ivanoskov/sentiment_bot/internal/bot"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// WebhookHandler обрабатывает тело webhook-запроса от Telegram
type WebhookHandler interface {
	HandleWebhook(ctx context.Context, body []byte) error
}

// WebhookController отвечает Telegram всегда одинаково, независимо от того,
// удалось ли доставить ответ в чат: так Telegram не повторяет запрос.
type WebhookController struct {
	handler WebhookHandler
	logger  *zap.Logger
}

func NewWebhookController(handler WebhookHandler, logger *zap.Logger) *WebhookController {
	return &WebhookController{
		handler: handler,
		logger:  logger.With(zap.String("component", "webhook")),
	}
}

// Webhook is the Gin handler for POST /api/webhook.
func (c *WebhookController) Webhook(ctx *gin.Context) {
	body, err := ctx.GetRawData()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"status": "no data"})
		return
	}

	if err := c.handler.HandleWebhook(ctx.Request.Context(), body); err != nil {
		if errors.Is(err, bot.ErrNoData) {
			ctx.JSON(http.StatusBadRequest, gin.H{"status": "no data"})
			return
		}
		c.logger.Error("update handled with error", zap.Error(err))
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NewRouter собирает gin.Engine со всеми маршрутами
func NewRouter(controller *WebhookController, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "sentiment bot",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST(bot.WebhookPath, controller.Webhook)

	return router
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}
