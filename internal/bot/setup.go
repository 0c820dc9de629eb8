package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const WebhookPath = "/api/webhook"

// Requester нужен для служебных вызовов Bot API (setWebhook, setMyCommands)
type Requester interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// WebhookURL дописывает схему и путь webhook к адресу деплоя
func WebhookURL(deployURL string) string {
	u := strings.TrimSpace(deployURL)
	if !strings.HasPrefix(u, "http") {
		u = "https://" + u
	}
	if strings.HasSuffix(u, WebhookPath) {
		return u
	}
	return strings.TrimRight(u, "/") + WebhookPath
}

// Commands меню команд бота
func Commands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: strings.TrimPrefix(CommandSentiment, "/"), Description: "Get AI sentiment for a coin"},
	}
}

func RegisterWebhook(api Requester, deployURL string) (string, error) {
	link := WebhookURL(deployURL)
	wh, err := tgbotapi.NewWebhook(link)
	if err != nil {
		return "", fmt.Errorf("parse webhook url %q: %w", link, err)
	}
	if _, err := api.Request(wh); err != nil {
		return "", fmt.Errorf("set webhook: %w", err)
	}
	return link, nil
}

func RegisterCommands(api Requester) error {
	if _, err := api.Request(tgbotapi.NewSetMyCommands(Commands()...)); err != nil {
		return fmt.Errorf("set commands: %w", err)
	}
	return nil
}
