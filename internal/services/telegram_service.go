package services

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"itacatech/internal/models"
)

// TelegramService forwards portal alerts to a team chat. Optional: when no
// token is configured the service is simply not constructed.
type TelegramService struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramService(botToken string, chatID int64) (*TelegramService, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("telegram: %w", err)
	}
	return &TelegramService{bot: bot, chatID: chatID}, nil
}

// NotifyAlert sends the alert text to the configured chat. Best effort: the
// caller never fails on delivery problems.
func (t *TelegramService) NotifyAlert(alert models.Alert) {
	if t == nil || t.chatID == 0 {
		return
	}
	text := fmt.Sprintf("[%s] %s", alert.Type, alert.Message)
	msg := tgbotapi.NewMessage(t.chatID, text)
	if _, err := t.bot.Send(msg); err != nil {
		log.Printf("[tg][alert] send failed: %v", err)
	}
}
