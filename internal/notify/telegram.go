package notify

import (
	"context"
	"fmt"

	"tikang-admin/internal/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSink forwards notices to an admin chat. Used for the alert
// channel: payment decisions, blocks, deletions made from any terminal.
type TelegramSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramSink(cfg config.TelegramConfig) (*TelegramSink, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("telegram bot init: %w", err)
	}
	return &TelegramSink{bot: bot, chatID: cfg.ChatID}, nil
}

func (s *TelegramSink) Deliver(ctx context.Context, notice Notice) error {
	text := notice.Message
	switch notice.Level {
	case LevelError:
		text = "⚠️ " + text
	case LevelSuccess:
		text = "✅ " + text
	}
	msg := tgbotapi.NewMessage(s.chatID, text)
	_, err := s.bot.Send(msg)
	return err
}
