package error_notificator

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type TelegramInfra struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	service string
}

func NewTelegramInfra(token string, chatID int64, service string) (*TelegramInfra, error) {
	return NewTelegramInfraWithEndpoint(token, tgbotapi.APIEndpoint, chatID, service)
}

// NewTelegramInfraWithEndpoint — endpoint в формате tgbotapi ("https://host/bot%s/%s").
func NewTelegramInfraWithEndpoint(token, endpoint string, chatID int64, service string) (*TelegramInfra, error) {
	bot, err := tgbotapi.NewBotAPIWithAPIEndpoint(token, endpoint)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	return &TelegramInfra{bot: bot, chatID: chatID, service: service}, nil
}

func (i *TelegramInfra) Notify(ctx context.Context, err error, details string) error {
	text := fmt.Sprintf(
		"❗ Ошибка движка (%s)\n\nОшибка: %v\n\nДетали: %s",
		i.service,
		err,
		details,
	)

	if _, sendErr := i.bot.Send(tgbotapi.NewMessage(i.chatID, text)); sendErr != nil {
		return fmt.Errorf("telegram send: %w", sendErr)
	}
	return nil
}

// NopInfra — когда телеграм не настроен.
type NopInfra struct{}

func (NopInfra) Notify(context.Context, error, string) error { return nil }
