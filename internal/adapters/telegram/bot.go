package telegram

import (
	"context"
	"fmt"
	"log"

	"profitbot/internal/config"
	"profitbot/internal/ports/input"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const pollTimeout = 60

// Bot is the Telegram adapter. It long-polls for updates.
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
}

func NewBot(cfg *config.Config, profit input.ProfitUseCase) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Bot{api: api, handler: NewHandler(api, profit)}, nil
}

// Start handles updates, one goroutine each, until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = pollTimeout
	updates := b.api.GetUpdatesChan(u)

	log.Printf("🤖 Telegram bot online as @%s.", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			log.Println("👋 Telegram bot stopping.")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handler.HandleUpdate(ctx, update)
		}
	}
}
