package discord

import (
	"context"
	"fmt"
	"log"

	"profitbot/internal/config"
	"profitbot/internal/ports/input"

	"github.com/bwmarrin/discordgo"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	guildID string
	handler *Handler
}

// NewBot creates a Bot around the profit use case.
func NewBot(cfg *config.Config, profit input.ProfitUseCase) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	bot := &Bot{
		session: s,
		guildID: cfg.GuildID,
		handler: NewHandler(profit),
	}
	bot.setupHandlers()
	return bot, nil
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.handler.Route(s, i)
}

// Start opens the gateway, registers the slash commands and blocks until ctx
// is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open discord session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range Commands() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.guildID, cmd); err != nil {
			log.Printf("⚠️ discord: register command %s: %v", cmd.Name, err)
		}
	}

	log.Println("🤖 Discord bot online.")
	<-ctx.Done()
	log.Println("👋 Discord bot stopping.")
	return nil
}
