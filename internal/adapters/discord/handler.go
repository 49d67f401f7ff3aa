package discord

import (
	"context"
	"log"
	"time"

	"profitbot/internal/domain"
	"profitbot/internal/ports/input"
	pkgdiscord "profitbot/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

const (
	platform       = "discord"
	handlerTimeout = 10 * time.Second
)

// Handler handles Discord interactions using the profit use case.
type Handler struct {
	profit input.ProfitUseCase
}

// NewHandler creates a Handler.
func NewHandler(profit input.ProfitUseCase) *Handler {
	return &Handler{profit: profit}
}

// Route dispatches an interaction to its handler. Unknown interactions are ignored.
func (h *Handler) Route(r responder, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case commandStart:
			h.HandleStart(r, i)
		case commandProfit:
			h.HandleProfit(r, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		if customID == pkgdiscord.CustomIDAmountButton {
			h.HandleAmountButton(r, i)
		} else if code, ok := pkgdiscord.ParseLanguageButton(customID); ok {
			h.HandleLanguageButton(r, i, code)
		}
	case discordgo.InteractionModalSubmit:
		if i.ModalSubmitData().CustomID == pkgdiscord.CustomIDAmountModal {
			h.HandleAmountModalSubmit(r, i)
		}
	}
}

func newContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), handlerTimeout)
}

// interactionUserID works for guild interactions (Member) and DMs (User).
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// errorReply picks what to show when a use case failed. The use case reply
// is preferred since it is already localized.
func (h *Handler) errorReply(ctx context.Context, userID, action, reply string, err error) string {
	if !pkgdiscord.IsUserError(err) {
		log.Printf("❌ discord: %s (user=%s): %v", action, userID, err)
	}
	if reply != "" {
		return reply
	}
	return h.profit.Text(ctx, platform, userID, pkgdiscord.ErrorMessageKey(err))
}

func (h *Handler) amountComponents(ctx context.Context, userID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		pkgdiscord.AmountButton(h.profit.Text(ctx, platform, userID, domain.KeyAmountLabel)),
	}
}
