package discord

import (
	"context"

	"profitbot/internal/domain"
	pkgdiscord "profitbot/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

const (
	commandStart  = "start"
	commandProfit = "profit"

	optionLanguage = "language"
	optionAmount   = "amount"
)

// Commands returns the slash commands registered at startup.
func Commands() []*discordgo.ApplicationCommand {
	languageOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        optionLanguage,
		Description: "Reply language",
		Required:    false,
	}
	for _, lang := range domain.SupportedLanguages() {
		languageOption.Choices = append(languageOption.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  lang.String(),
			Value: lang.String(),
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandStart,
			Description: "Open the profit calculator",
			Options:     []*discordgo.ApplicationCommandOption{languageOption},
		},
		{
			Name:        commandProfit,
			Description: "Estimate the daily, weekly and monthly profit of an amount",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        optionAmount,
					Description: "Amount to invest, e.g. 1000",
					Required:    true,
				},
				languageOption,
			},
		},
	}
}

// commandOption returns the string value of the named option, or "".
func commandOption(data discordgo.ApplicationCommandInteractionData, name string) string {
	for _, opt := range data.Options {
		if opt.Name != name {
			continue
		}
		if v, ok := opt.Value.(string); ok {
			return v
		}
	}
	return ""
}

// HandleStart answers /start with the welcome text, the language buttons and
// the amount button. An explicit language option is stored first.
func (h *Handler) HandleStart(r responder, i *discordgo.InteractionCreate) {
	ctx, cancel := newContext()
	defer cancel()
	userID := interactionUserID(i)
	data := i.ApplicationCommandData()

	if lang := commandOption(data, optionLanguage); lang != "" {
		if reply, err := h.profit.ChooseLanguage(ctx, platform, userID, lang); err != nil {
			respondEphemeral(r, i.Interaction, h.errorReply(ctx, userID, "choose language", reply, err))
			return
		}
	}

	reply, err := h.profit.Start(ctx, platform, userID, string(i.Locale))
	if err != nil {
		respondEphemeral(r, i.Interaction, h.errorReply(ctx, userID, "start", reply, err))
		return
	}
	components := append([]discordgo.MessageComponent{pkgdiscord.LanguageButtons()}, h.amountComponents(ctx, userID)...)
	respondWithComponents(r, i.Interaction, reply, components)
}

// HandleProfit answers /profit with the profit report for the given amount.
func (h *Handler) HandleProfit(r responder, i *discordgo.InteractionCreate) {
	ctx, cancel := newContext()
	defer cancel()
	userID := interactionUserID(i)
	data := i.ApplicationCommandData()

	if lang := commandOption(data, optionLanguage); lang != "" {
		if reply, err := h.profit.ChooseLanguage(ctx, platform, userID, lang); err != nil {
			respondEphemeral(r, i.Interaction, h.errorReply(ctx, userID, "choose language", reply, err))
			return
		}
	}

	h.submitAmount(ctx, r, i, userID, commandOption(data, optionAmount))
}

func (h *Handler) submitAmount(ctx context.Context, r responder, i *discordgo.InteractionCreate, userID, raw string) {
	reply, err := h.profit.SubmitAmount(ctx, platform, userID, raw)
	if err != nil {
		respondWithComponents(r, i.Interaction, h.errorReply(ctx, userID, "submit amount", reply, err), h.amountComponents(ctx, userID))
		return
	}
	respondEmbed(r, i.Interaction, pkgdiscord.ResultEmbed(reply), h.amountComponents(ctx, userID))
}
