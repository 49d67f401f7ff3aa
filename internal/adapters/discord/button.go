package discord

import (
	"profitbot/internal/domain"
	pkgdiscord "profitbot/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

// HandleLanguageButton stores the language picked with a btn_lang_<code> button.
func (h *Handler) HandleLanguageButton(r responder, i *discordgo.InteractionCreate, code string) {
	ctx, cancel := newContext()
	defer cancel()
	userID := interactionUserID(i)

	reply, err := h.profit.ChooseLanguage(ctx, platform, userID, code)
	if err != nil {
		respondEphemeral(r, i.Interaction, h.errorReply(ctx, userID, "choose language", reply, err))
		return
	}
	respondWithComponents(r, i.Interaction, reply, h.amountComponents(ctx, userID))
}

// HandleAmountButton opens the amount modal in the user's language.
func (h *Handler) HandleAmountButton(r responder, i *discordgo.InteractionCreate) {
	ctx, cancel := newContext()
	defer cancel()
	label := h.profit.Text(ctx, platform, interactionUserID(i), domain.KeyAmountLabel)
	respondModal(r, i.Interaction, pkgdiscord.AmountModal(label))
}
