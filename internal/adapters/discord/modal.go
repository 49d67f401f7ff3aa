package discord

import (
	pkgdiscord "profitbot/pkg/discord"

	"github.com/bwmarrin/discordgo"
)

// HandleAmountModalSubmit computes the profit for the amount typed in the modal.
func (h *Handler) HandleAmountModalSubmit(r responder, i *discordgo.InteractionCreate) {
	ctx, cancel := newContext()
	defer cancel()
	raw := pkgdiscord.ExtractModalValue(i.ModalSubmitData(), pkgdiscord.CustomIDAmountInput)
	h.submitAmount(ctx, r, i, interactionUserID(i), raw)
}
