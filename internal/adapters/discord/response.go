package discord

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// responder is the part of *discordgo.Session the handlers need.
type responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

func respond(r responder, i *discordgo.Interaction, resp *discordgo.InteractionResponse) {
	if err := r.InteractionRespond(i, resp); err != nil {
		log.Printf("⚠️ discord: respond to interaction %s: %v", i.ID, err)
	}
}

func respondEphemeral(r responder, i *discordgo.Interaction, content string) {
	respondWithComponents(r, i, content, nil)
}

func respondWithComponents(r responder, i *discordgo.Interaction, content string, components []discordgo.MessageComponent) {
	respond(r, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondEmbed(r responder, i *discordgo.Interaction, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	respond(r, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	})
}

func respondModal(r responder, i *discordgo.Interaction, data *discordgo.InteractionResponseData) {
	respond(r, i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: data,
	})
}
