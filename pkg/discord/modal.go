package discord

import "github.com/bwmarrin/discordgo"

const (
	CustomIDAmountModal = "amount_modal"
	CustomIDAmountInput = "amount"

	amountPlaceholder = "1000"
	amountMaxLength   = 32
)

// AmountModal builds the modal asking for an investment amount. label is
// already localized and doubles as the modal title.
func AmountModal(label string) *discordgo.InteractionResponseData {
	return &discordgo.InteractionResponseData{
		CustomID: CustomIDAmountModal,
		Title:    truncate(label, 45),
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.TextInput{
					CustomID:    CustomIDAmountInput,
					Label:       truncate(label, 45),
					Style:       discordgo.TextInputShort,
					Required:    true,
					MaxLength:   amountMaxLength,
					Placeholder: amountPlaceholder,
				},
			}},
		},
	}
}

// ExtractModalValue returns the value of the text input customID, or "".
func ExtractModalValue(data discordgo.ModalSubmitInteractionData, customID string) string {
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if input, ok := rc.(*discordgo.TextInput); ok && input.CustomID == customID {
				return input.Value
			}
		}
	}
	return ""
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
