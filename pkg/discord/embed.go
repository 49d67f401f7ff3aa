package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"profitbot/internal/domain"
)

const (
	embedColor = 0x5865F2

	CustomIDLanguagePrefix = "btn_lang_"
	CustomIDAmountButton   = "btn_amount"
)

var languageLabels = map[domain.Language]string{
	domain.LanguagePersian: "🇮🇷 فارسی",
	domain.LanguageEnglish: "🇬🇧 English",
}

// ResultEmbed wraps a rendered profit report. The first line of the report
// becomes the title.
func ResultEmbed(report string) *discordgo.MessageEmbed {
	report = strings.TrimSpace(report)
	title, body, _ := strings.Cut(report, "\n")
	return &discordgo.MessageEmbed{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(body),
		Color:       embedColor,
	}
}

// LanguageButtons returns one button per supported language.
func LanguageButtons() discordgo.ActionsRow {
	row := discordgo.ActionsRow{}
	for _, lang := range domain.SupportedLanguages() {
		row.Components = append(row.Components, discordgo.Button{
			Label:    languageLabels[lang],
			Style:    discordgo.SecondaryButton,
			CustomID: CustomIDLanguagePrefix + lang.String(),
		})
	}
	return row
}

// AmountButton opens the amount modal. label is already localized.
func AmountButton(label string) discordgo.ActionsRow {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "💰 " + label,
			Style:    discordgo.PrimaryButton,
			CustomID: CustomIDAmountButton,
		},
	}}
}

// ParseLanguageButton returns the language code carried by a language
// button custom ID.
func ParseLanguageButton(customID string) (string, bool) {
	code, ok := strings.CutPrefix(customID, CustomIDLanguagePrefix)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}
