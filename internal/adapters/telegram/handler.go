package telegram

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"profitbot/internal/domain"
	"profitbot/internal/ports/input"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	platform = "telegram"

	languageCallbackPrefix = "lang_"
)

var languageLabels = map[domain.Language]string{
	domain.LanguagePersian: "🇮🇷 فارسی",
	domain.LanguageEnglish: "🇬🇧 English",
}

// Handler turns Telegram updates into profit use case calls.
type Handler struct {
	bot    BotAPI
	profit input.ProfitUseCase
}

func NewHandler(bot BotAPI, profit input.ProfitUseCase) *Handler {
	return &Handler{bot: bot, profit: profit}
}

func (h *Handler) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}
	if update.Message == nil || update.Message.From == nil || update.Message.Chat == nil {
		return
	}
	if update.Message.IsCommand() {
		h.handleCommand(ctx, update.Message)
		return
	}
	h.handleText(ctx, update.Message)
}

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID := userKey(msg.From)
	switch msg.Command() {
	case "start":
		reply, err := h.profit.Start(ctx, platform, userID, msg.From.LanguageCode)
		h.logError("start", userID, err)
		out := tgbotapi.NewMessage(msg.Chat.ID, reply)
		if err == nil {
			out.ReplyMarkup = languageKeyboard()
		}
		h.send(out)
	case "amount":
		reply, err := h.profit.AskAmount(ctx, platform, userID)
		h.logError("ask amount", userID, err)
		h.send(tgbotapi.NewMessage(msg.Chat.ID, reply))
	default:
		log.Printf("⚠️ telegram: unknown command /%s from user %s", msg.Command(), userID)
	}
}

func (h *Handler) handleText(ctx context.Context, msg *tgbotapi.Message) {
	if strings.TrimSpace(msg.Text) == "" {
		return
	}
	userID := userKey(msg.From)
	reply, err := h.profit.SubmitAmount(ctx, platform, userID, msg.Text)
	h.logError("submit amount", userID, err)
	out := tgbotapi.NewMessage(msg.Chat.ID, reply)
	out.ReplyToMessageID = msg.MessageID
	h.send(out)
}

func (h *Handler) handleCallback(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.Message == nil || query.Message.Chat == nil || query.From == nil {
		return
	}
	if _, err := h.bot.Request(tgbotapi.NewCallback(query.ID, "")); err != nil {
		log.Printf("⚠️ telegram: answer callback %s: %v", query.ID, err)
	}

	code, ok := parseLanguageCallbackData(query.Data)
	if !ok {
		return
	}
	userID := userKey(query.From)
	reply, err := h.profit.ChooseLanguage(ctx, platform, userID, code)
	h.logError("choose language", userID, err)
	h.send(tgbotapi.NewMessage(query.Message.Chat.ID, reply))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		log.Printf("❌ telegram: send: %v", err)
	}
}

// logError logs failures that are not caused by user input.
func (h *Handler) logError(action, userID string, err error) {
	if err == nil || errors.Is(err, domain.ErrInvalidArgument) {
		return
	}
	log.Printf("❌ telegram: %s (user=%s): %v", action, userID, err)
}

func userKey(u *tgbotapi.User) string {
	return strconv.FormatInt(u.ID, 10)
}

func languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(languageLabels))
	for _, lang := range domain.SupportedLanguages() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(languageLabels[lang], languageCallbackPrefix+lang.String()))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func parseLanguageCallbackData(data string) (string, bool) {
	code, ok := strings.CutPrefix(data, languageCallbackPrefix)
	if !ok || code == "" {
		return "", false
	}
	return code, true
}
