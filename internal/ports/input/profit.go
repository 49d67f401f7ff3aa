package input

import (
	"context"

	"profitbot/internal/domain"
)

// ProfitUseCase drives the calculator conversation. Every method returns a
// reply that is safe to show to the user, even when err is non-nil.
type ProfitUseCase interface {
	Start(ctx context.Context, platform, userID, locale string) (string, error)
	ChooseLanguage(ctx context.Context, platform, userID, language string) (string, error)
	AskAmount(ctx context.Context, platform, userID string) (string, error)
	SubmitAmount(ctx context.Context, platform, userID, raw string) (string, error)
	Language(ctx context.Context, platform, userID string) domain.Language
	Text(ctx context.Context, platform, userID string, key domain.MessageKey) string
}
