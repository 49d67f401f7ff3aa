package output

import (
	"context"

	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
)

// UserRepository stores one preference per platform user. The Save methods
// touch a single column so concurrent updates of different fields do not
// overwrite each other.
type UserRepository interface {
	// Find returns domain.ErrUserNotFound when the user has no stored preference.
	Find(ctx context.Context, platform, userID string) (*entities.UserPreference, error)
	// Create stores pref unless the user already has a preference.
	Create(ctx context.Context, pref *entities.UserPreference) error
	// SaveLanguage sets the language, creating the user when absent.
	SaveLanguage(ctx context.Context, platform, userID string, lang domain.Language) error
	// SaveAmount sets the amount, creating the user in lang when absent.
	SaveAmount(ctx context.Context, platform, userID string, amount decimal.Decimal, lang domain.Language) error
}
