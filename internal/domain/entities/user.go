package entities

import (
	"time"

	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
)

// UserPreference is what the bot remembers about one user on one platform.
type UserPreference struct {
	Platform  string
	UserID    string
	Language  domain.Language
	Amount    *decimal.Decimal // nil until the user submitted an amount
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasAmount reports whether the user already submitted an amount.
func (u *UserPreference) HasAmount() bool {
	return u.Amount != nil
}
