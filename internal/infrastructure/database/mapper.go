package database

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
)

type userPreferenceRow struct {
	Platform  string
	UserID    string
	Language  string
	Amount    pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func userPreferenceToDomain(row userPreferenceRow) (entities.UserPreference, error) {
	lang, err := domain.ParseLanguage(row.Language)
	if err != nil {
		return entities.UserPreference{}, fmt.Errorf("stored language of %s/%s: %w", row.Platform, row.UserID, err)
	}
	pref := entities.UserPreference{
		Platform:  row.Platform,
		UserID:    row.UserID,
		Language:  lang,
		CreatedAt: pgtypeTimestamptzToTime(row.CreatedAt),
		UpdatedAt: pgtypeTimestamptzToTime(row.UpdatedAt),
	}
	if row.Amount.Valid {
		amt, err := decimal.NewFromString(row.Amount.String)
		if err != nil {
			return entities.UserPreference{}, fmt.Errorf("stored amount of %s/%s: %w", row.Platform, row.UserID, err)
		}
		pref.Amount = &amt
	}
	return pref, nil
}

// amountParam encodes an optional amount as text; the query casts it to NUMERIC.
func amountParam(amt *decimal.Decimal) pgtype.Text {
	if amt == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: amt.String(), Valid: true}
}
