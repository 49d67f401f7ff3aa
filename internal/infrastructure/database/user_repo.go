package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
	"profitbot/internal/ports/output"
)

// DBTX is the subset of pgxpool.Pool (or pgx.Tx) used by the repositories.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository implements output.UserRepository on PostgreSQL.
type UserRepository struct {
	db DBTX
}

// NewUserRepository creates a UserRepository.
func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const findUserPreference = `
SELECT platform, user_id, language, amount::text, created_at, updated_at
FROM user_preferences
WHERE platform = $1 AND user_id = $2`

func (r *UserRepository) Find(ctx context.Context, platform, userID string) (*entities.UserPreference, error) {
	var row userPreferenceRow
	err := r.db.QueryRow(ctx, findUserPreference, platform, userID).Scan(
		&row.Platform,
		&row.UserID,
		&row.Language,
		&row.Amount,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user preference: %w", err)
	}
	pref, err := userPreferenceToDomain(row)
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

const createUserPreference = `
INSERT INTO user_preferences (platform, user_id, language, amount)
VALUES ($1, $2, $3, $4::text::numeric)
ON CONFLICT (platform, user_id) DO NOTHING`

func (r *UserRepository) Create(ctx context.Context, pref *entities.UserPreference) error {
	_, err := r.db.Exec(ctx, createUserPreference,
		pref.Platform,
		pref.UserID,
		pref.Language.String(),
		amountParam(pref.Amount),
	)
	if err != nil {
		return fmt.Errorf("create user preference: %w", err)
	}
	return nil
}

const saveUserLanguage = `
INSERT INTO user_preferences (platform, user_id, language)
VALUES ($1, $2, $3)
ON CONFLICT (platform, user_id) DO UPDATE SET
    language   = EXCLUDED.language,
    updated_at = NOW()`

func (r *UserRepository) SaveLanguage(ctx context.Context, platform, userID string, lang domain.Language) error {
	if _, err := r.db.Exec(ctx, saveUserLanguage, platform, userID, lang.String()); err != nil {
		return fmt.Errorf("save user language: %w", err)
	}
	return nil
}

const saveUserAmount = `
INSERT INTO user_preferences (platform, user_id, language, amount)
VALUES ($1, $2, $3, $4::text::numeric)
ON CONFLICT (platform, user_id) DO UPDATE SET
    amount     = EXCLUDED.amount,
    updated_at = NOW()`

func (r *UserRepository) SaveAmount(ctx context.Context, platform, userID string, amount decimal.Decimal, lang domain.Language) error {
	_, err := r.db.Exec(ctx, saveUserAmount, platform, userID, lang.String(), amountParam(&amount))
	if err != nil {
		return fmt.Errorf("save user amount: %w", err)
	}
	return nil
}
