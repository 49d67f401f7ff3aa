// Package memory holds process-local implementations of the output ports.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
	"profitbot/internal/ports/output"
)

var _ output.UserRepository = (*UserRepository)(nil)

// UserRepository keeps preferences in a map. Used when no database is configured.
type UserRepository struct {
	mu    sync.RWMutex
	users map[userKey]entities.UserPreference
	now   func() time.Time
}

type userKey struct {
	platform string
	userID   string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[userKey]entities.UserPreference),
		now:   time.Now,
	}
}

func (r *UserRepository) Find(ctx context.Context, platform, userID string) (*entities.UserPreference, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pref, ok := r.users[userKey{platform, userID}]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	pref.Amount = copyAmount(pref.Amount)
	return &pref, nil
}

func (r *UserRepository) Create(ctx context.Context, pref *entities.UserPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userKey{pref.Platform, pref.UserID}
	if _, ok := r.users[key]; ok {
		return nil
	}
	now := r.now()
	stored := *pref
	stored.Amount = copyAmount(pref.Amount)
	stored.CreatedAt, stored.UpdatedAt = now, now
	r.users[key] = stored
	return nil
}

func (r *UserRepository) SaveLanguage(ctx context.Context, platform, userID string, lang domain.Language) error {
	r.update(platform, userID, lang, func(p *entities.UserPreference) {
		p.Language = lang
	})
	return nil
}

func (r *UserRepository) SaveAmount(ctx context.Context, platform, userID string, amount decimal.Decimal, lang domain.Language) error {
	r.update(platform, userID, lang, func(p *entities.UserPreference) {
		p.Amount = &amount
	})
	return nil
}

// update applies set to the stored preference under the write lock,
// creating it in lang first when absent.
func (r *UserRepository) update(platform, userID string, lang domain.Language, set func(*entities.UserPreference)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := userKey{platform, userID}
	now := r.now()
	pref, ok := r.users[key]
	if !ok {
		pref = entities.UserPreference{Platform: platform, UserID: userID, Language: lang, CreatedAt: now}
	}
	set(&pref)
	pref.UpdatedAt = now
	r.users[key] = pref
}

func copyAmount(a *decimal.Decimal) *decimal.Decimal {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}
