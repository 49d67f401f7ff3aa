package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
	"profitbot/internal/infrastructure/memory"
)

// stubCatalog renders "<lang>:<key>" and "<lang>:result:<amount>".
type stubCatalog struct{}

func (stubCatalog) Message(language, key string, amt *decimal.Decimal) (string, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return "", err
	}
	if key == domain.KeyResult.String() {
		if amt == nil {
			return "", domain.ErrAmountRequired
		}
		return stubCatalog{}.Result(lang, *amt)
	}
	return language + ":" + key, nil
}

func (stubCatalog) Result(language domain.Language, amt decimal.Decimal) (string, error) {
	return fmt.Sprintf("%s:result:%s", language, amt), nil
}

func (stubCatalog) T(language, key string) string {
	return domain.MatchLanguage(language, domain.LanguagePersian).String() + ":" + key
}

type failingRepo struct{ err error }

func (r failingRepo) Find(ctx context.Context, platform, userID string) (*entities.UserPreference, error) {
	return nil, r.err
}

func (r failingRepo) Create(ctx context.Context, pref *entities.UserPreference) error {
	return r.err
}

func (r failingRepo) SaveLanguage(ctx context.Context, platform, userID string, lang domain.Language) error {
	return r.err
}

func (r failingRepo) SaveAmount(ctx context.Context, platform, userID string, amt decimal.Decimal, lang domain.Language) error {
	return r.err
}

// slowFindRepo delays every Find so that concurrent operations all read
// before any of them writes.
type slowFindRepo struct {
	*memory.UserRepository
	delay time.Duration
}

func (r slowFindRepo) Find(ctx context.Context, platform, userID string) (*entities.UserPreference, error) {
	time.Sleep(r.delay)
	return r.UserRepository.Find(ctx, platform, userID)
}

func newTestService() (*ProfitService, *memory.UserRepository) {
	repo := memory.NewUserRepository()
	return NewProfitService(repo, stubCatalog{}, domain.LanguagePersian), repo
}

func TestStartMatchesPlatformLocale(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	tests := []struct {
		userID, locale, want string
	}{
		{"1", "en-US", "en:start"},
		{"2", "fa-IR", "fa:start"},
		{"3", "de", "fa:start"},
		{"4", "", "fa:start"},
	}

	for _, tt := range tests {
		got, err := svc.Start(ctx, "telegram", tt.userID, tt.locale)
		if err != nil || got != tt.want {
			t.Fatalf("Start(%q) = (%q, %v), want %q", tt.locale, got, err, tt.want)
		}
		if _, err := repo.Find(ctx, "telegram", tt.userID); err != nil {
			t.Fatalf("Start did not persist user %s: %v", tt.userID, err)
		}
	}
}

func TestStartKeepsStoredLanguage(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.ChooseLanguage(ctx, "discord", "1", "en"); err != nil {
		t.Fatalf("ChooseLanguage: %v", err)
	}
	got, err := svc.Start(ctx, "discord", "1", "fa-IR")
	if err != nil || got != "en:start" {
		t.Fatalf("Start = (%q, %v), want en:start", got, err)
	}
}

func TestChooseLanguage(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	got, err := svc.ChooseLanguage(ctx, "telegram", "1", "en")
	if err != nil || got != "en:ask_amount" {
		t.Fatalf("ChooseLanguage(en) = (%q, %v)", got, err)
	}
	pref, _ := repo.Find(ctx, "telegram", "1")
	if pref.Language != domain.LanguageEnglish {
		t.Fatalf("stored language = %q", pref.Language)
	}

	got, err = svc.ChooseLanguage(ctx, "telegram", "1", "de")
	if !errors.Is(err, domain.ErrUnknownLanguage) || got != "en:internal_error" {
		t.Fatalf("ChooseLanguage(de) = (%q, %v)", got, err)
	}
}

func TestAskAmount(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if got, _ := svc.AskAmount(ctx, "telegram", "1"); got != "fa:ask_amount" {
		t.Fatalf("AskAmount for unknown user = %q", got)
	}
	_, _ = svc.ChooseLanguage(ctx, "telegram", "1", "en")
	if got, _ := svc.AskAmount(ctx, "telegram", "1"); got != "en:ask_amount" {
		t.Fatalf("AskAmount after choosing en = %q", got)
	}
}

func TestSubmitAmount(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()
	_, _ = svc.ChooseLanguage(ctx, "telegram", "1", "en")

	got, err := svc.SubmitAmount(ctx, "telegram", "1", "۱۰۰")
	if err != nil || got != "en:result:100" {
		t.Fatalf("SubmitAmount = (%q, %v)", got, err)
	}
	pref, _ := repo.Find(ctx, "telegram", "1")
	if !pref.HasAmount() || !pref.Amount.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("amount not stored: %+v", pref)
	}
}

func TestSubmitAmountInvalid(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	tests := []struct {
		raw  string
		want error
	}{
		{"", domain.ErrAmountRequired},
		{"lots", domain.ErrInvalidAmount},
		{"-10", domain.ErrNegativeAmount},
	}

	for _, tt := range tests {
		got, err := svc.SubmitAmount(ctx, "telegram", "1", tt.raw)
		if !errors.Is(err, tt.want) || got != "fa:invalid_amount" {
			t.Fatalf("SubmitAmount(%q) = (%q, %v), want invalid_amount/%v", tt.raw, got, err, tt.want)
		}
	}
	if _, err := repo.Find(ctx, "telegram", "1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("invalid amounts must not be persisted")
	}
}

func TestRepositoryFailureReturnsInternalError(t *testing.T) {
	boom := errors.New("db down")
	svc := NewProfitService(failingRepo{err: boom}, stubCatalog{}, domain.LanguageEnglish)
	ctx := context.Background()

	if got, err := svc.Start(ctx, "telegram", "1", "en"); !errors.Is(err, boom) || got != "en:internal_error" {
		t.Fatalf("Start = (%q, %v)", got, err)
	}
	if got, err := svc.SubmitAmount(ctx, "telegram", "1", "10"); !errors.Is(err, boom) || got != "en:internal_error" {
		t.Fatalf("SubmitAmount = (%q, %v)", got, err)
	}
	if got := svc.Language(ctx, "telegram", "1"); got != domain.LanguageEnglish {
		t.Fatalf("Language on failure = %q", got)
	}
}

func TestText(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	_, _ = svc.ChooseLanguage(ctx, "discord", "5", "en")
	if got := svc.Text(ctx, "discord", "5", domain.KeyAmountLabel); got != "en:amount_label" {
		t.Fatalf("Text = %q", got)
	}
}

func TestConcurrentLanguageAndAmountAreBothKept(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewProfitService(slowFindRepo{UserRepository: repo, delay: 20 * time.Millisecond}, stubCatalog{}, domain.LanguagePersian)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		userID := fmt.Sprint(i)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if _, err := svc.ChooseLanguage(ctx, "telegram", userID, "en"); err != nil {
				t.Errorf("ChooseLanguage: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if _, err := svc.SubmitAmount(ctx, "telegram", userID, "100"); err != nil {
				t.Errorf("SubmitAmount: %v", err)
			}
		}()
		wg.Wait()

		pref, err := repo.Find(ctx, "telegram", userID)
		if err != nil {
			t.Fatalf("Find: %v", err)
		}
		if pref.Language != domain.LanguageEnglish {
			t.Fatalf("user %s: language choice lost, stored %q", userID, pref.Language)
		}
		if !pref.HasAmount() || !pref.Amount.Equal(decimal.NewFromInt(100)) {
			t.Fatalf("user %s: amount lost: %+v", userID, pref)
		}
	}
}
