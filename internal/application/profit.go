package application

import (
	"context"
	"errors"
	"fmt"

	"profitbot/internal/domain"
	"profitbot/internal/domain/entities"
	"profitbot/internal/ports/input"
	"profitbot/internal/ports/output"
	"profitbot/pkg/amount"
)

var _ input.ProfitUseCase = (*ProfitService)(nil)

type ProfitService struct {
	users           output.UserRepository
	catalog         output.Catalog
	defaultLanguage domain.Language
}

func NewProfitService(
	users output.UserRepository,
	catalog output.Catalog,
	defaultLanguage domain.Language,
) *ProfitService {
	if defaultLanguage == "" {
		defaultLanguage = domain.LanguagePersian
	}
	return &ProfitService{
		users:           users,
		catalog:         catalog,
		defaultLanguage: defaultLanguage,
	}
}

// preference loads the stored preference, or a fresh one in the default
// language when the user is unknown. found reports which case applied.
func (s *ProfitService) preference(ctx context.Context, platform, userID string) (pref *entities.UserPreference, found bool, err error) {
	pref, err = s.users.Find(ctx, platform, userID)
	if errors.Is(err, domain.ErrUserNotFound) {
		return &entities.UserPreference{
			Platform: platform,
			UserID:   userID,
			Language: s.defaultLanguage,
		}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("find preference: %w", err)
	}
	return pref, true, nil
}

func (s *ProfitService) internalError(lang domain.Language) string {
	return s.catalog.T(lang.String(), domain.KeyInternalError.String())
}

// Start greets the user. A first-time user gets the language closest to the
// platform locale; a returning user keeps the stored choice.
func (s *ProfitService) Start(ctx context.Context, platform, userID, locale string) (string, error) {
	pref, found, err := s.preference(ctx, platform, userID)
	if err != nil {
		return s.internalError(domain.MatchLanguage(locale, s.defaultLanguage)), err
	}
	if !found {
		pref.Language = domain.MatchLanguage(locale, s.defaultLanguage)
		if err := s.users.Create(ctx, pref); err != nil {
			return s.internalError(pref.Language), fmt.Errorf("create preference: %w", err)
		}
	}
	msg, err := s.catalog.Message(pref.Language.String(), domain.KeyStart.String(), nil)
	if err != nil {
		return s.internalError(pref.Language), err
	}
	return msg, nil
}

// ChooseLanguage stores an explicit language choice and asks for the amount.
func (s *ProfitService) ChooseLanguage(ctx context.Context, platform, userID, language string) (string, error) {
	lang, err := domain.ParseLanguage(language)
	if err != nil {
		return s.internalError(s.Language(ctx, platform, userID)), err
	}
	if err := s.users.SaveLanguage(ctx, platform, userID, lang); err != nil {
		return s.internalError(lang), fmt.Errorf("save language: %w", err)
	}
	msg, err := s.catalog.Message(lang.String(), domain.KeyAskAmount.String(), nil)
	if err != nil {
		return s.internalError(lang), err
	}
	return msg, nil
}

func (s *ProfitService) AskAmount(ctx context.Context, platform, userID string) (string, error) {
	lang := s.Language(ctx, platform, userID)
	msg, err := s.catalog.Message(lang.String(), domain.KeyAskAmount.String(), nil)
	if err != nil {
		return s.internalError(lang), err
	}
	return msg, nil
}

// SubmitAmount parses raw, remembers it and returns the profit report.
func (s *ProfitService) SubmitAmount(ctx context.Context, platform, userID, raw string) (string, error) {
	pref, _, err := s.preference(ctx, platform, userID)
	if err != nil {
		return s.internalError(s.defaultLanguage), err
	}
	amt, err := amount.Parse(raw)
	if err != nil {
		return s.catalog.T(pref.Language.String(), domain.KeyInvalidAmount.String()), err
	}
	if err := s.users.SaveAmount(ctx, platform, userID, amt, pref.Language); err != nil {
		return s.internalError(pref.Language), fmt.Errorf("save amount: %w", err)
	}
	msg, err := s.catalog.Result(pref.Language, amt)
	if err != nil {
		return s.internalError(pref.Language), err
	}
	return msg, nil
}

// Language returns the stored language of the user, or the default one.
func (s *ProfitService) Language(ctx context.Context, platform, userID string) domain.Language {
	pref, _, err := s.preference(ctx, platform, userID)
	if err != nil {
		return s.defaultLanguage
	}
	return pref.Language
}

func (s *ProfitService) Text(ctx context.Context, platform, userID string, key domain.MessageKey) string {
	return s.catalog.T(s.Language(ctx, platform, userID).String(), key.String())
}
