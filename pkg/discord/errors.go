package discord

import "profitbot/internal/domain"

// TranslateDomainError maps a domain error code to the catalog key shown to
// the user.
func TranslateDomainError(code string) domain.MessageKey {
	switch code {
	case domain.ErrAmountRequired.Code(), domain.ErrInvalidAmount.Code(), domain.ErrNegativeAmount.Code():
		return domain.KeyInvalidAmount
	default:
		return domain.KeyInternalError
	}
}

// ErrorMessageKey extracts the domain error code and resolves it to a message key.
func ErrorMessageKey(err error) domain.MessageKey {
	return TranslateDomainError(domain.Code(err))
}

// IsUserError reports whether err was caused by what the user typed rather
// than by the bot or its storage.
func IsUserError(err error) bool {
	return err != nil && ErrorMessageKey(err) == domain.KeyInvalidAmount
}
