package output

import (
	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
)

// Catalog exposes the localized message contract used by the application and adapters.
type Catalog interface {
	// Message returns the text stored under key for language. amount is
	// required for the result key and ignored otherwise.
	Message(language, key string, amount *decimal.Decimal) (string, error)

	// Result renders the profit report for amount in language.
	Result(language domain.Language, amount decimal.Decimal) (string, error)

	// T renders a literal message, falling back to the default language and
	// finally to the key itself. It never fails.
	T(language, key string) string
}
