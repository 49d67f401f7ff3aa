// Package amount converts between user-typed investment amounts and decimals.
package amount

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	"profitbot/internal/domain"
)

// MaxDigits bounds the number of digits accepted from user input.
const MaxDigits = 24

const (
	arabicDecimalSep   = '٫'
	arabicThousandsSep = '٬'
)

// normalizer folds full-width forms, maps Persian and Arabic-Indic digits to
// ASCII and drops grouping characters. Chains are stateful, so build one per call.
func normalizer() transform.Transformer {
	return transform.Chain(
		width.Fold,
		runes.Map(mapDigit),
		runes.Remove(runes.Predicate(isGroupingSeparator)),
	)
}

func mapDigit(r rune) rune {
	switch {
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	case r == arabicDecimalSep:
		return '.'
	}
	return r
}

func isGroupingSeparator(r rune) bool {
	return r == ',' || r == '_' || r == arabicThousandsSep || unicode.IsSpace(r)
}

// Parse reads a non-negative decimal amount typed by a user.
func Parse(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, domain.ErrAmountRequired
	}
	s, _, err := transform.String(normalizer(), s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	if !wellFormed(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", domain.ErrInvalidAmount, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", domain.ErrNegativeAmount, d)
	}
	return d, nil
}

// wellFormed accepts an optional sign, digits and at most one decimal point.
func wellFormed(s string) bool {
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	digits, dots := 0, 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.':
			dots++
		default:
			return false
		}
	}
	return digits > 0 && digits <= MaxDigits && dots <= 1
}

// Format renders an amount the way the user would have typed it: "100", "100.5".
func Format(d decimal.Decimal) string {
	return d.String()
}

// FormatFigure renders a derived figure with at least one fractional digit:
// "1.67", "12.5", "50.0".
func FormatFigure(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
