package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how profit figures are rounded to their display precision.
type RoundingMode string

const (
	// RoundHalfEven rounds ties to the even neighbour (0.125 -> 0.12).
	RoundHalfEven RoundingMode = "half_even"
	// RoundHalfUp rounds ties away from zero (0.125 -> 0.13).
	RoundHalfUp RoundingMode = "half_up"

	DefaultRoundingMode = RoundHalfEven
)

// ParseRoundingMode accepts "half_even" or "half_up"; "" yields the default.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch m := RoundingMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return DefaultRoundingMode, nil
	case RoundHalfEven, RoundHalfUp:
		return m, nil
	default:
		return "", fmt.Errorf("unknown rounding mode %q (want %s or %s)", s, RoundHalfEven, RoundHalfUp)
	}
}

func (m RoundingMode) String() string { return string(m) }

// Round rounds d to places decimal places.
func (m RoundingMode) Round(d decimal.Decimal, places int32) decimal.Decimal {
	if m == RoundHalfUp {
		return d.Round(places)
	}
	return d.RoundBank(places)
}
