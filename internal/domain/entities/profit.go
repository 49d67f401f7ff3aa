package entities

import (
	"github.com/shopspring/decimal"

	"profitbot/internal/domain"
)

// ProfitPrecision is the number of decimal places kept in derived figures.
const ProfitPrecision = 2

var (
	monthlyRate   = decimal.RequireFromString("0.5")
	daysPerMonth  = decimal.NewFromInt(30)
	weeksPerMonth = decimal.NewFromInt(4)
)

// Profit is the projected return on an invested amount.
type Profit struct {
	Amount  decimal.Decimal
	Daily   decimal.Decimal
	Weekly  decimal.Decimal
	Monthly decimal.Decimal
}

// CalculateProfit applies the fixed monthly rate to amount and derives the
// daily (1/30) and weekly (1/4) shares, each rounded with mode.
func CalculateProfit(amount decimal.Decimal, mode domain.RoundingMode) Profit {
	monthly := amount.Mul(monthlyRate)
	return Profit{
		Amount:  amount,
		Daily:   mode.Round(monthly.Div(daysPerMonth), ProfitPrecision),
		Weekly:  mode.Round(monthly.Div(weeksPerMonth), ProfitPrecision),
		Monthly: mode.Round(monthly, ProfitPrecision),
	}
}
