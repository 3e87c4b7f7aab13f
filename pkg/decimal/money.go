package decimal

import (
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used for display when a snapshot carries no currency code.
const DefaultCurrency = "GBP"

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// RoundWhole rounds to the nearest whole currency unit (half away from zero).
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Round(0)}
}

// Compound grows the amount by rate for the given number of whole periods.
func (m Money) Compound(rate decimal.Decimal, periods int) Money {
	if periods <= 0 {
		return m
	}
	factor := decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(periods)))
	return Money{m.Decimal.Mul(factor)}
}

// String returns the amount with two decimal places.
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Display formats the amount using the grapheme, separators and fraction digits of the
// ISO 4217 currency code. Unknown or empty codes fall back to DefaultCurrency.
func (m Money) Display(code string) string {
	cur := currencyFor(code)
	minor := m.Decimal.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

func currencyFor(code string) *gomoney.Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if c := gomoney.GetCurrency(code); c != nil {
		return c
	}
	return gomoney.GetCurrency(DefaultCurrency)
}
