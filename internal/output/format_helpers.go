package output

import (
	"fmt"
	"math"
	"strconv"

	money "github.com/rpgo/wealth-forecast/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency renders an amount in the given ISO 4217 currency, e.g. "£1,234.50".
func FormatCurrency(amount decimal.Decimal, code string) string {
	return money.NewMoneyFromDecimal(amount).Display(code)
}

// FormatPercentage renders a fractional rate as a percentage with 2 decimals (0.05 -> "5.00%").
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimalHundred).StringFixed(2) + "%"
}

// FormatMultiple renders an exit multiple or MOIC, e.g. "2.50x".
func FormatMultiple(m decimal.Decimal) string { return m.StringFixed(2) + "x" }

// FormatRunway renders a months-of-runway figure; an infinite runway never depletes.
func FormatRunway(months float64) string {
	if math.IsInf(months, 1) {
		return "never depleted"
	}
	return fmt.Sprintf("%.1f months", months)
}

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
