package calculation

import (
	"slices"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/rpgo/wealth-forecast/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Default firing months for frequencies without an explicit payment-month list.
var (
	defaultQuarterlyMonths = []int{3, 6, 9, 12}
	defaultTermlyMonths    = []int{1, 5, 9}
	defaultAnnualMonths    = []int{1}
	defaultBimonthlyMonths = []int{2, 4, 6, 8, 10, 12}
)

// AmountForMonth returns the amount a recurring item pays in month, or zero when the
// rule does not fire.
func AmountForMonth(rule domain.Recurrence, amount decimal.Decimal, month dateutil.Month) decimal.Decimal {
	if !Fires(rule, month) {
		return decimal.Zero
	}
	return amount
}

// IncomeForMonth resolves an income stream for a single month.
func IncomeForMonth(stream domain.IncomeStream, month dateutil.Month) decimal.Decimal {
	return AmountForMonth(stream.Recurrence(), stream.Amount, month)
}

// ExpenseForMonth resolves an expense for a single month, including range and
// active-month gating.
func ExpenseForMonth(expense domain.Expense, month dateutil.Month) decimal.Decimal {
	return AmountForMonth(expense.Recurrence(), expense.Amount, month)
}

// Fires reports whether the rule fires in month. Start and end dates are inclusive and
// compared chronologically. Unrecognized frequencies never fire.
func Fires(rule domain.Recurrence, month dateutil.Month) bool {
	label := month.String()
	if !rule.Income {
		if rule.StartDate != "" && dateutil.CompareLabels(label, rule.StartDate) < 0 {
			return false
		}
		if rule.EndDate != "" && dateutil.CompareLabels(label, rule.EndDate) > 0 {
			return false
		}
		if len(rule.ActiveMonths) > 0 && !slices.Contains(rule.ActiveMonths, month.Month) {
			return false
		}
	}
	if !KnownFrequency(rule) {
		return false
	}

	switch rule.Frequency {
	case domain.FrequencyMonthly:
		return true
	case domain.FrequencyOneOff:
		return rule.StartDate != "" && dateutil.CompareLabels(label, rule.StartDate) == 0
	}

	// An explicit list always wins; an empty list means "use the default".
	months := rule.PaymentMonths
	if len(months) == 0 {
		months = defaultMonths(rule.Frequency)
	}
	return slices.Contains(months, month.Month)
}

// KnownFrequency reports whether the rule's frequency is valid for its item kind.
func KnownFrequency(rule domain.Recurrence) bool {
	if rule.Income {
		return slices.Contains(domain.IncomeFrequencies, rule.Frequency)
	}
	return slices.Contains(domain.ExpenseFrequencies, rule.Frequency)
}

func defaultMonths(f domain.Frequency) []int {
	switch f {
	case domain.FrequencyQuarterly:
		return defaultQuarterlyMonths
	case domain.FrequencyTermly:
		return defaultTermlyMonths
	case domain.FrequencyAnnual:
		return defaultAnnualMonths
	case domain.FrequencyBimonthly:
		return defaultBimonthlyMonths
	default:
		return nil
	}
}
