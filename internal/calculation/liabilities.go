package calculation

import (
	"github.com/rpgo/wealth-forecast/internal/domain"
	money "github.com/rpgo/wealth-forecast/pkg/decimal"
	"github.com/shopspring/decimal"
)

// amortizationPlaces bounds the precision carried between simulated months so the
// running balance does not accumulate unbounded digits over long horizons.
const amortizationPlaces = 10

var monthsPerYear = decimal.NewFromInt(12)

// LiabilityBalanceForYear returns the balance of a liability in year, rounded to whole
// currency units.
//
//   - mortgage: amortized monthly from baseYear, see MortgageBalanceAfter
//   - student_loan: compounds annually with no repayment credited
//   - credit_card, other: held flat
//
// Student loans, credit cards and other debts are zero after their end year.
func LiabilityBalanceForYear(l domain.Liability, baseYear, year int) decimal.Decimal {
	switch l.Type {
	case domain.LiabilityMortgage:
		return MortgageBalanceAfter(l, (year-baseYear)*12)
	case domain.LiabilityStudentLoan:
		if pastEnd(l, year) {
			return decimal.Zero
		}
		grown := money.NewMoneyFromDecimal(l.CurrentBalance).Compound(l.InterestRate, year-baseYear)
		return grown.RoundWhole().Decimal
	default:
		if pastEnd(l, year) {
			return decimal.Zero
		}
		return money.NewMoneyFromDecimal(l.CurrentBalance).RoundWhole().Decimal
	}
}

// MortgageBalanceAfter simulates months of amortization: each month interest at
// annualRate/12 is added and the monthly payment subtracted. Once the balance reaches
// zero the loan is paid off and stays at zero.
func MortgageBalanceAfter(l domain.Liability, months int) decimal.Decimal {
	balance := l.CurrentBalance
	if !balance.IsPositive() {
		return decimal.Zero
	}
	monthlyRate := l.InterestRate.Div(monthsPerYear)
	for m := 0; m < months; m++ {
		var paidOff bool
		balance, paidOff = amortizeMonth(balance, monthlyRate, l.MonthlyPayment)
		if paidOff {
			return decimal.Zero
		}
	}
	return money.NewMoneyFromDecimal(balance).RoundWhole().Decimal
}

// AmortizationSchedule returns the mortgage balance at the end of each of years
// projection years; index 0 is the base year (no months elapsed).
func AmortizationSchedule(l domain.Liability, years int) []decimal.Decimal {
	schedule := make([]decimal.Decimal, years)
	balance := l.CurrentBalance
	monthlyRate := l.InterestRate.Div(monthsPerYear)
	paidOff := !balance.IsPositive()
	if paidOff {
		balance = decimal.Zero
	}

	for y := 0; y < years; y++ {
		if y > 0 && !paidOff {
			for m := 0; m < 12; m++ {
				balance, paidOff = amortizeMonth(balance, monthlyRate, l.MonthlyPayment)
				if paidOff {
					balance = decimal.Zero
					break
				}
			}
		}
		schedule[y] = money.NewMoneyFromDecimal(balance).RoundWhole().Decimal
	}
	return schedule
}

func amortizeMonth(balance, monthlyRate, payment decimal.Decimal) (decimal.Decimal, bool) {
	interest := balance.Mul(monthlyRate)
	next := balance.Add(interest).Sub(payment).Round(amortizationPlaces)
	if !next.IsPositive() {
		return decimal.Zero, true
	}
	return next, false
}

func pastEnd(l domain.Liability, year int) bool {
	return l.EndYear != nil && year > *l.EndYear
}
