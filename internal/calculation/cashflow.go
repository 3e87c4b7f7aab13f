package calculation

import (
	"errors"
	"fmt"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/rpgo/wealth-forecast/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ErrInvalidStartMonth is returned when settings.startMonth is not a "YYYY-MM" label.
var ErrInvalidStartMonth = errors.New("invalid start month")

// StartMonth parses the snapshot's configured start month.
func StartMonth(snapshot domain.Snapshot) (dateutil.Month, error) {
	m, err := dateutil.ParseMonth(snapshot.Settings.StartMonth)
	if err != nil {
		return dateutil.Month{}, fmt.Errorf("%w: %v", ErrInvalidStartMonth, err)
	}
	return m, nil
}

// SimulateCashFlow walks monthCount months forward from the snapshot's start month and
// returns one MonthlySnapshot per month in chronological order. The running balance
// starts at the sum of all cash positions and accumulates across the whole sequence.
func SimulateCashFlow(snapshot domain.Snapshot, monthCount int) ([]domain.MonthlySnapshot, error) {
	start, err := StartMonth(snapshot)
	if err != nil {
		return nil, err
	}
	if monthCount < 0 {
		monthCount = 0
	}

	months := make([]domain.MonthlySnapshot, 0, monthCount)
	balance := snapshot.TotalCash()

	for i := 0; i < monthCount; i++ {
		month := start.AddMonths(i)
		label := month.String()

		ms := domain.MonthlySnapshot{
			Month:         label,
			Income:        make(map[string]decimal.Decimal),
			Expenses:      make(map[string]decimal.Decimal),
			TotalIncome:   decimal.Zero,
			TotalExpenses: decimal.Zero,
		}

		for _, stream := range snapshot.IncomeStreams {
			amount := IncomeForMonth(stream, month)
			if amount.IsZero() {
				continue
			}
			ms.Income[stream.ID] = ms.Income[stream.ID].Add(amount)
			ms.TotalIncome = ms.TotalIncome.Add(amount)
		}

		for _, expense := range snapshot.Expenses {
			amount := ExpenseForMonth(expense, month)
			if amount.IsZero() {
				continue
			}
			ms.Expenses[expense.ID] = ms.Expenses[expense.ID].Add(amount)
			ms.TotalExpenses = ms.TotalExpenses.Add(amount)
		}

		ms.NetCashFlow = ms.TotalIncome.Sub(ms.TotalExpenses)
		balance = balance.Add(ms.NetCashFlow)
		ms.RunningBalance = balance

		months = append(months, ms)
	}

	return months, nil
}
