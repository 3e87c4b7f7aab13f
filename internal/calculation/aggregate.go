package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/rpgo/wealth-forecast/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// LargeExpenseThreshold is the smallest fired amount UpcomingLargeExpenses reports.
var LargeExpenseThreshold = decimal.NewFromInt(1000)

// AverageMonthlyBurn is the mean of totalExpenses across months; zero for none.
func AverageMonthlyBurn(months []domain.MonthlySnapshot) decimal.Decimal {
	if len(months) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, m := range months {
		total = total.Add(m.TotalExpenses)
	}
	return total.Div(decimal.NewFromInt(int64(len(months))))
}

// MonthsOfRunway returns how many months balance lasts at the first month's net
// outflow. A non-negative first month (or no months at all) never depletes the
// balance and yields +Inf.
func MonthsOfRunway(balance decimal.Decimal, months []domain.MonthlySnapshot) float64 {
	if len(months) == 0 || !months[0].NetCashFlow.IsNegative() {
		return math.Inf(1)
	}
	return balance.Div(months[0].NetCashFlow.Abs()).InexactFloat64()
}

// UpcomingLargeExpenses re-resolves every expense over the next monthCount months from
// the snapshot's start month and reports each firing at or above
// LargeExpenseThreshold, chronologically (expense-list order within a month).
func UpcomingLargeExpenses(snapshot domain.Snapshot, monthCount int) ([]domain.UpcomingExpense, error) {
	start, err := StartMonth(snapshot)
	if err != nil {
		return nil, err
	}
	var out []domain.UpcomingExpense
	for i := 0; i < monthCount; i++ {
		month := start.AddMonths(i)
		label := month.String()
		for _, e := range snapshot.Expenses {
			amount := ExpenseForMonth(e, month)
			if amount.GreaterThanOrEqual(LargeExpenseThreshold) {
				out = append(out, domain.UpcomingExpense{Name: e.Name, Amount: amount, Month: label})
			}
		}
	}
	return out, nil
}

// AggregateToQuarters partitions months into consecutive groups of three starting at
// the first element and sums income and expenses per group. Each group is labelled
// "Q{n} {year}" after its first month; a trailing partial group is kept.
func AggregateToQuarters(months []domain.MonthlySnapshot) []domain.QuarterSummary {
	quarters := make([]domain.QuarterSummary, 0, (len(months)+2)/3)
	for i := 0; i < len(months); i += 3 {
		end := min(i+3, len(months))
		q := domain.QuarterSummary{
			Label:         quarterLabel(months[i].Month),
			TotalIncome:   decimal.Zero,
			TotalExpenses: decimal.Zero,
		}
		for _, m := range months[i:end] {
			q.TotalIncome = q.TotalIncome.Add(m.TotalIncome)
			q.TotalExpenses = q.TotalExpenses.Add(m.TotalExpenses)
		}
		quarters = append(quarters, q)
	}
	return quarters
}

func quarterLabel(label string) string {
	m, err := dateutil.ParseMonth(label)
	if err != nil {
		return label
	}
	return fmt.Sprintf("Q%d %d", m.Quarter(), m.Year)
}
