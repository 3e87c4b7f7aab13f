package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func monthsWithExpenses(totals ...float64) []domain.MonthlySnapshot {
	out := make([]domain.MonthlySnapshot, len(totals))
	for i, v := range totals {
		out[i] = domain.MonthlySnapshot{Month: "2026-01", TotalExpenses: dec(v), NetCashFlow: dec(-v)}
	}
	return out
}

func TestAverageMonthlyBurn(t *testing.T) {
	assertDecimal(t, "0", AverageMonthlyBurn(nil))
	assertDecimal(t, "2000", AverageMonthlyBurn(monthsWithExpenses(1000, 2000, 3000)))
	assertDecimal(t, "1500", AverageMonthlyBurn(monthsWithExpenses(1000, 2000)))
}

func TestMonthsOfRunway(t *testing.T) {
	assert.True(t, math.IsInf(MonthsOfRunway(dec(10000), nil), 1))

	positive := []domain.MonthlySnapshot{{NetCashFlow: dec(500)}}
	assert.True(t, math.IsInf(MonthsOfRunway(dec(10000), positive), 1))

	flat := []domain.MonthlySnapshot{{NetCashFlow: dec(0)}}
	assert.True(t, math.IsInf(MonthsOfRunway(dec(10000), flat), 1))

	burning := []domain.MonthlySnapshot{{NetCashFlow: dec(-5000)}, {NetCashFlow: dec(1_000_000)}}
	assert.InDelta(t, 2.0, MonthsOfRunway(dec(10000), burning), 1e-9)

	assert.InDelta(t, 0.0, MonthsOfRunway(dec(0), burning), 1e-9)
}

func TestUpcomingLargeExpenses(t *testing.T) {
	snap := baseSnapshot()
	snap.Expenses = []domain.Expense{
		{ID: "fees", Name: "School fees", Amount: dec(7000), Frequency: domain.FrequencyTermly, PaymentMonths: []int{1, 5, 9}},
		{ID: "rent", Name: "Rent", Amount: dec(1000), Frequency: domain.FrequencyMonthly, StartDate: "2026-03", EndDate: "2026-03"},
		monthlyExpense("groceries", 999),
		{ID: "insurance", Name: "Car insurance", Amount: dec(1200), Frequency: domain.FrequencyAnnual, PaymentMonths: []int{5}},
	}

	out, err := UpcomingLargeExpenses(snap, 6)
	require.NoError(t, err)

	want := []domain.UpcomingExpense{
		{Name: "School fees", Amount: dec(7000), Month: "2026-01"},
		{Name: "Rent", Amount: dec(1000), Month: "2026-03"},
		{Name: "School fees", Amount: dec(7000), Month: "2026-05"},
		{Name: "Car insurance", Amount: dec(1200), Month: "2026-05"},
	}
	require.Len(t, out, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, out[i].Name)
		assert.Equal(t, want[i].Month, out[i].Month)
		assert.True(t, want[i].Amount.Equal(out[i].Amount))
	}

	none, err := UpcomingLargeExpenses(snap, 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	snap.Settings.StartMonth = "2026-13"
	_, err = UpcomingLargeExpenses(snap, 3)
	assert.ErrorIs(t, err, ErrInvalidStartMonth)
}

func TestAggregateToQuarters(t *testing.T) {
	snap := baseSnapshot()
	snap.IncomeStreams = []domain.IncomeStream{monthlyIncome("salary", 5000)}
	snap.Expenses = []domain.Expense{monthlyExpense("living", 3000)}

	months, err := SimulateCashFlow(snap, 6)
	require.NoError(t, err)

	quarters := AggregateToQuarters(months)
	require.Len(t, quarters, 2)
	assert.Equal(t, "Q1 2026", quarters[0].Label)
	assert.Equal(t, "Q2 2026", quarters[1].Label)
	for _, q := range quarters {
		assertDecimal(t, "15000", q.TotalIncome, q.Label)
		assertDecimal(t, "9000", q.TotalExpenses, q.Label)
	}
}

func TestAggregateToQuarters_GroupsFromFirstMonth(t *testing.T) {
	snap := baseSnapshot()
	snap.Settings.StartMonth = "2026-11"
	snap.IncomeStreams = []domain.IncomeStream{monthlyIncome("salary", 100)}

	months, err := SimulateCashFlow(snap, 4)
	require.NoError(t, err)

	quarters := AggregateToQuarters(months)
	require.Len(t, quarters, 2)
	// Groups start at the first month, not on calendar quarter boundaries.
	assert.Equal(t, "Q4 2026", quarters[0].Label)
	assertDecimal(t, "300", quarters[0].TotalIncome)
	assert.Equal(t, "Q1 2027", quarters[1].Label)
	assertDecimal(t, "100", quarters[1].TotalIncome)

	assert.Empty(t, AggregateToQuarters(nil))
}
