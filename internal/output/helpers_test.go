package output

import (
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func buildTestReport() *Report {
	return &Report{
		Title:       "Test Forecast",
		Currency:    "GBP",
		Assumptions: []string{"Assets compound annually"},
		Summary: &CashFlowSummary{
			OpeningBalance:     dec(10000),
			ClosingBalance:     dec(12000),
			AverageMonthlyBurn: dec(3000),
			MonthsOfRunway:     Runway(2),
		},
		Months: []domain.MonthlySnapshot{
			{
				Month:          "2026-01",
				Income:         map[string]decimal.Decimal{"salary": dec(5000)},
				Expenses:       map[string]decimal.Decimal{"rent": dec(2000), "food": dec(1000)},
				TotalIncome:    dec(5000),
				TotalExpenses:  dec(3000),
				NetCashFlow:    dec(2000),
				RunningBalance: dec(12000),
			},
		},
		Quarters: []domain.QuarterSummary{{Label: "Q1 2026", TotalIncome: dec(15000), TotalExpenses: dec(9000)}},
		Upcoming: []domain.UpcomingExpense{{Name: "School Fees", Amount: dec(7000), Month: "2026-09"}},
		Projection: []domain.YearlyProjection{
			{
				Year: 2026, Age: 36,
				Assets:      map[string]decimal.Decimal{"isa": dec(10000)},
				Liabilities: map[string]decimal.Decimal{"card": dec(1000)},
				TotalAssets: dec(10000), TotalLiabilities: dec(1000), NetWealth: dec(9000), LiquidAssets: dec(10000),
			},
		},
		Comparison: &domain.ScenarioComparison{
			BaseFinalNetWealth: dec(100000),
			Base:               []domain.YearlyProjection{{Year: 2030, NetWealth: dec(100000)}},
			Scenarios: []domain.ScenarioResult{
				{ScenarioID: "a", Name: "Scenario A", FinalNetWealth: dec(90000), DeltaVsBase: dec(-10000),
					Projection: []domain.YearlyProjection{{Year: 2030, NetWealth: dec(90000)}}},
				{ScenarioID: "b", Name: "Scenario B", FinalNetWealth: dec(125000), DeltaVsBase: dec(25000),
					Projection: []domain.YearlyProjection{{Year: 2030, NetWealth: dec(125000)}}},
			},
		},
		Carry: &domain.CarryTable{
			Multiples: []decimal.Decimal{dec(1), dec(2)},
			Rows: []domain.CarryRow{{
				PositionID: "fund-iv",
				FundName:   "Growth Fund IV",
				Metrics:    domain.PortfolioMetrics{TotalInvested: dec(20), TotalCurrentValuation: dec(40), PortfolioMOIC: dec(2), ActiveCompanies: 2},
				Scenarios: []domain.CarryScenario{
					{Multiple: dec(1), TotalFundValue: dec(100_000_000)},
					{Multiple: dec(2), TotalFundValue: dec(200_000_000), ProfitAboveHurdle: dec(92_000_000), TotalCarryPool: dec(18_400_000), PersonalCarry: dec(1_840_000)},
				},
			}},
			Totals: []decimal.Decimal{dec(0), dec(1_840_000)},
		},
	}
}
