package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlySnapshot is one month of the cash-flow forecast
type MonthlySnapshot struct {
	Month          string                     `json:"month"`    // "YYYY-MM"
	Income         map[string]decimal.Decimal `json:"income"`   // by income stream id, non-zero only
	Expenses       map[string]decimal.Decimal `json:"expenses"` // by expense id, non-zero only
	TotalIncome    decimal.Decimal            `json:"totalIncome"`
	TotalExpenses  decimal.Decimal            `json:"totalExpenses"`
	NetCashFlow    decimal.Decimal            `json:"netCashFlow"`
	RunningBalance decimal.Decimal            `json:"runningBalance"`
}

// YearlyProjection is one year of the net-wealth projection
type YearlyProjection struct {
	Year             int                        `json:"year"`
	Age              int                        `json:"age"`
	Assets           map[string]decimal.Decimal `json:"assets"` // by asset id
	TotalAssets      decimal.Decimal            `json:"totalAssets"`
	Liabilities      map[string]decimal.Decimal `json:"liabilities"`      // by liability id
	TotalLiabilities decimal.Decimal            `json:"totalLiabilities"` // excludes student loans
	NetWealth        decimal.Decimal            `json:"netWealth"`
	LiquidAssets     decimal.Decimal            `json:"liquidAssets"`
}

// CarryScenario is the carry waterfall at a single exit multiple
type CarryScenario struct {
	Multiple          decimal.Decimal `json:"multiple"`
	TotalFundValue    decimal.Decimal `json:"totalFundValue"`
	TotalProfit       decimal.Decimal `json:"totalProfit"`
	HurdleAmount      decimal.Decimal `json:"hurdleAmount"`
	ProfitAboveHurdle decimal.Decimal `json:"profitAboveHurdle"`
	TotalCarryPool    decimal.Decimal `json:"totalCarryPool"`
	PersonalCarry     decimal.Decimal `json:"personalCarry"`
}

// PortfolioMetrics summarizes the portfolio companies of a fund position
type PortfolioMetrics struct {
	TotalInvested         decimal.Decimal `json:"totalInvested"`
	TotalCurrentValuation decimal.Decimal `json:"totalCurrentValuation"`
	PortfolioMOIC         decimal.Decimal `json:"portfolioMOIC"`
	ActiveCompanies       int             `json:"activeCompanies"`
}

// CarryRow pairs a fund position with its waterfall at each requested multiple
type CarryRow struct {
	PositionID string           `json:"positionId"`
	FundName   string           `json:"fundName"`
	Metrics    PortfolioMetrics `json:"metrics"`
	Scenarios  []CarryScenario  `json:"scenarios"`
}

// CarryTable is the carry waterfall across every fund position
type CarryTable struct {
	Multiples []decimal.Decimal `json:"multiples"`
	Rows      []CarryRow        `json:"rows"`
	Totals    []decimal.Decimal `json:"totals"` // personal carry summed across positions, per multiple
}

// UpcomingExpense is a single large expense firing in a forecast month
type UpcomingExpense struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Month  string          `json:"month"`
}

// QuarterSummary rolls up three consecutive monthly snapshots
type QuarterSummary struct {
	Label         string          `json:"label"` // "Q{n} {year}"
	TotalIncome   decimal.Decimal `json:"totalIncome"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

// ScenarioResult is the projection of a single scenario compared to the base case
type ScenarioResult struct {
	ScenarioID     string             `json:"scenarioId"`
	Name           string             `json:"name"`
	Description    string             `json:"description,omitempty"`
	Projection     []YearlyProjection `json:"projection"`
	FinalNetWealth decimal.Decimal    `json:"finalNetWealth"`
	DeltaVsBase    decimal.Decimal    `json:"deltaVsBase"`
}

// ScenarioComparison groups the base projection with every scenario variant
type ScenarioComparison struct {
	Base               []YearlyProjection `json:"base"`
	BaseFinalNetWealth decimal.Decimal    `json:"baseFinalNetWealth"`
	Scenarios          []ScenarioResult   `json:"scenarios"`
}

// NetWealthAt returns the net wealth for year, and false when the year is not projected.
func NetWealthAt(projection []YearlyProjection, year int) (decimal.Decimal, bool) {
	for _, p := range projection {
		if p.Year == year {
			return p.NetWealth, true
		}
	}
	return decimal.Zero, false
}

// FinalNetWealth returns the net wealth of the last projected year, or zero.
func FinalNetWealth(projection []YearlyProjection) decimal.Decimal {
	if len(projection) == 0 {
		return decimal.Zero
	}
	return projection[len(projection)-1].NetWealth
}
