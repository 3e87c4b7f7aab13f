package calculation

import (
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultExitMultiples are the fund exit multiples shown when none are requested.
var DefaultExitMultiples = []decimal.Decimal{
	decimal.NewFromFloat(1.0),
	decimal.NewFromFloat(1.5),
	decimal.NewFromFloat(2.0),
	decimal.NewFromFloat(2.5),
	decimal.NewFromFloat(3.0),
}

// CarryAtMultiple runs the carry waterfall for a single exit multiple. Profit below
// the hurdle (including losses at multiples under 1.0) yields zero carry, never
// negative carry.
func CarryAtMultiple(p domain.CarryPosition, multiple decimal.Decimal) domain.CarryScenario {
	totalFundValue := p.FundSize.Mul(multiple)
	totalProfit := totalFundValue.Sub(p.FundSize)
	hurdleAmount := p.FundSize.Mul(p.HurdleRate)
	profitAboveHurdle := decimal.Max(decimal.Zero, totalProfit.Sub(hurdleAmount))
	carryPool := profitAboveHurdle.Mul(p.CarryPercent)

	return domain.CarryScenario{
		Multiple:          multiple,
		TotalFundValue:    totalFundValue,
		TotalProfit:       totalProfit,
		HurdleAmount:      hurdleAmount,
		ProfitAboveHurdle: profitAboveHurdle,
		TotalCarryPool:    carryPool,
		PersonalCarry:     carryPool.Mul(p.PersonalSharePercent),
	}
}

// CarryScenarios returns one CarryScenario per multiple, in input order.
func CarryScenarios(p domain.CarryPosition, multiples []decimal.Decimal) []domain.CarryScenario {
	out := make([]domain.CarryScenario, len(multiples))
	for i, m := range multiples {
		out[i] = CarryAtMultiple(p, m)
	}
	return out
}

// TotalPersonalCarryAtMultiple sums personal carry across positions at one multiple.
func TotalPersonalCarryAtMultiple(positions []domain.CarryPosition, multiple decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range positions {
		total = total.Add(CarryAtMultiple(p, multiple).PersonalCarry)
	}
	return total
}

// ComputePortfolioMetrics aggregates the position's portfolio companies. MOIC is zero
// when nothing has been invested.
func ComputePortfolioMetrics(p domain.CarryPosition) domain.PortfolioMetrics {
	metrics := domain.PortfolioMetrics{
		TotalInvested:         decimal.Zero,
		TotalCurrentValuation: decimal.Zero,
		PortfolioMOIC:         decimal.Zero,
	}
	for _, c := range p.PortfolioCompanies {
		metrics.TotalInvested = metrics.TotalInvested.Add(c.InvestedAmount)
		metrics.TotalCurrentValuation = metrics.TotalCurrentValuation.Add(c.CurrentValuation)
		if c.Status == domain.CompanyActive || c.Status == domain.CompanyMarkedUp {
			metrics.ActiveCompanies++
		}
	}
	if !metrics.TotalInvested.IsZero() {
		metrics.PortfolioMOIC = metrics.TotalCurrentValuation.Div(metrics.TotalInvested)
	}
	return metrics
}

// BuildCarryTable runs every position at every multiple and totals personal carry per
// multiple. Nil or empty multiples fall back to DefaultExitMultiples.
func BuildCarryTable(positions []domain.CarryPosition, multiples []decimal.Decimal) domain.CarryTable {
	if len(multiples) == 0 {
		multiples = DefaultExitMultiples
	}
	table := domain.CarryTable{
		Multiples: append([]decimal.Decimal(nil), multiples...),
		Rows:      make([]domain.CarryRow, 0, len(positions)),
		Totals:    make([]decimal.Decimal, len(multiples)),
	}
	for _, p := range positions {
		table.Rows = append(table.Rows, domain.CarryRow{
			PositionID: p.ID,
			FundName:   p.FundName,
			Metrics:    ComputePortfolioMetrics(p),
			Scenarios:  CarryScenarios(p, multiples),
		})
	}
	for i, m := range multiples {
		table.Totals[i] = TotalPersonalCarryAtMultiple(positions, m)
	}
	return table
}
