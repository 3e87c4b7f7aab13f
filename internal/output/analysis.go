package output

import (
	"sort"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	FinalNetWealth   decimal.Decimal
	DeltaVsBase      decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios picks the scenario with the highest final-year net wealth. Ties keep
// input order.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ScenarioResult(nil), results.Scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].FinalNetWealth.GreaterThan(ranked[j].FinalNetWealth) })
	best := ranked[0]

	pct := decimal.Zero
	if base := results.BaseFinalNetWealth; !base.IsZero() {
		pct = best.DeltaVsBase.Div(base.Abs()).Mul(decimalHundred)
	}
	return Recommendation{
		ScenarioName:     best.Name,
		FinalNetWealth:   best.FinalNetWealth,
		DeltaVsBase:      best.DeltaVsBase,
		PercentageChange: pct,
	}
}
