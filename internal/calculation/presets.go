package calculation

import (
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// Ids the preset scenarios target. They match the example snapshot produced by
// config.CreateExampleSnapshot; presets applied to a snapshot without these ids are
// no-ops for the missing items.
const (
	PresetAssetPension = "workplace-pension"
	PresetAssetISA     = "stocks-isa"
	PresetAssetHome    = "home"
	PresetIncomeSalary = "salary"
	PresetIncomeBonus  = "bonus"
	PresetExpenseTrips = "holiday"
	PresetExpenseDine  = "dining-out"
)

// conservativeAssets is the fixed list of asset ids the conservative preset flattens.
var conservativeAssets = []string{PresetAssetPension, PresetAssetISA, PresetAssetHome}

// PresetScenarios returns the scenarios shipped alongside user-defined ones. A new
// slice is built on every call.
func PresetScenarios() []domain.Scenario {
	return []domain.Scenario{
		{
			ID:          "preset-conservative",
			Name:        "Conservative",
			Description: "Flat 3% growth across pension, ISA and property",
			Overrides: domain.ScenarioOverrides{
				AssetGrowthRates: flatRates(conservativeAssets, decimal.NewFromFloat(0.03)),
			},
		},
		{
			ID:          "preset-optimistic",
			Name:        "Optimistic",
			Description: "Strong markets: 8% pension, 9% ISA, 4% property",
			Overrides: domain.ScenarioOverrides{
				AssetGrowthRates: map[string]decimal.Decimal{
					PresetAssetPension: decimal.NewFromFloat(0.08),
					PresetAssetISA:     decimal.NewFromFloat(0.09),
					PresetAssetHome:    decimal.NewFromFloat(0.04),
				},
			},
		},
		{
			ID:          "preset-income-shock",
			Name:        "Income Shock",
			Description: "Salary cut by 30% and no bonus",
			Overrides: domain.ScenarioOverrides{
				IncomeAdjustments: map[string]decimal.Decimal{
					PresetIncomeSalary: decimal.NewFromFloat(0.7),
					PresetIncomeBonus:  decimal.Zero,
				},
			},
		},
		{
			ID:          "preset-lean-living",
			Name:        "Lean Living",
			Description: "No holidays or dining out",
			Overrides: domain.ScenarioOverrides{
				RemovedExpenseIDs: []string{PresetExpenseTrips, PresetExpenseDine},
			},
		},
	}
}

// FindScenario looks a scenario up by id, user-defined scenarios first, then presets.
func FindScenario(snapshot domain.Snapshot, id string) (domain.Scenario, bool) {
	for _, s := range snapshot.Scenarios {
		if s.ID == id {
			return s, true
		}
	}
	for _, s := range PresetScenarios() {
		if s.ID == id {
			return s, true
		}
	}
	return domain.Scenario{}, false
}

// AllScenarios returns the snapshot's user-defined scenarios followed by the presets.
func AllScenarios(snapshot domain.Snapshot) []domain.Scenario {
	out := make([]domain.Scenario, 0, len(snapshot.Scenarios)+4)
	out = append(out, snapshot.Scenarios...)
	return append(out, PresetScenarios()...)
}

func flatRates(ids []string, rate decimal.Decimal) map[string]decimal.Decimal {
	rates := make(map[string]decimal.Decimal, len(ids))
	for _, id := range ids {
		rates[id] = rate
	}
	return rates
}
