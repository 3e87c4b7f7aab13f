package calculation

import (
	"slices"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// SnapshotStep is one pure transformation in a scenario composition. Apply never
// mutates its input; it returns a snapshot with freshly allocated slices for whatever
// it changes.
type SnapshotStep struct {
	Name  string
	Apply func(domain.Snapshot) domain.Snapshot
}

// Step names, in the order ScenarioSteps applies them.
const (
	StepReplaceGrowthRates = "replace-growth-rates"
	StepMultiplyIncome     = "multiply-income"
	StepAddExpenses        = "add-expenses"
	StepRemoveExpenses     = "remove-expenses"
)

// ScenarioSteps expands overrides into the ordered list of transformations:
// growth-rate replacement, income multiplication, expense additions, then expense
// removals. Removal runs after additions, so an added expense whose id is also listed
// for removal is dropped.
func ScenarioSteps(o domain.ScenarioOverrides) []SnapshotStep {
	return []SnapshotStep{
		ReplaceGrowthRates(o.AssetGrowthRates),
		MultiplyIncome(o.IncomeAdjustments),
		AddExpenses(o.AdditionalExpenses),
		RemoveExpenses(o.RemovedExpenseIDs),
	}
}

// ApplyScenario derives the scenario's snapshot from base.
func ApplyScenario(base domain.Snapshot, scenario domain.Scenario) domain.Snapshot {
	if scenario.Overrides.IsEmpty() {
		return base
	}
	return Compose(base, ScenarioSteps(scenario.Overrides)...)
}

// Compose applies steps left to right.
func Compose(base domain.Snapshot, steps ...SnapshotStep) domain.Snapshot {
	out := base
	for _, step := range steps {
		out = step.Apply(out)
	}
	return out
}

// ReplaceGrowthRates overwrites the annual growth rate of every asset named in rates.
func ReplaceGrowthRates(rates map[string]decimal.Decimal) SnapshotStep {
	return SnapshotStep{Name: StepReplaceGrowthRates, Apply: func(s domain.Snapshot) domain.Snapshot {
		if len(rates) == 0 {
			return s
		}
		assets := make([]domain.Asset, len(s.Assets))
		for i, a := range s.Assets {
			if rate, ok := rates[a.ID]; ok {
				a.AnnualGrowthRate = rate
			}
			assets[i] = a
		}
		s.Assets = assets
		return s
	}}
}

// MultiplyIncome replaces the amount of every income stream named in multipliers with
// round(amount × multiplier).
func MultiplyIncome(multipliers map[string]decimal.Decimal) SnapshotStep {
	return SnapshotStep{Name: StepMultiplyIncome, Apply: func(s domain.Snapshot) domain.Snapshot {
		if len(multipliers) == 0 {
			return s
		}
		streams := make([]domain.IncomeStream, len(s.IncomeStreams))
		for i, stream := range s.IncomeStreams {
			if m, ok := multipliers[stream.ID]; ok {
				stream.Amount = stream.Amount.Mul(m).Round(0)
			}
			streams[i] = stream
		}
		s.IncomeStreams = streams
		return s
	}}
}

// AddExpenses appends expenses to the expense list.
func AddExpenses(added []domain.Expense) SnapshotStep {
	return SnapshotStep{Name: StepAddExpenses, Apply: func(s domain.Snapshot) domain.Snapshot {
		if len(added) == 0 {
			return s
		}
		expenses := make([]domain.Expense, 0, len(s.Expenses)+len(added))
		expenses = append(expenses, s.Expenses...)
		expenses = append(expenses, added...)
		s.Expenses = expenses
		return s
	}}
}

// RemoveExpenses drops every expense whose id is listed.
func RemoveExpenses(ids []string) SnapshotStep {
	return SnapshotStep{Name: StepRemoveExpenses, Apply: func(s domain.Snapshot) domain.Snapshot {
		if len(ids) == 0 {
			return s
		}
		expenses := make([]domain.Expense, 0, len(s.Expenses))
		for _, e := range s.Expenses {
			if !slices.Contains(ids, e.ID) {
				expenses = append(expenses, e)
			}
		}
		s.Expenses = expenses
		return s
	}}
}

// ProjectScenario applies scenario to base and projects the result.
func ProjectScenario(base domain.Snapshot, scenario domain.Scenario) ([]domain.YearlyProjection, error) {
	return ProjectWealth(ApplyScenario(base, scenario))
}
