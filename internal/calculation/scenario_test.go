package calculation

import (
	"testing"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioSnapshot() domain.Snapshot {
	snap := baseSnapshot()
	snap.Settings.ProjectionEndYear = 2030
	snap.Assets = []domain.Asset{
		{ID: "isa", CurrentValue: dec(10000), AnnualGrowthRate: dec(0.05), IsLiquid: true},
		{ID: "home", CurrentValue: dec(250000), AnnualGrowthRate: dec(0.03)},
	}
	snap.IncomeStreams = []domain.IncomeStream{monthlyIncome("salary", 3333), monthlyIncome("side", 400)}
	snap.Expenses = []domain.Expense{monthlyExpense("rent", 1200), monthlyExpense("gym", 45)}
	snap.Liabilities = []domain.Liability{{ID: "card", Type: domain.LiabilityCreditCard, CurrentBalance: dec(900)}}
	return snap
}

func TestScenarioSteps_Order(t *testing.T) {
	steps := ScenarioSteps(domain.ScenarioOverrides{})
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	assert.Equal(t, []string{StepReplaceGrowthRates, StepMultiplyIncome, StepAddExpenses, StepRemoveExpenses}, names)
}

func TestApplyScenario_EmptyOverridesRoundTrip(t *testing.T) {
	snap := scenarioSnapshot()

	direct, err := ProjectWealth(snap)
	require.NoError(t, err)
	viaScenario, err := ProjectScenario(snap, domain.Scenario{ID: "noop"})
	require.NoError(t, err)

	assert.Equal(t, direct, viaScenario)
	assert.Equal(t, snap, ApplyScenario(snap, domain.Scenario{ID: "noop"}))
}

func TestApplyScenario_GrowthRatesReplaced(t *testing.T) {
	snap := scenarioSnapshot()
	scenario := domain.Scenario{ID: "flat", Overrides: domain.ScenarioOverrides{
		AssetGrowthRates: map[string]decimal.Decimal{"isa": dec(0.10), "missing": dec(0.5)},
	}}

	out := ApplyScenario(snap, scenario)
	assertDecimal(t, "0.10", out.Assets[0].AnnualGrowthRate)
	assertDecimal(t, "0.03", out.Assets[1].AnnualGrowthRate)
	require.Len(t, out.Assets, 2)

	// Base snapshot untouched.
	assertDecimal(t, "0.05", snap.Assets[0].AnnualGrowthRate)

	projection, err := ProjectWealth(out)
	require.NoError(t, err)
	assertDecimal(t, "11000", projection[1].Assets["isa"])
}

func TestApplyScenario_IncomeMultipliersRounded(t *testing.T) {
	snap := scenarioSnapshot()
	scenario := domain.Scenario{ID: "raise", Overrides: domain.ScenarioOverrides{
		IncomeAdjustments: map[string]decimal.Decimal{"salary": dec(1.5)},
	}}

	out := ApplyScenario(snap, scenario)
	// 3333 * 1.5 = 4999.5 rounds to 5000
	assertDecimal(t, "5000", out.IncomeStreams[0].Amount)
	assertDecimal(t, "400", out.IncomeStreams[1].Amount)
	assertDecimal(t, "3333", snap.IncomeStreams[0].Amount)
}

func TestApplyScenario_AddThenRemoveExpenses(t *testing.T) {
	snap := scenarioSnapshot()
	scenario := domain.Scenario{ID: "move", Overrides: domain.ScenarioOverrides{
		AdditionalExpenses: []domain.Expense{monthlyExpense("nursery", 1100), monthlyExpense("gym", 60)},
		RemovedExpenseIDs:  []string{"gym"},
	}}

	out := ApplyScenario(snap, scenario)
	ids := make([]string, len(out.Expenses))
	for i, e := range out.Expenses {
		ids[i] = e.ID
	}
	// Removal runs after additions, so the re-added "gym" is dropped too.
	assert.Equal(t, []string{"rent", "nursery"}, ids)
	assert.Len(t, snap.Expenses, 2)
	assert.Equal(t, "gym", snap.Expenses[1].ID)
}

func TestApplyScenario_AllOverridesTogether(t *testing.T) {
	snap := scenarioSnapshot()
	scenario := domain.Scenario{ID: "all", Overrides: domain.ScenarioOverrides{
		AssetGrowthRates:   map[string]decimal.Decimal{"home": dec(0)},
		IncomeAdjustments:  map[string]decimal.Decimal{"side": dec(0)},
		AdditionalExpenses: []domain.Expense{monthlyExpense("car", 300)},
		RemovedExpenseIDs:  []string{"rent"},
	}}

	out := ApplyScenario(snap, scenario)
	assertDecimal(t, "0", out.Assets[1].AnnualGrowthRate)
	assertDecimal(t, "0", out.IncomeStreams[1].Amount)
	require.Len(t, out.Expenses, 2)
	assert.Equal(t, "gym", out.Expenses[0].ID)
	assert.Equal(t, "car", out.Expenses[1].ID)
}

func TestCompose_CustomSteps(t *testing.T) {
	snap := scenarioSnapshot()
	out := Compose(snap,
		AddExpenses([]domain.Expense{monthlyExpense("a", 1)}),
		RemoveExpenses([]string{"a", "rent"}),
		MultiplyIncome(map[string]decimal.Decimal{"salary": dec(2)}),
	)
	require.Len(t, out.Expenses, 1)
	assert.Equal(t, "gym", out.Expenses[0].ID)
	assertDecimal(t, "6666", out.IncomeStreams[0].Amount)
}

func TestPresetScenarios(t *testing.T) {
	presets := PresetScenarios()
	require.NotEmpty(t, presets)

	seen := map[string]bool{}
	for _, p := range presets {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.False(t, seen[p.ID], "duplicate preset id %s", p.ID)
		seen[p.ID] = true
		assert.False(t, p.Overrides.IsEmpty(), "preset %s changes nothing", p.ID)
	}

	conservative, ok := FindScenario(domain.Snapshot{}, "preset-conservative")
	require.True(t, ok)
	assert.Equal(t, "Conservative", conservative.Name)
	for _, id := range []string{PresetAssetPension, PresetAssetISA, PresetAssetHome} {
		assertDecimal(t, "0.03", conservative.Overrides.AssetGrowthRates[id])
	}

	// Mutating a returned preset does not leak into later calls.
	presets[0].Name = "changed"
	assert.Equal(t, "Conservative", PresetScenarios()[0].Name)
}

func TestFindScenario_UserDefinedFirst(t *testing.T) {
	snap := scenarioSnapshot()
	snap.Scenarios = []domain.Scenario{{ID: "preset-conservative", Name: "Mine"}, {ID: "custom", Name: "Custom"}}

	sc, ok := FindScenario(snap, "preset-conservative")
	require.True(t, ok)
	assert.Equal(t, "Mine", sc.Name)

	_, ok = FindScenario(snap, "nope")
	assert.False(t, ok)

	all := AllScenarios(snap)
	assert.Len(t, all, 2+len(PresetScenarios()))
	assert.Equal(t, "custom", all[1].ID)
}
