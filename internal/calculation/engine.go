package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelism bounds how many scenario projections CompareScenarios runs at once.
const DefaultParallelism = 4

// ForecastEngine orchestrates all forecasting calculations. The calculations
// themselves are pure functions; the engine adds logging and concurrent scenario runs.
type ForecastEngine struct {
	Parallelism int
	Logger      Logger
}

// NewForecastEngine creates a new forecasting engine
func NewForecastEngine() *ForecastEngine {
	return &ForecastEngine{
		Parallelism: DefaultParallelism,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (fe *ForecastEngine) SetLogger(l Logger) {
	if l == nil {
		fe.Logger = NopLogger{}
		return
	}
	fe.Logger = l
}

func (fe *ForecastEngine) logger() Logger {
	if fe.Logger == nil {
		return NopLogger{}
	}
	return fe.Logger
}

// Simulate runs the monthly cash-flow forecast.
func (fe *ForecastEngine) Simulate(snapshot domain.Snapshot, monthCount int) ([]domain.MonthlySnapshot, error) {
	fe.warnUnknownFrequencies(snapshot)
	months, err := SimulateCashFlow(snapshot, monthCount)
	if err != nil {
		return nil, fmt.Errorf("simulate cash flow: %w", err)
	}
	if n := len(months); n > 0 {
		fe.logger().Debugf("simulated %d months from %s, closing balance %s",
			n, months[0].Month, months[n-1].RunningBalance.StringFixed(2))
	}
	return months, nil
}

// Project runs the yearly net-wealth projection.
func (fe *ForecastEngine) Project(snapshot domain.Snapshot) ([]domain.YearlyProjection, error) {
	projection, err := ProjectWealth(snapshot)
	if err != nil {
		return nil, fmt.Errorf("project wealth: %w", err)
	}
	fe.logger().Debugf("projected %d years, final net wealth %s",
		len(projection), domain.FinalNetWealth(projection).StringFixed(0))
	return projection, nil
}

// ProjectScenario applies a scenario to the snapshot and projects it.
func (fe *ForecastEngine) ProjectScenario(snapshot domain.Snapshot, scenario domain.Scenario) ([]domain.YearlyProjection, error) {
	projection, err := ProjectScenario(snapshot, scenario)
	if err != nil {
		return nil, fmt.Errorf("project scenario %q: %w", scenario.ID, err)
	}
	withScope(fe.logger(), scenario.ID).Debugf("projected %d years, final net wealth %s",
		len(projection), domain.FinalNetWealth(projection).StringFixed(0))
	return projection, nil
}

// CompareScenarios projects the base snapshot and every scenario concurrently and
// reports each scenario's final-year net wealth against the base. Results keep the
// order of scenarios.
func (fe *ForecastEngine) CompareScenarios(ctx context.Context, snapshot domain.Snapshot, scenarios []domain.Scenario) (*domain.ScenarioComparison, error) {
	base, err := fe.Project(snapshot)
	if err != nil {
		return nil, err
	}

	results := make([]domain.ScenarioResult, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	limit := fe.Parallelism
	if limit <= 0 {
		limit = DefaultParallelism
	}
	g.SetLimit(limit)

	for i, sc := range scenarios {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			projection, err := fe.ProjectScenario(snapshot, sc)
			if err != nil {
				return err
			}
			results[i] = domain.ScenarioResult{
				ScenarioID:     sc.ID,
				Name:           sc.Name,
				Description:    sc.Description,
				Projection:     projection,
				FinalNetWealth: domain.FinalNetWealth(projection),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("compare scenarios: %w", err)
	}

	baseFinal := domain.FinalNetWealth(base)
	for i := range results {
		results[i].DeltaVsBase = results[i].FinalNetWealth.Sub(baseFinal)
	}
	fe.logger().Infof("compared %d scenarios against base final net wealth %s", len(results), baseFinal.StringFixed(0))

	return &domain.ScenarioComparison{
		Base:               base,
		BaseFinalNetWealth: baseFinal,
		Scenarios:          results,
	}, nil
}

// Carry builds the carry waterfall table for the snapshot's fund positions.
func (fe *ForecastEngine) Carry(snapshot domain.Snapshot, multiples []decimal.Decimal) domain.CarryTable {
	table := BuildCarryTable(snapshot.CarryPositions, multiples)
	fe.logger().Debugf("carry table: %d positions x %d multiples", len(table.Rows), len(table.Multiples))
	return table
}

// UpcomingLargeExpenses lists large expenses over the next monthCount months.
func (fe *ForecastEngine) UpcomingLargeExpenses(snapshot domain.Snapshot, monthCount int) ([]domain.UpcomingExpense, error) {
	fe.warnUnknownFrequencies(snapshot)
	out, err := UpcomingLargeExpenses(snapshot, monthCount)
	if err != nil {
		return nil, fmt.Errorf("upcoming expenses: %w", err)
	}
	return out, nil
}

// warnUnknownFrequencies logs items that will silently never fire.
func (fe *ForecastEngine) warnUnknownFrequencies(snapshot domain.Snapshot) {
	for _, s := range snapshot.IncomeStreams {
		if !KnownFrequency(s.Recurrence()) {
			fe.logger().Warnf("income stream %q has unrecognized frequency %q; it will never fire", s.ID, s.Frequency)
		}
	}
	for _, e := range snapshot.Expenses {
		if !KnownFrequency(e.Recurrence()) {
			fe.logger().Warnf("expense %q has unrecognized frequency %q; it will never fire", e.ID, e.Frequency)
		}
	}
}
