package main

import (
	"fmt"
	"path/filepath"

	"github.com/rpgo/wealth-forecast/internal/calculation"
	"github.com/rpgo/wealth-forecast/internal/config"
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/rpgo/wealth-forecast/internal/output"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newCashFlowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cashflow",
		Short: "Forecast monthly cash flow with a summary and quarterly totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			months, err := a.engine.Simulate(*snapshot, a.months)
			if err != nil {
				return err
			}
			report := newReport("Cash Flow Forecast", snapshot)
			report.Summary = output.NewCashFlowSummary(*snapshot, months)
			report.Months = months
			report.Quarters = calculation.AggregateToQuarters(months)
			return a.render(report)
		},
	}
}

func newProjectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Project yearly net wealth to the configured end year",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			projection, err := a.engine.Project(*snapshot)
			if err != nil {
				return err
			}
			report := newReport("Net Wealth Projection", snapshot)
			report.Projection = projection
			return a.render(report)
		},
	}
}

func newScenariosCmd(a *app) *cobra.Command {
	var ids []string
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "Compare what-if scenarios against the base projection",
		Long:  "Compare the snapshot's own scenarios and the built-in presets (conservative, optimistic, income-shock, lean-living) against the base projection. Use --scenario to pick a subset by id.",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			scenarios, err := selectScenarios(*snapshot, ids)
			if err != nil {
				return err
			}
			cmp, err := a.engine.CompareScenarios(cmd.Context(), *snapshot, scenarios)
			if err != nil {
				return err
			}
			report := newReport("Scenario Comparison", snapshot)
			report.Projection = cmp.Base
			report.Comparison = cmp
			return a.render(report)
		},
	}
	cmd.Flags().StringSliceVarP(&ids, "scenario", "s", nil, "scenario ids to compare (default: all)")
	return cmd
}

func selectScenarios(snapshot domain.Snapshot, ids []string) ([]domain.Scenario, error) {
	if len(ids) == 0 {
		return calculation.AllScenarios(snapshot), nil
	}
	scenarios := make([]domain.Scenario, 0, len(ids))
	for _, id := range ids {
		sc, ok := calculation.FindScenario(snapshot, id)
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q", id)
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}

func newCarryCmd(a *app) *cobra.Command {
	var multiples []string
	cmd := &cobra.Command{
		Use:   "carry",
		Short: "Show the carried-interest waterfall at a range of exit multiples",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			parsed, err := parseMultiples(multiples)
			if err != nil {
				return err
			}
			table := a.engine.Carry(*snapshot, parsed)
			report := newReport("Carried Interest", snapshot)
			report.Assumptions = nil
			report.Carry = &table
			return a.render(report)
		},
	}
	cmd.Flags().StringSliceVarP(&multiples, "multiples", "m", nil, "exit multiples, e.g. 1.5,2,3 (default 1x to 5x)")
	return cmd
}

func parseMultiples(values []string) ([]decimal.Decimal, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]decimal.Decimal, 0, len(values))
	for _, v := range values {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid exit multiple %q: %w", v, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("invalid exit multiple %q: must not be negative", v)
		}
		out = append(out, d)
	}
	return out, nil
}

func newUpcomingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List large upcoming expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := a.loadSnapshot()
			if err != nil {
				return err
			}
			upcoming, err := a.engine.UpcomingLargeExpenses(*snapshot, a.months)
			if err != nil {
				return err
			}
			if upcoming == nil {
				upcoming = []domain.UpcomingExpense{}
			}
			report := newReport("Upcoming Large Expenses", snapshot)
			report.Assumptions = nil
			report.Upcoming = upcoming
			return a.render(report)
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot := config.CreateExampleSnapshot()
			if path == "" {
				data, err := config.EncodeSnapshot(snapshot, ".yaml")
				if err != nil {
					return err
				}
				_, err = a.out.Write(data)
				return err
			}
			if err := config.SaveSnapshot(snapshot, path); err != nil {
				return err
			}
			a.log.Infof("example snapshot written to %s", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "output", "o", "", "file to write (.yaml or .json); stdout when empty")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a snapshot file without running a forecast",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.file == "" {
				return errNoSnapshot
			}
			snapshot, err := config.NewSnapshotLoader().LoadFromFile(a.file)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s is valid: %d cash positions, %d income streams, %d expenses, %d assets, %d liabilities, %d carry positions, %d scenarios\n",
				filepath.Base(a.file), len(snapshot.CashPositions), len(snapshot.IncomeStreams), len(snapshot.Expenses),
				len(snapshot.Assets), len(snapshot.Liabilities), len(snapshot.CarryPositions), len(snapshot.Scenarios))
			return nil
		},
	}
}

func newFormatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List report formats and aliases",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range output.AvailableFormatterNames() {
				fmt.Fprintln(a.out, name)
			}
			for _, alias := range output.AvailableFormatAliases() {
				fmt.Fprintf(a.out, "%s -> %s\n", alias, output.NormalizeFormatName(alias))
			}
		},
	}
}
