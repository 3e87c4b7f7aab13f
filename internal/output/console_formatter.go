package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/wealth-forecast/internal/calculation"
	"github.com/rpgo/wealth-forecast/internal/domain"
)

// ConsoleFormatter renders a report as fixed-width plain-text tables.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	writeConsoleReport(&buf, report)
	return buf.Bytes(), nil
}

func writeConsoleReport(buf *bytes.Buffer, r *Report) {
	title := r.Title
	if title == "" {
		title = "WEALTH FORECAST"
	}
	fmt.Fprintln(buf, strings.ToUpper(title))
	fmt.Fprintln(buf, strings.Repeat("=", 64))

	if len(r.Assumptions) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "KEY ASSUMPTIONS:")
		for _, a := range r.Assumptions {
			fmt.Fprintf(buf, "• %s\n", a)
		}
	}

	cur := r.Currency
	if s := r.Summary; s != nil {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "CASH FLOW SUMMARY")
		fmt.Fprintln(buf, strings.Repeat("-", 40))
		fmt.Fprintf(buf, "Opening Balance:      %s\n", FormatCurrency(s.OpeningBalance, cur))
		fmt.Fprintf(buf, "Closing Balance:      %s\n", FormatCurrency(s.ClosingBalance, cur))
		fmt.Fprintf(buf, "Average Monthly Burn: %s\n", FormatCurrency(s.AverageMonthlyBurn, cur))
		fmt.Fprintf(buf, "Runway:               %s\n", s.MonthsOfRunway)
	}

	if len(r.Months) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "MONTHLY CASH FLOW")
		fmt.Fprintf(buf, "%-8s %16s %16s %16s %18s\n", "Month", "Income", "Expenses", "Net", "Balance")
		for _, m := range r.Months {
			fmt.Fprintf(buf, "%-8s %16s %16s %16s %18s\n", m.Month,
				FormatCurrency(m.TotalIncome, cur),
				FormatCurrency(m.TotalExpenses, cur),
				FormatCurrency(m.NetCashFlow, cur),
				FormatCurrency(m.RunningBalance, cur))
		}
	}

	if len(r.Quarters) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "QUARTERLY TOTALS")
		fmt.Fprintf(buf, "%-8s %16s %16s\n", "Quarter", "Income", "Expenses")
		for _, q := range r.Quarters {
			fmt.Fprintf(buf, "%-8s %16s %16s\n", q.Label, FormatCurrency(q.TotalIncome, cur), FormatCurrency(q.TotalExpenses, cur))
		}
	}

	if r.Upcoming != nil {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "UPCOMING LARGE EXPENSES")
		if len(r.Upcoming) == 0 {
			fmt.Fprintf(buf, "None at or above %s\n", FormatCurrency(calculation.LargeExpenseThreshold, cur))
		}
		for _, u := range r.Upcoming {
			fmt.Fprintf(buf, "%-8s %-28s %14s\n", u.Month, u.Name, FormatCurrency(u.Amount, cur))
		}
	}

	if len(r.Projection) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, "NET WEALTH PROJECTION")
		writeProjectionTable(buf, r.Projection, cur)
	}

	if r.Comparison != nil {
		writeComparison(buf, r.Comparison, cur)
	}

	if r.Carry != nil {
		writeCarryTable(buf, r.Carry, cur)
	}
}

func writeProjectionTable(buf *bytes.Buffer, projection []domain.YearlyProjection, cur string) {
	fmt.Fprintf(buf, "%-6s %4s %18s %18s %18s %18s\n", "Year", "Age", "Assets", "Liabilities", "Net Wealth", "Liquid")
	for _, y := range projection {
		fmt.Fprintf(buf, "%-6d %4d %18s %18s %18s %18s\n", y.Year, y.Age,
			FormatCurrency(y.TotalAssets, cur),
			FormatCurrency(y.TotalLiabilities, cur),
			FormatCurrency(y.NetWealth, cur),
			FormatCurrency(y.LiquidAssets, cur))
	}
}

func writeComparison(buf *bytes.Buffer, cmp *domain.ScenarioComparison, cur string) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "SCENARIO COMPARISON")
	fmt.Fprintln(buf, strings.Repeat("-", 64))
	finalYear := 0
	if n := len(cmp.Base); n > 0 {
		finalYear = cmp.Base[n-1].Year
	}
	fmt.Fprintf(buf, "Base final net wealth (%d): %s\n", finalYear, FormatCurrency(cmp.BaseFinalNetWealth, cur))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "%-24s %20s %20s\n", "Scenario", "Final Net Wealth", "vs Base")
	for _, sc := range cmp.Scenarios {
		delta := FormatCurrency(sc.DeltaVsBase, cur)
		if sc.DeltaVsBase.IsPositive() {
			delta = "+" + delta
		}
		fmt.Fprintf(buf, "%-24s %20s %20s\n", truncateName(sc.Name, 24), FormatCurrency(sc.FinalNetWealth, cur), delta)
	}
	rec := AnalyzeScenarios(cmp)
	if rec.ScenarioName != "" {
		fmt.Fprintln(buf)
		fmt.Fprintf(buf, "Highest final net wealth: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.DeltaVsBase, cur), rec.PercentageChange.StringFixed(2)+"%")
	}
}

func writeCarryTable(buf *bytes.Buffer, table *domain.CarryTable, cur string) {
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "CARRIED INTEREST")
	fmt.Fprintln(buf, strings.Repeat("-", 64))
	if len(table.Rows) == 0 {
		fmt.Fprintln(buf, "No carry positions")
		return
	}
	for _, row := range table.Rows {
		m := row.Metrics
		fmt.Fprintf(buf, "%s (%s)\n", row.FundName, row.PositionID)
		fmt.Fprintf(buf, "  Invested: %s  Valuation: %s  MOIC: %s  Active companies: %d\n",
			FormatCurrency(m.TotalInvested, cur), FormatCurrency(m.TotalCurrentValuation, cur),
			FormatMultiple(m.PortfolioMOIC), m.ActiveCompanies)
		fmt.Fprintf(buf, "  %-8s %20s %20s %18s\n", "Multiple", "Fund Value", "Carry Pool", "Personal Carry")
		for _, sc := range row.Scenarios {
			fmt.Fprintf(buf, "  %-8s %20s %20s %18s\n", FormatMultiple(sc.Multiple),
				FormatCurrency(sc.TotalFundValue, cur),
				FormatCurrency(sc.TotalCarryPool, cur),
				FormatCurrency(sc.PersonalCarry, cur))
		}
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "TOTAL PERSONAL CARRY")
	for i, mult := range table.Multiples {
		fmt.Fprintf(buf, "  %-8s %18s\n", FormatMultiple(mult), FormatCurrency(table.Totals[i], cur))
	}
}

func truncateName(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
