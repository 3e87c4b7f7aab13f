package output

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// ConsoleVerboseFormatter renders the console report followed by per-item breakdowns
// for every month and projection year.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	writeConsoleReport(&buf, report)
	cur := report.Currency

	if len(report.Months) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "MONTHLY BREAKDOWN")
		fmt.Fprintln(&buf, strings.Repeat("=", 64))
		for _, m := range report.Months {
			fmt.Fprintf(&buf, "%s\n", m.Month)
			writeBreakdown(&buf, "income", m.Income, cur)
			writeBreakdown(&buf, "expense", m.Expenses, cur)
		}
	}

	if len(report.Projection) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "YEARLY BREAKDOWN")
		fmt.Fprintln(&buf, strings.Repeat("=", 64))
		for _, y := range report.Projection {
			fmt.Fprintf(&buf, "%d (age %d)\n", y.Year, y.Age)
			writeBreakdown(&buf, "asset", y.Assets, cur)
			writeBreakdown(&buf, "liability", y.Liabilities, cur)
		}
	}

	if cmp := report.Comparison; cmp != nil {
		for i, sc := range cmp.Scenarios {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, sc.Name)
			fmt.Fprintln(&buf, strings.Repeat("=", 50))
			if sc.Description != "" {
				fmt.Fprintln(&buf, sc.Description)
			}
			writeProjectionTable(&buf, sc.Projection, cur)
		}
	}

	return buf.Bytes(), nil
}

// writeBreakdown prints a breakdown map in id order.
func writeBreakdown(buf *bytes.Buffer, kind string, items map[string]decimal.Decimal, cur string) {
	ids := sortedKeys(items)
	for _, id := range ids {
		fmt.Fprintf(buf, "  %-10s %-24s %18s\n", kind, id, FormatCurrency(items[id], cur))
	}
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
