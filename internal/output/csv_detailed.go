package output

import (
	"bytes"
	"encoding/csv"
)

// CSVDetailedExporter emits one row per breakdown entry: every income stream and
// expense per month, every asset and liability per year, and every scenario year.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Section", "Period", "Kind", "ID", "Amount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	write := func(section, period, kind, id, amount string) error {
		return w.Write([]string{section, period, kind, id, amount})
	}

	for _, m := range report.Months {
		for _, id := range sortedKeys(m.Income) {
			if err := write("month", m.Month, "income", id, m.Income[id].StringFixed(2)); err != nil {
				return nil, err
			}
		}
		for _, id := range sortedKeys(m.Expenses) {
			if err := write("month", m.Month, "expense", id, m.Expenses[id].StringFixed(2)); err != nil {
				return nil, err
			}
		}
	}

	for _, y := range report.Projection {
		year := intToString(y.Year)
		for _, id := range sortedKeys(y.Assets) {
			if err := write("year", year, "asset", id, y.Assets[id].StringFixed(2)); err != nil {
				return nil, err
			}
		}
		for _, id := range sortedKeys(y.Liabilities) {
			if err := write("year", year, "liability", id, y.Liabilities[id].StringFixed(2)); err != nil {
				return nil, err
			}
		}
	}

	if cmp := report.Comparison; cmp != nil {
		for _, sc := range cmp.Scenarios {
			for _, y := range sc.Projection {
				if err := write("scenario", intToString(y.Year), "net-wealth", sc.ScenarioID, y.NetWealth.StringFixed(2)); err != nil {
					return nil, err
				}
			}
		}
	}

	if table := report.Carry; table != nil {
		for _, row := range table.Rows {
			for _, sc := range row.Scenarios {
				if err := write("carry", sc.Multiple.StringFixed(2), "personal-carry", row.PositionID, sc.PersonalCarry.StringFixed(2)); err != nil {
					return nil, err
				}
			}
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
