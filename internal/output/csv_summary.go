package output

import (
	"bytes"
	"encoding/csv"
)

// CSVSummarizer writes one CSV table per section present in the report. Tables are
// separated by a blank line and each starts with its own header row.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	var tables [][][]string
	if len(report.Months) > 0 {
		t := [][]string{{"Month", "TotalIncome", "TotalExpenses", "NetCashFlow", "RunningBalance"}}
		for _, m := range report.Months {
			t = append(t, []string{m.Month, m.TotalIncome.StringFixed(2), m.TotalExpenses.StringFixed(2), m.NetCashFlow.StringFixed(2), m.RunningBalance.StringFixed(2)})
		}
		tables = append(tables, t)
	}
	if len(report.Quarters) > 0 {
		t := [][]string{{"Quarter", "TotalIncome", "TotalExpenses"}}
		for _, q := range report.Quarters {
			t = append(t, []string{q.Label, q.TotalIncome.StringFixed(2), q.TotalExpenses.StringFixed(2)})
		}
		tables = append(tables, t)
	}
	if report.Upcoming != nil {
		t := [][]string{{"Month", "Expense", "Amount"}}
		for _, u := range report.Upcoming {
			t = append(t, []string{u.Month, u.Name, u.Amount.StringFixed(2)})
		}
		tables = append(tables, t)
	}
	if len(report.Projection) > 0 {
		t := [][]string{{"Year", "Age", "TotalAssets", "TotalLiabilities", "NetWealth", "LiquidAssets"}}
		for _, y := range report.Projection {
			t = append(t, []string{intToString(y.Year), intToString(y.Age), y.TotalAssets.StringFixed(2), y.TotalLiabilities.StringFixed(2), y.NetWealth.StringFixed(2), y.LiquidAssets.StringFixed(2)})
		}
		tables = append(tables, t)
	}
	if cmp := report.Comparison; cmp != nil {
		t := [][]string{{"ScenarioID", "Scenario", "FinalNetWealth", "DeltaVsBase"}}
		t = append(t, []string{"base", "Base", cmp.BaseFinalNetWealth.StringFixed(2), "0.00"})
		for _, sc := range cmp.Scenarios {
			t = append(t, []string{sc.ScenarioID, sc.Name, sc.FinalNetWealth.StringFixed(2), sc.DeltaVsBase.StringFixed(2)})
		}
		tables = append(tables, t)
	}
	if table := report.Carry; table != nil {
		t := [][]string{{"PositionID", "Fund", "Multiple", "TotalFundValue", "TotalProfit", "HurdleAmount", "ProfitAboveHurdle", "TotalCarryPool", "PersonalCarry", "AboveHurdle"}}
		for _, row := range table.Rows {
			for _, sc := range row.Scenarios {
				t = append(t, []string{
					row.PositionID,
					row.FundName,
					sc.Multiple.StringFixed(2),
					sc.TotalFundValue.StringFixed(2),
					sc.TotalProfit.StringFixed(2),
					sc.HurdleAmount.StringFixed(2),
					sc.ProfitAboveHurdle.StringFixed(2),
					sc.TotalCarryPool.StringFixed(2),
					sc.PersonalCarry.StringFixed(2),
					boolToString(sc.ProfitAboveHurdle.IsPositive()),
				})
			}
		}
		tables = append(tables, t)
	}

	for i, t := range tables {
		if i > 0 {
			if err := w.Write(nil); err != nil {
				return nil, err
			}
		}
		if err := w.WriteAll(t); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
