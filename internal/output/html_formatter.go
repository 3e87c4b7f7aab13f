package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":     FormatCurrency,
	"pct":      FormatPercentage,
	"multiple": FormatMultiple,
	"positive": func(d decimal.Decimal) bool { return d.IsPositive() },
	"negative": func(d decimal.Decimal) bool { return d.IsNegative() },
	"total":    func(t *domain.CarryTable, i int) decimal.Decimal { return t.Totals[i] },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	title := report.Title
	if title == "" {
		title = "Wealth Forecast"
	}
	data := struct {
		*Report
		Heading        string
		Recommendation Recommendation
	}{report, title, AnalyzeScenarios(report.Comparison)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
