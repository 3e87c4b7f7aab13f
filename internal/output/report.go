package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rpgo/wealth-forecast/internal/calculation"
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

// Report bundles whatever a command produced. Formatters render only the sections that
// are set.
type Report struct {
	Title       string   `json:"title,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Assumptions []string `json:"assumptions,omitempty"`

	Summary    *CashFlowSummary           `json:"summary,omitempty"`
	Months     []domain.MonthlySnapshot   `json:"months,omitempty"`
	Quarters   []domain.QuarterSummary    `json:"quarters,omitempty"`
	Upcoming   []domain.UpcomingExpense   `json:"upcoming,omitempty"`
	Projection []domain.YearlyProjection  `json:"projection,omitempty"`
	Comparison *domain.ScenarioComparison `json:"comparison,omitempty"`
	Carry      *domain.CarryTable         `json:"carry,omitempty"`
}

// Runway is a months-of-runway figure. +Inf (never depleted) encodes as JSON null.
type Runway float64

// MarshalJSON encodes the runway with two decimals, or null when it is infinite or NaN.
func (r Runway) MarshalJSON() ([]byte, error) {
	if math.IsInf(float64(r), 0) || math.IsNaN(float64(r)) {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(float64(r), 'f', 2, 64)), nil
}

func (r Runway) String() string { return FormatRunway(float64(r)) }

// CashFlowSummary condenses a monthly forecast.
type CashFlowSummary struct {
	OpeningBalance     decimal.Decimal `json:"openingBalance"`
	ClosingBalance     decimal.Decimal `json:"closingBalance"`
	AverageMonthlyBurn decimal.Decimal `json:"averageMonthlyBurn"`
	MonthsOfRunway     Runway          `json:"monthsOfRunway"`
}

// NewCashFlowSummary summarizes months simulated from snapshot.
func NewCashFlowSummary(snapshot domain.Snapshot, months []domain.MonthlySnapshot) *CashFlowSummary {
	opening := snapshot.TotalCash()
	closing := opening
	if n := len(months); n > 0 {
		closing = months[n-1].RunningBalance
	}
	return &CashFlowSummary{
		OpeningBalance:     opening,
		ClosingBalance:     closing,
		AverageMonthlyBurn: calculation.AverageMonthlyBurn(months),
		MonthsOfRunway:     Runway(calculation.MonthsOfRunway(opening, months)),
	}
}

// GenerateReport renders report with the named formatter and writes it to w.
func GenerateReport(report *Report, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
