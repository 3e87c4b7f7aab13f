package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/rpgo/wealth-forecast/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

// Validation failures. ValidateSnapshot wraps one of these with the offending item.
var (
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrMissingID        = errors.New("missing id")
	ErrDuplicateID      = errors.New("duplicate id")
	ErrUnknownFrequency = errors.New("unknown frequency")
	ErrInvalidMonth     = errors.New("invalid month")
	ErrUnknownKind      = errors.New("unknown kind")
)

// SnapshotLoader reads snapshot files. JSON is parsed as YAML, so both formats share
// one decoder.
type SnapshotLoader struct {
	// Lenient skips ValidateSnapshot. Unknown frequencies then resolve to zero in the
	// engine instead of failing the load.
	Lenient bool
}

// NewSnapshotLoader creates a new snapshot loader
func NewSnapshotLoader() *SnapshotLoader {
	return &SnapshotLoader{}
}

// LoadFromFile loads a snapshot from a YAML or JSON file
func (sl *SnapshotLoader) LoadFromFile(filename string) (*domain.Snapshot, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return sl.Parse(data)
}

// Parse decodes and, unless the loader is lenient, validates a snapshot document.
func (sl *SnapshotLoader) Parse(data []byte) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}

	if !sl.Lenient {
		if err := ValidateSnapshot(&snapshot); err != nil {
			return nil, fmt.Errorf("snapshot validation failed: %w", err)
		}
	}

	return &snapshot, nil
}

// SaveSnapshot writes a snapshot to filename. A ".json" extension selects indented
// JSON; anything else is written as YAML.
func SaveSnapshot(snapshot *domain.Snapshot, filename string) error {
	data, err := EncodeSnapshot(snapshot, filepath.Ext(filename))
	if err != nil {
		return err
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// EncodeSnapshot renders a snapshot as JSON when ext is ".json", YAML otherwise.
func EncodeSnapshot(snapshot *domain.Snapshot, ext string) ([]byte, error) {
	if strings.EqualFold(ext, ".json") {
		data, err := json.MarshalIndent(snapshot, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
		return append(data, '\n'), nil
	}

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	if err := enc.Encode(snapshot); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	return []byte(b.String()), nil
}

// ValidateSnapshot checks the shape of a snapshot before it reaches the engine.
// The engine itself never rejects business data.
func ValidateSnapshot(snapshot *domain.Snapshot) error {
	if err := validateSettings(&snapshot.Settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	ids := newIDSet()
	for _, c := range snapshot.CashPositions {
		if err := ids.add("cash position", c.ID); err != nil {
			return err
		}
	}

	ids = newIDSet()
	for _, s := range snapshot.IncomeStreams {
		if err := ids.add("income stream", s.ID); err != nil {
			return err
		}
		if err := validateIncome(&s); err != nil {
			return fmt.Errorf("income stream %q: %w", s.ID, err)
		}
	}

	ids = newIDSet()
	for _, e := range snapshot.Expenses {
		if err := ids.add("expense", e.ID); err != nil {
			return err
		}
		if err := validateExpense(&e); err != nil {
			return fmt.Errorf("expense %q: %w", e.ID, err)
		}
	}

	ids = newIDSet()
	for _, a := range snapshot.Assets {
		if err := ids.add("asset", a.ID); err != nil {
			return err
		}
	}

	ids = newIDSet()
	for _, l := range snapshot.Liabilities {
		if err := ids.add("liability", l.ID); err != nil {
			return err
		}
		switch l.Type {
		case domain.LiabilityMortgage, domain.LiabilityStudentLoan, domain.LiabilityCreditCard, domain.LiabilityOther:
		default:
			return fmt.Errorf("liability %q: %w: type %q", l.ID, ErrUnknownKind, l.Type)
		}
	}

	ids = newIDSet()
	for _, p := range snapshot.CarryPositions {
		if err := ids.add("carry position", p.ID); err != nil {
			return err
		}
		for _, c := range p.PortfolioCompanies {
			switch c.Status {
			case domain.CompanyActive, domain.CompanyMarkedUp, domain.CompanyExited, domain.CompanyWrittenOff:
			default:
				return fmt.Errorf("carry position %q company %q: %w: status %q", p.ID, c.ID, ErrUnknownKind, c.Status)
			}
		}
	}

	ids = newIDSet()
	for _, sc := range snapshot.Scenarios {
		if err := ids.add("scenario", sc.ID); err != nil {
			return err
		}
		for _, e := range sc.Overrides.AdditionalExpenses {
			if err := validateExpense(&e); err != nil {
				return fmt.Errorf("scenario %q expense %q: %w", sc.ID, e.ID, err)
			}
		}
	}

	return nil
}

func validateSettings(s *domain.Settings) error {
	start, err := dateutil.ParseMonth(s.StartMonth)
	if err != nil {
		return fmt.Errorf("%w: startMonth: %v", ErrInvalidSettings, err)
	}
	if s.ProjectionEndYear < start.Year {
		return fmt.Errorf("%w: projectionEndYear %d is before start year %d", ErrInvalidSettings, s.ProjectionEndYear, start.Year)
	}
	if s.BirthYear <= 0 {
		return fmt.Errorf("%w: birthYear is required", ErrInvalidSettings)
	}
	if s.Currency != "" && money.GetCurrency(strings.ToUpper(s.Currency)) == nil {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidSettings, s.Currency)
	}
	return nil
}

func validateIncome(s *domain.IncomeStream) error {
	if !slices.Contains(domain.IncomeFrequencies, s.Frequency) {
		return fmt.Errorf("%w: %q", ErrUnknownFrequency, s.Frequency)
	}
	return validateMonthNumbers("paymentMonths", s.PaymentMonths)
}

func validateExpense(e *domain.Expense) error {
	if !slices.Contains(domain.ExpenseFrequencies, e.Frequency) {
		return fmt.Errorf("%w: %q", ErrUnknownFrequency, e.Frequency)
	}
	if err := validateMonthNumbers("paymentMonths", e.PaymentMonths); err != nil {
		return err
	}
	if err := validateMonthNumbers("activeMonths", e.ActiveMonths); err != nil {
		return err
	}
	var bounds [2]dateutil.Month
	for i, f := range [...]struct{ name, label string }{{"startDate", e.StartDate}, {"endDate", e.EndDate}} {
		if f.label == "" {
			continue
		}
		m, err := dateutil.ParseMonth(f.label)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidMonth, f.name, err)
		}
		bounds[i] = m
	}
	if e.Frequency == domain.FrequencyOneOff && e.StartDate == "" {
		return fmt.Errorf("%w: one-off expense needs a startDate", ErrInvalidMonth)
	}
	if e.StartDate != "" && e.EndDate != "" && bounds[0].After(bounds[1]) {
		return fmt.Errorf("%w: startDate %s is after endDate %s", ErrInvalidMonth, e.StartDate, e.EndDate)
	}
	return nil
}

func validateMonthNumbers(field string, months []int) error {
	for _, m := range months {
		if m < 1 || m > dateutil.MonthsPerYear {
			return fmt.Errorf("%w: %s contains %d", ErrInvalidMonth, field, m)
		}
	}
	return nil
}

type idSet map[string]struct{}

func newIDSet() idSet { return idSet{} }

func (s idSet) add(kind, id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", kind, ErrMissingID)
	}
	if _, ok := s[id]; ok {
		return fmt.Errorf("%s %q: %w", kind, id, ErrDuplicateID)
	}
	s[id] = struct{}{}
	return nil
}
