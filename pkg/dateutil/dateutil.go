package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MonthLayout is the wire format of month labels.
const MonthLayout = "YYYY-MM"

// MonthsPerYear is the number of calendar months in a year
const MonthsPerYear = 12

// ErrBadMonth is returned when a label is not a "YYYY-MM" month.
var ErrBadMonth = errors.New("invalid month label")

// Month is a calendar month with no day or time component.
type Month struct {
	Year  int
	Month int // 1-12
}

// NewMonth builds a Month, normalizing out-of-range month numbers into adjacent years.
func NewMonth(year, month int) Month {
	return Month{Year: year, Month: 1}.AddMonths(month - 1)
}

// ParseMonth parses a "YYYY-MM" label. A single-digit month ("2026-3") is accepted
// and normalized; String always renders two digits.
func ParseMonth(label string) (Month, error) {
	label = strings.TrimSpace(label)
	y, m, ok := strings.Cut(label, "-")
	if !ok || len(y) != 4 || len(m) < 1 || len(m) > 2 {
		return Month{}, fmt.Errorf("%w: %q, want %s", ErrBadMonth, label, MonthLayout)
	}
	year, err := strconv.Atoi(y)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q, want %s", ErrBadMonth, label, MonthLayout)
	}
	month, err := strconv.Atoi(m)
	if err != nil || month < 1 || month > MonthsPerYear {
		return Month{}, fmt.Errorf("%w: %q, want %s", ErrBadMonth, label, MonthLayout)
	}
	return NewMonth(year, month), nil
}

// String renders the month as "YYYY-MM".
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// AddMonths returns the month n months later (or earlier for negative n).
func (m Month) AddMonths(n int) Month {
	idx := m.Year*MonthsPerYear + (m.Month - 1) + n
	year := idx / MonthsPerYear
	month := idx % MonthsPerYear
	if month < 0 {
		month += MonthsPerYear
		year--
	}
	return Month{Year: year, Month: month + 1}
}

// Quarter returns the calendar quarter (1-4) the month falls in.
func (m Month) Quarter() int {
	return (m.Month-1)/3 + 1
}

// Before reports whether m is strictly earlier than other.
func (m Month) Before(other Month) bool {
	return m.Year < other.Year || (m.Year == other.Year && m.Month < other.Month)
}

// After reports whether m is strictly later than other.
func (m Month) After(other Month) bool {
	return other.Before(m)
}

// CompareLabels orders two month labels chronologically: -1 if a < b, 0 if equal,
// 1 if a > b. Labels that do not parse are compared lexically.
func CompareLabels(a, b string) int {
	ma, errA := ParseMonth(a)
	mb, errB := ParseMonth(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	switch {
	case ma.Before(mb):
		return -1
	case ma.After(mb):
		return 1
	default:
		return 0
	}
}
