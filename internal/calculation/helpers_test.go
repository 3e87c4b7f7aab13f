package calculation

import (
	"fmt"
	"sync"
	"testing"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func intPtr(v int) *int { return &v }

// assertDecimal compares a decimal against its expected string form.
func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	w, err := decimal.NewFromString(want)
	if err != nil {
		t.Fatalf("bad expected decimal %q: %v", want, err)
	}
	assert.True(t, w.Equal(got), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func baseSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Settings: domain.Settings{
			StartMonth:        "2026-01",
			ProjectionEndYear: 2028,
			BirthYear:         1990,
			Currency:          "GBP",
		},
	}
}

func monthlyIncome(id string, amount float64) domain.IncomeStream {
	return domain.IncomeStream{ID: id, Name: id, Amount: dec(amount), Frequency: domain.FrequencyMonthly}
}

func monthlyExpense(id string, amount float64) domain.Expense {
	return domain.Expense{ID: id, Name: id, Amount: dec(amount), Frequency: domain.FrequencyMonthly}
}

// recordingLogger captures formatted log lines; safe for concurrent use.
type recordingLogger struct {
	mu     sync.Mutex
	debugs []string
	warns  []string
	infos  []string
}

func (r *recordingLogger) Debugf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.debugs = append(r.debugs, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Infof(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}
func (r *recordingLogger) Errorf(format string, args ...any) {}
