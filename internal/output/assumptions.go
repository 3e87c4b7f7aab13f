package output

import (
	"fmt"

	"github.com/rpgo/wealth-forecast/internal/domain"
)

// DefaultAssumptions lists the modeling rules every projection follows.
var DefaultAssumptions = []string{
	"All amounts are nominal; no inflation adjustment and no tax",
	"Assets compound annually from the start year (or their unlock year)",
	"Mortgages amortize monthly at rate/12 until paid off",
	"Student loans compound without repayment and are excluded from net wealth",
	"Credit cards and other debts are held flat",
}

// GenerateAssumptions extends DefaultAssumptions with the snapshot's own rates.
func GenerateAssumptions(snapshot domain.Snapshot) []string {
	out := append([]string(nil), DefaultAssumptions...)
	out = append(out, fmt.Sprintf("Projection runs from %s to the end of %d",
		snapshot.Settings.StartMonth, snapshot.Settings.ProjectionEndYear))
	for _, a := range snapshot.Assets {
		line := fmt.Sprintf("%s: %s annual growth", displayName(a.Name, a.ID), FormatPercentage(a.AnnualGrowthRate))
		if a.UnlockYear != nil {
			line += fmt.Sprintf(", held flat until %d", *a.UnlockYear)
		}
		if a.EndYear != nil {
			line += fmt.Sprintf(", gone after %d", *a.EndYear)
		}
		out = append(out, line)
	}
	for _, l := range snapshot.Liabilities {
		if l.Type == domain.LiabilityMortgage || l.Type == domain.LiabilityStudentLoan {
			out = append(out, fmt.Sprintf("%s: %s interest", displayName(l.Name, l.ID), FormatPercentage(l.InterestRate)))
		}
	}
	return out
}

func displayName(name, id string) string {
	if name != "" {
		return name
	}
	return id
}
