package calculation

import (
	"github.com/rpgo/wealth-forecast/internal/domain"
	money "github.com/rpgo/wealth-forecast/pkg/decimal"
	"github.com/shopspring/decimal"
)

// ProjectWealth returns one YearlyProjection per calendar year from the start year
// (the year of settings.startMonth, also the valuation base year) through
// settings.projectionEndYear inclusive.
func ProjectWealth(snapshot domain.Snapshot) ([]domain.YearlyProjection, error) {
	start, err := StartMonth(snapshot)
	if err != nil {
		return nil, err
	}
	baseYear := start.Year
	endYear := snapshot.Settings.ProjectionEndYear
	if endYear < baseYear {
		return []domain.YearlyProjection{}, nil
	}
	years := endYear - baseYear + 1

	// Mortgage balances depend on the whole month-by-month history, so amortize each
	// one once across the horizon instead of re-simulating per year.
	schedules := make(map[int][]decimal.Decimal, len(snapshot.Liabilities))
	for i, l := range snapshot.Liabilities {
		if l.Type == domain.LiabilityMortgage {
			schedules[i] = AmortizationSchedule(l, years)
		}
	}

	projection := make([]domain.YearlyProjection, 0, years)
	for offset := 0; offset < years; offset++ {
		year := baseYear + offset
		yp := domain.YearlyProjection{
			Year:             year,
			Age:              year - snapshot.Settings.BirthYear,
			Assets:           make(map[string]decimal.Decimal, len(snapshot.Assets)),
			Liabilities:      make(map[string]decimal.Decimal, len(snapshot.Liabilities)),
			TotalAssets:      decimal.Zero,
			TotalLiabilities: decimal.Zero,
			LiquidAssets:     decimal.Zero,
		}

		for _, a := range snapshot.Assets {
			value := AssetValueForYear(a, baseYear, year)
			yp.Assets[a.ID] = value
			yp.TotalAssets = yp.TotalAssets.Add(value)
			if a.IsLiquid {
				yp.LiquidAssets = yp.LiquidAssets.Add(value)
			}
		}

		for i, l := range snapshot.Liabilities {
			var balance decimal.Decimal
			if schedule, ok := schedules[i]; ok {
				balance = schedule[offset]
			} else {
				balance = LiabilityBalanceForYear(l, baseYear, year)
			}
			yp.Liabilities[l.ID] = balance
			// Student debt is reported per liability but never reduces net wealth.
			if l.Type != domain.LiabilityStudentLoan {
				yp.TotalLiabilities = yp.TotalLiabilities.Add(balance)
			}
		}

		yp.NetWealth = yp.TotalAssets.Sub(yp.TotalLiabilities)
		projection = append(projection, yp)
	}

	return projection, nil
}

// AssetValueForYear values an asset in year, rounded to whole currency units.
// A zero-valued asset stays zero; an asset is zero after its end year; before the
// growth start year (the later of baseYear and unlockYear) it is held flat.
func AssetValueForYear(asset domain.Asset, baseYear, year int) decimal.Decimal {
	if asset.CurrentValue.IsZero() {
		return decimal.Zero
	}
	if asset.EndYear != nil && year > *asset.EndYear {
		return decimal.Zero
	}

	growthStart := baseYear
	if asset.UnlockYear != nil && *asset.UnlockYear > growthStart {
		growthStart = *asset.UnlockYear
	}
	value := money.NewMoneyFromDecimal(asset.CurrentValue)
	if year < growthStart {
		return value.RoundWhole().Decimal
	}

	value = value.Compound(asset.AnnualGrowthRate, year-growthStart)
	return value.RoundWhole().Decimal
}
