package calculation

import (
	"testing"

	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectWealth_YearsAndAge(t *testing.T) {
	snap := baseSnapshot()
	snap.Settings.StartMonth = "2026-07"
	snap.Settings.ProjectionEndYear = 2030
	snap.Settings.BirthYear = 2028

	projection, err := ProjectWealth(snap)
	require.NoError(t, err)
	require.Len(t, projection, 5)
	for i, yp := range projection {
		assert.Equal(t, 2026+i, yp.Year)
	}
	assert.Equal(t, -2, projection[0].Age)
	assert.Equal(t, 2, projection[4].Age)

	snap.Settings.ProjectionEndYear = 2025
	projection, err = ProjectWealth(snap)
	require.NoError(t, err)
	assert.Empty(t, projection)
}

func TestAssetValueForYear_Compounding(t *testing.T) {
	asset := domain.Asset{ID: "isa", CurrentValue: dec(10000), AnnualGrowthRate: dec(0.05)}

	assertDecimal(t, "10000", AssetValueForYear(asset, 2026, 2026))
	assertDecimal(t, "10500", AssetValueForYear(asset, 2026, 2027))
	assertDecimal(t, "11025", AssetValueForYear(asset, 2026, 2028))
	// 10000 * 1.05^3 = 11576.25
	assertDecimal(t, "11576", AssetValueForYear(asset, 2026, 2029))
}

func TestAssetValueForYear_NegativeGrowth(t *testing.T) {
	car := domain.Asset{ID: "car", CurrentValue: dec(20000), AnnualGrowthRate: dec(-0.15)}
	assertDecimal(t, "17000", AssetValueForYear(car, 2026, 2027))
	assertDecimal(t, "14450", AssetValueForYear(car, 2026, 2028))
}

func TestAssetValueForYear_EndYear(t *testing.T) {
	asset := domain.Asset{ID: "bond", CurrentValue: dec(5000), AnnualGrowthRate: dec(0.02), EndYear: intPtr(2028)}

	for year := 2026; year <= 2028; year++ {
		assert.True(t, AssetValueForYear(asset, 2026, year).IsPositive(), "year %d", year)
	}
	for year := 2029; year <= 2035; year++ {
		assert.True(t, AssetValueForYear(asset, 2026, year).IsZero(), "year %d", year)
	}
}

func TestAssetValueForYear_UnlockYear(t *testing.T) {
	pension := domain.Asset{ID: "pension", CurrentValue: dec(10000), AnnualGrowthRate: dec(0.10), UnlockYear: intPtr(2028)}

	assertDecimal(t, "10000", AssetValueForYear(pension, 2026, 2026))
	assertDecimal(t, "10000", AssetValueForYear(pension, 2026, 2027))
	assertDecimal(t, "10000", AssetValueForYear(pension, 2026, 2028))
	assertDecimal(t, "11000", AssetValueForYear(pension, 2026, 2029))

	// An unlock year before the base year does not backdate growth.
	early := pension
	early.UnlockYear = intPtr(2020)
	assertDecimal(t, "11000", AssetValueForYear(early, 2026, 2027))
}

func TestAssetValueForYear_FlatValueRounded(t *testing.T) {
	locked := domain.Asset{ID: "locked", CurrentValue: dec(1000.6), AnnualGrowthRate: dec(0.10), UnlockYear: intPtr(2028)}

	assertDecimal(t, "1001", AssetValueForYear(locked, 2026, 2026))
	assertDecimal(t, "1001", AssetValueForYear(locked, 2026, 2027))
	assertDecimal(t, AssetValueForYear(locked, 2026, 2028).String(), AssetValueForYear(locked, 2026, 2027))
}

func TestAssetValueForYear_ZeroValueStaysZero(t *testing.T) {
	asset := domain.Asset{ID: "empty", CurrentValue: dec(0), AnnualGrowthRate: dec(0.5)}
	for year := 2026; year <= 2040; year++ {
		assert.True(t, AssetValueForYear(asset, 2026, year).IsZero())
	}
}

func TestLiabilityBalanceForYear(t *testing.T) {
	studentLoan := domain.Liability{ID: "sl", Type: domain.LiabilityStudentLoan, CurrentBalance: dec(40000), InterestRate: dec(0.05), MonthlyPayment: dec(200)}
	assertDecimal(t, "40000", LiabilityBalanceForYear(studentLoan, 2026, 2026))
	assertDecimal(t, "42000", LiabilityBalanceForYear(studentLoan, 2026, 2027))
	assertDecimal(t, "44100", LiabilityBalanceForYear(studentLoan, 2026, 2028))

	studentLoan.EndYear = intPtr(2027)
	assertDecimal(t, "42000", LiabilityBalanceForYear(studentLoan, 2026, 2027))
	assertDecimal(t, "0", LiabilityBalanceForYear(studentLoan, 2026, 2028))

	card := domain.Liability{ID: "cc", Type: domain.LiabilityCreditCard, CurrentBalance: dec(2500), InterestRate: dec(0.22), MonthlyPayment: dec(100)}
	for year := 2026; year <= 2030; year++ {
		assertDecimal(t, "2500", LiabilityBalanceForYear(card, 2026, year))
	}
	card.EndYear = intPtr(2026)
	assertDecimal(t, "2500", LiabilityBalanceForYear(card, 2026, 2026))
	assertDecimal(t, "0", LiabilityBalanceForYear(card, 2026, 2027))

	other := domain.Liability{ID: "loan", Type: domain.LiabilityOther, CurrentBalance: dec(800)}
	assertDecimal(t, "800", LiabilityBalanceForYear(other, 2026, 2040))
}

func TestMortgageAmortization(t *testing.T) {
	interestFree := domain.Liability{ID: "m0", Type: domain.LiabilityMortgage, CurrentBalance: dec(120000), MonthlyPayment: dec(1000)}
	assertDecimal(t, "120000", MortgageBalanceAfter(interestFree, 0))
	assertDecimal(t, "108000", MortgageBalanceAfter(interestFree, 12))
	assertDecimal(t, "0", MortgageBalanceAfter(interestFree, 120))
	assertDecimal(t, "0", MortgageBalanceAfter(interestFree, 240))

	// 100000 * 1.005^12 - 1000 * (1.005^12 - 1) / 0.005 = 93832.22
	withInterest := domain.Liability{ID: "m6", Type: domain.LiabilityMortgage, CurrentBalance: dec(100000), InterestRate: dec(0.06), MonthlyPayment: dec(1000)}
	assertDecimal(t, "93832", MortgageBalanceAfter(withInterest, 12))
	assertDecimal(t, "93832", LiabilityBalanceForYear(withInterest, 2026, 2027))

	// Payment below interest grows the balance; it is not clamped.
	underwater := domain.Liability{ID: "m-io", Type: domain.LiabilityMortgage, CurrentBalance: dec(100000), InterestRate: dec(0.12), MonthlyPayment: dec(500)}
	assert.True(t, MortgageBalanceAfter(underwater, 12).GreaterThan(dec(100000)))
}

func TestAmortizationScheduleMatchesDirectSimulation(t *testing.T) {
	l := domain.Liability{ID: "m", Type: domain.LiabilityMortgage, CurrentBalance: dec(250000), InterestRate: dec(0.045), MonthlyPayment: dec(1400)}

	schedule := AmortizationSchedule(l, 40)
	require.Len(t, schedule, 40)
	for y, balance := range schedule {
		assert.True(t, balance.Equal(MortgageBalanceAfter(l, y*12)), "year offset %d: schedule %s direct %s", y, balance, MortgageBalanceAfter(l, y*12))
	}
	assert.True(t, schedule[39].IsZero(), "paid off within 40 years")

	paid := domain.Liability{ID: "done", Type: domain.LiabilityMortgage, CurrentBalance: dec(0), MonthlyPayment: dec(100)}
	for _, b := range AmortizationSchedule(paid, 3) {
		assert.True(t, b.IsZero())
	}
}

func TestProjectWealth_Totals(t *testing.T) {
	snap := baseSnapshot()
	snap.Settings.ProjectionEndYear = 2027
	snap.Assets = []domain.Asset{
		{ID: "isa", CurrentValue: dec(10000), AnnualGrowthRate: dec(0.05), IsLiquid: true},
		{ID: "home", CurrentValue: dec(300000), AnnualGrowthRate: dec(0.02)},
	}
	snap.Liabilities = []domain.Liability{
		{ID: "card", Type: domain.LiabilityCreditCard, CurrentBalance: dec(1000)},
		{ID: "sl", Type: domain.LiabilityStudentLoan, CurrentBalance: dec(50000), InterestRate: dec(0.06)},
	}

	projection, err := ProjectWealth(snap)
	require.NoError(t, err)
	require.Len(t, projection, 2)

	y0 := projection[0]
	assertDecimal(t, "310000", y0.TotalAssets)
	assertDecimal(t, "10000", y0.LiquidAssets)
	assertDecimal(t, "1000", y0.TotalLiabilities)
	assertDecimal(t, "309000", y0.NetWealth)

	y1 := projection[1]
	assertDecimal(t, "10500", y1.Assets["isa"])
	assertDecimal(t, "306000", y1.Assets["home"])
	assertDecimal(t, "316500", y1.TotalAssets)
	assertDecimal(t, "10500", y1.LiquidAssets)
	// The student loan is reported but excluded from the liability total.
	assertDecimal(t, "53000", y1.Liabilities["sl"])
	assertDecimal(t, "1000", y1.TotalLiabilities)
	assertDecimal(t, "315500", y1.NetWealth)
}

func TestProjectWealth_StudentLoanDoesNotAffectNetWealth(t *testing.T) {
	snap := baseSnapshot()
	snap.Assets = []domain.Asset{{ID: "cash-isa", CurrentValue: dec(20000), AnnualGrowthRate: dec(0.03)}}

	without, err := ProjectWealth(snap)
	require.NoError(t, err)

	snap.Liabilities = []domain.Liability{{ID: "sl", Type: domain.LiabilityStudentLoan, CurrentBalance: dec(60000), InterestRate: dec(0.07)}}
	with, err := ProjectWealth(snap)
	require.NoError(t, err)

	require.Len(t, with, len(without))
	for i := range with {
		assert.True(t, with[i].NetWealth.Equal(without[i].NetWealth), "year %d", with[i].Year)
		assert.True(t, with[i].Liabilities["sl"].IsPositive())
		assert.True(t, with[i].TotalLiabilities.IsZero())
	}
}

func TestProjectWealth_MortgageReducesNetWealth(t *testing.T) {
	snap := baseSnapshot()
	snap.Settings.ProjectionEndYear = 2027
	snap.Liabilities = []domain.Liability{{ID: "mortgage", Type: domain.LiabilityMortgage, CurrentBalance: dec(100000), InterestRate: dec(0.06), MonthlyPayment: dec(1000)}}

	projection, err := ProjectWealth(snap)
	require.NoError(t, err)
	assertDecimal(t, "100000", projection[0].Liabilities["mortgage"])
	assertDecimal(t, "93832", projection[1].Liabilities["mortgage"])
	assertDecimal(t, "-93832", projection[1].NetWealth)
}

func TestProjectWealth_InvalidStartMonth(t *testing.T) {
	snap := baseSnapshot()
	snap.Settings.StartMonth = ""
	_, err := ProjectWealth(snap)
	assert.ErrorIs(t, err, ErrInvalidStartMonth)
}
