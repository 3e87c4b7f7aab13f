package config

import (
	"github.com/rpgo/wealth-forecast/internal/domain"
	"github.com/shopspring/decimal"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func year(y int) *int { return &y }

// CreateExampleSnapshot returns a complete household snapshot exercising every
// frequency, liability type and override kind. Its ids line up with the preset
// scenarios.
func CreateExampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Settings: domain.Settings{
			StartMonth:        "2026-01",
			ProjectionEndYear: 2055,
			BirthYear:         1988,
			Currency:          "GBP",
		},
		CashPositions: []domain.CashPosition{
			{ID: "current-account", Name: "Current Account", Balance: d(3500), IsLiquid: true, Category: "current"},
			{ID: "easy-access", Name: "Easy Access Saver", Balance: d(18000), InterestRate: d(0.045), IsLiquid: true, Category: "savings"},
			{ID: "premium-bonds", Name: "Premium Bonds", Balance: d(12000), InterestRate: d(0.04), IsLiquid: true, Category: "savings"},
		},
		IncomeStreams: []domain.IncomeStream{
			{ID: "salary", Name: "Salary", Amount: d(6200), Frequency: domain.FrequencyMonthly, Owner: "self", Taxable: true},
			{ID: "partner-salary", Name: "Partner Salary", Amount: d(2800), Frequency: domain.FrequencyMonthly, Owner: "partner", Taxable: true},
			{ID: "bonus", Name: "Annual Bonus", Amount: d(15000), Frequency: domain.FrequencyAnnual, PaymentMonths: []int{3}, Owner: "self", Taxable: true},
			{ID: "dividends", Name: "ISA Dividends", Amount: d(450), Frequency: domain.FrequencyQuarterly, Owner: "self"},
		},
		Expenses: []domain.Expense{
			{ID: "mortgage-payment", Name: "Mortgage", Amount: d(1650), Frequency: domain.FrequencyMonthly, Category: "housing"},
			{ID: "council-tax", Name: "Council Tax", Amount: d(210), Frequency: domain.FrequencyMonthly, Category: "housing",
				ActiveMonths: []int{4, 5, 6, 7, 8, 9, 10, 11, 12}, Notes: "Nine instalments, April to December"},
			{ID: "groceries", Name: "Groceries", Amount: d(750), Frequency: domain.FrequencyMonthly, Category: "food"},
			{ID: "dining-out", Name: "Dining Out", Amount: d(280), Frequency: domain.FrequencyMonthly, Category: "food"},
			{ID: "nursery", Name: "Nursery", Amount: d(1100), Frequency: domain.FrequencyMonthly, Category: "childcare", EndDate: "2027-08"},
			{ID: "school-fees", Name: "School Fees", Amount: d(6500), Frequency: domain.FrequencyTermly, Category: "childcare",
				PaymentMonths: []int{1, 4, 9}, StartDate: "2027-09"},
			{ID: "water", Name: "Water", Amount: d(96), Frequency: domain.FrequencyBimonthly, Category: "utilities"},
			{ID: "service-charge", Name: "Service Charge", Amount: d(375), Frequency: domain.FrequencyQuarterly, Category: "housing",
				PaymentMonths: []int{3, 6, 9, 12}},
			{ID: "car-insurance", Name: "Car Insurance", Amount: d(900), Frequency: domain.FrequencyAnnual, Category: "transport", PaymentMonths: []int{9}},
			{ID: "holiday", Name: "Summer Holiday", Amount: d(4500), Frequency: domain.FrequencyOneOff, Category: "leisure", StartDate: "2026-08"},
		},
		Assets: []domain.Asset{
			{ID: "workplace-pension", Name: "Workplace Pension", CurrentValue: d(145000), AnnualGrowthRate: d(0.06), Category: "pension", UnlockYear: year(2045)},
			{ID: "stocks-isa", Name: "Stocks & Shares ISA", CurrentValue: d(62000), AnnualGrowthRate: d(0.07), Category: "investments", IsLiquid: true},
			{ID: "home", Name: "Home", CurrentValue: d(525000), AnnualGrowthRate: d(0.03), Category: "property"},
			{ID: "car", Name: "Car", CurrentValue: d(18000), AnnualGrowthRate: d(-0.15), Category: "vehicle", EndYear: year(2033)},
		},
		Liabilities: []domain.Liability{
			{ID: "mortgage", Name: "Mortgage", CurrentBalance: d(310000), InterestRate: d(0.0449), MonthlyPayment: d(1650), Type: domain.LiabilityMortgage},
			{ID: "student-loan", Name: "Student Loan", CurrentBalance: d(38000), InterestRate: d(0.071), MonthlyPayment: d(180), Type: domain.LiabilityStudentLoan, EndYear: year(2049)},
			{ID: "credit-card", Name: "Credit Card", CurrentBalance: d(1200), InterestRate: d(0.229), MonthlyPayment: d(300), Type: domain.LiabilityCreditCard},
		},
		CarryPositions: []domain.CarryPosition{
			{
				ID:                   "northbridge-iii",
				FundName:             "Northbridge Growth III",
				FundSize:             d(250_000_000),
				CommittedCapital:     d(2_000_000),
				CarryPercent:         d(0.20),
				HurdleRate:           d(0.08),
				PersonalSharePercent: d(0.015),
				PortfolioCompanies: []domain.PortfolioCompany{
					{ID: "ledgerline", Name: "Ledgerline", InvestedAmount: d(30_000_000), CurrentValuation: d(72_000_000), OwnershipPercent: d(0.18), Status: domain.CompanyMarkedUp},
					{ID: "harbourpay", Name: "HarbourPay", InvestedAmount: d(25_000_000), CurrentValuation: d(25_000_000), OwnershipPercent: d(0.12), Status: domain.CompanyActive},
					{ID: "greenmile", Name: "Greenmile Logistics", InvestedAmount: d(20_000_000), CurrentValuation: d(55_000_000), OwnershipPercent: d(0.22), Status: domain.CompanyExited},
					{ID: "quillstack", Name: "Quillstack", InvestedAmount: d(15_000_000), CurrentValuation: decimal.Zero, OwnershipPercent: d(0.10), Status: domain.CompanyWrittenOff},
				},
			},
		},
		Scenarios: []domain.Scenario{
			{
				ID:          "second-child",
				Name:        "Second Child",
				Description: "Partner drops to part-time and a second nursery place from autumn 2027",
				Overrides: domain.ScenarioOverrides{
					IncomeAdjustments: map[string]decimal.Decimal{"partner-salary": d(0.6)},
					AdditionalExpenses: []domain.Expense{
						{ID: "nursery-2", Name: "Second Nursery Place", Amount: d(1200), Frequency: domain.FrequencyMonthly, Category: "childcare", StartDate: "2027-09"},
					},
				},
			},
			{
				ID:          "sell-car",
				Name:        "Go Car-Free",
				Description: "Drop car insurance and let the car value lapse",
				Overrides: domain.ScenarioOverrides{
					AssetGrowthRates:  map[string]decimal.Decimal{"car": d(-1)},
					RemovedExpenseIDs: []string{"car-insurance"},
				},
			},
		},
	}
}
