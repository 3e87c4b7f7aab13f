package domain

import (
	"github.com/shopspring/decimal"
)

// Frequency is how often a recurring income stream or expense fires
type Frequency string

const (
	FrequencyMonthly   Frequency = "monthly"
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyTermly    Frequency = "termly"
	FrequencyAnnual    Frequency = "annual"
	FrequencyBimonthly Frequency = "bimonthly"
	FrequencyOneOff    Frequency = "one-off"
)

// IncomeFrequencies lists the frequencies an income stream may carry.
var IncomeFrequencies = []Frequency{FrequencyMonthly, FrequencyQuarterly, FrequencyAnnual}

// ExpenseFrequencies lists the frequencies an expense may carry.
var ExpenseFrequencies = []Frequency{
	FrequencyMonthly, FrequencyQuarterly, FrequencyTermly,
	FrequencyAnnual, FrequencyBimonthly, FrequencyOneOff,
}

// LiabilityType selects how a liability balance evolves over the projection
type LiabilityType string

const (
	LiabilityMortgage    LiabilityType = "mortgage"
	LiabilityStudentLoan LiabilityType = "student_loan"
	LiabilityCreditCard  LiabilityType = "credit_card"
	LiabilityOther       LiabilityType = "other"
)

// CompanyStatus is the lifecycle state of a portfolio company
type CompanyStatus string

const (
	CompanyActive     CompanyStatus = "active"
	CompanyMarkedUp   CompanyStatus = "marked_up"
	CompanyExited     CompanyStatus = "exited"
	CompanyWrittenOff CompanyStatus = "written_off"
)

// Settings carries the only notion of time the engine has.
type Settings struct {
	StartMonth        string `yaml:"startMonth" json:"startMonth"` // "YYYY-MM"
	ProjectionEndYear int    `yaml:"projectionEndYear" json:"projectionEndYear"`
	BirthYear         int    `yaml:"birthYear" json:"birthYear"`
	Currency          string `yaml:"currency" json:"currency"`
}

// CashPosition is a bank or cash account
type CashPosition struct {
	ID           string          `yaml:"id" json:"id"`
	Name         string          `yaml:"name" json:"name"`
	Balance      decimal.Decimal `yaml:"balance" json:"balance"`
	InterestRate decimal.Decimal `yaml:"interestRate" json:"interestRate"` // display only
	IsLiquid     bool            `yaml:"isLiquid" json:"isLiquid"`
	Category     string          `yaml:"category" json:"category"`
}

// IncomeStream is a recurring source of income
type IncomeStream struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"` // per period
	Frequency     Frequency       `yaml:"frequency" json:"frequency"`
	PaymentMonths []int           `yaml:"paymentMonths,omitempty" json:"paymentMonths,omitempty"`
	Owner         string          `yaml:"owner" json:"owner"`
	Taxable       bool            `yaml:"taxable" json:"taxable"`
}

// Expense is a recurring or one-off outgoing
type Expense struct {
	ID            string          `yaml:"id" json:"id"`
	Name          string          `yaml:"name" json:"name"`
	Amount        decimal.Decimal `yaml:"amount" json:"amount"` // per period
	Frequency     Frequency       `yaml:"frequency" json:"frequency"`
	Category      string          `yaml:"category" json:"category"`
	PaymentMonths []int           `yaml:"paymentMonths,omitempty" json:"paymentMonths,omitempty"`
	ActiveMonths  []int           `yaml:"activeMonths,omitempty" json:"activeMonths,omitempty"`
	StartDate     string          `yaml:"startDate,omitempty" json:"startDate,omitempty"` // "YYYY-MM", inclusive
	EndDate       string          `yaml:"endDate,omitempty" json:"endDate,omitempty"`     // "YYYY-MM", inclusive
	Notes         string          `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// Asset is a long-term holding valued in the yearly projection
type Asset struct {
	ID               string          `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	CurrentValue     decimal.Decimal `yaml:"currentValue" json:"currentValue"`
	AnnualGrowthRate decimal.Decimal `yaml:"annualGrowthRate" json:"annualGrowthRate"` // decimal, may be negative
	Category         string          `yaml:"category" json:"category"`
	IsLiquid         bool            `yaml:"isLiquid" json:"isLiquid"`
	UnlockYear       *int            `yaml:"unlockYear,omitempty" json:"unlockYear,omitempty"`
	EndYear          *int            `yaml:"endYear,omitempty" json:"endYear,omitempty"`
}

// Liability is a debt or obligation
type Liability struct {
	ID             string          `yaml:"id" json:"id"`
	Name           string          `yaml:"name" json:"name"`
	CurrentBalance decimal.Decimal `yaml:"currentBalance" json:"currentBalance"`
	InterestRate   decimal.Decimal `yaml:"interestRate" json:"interestRate"`
	MonthlyPayment decimal.Decimal `yaml:"monthlyPayment" json:"monthlyPayment"`
	Type           LiabilityType   `yaml:"type" json:"type"`
	EndYear        *int            `yaml:"endYear,omitempty" json:"endYear,omitempty"`
}

// PortfolioCompany is a single investment held by a fund
type PortfolioCompany struct {
	ID               string          `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	InvestedAmount   decimal.Decimal `yaml:"investedAmount" json:"investedAmount"`
	CurrentValuation decimal.Decimal `yaml:"currentValuation" json:"currentValuation"`
	OwnershipPercent decimal.Decimal `yaml:"ownershipPercent" json:"ownershipPercent"`
	Status           CompanyStatus   `yaml:"status" json:"status"`
}

// CarryPosition is a carried-interest entitlement in a fund
type CarryPosition struct {
	ID                   string             `yaml:"id" json:"id"`
	FundName             string             `yaml:"fundName" json:"fundName"`
	FundSize             decimal.Decimal    `yaml:"fundSize" json:"fundSize"`
	CommittedCapital     decimal.Decimal    `yaml:"committedCapital" json:"committedCapital"`
	CarryPercent         decimal.Decimal    `yaml:"carryPercent" json:"carryPercent"`
	HurdleRate           decimal.Decimal    `yaml:"hurdleRate" json:"hurdleRate"`
	PersonalSharePercent decimal.Decimal    `yaml:"personalSharePercent" json:"personalSharePercent"`
	LinkedAssetID        string             `yaml:"linkedAssetId,omitempty" json:"linkedAssetId,omitempty"`
	PortfolioCompanies   []PortfolioCompany `yaml:"portfolioCompanies" json:"portfolioCompanies"`
}

// ScenarioOverrides is the declarative change set a scenario applies to a snapshot
type ScenarioOverrides struct {
	AssetGrowthRates   map[string]decimal.Decimal `yaml:"assetGrowthRates,omitempty" json:"assetGrowthRates,omitempty"`
	IncomeAdjustments  map[string]decimal.Decimal `yaml:"incomeAdjustments,omitempty" json:"incomeAdjustments,omitempty"` // multipliers
	AdditionalExpenses []Expense                  `yaml:"additionalExpenses,omitempty" json:"additionalExpenses,omitempty"`
	RemovedExpenseIDs  []string                   `yaml:"removedExpenseIds,omitempty" json:"removedExpenseIds,omitempty"`
}

// IsEmpty reports whether the overrides change nothing.
func (o ScenarioOverrides) IsEmpty() bool {
	return len(o.AssetGrowthRates) == 0 && len(o.IncomeAdjustments) == 0 &&
		len(o.AdditionalExpenses) == 0 && len(o.RemovedExpenseIDs) == 0
}

// Scenario is a named set of overrides compared against the base case
type Scenario struct {
	ID          string            `yaml:"id" json:"id"`
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description" json:"description"`
	Overrides   ScenarioOverrides `yaml:"overrides" json:"overrides"`
}

// Snapshot is the complete point-in-time input to the forecasting engine.
// The engine treats it as read-only.
type Snapshot struct {
	Settings       Settings        `yaml:"settings" json:"settings"`
	CashPositions  []CashPosition  `yaml:"cashPositions" json:"cashPositions"`
	IncomeStreams  []IncomeStream  `yaml:"incomeStreams" json:"incomeStreams"`
	Expenses       []Expense       `yaml:"expenses" json:"expenses"`
	Assets         []Asset         `yaml:"assets" json:"assets"`
	Liabilities    []Liability     `yaml:"liabilities" json:"liabilities"`
	CarryPositions []CarryPosition `yaml:"carryPositions,omitempty" json:"carryPositions,omitempty"`
	Scenarios      []Scenario      `yaml:"scenarios,omitempty" json:"scenarios,omitempty"`
}

// Clone returns a copy whose top-level slices can be replaced or re-sliced without
// touching the original. Records are values; nested month lists are shared and must not
// be mutated.
func (s Snapshot) Clone() Snapshot {
	out := s
	out.CashPositions = append([]CashPosition(nil), s.CashPositions...)
	out.IncomeStreams = append([]IncomeStream(nil), s.IncomeStreams...)
	out.Expenses = append([]Expense(nil), s.Expenses...)
	out.Assets = append([]Asset(nil), s.Assets...)
	out.Liabilities = append([]Liability(nil), s.Liabilities...)
	out.CarryPositions = append([]CarryPosition(nil), s.CarryPositions...)
	out.Scenarios = append([]Scenario(nil), s.Scenarios...)
	return out
}

// TotalCash sums every cash position balance.
func (s Snapshot) TotalCash() decimal.Decimal {
	total := decimal.Zero
	for _, c := range s.CashPositions {
		total = total.Add(c.Balance)
	}
	return total
}

// Recurrence is the firing rule shared by income streams and expenses.
type Recurrence struct {
	Frequency     Frequency
	PaymentMonths []int
	ActiveMonths  []int
	StartDate     string
	EndDate       string
	// Income restricts the rule to IncomeFrequencies and disables range and
	// active-month gating.
	Income bool
}

// Recurrence returns the firing rule of the income stream.
func (i IncomeStream) Recurrence() Recurrence {
	return Recurrence{Frequency: i.Frequency, PaymentMonths: i.PaymentMonths, Income: true}
}

// Recurrence returns the firing rule of the expense.
func (e Expense) Recurrence() Recurrence {
	return Recurrence{
		Frequency:     e.Frequency,
		PaymentMonths: e.PaymentMonths,
		ActiveMonths:  e.ActiveMonths,
		StartDate:     e.StartDate,
		EndDate:       e.EndDate,
	}
}
