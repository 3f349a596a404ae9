package portfolio

import (
	"sort"

	"pfa/internal/models"
)

// TotalAssetValue sums the market value of every asset.
func TotalAssetValue(assets []models.Asset) float64 {
	var total float64
	for _, a := range assets {
		total += MarketValue(a)
	}
	return total
}

// TotalDebtValue sums remaining balances, not initial amounts.
func TotalDebtValue(debts []models.Debt) float64 {
	var total float64
	for _, d := range debts {
		total += RemainingBalance(d)
	}
	return total
}

// NetWorth is total asset value minus total remaining debt.
func NetWorth(assets []models.Asset, debts []models.Debt) float64 {
	return TotalAssetValue(assets) - TotalDebtValue(debts)
}

// TotalAnnualIncome sums SALARY yearly income and annualized HOURLY income
// for incomes recorded against year.
func TotalAnnualIncome(incomes []models.Income, year int) float64 {
	var total float64
	for _, i := range incomes {
		if i.Year == year {
			total += AnnualIncome(i)
		}
	}
	return total
}

// IncomeByYear returns annual income totals keyed by tax year.
func IncomeByYear(incomes []models.Income) map[int]float64 {
	out := make(map[int]float64)
	for _, i := range incomes {
		out[i.Year] += AnnualIncome(i)
	}
	return out
}

// Years returns the distinct income years in ascending order.
func Years(incomes []models.Income) []int {
	byYear := IncomeByYear(incomes)
	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Contributions returns the retirement contributions recorded for year.
func Contributions(accounts []models.RetirementAccount, year int) []Contribution {
	var out []Contribution
	for _, acct := range accounts {
		if amount := num(acct.Contributions[year]); amount != 0 {
			out = append(out, Contribution{AccountType: acct.AccountType, Amount: amount})
		}
	}
	return out
}

// Engine assembles portfolio snapshots. It owns the filing year and
// delegates bracket math to a TaxEstimator.
type Engine struct {
	tax        TaxEstimator
	filingYear int
}

// NewEngine creates an Engine. A nil estimator reports zero tax.
func NewEngine(tax TaxEstimator, filingYear int) *Engine {
	return &Engine{tax: tax, filingYear: filingYear}
}

// FilingYear returns the tax year used for income and contributions.
func (e *Engine) FilingYear() int {
	return e.filingYear
}

// TaxInput assembles the estimator input for the filing year.
func (e *Engine) TaxInput(records models.Records, profile models.TaxProfile) TaxInput {
	return TaxInput{
		Year:          e.filingYear,
		GrossIncome:   TotalAnnualIncome(records.Incomes, e.filingYear),
		FilingStatus:  profile.FilingStatus,
		State:         profile.State,
		Contributions: Contributions(records.RetirementAccounts, e.filingYear),
	}
}

// Snapshot computes every derived figure for records under profile.
func (e *Engine) Snapshot(records models.Records, profile models.TaxProfile) Snapshot {
	records.Normalize()

	var breakdown TaxBreakdown
	if e.tax != nil {
		breakdown = e.tax.Estimate(e.TaxInput(records, profile))
	}

	snap := Snapshot{
		EstimatedTaxLiability: breakdown.Total,
		EstimatedFederalTax:   breakdown.Federal,
		EstimatedStateTax:     breakdown.State,
		EstimatedFICATax:      breakdown.FICA,
		TotalDebtValue:        TotalDebtValue(records.Debts),
		TotalAnnualIncome:     TotalAnnualIncome(records.Incomes, e.filingYear),
		IncomeByYear:          IncomeByYear(records.Incomes),
		FilingYear:            e.filingYear,
		FilingStatus:          profile.FilingStatus,
		State:                 profile.State,
		Assets:                make([]AssetView, 0, len(records.Assets)),
		Incomes:               records.Incomes,
		Debts:                 make([]DebtView, 0, len(records.Debts)),
		RetirementAccounts:    make([]AccountView, 0, len(records.RetirementAccounts)),
	}
	snap.TotalMonthlyIncome = snap.TotalAnnualIncome / MonthsPerYear

	for _, a := range records.Assets {
		view := NewAssetView(a)
		snap.TotalAssetValue += view.MarketValue
		if a.LinkedAccountID() == "" {
			snap.TaxableAssetValue += view.MarketValue
		} else {
			snap.RetirementAssetValue += view.MarketValue
		}
		snap.Assets = append(snap.Assets, view)
	}
	for _, d := range records.Debts {
		snap.Debts = append(snap.Debts, DebtView{Debt: d, RemainingBalance: RemainingBalance(d)})
	}

	idx := NewIndex(records.Assets)
	for _, acct := range records.RetirementAccounts {
		view := AccountView{RetirementAccount: acct}
		for _, p := range idx.Positions(acct.ID) {
			view.MarketValue += MarketValue(records.Assets[p])
		}
		snap.RetirementAccounts = append(snap.RetirementAccounts, view)
	}

	snap.RealTimeNetWorth = snap.TotalAssetValue - snap.TotalDebtValue
	return snap
}
