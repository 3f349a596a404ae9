// Package portfolio turns a user's manual records into derived figures:
// per-asset valuation, retirement-account association, and the aggregate
// snapshot. Every function here is total: it accepts any input, including
// empty or zero values, and never returns an error.
package portfolio

import (
	"math"

	"pfa/internal/models"
)

const (
	// WeeksPerYear converts weekly hours into an annual figure.
	WeeksPerYear = 52
	// MonthsPerYear relates monthly and yearly salary figures.
	MonthsPerYear = 12
)

// num maps NaN and infinities to zero.
func num(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// EffectivePrice is the per-share price used for valuation: the current price
// when positive, otherwise the cost per share for a non-empty position.
func EffectivePrice(a models.Asset) float64 {
	if a.CurrentPrice != nil && num(*a.CurrentPrice) > 0 {
		return *a.CurrentPrice
	}
	if num(a.Shares) > 0 {
		return num(a.CostPerShare)
	}
	return 0
}

// MarketValue returns the current value of a holding. Cash-like assets hold
// their dollar balance in Shares.
func MarketValue(a models.Asset) float64 {
	if a.AssetType.IsCashLike() {
		return num(a.Shares)
	}
	return num(a.Shares) * EffectivePrice(a)
}

// CostBasis returns shares × cost per share.
func CostBasis(shares, costPerShare float64) float64 {
	return num(shares) * num(costPerShare)
}

// ReportsGainLoss reports whether gain/loss is meaningful for the asset.
// Cash-like assets have basis equal to value by convention.
func ReportsGainLoss(a models.Asset) bool {
	return !a.AssetType.IsCashLike()
}

// GainLoss returns market value minus the stored cost basis.
func GainLoss(a models.Asset) float64 {
	return MarketValue(a) - num(a.CostBasis)
}

// GainLossPercent returns GainLoss as a percentage of cost basis, or 0 when
// the basis is not positive.
func GainLossPercent(a models.Asset) float64 {
	basis := num(a.CostBasis)
	if basis <= 0 {
		return 0
	}
	return GainLoss(a) / basis * 100
}

// RemainingBalance returns what is still owed on a debt, never negative.
func RemainingBalance(d models.Debt) float64 {
	return math.Max(0, num(d.InitialAmount)-num(d.AmountPaid))
}

// AnnualIncome returns the yearly amount of one income stream. HOURLY streams
// are annualized from weekly hours at aggregation time only.
func AnnualIncome(i models.Income) float64 {
	switch i.IncomeType {
	case models.IncomeTypeSalary:
		return num(i.YearlyIncome)
	case models.IncomeTypeHourly:
		return num(i.HourlyWage) * num(i.HoursWorked) * WeeksPerYear
	}
	return 0
}

// YearlyFromMonthly derives yearly_income after a monthly_income edit.
func YearlyFromMonthly(monthly float64) float64 { return num(monthly) * MonthsPerYear }

// MonthlyFromYearly derives monthly_income after a yearly_income edit.
func MonthlyFromYearly(yearly float64) float64 { return num(yearly) / MonthsPerYear }
