package portfolio

import (
	"math"
	"testing"

	"pfa/internal/models"
)

func ptr(f float64) *float64 { return &f }

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected %s %v, got %v", name, want, got)
	}
}

func TestMarketValue(t *testing.T) {
	tests := []struct {
		name  string
		asset models.Asset
		want  float64
	}{
		{"uses_current_price", models.Asset{AssetType: models.AssetTypeStock, Shares: 10, CostPerShare: 400, CurrentPrice: ptr(450)}, 4500},
		{"falls_back_to_cost_per_share", models.Asset{AssetType: models.AssetTypeStock, Shares: 10, CostPerShare: 400}, 4000},
		{"zero_price_falls_back", models.Asset{AssetType: models.AssetTypeBond, Shares: 5, CostPerShare: 100, CurrentPrice: ptr(0)}, 500},
		{"negative_price_falls_back", models.Asset{AssetType: models.AssetTypeBond, Shares: 5, CostPerShare: 100, CurrentPrice: ptr(-3)}, 500},
		{"no_price_no_cost", models.Asset{AssetType: models.AssetTypeStock, Shares: 10}, 0},
		{"zero_shares", models.Asset{AssetType: models.AssetTypeStock, CostPerShare: 400, CurrentPrice: ptr(450)}, 0},
		{"cash_uses_shares", models.Asset{AssetType: models.AssetTypeCash, Shares: 5000, CostPerShare: 2, CurrentPrice: ptr(3)}, 5000},
		{"housing_uses_shares", models.Asset{AssetType: models.AssetTypeHousing, Shares: 750000}, 750000},
		{"hysa_uses_shares", models.Asset{AssetType: models.AssetTypeHighYieldSavings, Shares: 1234.5}, 1234.5},
		{"nan_shares_is_zero", models.Asset{AssetType: models.AssetTypeStock, Shares: math.NaN(), CostPerShare: 10}, 0},
		{"zero_value", models.Asset{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approx(t, "market value", MarketValue(tt.asset), tt.want)
		})
	}
}

func TestGainLoss(t *testing.T) {
	t.Run("positive_gain", func(t *testing.T) {
		a := models.Asset{AssetType: models.AssetTypeStock, Shares: 10, CostPerShare: 400, CostBasis: 4000, CurrentPrice: ptr(450)}
		approx(t, "gain loss", GainLoss(a), 500)
		approx(t, "gain loss percent", GainLossPercent(a), 12.5)
	})

	t.Run("zero_basis_reports_zero_percent", func(t *testing.T) {
		a := models.Asset{AssetType: models.AssetTypeStock, Shares: 10, CurrentPrice: ptr(450)}
		approx(t, "gain loss", GainLoss(a), 4500)
		got := GainLossPercent(a)
		if got != 0 || math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("expected 0 percent, got %v", got)
		}
	})

	t.Run("imported_basis_is_authoritative", func(t *testing.T) {
		a := models.Asset{AssetType: models.AssetTypeStock, Shares: 10, CostPerShare: 400, CostBasis: 3000, CurrentPrice: ptr(450)}
		approx(t, "gain loss", GainLoss(a), 1500)
	})

	t.Run("cash_like_reports_none", func(t *testing.T) {
		for _, typ := range []models.AssetType{
			models.AssetTypeCash, models.AssetTypeSavings, models.AssetTypeChecking,
			models.AssetTypeHighYieldSavings, models.AssetTypeHousing,
		} {
			if ReportsGainLoss(models.Asset{AssetType: typ}) {
				t.Errorf("expected no gain/loss for %s", typ)
			}
		}
		if !ReportsGainLoss(models.Asset{AssetType: models.AssetTypeBond}) {
			t.Error("expected gain/loss for BOND")
		}
	})
}

func TestRemainingBalance(t *testing.T) {
	approx(t, "remaining", RemainingBalance(models.Debt{InitialAmount: 20000, AmountPaid: 5000}), 15000)
	approx(t, "remaining", RemainingBalance(models.Debt{InitialAmount: 10000, AmountPaid: 12000}), 0)
	approx(t, "remaining", RemainingBalance(models.Debt{}), 0)
}

func TestAnnualIncome(t *testing.T) {
	t.Run("salary_uses_yearly", func(t *testing.T) {
		i := models.Income{IncomeType: models.IncomeTypeSalary, MonthlyIncome: 1, YearlyIncome: 60000, HourlyWage: 99, HoursWorked: 99}
		approx(t, "annual", AnnualIncome(i), 60000)
	})

	t.Run("hourly_annualized_by_52_weeks", func(t *testing.T) {
		i := models.Income{IncomeType: models.IncomeTypeHourly, HourlyWage: 25, HoursWorked: 40, YearlyIncome: 1}
		approx(t, "annual", AnnualIncome(i), 52000)
	})

	t.Run("unknown_type_is_zero", func(t *testing.T) {
		approx(t, "annual", AnnualIncome(models.Income{YearlyIncome: 10}), 0)
	})

	t.Run("salary_pair", func(t *testing.T) {
		approx(t, "yearly", YearlyFromMonthly(5000), 60000)
		approx(t, "monthly", MonthlyFromYearly(72000), 6000)
	})
}
