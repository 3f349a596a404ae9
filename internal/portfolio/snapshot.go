package portfolio

import (
	"encoding/json"

	"pfa/internal/models"
)

// AssetView is an asset with its display derivations. Gain/loss fields are
// omitted for cash-like assets.
type AssetView struct {
	models.Asset
	MarketValue     float64  `json:"market_value"`
	GainLoss        *float64 `json:"gain_loss,omitempty"`
	GainLossPercent *float64 `json:"gain_loss_percent,omitempty"`
}

// NewAssetView derives the display fields for a.
func NewAssetView(a models.Asset) AssetView {
	view := AssetView{Asset: a, MarketValue: MarketValue(a)}
	if ReportsGainLoss(a) {
		gl, pct := GainLoss(a), GainLossPercent(a)
		view.GainLoss, view.GainLossPercent = &gl, &pct
	}
	return view
}

// DebtView is a debt with its remaining balance.
type DebtView struct {
	models.Debt
	RemainingBalance float64 `json:"remaining_balance"`
}

// AccountView is a retirement account with the market value of its assets.
type AccountView struct {
	models.RetirementAccount
	MarketValue float64 `json:"market_value"`
}

// MarshalJSON adds market_value to the account's flattened fields.
func (v AccountView) MarshalJSON() ([]byte, error) {
	fields := v.RetirementAccount.Fields()
	fields["market_value"] = v.MarketValue
	return json.Marshal(fields)
}

// UnmarshalJSON reads the account fields and market_value.
func (v *AccountView) UnmarshalJSON(data []byte) error {
	if err := v.RetirementAccount.UnmarshalJSON(data); err != nil {
		return err
	}
	var derived struct {
		MarketValue float64 `json:"market_value"`
	}
	if err := json.Unmarshal(data, &derived); err != nil {
		return err
	}
	v.MarketValue = derived.MarketValue
	return nil
}

// Snapshot is the full set of derived portfolio figures. It is recomputed on
// every read and never stored.
type Snapshot struct {
	RealTimeNetWorth      float64 `json:"real_time_net_worth"`
	EstimatedTaxLiability float64 `json:"estimated_tax_liability"`
	EstimatedFederalTax   float64 `json:"estimated_federal_tax"`
	EstimatedStateTax     float64 `json:"estimated_state_tax"`
	EstimatedFICATax      float64 `json:"estimated_fica_tax"`

	TotalAssetValue      float64         `json:"total_asset_value"`
	TaxableAssetValue    float64         `json:"taxable_asset_value"`
	RetirementAssetValue float64         `json:"retirement_asset_value"`
	TotalDebtValue       float64         `json:"total_debt_value"`
	TotalAnnualIncome    float64         `json:"total_annual_income"`
	TotalMonthlyIncome   float64         `json:"total_monthly_income"`
	IncomeByYear         map[int]float64 `json:"income_by_year"`

	FilingYear   int                 `json:"filing_year"`
	FilingStatus models.FilingStatus `json:"filing_status"`
	State        string              `json:"state"`

	Assets             []AssetView     `json:"assets"`
	Incomes            []models.Income `json:"incomes"`
	Debts              []DebtView      `json:"debts"`
	RetirementAccounts []AccountView   `json:"retirement_accounts"`
}

// Records strips the derived fields and returns the underlying record set.
func (s Snapshot) Records() models.Records {
	out := models.Records{
		Assets:             make([]models.Asset, 0, len(s.Assets)),
		Incomes:            append([]models.Income{}, s.Incomes...),
		Debts:              make([]models.Debt, 0, len(s.Debts)),
		RetirementAccounts: make([]models.RetirementAccount, 0, len(s.RetirementAccounts)),
	}
	for _, a := range s.Assets {
		out.Assets = append(out.Assets, a.Asset)
	}
	for _, d := range s.Debts {
		out.Debts = append(out.Debts, d.Debt)
	}
	for _, acct := range s.RetirementAccounts {
		out.RetirementAccounts = append(out.RetirementAccounts, acct.RetirementAccount)
	}
	return out
}

// TaxProfile returns the filing context the snapshot was computed under.
func (s Snapshot) TaxProfile() models.TaxProfile {
	return models.TaxProfile{FilingStatus: s.FilingStatus, State: s.State}
}
