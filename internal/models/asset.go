package models

import "errors"

// AssetType represents the kind of holding.
type AssetType string

const (
	AssetTypeStock            AssetType = "STOCK"
	AssetTypeBond             AssetType = "BOND"
	AssetTypeCash             AssetType = "CASH"
	AssetTypeHousing          AssetType = "HOUSING"
	AssetTypeSavings          AssetType = "SAVINGS"
	AssetTypeChecking         AssetType = "CHECKING"
	AssetTypeHighYieldSavings AssetType = "HIGH_YIELD_SAVINGS"
)

// AssetTypes lists every supported asset type in display order.
var AssetTypes = []AssetType{
	AssetTypeStock,
	AssetTypeBond,
	AssetTypeCash,
	AssetTypeHousing,
	AssetTypeSavings,
	AssetTypeChecking,
	AssetTypeHighYieldSavings,
}

// Valid reports whether t is a known asset type.
func (t AssetType) Valid() bool {
	for _, known := range AssetTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsCashLike reports whether Shares holds a dollar balance rather than a share
// count for this type.
func (t AssetType) IsCashLike() bool {
	switch t {
	case AssetTypeCash, AssetTypeSavings, AssetTypeChecking, AssetTypeHighYieldSavings, AssetTypeHousing:
		return true
	}
	return false
}

// Asset represents a manually tracked holding.
//
// CostBasis is stored rather than derived: editing Shares or CostPerShare
// recomputes it, but an imported value is kept as-is.
type Asset struct {
	Row
	Ticker              string    `gorm:"not null;default:''" json:"ticker"`
	AssetType           AssetType `gorm:"not null" json:"asset_type"`
	Shares              float64   `gorm:"not null;default:0" json:"shares"`
	CostPerShare        float64   `gorm:"not null;default:0" json:"cost_per_share"`
	CostBasis           float64   `gorm:"not null;default:0" json:"cost_basis"`
	CurrentPrice        *float64  `json:"current_price,omitempty"`
	RetirementAccountID *string   `gorm:"index" json:"retirement_account_id"`
}

// LinkedAccountID returns the owning retirement account ID, or "" for a
// taxable asset.
func (a Asset) LinkedAccountID() string {
	if a.RetirementAccountID == nil {
		return ""
	}
	return *a.RetirementAccountID
}

// Validate checks the field constraints that do not depend on other records.
func (a Asset) Validate() error {
	if !a.AssetType.Valid() {
		return errors.New("asset_type must be one of STOCK, BOND, CASH, HOUSING, SAVINGS, CHECKING, HIGH_YIELD_SAVINGS")
	}
	if a.Ticker == "" && !a.AssetType.IsCashLike() {
		return errors.New("ticker is required for " + string(a.AssetType) + " assets")
	}
	return nil
}
