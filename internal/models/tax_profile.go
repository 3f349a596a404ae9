package models

import "time"

// FilingStatus represents a federal filing status.
type FilingStatus string

const (
	FilingStatusSingle                  FilingStatus = "SINGLE"
	FilingStatusMarriedFilingJointly    FilingStatus = "MARRIED_FILING_JOINTLY"
	FilingStatusMarriedFilingSeparately FilingStatus = "MARRIED_FILING_SEPARATELY"
	FilingStatusHeadOfHousehold         FilingStatus = "HEAD_OF_HOUSEHOLD"
	FilingStatusQualifyingWidow         FilingStatus = "QUALIFYING_WIDOW"
)

// Valid reports whether s is a known filing status.
func (s FilingStatus) Valid() bool {
	switch s {
	case FilingStatusSingle, FilingStatusMarriedFilingJointly, FilingStatusMarriedFilingSeparately,
		FilingStatusHeadOfHousehold, FilingStatusQualifyingWidow:
		return true
	}
	return false
}

// usStates holds USPS codes for the states and DC.
var usStates = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true, "CT": true,
	"DE": true, "DC": true, "FL": true, "GA": true, "HI": true, "ID": true, "IL": true,
	"IN": true, "IA": true, "KS": true, "KY": true, "LA": true, "ME": true, "MD": true,
	"MA": true, "MI": true, "MN": true, "MS": true, "MO": true, "MT": true, "NE": true,
	"NV": true, "NH": true, "NJ": true, "NM": true, "NY": true, "NC": true, "ND": true,
	"OH": true, "OK": true, "OR": true, "PA": true, "RI": true, "SC": true, "SD": true,
	"TN": true, "TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true,
}

// IsUSState reports whether code is a USPS state (or DC) code.
func IsUSState(code string) bool {
	return usStates[code]
}

// TaxProfile is the owner's filing context. It is input to tax estimation
// only and is never derived from other records.
type TaxProfile struct {
	OwnerID      string       `gorm:"primaryKey" json:"-"`
	FilingStatus FilingStatus `gorm:"not null;default:'SINGLE'" json:"filing_status"`
	State        string       `gorm:"not null;default:'CA'" json:"state"`
	UpdatedAt    time.Time    `json:"-"`
}

// DefaultTaxProfile is used for owners that never stored a profile.
func DefaultTaxProfile() TaxProfile {
	return TaxProfile{FilingStatus: FilingStatusSingle, State: "CA"}
}
