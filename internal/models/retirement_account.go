package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RetirementAccountType represents the tax wrapper of a retirement account.
type RetirementAccountType string

const (
	RetirementAccountK401           RetirementAccountType = "K401"
	RetirementAccountB403           RetirementAccountType = "B403"
	RetirementAccountRothIRA        RetirementAccountType = "ROTH_IRA"
	RetirementAccountTraditionalIRA RetirementAccountType = "TRADITIONAL_IRA"
)

// Valid reports whether t is a known retirement account type.
func (t RetirementAccountType) Valid() bool {
	switch t {
	case RetirementAccountK401, RetirementAccountB403, RetirementAccountRothIRA, RetirementAccountTraditionalIRA:
		return true
	}
	return false
}

// IsPreTax reports whether contributions to this account type are made from
// pre-tax income.
func (t RetirementAccountType) IsPreTax() bool {
	return t == RetirementAccountK401 || t == RetirementAccountB403 || t == RetirementAccountTraditionalIRA
}

const contributionKeyPrefix = "contributions_"

// Contributions maps a tax year to the amount contributed in that year.
type Contributions map[int]float64

// Clone returns an independent copy of c.
func (c Contributions) Clone() Contributions {
	out := make(Contributions, len(c))
	for year, amount := range c {
		out[year] = amount
	}
	return out
}

// ContributionKey returns the wire field name for a tracked year, e.g.
// "contributions_2026".
func ContributionKey(year int) string {
	return contributionKeyPrefix + strconv.Itoa(year)
}

// ParseContributionKey extracts the year from a "contributions_<year>" key.
func ParseContributionKey(key string) (int, bool) {
	rest, ok := strings.CutPrefix(key, contributionKeyPrefix)
	if !ok {
		return 0, false
	}
	year, err := strconv.Atoi(rest)
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}

// RetirementAccount represents a tax-advantaged wrapper. Assets reference it
// through Asset.RetirementAccountID.
//
// New accounts carry a temporary client-generated ID until the first save
// assigns a permanent one.
type RetirementAccount struct {
	ID            string                `gorm:"primaryKey" json:"id"`
	OwnerID       string                `gorm:"not null;index" json:"-"`
	Position      int                   `gorm:"not null;default:0" json:"-"`
	Name          string                `gorm:"not null;default:''" json:"name"`
	AccountType   RetirementAccountType `gorm:"not null" json:"account_type"`
	Contributions Contributions         `gorm:"serializer:json" json:"-"`
}

// Validate checks the field constraints that do not depend on other records.
func (r RetirementAccount) Validate() error {
	if r.ID == "" {
		return errors.New("retirement account id is required")
	}
	if !r.AccountType.Valid() {
		return errors.New("account_type must be one of K401, B403, ROTH_IRA, TRADITIONAL_IRA")
	}
	return nil
}

// Fields returns the account's wire representation, with one
// "contributions_<year>" entry per tracked year.
func (r RetirementAccount) Fields() map[string]any {
	out := map[string]any{
		"id":           r.ID,
		"name":         r.Name,
		"account_type": r.AccountType,
	}
	for year, amount := range r.Contributions {
		out[ContributionKey(year)] = amount
	}
	return out
}

// MarshalJSON flattens Contributions into "contributions_<year>" fields.
func (r RetirementAccount) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

// UnmarshalJSON accepts any number of "contributions_<year>" fields.
func (r *RetirementAccount) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := RetirementAccount{Contributions: Contributions{}}
	for key, value := range raw {
		var err error
		switch key {
		case "id":
			err = json.Unmarshal(value, &out.ID)
		case "name":
			err = json.Unmarshal(value, &out.Name)
		case "account_type":
			err = json.Unmarshal(value, &out.AccountType)
		default:
			year, ok := ParseContributionKey(key)
			if !ok {
				continue
			}
			var amount float64
			if err = json.Unmarshal(value, &amount); err == nil {
				out.Contributions[year] = amount
			}
		}
		if err != nil {
			return fmt.Errorf("retirement account field %q: %w", key, err)
		}
	}

	out.OwnerID, out.Position = r.OwnerID, r.Position
	*r = out
	return nil
}

// AccountID returns the account identifier assets link to.
func (r RetirementAccount) AccountID() string {
	return r.ID
}
