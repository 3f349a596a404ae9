package models

// Records is the full editable record set of one owner. It is the unit of
// fetch and of full-replace save.
type Records struct {
	Assets             []Asset             `json:"assets"`
	Incomes            []Income            `json:"incomes"`
	Debts              []Debt              `json:"debts"`
	RetirementAccounts []RetirementAccount `json:"retirement_accounts"`
}

// Normalize replaces nil collections with empty ones so they encode as [].
func (r *Records) Normalize() {
	if r.Assets == nil {
		r.Assets = []Asset{}
	}
	if r.Incomes == nil {
		r.Incomes = []Income{}
	}
	if r.Debts == nil {
		r.Debts = []Debt{}
	}
	if r.RetirementAccounts == nil {
		r.RetirementAccounts = []RetirementAccount{}
	}
}

// Clone returns a deep copy that shares no pointers or maps with r.
func (r Records) Clone() Records {
	out := Records{
		Assets:             make([]Asset, len(r.Assets)),
		Incomes:            append([]Income{}, r.Incomes...),
		Debts:              append([]Debt{}, r.Debts...),
		RetirementAccounts: make([]RetirementAccount, len(r.RetirementAccounts)),
	}
	for i, a := range r.Assets {
		if a.CurrentPrice != nil {
			price := *a.CurrentPrice
			a.CurrentPrice = &price
		}
		if a.RetirementAccountID != nil {
			id := *a.RetirementAccountID
			a.RetirementAccountID = &id
		}
		out.Assets[i] = a
	}
	for i, acct := range r.RetirementAccounts {
		acct.Contributions = acct.Contributions.Clone()
		out.RetirementAccounts[i] = acct
	}
	return out
}
