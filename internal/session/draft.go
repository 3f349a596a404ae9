package session

import (
	"strconv"

	"pfa/internal/models"
)

// AssetDraft is an asset as the user is editing it. Numeric fields hold the
// text the user typed and are only coerced on save.
type AssetDraft struct {
	Ticker              string
	AssetType           models.AssetType
	Shares              string
	CostPerShare        string
	CostBasis           string
	CurrentPrice        string
	RetirementAccountID string
}

// LinkedAccountID implements portfolio.Linked.
func (d AssetDraft) LinkedAccountID() string { return d.RetirementAccountID }

// IncomeDraft is an income stream being edited.
type IncomeDraft struct {
	IncomeType    models.IncomeType
	MonthlyIncome string
	YearlyIncome  string
	HourlyWage    string
	HoursWorked   string
	Year          string
}

// DebtDraft is a debt being edited.
type DebtDraft struct {
	Name           string
	InitialAmount  string
	AmountPaid     string
	MonthlyPayment string
	InterestRate   string
}

// AccountDraft is a retirement account being edited. Contributions are keyed
// by tax year.
type AccountDraft struct {
	ID            string
	Name          string
	AccountType   models.RetirementAccountType
	Contributions map[int]string
}

// AccountID implements portfolio.Account.
func (d AccountDraft) AccountID() string { return d.ID }

func (d AccountDraft) clone() AccountDraft {
	c := make(map[int]string, len(d.Contributions))
	for y, v := range d.Contributions {
		c[y] = v
	}
	d.Contributions = c
	return d
}

// WorkingCopy holds every draft of one session. It is the only state edits
// touch.
type WorkingCopy struct {
	Assets   []AssetDraft
	Incomes  []IncomeDraft
	Debts    []DebtDraft
	Accounts []AccountDraft
}

func (w WorkingCopy) clone() WorkingCopy {
	out := WorkingCopy{
		Assets:   append([]AssetDraft{}, w.Assets...),
		Incomes:  append([]IncomeDraft{}, w.Incomes...),
		Debts:    append([]DebtDraft{}, w.Debts...),
		Accounts: make([]AccountDraft, len(w.Accounts)),
	}
	for i, a := range w.Accounts {
		out.Accounts[i] = a.clone()
	}
	return out
}

// newWorkingCopy renders stored records as editable drafts.
func newWorkingCopy(r models.Records) WorkingCopy {
	w := WorkingCopy{
		Assets:   make([]AssetDraft, 0, len(r.Assets)),
		Incomes:  make([]IncomeDraft, 0, len(r.Incomes)),
		Debts:    make([]DebtDraft, 0, len(r.Debts)),
		Accounts: make([]AccountDraft, 0, len(r.RetirementAccounts)),
	}
	for _, a := range r.Assets {
		w.Assets = append(w.Assets, AssetDraft{
			Ticker:              a.Ticker,
			AssetType:           a.AssetType,
			Shares:              format(a.Shares),
			CostPerShare:        format(a.CostPerShare),
			CostBasis:           format(a.CostBasis),
			CurrentPrice:        formatOptional(a.CurrentPrice),
			RetirementAccountID: a.LinkedAccountID(),
		})
	}
	for _, i := range r.Incomes {
		w.Incomes = append(w.Incomes, IncomeDraft{
			IncomeType:    i.IncomeType,
			MonthlyIncome: format(i.MonthlyIncome),
			YearlyIncome:  format(i.YearlyIncome),
			HourlyWage:    format(i.HourlyWage),
			HoursWorked:   format(i.HoursWorked),
			Year:          strconv.Itoa(i.Year),
		})
	}
	for _, d := range r.Debts {
		w.Debts = append(w.Debts, DebtDraft{
			Name:           d.Name,
			InitialAmount:  format(d.InitialAmount),
			AmountPaid:     format(d.AmountPaid),
			MonthlyPayment: format(d.MonthlyPayment),
			InterestRate:   format(d.InterestRate),
		})
	}
	for _, acct := range r.RetirementAccounts {
		c := make(map[int]string, len(acct.Contributions))
		for y, v := range acct.Contributions {
			c[y] = format(v)
		}
		w.Accounts = append(w.Accounts, AccountDraft{
			ID:            acct.ID,
			Name:          acct.Name,
			AccountType:   acct.AccountType,
			Contributions: c,
		})
	}
	return w
}

// Records coerces every draft to stored form. Non-numeric text reads as zero,
// and negative shares or amount paid are clamped to zero. A blank year falls
// back to filingYear.
func (w WorkingCopy) Records(filingYear int) models.Records {
	out := models.Records{
		Assets:             make([]models.Asset, 0, len(w.Assets)),
		Incomes:            make([]models.Income, 0, len(w.Incomes)),
		Debts:              make([]models.Debt, 0, len(w.Debts)),
		RetirementAccounts: make([]models.RetirementAccount, 0, len(w.Accounts)),
	}
	for _, d := range w.Assets {
		a := models.Asset{
			Ticker:       d.Ticker,
			AssetType:    d.AssetType,
			Shares:       quantity(d.Shares),
			CostPerShare: number(d.CostPerShare),
			CostBasis:    number(d.CostBasis),
			CurrentPrice: optionalNumber(d.CurrentPrice),
		}
		if d.RetirementAccountID != "" {
			id := d.RetirementAccountID
			a.RetirementAccountID = &id
		}
		out.Assets = append(out.Assets, a)
	}
	for _, d := range w.Incomes {
		out.Incomes = append(out.Incomes, models.Income{
			IncomeType:    d.IncomeType,
			MonthlyIncome: number(d.MonthlyIncome),
			YearlyIncome:  number(d.YearlyIncome),
			HourlyWage:    number(d.HourlyWage),
			HoursWorked:   number(d.HoursWorked),
			Year:          year(d.Year, filingYear),
		})
	}
	for _, d := range w.Debts {
		out.Debts = append(out.Debts, models.Debt{
			Name:           d.Name,
			InitialAmount:  number(d.InitialAmount),
			AmountPaid:     quantity(d.AmountPaid),
			MonthlyPayment: number(d.MonthlyPayment),
			InterestRate:   number(d.InterestRate),
		})
	}
	for _, d := range w.Accounts {
		c := make(models.Contributions, len(d.Contributions))
		for y, v := range d.Contributions {
			c[y] = number(v)
		}
		out.RetirementAccounts = append(out.RetirementAccounts, models.RetirementAccount{
			ID:            d.ID,
			Name:          d.Name,
			AccountType:   d.AccountType,
			Contributions: c,
		})
	}
	return out
}
