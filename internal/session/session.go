// Package session implements the Edit Session: a working copy of every
// record that is edited in memory and reconciled with canonical storage only
// on an explicit save.
package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"pfa/internal/logger"
	"pfa/internal/models"
	"pfa/internal/portfolio"
	"pfa/internal/uuid"
)

// Store is the persistence collaborator. Save replaces the owner's records
// wholesale and returns the recomputed snapshot. Both calls must return an
// error rather than block forever.
type Store interface {
	Fetch(ctx context.Context) (portfolio.Snapshot, error)
	Save(ctx context.Context, records models.Records) (portfolio.Snapshot, error)
}

// Session is one interactive editing session. Edits and derived-field
// recomputation run synchronously under the session lock; Save releases the
// lock while the Store call is in flight and rejects edits until it returns.
type Session struct {
	store Store
	year  int

	mu         sync.Mutex
	filingYear int
	loaded    bool
	state     State
	canonical portfolio.Snapshot
	work      WorkingCopy
}

// New creates a session bound to store. filingYear is the default year for
// new incomes and contribution fields; zero or less adopts the filing year of
// each fetched or saved snapshot.
func New(store Store, filingYear int) *Session {
	return &Session{store: store, year: filingYear, filingYear: filingYear}
}

// Open fetches the canonical copy and resets the working copy to mirror it.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	if s.state == Saving {
		s.mu.Unlock()
		return ErrSaveInProgress
	}
	s.mu.Unlock()

	snap, err := s.store.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch portfolio: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(snap)
	return nil
}

func (s *Session) reset(snap portfolio.Snapshot) {
	if s.year <= 0 && snap.FilingYear > 0 {
		s.filingYear = snap.FilingYear
	}
	s.canonical = snap
	s.work = newWorkingCopy(snap.Records())
	s.loaded = true
	s.state = Clean
}

// Cancel discards every unsaved edit.
func (s *Session) Cancel() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	s.reset(s.canonical)
	return nil
}

// Save submits the whole working copy to the Store. On success the session
// is Clean and mirrors the returned snapshot; on failure it is Dirty and the
// working copy is exactly what the user had before saving.
func (s *Session) Save(ctx context.Context) (portfolio.Snapshot, error) {
	s.mu.Lock()
	if err := s.writable(); err != nil {
		s.mu.Unlock()
		return portfolio.Snapshot{}, err
	}
	records := s.work.Records(s.filingYear)
	s.state = Saving
	s.mu.Unlock()

	log := logger.Named("session")
	log.Debugw("Saving portfolio",
		"assets", len(records.Assets),
		"incomes", len(records.Incomes),
		"debts", len(records.Debts),
		"retirement_accounts", len(records.RetirementAccounts),
	)

	snap, err := s.store.Save(ctx, records)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = Dirty
		log.Debugw("Save failed", "error", err)
		return portfolio.Snapshot{}, err
	}
	s.reset(snap)
	log.Debugw("Save succeeded")
	return snap, nil
}

// State returns the current reconciliation state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// FilingYear returns the default year for new incomes.
func (s *Session) FilingYear() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filingYear
}

// Canonical returns the last fetched or saved snapshot.
func (s *Session) Canonical() portfolio.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canonical
}

// WorkingCopy returns a deep copy of the drafts.
func (s *Session) WorkingCopy() WorkingCopy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.work.clone()
}

// Records returns the working copy coerced as it would be saved.
func (s *Session) Records() models.Records {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.work.Records(s.filingYear)
}

// Preview computes a snapshot of the working copy without saving it.
func (s *Session) Preview(engine *portfolio.Engine) portfolio.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return engine.Snapshot(s.work.Records(s.filingYear), s.canonical.TaxProfile())
}

// AssetsForAccount returns the drafts linked to accountID with their
// positions in the full asset list.
func (s *Session) AssetsForAccount(accountID string) []portfolio.Indexed[AssetDraft] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return portfolio.AssetsForAccount(s.work.Assets, accountID)
}

// TaxableAssets returns the drafts with no account link.
func (s *Session) TaxableAssets() []portfolio.Indexed[AssetDraft] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return portfolio.TaxableAssets(s.work.Assets)
}

// IncomesForYear returns the income drafts whose year is year.
func (s *Session) IncomesForYear(y int) []portfolio.Indexed[IncomeDraft] {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []portfolio.Indexed[IncomeDraft]
	for i, d := range s.work.Incomes {
		if year(d.Year, s.filingYear) == y {
			out = append(out, portfolio.Indexed[IncomeDraft]{Index: i, Record: d})
		}
	}
	return out
}

// writable must be called with mu held.
func (s *Session) writable() error {
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.state == Saving {
		return ErrSaveInProgress
	}
	return nil
}

// mutate runs fn against the working copy under the lock and marks the
// session Dirty if fn succeeds.
func (s *Session) mutate(fn func(w *WorkingCopy) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.writable(); err != nil {
		return err
	}
	if err := fn(&s.work); err != nil {
		return err
	}
	s.state = Dirty
	return nil
}

func checkIndex(kind string, i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %s %d of %d", ErrIndexOutOfRange, kind, i, n)
	}
	return nil
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}

func hasAccount(w *WorkingCopy, id string) bool {
	for _, acct := range w.Accounts {
		if acct.ID == id {
			return true
		}
	}
	return false
}

// AddAsset appends a zero-valued STOCK asset, linked to accountID when it is
// not empty, and returns its index.
func (s *Session) AddAsset(accountID string) (int, error) {
	var idx int
	err := s.mutate(func(w *WorkingCopy) error {
		if accountID != "" && !hasAccount(w, accountID) {
			return fmt.Errorf("%w: %s", ErrUnknownAccount, accountID)
		}
		w.Assets = append(w.Assets, AssetDraft{
			AssetType:           models.AssetTypeStock,
			Shares:              "0",
			CostPerShare:        "0",
			CostBasis:           "0",
			RetirementAccountID: accountID,
		})
		idx = len(w.Assets) - 1
		return nil
	})
	return idx, err
}

// RemoveAsset deletes the asset at index i.
func (s *Session) RemoveAsset(i int) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("asset", i, len(w.Assets)); err != nil {
			return err
		}
		w.Assets = removeAt(w.Assets, i)
		return nil
	})
}

// EditAsset sets one field of the asset at index i. Editing shares or
// cost_per_share recomputes cost_basis from the two; editing cost_basis
// directly leaves both untouched.
func (s *Session) EditAsset(i int, field, value string) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("asset", i, len(w.Assets)); err != nil {
			return err
		}
		d := w.Assets[i]
		switch field {
		case "ticker":
			d.Ticker = strings.ToUpper(strings.TrimSpace(value))
		case "asset_type":
			t := models.AssetType(strings.ToUpper(value))
			if !t.Valid() {
				return fmt.Errorf("%w: asset_type %q", ErrInvalidEnum, value)
			}
			d.AssetType = t
		case "shares":
			d.Shares = value
			d.CostBasis = costBasis(d.Shares, d.CostPerShare)
		case "cost_per_share":
			d.CostPerShare = value
			d.CostBasis = costBasis(d.Shares, d.CostPerShare)
		case "cost_basis":
			d.CostBasis = value
		case "current_price":
			d.CurrentPrice = value
		case "retirement_account_id":
			if value != "" && !hasAccount(w, value) {
				return fmt.Errorf("%w: %s", ErrUnknownAccount, value)
			}
			d.RetirementAccountID = value
		default:
			return fmt.Errorf("%w: asset.%s", ErrUnknownField, field)
		}
		w.Assets[i] = d
		return nil
	})
}

// AddIncome appends a zero-valued SALARY income for year and returns its
// index. A non-positive year means the filing year.
func (s *Session) AddIncome(y int) (int, error) {
	var idx int
	err := s.mutate(func(w *WorkingCopy) error {
		if y <= 0 {
			y = s.filingYear
		}
		w.Incomes = append(w.Incomes, IncomeDraft{
			IncomeType:    models.IncomeTypeSalary,
			MonthlyIncome: "0",
			YearlyIncome:  "0",
			HourlyWage:    "0",
			HoursWorked:   "0",
			Year:          fmt.Sprint(y),
		})
		idx = len(w.Incomes) - 1
		return nil
	})
	return idx, err
}

// RemoveIncome deletes the income at index i.
func (s *Session) RemoveIncome(i int) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("income", i, len(w.Incomes)); err != nil {
			return err
		}
		w.Incomes = removeAt(w.Incomes, i)
		return nil
	})
}

// EditIncome sets one field of the income at index i. For SALARY incomes,
// editing monthly_income recomputes yearly_income and vice versa; the field
// just edited always wins.
func (s *Session) EditIncome(i int, field, value string) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("income", i, len(w.Incomes)); err != nil {
			return err
		}
		d := w.Incomes[i]
		salary := d.IncomeType == models.IncomeTypeSalary
		switch field {
		case "income_type":
			t := models.IncomeType(strings.ToUpper(value))
			if !t.Valid() {
				return fmt.Errorf("%w: income_type %q", ErrInvalidEnum, value)
			}
			d.IncomeType = t
		case "monthly_income":
			d.MonthlyIncome = value
			if salary {
				d.YearlyIncome = yearlyFromMonthly(value)
			}
		case "yearly_income":
			d.YearlyIncome = value
			if salary {
				d.MonthlyIncome = monthlyFromYearly(value)
			}
		case "hourly_wage":
			d.HourlyWage = value
		case "hours_worked":
			d.HoursWorked = value
		case "year":
			d.Year = value
		default:
			return fmt.Errorf("%w: income.%s", ErrUnknownField, field)
		}
		w.Incomes[i] = d
		return nil
	})
}

// AddDebt appends a zero-valued debt and returns its index.
func (s *Session) AddDebt() (int, error) {
	var idx int
	err := s.mutate(func(w *WorkingCopy) error {
		w.Debts = append(w.Debts, DebtDraft{
			InitialAmount:  "0",
			AmountPaid:     "0",
			MonthlyPayment: "0",
			InterestRate:   "0",
		})
		idx = len(w.Debts) - 1
		return nil
	})
	return idx, err
}

// RemoveDebt deletes the debt at index i.
func (s *Session) RemoveDebt(i int) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("debt", i, len(w.Debts)); err != nil {
			return err
		}
		w.Debts = removeAt(w.Debts, i)
		return nil
	})
}

// EditDebt sets one field of the debt at index i.
func (s *Session) EditDebt(i int, field, value string) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("debt", i, len(w.Debts)); err != nil {
			return err
		}
		d := w.Debts[i]
		switch field {
		case "name":
			d.Name = value
		case "initial_amount":
			d.InitialAmount = value
		case "amount_paid":
			d.AmountPaid = value
		case "monthly_payment":
			d.MonthlyPayment = value
		case "interest_rate":
			d.InterestRate = value
		default:
			return fmt.Errorf("%w: debt.%s", ErrUnknownField, field)
		}
		w.Debts[i] = d
		return nil
	})
}

// AddAccount appends a retirement account with a temporary ID and
// zero contributions for the filing year and the year before it. It returns
// the new account's index.
func (s *Session) AddAccount(accountType models.RetirementAccountType) (int, error) {
	if accountType == "" {
		accountType = models.RetirementAccountK401
	}
	if !accountType.Valid() {
		return 0, fmt.Errorf("%w: account_type %q", ErrInvalidEnum, accountType)
	}
	var idx int
	err := s.mutate(func(w *WorkingCopy) error {
		w.Accounts = append(w.Accounts, AccountDraft{
			ID:          uuid.NewTemporary(),
			AccountType: accountType,
			Contributions: map[int]string{
				s.filingYear - 1: "0",
				s.filingYear:     "0",
			},
		})
		idx = len(w.Accounts) - 1
		return nil
	})
	return idx, err
}

// RemoveAccount deletes the account at index i together with every asset
// linked to it. Both lists are replaced in one step.
func (s *Session) RemoveAccount(i int) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("account", i, len(w.Accounts)); err != nil {
			return err
		}
		w.Assets, w.Accounts = portfolio.RemoveAccount(w.Assets, w.Accounts, w.Accounts[i].ID)
		return nil
	})
}

// EditAccount sets one field of the account at index i. Contribution fields
// are named contributions_<year>.
func (s *Session) EditAccount(i int, field, value string) error {
	return s.mutate(func(w *WorkingCopy) error {
		if err := checkIndex("account", i, len(w.Accounts)); err != nil {
			return err
		}
		d := w.Accounts[i].clone()
		switch field {
		case "name":
			d.Name = value
		case "account_type":
			t := models.RetirementAccountType(strings.ToUpper(value))
			if !t.Valid() {
				return fmt.Errorf("%w: account_type %q", ErrInvalidEnum, value)
			}
			d.AccountType = t
		default:
			y, ok := models.ParseContributionKey(field)
			if !ok {
				return fmt.Errorf("%w: account.%s", ErrUnknownField, field)
			}
			d.Contributions[y] = value
		}
		w.Accounts[i] = d
		return nil
	})
}
