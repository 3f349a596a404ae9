package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"pfa/internal/models"
	"pfa/internal/portfolio"
	"pfa/internal/uuid"
)

var engine = portfolio.NewEngine(nil, 2026)

// fakeStore keeps records in memory and assigns permanent account IDs the
// way the server does.
type fakeStore struct {
	records models.Records
	saved   []models.Records
	saveErr error
	block   chan struct{}
	entered chan struct{}
}

func (f *fakeStore) Fetch(ctx context.Context) (portfolio.Snapshot, error) {
	return engine.Snapshot(f.records.Clone(), models.DefaultTaxProfile()), nil
}

func (f *fakeStore) Save(ctx context.Context, records models.Records) (portfolio.Snapshot, error) {
	if f.entered != nil {
		close(f.entered)
	}
	if f.block != nil {
		<-f.block
	}
	f.saved = append(f.saved, records.Clone())
	if f.saveErr != nil {
		return portfolio.Snapshot{}, f.saveErr
	}
	ids := map[string]string{}
	for i, acct := range records.RetirementAccounts {
		if uuid.IsTemporary(acct.ID) {
			ids[acct.ID] = uuid.New()
			records.RetirementAccounts[i].ID = ids[acct.ID]
		}
	}
	for i, a := range records.Assets {
		if id, ok := ids[a.LinkedAccountID()]; ok {
			records.Assets[i].RetirementAccountID = &id
		}
	}
	f.records = records
	return f.Fetch(ctx)
}

func openSession(t *testing.T, store *fakeStore) *Session {
	t.Helper()
	s := New(store, 2026)
	if err := s.Open(context.Background()); err != nil {
		t.Fatalf("open: %v", err)
	}
	return s
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSessionStates(t *testing.T) {
	t.Run("not_loaded", func(t *testing.T) {
		s := New(&fakeStore{}, 2026)
		if _, err := s.AddDebt(); !errors.Is(err, ErrNotLoaded) {
			t.Errorf("expected ErrNotLoaded, got %v", err)
		}
		if _, err := s.Save(context.Background()); !errors.Is(err, ErrNotLoaded) {
			t.Errorf("expected ErrNotLoaded, got %v", err)
		}
	})

	t.Run("open_is_clean_edit_is_dirty", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		if s.State() != Clean {
			t.Fatalf("expected clean, got %s", s.State())
		}
		_, err := s.AddDebt()
		must(t, err)
		if s.State() != Dirty {
			t.Errorf("expected dirty, got %s", s.State())
		}
	})

	t.Run("failed_edit_stays_clean", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		if err := s.RemoveAsset(0); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("expected ErrIndexOutOfRange, got %v", err)
		}
		if s.State() != Clean {
			t.Errorf("expected clean, got %s", s.State())
		}
	})

	t.Run("cancel_discards_edits", func(t *testing.T) {
		store := &fakeStore{records: models.Records{Debts: []models.Debt{{Name: "Car", InitialAmount: 100}}}}
		s := openSession(t, store)
		must(t, s.EditDebt(0, "name", "Boat"))
		must(t, s.Cancel())

		if got := s.WorkingCopy().Debts[0].Name; got != "Car" {
			t.Errorf("expected Car, got %s", got)
		}
		if s.State() != Clean {
			t.Errorf("expected clean, got %s", s.State())
		}
	})

	t.Run("save_success_is_clean", func(t *testing.T) {
		store := &fakeStore{}
		s := openSession(t, store)
		idx, err := s.AddDebt()
		must(t, err)
		must(t, s.EditDebt(idx, "initial_amount", "20000"))
		must(t, s.EditDebt(idx, "amount_paid", "5000"))

		snap, err := s.Save(context.Background())
		must(t, err)

		if s.State() != Clean {
			t.Errorf("expected clean, got %s", s.State())
		}
		if snap.TotalDebtValue != 15000 {
			t.Errorf("expected debt 15000, got %v", snap.TotalDebtValue)
		}
	})

	t.Run("save_failure_keeps_edits_dirty", func(t *testing.T) {
		store := &fakeStore{saveErr: errors.New("network down")}
		s := openSession(t, store)
		_, err := s.AddDebt()
		must(t, err)
		must(t, s.EditDebt(0, "name", "Mortgage"))
		before := s.WorkingCopy()

		if _, err := s.Save(context.Background()); err == nil {
			t.Fatal("expected save error")
		}

		if s.State() != Dirty {
			t.Errorf("expected dirty, got %s", s.State())
		}
		after := s.WorkingCopy()
		if len(after.Debts) != 1 || after.Debts[0] != before.Debts[0] {
			t.Errorf("expected working copy preserved, got %+v", after.Debts)
		}

		store.saveErr = nil
		_, err = s.Save(context.Background())
		must(t, err)
		if got := store.records.Debts[0].Name; got != "Mortgage" {
			t.Errorf("expected retry to save Mortgage, got %s", got)
		}
	})

	t.Run("edits_rejected_while_saving", func(t *testing.T) {
		store := &fakeStore{block: make(chan struct{}), entered: make(chan struct{})}
		s := openSession(t, store)
		_, err := s.AddDebt()
		must(t, err)

		done := make(chan error, 1)
		go func() {
			_, err := s.Save(context.Background())
			done <- err
		}()
		<-store.entered

		if s.State() != Saving {
			t.Errorf("expected saving, got %s", s.State())
		}
		if _, err := s.AddDebt(); !errors.Is(err, ErrSaveInProgress) {
			t.Errorf("expected ErrSaveInProgress, got %v", err)
		}
		if err := s.EditDebt(0, "name", "late"); !errors.Is(err, ErrSaveInProgress) {
			t.Errorf("expected ErrSaveInProgress, got %v", err)
		}
		if _, err := s.Save(context.Background()); !errors.Is(err, ErrSaveInProgress) {
			t.Errorf("expected ErrSaveInProgress, got %v", err)
		}

		close(store.block)
		must(t, <-done)

		if n := len(store.saved); n != 1 {
			t.Fatalf("expected 1 save, got %d", n)
		}
		if store.saved[0].Debts[0].Name != "" {
			t.Errorf("expected in-flight payload untouched, got %q", store.saved[0].Debts[0].Name)
		}
		if s.State() != Clean {
			t.Errorf("expected clean, got %s", s.State())
		}
	})
}

func TestFilingYear(t *testing.T) {
	t.Run("adopts_store_year", func(t *testing.T) {
		s := New(&fakeStore{}, 0)
		must(t, s.Open(context.Background()))
		if got := s.FilingYear(); got != 2026 {
			t.Fatalf("expected filing year 2026 from the store, got %d", got)
		}
		idx, err := s.AddIncome(0)
		must(t, err)
		if got := s.WorkingCopy().Incomes[idx].Year; got != "2026" {
			t.Errorf("expected new income in 2026, got %q", got)
		}
	})

	t.Run("explicit_year_kept", func(t *testing.T) {
		s := New(&fakeStore{}, 2030)
		must(t, s.Open(context.Background()))
		if got := s.FilingYear(); got != 2030 {
			t.Errorf("expected filing year 2030, got %d", got)
		}
	})
}

func TestEditAsset(t *testing.T) {
	t.Run("cost_basis_follows_shares_and_price", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		idx, err := s.AddAsset("")
		must(t, err)
		must(t, s.EditAsset(idx, "ticker", "qqq"))
		must(t, s.EditAsset(idx, "shares", "10"))
		must(t, s.EditAsset(idx, "cost_per_share", "400"))

		d := s.WorkingCopy().Assets[idx]
		if d.Ticker != "QQQ" || d.CostBasis != "4000" {
			t.Errorf("unexpected draft %+v", d)
		}

		must(t, s.EditAsset(idx, "cost_basis", "3500"))
		d = s.WorkingCopy().Assets[idx]
		if d.CostBasis != "3500" || d.Shares != "10" || d.CostPerShare != "400" {
			t.Errorf("expected direct cost basis edit to stand alone, got %+v", d)
		}
	})

	t.Run("imported_cost_basis_kept", func(t *testing.T) {
		store := &fakeStore{records: models.Records{Assets: []models.Asset{
			{Ticker: "VTI", AssetType: models.AssetTypeStock, Shares: 10, CostPerShare: 100, CostBasis: 1234},
		}}}
		s := openSession(t, store)
		must(t, s.EditAsset(0, "current_price", "150"))

		if got := s.Records().Assets[0].CostBasis; got != 1234 {
			t.Errorf("expected cost basis 1234, got %v", got)
		}
	})

	t.Run("invalid_enum", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		_, err := s.AddAsset("")
		must(t, err)
		if err := s.EditAsset(0, "asset_type", "CRYPTO"); !errors.Is(err, ErrInvalidEnum) {
			t.Errorf("expected ErrInvalidEnum, got %v", err)
		}
		if err := s.EditAsset(0, "color", "red"); !errors.Is(err, ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}
	})

	t.Run("unknown_account_link", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		if _, err := s.AddAsset("nope"); !errors.Is(err, ErrUnknownAccount) {
			t.Errorf("expected ErrUnknownAccount, got %v", err)
		}
	})
}

func TestEditIncome(t *testing.T) {
	t.Run("salary_round_trip", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		idx, err := s.AddIncome(0)
		must(t, err)

		must(t, s.EditIncome(idx, "monthly_income", "5000"))
		if got := s.WorkingCopy().Incomes[idx].YearlyIncome; got != "60000" {
			t.Errorf("expected yearly 60000, got %s", got)
		}

		must(t, s.EditIncome(idx, "yearly_income", "72000"))
		d := s.WorkingCopy().Incomes[idx]
		if d.MonthlyIncome != "6000" || d.YearlyIncome != "72000" {
			t.Errorf("unexpected draft %+v", d)
		}
		if d.Year != "2026" {
			t.Errorf("expected default year 2026, got %s", d.Year)
		}
	})

	t.Run("hourly_does_not_recompute", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		idx, err := s.AddIncome(2025)
		must(t, err)
		must(t, s.EditIncome(idx, "income_type", "hourly"))
		must(t, s.EditIncome(idx, "monthly_income", "5000"))

		if got := s.WorkingCopy().Incomes[idx].YearlyIncome; got != "0" {
			t.Errorf("expected yearly untouched, got %s", got)
		}
	})

	t.Run("filtered_by_year", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		_, err := s.AddIncome(2025)
		must(t, err)
		_, err = s.AddIncome(2026)
		must(t, err)

		got := s.IncomesForYear(2026)
		if len(got) != 1 || got[0].Index != 1 {
			t.Errorf("unexpected filtered incomes %+v", got)
		}
	})
}

func TestRemoveAccount(t *testing.T) {
	t.Run("cascades_to_assets", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		idx, err := s.AddAccount(models.RetirementAccountRothIRA)
		must(t, err)
		id := s.WorkingCopy().Accounts[idx].ID
		if !uuid.IsTemporary(id) {
			t.Errorf("expected temporary id, got %s", id)
		}
		_, err = s.AddAsset(id)
		must(t, err)
		_, err = s.AddAsset("")
		must(t, err)
		_, err = s.AddAsset(id)
		must(t, err)

		must(t, s.RemoveAccount(idx))

		w := s.WorkingCopy()
		if len(w.Accounts) != 0 || len(w.Assets) != 1 {
			t.Errorf("expected 0 accounts and 1 asset, got %d and %d", len(w.Accounts), len(w.Assets))
		}
		if len(s.AssetsForAccount(id)) != 0 {
			t.Error("expected no assets for removed account")
		}
	})

	t.Run("removing_only_asset_keeps_account", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		idx, err := s.AddAccount("")
		must(t, err)
		id := s.WorkingCopy().Accounts[idx].ID
		a, err := s.AddAsset(id)
		must(t, err)

		must(t, s.RemoveAsset(a))

		if len(s.WorkingCopy().Accounts) != 1 {
			t.Error("expected account to remain")
		}
		if len(s.AssetsForAccount(id)) != 0 {
			t.Error("expected no linked assets")
		}
	})

	t.Run("contributions", func(t *testing.T) {
		s := openSession(t, &fakeStore{})
		idx, err := s.AddAccount(models.RetirementAccountK401)
		must(t, err)
		must(t, s.EditAccount(idx, "contributions_2026", "23,000"))
		must(t, s.EditAccount(idx, "contributions_2027", "100"))
		if err := s.EditAccount(idx, "contributions_x", "1"); !errors.Is(err, ErrUnknownField) {
			t.Errorf("expected ErrUnknownField, got %v", err)
		}

		acct := s.Records().RetirementAccounts[0]
		if acct.Contributions[2026] != 23000 || acct.Contributions[2025] != 0 || acct.Contributions[2027] != 100 {
			t.Errorf("unexpected contributions %+v", acct.Contributions)
		}
	})
}

func TestSaveCoercion(t *testing.T) {
	store := &fakeStore{}
	s := openSession(t, store)
	_, err := s.AddAsset("")
	must(t, err)
	must(t, s.EditAsset(0, "shares", "-5"))
	must(t, s.EditAsset(0, "cost_per_share", "abc"))
	must(t, s.EditAsset(0, "current_price", "$1,250.50"))
	_, err = s.AddDebt()
	must(t, err)
	must(t, s.EditDebt(0, "amount_paid", "-100"))
	must(t, s.EditDebt(0, "interest_rate", "6.5%"))
	_, err = s.AddIncome(0)
	must(t, err)
	must(t, s.EditIncome(0, "year", ""))

	_, err = s.Save(context.Background())
	must(t, err)

	got := store.saved[0]
	a := got.Assets[0]
	if a.Shares != 0 || a.CostPerShare != 0 || a.CurrentPrice == nil || *a.CurrentPrice != 1250.5 {
		t.Errorf("unexpected coerced asset %+v", a)
	}
	if got.Debts[0].AmountPaid != 0 || got.Debts[0].InterestRate != 6.5 {
		t.Errorf("unexpected coerced debt %+v", got.Debts[0])
	}
	if got.Incomes[0].Year != 2026 {
		t.Errorf("expected year 2026, got %d", got.Incomes[0].Year)
	}
}

func TestSaveCoercionEdgeCases(t *testing.T) {
	t.Run("negative_shares_zero_cost_basis", func(t *testing.T) {
		store := &fakeStore{}
		s := openSession(t, store)
		_, err := s.AddAsset("")
		must(t, err)
		must(t, s.EditAsset(0, "ticker", "VTI"))
		must(t, s.EditAsset(0, "cost_per_share", "10"))
		must(t, s.EditAsset(0, "shares", "-5"))

		if got := s.WorkingCopy().Assets[0].CostBasis; got != "0" {
			t.Errorf("expected draft cost basis 0, got %q", got)
		}

		_, err = s.Save(context.Background())
		must(t, err)
		a := store.saved[0].Assets[0]
		if a.Shares != 0 || a.CostBasis != 0 {
			t.Errorf("expected shares and cost basis 0, got %+v", a)
		}
		if gain := portfolio.GainLoss(a); gain != 0 {
			t.Errorf("expected no gain, got %v", gain)
		}
	})

	t.Run("out_of_range_numbers_read_as_zero", func(t *testing.T) {
		store := &fakeStore{}
		s := openSession(t, store)
		_, err := s.AddDebt()
		must(t, err)
		must(t, s.EditDebt(0, "initial_amount", "1e400"))
		must(t, s.EditDebt(0, "monthly_payment", "-1e400"))
		_, err = s.AddAsset("")
		must(t, err)
		must(t, s.EditAsset(0, "ticker", "VTI"))
		must(t, s.EditAsset(0, "shares", "1e200"))
		must(t, s.EditAsset(0, "cost_per_share", "1e200"))

		_, err = s.Save(context.Background())
		must(t, err)
		got := store.saved[0]
		if got.Debts[0].InitialAmount != 0 || got.Debts[0].MonthlyPayment != 0 {
			t.Errorf("expected out-of-range debt fields to read as 0, got %+v", got.Debts[0])
		}
		if got.Assets[0].CostBasis != 0 {
			t.Errorf("expected overflowing cost basis to read as 0, got %v", got.Assets[0].CostBasis)
		}
		if _, err := json.Marshal(got); err != nil {
			t.Errorf("expected saved records to encode, got %v", err)
		}
	})
}

func TestSaveIdempotent(t *testing.T) {
	acctID := uuid.New()
	price := 450.25
	store := &fakeStore{records: models.Records{
		Assets: []models.Asset{
			{Ticker: "QQQ", AssetType: models.AssetTypeStock, Shares: 10.5, CostPerShare: 400.1, CostBasis: 4201.05, CurrentPrice: &price},
			{Ticker: "VTI", AssetType: models.AssetTypeStock, Shares: 3, CostPerShare: 200, CostBasis: 600, RetirementAccountID: &acctID},
		},
		Incomes: []models.Income{{IncomeType: models.IncomeTypeSalary, MonthlyIncome: 8333.33, YearlyIncome: 100000, Year: 2026}},
		Debts:   []models.Debt{{Name: "Car", InitialAmount: 20000, AmountPaid: 5000, MonthlyPayment: 450, InterestRate: 4.9}},
		RetirementAccounts: []models.RetirementAccount{
			{ID: acctID, Name: "Work", AccountType: models.RetirementAccountK401, Contributions: models.Contributions{2025: 1, 2026: 2}},
		},
	}}
	s := openSession(t, store)
	before := s.Canonical()

	after, err := s.Save(context.Background())
	must(t, err)

	if after.RealTimeNetWorth != before.RealTimeNetWorth || after.TotalAnnualIncome != before.TotalAnnualIncome {
		t.Errorf("expected unchanged totals, got %+v vs %+v", after, before)
	}
	saved := store.saved[0]
	if saved.Assets[0].CostBasis != 4201.05 || *saved.Assets[0].CurrentPrice != 450.25 {
		t.Errorf("unexpected asset after round trip %+v", saved.Assets[0])
	}
	if saved.Assets[1].LinkedAccountID() != acctID || saved.RetirementAccounts[0].ID != acctID {
		t.Error("expected permanent account id kept")
	}
	if saved.Incomes[0].MonthlyIncome != 8333.33 {
		t.Errorf("unexpected income %+v", saved.Incomes[0])
	}
}

func TestSaveReplacesTemporaryIDs(t *testing.T) {
	store := &fakeStore{}
	s := openSession(t, store)
	idx, err := s.AddAccount(models.RetirementAccountK401)
	must(t, err)
	tmp := s.WorkingCopy().Accounts[idx].ID
	_, err = s.AddAsset(tmp)
	must(t, err)

	snap, err := s.Save(context.Background())
	must(t, err)

	id := snap.RetirementAccounts[0].ID
	if uuid.IsTemporary(id) {
		t.Fatalf("expected permanent id, got %s", id)
	}
	if got := s.AssetsForAccount(id); len(got) != 1 {
		t.Errorf("expected asset relinked to %s, got %d", id, len(got))
	}
}

func TestPreview(t *testing.T) {
	s := openSession(t, &fakeStore{})
	_, err := s.AddAsset("")
	must(t, err)
	must(t, s.EditAsset(0, "asset_type", "CASH"))
	must(t, s.EditAsset(0, "shares", "5000"))

	if got := s.Preview(engine).TotalAssetValue; got != 5000 {
		t.Errorf("expected 5000, got %v", got)
	}
	if s.Canonical().TotalAssetValue != 0 {
		t.Error("expected canonical snapshot untouched")
	}
}
