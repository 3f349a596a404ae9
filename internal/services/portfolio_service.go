package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "pfa/internal/errors"
	"pfa/internal/logger"
	"pfa/internal/models"
	"pfa/internal/portfolio"
	"pfa/internal/tax"
	"pfa/internal/uuid"
)

// portfolioService stores each owner's records and computes snapshots.
type portfolioService struct {
	db     *gorm.DB
	engine *portfolio.Engine
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(db *gorm.DB, engine *portfolio.Engine) PortfolioServicer {
	return &portfolioService{db: db, engine: engine}
}

// GetPortfolio loads the owner's records and tax profile and computes the
// snapshot. An owner with no records gets an all-zero snapshot.
func (s *portfolioService) GetPortfolio(ownerID string) (*portfolio.Snapshot, error) {
	records, profile, err := s.load(s.db, ownerID)
	if err != nil {
		return nil, err
	}
	snap := s.engine.Snapshot(records, profile)
	return &snap, nil
}

// ReplacePortfolio validates records and replaces all four collections of
// the owner in one transaction. Retirement-account IDs the owner does not
// already hold are replaced with server IDs and asset links are remapped.
func (s *portfolioService) ReplacePortfolio(ownerID string, records models.Records) (*portfolio.Snapshot, error) {
	records = records.Clone()
	records.Normalize()

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var owned []string
		if err := tx.Model(&models.RetirementAccount{}).
			Where("owner_id = ?", ownerID).
			Pluck("id", &owned).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := s.prepare(ownerID, &records, owned); err != nil {
			return err
		}

		// Assets reference accounts, so they go first on delete and last on insert.
		for _, model := range []interface{}{&models.Asset{}, &models.Income{}, &models.Debt{}, &models.RetirementAccount{}} {
			if err := tx.Where("owner_id = ?", ownerID).Delete(model).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		if err := createAll(tx, records.RetirementAccounts); err != nil {
			return err
		}
		if err := createAll(tx, records.Assets); err != nil {
			return err
		}
		if err := createAll(tx, records.Incomes); err != nil {
			return err
		}
		return createAll(tx, records.Debts)
	})
	if err != nil {
		return nil, err
	}

	logger.Named("portfolio").Infow("Portfolio replaced",
		"owner_id", ownerID,
		"assets", len(records.Assets),
		"incomes", len(records.Incomes),
		"debts", len(records.Debts),
		"retirement_accounts", len(records.RetirementAccounts),
	)
	return s.GetPortfolio(ownerID)
}

// UpdateTaxProfile stores the owner's filing status and state.
func (s *portfolioService) UpdateTaxProfile(ownerID string, status models.FilingStatus, state string) (*portfolio.Snapshot, error) {
	if !status.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown filing_status %q", status))
	}
	if !models.IsUSState(state) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown state %q", state))
	}
	if !tax.Supports(state) {
		return nil, apperrors.WithMessage(apperrors.ErrUnsupportedJurisdiction,
			fmt.Sprintf("Tax estimation is not available for %s", state))
	}

	profile := models.TaxProfile{OwnerID: ownerID, FilingStatus: status, State: state}
	if err := s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&profile).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	logger.Named("portfolio").Infow("Tax profile updated", "owner_id", ownerID, "filing_status", status, "state", state)
	return s.GetPortfolio(ownerID)
}

// load reads every collection in position order.
func (s *portfolioService) load(db *gorm.DB, ownerID string) (models.Records, models.TaxProfile, error) {
	var records models.Records
	queries := []interface{}{&records.Assets, &records.Incomes, &records.Debts, &records.RetirementAccounts}
	for _, dest := range queries {
		if err := db.Where("owner_id = ?", ownerID).Order("position ASC").Find(dest).Error; err != nil {
			return models.Records{}, models.TaxProfile{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	profile := models.DefaultTaxProfile()
	var stored models.TaxProfile
	err := db.Where("owner_id = ?", ownerID).First(&stored).Error
	switch {
	case err == nil:
		profile = stored
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return models.Records{}, models.TaxProfile{}, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	records.Normalize()
	return records, profile, nil
}

// prepare validates records in place and stamps ownership, ordering, and
// permanent IDs onto them.
func (s *portfolioService) prepare(ownerID string, records *models.Records, owned []string) error {
	keep := make(map[string]bool, len(owned))
	for _, id := range owned {
		keep[id] = true
	}

	if orphans := portfolio.Orphans(records.Assets, records.RetirementAccounts); len(orphans) > 0 {
		i := orphans[0]
		return apperrors.WithMessage(apperrors.ErrUnknownRetirementAccount,
			fmt.Sprintf("assets[%d]: retirement account %q does not exist", i, records.Assets[i].LinkedAccountID()))
	}

	remap := make(map[string]string, len(records.RetirementAccounts))
	for i := range records.RetirementAccounts {
		acct := &records.RetirementAccounts[i]
		if _, dup := remap[acct.ID]; dup && acct.ID != "" {
			return apperrors.Validationf("retirement_accounts[%d]: duplicate id %q", i, acct.ID)
		}
		id := acct.ID
		if id == "" || uuid.IsTemporary(id) || !keep[id] {
			id = uuid.New()
		}
		if acct.ID != "" {
			remap[acct.ID] = id
		}
		acct.ID, acct.OwnerID, acct.Position = id, ownerID, i
		if acct.Contributions == nil {
			acct.Contributions = models.Contributions{}
		}
		if err := acct.Validate(); err != nil {
			return apperrors.Validationf("retirement_accounts[%d]: %v", i, err)
		}
	}

	for i := range records.Assets {
		a := &records.Assets[i]
		if err := a.Validate(); err != nil {
			return apperrors.Validationf("assets[%d]: %v", i, err)
		}
		if linked := a.LinkedAccountID(); linked != "" {
			id := remap[linked]
			a.RetirementAccountID = &id
		}
		a.ID, a.OwnerID, a.Position = "", ownerID, i
		a.Shares = nonNegative(a.Shares)
	}

	for i := range records.Incomes {
		inc := &records.Incomes[i]
		if inc.Year == 0 {
			inc.Year = s.engine.FilingYear()
		}
		if err := inc.Validate(); err != nil {
			return apperrors.Validationf("incomes[%d]: %v", i, err)
		}
		inc.ID, inc.OwnerID, inc.Position = "", ownerID, i
	}

	for i := range records.Debts {
		d := &records.Debts[i]
		d.ID, d.OwnerID, d.Position = "", ownerID, i
		d.AmountPaid = nonNegative(d.AmountPaid)
	}
	return nil
}

func nonNegative(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// createAll inserts rows in one statement, skipping empty collections.
func createAll[T any](tx *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
