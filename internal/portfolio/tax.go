package portfolio

import "pfa/internal/models"

// Contribution is one retirement contribution made in the filing year.
type Contribution struct {
	AccountType models.RetirementAccountType
	Amount      float64
}

// TaxInput is everything the tax estimator receives. Whether contributions
// reduce taxable income is the estimator's policy, not the engine's.
type TaxInput struct {
	Year          int
	GrossIncome   float64
	FilingStatus  models.FilingStatus
	State         string
	Contributions []Contribution
}

// TaxBreakdown is the estimated liability by component.
type TaxBreakdown struct {
	Federal float64
	State   float64
	FICA    float64
	Total   float64
}

// TaxEstimator computes liability from a TaxInput. Implementations must be
// total: unsupported jurisdictions or statuses yield zero components rather
// than errors.
type TaxEstimator interface {
	Estimate(in TaxInput) TaxBreakdown
}
