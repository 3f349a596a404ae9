// Package tax estimates federal, state, and payroll tax liability for the
// portfolio snapshot.
package tax

import (
	"sort"

	"github.com/shopspring/decimal"

	"pfa/internal/models"
	"pfa/internal/portfolio"
)

// Options configures an Estimator.
type Options struct {
	// DeductPreTaxContributions subtracts K401, B403, and TRADITIONAL_IRA
	// contributions from federal and state taxable income. ROTH_IRA
	// contributions are never deducted, and FICA always uses gross wages.
	DeductPreTaxContributions bool
}

// Estimator implements portfolio.TaxEstimator with the TableYear tables.
type Estimator struct {
	opts Options
}

var _ portfolio.TaxEstimator = (*Estimator)(nil)

// NewEstimator creates a new Estimator
func NewEstimator(opts Options) *Estimator {
	return &Estimator{opts: opts}
}

// Supports reports whether state tax can be computed for state.
func Supports(state string) bool {
	_, ok := states[state]
	return ok || noIncomeTax[state]
}

// SupportedStates returns every state code Supports accepts, sorted.
func SupportedStates() []string {
	out := make([]string, 0, len(states)+len(noIncomeTax))
	for code := range states {
		out = append(out, code)
	}
	for code := range noIncomeTax {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// Estimate computes the liability breakdown. Unknown filing statuses fall
// back to SINGLE and unsupported states contribute zero state tax.
func (e *Estimator) Estimate(in portfolio.TaxInput) portfolio.TaxBreakdown {
	status := in.FilingStatus
	if !status.Valid() {
		status = models.FilingStatusSingle
	}

	gross := decimal.Max(decimal.Zero, decimal.NewFromFloat(in.GrossIncome))
	taxable := gross
	if e.opts.DeductPreTaxContributions {
		taxable = decimal.Max(decimal.Zero, gross.Sub(preTax(in.Contributions)))
	}

	fed := federal[status].Tax(taxable).Round(2)
	st := decimal.Zero
	if schedules, ok := states[in.State]; ok {
		st = schedules[status].Tax(taxable).Round(2)
	}
	fica := FICA(gross, status).Round(2)

	return portfolio.TaxBreakdown{
		Federal: fed.InexactFloat64(),
		State:   st.InexactFloat64(),
		FICA:    fica.InexactFloat64(),
		Total:   fed.Add(st).Add(fica).InexactFloat64(),
	}
}

// FICA returns Social Security plus Medicare tax on wages.
func FICA(wages decimal.Decimal, status models.FilingStatus) decimal.Decimal {
	wages = decimal.Max(decimal.Zero, wages)
	ssWages := decimal.Min(wages, decimal.NewFromInt(socialSecurityWageBase))

	total := ssWages.Mul(decimal.NewFromFloat(socialSecurityRate))
	total = total.Add(wages.Mul(decimal.NewFromFloat(medicareRate)))

	threshold, ok := additionalMedicareThreshold[status]
	if !ok {
		threshold = additionalMedicareThreshold[models.FilingStatusSingle]
	}
	if excess := wages.Sub(decimal.NewFromFloat(threshold)); excess.IsPositive() {
		total = total.Add(excess.Mul(decimal.NewFromFloat(additionalMedicareRate)))
	}
	return total
}

func preTax(contributions []portfolio.Contribution) decimal.Decimal {
	total := decimal.Zero
	for _, c := range contributions {
		if c.AccountType.IsPreTax() && c.Amount > 0 {
			total = total.Add(decimal.NewFromFloat(c.Amount))
		}
	}
	return total
}
