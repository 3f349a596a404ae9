package tax

import "github.com/shopspring/decimal"

// Bracket is one marginal rate band. UpTo is the inclusive upper bound of
// taxable income for the band; the last band of a schedule has UpTo 0 and is
// unbounded.
type Bracket struct {
	UpTo float64
	Rate float64
}

// Schedule is a standard deduction followed by progressive brackets, plus an
// optional flat surcharge on taxable income above a threshold.
type Schedule struct {
	Deduction          float64
	Brackets           []Bracket
	SurchargeRate      float64
	SurchargeThreshold float64
}

// Tax applies the schedule to gross income.
func (s Schedule) Tax(income decimal.Decimal) decimal.Decimal {
	taxable := decimal.Max(decimal.Zero, income.Sub(decimal.NewFromFloat(s.Deduction)))

	total := decimal.Zero
	lower := decimal.Zero
	for _, b := range s.Brackets {
		if !taxable.GreaterThan(lower) {
			break
		}
		upper := taxable
		if b.UpTo > 0 {
			upper = decimal.Min(taxable, decimal.NewFromFloat(b.UpTo))
		}
		total = total.Add(upper.Sub(lower).Mul(decimal.NewFromFloat(b.Rate)))
		lower = upper
	}

	if s.SurchargeRate > 0 {
		threshold := decimal.NewFromFloat(s.SurchargeThreshold)
		if taxable.GreaterThan(threshold) {
			total = total.Add(taxable.Sub(threshold).Mul(decimal.NewFromFloat(s.SurchargeRate)))
		}
	}
	return total
}

// scaled returns a copy of s with every dollar amount multiplied by factor.
// Rates are unchanged.
func (s Schedule) scaled(factor float64) Schedule {
	out := Schedule{
		Deduction:          s.Deduction * factor,
		Brackets:           make([]Bracket, len(s.Brackets)),
		SurchargeRate:      s.SurchargeRate,
		SurchargeThreshold: s.SurchargeThreshold,
	}
	for i, b := range s.Brackets {
		out.Brackets[i] = Bracket{UpTo: b.UpTo * factor, Rate: b.Rate}
	}
	return out
}
