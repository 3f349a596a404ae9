package session

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"pfa/internal/portfolio"
)

// parseNumber reads user-typed text leniently: surrounding space, a leading
// dollar sign, thousands separators, and a trailing percent sign are
// ignored. Anything else that is not a number reads as zero.
func parseNumber(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	if _, ok := finite(d); !ok {
		return decimal.Zero
	}
	return d
}

// finite converts d to a float64, reporting false when it does not fit.
func finite(d decimal.Decimal) (float64, bool) {
	f := d.InexactFloat64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// number coerces raw to a float64. Values outside the float64 range read as
// zero.
func number(raw string) float64 {
	f, _ := finite(parseNumber(raw))
	return f
}

// nonNegative clamps d to zero from below.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, d)
}

// quantity coerces raw like number but clamps negatives to zero.
func quantity(raw string) float64 {
	f, _ := finite(nonNegative(parseNumber(raw)))
	return f
}

// optionalNumber returns nil for blank input.
func optionalNumber(raw string) *float64 {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	f := number(raw)
	return &f
}

// year coerces raw to a tax year, falling back to def.
func year(raw string, def int) int {
	y, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || y <= 0 {
		return def
	}
	return y
}

// format renders a stored number as editable text.
func format(f float64) string {
	return decimal.NewFromFloat(f).String()
}

func formatOptional(f *float64) string {
	if f == nil {
		return ""
	}
	return format(*f)
}

// costBasis renders shares × costPerShare, with shares clamped the way
// quantity clamps them on save.
func costBasis(shares, costPerShare string) string {
	return nonNegative(parseNumber(shares)).Mul(parseNumber(costPerShare)).String()
}

var monthsPerYear = decimal.NewFromInt(portfolio.MonthsPerYear)

func yearlyFromMonthly(monthly string) string {
	return parseNumber(monthly).Mul(monthsPerYear).String()
}

func monthlyFromYearly(yearly string) string {
	return parseNumber(yearly).Div(monthsPerYear).Round(2).String()
}
