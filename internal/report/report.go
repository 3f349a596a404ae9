// Package report renders a portfolio snapshot as markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"pfa/internal/models"
	"pfa/internal/portfolio"
)

// USD formats an amount as US dollars, e.g. "$1,234.50".
func USD(amount float64) string {
	cents := decimal.NewFromFloat(amount).Shift(2).Round(0)
	return money.New(cents.IntPart(), money.USD).Display()
}

// Percent formats a ratio already expressed in percent, e.g. "12.5%".
func Percent(p float64) string {
	return decimal.NewFromFloat(p).Round(2).String() + "%"
}

func quantity(q float64) string {
	return decimal.NewFromFloat(q).String()
}

type table struct {
	header []string
	align  []string
	rows   [][]string
}

func newTable(header ...string) *table {
	align := make([]string, len(header))
	for i := range align {
		align[i] = "---:"
	}
	align[0] = ":---"
	return &table{header: header, align: align}
}

func (t *table) add(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) write(b *strings.Builder) {
	line := func(cells []string) {
		b.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
	line(t.header)
	line(t.align)
	for _, r := range t.rows {
		line(r)
	}
	b.WriteString("\n")
}

// Markdown renders the snapshot: totals, tax estimates, then one table per
// record collection. Empty collections are left out.
func Markdown(s portfolio.Snapshot) string {
	var b strings.Builder

	b.WriteString("# Portfolio\n\n")
	summary := newTable("", "Amount")
	summary.add("**Net worth**", "**"+USD(s.RealTimeNetWorth)+"**")
	summary.add("Total assets", USD(s.TotalAssetValue))
	summary.add("Taxable assets", USD(s.TaxableAssetValue))
	summary.add("Retirement assets", USD(s.RetirementAssetValue))
	summary.add("Total debt", USD(s.TotalDebtValue))
	summary.add(fmt.Sprintf("Income %d", s.FilingYear), USD(s.TotalAnnualIncome))
	summary.add("Monthly income", USD(s.TotalMonthlyIncome))
	summary.write(&b)

	fmt.Fprintf(&b, "## Estimated taxes %d\n\n", s.FilingYear)
	fmt.Fprintf(&b, "Filing as %s in %s.\n\n", filingStatusLabel(s.FilingStatus), s.State)
	taxes := newTable("", "Amount")
	taxes.add("Federal", USD(s.EstimatedFederalTax))
	taxes.add("State", USD(s.EstimatedStateTax))
	taxes.add("FICA", USD(s.EstimatedFICATax))
	taxes.add("**Total**", "**"+USD(s.EstimatedTaxLiability)+"**")
	taxes.write(&b)

	accountNames := make(map[string]string, len(s.RetirementAccounts))
	for _, a := range s.RetirementAccounts {
		accountNames[a.ID] = accountLabel(a.RetirementAccount)
	}

	if len(s.Assets) > 0 {
		b.WriteString("## Assets\n\n")
		t := newTable("Ticker", "Type", "Shares", "Price", "Market value", "Gain/Loss", "Account")
		for _, a := range s.Assets {
			t.add(
				a.Ticker,
				string(a.AssetType),
				quantity(a.Shares),
				price(a),
				USD(a.MarketValue),
				gainLoss(a),
				accountNames[a.LinkedAccountID()],
			)
		}
		t.write(&b)
	}

	if len(s.RetirementAccounts) > 0 {
		b.WriteString("## Retirement accounts\n\n")
		t := newTable("Account", "Type", "Market value", fmt.Sprintf("Contributions %d", s.FilingYear))
		for _, a := range s.RetirementAccounts {
			t.add(accountLabel(a.RetirementAccount), string(a.AccountType), USD(a.MarketValue), USD(a.Contributions[s.FilingYear]))
		}
		t.write(&b)
	}

	if len(s.Incomes) > 0 {
		b.WriteString("## Income\n\n")
		t := newTable("Year", "Type", "Monthly", "Yearly")
		for _, i := range s.Incomes {
			t.add(fmt.Sprint(i.Year), string(i.IncomeType), USD(i.MonthlyIncome), USD(portfolio.AnnualIncome(i)))
		}
		t.write(&b)

		if len(s.IncomeByYear) > 1 {
			t := newTable("Year", "Total")
			for _, y := range portfolio.Years(s.Incomes) {
				t.add(fmt.Sprint(y), USD(s.IncomeByYear[y]))
			}
			t.write(&b)
		}
	}

	if len(s.Debts) > 0 {
		b.WriteString("## Debts\n\n")
		t := newTable("Debt", "Initial", "Paid", "Remaining", "Monthly payment", "Rate")
		for _, d := range s.Debts {
			t.add(d.Name, USD(d.InitialAmount), USD(d.AmountPaid), USD(d.RemainingBalance), USD(d.MonthlyPayment), Percent(d.InterestRate))
		}
		t.write(&b)
	}

	return b.String()
}

func price(a portfolio.AssetView) string {
	if a.AssetType.IsCashLike() {
		return ""
	}
	return USD(portfolio.EffectivePrice(a.Asset))
}

func gainLoss(a portfolio.AssetView) string {
	if a.GainLoss == nil {
		return ""
	}
	out := USD(*a.GainLoss)
	if a.GainLossPercent != nil {
		out += " (" + Percent(*a.GainLossPercent) + ")"
	}
	return out
}

func accountLabel(a models.RetirementAccount) string {
	if a.Name != "" {
		return a.Name
	}
	return string(a.AccountType)
}

func filingStatusLabel(s models.FilingStatus) string {
	return strings.ReplaceAll(strings.ToLower(string(s)), "_", " ")
}
