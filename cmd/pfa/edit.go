package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pfa/internal/portfolio"
	"pfa/internal/session"
	"pfa/internal/tax"
)

type editCmd struct {
	out    output
	year   int
	dryRun bool
	pretax bool
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "apply edit commands and save the portfolio" }
func (*editCmd) Usage() string {
	return `pfa edit [-year <year>] [-n [-pretax=false]] <command>...

  Applies each command to a copy of the portfolio, then saves everything at once.
  Nothing is saved if any command fails.

  New incomes and contributions default to the server's filing year unless
  -year is given. With -n, taxes are estimated locally; -pretax selects whether
  that estimate deducts 401(k), 403(b), and traditional IRA contributions.

  Commands:
    asset.add                  add a stock
    asset.add=<account id>     add a stock held in a retirement account
    asset.<i>.<field>=<value>  ticker, asset_type, shares, cost_per_share,
                               cost_basis, current_price, retirement_account_id
    asset.<i>.remove
    income.add[=<year>]        income fields: income_type, monthly_income,
    income.<i>.<field>=<value> yearly_income, hourly_wage, hours_worked, year
    debt.add                   debt fields: name, initial_amount, amount_paid,
    debt.<i>.<field>=<value>   monthly_payment, interest_rate
    account.add[=<type>]       K401, B403, ROTH_IRA, TRADITIONAL_IRA
    account.<i>.<field>=<value> name, account_type, contributions_<year>
    account.<i>.remove         also removes the account's assets

  Example:
    pfa edit asset.add asset.0.ticker=QQQ asset.0.shares=10 asset.0.cost_per_share=400
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	c.out.setFlags(f)
	f.IntVar(&c.year, "year", 0, "filing year for new incomes and contributions (default: the server's)")
	f.BoolVar(&c.dryRun, "n", false, "show the result without saving")
	f.BoolVar(&c.pretax, "pretax", true, "with -n, deduct pre-tax retirement contributions")
}

func (c *editCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no edit commands given")
		return subcommands.ExitUsageError
	}

	s := session.New(newClient(), c.year)
	if err := s.Open(ctx); err != nil {
		return fail(err)
	}
	if err := s.ApplyAll(f.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.dryRun {
		estimator := tax.NewEstimator(tax.Options{DeductPreTaxContributions: c.pretax})
		c.out.print(s.Preview(portfolio.NewEngine(estimator, s.FilingYear())))
		return subcommands.ExitSuccess
	}

	snap, err := s.Save(ctx)
	if err != nil {
		return fail(err)
	}
	c.out.print(snap)
	return subcommands.ExitSuccess
}
