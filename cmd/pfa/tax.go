package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"pfa/internal/models"
	"pfa/internal/tax"
)

type taxCmd struct {
	out    output
	status string
	state  string
}

func (*taxCmd) Name() string     { return "tax" }
func (*taxCmd) Synopsis() string { return "set filing status and state" }
func (*taxCmd) Usage() string {
	return fmt.Sprintf(`pfa tax -status <status> -state <state>

  Updates the tax profile and prints the recomputed report.
  Filing statuses: SINGLE, MARRIED_FILING_JOINTLY, MARRIED_FILING_SEPARATELY,
  HEAD_OF_HOUSEHOLD, QUALIFYING_WIDOW.
  Supported states: %s.
`, strings.Join(tax.SupportedStates(), ", "))
}

func (c *taxCmd) SetFlags(f *flag.FlagSet) {
	c.out.setFlags(f)
	f.StringVar(&c.status, "status", string(models.FilingStatusSingle), "filing status")
	f.StringVar(&c.state, "state", "CA", "two-letter state code")
}

func (c *taxCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	status := models.FilingStatus(strings.ToUpper(c.status))
	if !status.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown filing status %q\n", c.status)
		return subcommands.ExitUsageError
	}

	snap, err := newClient().UpdateTaxProfile(ctx, status, strings.ToUpper(c.state))
	if err != nil {
		return fail(err)
	}
	c.out.print(snap)
	return subcommands.ExitSuccess
}
