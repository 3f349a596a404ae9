package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type showCmd struct {
	out output
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display net worth, taxes and every record" }
func (*showCmd) Usage() string {
	return `pfa show [-json] [-raw]

  Fetches the portfolio and prints the report.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	c.out.setFlags(f)
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := newClient().Fetch(ctx)
	if err != nil {
		return fail(err)
	}
	c.out.print(snap)
	return subcommands.ExitSuccess
}
