package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"pfa/internal/client"
	"pfa/internal/portfolio"
	"pfa/internal/report"
)

const defaultAPIURL = "http://localhost:8080"

var commands = []subcommands.Command{
	&showCmd{},
	&editCmd{},
	&taxCmd{},
}

// newClient reads PFA_API_URL and PFA_TOKEN. Without a token the client
// works on the guest portfolio.
func newClient() *client.Client {
	url := os.Getenv("PFA_API_URL")
	if url == "" {
		url = defaultAPIURL
	}
	var opts []client.Option
	if token := os.Getenv("PFA_TOKEN"); token != "" {
		opts = append(opts, client.WithToken(token))
	}
	return client.New(url, opts...)
}

// output flags shared by every command that prints a snapshot.
type output struct {
	json bool
	raw  bool
}

func (o *output) setFlags(f *flag.FlagSet) {
	f.BoolVar(&o.json, "json", false, "print the snapshot as JSON")
	f.BoolVar(&o.raw, "raw", false, "print markdown without terminal styling")
}

func (o *output) print(snap portfolio.Snapshot) {
	if o.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(snap)
		return
	}
	md := report.Markdown(snap)
	if o.raw {
		fmt.Print(md)
		return
	}
	printMarkdown(md)
}

func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, err := r.Render(md); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(md)
}

// fail prints err and picks the exit status. Server validation messages are
// shown exactly as sent.
func fail(err error) subcommands.ExitStatus {
	var ve *client.ValidationError
	if errors.As(err, &ve) {
		fmt.Fprintln(os.Stderr, ve.Message)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
