// Command pfa reads and edits a portfolio from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"pfa/internal/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init("production")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range commands {
		commander.Register(c, "")
	}

	flag.Parse()
	status := commander.Execute(context.Background())
	logger.Sync()
	os.Exit(int(status))
}
