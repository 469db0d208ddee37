// Package cmd implements the CLI application to blend ETF holdings tables.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/blend"
	"github.com/google/subcommands"
)

// Commands lists the subcommands to register. A main package ranges over it
// and calls Execute on the user-selected one.
var Commands = []subcommands.Command{
	&combineCmd{},
	&fundsCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use a global variable for the shared flag.

var configFile = flag.String("config", "", "Path to a TOML configuration file")

// loadConfig is the central function to build the run configuration:
// defaults, then the optional -config file. Per-command flags are applied on
// top by each command.
func loadConfig() (blend.Config, error) {
	return blend.LoadConfig(*configFile)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
