package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/blend"
	"github.com/etnz/blend/renderer"
	"github.com/google/subcommands"
)

// fundsCmd holds the flags for the 'funds' subcommand.
type fundsCmd struct {
	dir    string
	sheet  string
	code   string
	weight string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "list the fund tables a folder would contribute" }
func (*fundsCmd) Usage() string {
	return `efw funds [-d <folder>]

  Loads every holdings file of the folder the same way 'combine' does and
  lists the resulting fund tables without aggregating them. Useful to check
  column configuration and spot skipped files before a run.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "d", ".", "Folder holding one .xlsx or .csv file per fund")
	f.StringVar(&c.sheet, "sheet", "", "Sheet name to read inside spreadsheets (first sheet by default)")
	f.StringVar(&c.code, "code", "", "Header of the security code column")
	f.StringVar(&c.weight, "weight", "", "Header of the weight column")
}

func (c *fundsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			cfg.Dir = c.dir
		case "sheet":
			cfg.Sheet = c.sheet
		case "code":
			cfg.CodeColumn = c.code
		case "weight":
			cfg.WeightColumn = c.weight
		}
	})

	tables, report, err := blend.LoadDir(cfg.Dir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading fund tables: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, fr := range report.Files {
		if fr.Skipped() {
			fmt.Fprintf(os.Stderr, "Warning: skipping file: %v\n", fr.Err)
		}
	}
	if len(tables) == 0 {
		fmt.Fprintf(os.Stderr, "Error: %v in %q\n", blend.ErrNoValidTables, cfg.Dir)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.FundsMarkdown(tables))
	return subcommands.ExitSuccess
}
