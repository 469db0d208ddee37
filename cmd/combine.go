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

// combineCmd holds the flags for the 'combine' subcommand.
type combineCmd struct {
	dir    string
	output string
	sheet  string
	code   string
	weight string
	top    int
	pct    bool
	equal  bool
}

func (*combineCmd) Name() string { return "combine" }
func (*combineCmd) Synopsis() string {
	return "blend all fund holdings files of a folder into one portfolio table"
}
func (*combineCmd) Usage() string {
	return `efw combine [-d <folder>] [-o <file>] [-top <n>] [-pct] [-equal]

  Reads every .xlsx and .csv holdings file of the folder, one per fund,
  blends the per-fund weights under the configured weighting scheme, and
  writes the ranked result as a CSV file. The top rows are echoed to the
  console.

  Files that cannot be read or lack the configured columns are skipped with
  a diagnostic; the run only fails when no usable fund table remains or the
  weighting scheme is invalid.

  Example: efw combine -config etf.toml -d ~/etf_data -o weights.csv
`
}

func (c *combineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "d", ".", "Folder holding one .xlsx or .csv file per fund")
	f.StringVar(&c.output, "o", "", "Output CSV file path")
	f.StringVar(&c.sheet, "sheet", "", "Sheet name to read inside spreadsheets (first sheet by default)")
	f.StringVar(&c.code, "code", "", "Header of the security code column")
	f.StringVar(&c.weight, "weight", "", "Header of the weight column")
	f.IntVar(&c.top, "top", 0, "Number of top rows to display")
	f.BoolVar(&c.pct, "pct", false, "Also emit the total_weight_pct column")
	f.BoolVar(&c.equal, "equal", false, "Force the equal weighting scheme, ignoring configured fund weights")
}

// applyFlags overrides the configuration with the flags explicitly set on
// the command line.
func (c *combineCmd) applyFlags(f *flag.FlagSet, cfg *blend.Config) {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "d":
			cfg.Dir = c.dir
		case "o":
			cfg.Output = c.output
		case "sheet":
			cfg.Sheet = c.sheet
		case "code":
			cfg.CodeColumn = c.code
		case "weight":
			cfg.WeightColumn = c.weight
		case "top":
			cfg.TopN = c.top
		case "pct":
			cfg.Pct = c.pct
		case "equal":
			cfg.Scheme = blend.WeightingScheme{Kind: blend.SchemeEqual}
		}
	})
}

func (c *combineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitUsageError
	}
	c.applyFlags(f, &cfg)

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

	funds := make([]string, 0, len(tables))
	for name := range tables {
		funds = append(funds, name)
	}
	weights, err := cfg.Scheme.Resolve(funds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving fund weights: %v\n", err)
		return subcommands.ExitFailure
	}

	portfolio := blend.Combine(tables, weights)

	out, err := os.Create(cfg.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", cfg.Output, err)
		return subcommands.ExitFailure
	}
	if err := blend.EncodePortfolio(out, portfolio, cfg.Pct); err != nil {
		out.Close()
		os.Remove(cfg.Output) // no partial output
		fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", cfg.Output, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing output file %q: %v\n", cfg.Output, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(report, weights))
	printMarkdown(renderer.TopMarkdown(portfolio, cfg.TopN, cfg.Pct))
	fmt.Printf("Saved %d securities from %d funds to %s\n", len(portfolio.Rows), len(portfolio.Funds), cfg.Output)
	return subcommands.ExitSuccess
}
