package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/blend/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for the efw command; it returns
// immediately when not invoked by a shell completion hook.
func completion() {
	sourceFlags := map[string]complete.Predictor{
		"d":      predict.Dirs("*"),
		"sheet":  predict.Something,
		"code":   predict.Something,
		"weight": predict.Something,
	}
	combineFlags := map[string]complete.Predictor{
		"o":     predict.Files("*.csv"),
		"top":   predict.Something,
		"pct":   predict.Nothing,
		"equal": predict.Nothing,
	}
	for k, v := range sourceFlags {
		combineFlags[k] = v
	}
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
		},
		Sub: map[string]*complete.Command{
			"combine": {Flags: combineFlags},
			"funds":   {Flags: sourceFlags},
		},
	}
	c.Complete("efw")
}
