package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/valuation/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion; returns immediately unless invoked by the shell.
	(&complete.Command{
		Sub: map[string]*complete.Command{
			"assess": {Flags: map[string]complete.Predictor{
				"amount":    predict.Something,
				"currency":  predict.Something,
				"inception": predict.Something,
				"at":        predict.Something,
			}},
			"statement": {Flags: map[string]complete.Predictor{
				"item": predict.Something,
				"at":   predict.Something,
			}},
			"convert": {Flags: map[string]complete.Predictor{
				"amount": predict.Something,
				"from":   predict.Something,
				"to":     predict.Something,
				"factor": predict.Something,
			}},
			"rates": {Flags: map[string]complete.Predictor{
				"base": predict.Something,
			}},
		},
	}).Complete("iv")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
