package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/valuation"
	"github.com/google/subcommands"
)

// convertCmd holds the flags for the 'convert' subcommand.
type convertCmd struct {
	amount float64
	from   string
	to     string
	factor float64
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies at a given rate" }
func (*convertCmd) Usage() string {
	return `iv convert -amount <amount> -from <code> -to <code> -factor <rate>

  Registers the from→to rate (and its inverse) in a one-shot
  conversion table and prints the converted amount.

Usage Examples:
$ iv convert -amount 600000 -from COP -to CAD -factor 0.00034
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to convert (required)")
	f.StringVar(&c.from, "from", "", "Source currency, 3-letter code (required)")
	f.StringVar(&c.to, "to", "", "Target currency, 3-letter code (required)")
	f.Float64Var(&c.factor, "factor", 0, "Units of the target currency per source unit (required)")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for _, code := range []string{c.from, c.to} {
		if err := valuation.ValidateCurrency(code); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitUsageError
		}
	}
	from := valuation.NewCurrency(strings.ToUpper(c.from))
	to := valuation.NewCurrency(strings.ToUpper(c.to))

	table := valuation.NewConversionTable()
	if err := table.RegisterRate(from, to, c.factor); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	converted, err := table.Convert(valuation.V(c.amount, from), to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(converted)
	return subcommands.ExitSuccess
}
