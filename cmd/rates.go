package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/etnz/valuation"
	"github.com/google/subcommands"
	md "github.com/nao1215/markdown"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	base string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "fetch and display the latest exchange rates" }
func (*ratesCmd) Usage() string {
	return `iv rates [-base <code>]

  Fetches the latest reference rates against the base currency from
  frankfurter.dev and prints them with their inverse. Responses are
  cached on disk and expire daily.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.base, "base", "EUR", "Base currency, 3-letter code")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	base := strings.ToUpper(c.base)
	quotes, err := valuation.FetchLatestRates(nil, base)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching rates: %v\n", err)
		return subcommands.ExitFailure
	}

	table := valuation.NewConversionTable()
	from := valuation.NewCurrency(base)
	codes := make([]string, 0, len(quotes))
	for code, factor := range quotes {
		if err := table.RegisterRate(from, valuation.NewCurrency(code), factor); err != nil {
			fmt.Fprintf(os.Stderr, "Error registering %s/%s: %v\n", base, code, err)
			return subcommands.ExitFailure
		}
		codes = append(codes, code)
	}
	sort.Strings(codes)

	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		to := valuation.NewCurrency(code)
		factor, _ := table.Rate(from, to)
		inverse, _ := table.Rate(to, from)
		rows = append(rows, []string{code, fmt.Sprintf("%g", factor), fmt.Sprintf("%g", inverse)})
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Latest rates against %s", base))
	doc.Table(md.TableSet{
		Header: []string{"Currency", fmt.Sprintf("Per %s", base), fmt.Sprintf("%s per unit", base)},
		Rows:   rows,
	})
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
