package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/valuation"
	"github.com/etnz/valuation/renderer"
	"github.com/google/subcommands"
)

// statementCmd holds the flags for the 'statement' subcommand.
type statementCmd struct {
	items itemFlags
	at    string
}

func (*statementCmd) Name() string     { return "statement" }
func (*statementCmd) Synopsis() string { return "value a set of instruments and print a statement" }
func (*statementCmd) Usage() string {
	return `iv statement -item <amount>;<currency>;<inception>[;<rate>[;<period-days>]] ... [-at <time>]

  Builds a book from the given instruments, values every entry at the
  requested time, and prints a rendered statement with the summed
  total.

Usage Examples:
# Two debts and a house.
$ iv statement \
    -item "-10000;CAD;2008-01-01T01:01:01Z;0.20" \
    -item "-100;CAD;2008-01-01T01:01:01Z;0.02" \
    -item "150000;CAD;2000-01-01T01:01:01Z;0.04" \
    -at 2025-01-28T11:07:00Z
`
}

func (c *statementCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.items, "item", "Instrument as <amount>;<currency>;<inception>[;<rate>[;<period-days>]], repeatable")
	f.StringVar(&c.at, "at", time.Now().UTC().Format(DatetimeFormat), "Time to value the book at")
}

func (c *statementCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.items) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one -item is required.")
		return subcommands.ExitUsageError
	}
	at, err := parseTime(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}

	book := valuation.NewBook()
	for _, item := range c.items {
		book.Add(item)
	}

	s, err := renderer.NewStatement(book, at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error assessing the book: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StatementMarkdown(s))
	return subcommands.ExitSuccess
}

// itemFlags collects repeated -item flags.
type itemFlags []*valuation.Item

func (i *itemFlags) String() string { return fmt.Sprintf("%d items", len(*i)) }

func (i *itemFlags) Set(s string) error {
	parts := strings.Split(s, ";")
	if len(parts) < 3 || len(parts) > 5 {
		return fmt.Errorf("invalid item %q: want <amount>;<currency>;<inception>[;<rate>[;<period-days>]]", s)
	}

	amount, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return fmt.Errorf("invalid item amount %q: %w", parts[0], err)
	}
	code := strings.ToUpper(parts[1])
	if err := valuation.ValidateCurrency(code); err != nil {
		return fmt.Errorf("invalid item %q: %w", s, err)
	}
	inception, err := parseTime(parts[2])
	if err != nil {
		return fmt.Errorf("invalid item inception %q: %w", parts[2], err)
	}

	value := valuation.V(amount, valuation.NewCurrency(code))
	if len(parts) == 3 {
		*i = append(*i, valuation.Fixed(value, inception))
		return nil
	}

	rate, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return fmt.Errorf("invalid item rate %q: %w", parts[3], err)
	}
	periodDays := 365
	if len(parts) == 5 {
		if periodDays, err = strconv.Atoi(parts[4]); err != nil {
			return fmt.Errorf("invalid item period %q: %w", parts[4], err)
		}
	}
	*i = append(*i, valuation.WithInterest(value, rate, days(periodDays), inception))
	return nil
}
