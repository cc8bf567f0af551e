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
	"github.com/google/subcommands"
)

// assessCmd holds the flags for the 'assess' subcommand.
type assessCmd struct {
	amount     float64
	currency   string
	inception  string
	at         string
	rate       float64
	periodDays int
	deltas     deltaFlags
	retain     float64
	decay      float64
	decayDays  int
	decayStart string
}

func (*assessCmd) Name() string     { return "assess" }
func (*assessCmd) Synopsis() string { return "value a single instrument as of a point in time" }
func (*assessCmd) Usage() string {
	return `iv assess -amount <amount> -currency <code> -inception <time> [-rate <rate> -period <days>] [-delta <time>=<amount>]... [-at <time>]

  Values an instrument at the requested time. A negative amount is a
  debt. With -rate, the amount compounds by that rate every -period
  days from -inception; each -delta posts a payment or draw that
  changes the base on which later interest compounds.

  A risk overlay can reduce the result: -retain keeps only that
  fraction of the value; -decay loses that fraction per -decay-period
  days starting at -decay-start.

Usage Examples:
# A 15,000 CAD credit card debt at 20% per year, valued today.
$ iv assess -amount=-15000 -currency=CAD -rate=0.20 -inception=2008-01-01T01:01:01Z

# The same card with a 1,000 payment posted a month in.
$ iv assess -amount=-15000 -currency=CAD -rate=0.20 -inception=2008-01-01T01:01:01Z \
    -delta 2008-02-01T01:01:01Z=1000 -at 2015-01-01
`
}

func (c *assessCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Recorded amount; negative for a debt (required)")
	f.StringVar(&c.currency, "currency", "CAD", "Currency of the amount, 3-letter code")
	f.StringVar(&c.inception, "inception", "", "Time the recorded amount was established (required)")
	f.StringVar(&c.at, "at", time.Now().UTC().Format(DatetimeFormat), "Time to value the instrument at")
	f.Float64Var(&c.rate, "rate", 0, "Compounding rate per period, e.g. 0.20 for 20%")
	f.IntVar(&c.periodDays, "period", 365, "Compounding period in days")
	f.Var(&c.deltas, "delta", "Adjustment as <time>=<amount>, repeatable")
	f.Float64Var(&c.retain, "retain", 1, "Fraction of the value that survives a flat risk cut")
	f.Float64Var(&c.decay, "decay", 0, "Fraction of the value lost per decay period")
	f.IntVar(&c.decayDays, "decay-period", 365, "Decay period in days")
	f.StringVar(&c.decayStart, "decay-start", "", "Time decay starts; defaults to the inception")
}

func (c *assessCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.inception == "" {
		fmt.Fprintln(os.Stderr, "Error: -inception is required.")
		return subcommands.ExitUsageError
	}
	if err := valuation.ValidateCurrency(c.currency); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	inception, err := parseTime(c.inception)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing inception: %v\n", err)
		return subcommands.ExitUsageError
	}
	at, err := parseTime(c.at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -at: %v\n", err)
		return subcommands.ExitUsageError
	}

	cur := valuation.NewCurrency(strings.ToUpper(c.currency))
	book := valuation.V(c.amount, cur)

	var item *valuation.Item
	if c.rate != 0 {
		item = valuation.WithInterest(book, c.rate, days(c.periodDays), inception)
	} else {
		item = valuation.Fixed(book, inception)
	}
	for _, d := range c.deltas {
		item.AddDelta(d.at, valuation.V(d.amount, cur))
	}

	var entity valuation.Valuable = item
	if c.retain != 1 {
		entity = valuation.CertainLossPercentage{Asset: entity, Percent: c.retain}
	}
	if c.decay != 0 {
		start := inception
		if c.decayStart != "" {
			if start, err = parseTime(c.decayStart); err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing -decay-start: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		entity = valuation.LosePercentOverTime{
			Asset:    entity,
			Percent:  c.decay,
			Period:   days(c.decayDays),
			Starting: start,
		}
	}

	value, err := entity.Assess(at)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error assessing: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(value)
	return subcommands.ExitSuccess
}

func days(n int) time.Duration { return time.Duration(n) * 24 * time.Hour }

// deltaPoint is one parsed -delta flag.
type deltaPoint struct {
	at     time.Time
	amount float64
}

// deltaFlags collects repeated -delta flags of the form <time>=<amount>.
type deltaFlags []deltaPoint

func (d *deltaFlags) String() string {
	parts := make([]string, 0, len(*d))
	for _, p := range *d {
		parts = append(parts, fmt.Sprintf("%s=%v", p.at.Format(DatetimeFormat), p.amount))
	}
	return strings.Join(parts, ",")
}

func (d *deltaFlags) Set(s string) error {
	when, amount, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid delta %q: want <time>=<amount>", s)
	}
	at, err := parseTime(when)
	if err != nil {
		return fmt.Errorf("invalid delta %q: %w", s, err)
	}
	value, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return fmt.Errorf("invalid delta amount %q: %w", amount, err)
	}
	*d = append(*d, deltaPoint{at: at, amount: value})
	return nil
}
