package cmd

import (
	"fmt"
	"time"

	"github.com/google/subcommands"
)

// Register the subcommands.
func Register(c *subcommands.Commander) {
	c.Register(&assessCmd{}, "valuation")
	c.Register(&statementCmd{}, "valuation")

	c.Register(&convertCmd{}, "currencies")
	c.Register(&ratesCmd{}, "currencies")
}

// DatetimeFormat is the full timestamp format accepted on the command line.
const DatetimeFormat = time.RFC3339

// readDateFormat is a permissive date-only fallback, read as midnight UTC.
const readDateFormat = "2006-01-02"

// parseTime parses a command-line timestamp, accepting a full RFC 3339
// datetime or a bare date.
func parseTime(str string) (time.Time, error) {
	if at, err := time.Parse(DatetimeFormat, str); err == nil {
		return at, nil
	}
	at, err := time.Parse(readDateFormat, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want %q or %q", str, DatetimeFormat, readDateFormat)
	}
	return at, nil
}
