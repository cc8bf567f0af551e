package valuation

import "time"

// Valuable is the capability shared by every entity with a monetary
// worth: items, books, and risk decorators all implement it, so they
// compose freely.
type Valuable interface {
	// Assess computes the entity's value as of the given time.
	// Valuation is a pure, repeatable function of recorded state and
	// the requested timestamp; the error path surfaces missing
	// conversion routes between currencies.
	Assess(at time.Time) (Value, error)

	// Currency reports the entity's primary currency.
	Currency() Currency
}

var (
	_ Valuable = (*Item)(nil)
	_ Valuable = (*Book)(nil)
	_ Valuable = CertainLossPercentage{}
	_ Valuable = LosePercentOverTime{}
)
