package valuation

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is an interned symbolic identifier for a unit of account,
// such as "CAD" or "EUR". The zero value is the null currency, a
// distinguished marker for "no currency". Two Currency values denote
// the same currency iff they compare equal.
type Currency struct {
	code string
}

// NewCurrency interns a currency code. The code is not validated here;
// use ValidateCurrency when the code comes from user input.
func NewCurrency(code string) Currency { return Currency{code: code} }

// NullCurrency returns the distinguished "no currency" marker.
func NullCurrency() Currency { return Currency{} }

// IsNull reports whether c is the null currency.
func (c Currency) IsNull() bool { return c.code == "" }

// Name returns the currency code, or "NaN" for the null currency.
func (c Currency) Name() string {
	if c.code == "" {
		return "NaN"
	}
	return c.code
}

func (c Currency) String() string { return c.Name() }

// ValidateCurrency checks that 'code' is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("invalid currency code %q: want a 3-letter code", code)
	}
	if money.GetCurrency(strings.ToUpper(code)) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}
