package valuation

import (
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrNoRoute reports that no direct exchange rate is registered for a
// currency pair. The condition will not change without a new
// registration, so it is never retried.
var ErrNoRoute = errors.New("no conversion route")

// ConversionTable is a registry of directed exchange-rate factors
// between currency pairs. Registering source→target at factor f also
// registers target→source at 1/f; both directions become visible to
// readers atomically.
//
// Only directly-registered pairs convert: no multi-hop path-finding is
// attempted, and nothing enforces consistency among chained rates.
//
// A table is safe for concurrent readers; writers serialize against
// readers and other writers.
type ConversionTable struct {
	mu    sync.RWMutex
	rates map[currencyPair]float64
}

type currencyPair struct {
	from, to Currency
}

// NewConversionTable returns an empty conversion table.
func NewConversionTable() *ConversionTable {
	return &ConversionTable{rates: make(map[currencyPair]float64)}
}

// RegisterRate stores the source→target factor and its inverse,
// overwriting any prior entry for the same ordered pair.
func (t *ConversionTable) RegisterRate(source, target Currency, factor float64) error {
	if source.IsNull() || target.IsNull() {
		return errors.New("cannot register a rate for the null currency")
	}
	if source == target {
		return fmt.Errorf("cannot register a rate from %s to itself", source)
	}
	if !(factor > 0) || math.IsInf(factor, 1) {
		return fmt.Errorf("invalid rate %v for %s/%s: want a positive finite factor", factor, source, target)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rates[currencyPair{source, target}] = factor
	t.rates[currencyPair{target, source}] = 1 / factor
	return nil
}

// Rate returns the directly-registered factor for source→target.
func (t *ConversionTable) Rate(source, target Currency) (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	factor, ok := t.rates[currencyPair{source, target}]
	return factor, ok
}

// Convert returns v expressed in the target currency, using the
// directly-registered rate for (v.Currency() → target). Converting to
// the value's own currency is the identity. Returns ErrNoRoute if no
// direct rate exists for the pair.
func (t *ConversionTable) Convert(v Value, target Currency) (Value, error) {
	if v.Currency() == target {
		return v, nil
	}
	factor, ok := t.Rate(v.Currency(), target)
	if !ok {
		return Value{}, fmt.Errorf("converting %s to %s: %w", v.Currency(), target, ErrNoRoute)
	}
	return V(v.Amount()*factor, target), nil
}

// Add returns a + b in a's currency, converting b first when the
// currencies differ. Returns ErrNoRoute if no direct rate is
// registered for the pair.
func (t *ConversionTable) Add(a, b Value) (Value, error) {
	if a.Currency() == b.Currency() || a.Currency().IsNull() || b.Currency().IsNull() {
		return a.Add(b)
	}
	converted, err := t.Convert(b, a.Currency())
	if err != nil {
		return Value{}, err
	}
	return a.Add(converted)
}

// addValues adds b to a, consulting 'rates' when the currencies differ.
// A nil table only supports same-currency (or null-weak) addition.
func addValues(a, b Value, rates *ConversionTable) (Value, error) {
	if rates == nil {
		return a.Add(b)
	}
	return rates.Add(a, b)
}
