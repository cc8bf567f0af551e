package valuation

import (
	"math"
	"time"
)

// CertainLossPercentage reduces a wrapped asset's assessed value by a
// flat cut. Percent is the fraction that survives: wrapping with
// Percent 0.5 halves the assessed value. Decorators implement Valuable
// themselves, so they compose.
type CertainLossPercentage struct {
	Asset   Valuable
	Percent float64
}

func (r CertainLossPercentage) Assess(at time.Time) (Value, error) {
	v, err := r.Asset.Assess(at)
	if err != nil {
		return Value{}, err
	}
	return v.Scale(r.Percent), nil
}

func (r CertainLossPercentage) Currency() Currency { return r.Asset.Currency() }

// LosePercentOverTime continuously decays a wrapped asset's assessed
// value, losing Percent of it every Period starting at Starting.
// Before the start date the inner value passes through unmodified:
// useful for things like student loans that only start accruing once
// school ends, or a car that depreciates from its purchase date.
type LosePercentOverTime struct {
	Asset    Valuable
	Percent  float64
	Period   time.Duration
	Starting time.Time
}

func (r LosePercentOverTime) Assess(at time.Time) (Value, error) {
	v, err := r.Asset.Assess(at)
	if err != nil {
		return Value{}, err
	}
	if at.Before(r.Starting) {
		// Decay has not begun.
		return v, nil
	}
	periods := float64(at.Sub(r.Starting)) / float64(r.Period)
	return v.Scale(math.Pow(1-r.Percent, periods)), nil
}

func (r LosePercentOverTime) Currency() Currency { return r.Asset.Currency() }
