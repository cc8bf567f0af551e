package valuation

import (
	"math"
	"time"
)

// Interest models compounding growth at a fixed rate per period: the
// growth factor over an elapsed span is (1+rate)^(elapsed/period),
// with elapsed and period both measured at nanosecond resolution so
// partial periods compound fractionally. Immutable.
type Interest struct {
	rate   float64
	period time.Duration
}

// NewInterest returns an interest model growing by 'rate' (0.20 for
// 20%) every 'period'.
func NewInterest(rate float64, period time.Duration) Interest {
	return Interest{rate: rate, period: period}
}

// Rate returns the growth rate per period.
func (i Interest) Rate() float64 { return i.rate }

// Period returns the compounding period.
func (i Interest) Period() time.Duration { return i.period }

// Apply compounds the principal from inception to 'at'. An evaluation
// time before inception yields a negative exponent and thus a
// de-compounded result; this is accepted, not special-cased.
func (i Interest) Apply(inception, at time.Time, principal Value) Value {
	periods := float64(at.Sub(inception)) / float64(i.period)
	return principal.Scale(math.Pow(1+i.rate, periods))
}

// InterestOnly returns the realized interest alone: the compounded
// value minus the original principal, currency-preserving.
func (i Interest) InterestOnly(inception, at time.Time, principal Value) Value {
	grown := i.Apply(inception, at, principal)
	return V(grown.Amount()-principal.Amount(), principal.Currency())
}
