package valuation

import "time"

// Payout describes a scheduled disbursement attached to an item: a
// one-time payment, a fixed recurring payment, or interest-bearing
// variants of either. Payouts are recorded but not yet factored into
// assessment; they are a declared extension point.
type Payout interface {
	isPayout()
}

// OneTimePayout is a single disbursement of a fixed amount.
type OneTimePayout struct {
	Amount Value
	At     time.Time
}

// InterestOneTimePayout is a single disbursement of a principal
// compounded up to the payout time.
type InterestOneTimePayout struct {
	Principal Value
	At        time.Time
	Interest  Interest
}

// FixedRecurringPayout disburses a fixed amount every Frequency
// starting at Start.
type FixedRecurringPayout struct {
	Amount    Value
	Start     time.Time
	Frequency time.Duration
}

// InterestRecurringPayout disburses a compounded principal every
// Frequency starting at Start.
type InterestRecurringPayout struct {
	Principal Value
	Start     time.Time
	Frequency time.Duration
	Interest  Interest
}

func (OneTimePayout) isPayout()           {}
func (InterestOneTimePayout) isPayout()   {}
func (FixedRecurringPayout) isPayout()    {}
func (InterestRecurringPayout) isPayout() {}
