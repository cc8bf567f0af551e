package valuation

import (
	"fmt"
	"sort"
	"time"
)

// delta is a timestamped adjustment to an item's value, typically a
// payment or a draw.
type delta struct {
	at    time.Time
	value Value
}

// Item is a single valuable position on the books: a recorded value,
// an optional compounding-interest model, and a chronological list of
// deltas that alter the base on which subsequent interest compounds.
//
// Items are not safe for concurrent mutation; concurrent read-only
// Assess calls against an unmodified item are.
type Item struct {
	bookValue Value
	interest  *Interest
	inception time.Time

	// children records containment for client use, e.g. hierarchical
	// display. It does not change how a Book aggregates: every entry
	// is summed as an independent line.
	children []ItemKey

	deltas  []delta
	payouts []Payout

	// rates, when set, lets deltas denominated in another currency be
	// converted into the item's currency during assessment.
	rates *ConversionTable
}

// Fixed returns an item holding a constant recorded value.
func Fixed(value Value, inception time.Time) *Item {
	return &Item{bookValue: value, inception: inception}
}

// WithInterest returns an item whose recorded value compounds by
// 'rate' every 'period' starting at inception. A debt is simply a
// negative value.
func WithInterest(value Value, rate float64, period time.Duration, inception time.Time) *Item {
	interest := NewInterest(rate, period)
	return &Item{bookValue: value, interest: &interest, inception: inception}
}

// BookValue returns the recorded value the item was created with.
func (it *Item) BookValue() Value { return it.bookValue }

// Inception returns the time the recorded value was established.
func (it *Item) Inception() time.Time { return it.inception }

// Interest returns the interest model, or false if the item does not
// compound.
func (it *Item) Interest() (Interest, bool) {
	if it.interest == nil {
		return Interest{}, false
	}
	return *it.interest, true
}

// SetRates injects the conversion table consulted when a delta's
// currency differs from the item's. Without one, mixed-currency
// deltas make Assess fail with ErrNoRoute.
func (it *Item) SetRates(rates *ConversionTable) { it.rates = rates }

// AddDelta records a timestamped adjustment. The delta list is kept
// sorted ascending by timestamp; the relative order of deltas sharing
// a timestamp is undefined.
func (it *Item) AddDelta(at time.Time, value Value) {
	it.deltas = append(it.deltas, delta{at: at, value: value})
	sort.Slice(it.deltas, func(i, j int) bool { return it.deltas[i].at.Before(it.deltas[j].at) })
}

// AddChild registers a contained item by handle. No cycle check is
// performed here; Book.AddChild is the validated entry point.
func (it *Item) AddChild(key ItemKey) { it.children = append(it.children, key) }

// Children returns the handles of contained items, in registration order.
func (it *Item) Children() []ItemKey {
	out := make([]ItemKey, len(it.children))
	copy(out, it.children)
	return out
}

// AddPayout records a scheduled disbursement. Payouts are declarative
// only: Assess does not evaluate them yet.
func (it *Item) AddPayout(p Payout) { it.payouts = append(it.payouts, p) }

// Payouts returns the recorded payout schedule.
func (it *Item) Payouts() []Payout {
	out := make([]Payout, len(it.payouts))
	copy(out, it.payouts)
	return out
}

// Assess computes the item's value as of 'at'.
//
// Without an interest model the recorded value is returned plus the
// sum of all deltas, including deltas dated after 'at': with no growth
// process, deltas are treated as already-realized adjustments.
//
// With an interest model the deltas are replayed in timestamp order:
// the running value compounds from its anchor to each delta dated at
// or before 'at', the delta amount is added, and the anchor advances.
// A delta dated exactly at 'at' is included, matching as-of
// end-of-day settlement. The final running value then compounds from
// its anchor to 'at'.
func (it *Item) Assess(at time.Time) (Value, error) {
	if len(it.deltas) == 0 {
		if it.interest == nil {
			return it.bookValue, nil
		}
		return it.interest.Apply(it.inception, at, it.bookValue), nil
	}

	if it.interest == nil {
		adjustments := make([]Value, 0, len(it.deltas))
		for _, d := range it.deltas {
			adjustments = append(adjustments, d.value)
		}
		return addValues(it.bookValue, Sum(adjustments...), it.rates)
	}

	book, anchor := it.bookValue, it.inception
	for _, d := range it.deltas {
		if d.at.After(at) {
			// Deltas are sorted, none of the remaining ones apply.
			break
		}
		grown := it.interest.Apply(anchor, d.at, book)
		var err error
		book, err = addValues(grown, d.value, it.rates)
		if err != nil {
			return Value{}, fmt.Errorf("applying delta at %s: %w", d.at.Format(time.RFC3339), err)
		}
		anchor = d.at
	}
	return it.interest.Apply(anchor, at, book), nil
}

// Currency returns the currency of the recorded value.
func (it *Item) Currency() Currency { return it.bookValue.Currency() }
