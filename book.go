package valuation

import (
	"errors"
	"fmt"
	"iter"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownItem reports a handle that does not resolve to an entry in
// the book. It is a construction-time usage error, not a transient.
var ErrUnknownItem = errors.New("unknown item key")

// ItemKey is a stable, opaque handle to an item resident in a Book.
// Keys are never reused for a different item and remain valid across
// later insertions.
type ItemKey struct {
	id uuid.UUID
}

func (k ItemKey) String() string { return k.id.String() }

// IsZero reports whether k is the zero handle, which never resolves.
func (k ItemKey) IsZero() bool { return k.id == uuid.Nil }

// Book is an arena of items keyed by stable handles, aggregating many
// instruments into one summed valuation.
//
// A book is not safe for concurrent mutation; concurrent read-only
// Assess calls against an unmodified book are.
type Book struct {
	entries map[ItemKey]*Item
	order   []ItemKey
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{entries: make(map[ItemKey]*Item)}
}

// Add inserts an item and returns its fresh handle.
func (b *Book) Add(item *Item) ItemKey {
	key := ItemKey{id: uuid.New()}
	b.entries[key] = item
	b.order = append(b.order, key)
	return key
}

// AddChild inserts an item and registers it as a child of the parent
// entry. Returns ErrUnknownItem if the parent handle does not resolve.
//
// The child remains an independent line in the book's aggregation:
// its value is summed on its own, not rolled up into the parent, so a
// child whose worth is already reflected in the parent's recorded
// value double-counts.
func (b *Book) AddChild(item *Item, parent ItemKey) (ItemKey, error) {
	parentItem, ok := b.entries[parent]
	if !ok {
		return ItemKey{}, fmt.Errorf("adding child to %s: %w", parent, ErrUnknownItem)
	}
	key := b.Add(item)
	parentItem.AddChild(key)
	return key, nil
}

// Get resolves a handle to its item.
func (b *Book) Get(key ItemKey) (*Item, bool) {
	item, ok := b.entries[key]
	return item, ok
}

// Len returns the number of entries in the book.
func (b *Book) Len() int { return len(b.order) }

// Items yields every entry in insertion order.
func (b *Book) Items() iter.Seq2[ItemKey, *Item] {
	return func(yield func(ItemKey, *Item) bool) {
		for _, key := range b.order {
			if !yield(key, b.entries[key]) {
				return
			}
		}
	}
}

// Roots returns the handles never registered as a child of another
// entry, in insertion order. Useful for hierarchical display or for
// callers that want to aggregate containment exclusively.
func (b *Book) Roots() []ItemKey {
	linked := make(map[ItemKey]bool)
	for _, item := range b.entries {
		for _, child := range item.children {
			linked[child] = true
		}
	}
	var roots []ItemKey
	for _, key := range b.order {
		if !linked[key] {
			roots = append(roots, key)
		}
	}
	return roots
}

// Assess sums the assessed value of every entry, top-level and child
// alike, with compensated summation.
func (b *Book) Assess(at time.Time) (Value, error) {
	values := make([]Value, 0, len(b.order))
	for _, key := range b.order {
		v, err := b.entries[key].Assess(at)
		if err != nil {
			return Value{}, fmt.Errorf("assessing %s: %w", key, err)
		}
		values = append(values, v)
	}
	return Sum(values...), nil
}

// Currency returns the currency of the first-inserted entry. It is
// meaningless for an empty book (the null currency is returned) or a
// mixed-currency one; callers must treat those as distinguished cases.
func (b *Book) Currency() Currency {
	if len(b.order) == 0 {
		return NullCurrency()
	}
	return b.entries[b.order[0]].Currency()
}
