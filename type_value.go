package valuation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is a monetary amount tagged with a currency. It is an immutable
// value type: every operation returns a new Value.
//
// The amount is a plain 64-bit float and carries no implicit rounding;
// truncation to whole currency units happens only on demand through
// NonDecimal.
type Value struct {
	currency Currency
	amount   float64
}

// V builds a Value from any common numeric type.
func V[T float32 | float64 | int | int32 | int64](amount T, cur Currency) Value {
	return Value{currency: cur, amount: float64(amount)}
}

// Zero returns the zero amount tagged with the null currency.
func Zero() Value { return Value{} }

// Amount returns the raw floating-point amount.
func (v Value) Amount() float64 { return v.amount }

// Currency returns the currency the amount is denominated in.
func (v Value) Currency() Currency { return v.currency }

// Neg returns the value with its sign flipped, same currency.
func (v Value) Neg() Value { return Value{currency: v.currency, amount: -v.amount} }

// Scale multiplies the amount by a scalar, same currency.
func (v Value) Scale(f float64) Value { return Value{currency: v.currency, amount: v.amount * f} }

// NonDecimal truncates the amount toward zero and returns it as whole
// currency units: ceiling for negative amounts, floor otherwise.
func (v Value) NonDecimal() int64 { return int64(v.amount) }

// Add returns v + o. The null currency is weak: it takes on the other
// operand's currency. Adding two distinct non-null currencies requires
// a conversion table; see ConversionTable.Add.
func (v Value) Add(o Value) (Value, error) {
	cur, err := mergeCurrencies(v.currency, o.currency)
	if err != nil {
		return Value{}, err
	}
	return Value{currency: cur, amount: v.amount + o.amount}, nil
}

// mergeCurrencies picks the currency an addition result is tagged with.
func mergeCurrencies(a, b Currency) (Currency, error) {
	switch {
	case a == b, b.IsNull():
		return a, nil
	case a.IsNull():
		return b, nil
	default:
		return Currency{}, fmt.Errorf("cannot add %s to %s: %w", b, a, ErrNoRoute)
	}
}

// Sum folds the values with compensated (Kahan) summation, bounding
// floating-point error growth across many terms. The result is tagged
// with the currency of the last term; mixed-currency input is not
// reconciled here, only pairwise addition converts. An empty sum is
// zero in the null currency.
func Sum(values ...Value) Value {
	var sum, c float64
	cur := NullCurrency()
	for _, v := range values {
		cur = v.currency
		y := v.amount + c
		sum, c = fast2sum(sum, y)
	}
	return Value{currency: cur, amount: sum}
}

// fast2sum returns the rounded sum of a and b together with the
// rounding error lost in that addition (Fast2Sum, Dekker 1971).
func fast2sum(a, b float64) (s, t float64) {
	s = a + b
	z := s - a
	t = b - z
	return s, t
}

// String renders the value as a grouped-thousands integer part, a
// two-digit fractional part truncated (not rounded), and the currency
// name: -338224.91 CAD renders as "-338,224.91CAD".
func (v Value) String() string {
	d := decimal.NewFromFloat(v.amount).Abs()
	units := d.IntPart()
	cents := d.Sub(decimal.NewFromInt(units)).Mul(decimal.NewFromInt(100)).IntPart()

	var sign string
	if v.amount < 0 {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%02d%s", sign, groupThousands(units), cents, v.currency.Name())
}

// groupThousands formats n with a comma every three digits.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
