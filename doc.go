// Package valuation is a time-aware financial valuation engine: given
// an instrument's recorded value, an optional compounding-interest
// schedule, a chronological list of value-changing deltas, and an
// optional risk overlay, it computes the instrument's monetary value
// as of any requested point in time, in a declared currency, and
// aggregates many instruments into a portfolio total.
//
// The core building blocks:
//   - Value: an amount tagged with a Currency, with numerically-stable
//     compensated summation across many terms.
//   - ConversionTable: an injected registry of directed exchange-rate
//     factors that makes cross-currency addition well-defined.
//   - Interest: pure compounding growth, (1+rate)^(elapsed/period).
//   - Item: the leaf unit, replaying deltas against compounding
//     interest.
//   - Book: an arena of items keyed by stable handles, summed with
//     compensated summation.
//   - Risk decorators: CertainLossPercentage and LosePercentOverTime
//     wrap any Valuable and compose.
//
// Valuation is pure computation with no I/O: the only shared mutable
// state is the ConversionTable, which is safe for concurrent readers.
// This package serves as the foundational logic for the `iv` command-
// line tool.
package valuation
