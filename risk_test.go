package valuation

import (
	"testing"
	"time"
)

func TestCertainLossPercentage(t *testing.T) {
	now := time.Now()
	main := WithInterest(V(10.0, cad), 0.20, 30*24*time.Hour, now)

	plain, err := main.Assess(now)
	if err != nil {
		t.Fatalf("Assess() failed: %v", err)
	}
	if got := plain.NonDecimal(); got != 10 {
		t.Errorf("Assess() = %d, want 10", got)
	}

	risky := CertainLossPercentage{Asset: main, Percent: 0.5}
	halved, err := risky.Assess(now)
	if err != nil {
		t.Fatalf("Assess() failed: %v", err)
	}
	// Percent is the fraction that survives: exactly half remains.
	if halved.Amount() != plain.Amount()*0.5 {
		t.Errorf("Assess() = %v, want exactly half of %v", halved.Amount(), plain.Amount())
	}
	if risky.Currency() != cad {
		t.Errorf("Currency() = %v, want %v", risky.Currency(), cad)
	}
}

// Checks that no decay is applied before the start date.
//
// This is useful for things like student loans that only start
// accruing once school is out.
func TestNoDecayBeforeStart(t *testing.T) {
	decayStart := time.Date(2002, time.January, 1, 0, 0, 0, 0, time.UTC)

	// A family car that devalues about 10% a year.
	familyCar := LosePercentOverTime{
		Asset:    Fixed(V(50000.0, cad), decayStart),
		Percent:  0.10,
		Period:   365 * 24 * time.Hour,
		Starting: decayStart,
	}

	got, err := familyCar.Assess(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Assess() failed: %v", err)
	}
	if got.NonDecimal() != 50000 {
		t.Errorf("Assess() before the start date = %d, want the unmodified 50000", got.NonDecimal())
	}
}

func TestLosePercentOverTime(t *testing.T) {
	// The purchase date of the car and when we bring it in for inspection.
	purchaseDate := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	inspectDate := time.Date(2004, time.January, 1, 0, 0, 0, 0, time.UTC)

	familyCar := LosePercentOverTime{
		Asset:    Fixed(V(50000.0, cad), purchaseDate),
		Percent:  0.10,
		Period:   365 * 24 * time.Hour,
		Starting: purchaseDate,
	}

	// Should have devalued to $32,795. Don't forget that 2000 is a leap
	// year, which is taken into account.
	got, err := familyCar.Assess(inspectDate)
	if err != nil {
		t.Fatalf("Assess() failed: %v", err)
	}
	if got.NonDecimal() != 32795 {
		t.Errorf("Assess() = %d, want 32795", got.NonDecimal())
	}
}

func TestDecayStrictlyDecreases(t *testing.T) {
	start := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	asset := LosePercentOverTime{
		Asset:    Fixed(V(1000.0, cad), start),
		Percent:  0.25,
		Period:   365 * 24 * time.Hour,
		Starting: start,
	}

	previous := 1000.0 + 1
	for months := 0; months <= 36; months += 6 {
		got, err := asset.Assess(start.AddDate(0, months, 0))
		if err != nil {
			t.Fatalf("Assess() failed: %v", err)
		}
		if got.Amount() >= previous {
			t.Errorf("Assess() after %d months = %v, want strictly below %v", months, got.Amount(), previous)
		}
		previous = got.Amount()
	}
}

// Risk decorators wrap any Valuable, including each other.
func TestRiskComposition(t *testing.T) {
	now := time.Now()
	inner := Fixed(V(1000.0, cad), now)

	quartered := CertainLossPercentage{
		Asset:   CertainLossPercentage{Asset: inner, Percent: 0.5},
		Percent: 0.5,
	}

	got, err := quartered.Assess(now)
	if err != nil {
		t.Fatalf("Assess() failed: %v", err)
	}
	if got.Amount() != 250.0 {
		t.Errorf("Assess() = %v, want 250", got.Amount())
	}
}

// A risk decorator also composes over a whole book.
func TestRiskOverBook(t *testing.T) {
	inception := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	book := NewBook()
	book.Add(Fixed(V(600.0, cad), inception))
	book.Add(Fixed(V(400.0, cad), inception))

	hedged := CertainLossPercentage{Asset: book, Percent: 0.9}
	got, err := hedged.Assess(inception)
	if err != nil {
		t.Fatalf("Assess() failed: %v", err)
	}
	if got.Amount() != 900.0 {
		t.Errorf("Assess() = %v, want 900", got.Amount())
	}
}
