package valuation

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestConversionRoundTrip(t *testing.T) {
	cop := NewCurrency("COP")
	table := NewConversionTable()
	if err := table.RegisterRate(cad, cop, 2911.98); err != nil {
		t.Fatalf("RegisterRate() failed: %v", err)
	}

	bob := V(28.0, cad)
	alice := V(600000.0, cop)

	total, err := table.Add(bob, alice)
	if err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if math.Abs(total.Amount()-(206.0+28.0)) >= 0.1 {
		t.Errorf("Add() = %v, want about 234.0", total.Amount())
	}
	if total.Currency() != cad {
		t.Errorf("Add() currency = %v, want %v", total.Currency(), cad)
	}

	// The inverse direction was registered atomically.
	back, err := table.Convert(bob, cop)
	if err != nil {
		t.Fatalf("Convert() failed: %v", err)
	}
	if math.Abs(back.Amount()-28.0*2911.98) > 1e-6 {
		t.Errorf("Convert() = %v, want %v", back.Amount(), 28.0*2911.98)
	}
}

func TestConvertIdentity(t *testing.T) {
	table := NewConversionTable()
	v := V(42.0, cad)
	got, err := table.Convert(v, cad)
	if err != nil {
		t.Fatalf("Convert() to own currency failed: %v", err)
	}
	if got != v {
		t.Errorf("Convert() = %v, want %v", got, v)
	}
}

func TestConvertNoRoute(t *testing.T) {
	table := NewConversionTable()
	_, err := table.Convert(V(1.0, cad), NewCurrency("JPY"))
	if !errors.Is(err, ErrNoRoute) {
		t.Errorf("Convert() error = %v, want ErrNoRoute", err)
	}

	// No multi-hop path-finding: CAD→USD and USD→JPY do not imply CAD→JPY.
	usd := NewCurrency("USD")
	if err := table.RegisterRate(cad, usd, 0.73); err != nil {
		t.Fatal(err)
	}
	if err := table.RegisterRate(usd, NewCurrency("JPY"), 147.0); err != nil {
		t.Fatal(err)
	}
	if _, err := table.Convert(V(1.0, cad), NewCurrency("JPY")); !errors.Is(err, ErrNoRoute) {
		t.Errorf("Convert() error = %v, want ErrNoRoute for an unregistered pair", err)
	}
}

func TestRegisterRateValidation(t *testing.T) {
	table := NewConversionTable()
	usd := NewCurrency("USD")

	testCases := []struct {
		name   string
		source Currency
		target Currency
		factor float64
	}{
		{"zero factor", cad, usd, 0},
		{"negative factor", cad, usd, -1.5},
		{"NaN factor", cad, usd, math.NaN()},
		{"infinite factor", cad, usd, math.Inf(1)},
		{"self pair", cad, cad, 2.0},
		{"null source", NullCurrency(), usd, 1.0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := table.RegisterRate(tc.source, tc.target, tc.factor); err == nil {
				t.Error("RegisterRate() want error, got nil")
			}
		})
	}
}

func TestRegisterRateOverwrite(t *testing.T) {
	table := NewConversionTable()
	usd := NewCurrency("USD")

	if err := table.RegisterRate(cad, usd, 0.70); err != nil {
		t.Fatal(err)
	}
	if err := table.RegisterRate(cad, usd, 0.75); err != nil {
		t.Fatal(err)
	}

	if factor, ok := table.Rate(cad, usd); !ok || factor != 0.75 {
		t.Errorf("Rate(cad, usd) = %v, %v, want 0.75", factor, ok)
	}
	if factor, ok := table.Rate(usd, cad); !ok || factor != 1/0.75 {
		t.Errorf("Rate(usd, cad) = %v, %v, want %v", factor, ok, 1/0.75)
	}
}

// TestConcurrentAccess exercises the reader/writer discipline; run
// with -race to check it.
func TestConcurrentAccess(t *testing.T) {
	table := NewConversionTable()
	usd := NewCurrency("USD")
	if err := table.RegisterRate(cad, usd, 0.73); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, err := table.Convert(V(1.0, cad), usd); err != nil {
					t.Errorf("Convert() failed: %v", err)
					return
				}
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := table.RegisterRate(cad, usd, 0.73); err != nil {
					t.Errorf("RegisterRate() failed: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
