package valuation

import (
	"encoding/json"
	"testing"
)

func TestExtractRates(t *testing.T) {
	doc := `{
		"base": "EUR",
		"date": "2026-08-21",
		"rates": {
			"CAD": 1.6102,
			"USD": 1.1683,
			"JPY": 172.53
		}
	}`
	var jobj any
	if err := json.Unmarshal([]byte(doc), &jobj); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}

	rates, err := extractRates(jobj)
	if err != nil {
		t.Fatalf("extractRates() failed: %v", err)
	}
	if len(rates) != 3 {
		t.Fatalf("extractRates() = %d quotes, want 3", len(rates))
	}
	if rates["CAD"] != 1.6102 {
		t.Errorf("extractRates()[CAD] = %v, want 1.6102", rates["CAD"])
	}
}

func TestExtractRatesMalformed(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"missing rates", `{"base": "EUR"}`},
		{"rates not an object", `{"rates": [1.61, 1.17]}`},
		{"quote not a number", `{"rates": {"CAD": "1.6102"}}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var jobj any
			if err := json.Unmarshal([]byte(tc.doc), &jobj); err != nil {
				t.Fatalf("unmarshal fixture: %v", err)
			}
			if _, err := extractRates(jobj); err == nil {
				t.Error("extractRates() want error, got nil")
			}
		})
	}
}

func TestFetchLatestRatesRejectsBadBase(t *testing.T) {
	if _, err := FetchLatestRates(nil, "NOPE"); err == nil {
		t.Error("FetchLatestRates() with an unknown base: want error, got nil")
	}
}
