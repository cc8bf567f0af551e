package valuation

import (
	"fmt"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "base": "EUR",
	    "date": "2026-08-21",
	    "rates": {
	        "CAD": 1.6102,
	        "USD": 1.1683
	    }
	}
*/
const frankfurterLatest = "https://api.frankfurter.dev/v1/latest?base=%s"

// FetchLatestRates queries the frankfurter.dev reference-rate feed for
// the latest quotes against 'base' and returns them keyed by currency
// code. A nil client defaults to one whose disk cache expires daily.
func FetchLatestRates(client *http.Client, base string) (map[string]float64, error) {
	if err := ValidateCurrency(base); err != nil {
		return nil, err
	}
	if client == nil {
		client = daily()
	}
	addr := fmt.Sprintf(frankfurterLatest, base)
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", base, err)
	}
	return extractRates(jobj)
}

// extractRates pulls the quote map out of a decoded rate document.
func extractRates(jobj any) (map[string]float64, error) {
	path := "$.rates"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error parsing rates: %q %w", path, err)
	}
	quotes, ok := jval.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error parsing rates: %q %s %v", path, "not an object", jval)
	}
	rates := make(map[string]float64, len(quotes))
	for code, jrate := range quotes {
		rate, ok := jrate.(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing rate %q: %s %v", code, "not a float", jrate)
		}
		rates[code] = rate
	}
	return rates, nil
}

// UpdateRates fetches the latest quotes against 'base' and registers
// each pair (and its inverse) into the table, overwriting prior
// entries. Responses are cached on disk with a daily expiry.
func UpdateRates(table *ConversionTable, base string) error {
	quotes, err := FetchLatestRates(nil, base)
	if err != nil {
		return err
	}
	from := NewCurrency(base)
	for code, factor := range quotes {
		if err := table.RegisterRate(from, NewCurrency(code), factor); err != nil {
			return fmt.Errorf("registering %s/%s: %w", base, code, err)
		}
	}
	return nil
}
