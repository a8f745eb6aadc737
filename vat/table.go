package vat

import (
	"fmt"
	"strings"
)

// GetCountryRates returns the rates of the country identified by code.
// The lookup is case-insensitive; the returned record carries the upper-case code.
func GetCountryRates(code string) (CountryRate, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	i, ok := index[normalized]
	if !ok {
		return CountryRate{}, fmt.Errorf("%w: %q", ErrUnknownCountry, code)
	}
	row := table[i]
	return CountryRate{Code: row.Code, Rates: row.Rates.clone()}, nil
}

// GetAllStandardRates maps every supported country code to its standard rate.
func GetAllStandardRates() map[string]float64 {
	out := make(map[string]float64, len(table))
	for _, row := range table {
		out[row.Code] = row.Standard
	}
	return out
}

// GetAll returns the whole table keyed by country code.
func GetAll() map[string]Rates {
	out := make(map[string]Rates, len(table))
	for _, row := range table {
		out[row.Code] = row.Rates.clone()
	}
	return out
}

// Codes returns the supported country codes in table order.
func Codes() []string {
	codes := make([]string, len(table))
	for i, row := range table {
		codes[i] = row.Code
	}
	return codes
}

// IsSupported reports whether code (any case) is in the table.
func IsSupported(code string) bool {
	_, ok := index[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}
