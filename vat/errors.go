package vat

import "errors"

var (
	// ErrUnknownCountry is returned when a country code is not in the rate table.
	ErrUnknownCountry = errors.New("unknown country")
	// ErrRateNotAvailable is returned when a country has no rate for the requested category.
	ErrRateNotAvailable = errors.New("rate not available")
)
