package vat

import "fmt"

// TaxResult is the breakdown of adding VAT to a net amount.
type TaxResult struct {
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	Total     float64 `json:"total"`
}

// NetResult is the breakdown of removing VAT from a gross amount.
type NetResult struct {
	TaxRate   float64 `json:"tax_rate"`
	TaxAmount float64 `json:"tax_amount"`
	NetAmount float64 `json:"net_amount"`
}

// ResolveRate returns the percentage that applies to category in the given
// country. Unrecognized categories resolve to the standard rate.
func ResolveRate(code string, category RateCategory) (float64, error) {
	country, err := GetCountryRates(code)
	if err != nil {
		return 0, err
	}

	var rate *float64
	switch category {
	case SuperReduced:
		rate = country.SuperReduced
	case Reduced:
		if len(country.Reduced) > 0 {
			rate = &country.Reduced[0]
		}
	case Reduced2:
		if len(country.Reduced) > 1 {
			rate = &country.Reduced[1]
		}
	case Parking:
		rate = country.Parking
	default:
		rate = &country.Standard
	}

	if rate == nil {
		return 0, fmt.Errorf("%w: %s has no %s rate", ErrRateNotAvailable, country.Code, category)
	}
	return *rate, nil
}

// AddTax applies the standard rate of the country to net.
func AddTax(net float64, code string) (TaxResult, error) {
	return AddTaxCategory(net, code, Standard)
}

// AddTaxCategory applies the rate of the given category to net. No rounding
// is performed.
func AddTaxCategory(net float64, code string, category RateCategory) (TaxResult, error) {
	rate, err := ResolveRate(code, category)
	if err != nil {
		return TaxResult{}, err
	}
	tax := net * (rate / 100)
	return TaxResult{TaxRate: rate, TaxAmount: tax, Total: net + tax}, nil
}

// SubtractTax removes the standard rate of the country from gross.
func SubtractTax(gross float64, code string) (NetResult, error) {
	return SubtractTaxCategory(gross, code, Standard)
}

// SubtractTaxCategory removes the rate of the given category from gross. No
// rounding is performed.
func SubtractTaxCategory(gross float64, code string, category RateCategory) (NetResult, error) {
	rate, err := ResolveRate(code, category)
	if err != nil {
		return NetResult{}, err
	}
	net := gross / (1 + rate/100)
	return NetResult{TaxRate: rate, TaxAmount: gross - net, NetAmount: net}, nil
}
