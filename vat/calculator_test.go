package vat_test

import (
	"testing"

	"github.com/euvat/euvat/vat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTax_GermanyStandard(t *testing.T) {
	res, err := vat.AddTax(100, "DE")
	require.NoError(t, err)
	assert.Equal(t, 19.0, res.TaxRate)
	assert.InDelta(t, 19.0, res.TaxAmount, 1e-9)
	assert.InDelta(t, 119.0, res.Total, 1e-9)
}

func TestAddTax_LowercaseHungary(t *testing.T) {
	res, err := vat.AddTax(36.95, "hu")
	require.NoError(t, err)
	assert.Equal(t, 27.0, res.TaxRate)
	assert.InDelta(t, 9.9765, res.TaxAmount, 1e-9)
	assert.InDelta(t, 46.9265, res.Total, 1e-9)
}

func TestSubtractTax_SpainReduced(t *testing.T) {
	res, err := vat.SubtractTaxCategory(49, "ES", vat.Reduced)
	require.NoError(t, err)
	assert.Equal(t, 10.0, res.TaxRate)
	assert.InDelta(t, 4.454545, res.TaxAmount, 1e-6)
	assert.InDelta(t, 44.545454, res.NetAmount, 1e-6)
}

func TestSubtractTax_DefaultsToStandard(t *testing.T) {
	res, err := vat.SubtractTax(119, "DE")
	require.NoError(t, err)
	assert.Equal(t, 19.0, res.TaxRate)
	assert.InDelta(t, 100.0, res.NetAmount, 1e-9)
	assert.InDelta(t, 19.0, res.TaxAmount, 1e-9)
}

func TestResolveRate(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		category vat.RateCategory
		want     float64
		wantErr  error
	}{
		{"standard", "DE", vat.Standard, 19, nil},
		{"reduced", "DE", vat.Reduced, 7, nil},
		{"reduced2 present", "BE", vat.Reduced2, 12, nil},
		{"reduced first of two", "BE", vat.Reduced, 6, nil},
		{"super reduced", "FR", vat.SuperReduced, 2.1, nil},
		{"parking", "IE", vat.Parking, 13.5, nil},
		{"lowercase code", "lu", vat.Parking, 14, nil},
		{"super reduced missing", "DE", vat.SuperReduced, 0, vat.ErrRateNotAvailable},
		{"reduced2 with one reduced", "BG", vat.Reduced2, 0, vat.ErrRateNotAvailable},
		{"reduced2 with none", "DK", vat.Reduced2, 0, vat.ErrRateNotAvailable},
		{"reduced with none", "DK", vat.Reduced, 0, vat.ErrRateNotAvailable},
		{"parking missing", "DE", vat.Parking, 0, vat.ErrRateNotAvailable},
		{"unknown country", "US", vat.Standard, 0, vat.ErrUnknownCountry},
		{"unknown country wins over category", "XX", vat.SuperReduced, 0, vat.ErrUnknownCountry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := vat.ResolveRate(tt.code, tt.category)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestResolveRate_UnrecognizedCategoryFallsBackToStandard(t *testing.T) {
	for _, c := range []vat.RateCategory{"", "ZERO", "reduced", vat.ParseRateCategory("bogus")} {
		got, err := vat.ResolveRate("DK", c)
		require.NoError(t, err, "category %q", c)
		assert.Equal(t, 25.0, got)
	}
}

func TestAddTax_ErrorsHaveNoPartialResult(t *testing.T) {
	res, err := vat.AddTaxCategory(100, "DE", vat.SuperReduced)
	assert.ErrorIs(t, err, vat.ErrRateNotAvailable)
	assert.Zero(t, res)

	net, err := vat.SubtractTax(100, "US")
	assert.ErrorIs(t, err, vat.ErrUnknownCountry)
	assert.Zero(t, net)
}

func TestRoundTrip(t *testing.T) {
	amounts := []float64{0, 0.01, 1, 36.95, 49, 100, 1234.56, 999999.99}
	for _, code := range vat.Codes() {
		c, err := vat.GetCountryRates(code)
		require.NoError(t, err)
		for _, cat := range c.Categories() {
			for _, n := range amounts {
				added, err := vat.AddTaxCategory(n, code, cat)
				require.NoError(t, err)
				back, err := vat.SubtractTaxCategory(added.Total, code, cat)
				require.NoError(t, err)
				assert.InDelta(t, n, back.NetAmount, 1e-6, "%s/%s/%v", code, cat, n)
				assert.InDelta(t, added.TaxAmount, back.TaxAmount, 1e-6, "%s/%s/%v", code, cat, n)
			}
		}
	}
}
