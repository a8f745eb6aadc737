package tui_test

import (
	"testing"
	"time"

	"github.com/euvat/euvat/internal/adapters/outbound/tui"
	"github.com/euvat/euvat/internal/domain"
	"github.com/euvat/euvat/vat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func english() tui.Formatter { return tui.NewFormatter(language.English, 2) }

func sampleAdd() domain.Calculation {
	return domain.FromTaxResult("DE", vat.Standard, 100, vat.TaxResult{TaxRate: 19, TaxAmount: 19, Total: 119})
}

func TestFormatter_Amount(t *testing.T) {
	f := english()
	assert.Equal(t, "119.00", f.Amount(119))
	assert.Equal(t, "46.93", f.Amount(46.9265))
	assert.Equal(t, "0.00", f.Amount(0))
}

func TestFormatter_Precision(t *testing.T) {
	f := tui.NewFormatter(language.English, 4)
	assert.Equal(t, "9.9765", f.Amount(9.9765))
}

func TestFormatter_Percent(t *testing.T) {
	f := english()
	assert.Equal(t, "19%", f.Percent(19))
	assert.Equal(t, "13.5%", f.Percent(13.5))
	assert.Equal(t, "2.1%", f.Percent(2.1))
}

func TestFormatter_GermanLocale(t *testing.T) {
	f := tui.NewFormatter(language.German, 2)
	assert.Equal(t, "119,00", f.Amount(119))
	assert.Equal(t, "5,5%", f.Percent(5.5))
}

func TestRenderCalculation_Add(t *testing.T) {
	out := tui.RenderCalculation(sampleAdd(), english())
	assert.Contains(t, out, "euvat")
	assert.Contains(t, out, "Add VAT")
	assert.Contains(t, out, "Germany (DE)")
	assert.Contains(t, out, "STANDARD")
	assert.Contains(t, out, "19%")
	assert.Contains(t, out, "100.00")
	assert.Contains(t, out, "19.00")
	assert.Contains(t, out, "119.00")
}

func TestRenderCalculation_Subtract(t *testing.T) {
	res, err := vat.SubtractTaxCategory(49, "ES", vat.Reduced)
	require.NoError(t, err)
	calc := domain.FromNetResult("ES", vat.Reduced, 49, res)

	out := tui.RenderCalculation(calc, english())
	assert.Contains(t, out, "Remove VAT")
	assert.Contains(t, out, "Spain (ES)")
	assert.Contains(t, out, "44.55")
	assert.Contains(t, out, "4.45")
	assert.Contains(t, out, "49.00")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := tui.RenderHistory(nil, english())
	assert.Contains(t, out, "No calculation history found.")
}

func TestRenderHistory_Entries(t *testing.T) {
	entries := []domain.CalculationEntry{
		{ID: "1", Timestamp: time.Date(2026, 2, 25, 10, 0, 0, 0, time.UTC), Calculation: sampleAdd()},
	}
	out := tui.RenderHistory(entries, english())
	assert.Contains(t, out, "Calculation History")
	assert.Contains(t, out, "2026-02-25 10:00")
	assert.Contains(t, out, "DE")
	assert.Contains(t, out, "119.00")
}

func TestRenderCountry(t *testing.T) {
	be, err := vat.GetCountryRates("BE")
	require.NoError(t, err)

	out := tui.RenderCountry(be, english())
	assert.Contains(t, out, "Belgium")
	assert.Contains(t, out, "21%")
	assert.Contains(t, out, "6%")
	assert.Contains(t, out, "12%")
	assert.Contains(t, out, "SUPER_REDUCED")
	assert.Contains(t, out, "-")
}

func TestRenderRates_AllCountries(t *testing.T) {
	out := tui.RenderRates(vat.Codes(), vat.GetAll(), english())
	for _, code := range vat.Codes() {
		assert.Contains(t, out, code)
	}
	assert.Contains(t, out, "United Kingdom")
	assert.Contains(t, out, "5.5% / 10%")
}

func TestRenderStandardRates(t *testing.T) {
	out := tui.RenderStandardRates(vat.Codes(), vat.GetAllStandardRates(), english())
	assert.Contains(t, out, "Standard VAT rates")
	assert.Contains(t, out, "HU")
	assert.Contains(t, out, "27%")
}
