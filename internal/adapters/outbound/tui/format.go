package tui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts and percentages for a display locale. Rounding
// happens here only; calculations keep full precision.
type Formatter struct {
	printer   *message.Printer
	precision int
}

// NewFormatter creates a Formatter showing amounts with precision decimals.
func NewFormatter(tag language.Tag, precision int) Formatter {
	return Formatter{printer: message.NewPrinter(tag), precision: precision}
}

// Amount formats a monetary amount with the configured number of decimals.
func (f Formatter) Amount(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.Scale(f.precision)))
}

// Percent formats a rate such as 13.5 as "13.5%".
func (f Formatter) Percent(v float64) string {
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2))) + "%"
}

func (f Formatter) optionalPercent(v *float64) string {
	if v == nil {
		return "-"
	}
	return f.Percent(*v)
}
