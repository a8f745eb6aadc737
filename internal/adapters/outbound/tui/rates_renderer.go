package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/euvat/euvat/vat"
)

var (
	columnStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	codeStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg)
	standardStyle = lipgloss.NewStyle().Bold(true).Foreground(success)
)

// RenderCountry formats every rate of a single country.
func RenderCountry(c vat.CountryRate, f Formatter) string {
	var b strings.Builder

	title := headerStyle.Render(c.Name)
	subtitle := dimStyle.Render(c.Code)
	headline := standardStyle.Render(f.Percent(c.Standard)) + "  " + dimStyle.Render("standard")
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + headline))
	b.WriteString("\n\n")

	for _, cat := range vat.Categories {
		value := "-"
		if rate, err := vat.ResolveRate(c.Code, cat); err == nil {
			value = f.Percent(rate)
		}
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(padRight(string(cat), 16)), valueStyle.Render(padLeft(value, 8)))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderRates formats the whole rate table, one row per country in codes order.
func RenderRates(codes []string, all map[string]vat.Rates, f Formatter) string {
	var b strings.Builder

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s %s %s %s %s\n",
		columnStyle.Render(padRight("code", 5)),
		columnStyle.Render(padRight("country", 16)),
		columnStyle.Render(padLeft("super", 7)),
		columnStyle.Render(padLeft("reduced", 14)),
		columnStyle.Render(padLeft("standard", 9)),
		columnStyle.Render(padLeft("parking", 8)),
	)
	b.WriteString("  " + separatorLine + "\n")

	for _, code := range codes {
		r, ok := all[code]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s %s %s %s %s %s\n",
			codeStyle.Render(padRight(code, 5)),
			dimStyle.Render(padRight(r.Name, 16)),
			padLeft(f.optionalPercent(r.SuperReduced), 7),
			padLeft(reducedList(r.Reduced, f), 14),
			standardStyle.Render(padLeft(f.Percent(r.Standard), 9)),
			padLeft(f.optionalPercent(r.Parking), 8),
		)
	}
	b.WriteString("\n")
	return b.String()
}

// RenderStandardRates formats the code → standard rate listing.
func RenderStandardRates(codes []string, rates map[string]float64, f Formatter) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Standard VAT rates") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, code := range codes {
		rate, ok := rates[code]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", codeStyle.Render(padRight(code, 5)), standardStyle.Render(padLeft(f.Percent(rate), 7)))
	}
	b.WriteString("\n")
	return b.String()
}

func reducedList(rates []float64, f Formatter) string {
	if len(rates) == 0 {
		return "-"
	}
	parts := make([]string, len(rates))
	for i, r := range rates {
		parts[i] = f.Percent(r)
	}
	return strings.Join(parts, " / ")
}
