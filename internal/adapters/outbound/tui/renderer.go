package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/euvat/euvat/internal/domain"
	"github.com/euvat/euvat/vat"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(52)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	labelStyle    = lipgloss.NewStyle().Foreground(dim)
	valueStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(success)
	taxStyle      = lipgloss.NewStyle().Foreground(warning)
	addStyle      = lipgloss.NewStyle().Foreground(success)
	subtractStyle = lipgloss.NewStyle().Foreground(danger)
	separatorLine = faintStyle.Render(strings.Repeat("─", 48))
)

// RenderCalculation formats an add or subtract result for terminal output.
func RenderCalculation(calc domain.Calculation, f Formatter) string {
	var b strings.Builder

	verb := "Add VAT"
	if calc.Operation == domain.OperationSubtract {
		verb = "Remove VAT"
	}

	title := headerStyle.Render("euvat")
	subtitle := dimStyle.Render(fmt.Sprintf("%s · %s · %s %s",
		verb, countryLabel(calc.Country), calc.Category, f.Percent(calc.TaxRate)))
	headline := resultStyle.Render(f.Amount(calc.Result()))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + headline))
	b.WriteString("\n\n")

	rows := []struct {
		label string
		value string
		style lipgloss.Style
	}{
		{"net", f.Amount(calc.Net), valueStyle},
		{"VAT " + f.Percent(calc.TaxRate), f.Amount(calc.TaxAmount), taxStyle},
		{"gross", f.Amount(calc.Gross), valueStyle},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "  %s %s\n", labelStyle.Render(padRight(r.label, 14)), r.style.Render(padLeft(r.value, 18)))
	}
	b.WriteString("\n")
	return b.String()
}

// RenderHistory formats the calculation history for terminal output.
func RenderHistory(entries []domain.CalculationEntry, f Formatter) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No calculation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Calculation History") + "\n")
	b.WriteString("  " + separatorLine + "\n\n")

	for _, e := range entries {
		op := addStyle.Render("+")
		if e.Operation == domain.OperationSubtract {
			op = subtractStyle.Render("−")
		}
		fmt.Fprintf(&b, "  %s  %s %s  %s  %s → %s\n",
			dimStyle.Render(e.Timestamp.Format("2006-01-02 15:04")),
			op,
			titleStyle.Render(e.Country),
			faintStyle.Render(padRight(fmt.Sprintf("%s %s", e.Category, f.Percent(e.TaxRate)), 20)),
			padLeft(f.Amount(e.Amount), 14),
			valueStyle.Render(f.Amount(e.Result())),
		)
	}

	return b.String()
}

func countryLabel(code string) string {
	c, err := vat.GetCountryRates(code)
	if err != nil {
		return code
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Code)
}

func padRight(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func padLeft(s string, width int) string {
	n := lipgloss.Width(s)
	if n >= width {
		return s
	}
	return strings.Repeat(" ", width-n) + s
}
