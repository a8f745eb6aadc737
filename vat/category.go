package vat

import (
	"strings"
	"unicode"

	"github.com/fatih/camelcase"
)

// RateCategory selects which of a country's rates applies.
type RateCategory string

const (
	SuperReduced RateCategory = "SUPER_REDUCED"
	Reduced      RateCategory = "REDUCED"
	Reduced2     RateCategory = "REDUCED2"
	Standard     RateCategory = "STANDARD"
	Parking      RateCategory = "PARKING"
)

// Categories enumerates every known rate category.
var Categories = []RateCategory{SuperReduced, Reduced, Reduced2, Standard, Parking}

// Known reports whether c is one of the five defined categories.
func (c RateCategory) Known() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

func (c RateCategory) String() string { return string(c) }

// ParseRateCategory normalizes user input such as "super-reduced",
// "superReduced" or "reduced_2" to its canonical category. Empty input parses
// to Standard. Input that matches no category is returned upper-cased and
// resolves like Standard.
func ParseRateCategory(s string) RateCategory {
	s = strings.TrimSpace(s)
	if s == "" {
		return Standard
	}

	var words []string
	for _, part := range strings.FieldsFunc(s, isSeparator) {
		for _, w := range camelcase.Split(part) {
			// digits belong to the preceding word: REDUCED2, not REDUCED_2
			if len(words) > 0 && isDigits(w) {
				words[len(words)-1] += w
				continue
			}
			words = append(words, w)
		}
	}
	return RateCategory(strings.ToUpper(strings.Join(words, "_")))
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func isDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
