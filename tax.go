package fatura

import (
	"regexp"
	"strings"
)

// DefaultWithheldTax is the withheld tax value recorded when the page
// carries no withholding line.
const DefaultWithheldTax = "0,00"

var (
	// Full legal citation for the 1.20% income tax withholding. The line
	// may carry up to three other amounts (base, rate columns) before the
	// withheld value itself.
	taxCitationRe = regexp.MustCompile(`ret\.\s*art\.\s*64\s*lei\s*9430\s*-\s*1[,.]20%\s*(?:[\d.,]+\s*){0,3}(-?\d[\d.,]*)`)

	// Abbreviated form some layouts print instead of the citation.
	taxShortRe = regexp.MustCompile(`irrf?\s*1[,.]20\s*%\s*r?\$?\s*(-?\d[\d.,]*)`)
)

// ExtractWithheldTax returns the 1.20% withheld income tax amount found in
// the page text, lower-casing it internally. The value is a magnitude, so
// the deduction's minus sign is stripped. Returns DefaultWithheldTax when
// no withholding line matches; the field is never empty.
func ExtractWithheldTax(text string) string {
	t := strings.ToLower(text)

	if m := taxCitationRe.FindStringSubmatch(t); m != nil {
		return strings.ReplaceAll(m[1], "-", "")
	}
	if m := taxShortRe.FindStringSubmatch(t); m != nil {
		return strings.ReplaceAll(m[1], "-", "")
	}
	return DefaultWithheldTax
}
