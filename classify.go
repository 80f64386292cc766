package fatura

import (
	"regexp"
	"strings"
)

var (
	ucTokenRe  = regexp.MustCompile(`\buc\b`)
	currencyRe = regexp.MustCompile(`r\$\s*\d`)
)

// IsInvoicePage reports whether a page's raw text looks like one complete
// utility bill. It scores three independent cues and accepts at two or more:
// an installation/consumer-unit reference, a due-date label and a currency
// amount. Callers treat a rejected page as "skip", never as an error.
func IsInvoicePage(text string) bool {
	t := strings.ToLower(text)

	score := 0
	if strings.Contains(t, "instala") || ucTokenRe.MatchString(t) {
		score++
	}
	if strings.Contains(t, "vencimento") {
		score++
	}
	if currencyRe.MatchString(t) {
		score++
	}
	return score >= 2
}
