package fatura

import (
	"regexp"
	"strings"
)

// billingPeriodWindow bounds how far past the account identifier the
// period token is searched for. The reference month is printed near the
// installation number; a narrow window keeps unrelated date-like tokens
// elsewhere on the page out of reach.
const billingPeriodWindow = 500

var (
	fullDateRe = regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`)
	refMonthRe = regexp.MustCompile(`\b(0[1-9]|1[0-2])/[0-9]{4}\b`)
)

// ExtractBillingPeriod returns the MM/YYYY billing reference found in the
// normalized page text near the given account identifier. Full DD/MM/YYYY
// dates are stripped from the window first so that a due date's day/month
// pair is never mistaken for the reference month. When the account
// identifier is absent from the text, the whole text is searched.
func ExtractBillingPeriod(norm, accountID string) (string, bool) {
	area := norm
	if pos := strings.Index(norm, accountID); pos != -1 {
		end := pos + billingPeriodWindow
		if end > len(norm) {
			end = len(norm)
		}
		area = norm[pos:end]
	}

	area = fullDateRe.ReplaceAllString(area, "")

	m := refMonthRe.FindString(area)
	if m == "" {
		return "", false
	}
	return m, true
}
