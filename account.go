package fatura

import "regexp"

var (
	// Installation/contract printed as a slash-separated pair. This is the
	// most specific structural cue on the page and always wins.
	accountPairRe = regexp.MustCompile(`\b(\d{8,12})\s*/\s*(\d{8,13})\b`)

	// Labeled fallbacks, in decreasing order of label specificity. The
	// captured run may contain embedded spaces the layout inserts into
	// long numbers.
	accountLabelChain = []pattern{
		{re: regexp.MustCompile(`instala[çc][aã]o[^0-9]{0,10}(\d[\d\s]{5,15})`), clean: stripNonDigits},
		{re: regexp.MustCompile(`\buc\b[^0-9]{0,10}(\d[\d\s]{5,15})`), clean: stripNonDigits},
		{re: regexp.MustCompile(`unidade\s+consumidora[^0-9]{0,10}(\d[\d\s]{5,15})`), clean: stripNonDigits},
		{re: regexp.MustCompile(`contrato[^0-9]{0,10}(\d[\d\s]{5,15})`), clean: stripNonDigits},
	}

	accountTokenRe = regexp.MustCompile(`\b\d{8,12}\b`)
	nonDigitRe     = regexp.MustCompile(`\D`)
)

func stripNonDigits(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// ExtractAccountID returns the installation (account) number found in the
// normalized page text. Real bills interleave the installation and contract
// numbers without reliable labels, so the paired-number form is tried first,
// then the labeled forms, then the longest free-standing 8-12 digit token.
// Ties on the fallback length are broken by first occurrence.
func ExtractAccountID(norm string) (string, bool) {
	if m := accountPairRe.FindStringSubmatch(norm); m != nil {
		return m[1], true
	}

	if v, ok := firstMatch(norm, accountLabelChain); ok {
		return v, true
	}

	var best string
	for _, tok := range accountTokenRe.FindAllString(norm, -1) {
		if len(tok) > len(best) {
			best = tok
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
