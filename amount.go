package fatura

import "regexp"

// totalChain matches the total the bill asks the customer to pay. Labeled
// forms win over the bare currency fallback, which picks up the first
// amount on the page regardless of what it refers to. The capture keeps
// the original digit grouping and decimal separators verbatim.
var totalChain = []pattern{
	{re: regexp.MustCompile(`total\s+a\s+pagar\s*r?\$?\s*([\d.,]+)`)},
	{re: regexp.MustCompile(`valor\s+total\s*r?\$?\s*([\d.,]+)`)},
	{re: regexp.MustCompile(`total\s+da\s+fatura\s*r?\$?\s*([\d.,]+)`)},
	{re: regexp.MustCompile(`r\$\s*([\d.,]+)`)},
}

// ExtractTotalAmount returns the total amount due found in the normalized
// page text, as printed.
func ExtractTotalAmount(norm string) (string, bool) {
	return firstMatch(norm, totalChain)
}
