package fatura

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Normalize lower-cases text and collapses every run of whitespace,
// including newlines, to a single space. The extractors match against
// normalized text so that line breaks inside a label never break a pattern.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return whitespaceRe.ReplaceAllString(strings.ToLower(text), " ")
}
