package fatura

import "regexp"

// pattern is one entry in an ordered extraction chain.
type pattern struct {
	re *regexp.Regexp

	// clean post-processes the captured group before it is returned.
	clean func(string) string
}

// firstMatch evaluates the chain in order and returns the cleaned first
// capture group of the first pattern that matches.
func firstMatch(text string, chain []pattern) (string, bool) {
	for _, p := range chain {
		m := p.re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		v := m[1]
		if p.clean != nil {
			v = p.clean(v)
		}
		return v, true
	}
	return "", false
}
