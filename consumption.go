package fatura

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// Bills that split consumption across billed components print one
	// "EN CONSUMIDA"/"EN FORNECIDA" line per component; all of them make
	// up the page's consumption and must be summed.
	consumptionComponentRe = regexp.MustCompile(`EN (CONSUMIDA|FORNECIDA)\s+(?:FAT\s+)?TU\s+KWH\s+([\d.,]+)`)

	// Single-line layouts label the figure directly.
	consumptionSingleRe = regexp.MustCompile(`(?:CONSUMO|USO SIST\. DISTR\.) .*?KWH\s+([\d.,]+)`)
)

// ExtractConsumption returns the page's total energy consumption in kWh,
// formatted with two decimals and a comma separator. It matches against the
// raw page text upper-cased, not the normalized text: the component lines
// are column-aligned and rely on the original line structure. A component
// whose digits do not parse as a number is skipped rather than failing the
// page.
func ExtractConsumption(raw string) (string, bool) {
	t := strings.ToUpper(raw)

	var values []float64
	for _, m := range consumptionComponentRe.FindAllStringSubmatch(t, -1) {
		v, err := parseBillNumber(m[2])
		if err != nil {
			continue
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		if m := consumptionSingleRe.FindStringSubmatch(t); m != nil {
			if v, err := parseBillNumber(m[1]); err == nil {
				values = append(values, v)
			}
		}
	}

	if len(values) == 0 {
		return "", false
	}

	var total float64
	for _, v := range values {
		total += v
	}
	return strings.Replace(strconv.FormatFloat(total, 'f', 2, 64), ".", ",", 1), true
}

// parseBillNumber parses a Brazilian-formatted number: dot as thousands
// separator, comma as decimal separator.
func parseBillNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
