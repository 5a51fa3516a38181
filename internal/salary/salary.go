// Package salary turns free-text salary and stipend strings into a single
// monthly INR figure.
package salary

import (
	"regexp"
	"strconv"
	"strings"
)

// A strategy pairs a pattern with its converter. Strategies are tried in
// order; the first match wins.
type strategy struct {
	re      *regexp.Regexp
	convert func(m []string) int
}

var strategies = []strategy{
	// ₹25000
	{regexp.MustCompile(`₹\s*([0-9]+)`), func(m []string) int {
		n, _ := strconv.Atoi(m[1])
		return n
	}},
	// 25k
	{regexp.MustCompile(`([0-9]+)\s*k`), func(m []string) int {
		n, _ := strconv.Atoi(m[1])
		return n * 1000
	}},
	// 2.4 LPA: annual lakh, truncated to a monthly figure
	{regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*lpa`), func(m []string) int {
		lakhs, _ := strconv.ParseFloat(m[1], 64)
		return int(lakhs * 100000 / 12)
	}},
}

// Parse extracts a monthly INR value from a free-text salary field.
// ok is false when nothing matched; a parsed zero is still ok=true.
func Parse(s string) (monthly int, ok bool) {
	s = strings.ToLower(strings.ReplaceAll(s, ",", ""))
	if strings.TrimSpace(s) == "" {
		return 0, false
	}
	for _, st := range strategies {
		if m := st.re.FindStringSubmatch(s); m != nil {
			return st.convert(m), true
		}
	}
	return 0, false
}
