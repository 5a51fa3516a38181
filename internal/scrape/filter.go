package scrape

import (
	"strings"

	"jobwatch-engine/internal/domain"
	"jobwatch-engine/internal/salary"
)

// Keep decides whether a raw posting survives filtering. Checks run
// cheapest-first and short-circuit; reason names the failed check for
// logging.
func Keep(p domain.RawPosting, keywords map[string]bool, minSalary int, requireRemote bool) (keep bool, reason string) {
	text := strings.ToLower(p.Title + " " + p.Description)

	if !containsAny(text, keywords) {
		return false, "no_keyword_match"
	}

	if requireRemote && !mentionsRemote(p.Description) {
		return false, "not_remote"
	}

	monthly, ok := salary.Parse(p.SalaryText)
	if !ok {
		// Unknown pay fails the minimum check rather than passing it.
		return false, "salary_unknown"
	}
	if monthly < minSalary {
		return false, "salary_below_min"
	}

	return true, ""
}

func containsAny(text string, keywords map[string]bool) bool {
	for k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func mentionsRemote(desc string) bool {
	d := strings.ToLower(desc)
	return strings.Contains(d, "remote") || strings.Contains(d, "work from home")
}
