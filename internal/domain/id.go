package domain

import (
	"net/url"
	"sort"
	"strings"

	"jobwatch-engine/internal/salary"
)

// Normalize attaches the salary value and dedup ID to a raw posting.
func Normalize(raw RawPosting) Posting {
	p := Posting{RawPosting: raw}
	p.Salary, p.HasSalary = salary.Parse(raw.SalaryText)
	p.ID = DeriveID(raw.Source, raw.URL, raw.Title)
	return p
}

// DeriveID builds the dedup key for a posting. It must be stable across
// runs for the same (source, url-or-title) pair: URL-based when the posting
// has a link, title-based otherwise.
func DeriveID(source, rawURL, title string) string {
	if u := CanonicalURL(rawURL); u != "" {
		return source + "::" + u
	}
	return source + "::" + strings.TrimSpace(title)
}

// CanonicalURL normalizes a posting link so the same job always yields the
// same ID: lowercased scheme/host, fragment dropped, tracking params
// stripped, query keys encoded deterministically.
func CanonicalURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") ||
			lk == "gclid" || lk == "fbclid" || lk == "msclkid" ||
			lk == "mc_cid" || lk == "mc_eid" ||
			lk == "mkt_tok" {
			q.Del(k)
		}
	}

	for k := range q {
		vals := q[k]
		sort.Strings(vals)
		q[k] = vals
	}
	u.RawQuery = q.Encode()
	return u.String()
}
