// Package profile builds the candidate profile the pipeline matches
// postings against: the resume text plus a derived keyword set.
package profile

import (
	"os"
	"strings"
	"unicode"
)

// DefaultVocabulary is the controlled set of role-relevant terms a profile
// token must hit to become a filter keyword.
var DefaultVocabulary = []string{
	"html", "css", "javascript", "typescript", "frontend", "react",
	"vue", "angular", "svelte", "responsive", "design", "designer",
	"developer", "web", "figma", "accessibility", "tailwind", "sass",
	"bootstrap", "ui", "ux",
}

// FallbackKeywords keeps downstream filtering from degenerating to
// "nothing matches" when the profile shares no tokens with the vocabulary.
var FallbackKeywords = []string{"frontend", "html", "css", "design"}

// DefaultText stands in for the resume when no profile file is readable.
const DefaultText = "Frontend developer and web designer. Experienced with " +
	"HTML, CSS and JavaScript, responsive design, accessibility and modern " +
	"UI frameworks such as React. Comfortable turning design mockups into " +
	"clean, maintainable frontend code."

// Load reads the profile text from path. A missing or unreadable file is
// not an error: the built-in default profile is used instead.
func Load(path string) (text string, fromFile bool) {
	if path == "" {
		return DefaultText, false
	}
	b, err := os.ReadFile(path)
	if err != nil || strings.TrimSpace(string(b)) == "" {
		return DefaultText, false
	}
	return string(b), true
}

// Keywords tokenizes profile text into alphabetic runs of length >= 3,
// lowercases them and intersects with the vocabulary (nil means
// DefaultVocabulary). An empty intersection yields FallbackKeywords.
func Keywords(text string, vocab []string) map[string]bool {
	if len(vocab) == 0 {
		vocab = DefaultVocabulary
	}
	allowed := make(map[string]bool, len(vocab))
	for _, v := range vocab {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			allowed[v] = true
		}
	}

	out := make(map[string]bool)
	for _, tok := range tokens(text) {
		if allowed[tok] {
			out[tok] = true
		}
	}
	if len(out) == 0 {
		for _, k := range FallbackKeywords {
			out[k] = true
		}
	}
	return out
}

func tokens(text string) []string {
	var out []string
	var run []rune
	flush := func() {
		if len(run) >= 3 {
			out = append(out, string(run))
		}
		run = run[:0]
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) {
			run = append(run, r)
		} else {
			flush()
		}
	}
	flush()
	return out
}
