// Package rank orders admitted postings by relevance to the candidate
// profile: TF-IDF vectors over the run's small corpus, cosine similarity
// against the profile vector.
package rank

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"jobwatch-engine/internal/domain"
)

// Rank scores every posting against the profile and returns them ordered by
// score descending, ties broken by input order. Output length equals input
// length; an empty input skips vectorization entirely.
func Rank(postings []domain.Posting, profile domain.CandidateProfile) []domain.RankedPosting {
	if len(postings) == 0 {
		return nil
	}

	// Corpus: profile first, then one document per posting.
	docs := make([][]string, 0, len(postings)+1)
	docs = append(docs, tokenize(profile.Text))
	for _, p := range postings {
		docs = append(docs, tokenize(p.Title+" "+p.Company))
	}

	vecs := vectorize(docs)

	out := make([]domain.RankedPosting, len(postings))
	for i, p := range postings {
		score := cosine(vecs[0], vecs[i+1])
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		out[i] = domain.RankedPosting{
			Posting: p,
			Score:   math.Round(score*1000) / 1000,
		}
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Score > out[b].Score })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// vectorize builds TF-IDF vectors with length-normalized term frequencies
// and smoothed idf so a term present everywhere still carries some weight.
func vectorize(docs [][]string) []map[string]float64 {
	df := make(map[string]int)
	tfs := make([]map[string]float64, len(docs))
	for i, toks := range docs {
		tf := make(map[string]float64)
		for _, t := range toks {
			tf[t]++
		}
		if n := float64(len(toks)); n > 0 {
			for t := range tf {
				tf[t] /= n
			}
		}
		tfs[i] = tf
		for t := range tf {
			df[t]++
		}
	}

	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(1 + n/float64(d))
	}

	vecs := make([]map[string]float64, len(tfs))
	for i, tf := range tfs {
		v := make(map[string]float64, len(tf))
		for t, f := range tf {
			v[t] = f * idf[t]
		}
		vecs[i] = v
	}
	return vecs
}

func cosine(a, b map[string]float64) float64 {
	var dot, na, nb float64
	for t, av := range a {
		na += av * av
		if bv, ok := b[t]; ok {
			dot += av * bv
		}
	}
	for _, bv := range b {
		nb += bv * bv
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// stopWords filters common English words that add noise to similarity.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "new": true,
	"use": true, "using": true, "used": true, "such": true, "per": true,
	"a": true, "an": true, "in": true, "on": true, "at": true, "of": true,
	"to": true, "is": true, "as": true, "by": true, "or": true, "be": true,
}

func tokenize(text string) []string {
	var out []string
	var run []rune
	flush := func() {
		if len(run) >= 2 {
			w := string(run)
			if !stopWords[w] {
				out = append(out, w)
			}
		}
		run = run[:0]
	}
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			run = append(run, r)
		} else {
			flush()
		}
	}
	flush()
	return out
}
