package rank

import (
	"fmt"
	"math/rand"
	"testing"

	"jobwatch-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkPosting(title, company string) domain.Posting {
	return domain.Posting{
		RawPosting: domain.RawPosting{Title: title, Company: company},
	}
}

func TestRank_EmptyInput(t *testing.T) {
	out := Rank(nil, domain.CandidateProfile{Text: "frontend developer"})
	assert.Empty(t, out)
}

func TestRank_ExactMatchScoresStrictlyHighest(t *testing.T) {
	profile := domain.CandidateProfile{Text: "Frontend Developer Acme"}
	postings := []domain.Posting{
		mkPosting("Plumber", "Pipeworks"),
		mkPosting("Frontend Developer", "Acme"),
		mkPosting("Chef", "Bistro"),
	}

	out := Rank(postings, profile)
	require.Len(t, out, 3)

	assert.Equal(t, "Frontend Developer", out[0].Title)
	assert.InDelta(t, 1.0, out[0].Score, 0.001)
	assert.Greater(t, out[0].Score, out[1].Score, "exact match is strictly highest")
}

func TestRank_ScoresBoundedAndLengthPreserved(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := []string{
		"frontend", "react", "css", "html", "designer", "golang", "remote",
		"senior", "junior", "engineer", "intern", "acme", "globex", "initech",
	}
	randomText := func(n int) string {
		s := ""
		for i := 0; i < n; i++ {
			s += words[rng.Intn(len(words))] + " "
		}
		return s
	}

	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(8)
		postings := make([]domain.Posting, n)
		for i := range postings {
			postings[i] = mkPosting(randomText(1+rng.Intn(5)), randomText(1))
		}
		profile := domain.CandidateProfile{Text: randomText(10)}

		out := Rank(postings, profile)
		require.Len(t, out, n)
		for i, r := range out {
			assert.GreaterOrEqual(t, r.Score, 0.0)
			assert.LessOrEqual(t, r.Score, 1.0)
			assert.Equal(t, i+1, r.Rank)
			if i > 0 {
				assert.LessOrEqual(t, r.Score, out[i-1].Score, "non-increasing order")
			}
		}
	}
}

func TestRank_Deterministic(t *testing.T) {
	profile := domain.CandidateProfile{Text: "frontend developer html css react"}
	postings := []domain.Posting{
		mkPosting("Frontend Developer", "Acme"),
		mkPosting("React Engineer", "Globex"),
		mkPosting("HTML CSS Intern", "Initech"),
	}

	first := Rank(postings, profile)
	for i := 0; i < 5; i++ {
		again := Rank(postings, profile)
		require.Equal(t, first, again)
	}
}

func TestRank_StableTieBreakOnInputOrder(t *testing.T) {
	profile := domain.CandidateProfile{Text: "quantum basketweaving"}
	var postings []domain.Posting
	for i := 0; i < 5; i++ {
		// No token overlap with the profile: every posting scores zero.
		postings = append(postings, mkPosting(fmt.Sprintf("role number%d", i), "acme"))
	}

	out := Rank(postings, profile)
	require.Len(t, out, 5)
	for i, r := range out {
		assert.Equal(t, 0.0, r.Score)
		assert.Equal(t, postings[i].Title, r.Title, "zero-score ties keep input order")
	}
}

func TestRank_MoreKeywordOverlapScoresHigher(t *testing.T) {
	profile := domain.CandidateProfile{Text: "frontend react css"}
	postings := []domain.Posting{
		mkPosting("warehouse operative", "logistics"),
		mkPosting("frontend react css developer", "acme"),
		mkPosting("frontend developer", "acme"),
	}

	out := Rank(postings, profile)
	assert.Equal(t, "frontend react css developer", out[0].Title)
	assert.Equal(t, "warehouse operative", out[2].Title)
}

func TestRank_RoundedToThreeDecimals(t *testing.T) {
	profile := domain.CandidateProfile{Text: "frontend developer react"}
	out := Rank([]domain.Posting{mkPosting("frontend engineer", "acme")}, profile)
	require.Len(t, out, 1)
	rounded := float64(int(out[0].Score*1000+0.5)) / 1000
	assert.Equal(t, rounded, out[0].Score)
}
