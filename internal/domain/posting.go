package domain

import "time"

// RawPosting is what a source fetcher hands the pipeline: free text with no
// guarantees. Any field except Source may be empty.
type RawPosting struct {
	Source      string
	Title       string
	Company     string
	Description string
	SalaryText  string
	URL         string
}

// Posting is a RawPosting after salary normalization and ID derivation.
// Salary is a monthly INR figure; HasSalary distinguishes a parsed zero
// from "could not parse".
type Posting struct {
	RawPosting
	Salary    int
	HasSalary bool
	ID        string
}

// RankedPosting carries the relevance score assigned by the ranker and the
// 1-based position in the digest.
type RankedPosting struct {
	Posting
	Score float64
	Rank  int
}

// SeenRecord is one row of the append-only dedup ledger. Written once when
// a posting is first admitted, never updated.
type SeenRecord struct {
	ID        string
	Source    string
	Title     string
	Company   string
	URL       string
	FirstSeen time.Time
}

// CandidateProfile is built once per run and immutable afterward.
type CandidateProfile struct {
	Text     string
	Keywords map[string]bool
}
