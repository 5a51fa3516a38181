// Package scrape defines the fetcher boundary and the posting filter.
// Source-specific selectors live in the subpackages; the pipeline only
// sees RawPostings coming out of a Fetcher.
package scrape

import (
	"context"

	"jobwatch-engine/internal/domain"
)

type Fetcher interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.RawPosting, error)
}
