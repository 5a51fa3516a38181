// Package notify delivers the ranked digest. Rendering is deliberately
// minimal; the pipeline only cares about delivered-or-not.
package notify

import (
	"context"

	"jobwatch-engine/internal/domain"
)

type Notifier interface {
	Deliver(ctx context.Context, subject string, items []domain.RankedPosting) error
}
