// Package dedup admits each posting identifier at most once, backed by the
// persistent seen ledger.
package dedup

import (
	"context"
	"time"

	"jobwatch-engine/internal/domain"

	"go.uber.org/zap"
)

// Store is the slice of the ledger the deduplicator needs.
type Store interface {
	Exists(ctx context.Context, id string) (bool, error)
	Insert(ctx context.Context, rec domain.SeenRecord) error
}

type Deduplicator struct {
	store Store
	log   *zap.Logger
	now   func() time.Time
	seen  map[string]bool // ids handled this run
}

func New(store Store, log *zap.Logger) *Deduplicator {
	return &Deduplicator{
		store: store,
		log:   log,
		now:   time.Now,
		seen:  make(map[string]bool),
	}
}

// Admit reports whether the posting is new, recording it in the ledger when
// it is. Any store failure counts as "already seen": a flaky ledger must
// never produce duplicate digests, only delayed ones.
func (d *Deduplicator) Admit(ctx context.Context, p domain.Posting) bool {
	if d.seen[p.ID] {
		return false
	}
	d.seen[p.ID] = true

	exists, err := d.store.Exists(ctx, p.ID)
	if err != nil {
		d.log.Warn("seen lookup failed, treating as seen",
			zap.String("id", p.ID), zap.Error(err))
		return false
	}
	if exists {
		return false
	}

	rec := domain.SeenRecord{
		ID:        p.ID,
		Source:    p.Source,
		Title:     p.Title,
		Company:   p.Company,
		URL:       p.URL,
		FirstSeen: d.now().UTC(),
	}
	if err := d.store.Insert(ctx, rec); err != nil {
		d.log.Warn("ledger insert failed, treating as seen",
			zap.String("id", p.ID), zap.Error(err))
		return false
	}
	return true
}
