package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"jobwatch-engine/internal/domain"
)

func (d *DB) Migrate(ctx context.Context) error {
	_, err := d.Pool.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS seen_jobs (
  id TEXT PRIMARY KEY,
  source TEXT NOT NULL,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  url TEXT NOT NULL,
  first_seen TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_seen_jobs_source ON seen_jobs(source);
`)
	if err != nil {
		return fmt.Errorf("migrate seen_jobs: %w", err)
	}
	return nil
}

func (d *DB) Exists(ctx context.Context, id string) (bool, error) {
	var one int
	err := d.Pool.QueryRowContext(ctx,
		`SELECT 1 FROM seen_jobs WHERE id = ? LIMIT 1;`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("seen lookup %q: %w", id, err)
	}
	return true, nil
}

// Insert records first admission of an identifier. Re-inserting an existing
// id is a no-op; the ledger is never updated in place.
func (d *DB) Insert(ctx context.Context, rec domain.SeenRecord) error {
	if rec.FirstSeen.IsZero() {
		rec.FirstSeen = time.Now().UTC()
	}
	_, err := d.Pool.ExecContext(ctx, `
INSERT OR IGNORE INTO seen_jobs(id, source, title, company, url, first_seen)
VALUES(?,?,?,?,?,?);`,
		rec.ID, rec.Source, rec.Title, rec.Company, rec.URL,
		rec.FirstSeen.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("ledger insert %q: %w", rec.ID, err)
	}
	return nil
}
