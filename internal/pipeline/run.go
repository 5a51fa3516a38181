// Package pipeline sequences one watcher run: fetch each source, filter,
// dedup, rank across everything admitted, deliver the digest.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"jobwatch-engine/internal/dedup"
	"jobwatch-engine/internal/domain"
	"jobwatch-engine/internal/notify"
	"jobwatch-engine/internal/rank"
	"jobwatch-engine/internal/scrape"

	"go.uber.org/zap"
)

type Config struct {
	MinSalary     int
	RequireRemote bool
	MaxDigest     int
}

type Runner struct {
	Fetchers []scrape.Fetcher
	Profile  domain.CandidateProfile
	Dedup    *dedup.Deduplicator
	Notifier notify.Notifier
	Cfg      Config
	Log      *zap.Logger

	// Now lets tests pin the digest timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Report summarizes one run.
type Report struct {
	Fetched   int
	Kept      int
	Admitted  int
	Delivered int
}

// RunOnce walks the sources strictly in order, one fetch at a time. A
// broken source degrades coverage, never the run: its error is logged and
// the next source proceeds. Zero survivors is a successful run.
func (r *Runner) RunOnce(ctx context.Context) Report {
	var rep Report
	var admitted []domain.Posting

	for _, f := range r.Fetchers {
		raws, err := f.Fetch(ctx)
		if err != nil {
			r.Log.Warn("source fetch failed, skipping",
				zap.String("source", f.Name()), zap.Error(err))
			continue
		}
		rep.Fetched += len(raws)

		kept := 0
		for _, raw := range raws {
			keep, reason := scrape.Keep(raw, r.Profile.Keywords, r.Cfg.MinSalary, r.Cfg.RequireRemote)
			if !keep {
				r.Log.Debug("posting dropped",
					zap.String("source", f.Name()),
					zap.String("reason", reason),
					zap.String("title", raw.Title))
				continue
			}
			kept++

			p := domain.Normalize(raw)
			if r.Dedup.Admit(ctx, p) {
				admitted = append(admitted, p)
			}
		}
		rep.Kept += kept

		r.Log.Info("source done",
			zap.String("source", f.Name()),
			zap.Int("fetched", len(raws)),
			zap.Int("kept", kept))
	}

	rep.Admitted = len(admitted)
	if rep.Admitted == 0 {
		r.Log.Info("no new postings")
		return rep
	}

	ranked := rank.Rank(admitted, r.Profile)
	if r.Cfg.MaxDigest > 0 && len(ranked) > r.Cfg.MaxDigest {
		ranked = ranked[:r.Cfg.MaxDigest]
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	subject := fmt.Sprintf("Job Digest — %d new jobs — %s",
		len(ranked), now().UTC().Format("2006-01-02 15:04"))

	if err := r.Notifier.Deliver(ctx, subject, ranked); err != nil {
		r.Log.Warn("digest delivery failed", zap.Error(err))
		return rep
	}
	rep.Delivered = len(ranked)

	r.Log.Info("digest delivered", zap.Int("jobs", rep.Delivered))
	return rep
}
