// Command watcher runs one pass of the job pipeline: fetch every enabled
// source, filter, dedup against the seen ledger, rank, email the digest.
// Scheduling lives outside (cron, GitHub Actions); the process exits when
// the run ends.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"jobwatch-engine/internal/config"
	"jobwatch-engine/internal/dedup"
	"jobwatch-engine/internal/domain"
	"jobwatch-engine/internal/logger"
	"jobwatch-engine/internal/notify"
	"jobwatch-engine/internal/pipeline"
	"jobwatch-engine/internal/profile"
	"jobwatch-engine/internal/scrape"
	"jobwatch-engine/internal/scrape/emailalert"
	"jobwatch-engine/internal/scrape/indeed"
	"jobwatch-engine/internal/scrape/internshala"
	"jobwatch-engine/internal/scrape/naukri"
	"jobwatch-engine/internal/scrape/util"
	"jobwatch-engine/internal/scrape/wellfound"
	"jobwatch-engine/internal/secrets"
	"jobwatch-engine/internal/store"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

func main() {
	cfgPath := flag.String("config", "config.yml", "path to the YAML config")
	jsonLogs := flag.Bool("json-logs", false, "emit json logs")
	debug := flag.Bool("debug", false, "log per-posting filter decisions")
	timeout := flag.Duration("timeout", 10*time.Minute, "hard deadline for the whole run")
	flag.Parse()

	if err := run(*cfgPath, *jsonLogs, *debug, *timeout); err != nil {
		fmt.Fprintln(os.Stderr, "watcher:", err)
		os.Exit(1)
	}
}

func run(cfgPath string, jsonLogs, debug bool, timeout time.Duration) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config %s: %w", cfgPath, err)
	}
	if cfg.Log.JSON {
		jsonLogs = true
	}
	if cfg.Log.Debug {
		debug = true
	}

	log, err := logger.New(jsonLogs, debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err := os.MkdirAll(cfg.App.DataDir, 0o755); err != nil {
		return fmt.Errorf("data dir: %w", err)
	}

	// One run owns the ledger at a time. Scheduled invocations can overlap
	// when a run stalls; the late one bows out instead of racing the db.
	lock := flock.New(filepath.Join(cfg.App.DataDir, "watcher.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("run lock: %w", err)
	}
	if !locked {
		log.Info("another run holds the lock, exiting")
		return nil
	}
	defer func() { _ = lock.Unlock() }()

	db, err := store.Open(filepath.Join(cfg.App.DataDir, "jobs_seen.db"))
	if err != nil {
		return fmt.Errorf("open seen db: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	text, fromFile := profile.Load(cfg.App.ProfilePath)
	if !fromFile && cfg.App.ProfilePath != "" {
		log.Warn("profile unreadable, using built-in default",
			zap.String("path", cfg.App.ProfilePath))
	}
	prof := domain.CandidateProfile{
		Text:     text,
		Keywords: profile.Keywords(text, cfg.Filters.Vocabulary),
	}

	runner := &pipeline.Runner{
		Fetchers: buildFetchers(cfg, log),
		Profile:  prof,
		Dedup:    dedup.New(db, log),
		Notifier: buildNotifier(cfg, log),
		Cfg: pipeline.Config{
			MinSalary:     cfg.Filters.MinMonthlySalary,
			RequireRemote: cfg.Filters.RequireRemote,
			MaxDigest:     cfg.Digest.MaxItems,
		},
		Log: log,
	}

	rep := runner.RunOnce(ctx)
	log.Info("run complete",
		zap.Int("fetched", rep.Fetched),
		zap.Int("kept", rep.Kept),
		zap.Int("admitted", rep.Admitted),
		zap.Int("delivered", rep.Delivered))
	return nil
}

func buildFetchers(cfg config.Config, log *zap.Logger) []scrape.Fetcher {
	limiter := util.NewHostLimiter(1.0, 2)

	var fetchers []scrape.Fetcher
	if cfg.Sources.Naukri.Enabled {
		fetchers = append(fetchers, naukri.New(naukri.Config{
			Query:    cfg.Search.Query,
			Location: cfg.Search.Location,
		}, limiter))
	}
	if cfg.Sources.Internshala.Enabled {
		fetchers = append(fetchers, internshala.New(internshala.Config{
			Query: cfg.Search.Query,
		}, limiter))
	}
	if cfg.Sources.Indeed.Enabled {
		fetchers = append(fetchers, indeed.New(indeed.Config{
			Query:    cfg.Search.Query,
			Location: cfg.Search.Location,
		}, limiter))
	}
	if cfg.Sources.Wellfound.Enabled {
		fetchers = append(fetchers, wellfound.New(wellfound.Config{
			Query: cfg.Search.Query,
		}, limiter))
	}
	if ea := cfg.Sources.EmailAlerts; ea.Enabled {
		pw, err := secrets.Get(secrets.IMAPAccount(ea.Username), "IMAP_PASS")
		if err != nil {
			log.Warn("email alerts enabled but no imap password, source skipped",
				zap.String("username", ea.Username))
		} else {
			fetchers = append(fetchers, emailalert.New(emailalert.Config{
				Addr:        ea.IMAPAddr,
				Username:    ea.Username,
				Password:    pw,
				Mailbox:     ea.Mailbox,
				MaxMessages: ea.MaxMessages,
			}))
		}
	}
	return fetchers
}

func buildNotifier(cfg config.Config, log *zap.Logger) notify.Notifier {
	pw, err := secrets.Get(secrets.SMTPAccount(cfg.SMTP.Username), "EMAIL_PASS")
	if err != nil {
		log.Warn("smtp password not found, digests will be skipped",
			zap.String("username", cfg.SMTP.Username))
	}
	recipient := cfg.Digest.Recipient
	if recipient == "" {
		recipient = cfg.SMTP.Username
	}
	return notify.NewEmailNotifier(notify.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  pw,
		Recipient: recipient,
	}, log)
}
