package wellfound

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"jobwatch-engine/internal/domain"
	"jobwatch-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

// Wellfound (ex AngelList) lists startup roles. Cards carry no salary
// text, so these postings only survive filtering when the minimum salary
// check is disabled; they are still fetched for completeness.

type Config struct {
	Query string
}

type Scraper struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Scraper {
	if cfg.Query == "" {
		cfg.Query = "front end developer"
	}
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 15 * time.Second},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return "wellfound" }

func (s *Scraper) Fetch(ctx context.Context) ([]domain.RawPosting, error) {
	pageURL := fmt.Sprintf("https://wellfound.com/role/%s?remote=true",
		url.PathEscape(strings.TrimSpace(s.cfg.Query)))

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, pageURL)
	if err != nil {
		return nil, fmt.Errorf("wellfound: %w", err)
	}

	var out []domain.RawPosting
	doc.Find(`a[href*="/jobs/"]`).Each(func(_ int, a *goquery.Selection) {
		title := util.CleanText(a.Text())
		if title == "" {
			return
		}
		href, _ := a.Attr("href")
		if strings.HasPrefix(href, "/") {
			href = "https://wellfound.com" + href
		}

		out = append(out, domain.RawPosting{
			Source:      "wellfound",
			Title:       title,
			Company:     "Startup",
			Description: title,
			URL:         href,
		})
	})
	return out, nil
}
