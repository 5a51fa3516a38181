package naukri

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobwatch-engine/internal/domain"
	"jobwatch-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
)

type Config struct {
	Query    string
	Location string
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
	if cfg.Location == "" {
		cfg.Location = "remote"
	}
	return &Scraper{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 15 * time.Second},
		limiter: limiter,
	}
}

func (s *Scraper) Name() string { return "naukri" }

func (s *Scraper) Fetch(ctx context.Context) ([]domain.RawPosting, error) {
	q := strings.ReplaceAll(strings.TrimSpace(s.cfg.Query), " ", "+")
	pageURL := fmt.Sprintf("https://www.naukri.com/%s-jobs-in-%s", q, s.cfg.Location)

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, pageURL)
	if err != nil {
		return nil, fmt.Errorf("naukri: %w", err)
	}

	var out []domain.RawPosting
	doc.Find("article").Each(func(_ int, card *goquery.Selection) {
		titleTag := card.Find("a").First()
		title := util.CleanText(titleTag.Text())
		if title == "" {
			title = "No Title"
		}
		company := util.CleanText(card.Find("a.subTitle").First().Text())
		if company == "" {
			company = "Unknown"
		}
		link, _ := titleTag.Attr("href")

		// Naukri exposes a stable job id on the card; prefer it over the
		// link so reposted URLs dedup to the same posting.
		if jobID, ok := card.Attr("data-job-id"); ok && jobID != "" {
			link = "https://www.naukri.com/job-listings-" + jobID
		}

		out = append(out, domain.RawPosting{
			Source:      "naukri",
			Title:       title,
			Company:     company,
			Description: util.Clip(util.CleanText(card.Text()), 300),
			SalaryText:  util.CleanText(card.Find("span.salary").First().Text()),
			URL:         strings.TrimSpace(link),
		})
	})
	return out, nil
}
