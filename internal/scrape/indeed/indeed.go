package indeed

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

func (s *Scraper) Name() string { return "indeed" }

func (s *Scraper) Fetch(ctx context.Context) ([]domain.RawPosting, error) {
	pageURL := fmt.Sprintf("https://in.indeed.com/jobs?q=%s&l=%s",
		url.QueryEscape(s.cfg.Query), url.QueryEscape(s.cfg.Location))

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, pageURL)
	if err != nil {
		return nil, fmt.Errorf("indeed: %w", err)
	}

	var out []domain.RawPosting
	doc.Find("td.resultContent").Each(func(_ int, card *goquery.Selection) {
		snippet := util.CleanText(card.Text())
		if snippet == "" {
			return
		}

		link := ""
		if href, ok := card.Find("a[href]").First().Attr("href"); ok {
			link = href
		}
		if link != "" && strings.HasPrefix(link, "/") {
			link = "https://in.indeed.com" + link
		}

		company := util.CleanText(card.Find(`span[data-testid="company-name"]`).First().Text())
		if company == "" {
			company = "Unknown"
		}

		out = append(out, domain.RawPosting{
			Source:      "indeed",
			Title:       util.Clip(snippet, 60),
			Company:     company,
			Description: util.Clip(snippet, 300),
			SalaryText:  util.CleanText(card.Find("div.metadata.salary-snippet-container").First().Text()),
			URL:         link,
		})
	})
	return out, nil
}
