package internshala

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

func (s *Scraper) Name() string { return "internshala" }

func (s *Scraper) Fetch(ctx context.Context) ([]domain.RawPosting, error) {
	q := strings.ReplaceAll(strings.TrimSpace(s.cfg.Query), " ", "+")
	pageURL := fmt.Sprintf("https://internshala.com/internships/%s-internship", q)

	doc, err := util.FetchDocument(ctx, s.hc, s.limiter, pageURL)
	if err != nil {
		return nil, fmt.Errorf("internshala: %w", err)
	}

	var out []domain.RawPosting
	doc.Find("div.container-fluid div.internship_meta").Each(func(_ int, card *goquery.Selection) {
		snippet := util.CleanText(card.Text())
		if snippet == "" {
			return
		}

		// The card itself carries no link; the detail anchor wraps it.
		link := ""
		if href, ok := card.Closest("a[href]").Attr("href"); ok {
			link = href
		} else if href, ok := card.ParentsFiltered("div.individual_internship").Find("a[href]").First().Attr("href"); ok {
			link = href
		}
		if link != "" && strings.HasPrefix(link, "/") {
			link = "https://internshala.com" + link
		}

		// Stipend is the span that quotes rupees.
		stipend := ""
		card.Find("span").EachWithBreak(func(_ int, sp *goquery.Selection) bool {
			if t := util.CleanText(sp.Text()); strings.Contains(t, "₹") {
				stipend = t
				return false
			}
			return true
		})

		out = append(out, domain.RawPosting{
			Source:      "internshala",
			Title:       util.Clip(snippet, 60),
			Company:     "Internshala Employer",
			Description: util.Clip(snippet, 300),
			SalaryText:  stipend,
			URL:         link,
		})
	})
	return out, nil
}
