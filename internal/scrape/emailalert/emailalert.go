// Package emailalert turns job-alert emails (LinkedIn, Indeed digests and
// the like) into raw postings by pulling job links out of unseen messages.
package emailalert

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"jobwatch-engine/internal/domain"
	"jobwatch-engine/internal/scrape/util"

	"github.com/PuerkitoBio/goquery"
	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"
)

type Config struct {
	Addr         string // imap host:port, e.g. imap.gmail.com:993
	Username     string
	Password     string
	Mailbox      string
	MaxMessages  int
	LookbackDays int
}

type Scraper struct {
	cfg Config
}

func New(cfg Config) *Scraper {
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = 50
	}
	if cfg.LookbackDays <= 0 {
		cfg.LookbackDays = 7
	}
	return &Scraper{cfg: cfg}
}

func (s *Scraper) Name() string { return "emailalert" }

func (s *Scraper) Fetch(ctx context.Context) ([]domain.RawPosting, error) {
	if s.cfg.Addr == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return nil, fmt.Errorf("emailalert: imap addr/username/password required")
	}

	host := s.cfg.Addr
	if i := strings.IndexByte(host, ':'); i > 0 {
		host = host[:i]
	}
	c, err := imapclient.DialTLS(s.cfg.Addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12, ServerName: host},
	})
	if err != nil {
		return nil, fmt.Errorf("emailalert: dial: %w", err)
	}
	defer func() { _ = c.Close() }()

	go func() {
		<-ctx.Done()
		_ = c.Close()
	}()

	if err := c.Login(s.cfg.Username, s.cfg.Password).Wait(); err != nil {
		return nil, fmt.Errorf("emailalert: login: %w", err)
	}
	defer func() { _ = c.Logout().Wait() }()

	if _, err := c.Select(s.cfg.Mailbox, &imap.SelectOptions{ReadOnly: true}).Wait(); err != nil {
		return nil, fmt.Errorf("emailalert: select %s: %w", s.cfg.Mailbox, err)
	}

	criteria := &imap.SearchCriteria{
		NotFlag: []imap.Flag{imap.FlagSeen},
		Since:   time.Now().AddDate(0, 0, -s.cfg.LookbackDays),
	}
	searchData, err := c.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("emailalert: search: %w", err)
	}
	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}
	if len(uids) > s.cfg.MaxMessages {
		uids = uids[len(uids)-s.cfg.MaxMessages:] // newest at the end
	}

	bodyAll := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierNone,
		Peek:      true, // never flip \Seen
	}
	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodyAll},
	})
	defer func() { _ = fetchCmd.Close() }()

	var out []domain.RawPosting
	for {
		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}
		buf, err := msgData.Collect()
		if err != nil {
			return nil, fmt.Errorf("emailalert: fetch collect: %w", err)
		}

		subject := ""
		if buf.Envelope != nil {
			subject = buf.Envelope.Subject
		}
		raw := buf.FindBodySection(bodyAll)
		if len(raw) == 0 {
			continue
		}

		plain, htmlBody := textParts(raw)
		if htmlBody != "" {
			out = append(out, postingsFromHTML(subject, htmlBody)...)
		} else {
			out = append(out, postingsFromText(subject, plain)...)
		}
	}
	if err := fetchCmd.Close(); err != nil {
		return nil, fmt.Errorf("emailalert: fetch close: %w", err)
	}

	return out, nil
}

// postingsFromHTML walks the anchors of an alert email body. Anchors whose
// link points at a job page become postings titled by their anchor text.
func postingsFromHTML(subject, htmlBody string) []domain.RawPosting {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlBody))
	if err != nil {
		return postingsFromText(subject, htmlBody)
	}

	var out []domain.RawPosting
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !looksLikeJobLink(href) {
			return
		}
		title := util.CleanText(a.Text())
		if title == "" {
			title = util.CleanText(subject)
		}
		if title == "" {
			return
		}
		out = append(out, domain.RawPosting{
			Source:      "emailalert",
			Title:       util.Clip(title, 120),
			Description: util.Clip(util.CleanText(subject+" "+title), 300),
			URL:         strings.TrimSpace(href),
		})
	})
	return out
}

func postingsFromText(subject, body string) []domain.RawPosting {
	var out []domain.RawPosting
	for _, f := range strings.Fields(body) {
		u := strings.TrimRight(f, ".,);:]\"'")
		if !looksLikeJobLink(u) {
			continue
		}
		title := util.CleanText(subject)
		if title == "" {
			continue
		}
		out = append(out, domain.RawPosting{
			Source:      "emailalert",
			Title:       util.Clip(title, 120),
			Description: util.Clip(title, 300),
			URL:         u,
		})
	}
	return out
}

func looksLikeJobLink(href string) bool {
	h := strings.ToLower(href)
	if !strings.HasPrefix(h, "http://") && !strings.HasPrefix(h, "https://") {
		return false
	}
	if strings.Contains(h, "unsubscribe") || strings.Contains(h, "preferences") {
		return false
	}
	return strings.Contains(h, "/jobs/") || strings.Contains(h, "/job/") ||
		strings.Contains(h, "viewjob") || strings.Contains(h, "currentjobid")
}
