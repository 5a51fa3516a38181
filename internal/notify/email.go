package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"jobwatch-engine/internal/domain"

	"go.uber.org/zap"
)

type SMTPConfig struct {
	Host      string // e.g. smtp.gmail.com
	Port      int    // e.g. 587 (STARTTLS)
	Username  string
	Password  string
	Recipient string
}

// EmailNotifier sends the digest as a plain-text email over SMTP.
type EmailNotifier struct {
	cfg SMTPConfig
	log *zap.Logger

	// send is swapped out in tests; defaults to smtp.SendMail, which
	// negotiates STARTTLS on port 587.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailNotifier(cfg SMTPConfig, log *zap.Logger) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, log: log, send: smtp.SendMail}
}

func (n *EmailNotifier) Deliver(ctx context.Context, subject string, items []domain.RankedPosting) error {
	if n.cfg.Username == "" || n.cfg.Password == "" || n.cfg.Recipient == "" {
		// Missing credentials degrade delivery, not the run.
		n.log.Warn("email credentials missing, skipping delivery")
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(n.cfg.Username, n.cfg.Recipient, subject, items)
	addr := fmt.Sprintf("%s:%d", n.cfg.Host, n.cfg.Port)
	auth := smtp.PlainAuth("", n.cfg.Username, n.cfg.Password, n.cfg.Host)

	if err := n.send(addr, auth, n.cfg.Username, []string{n.cfg.Recipient}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject string, items []domain.RankedPosting) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")

	for _, it := range items {
		pay := it.SalaryText
		if pay == "" {
			pay = "N/A"
		}
		fmt.Fprintf(&b, "%d. %s — %s\r\n%s\r\n%s\r\n\r\n",
			it.Rank, it.Title, it.Company, pay, it.URL)
	}
	return []byte(b.String())
}
