package notify

import (
	"context"
	"errors"
	"net/smtp"
	"testing"

	"jobwatch-engine/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ranked(title, company, salary, url string, pos int) domain.RankedPosting {
	return domain.RankedPosting{
		Posting: domain.Posting{
			RawPosting: domain.RawPosting{
				Title: title, Company: company, SalaryText: salary, URL: url,
			},
		},
		Rank: pos,
	}
}

func TestDeliver_SendsOneMessage(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{
		Host: "smtp.gmail.com", Port: 587,
		Username: "me@example.com", Password: "pw", Recipient: "me@example.com",
	}, zap.NewNop())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	n.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	items := []domain.RankedPosting{
		ranked("Frontend Developer", "Acme", "₹22,000", "https://example.com/jobs/1", 1),
		ranked("UI Intern", "Globex", "", "https://example.com/jobs/2", 2),
	}
	require.NoError(t, n.Deliver(context.Background(), "Job Digest — 2 new jobs", items))

	assert.Equal(t, "smtp.gmail.com:587", gotAddr)
	assert.Equal(t, "me@example.com", gotFrom)
	assert.Equal(t, []string{"me@example.com"}, gotTo)

	body := string(gotMsg)
	assert.Contains(t, body, "Subject: Job Digest — 2 new jobs")
	assert.Contains(t, body, "1. Frontend Developer — Acme")
	assert.Contains(t, body, "₹22,000")
	assert.Contains(t, body, "N/A", "missing salary text renders as N/A")
	assert.Contains(t, body, "https://example.com/jobs/2")
}

func TestDeliver_SkipsWithoutCredentials(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{Host: "smtp.gmail.com", Port: 587}, zap.NewNop())
	n.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send must not be called without credentials")
		return nil
	}
	assert.NoError(t, n.Deliver(context.Background(), "subject", nil))
}

func TestDeliver_PropagatesSendError(t *testing.T) {
	n := NewEmailNotifier(SMTPConfig{
		Host: "smtp.gmail.com", Port: 587,
		Username: "me@example.com", Password: "pw", Recipient: "me@example.com",
	}, zap.NewNop())
	n.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}
	assert.Error(t, n.Deliver(context.Background(), "subject", nil))
}
