package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "front end developer", cfg.Search.Query)
	assert.Equal(t, "remote", cfg.Search.Location)
	assert.Equal(t, 20000, cfg.Filters.MinMonthlySalary)
	assert.Equal(t, 25, cfg.Digest.MaxItems)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTP.Host)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  query: ui designer
filters:
  min_monthly_salary: 30000
  require_remote: true
  vocabulary: [figma, design, ux]
digest:
  max_items: 5
  recipient: me@example.com
sources:
  naukri: {enabled: true}
  indeed: {enabled: true}
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ui designer", cfg.Search.Query)
	assert.Equal(t, 30000, cfg.Filters.MinMonthlySalary)
	assert.True(t, cfg.Filters.RequireRemote)
	assert.Equal(t, []string{"figma", "design", "ux"}, cfg.Filters.Vocabulary)
	assert.Equal(t, 5, cfg.Digest.MaxItems)
	assert.True(t, cfg.Sources.Naukri.Enabled)
	assert.False(t, cfg.Sources.Wellfound.Enabled)
	assert.Equal(t, "remote", cfg.Search.Location, "defaults fill unset fields")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Digest.MaxItems = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Filters.MinMonthlySalary = -1
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.SMTP.Port = 70000
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Sources.EmailAlerts.Enabled = true
	assert.Error(t, cfg.Validate(), "email alerts need a username")
	cfg.Sources.EmailAlerts.Username = "me@example.com"
	assert.NoError(t, cfg.Validate())
}
