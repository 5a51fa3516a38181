// Package config loads the watcher's YAML configuration. Thresholds are
// explicit values handed to the pipeline at construction, never ambient
// state, so tests can vary them freely.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SourceToggle struct {
	Enabled bool `yaml:"enabled"`
}

type Config struct {
	App struct {
		DataDir     string `yaml:"data_dir"`
		ProfilePath string `yaml:"profile_path"`
	} `yaml:"app"`

	Search struct {
		Query    string `yaml:"query"`
		Location string `yaml:"location"`
	} `yaml:"search"`

	Filters struct {
		MinMonthlySalary int      `yaml:"min_monthly_salary"`
		RequireRemote    bool     `yaml:"require_remote"`
		Vocabulary       []string `yaml:"vocabulary"`
	} `yaml:"filters"`

	Digest struct {
		MaxItems  int    `yaml:"max_items"`
		Recipient string `yaml:"recipient"`
	} `yaml:"digest"`

	Sources struct {
		Naukri      SourceToggle `yaml:"naukri"`
		Internshala SourceToggle `yaml:"internshala"`
		Indeed      SourceToggle `yaml:"indeed"`
		Wellfound   SourceToggle `yaml:"wellfound"`

		EmailAlerts struct {
			Enabled     bool   `yaml:"enabled"`
			IMAPAddr    string `yaml:"imap_addr"`
			Username    string `yaml:"username"`
			Mailbox     string `yaml:"mailbox"`
			MaxMessages int    `yaml:"max_messages"`
		} `yaml:"email_alerts"`
	} `yaml:"sources"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
	} `yaml:"smtp"`

	Log struct {
		JSON  bool `yaml:"json"`
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	cfg.ApplyDefaults()
	return cfg, cfg.Validate()
}

func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

func (c *Config) ApplyDefaults() {
	if c.App.DataDir == "" {
		c.App.DataDir = "."
	}
	if c.Search.Query == "" {
		c.Search.Query = "front end developer"
	}
	if c.Search.Location == "" {
		c.Search.Location = "remote"
	}
	if c.Filters.MinMonthlySalary == 0 {
		c.Filters.MinMonthlySalary = 20000
	}
	if c.Digest.MaxItems == 0 {
		c.Digest.MaxItems = 25
	}
	if c.SMTP.Host == "" {
		c.SMTP.Host = "smtp.gmail.com"
	}
	if c.SMTP.Port == 0 {
		c.SMTP.Port = 587
	}
	if c.Sources.EmailAlerts.IMAPAddr == "" {
		c.Sources.EmailAlerts.IMAPAddr = "imap.gmail.com:993"
	}
	if c.Sources.EmailAlerts.Mailbox == "" {
		c.Sources.EmailAlerts.Mailbox = "INBOX"
	}
	if c.Sources.EmailAlerts.MaxMessages == 0 {
		c.Sources.EmailAlerts.MaxMessages = 50
	}
}
