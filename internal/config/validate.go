package config

import (
	"fmt"
	"strings"
)

func (c Config) Validate() error {
	if strings.TrimSpace(c.Search.Query) == "" {
		return fmt.Errorf("search.query must not be empty")
	}
	if c.Filters.MinMonthlySalary < 0 {
		return fmt.Errorf("filters.min_monthly_salary must not be negative, got %d", c.Filters.MinMonthlySalary)
	}
	if c.Digest.MaxItems <= 0 {
		return fmt.Errorf("digest.max_items must be positive, got %d", c.Digest.MaxItems)
	}
	if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
		return fmt.Errorf("smtp.port out of range: %d", c.SMTP.Port)
	}
	if c.Sources.EmailAlerts.Enabled {
		if c.Sources.EmailAlerts.Username == "" {
			return fmt.Errorf("sources.email_alerts.username required when email alerts are enabled")
		}
	}
	return nil
}
