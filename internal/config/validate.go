package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}

	if c.Reports.MaxWindowDays <= 0 {
		return fmt.Errorf("reports.max_window_days must be > 0 (got %d)", c.Reports.MaxWindowDays)
	}

	return nil
}

func (w *WorkflowConfig) validate() error {
	if w.MaxTitleLength <= 0 {
		return fmt.Errorf("max_title_length must be > 0 (got %d)", w.MaxTitleLength)
	}
	if w.MaxMessageLength <= 0 {
		return fmt.Errorf("max_message_length must be > 0 (got %d)", w.MaxMessageLength)
	}
	if w.DefaultListLimit <= 0 || w.DefaultListLimit > w.MaxListLimit {
		return fmt.Errorf("default_list_limit must be in 1..%d (got %d)", w.MaxListLimit, w.DefaultListLimit)
	}
	return nil
}
