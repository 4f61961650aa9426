package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Server.RateLimitPerMinute < 0 {
		return fmt.Errorf("server.rate_limit_per_minute must be >= 0 (got %d)", c.Server.RateLimitPerMinute)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %v)", c.Database.StatementTimeout)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Inventory.validate(); err != nil {
		return fmt.Errorf("inventory: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (i *InventoryConfig) validate() error {
	if i.SearchLimit <= 0 {
		return fmt.Errorf("search_limit must be > 0 (got %d)", i.SearchLimit)
	}
	if i.PreviewSize <= 0 {
		return fmt.Errorf("preview_size must be > 0 (got %d)", i.PreviewSize)
	}
	if i.HouseLogMaxLimit <= 0 {
		return fmt.Errorf("house_log_max_limit must be > 0 (got %d)", i.HouseLogMaxLimit)
	}
	if i.HouseLogDefaultLimit <= 0 || i.HouseLogDefaultLimit > i.HouseLogMaxLimit {
		return fmt.Errorf("house_log_default_limit must be in 1..%d (got %d)", i.HouseLogMaxLimit, i.HouseLogDefaultLimit)
	}
	return nil
}
