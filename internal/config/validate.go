package config

import (
	"fmt"
	"net/url"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := requireHTTPURL("store.base_url", c.Store.BaseURL); err != nil {
		return err
	}
	if err := requireHTTPURL("page_host.base_url", c.PageHost.BaseURL); err != nil {
		return err
	}

	if c.Server.RateLimitPerMin < 1 {
		return fmt.Errorf("server.rate_limit_per_min must be >= 1 (got %d)", c.Server.RateLimitPerMin)
	}

	if c.Sync.AuditRetention < 1 {
		return fmt.Errorf("sync.audit_retention must be >= 1 (got %d)", c.Sync.AuditRetention)
	}
	if c.Cache.ProfileCapacity < 1 {
		return fmt.Errorf("cache.profile_capacity must be >= 1 (got %d)", c.Cache.ProfileCapacity)
	}
	if c.Cache.ProfileTTL <= 0 {
		return fmt.Errorf("cache.profile_ttl must be positive (got %v)", c.Cache.ProfileTTL)
	}

	return nil
}

func requireHTTPURL(field, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", field)
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an http(s) URL (got %q)", field, raw)
	}
	return nil
}
