package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
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
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if c.Database.MaxConns > 0 && c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Journal.validate(); err != nil {
		return fmt.Errorf("journal: %w", err)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.AuthPerMinute <= 0 || c.RateLimit.APIPerMinute <= 0 {
			return fmt.Errorf("rate_limit: per-minute limits must be > 0")
		}
		if c.RateLimit.CleanupInterval <= 0 {
			return fmt.Errorf("rate_limit.cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
		}
	}

	return nil
}

func (j *JournalConfig) validate() error {
	if j.MaxEntryLength <= 0 {
		return fmt.Errorf("max_entry_length must be > 0 (got %d)", j.MaxEntryLength)
	}
	loc, err := time.LoadLocation(j.DefaultTimezone)
	if err != nil {
		return fmt.Errorf("default_timezone %q: %w", j.DefaultTimezone, err)
	}
	// "" and "Local" load, but neither names a zone Postgres understands.
	if loc.String() != j.DefaultTimezone {
		return fmt.Errorf("default_timezone %q: not an IANA zone name", j.DefaultTimezone)
	}
	if j.InviteCodeSize < 6 || j.InviteCodeSize > 32 {
		return fmt.Errorf("invite_code_size must be in [6, 32] (got %d)", j.InviteCodeSize)
	}
	return nil
}
