package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the %s store", DriverPostgres)
		}
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri is required for the %s store", DriverMongo)
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q (got %q)", DriverPostgres, DriverMongo, c.Store.Driver)
	}

	if err := c.Notes.validate(); err != nil {
		return fmt.Errorf("notes: %w", err)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 || c.RateLimit.AuthPerMinute <= 0) {
		return fmt.Errorf("rate_limit: requests_per_second, burst and auth_per_minute must be > 0 when enabled")
	}

	return nil
}

func (n *NotesConfig) validate() error {
	if n.TrashRetentionDays <= 0 {
		return fmt.Errorf("trash_retention_days must be > 0 (got %d)", n.TrashRetentionDays)
	}
	if n.ExportMaxNotes <= 0 {
		return fmt.Errorf("export_max_notes must be > 0 (got %d)", n.ExportMaxNotes)
	}
	if n.MaxSearchLength <= 0 {
		return fmt.Errorf("max_search_length must be > 0 (got %d)", n.MaxSearchLength)
	}
	return nil
}
