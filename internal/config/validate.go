package config

import (
	"fmt"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range (got %d)", c.Server.Port)
	}

	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("database.max_conns (%d) must be >= min_conns (%d)",
			c.Database.MaxConns, c.Database.MinConns)
	}

	if _, err := time.LoadLocation(c.Budget.Timezone); err != nil {
		return fmt.Errorf("budget.timezone: %w", err)
	}

	if !c.AMQP.Disabled && c.AMQP.URL == "" {
		return fmt.Errorf("amqp.url required unless amqp.disabled is set")
	}

	return nil
}

// SetWindowLocation resolves the configured budget time zone. Validate has
// already rejected unknown zones, so the second return is discarded.
func (c *Config) SetWindowLocation() *time.Location {
	loc, _ := time.LoadLocation(c.Budget.Timezone)
	return loc
}
