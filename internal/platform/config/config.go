// Copyright (c) 2026 Starting Out OK. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, stores) via constructors.
  - Zero Hidden State: No global variables are used to store config.

The data source is selected here: when DATABASE_URL is present the API serves
from PostgreSQL; otherwise it falls back to the JSON content files under
CONTENT_DIR. Redis is likewise optional and only enables the listing cache.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/mickey-farmer/startingOutOK/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Starting Out OK API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL / hosted Supabase project).
	// Optional: when empty, the server reads and writes JSON content files.
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// ContentDir is the root of the JSON content tree used when no database
	// is configured (casting-calls/, directory.json, resources.json).
	ContentDir string `env:"CONTENT_DIR" envDefault:"./data/content"`

	// Key-Value Cache (Redis). Optional: when empty, listings are re-read
	// from the store on every request.
	RedisURL string `env:"REDIS_URL"`

	// Admin session signing and credentials
	SessionSecret     string `env:"SESSION_SECRET,required"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// ArchiveCronSpec controls how often past-deadline casting calls are
	// moved to the archive (robfig/cron syntax).
	ArchiveCronSpec string `env:"ARCHIVE_CRON_SPEC" envDefault:"@daily"`

	// PublicBaseURL is the canonical site origin used in the RSS feed.
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"https://startingoutok.com"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// UsesDatabase reports whether the server is backed by PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// UsesCache reports whether the Redis listing cache is enabled.
func (c *Config) UsesCache() bool {
	return c.RedisURL != ""
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedExtraOrigins returns the additional CORS origins from the
// comma-separated EXTRA_ORIGINS variable (staging previews, local tooling).
func (c *Config) AllowedExtraOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}
