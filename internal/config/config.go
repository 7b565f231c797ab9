// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

// Package config loads and validates the application configuration.
//
// Configuration is layered with Koanf v2, later layers overriding
// earlier ones:
//  1. built-in defaults
//  2. optional YAML config file
//  3. CAPREC_-prefixed environment variables
package config

import (
	"fmt"
	"time"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Scoring   recommend.Config `koanf:"scoring"`
	RateLimit RateLimitConfig  `koanf:"rate_limit"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0.
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080.
	Port int `koanf:"port"`

	// Timeout bounds request read/write and graceful shutdown.
	Timeout time.Duration `koanf:"timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level. Default: info.
	Level string `koanf:"level"`

	// Format is json or console. Default: json.
	Format string `koanf:"format"`

	// Caller includes caller file and line in logs.
	Caller bool `koanf:"caller"`
}

// CatalogConfig holds catalog source settings.
type CatalogConfig struct {
	// Path is an optional JSON file with the funding source catalog.
	// Empty selects the built-in UK catalog.
	Path string `koanf:"path"`
}

// RateLimitConfig holds API rate limiting settings.
type RateLimitConfig struct {
	// Requests is the allowed requests per window per client IP.
	Requests int `koanf:"requests"`

	// Window is the rate limit window. Default: 1m.
	Window time.Duration `koanf:"window"`

	// Disabled turns rate limiting off entirely.
	Disabled bool `koanf:"disabled"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Validate checks the configuration for errors, including the scoring
// section which is validated by the engine's own rules.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1, 65535], got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if !c.RateLimit.Disabled {
		if c.RateLimit.Requests < 1 {
			return fmt.Errorf("rate_limit.requests must be positive, got %d", c.RateLimit.Requests)
		}
		if c.RateLimit.Window <= 0 {
			return fmt.Errorf("rate_limit.window must be positive, got %s", c.RateLimit.Window)
		}
	}
	if err := c.Scoring.Validate(); err != nil {
		return fmt.Errorf("scoring: %w", err)
	}
	return nil
}
