// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

// DefaultConfigPaths lists where config files are searched, in order.
// The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/capital-recommender/config.yaml",
	"/etc/capital-recommender/config.yml",
}

// ConfigPathEnvVar overrides the config file path when set.
const ConfigPathEnvVar = "CAPREC_CONFIG_PATH"

// envPrefix is the prefix for all configuration environment variables.
const envPrefix = "CAPREC_"

// defaultConfig returns the built-in defaults. These are applied first,
// then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8080,
			Timeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Catalog: CatalogConfig{
			Path: "", // built-in UK catalog
		},
		Scoring: *recommend.DefaultConfig(),
		RateLimit: RateLimitConfig{
			Requests: 100,
			Window:   time.Minute,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file
// and CAPREC_ environment variables, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	defaults := defaultConfig()
	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	envProvider := env.Provider(envPrefix, ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file path, or "".
// When CAPREC_CONFIG_PATH is set it is authoritative: the default search
// paths are skipped even if the named file does not exist.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
		return ""
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// envTransformFunc maps CAPREC_ environment variable names to koanf
// config paths. Unmapped variables are dropped so unrelated environment
// noise never reaches the config.
//
// Examples:
//   - CAPREC_HTTP_PORT -> server.port
//   - CAPREC_LOG_LEVEL -> logging.level
//   - CAPREC_MIN_MATCH_SCORE -> scoring.min_match_score
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

	envMappings := map[string]string{
		// Server mappings
		"http_host":    "server.host",
		"http_port":    "server.port",
		"http_timeout": "server.timeout",

		// Logging mappings
		"log_level":  "logging.level",
		"log_format": "logging.format",
		"log_caller": "logging.caller",

		// Catalog mappings
		"catalog_path": "catalog.path",

		// Scoring mappings
		"min_match_score":        "scoring.min_match_score",
		"max_recommendations":    "scoring.max_recommendations",
		"diversity_max_per_type": "scoring.diversity_max_per_type",
		"default_approval_rate":  "scoring.default_approval_rate",
		"weight_compatibility":   "scoring.weights.compatibility",
		"weight_approval":        "scoring.weights.approval_probability",
		"weight_commercial":      "scoring.weights.commercial_value",
		"weight_strategic":       "scoring.weights.strategic_fit",

		// Rate limit mappings
		"rate_limit_requests": "rate_limit.requests",
		"rate_limit_window":   "rate_limit.window",
		"disable_rate_limit":  "rate_limit.disabled",
	}

	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	return ""
}
