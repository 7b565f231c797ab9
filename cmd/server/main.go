// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

// Package main is the entry point for the Capital Recommender server.
//
// Capital Recommender matches UK business funding applications against a
// catalog of funding sources (bank loans, asset finance, angel
// investment, venture capital, crowdfunding and government grants) using
// a weighted multi-criteria scoring engine.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: built-in defaults, optional YAML file, CAPREC_
//     environment variables (Koanf v2)
//  2. Catalog: funding sources from a JSON file or the built-in UK set
//  3. Engine: validated scoring configuration and the ranking pipeline
//  4. HTTP server: Chi router under a Suture supervisor tree
//
// # Configuration
//
// See internal/config for the full layering rules. Common environment
// variables:
//
//	CAPREC_HTTP_PORT=8080
//	CAPREC_LOG_LEVEL=info
//	CAPREC_CATALOG_PATH=/etc/capital-recommender/sources.json
//	CAPREC_MIN_MATCH_SCORE=0.6
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections and waits up to 10 seconds for in-flight
// requests before exiting.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/api"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/catalog"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/config"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/logging"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/metrics"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/supervisor"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Load configuration first to get logging settings.
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("catalog_path", cfg.Catalog.Path).
		Float64("min_match_score", cfg.Scoring.MinMatchScore).
		Msg("Starting Capital Recommender")

	// Load the funding source catalog. An empty path selects the
	// built-in UK catalog.
	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load funding source catalog")
		}
		logging.Info().Int("sources", cat.Len()).Str("path", cfg.Catalog.Path).Msg("Catalog loaded from file")
	} else {
		cat = catalog.Default()
		logging.Info().Int("sources", cat.Len()).Msg("Using built-in catalog")
	}

	metrics.CatalogSize.Set(float64(cat.Len()))
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	engine, err := recommend.NewEngine(&cfg.Scoring, cat, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation engine")
	}

	handler := api.NewHandler(engine, cat, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(&api.ChiMiddlewareConfig{
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitWindow:   cfg.RateLimit.Window,
		RateLimitDisabled: cfg.RateLimit.Disabled,
	}))

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(supervisor.NewHTTPService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added to supervisor tree")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain the error channel until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}
