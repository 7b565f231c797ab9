// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package api

import (
	"context"
	"time"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/catalog"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

// Recommender is the engine surface the handlers need. The concrete
// implementation is *recommend.Engine; tests substitute a stub.
type Recommender interface {
	Recommend(ctx context.Context, p *recommend.BusinessProfile) (*recommend.Result, error)
	Stats() recommend.Stats
}

// Handler contains dependencies for the API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response and validation helpers
//   - handlers_recommendations.go: POST /api/v1/recommendations
//   - handlers_sources.go: funding source catalog endpoints
//   - handlers_health.go: health endpoint
type Handler struct {
	engine    Recommender
	catalog   *catalog.Catalog
	version   string
	startTime time.Time
}

// NewHandler creates an API handler backed by the given engine and
// source catalog.
func NewHandler(engine Recommender, cat *catalog.Catalog, version string) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   cat,
		version:   version,
		startTime: time.Now(),
	}
}
