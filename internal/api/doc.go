// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

// Package api provides the HTTP surface of the recommendation engine
// using the Chi router.
//
// Endpoints:
//
//	POST /api/v1/recommendations  score a business profile against the catalog
//	GET  /api/v1/sources          list funding sources, optionally by type
//	GET  /api/v1/sources/{id}     fetch a single funding source
//	GET  /api/v1/health           service health and engine counters
//	GET  /metrics                 Prometheus metrics
//
// All API responses share the models.APIResponse envelope with a status
// string, optional data payload and optional structured error.
package api
