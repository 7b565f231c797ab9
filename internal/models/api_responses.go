// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

// Package models holds the shared HTTP wire types. Domain types live in
// the packages that own them; only the response envelope and error
// shape shared by every endpoint belong here.
package models

import "time"

// APIResponse is the standardized response wrapper used by all HTTP
// endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"recommendations": [...], "confidence_level": "high"},
//	  "metadata": {"timestamp": "2026-08-26T12:00:00Z", "query_time_ms": 3}
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "Invalid business profile",
//	    "details": {"field": "funding_amount"}
//	  },
//	  "metadata": {"timestamp": "2026-08-26T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: server time when the response was generated
//   - QueryTimeMS: engine execution time in milliseconds
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError is the structured error payload shared by all endpoints.
//
// Common error codes:
//   - VALIDATION_ERROR: invalid input
//   - CONFIG_ERROR: server misconfiguration surfaced at request time
//   - NOT_FOUND: resource or route does not exist
//   - METHOD_NOT_ALLOWED: wrong HTTP method for the route
//   - RATE_LIMIT_EXCEEDED: too many requests
//   - INTERNAL_ERROR: unexpected server failure
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	// Status is "healthy" when the engine and catalog are serviceable.
	Status string `json:"status"`

	// Version is the build version string.
	Version string `json:"version"`

	// CatalogSize is the number of funding sources loaded.
	CatalogSize int `json:"catalog_size"`

	// UptimeSeconds is the time since process start.
	UptimeSeconds float64 `json:"uptime_seconds"`

	// RequestsTotal counts recommendation requests since start.
	RequestsTotal int64 `json:"requests_total"`

	// ErrorsTotal counts failed recommendation requests since start.
	ErrorsTotal int64 `json:"errors_total"`
}
