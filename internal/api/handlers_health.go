// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package api

import (
	"net/http"
	"time"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/models"
)

// Health handles GET /api/v1/health. The service is stateless apart from
// the in-memory catalog, so health is "healthy" whenever the catalog is
// loaded and non-empty.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	catalogSize := 0
	if h.catalog != nil {
		catalogSize = h.catalog.Len()
	}
	if catalogSize == 0 {
		status = "degraded"
	}

	stats := h.engine.Stats()

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: models.HealthStatus{
			Status:        status,
			Version:       h.version,
			CatalogSize:   catalogSize,
			UptimeSeconds: time.Since(h.startTime).Seconds(),
			RequestsTotal: stats.Requests,
			ErrorsTotal:   stats.Errors,
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
