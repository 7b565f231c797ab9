// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/models"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

// sourcesPayload is the data shape of GET /api/v1/sources.
type sourcesPayload struct {
	Sources []recommend.FundingSource `json:"sources"`
	Total   int                       `json:"total"`
}

// Sources handles GET /api/v1/sources. An optional ?type= query
// parameter restricts the list to one funding type.
func (h *Handler) Sources(w http.ResponseWriter, r *http.Request) {
	var sources []recommend.FundingSource
	if t := r.URL.Query().Get("type"); t != "" {
		sources = h.catalog.ByType(recommend.FundingType(t))
	} else {
		sources = h.catalog.All()
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: sourcesPayload{
			Sources: sources,
			Total:   len(sources),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// SourceByID handles GET /api/v1/sources/{id}.
func (h *Handler) SourceByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	source, ok := h.catalog.ByID(id)
	if !ok {
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Funding source not found: "+sanitizeLogValue(id), nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     source,
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}
