// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package api

import (
	"net/http"
	"time"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/logging"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/metrics"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/middleware"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/models"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

// Recommendations handles POST /api/v1/recommendations.
//
// The request body is a JSON business profile. The response data is a
// recommend.Result: the ranked recommendation list plus confidence and
// timing. Validation failures return 400 with a VALIDATION_ERROR payload;
// an empty recommendation list is a 200 success.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var profile recommend.BusinessProfile
	if err := decodeJSONBody(w, r, &profile); err != nil {
		metrics.RecordRecommendation("validation_error", "", 0, 0, time.Since(start))
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body is not a valid business profile", err)
		return
	}

	if apiErr := validateRequest(&profile); apiErr != nil {
		metrics.RecordRecommendation("validation_error", "", 0, 0, time.Since(start))
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return
	}

	result, err := h.engine.Recommend(r.Context(), &profile)
	if err != nil {
		// Recommend only errors on context cancellation; the client has
		// already gone away, so the status code is best effort.
		metrics.RecordRecommendation("internal_error", "", 0, 0, time.Since(start))
		respondError(w, http.StatusServiceUnavailable, "INTERNAL_ERROR", "Request cancelled", err)
		return
	}

	if !result.Success {
		metrics.RecordRecommendation("validation_error", "", 0, result.TotalEvaluated, time.Since(start))
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error: &models.APIError{
				Code:    "VALIDATION_ERROR",
				Message: "Invalid business profile",
				Details: map[string]interface{}{"errors": result.Errors},
			},
		})
		return
	}

	metrics.RecordRecommendation(
		"success",
		string(result.Confidence),
		len(result.Recommendations),
		result.TotalEvaluated,
		time.Since(start),
	)

	logging.Info().
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("business_id", result.BusinessID).
		Int("recommendations", len(result.Recommendations)).
		Int("evaluated", result.TotalEvaluated).
		Str("confidence", string(result.Confidence)).
		Msg("Recommendations generated")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   result,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: result.ExecutionMS,
		},
	})
}
