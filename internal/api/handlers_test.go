// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/catalog"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/models"
	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

// stubEngine returns canned results so handler behavior can be tested
// independently of the scoring pipeline.
type stubEngine struct {
	result *recommend.Result
	err    error
	stats  recommend.Stats
}

func (s *stubEngine) Recommend(_ context.Context, _ *recommend.BusinessProfile) (*recommend.Result, error) {
	return s.result, s.err
}

func (s *stubEngine) Stats() recommend.Stats { return s.stats }

const validProfileJSON = `{
	"company_name": "Acme Robotics Ltd",
	"sector": "technology",
	"annual_revenue": 500000,
	"employees": 10,
	"location": "london",
	"business_age": 3,
	"funding_amount": 100000,
	"financials": {"profit_margin": 0.15, "cash_flow_months": 6, "debt_to_equity": 0.5}
}`

func newTestServer(t *testing.T, engine Recommender) http.Handler {
	t.Helper()
	handler := NewHandler(engine, catalog.Default(), "test")
	return NewRouter(handler, nil).Setup()
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) *models.APIResponse {
	t.Helper()
	var env models.APIResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response envelope: %v (body: %s)", err, rec.Body.String())
	}
	return &env
}

func TestRecommendationsSuccess(t *testing.T) {
	logger := zerolog.Nop()
	engine, err := recommend.NewEngine(nil, catalog.Default(), logger)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	srv := newTestServer(t, engine)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(validProfileJSON))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}
	if env.Error != nil {
		t.Errorf("unexpected error payload: %+v", env.Error)
	}

	data, ok := env.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("data is %T, want object", env.Data)
	}
	if data["business_id"] != "acme_robotics_ltd" {
		t.Errorf("business_id = %v, want acme_robotics_ltd", data["business_id"])
	}
	recs, ok := data["recommendations"].([]interface{})
	if !ok || len(recs) == 0 {
		t.Fatalf("recommendations = %v, want non-empty list", data["recommendations"])
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID response header missing")
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRecommendationsMalformedJSON(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})

	for _, body := range []string{"{not json", "", `{"company_name": "X", "bogus_field": 1}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
			continue
		}
		env := decodeEnvelope(t, rec)
		if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
			t.Errorf("body %q: error = %+v, want VALIDATION_ERROR", body, env.Error)
		}
	}
}

func TestRecommendationsValidationFailure(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})

	body := `{"sector": "technology", "location": "london", "funding_amount": 0}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil {
		t.Fatal("error payload missing")
	}
	if env.Error.Code != "VALIDATION_ERROR" {
		t.Errorf("error code = %q, want VALIDATION_ERROR", env.Error.Code)
	}
	if !strings.Contains(env.Error.Message, "company_name") {
		t.Errorf("error message %q does not name company_name", env.Error.Message)
	}
	if !strings.Contains(env.Error.Message, "funding_amount") {
		t.Errorf("error message %q does not name funding_amount", env.Error.Message)
	}
}

func TestRecommendationsEngineFailure(t *testing.T) {
	srv := newTestServer(t, &stubEngine{
		result: &recommend.Result{
			Success: false,
			Errors:  []string{"funding_amount must be greater than 0"},
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(validProfileJSON))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("error = %+v, want VALIDATION_ERROR", env.Error)
	}
}

func TestRecommendationsEngineError(t *testing.T) {
	srv := newTestServer(t, &stubEngine{err: errors.New("context canceled")})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(validProfileJSON))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("error = %+v, want INTERNAL_ERROR", env.Error)
	}
}

func TestSourcesList(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sources", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]interface{})
	total := int(data["total"].(float64))
	if total != catalog.Default().Len() {
		t.Errorf("total = %d, want %d", total, catalog.Default().Len())
	}
}

func TestSourcesFilterByType(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sources?type=bank_loan", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]interface{})
	sources := data["sources"].([]interface{})
	for _, s := range sources {
		src := s.(map[string]interface{})
		if src["type"] != "bank_loan" {
			t.Errorf("source %v has type %v, want bank_loan", src["source_id"], src["type"])
		}
	}
	if len(sources) == 0 {
		t.Error("expected at least one bank_loan source in the default catalog")
	}
}

func TestSourceByID(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sources/barclays_business_loan", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	src := env.Data.(map[string]interface{})
	if src["source_id"] != "barclays_business_loan" {
		t.Errorf("source_id = %v, want barclays_business_loan", src["source_id"])
	}
}

func TestSourceByIDNotFound(t *testing.T) {
	srv := newTestServer(t, &stubEngine{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sources/no_such_source", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Errorf("error = %+v, want NOT_FOUND", env.Error)
	}
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &stubEngine{stats: recommend.Stats{Requests: 7, Errors: 1}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	env := decodeEnvelope(t, rec)
	data := env.Data.(map[string]interface{})
	if data["status"] != "healthy" {
		t.Errorf("status = %v, want healthy", data["status"])
	}
	if int(data["catalog_size"].(float64)) != catalog.Default().Len() {
		t.Errorf("catalog_size = %v, want %d", data["catalog_size"], catalog.Default().Len())
	}
	if int(data["requests_total"].(float64)) != 7 {
		t.Errorf("requests_total = %v, want 7", data["requests_total"])
	}
	if data["version"] != "test" {
		t.Errorf("version = %v, want test", data["version"])
	}
}

func TestSanitizeLogValue(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"clean string", "clean string"},
		{"line\nbreak", "line\\x0abreak"},
		{"tab\there", "tab\\x09here"},
		{"del\x7fchar", "del\\x7fchar"},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.input); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
