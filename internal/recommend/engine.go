// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages to
// maintain clean separation. The SourceProvider interface allows
// integration with the catalog package without creating circular imports.

// Engine coordinates analysis, eligibility filtering, scoring and
// ranking for recommendation requests. It is safe for concurrent use:
// all state is immutable after construction.
type Engine struct {
	config   *Config
	logger   zerolog.Logger
	provider SourceProvider

	analyzer *Analyzer
	scorer   *Scorer
	ranker   *Ranker

	// Counters exported through Stats for observability wiring.
	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// Stats is a point-in-time snapshot of engine counters.
type Stats struct {
	Requests int64 `json:"requests"`
	Errors   int64 `json:"errors"`
}

// NewEngine creates a recommendation engine. A nil config selects
// DefaultConfig. The config is cloned and validated; an invalid config
// is rejected with a *ConfigError.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, provider SourceProvider, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if provider == nil {
		return nil, &ConfigError{Field: "provider", Reason: "source provider is required"}
	}

	cfg = cfg.Clone()
	return &Engine{
		config:   cfg,
		logger:   logger.With().Str("component", "recommend").Logger(),
		provider: provider,
		analyzer: NewAnalyzer(),
		scorer:   NewScorer(cfg),
		ranker:   NewRanker(cfg),
	}, nil
}

// Stats returns a snapshot of the engine's request counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests: e.requestCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}

// Recommend runs the full pipeline for one profile. Validation failures
// and internal panics are reported inside the Result with Success set
// to false; the error return is reserved for context cancellation. An
// empty recommendation list with Success true is a normal outcome.
func (e *Engine) Recommend(ctx context.Context, p *BusinessProfile) (result *Result, err error) {
	start := time.Now()
	e.requestCount.Add(1)

	var businessID string
	if p != nil {
		businessID = slugify(p.CompanyName)
	}
	logger := e.logger.With().Str("business_id", businessID).Logger()

	// A malformed catalog entry or a scoring bug must degrade to a
	// failed result for this one request, never crash the process.
	defer func() {
		if r := recover(); r != nil {
			e.errorCount.Add(1)
			logger.Error().Interface("panic", r).Msg("recovered panic in recommendation pipeline")
			result = failedResult(businessID, start, fmt.Sprintf("internal error: %v", r))
			err = nil
		}
	}()

	if verr := validateProfile(p); verr != nil {
		e.errorCount.Add(1)
		logger.Warn().Strs("errors", verr.Messages()).Msg("profile validation failed")
		return failedResult(businessID, start, verr.Messages()...), nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intel := e.analyzer.Analyze(p)
	logger.Debug().
		Str("stage", intel.Stage.String()).
		Str("risk_level", intel.RiskLevel.String()).
		Float64("creditworthiness", intel.Creditworthiness).
		Strs("red_flags", intel.RedFlags).
		Msg("profile analyzed")

	sources := e.provider.All()
	eligible := FilterEligible(p, sources)
	matches := e.scorer.ScoreAll(p, intel, eligible)
	recs := e.ranker.Rank(p, intel, matches)

	result = &Result{
		BusinessID:      businessID,
		Recommendations: recs,
		TotalEvaluated:  len(sources),
		ExecutionMS:     time.Since(start).Milliseconds(),
		Confidence:      e.ranker.Confidence(recs),
		Success:         true,
	}

	logger.Debug().
		Int("evaluated", len(sources)).
		Int("eligible", len(eligible)).
		Int("matched", len(matches)).
		Int("returned", len(recs)).
		Str("confidence", string(result.Confidence)).
		Int64("latency_ms", result.ExecutionMS).
		Msg("recommendation complete")

	return result, nil
}

// validateProfile applies the structural checks the engine relies on.
// The HTTP layer performs the same checks via struct tags; the engine
// repeats them so library callers get the same guarantees.
func validateProfile(p *BusinessProfile) *ValidationError {
	fields := make(map[string]string)
	if p == nil {
		fields["profile"] = "profile is required"
		return &ValidationError{Fields: fields}
	}
	if strings.TrimSpace(p.CompanyName) == "" {
		fields["company_name"] = "company name is required"
	}
	if strings.TrimSpace(p.Sector) == "" {
		fields["sector"] = "sector is required"
	}
	if strings.TrimSpace(p.Location) == "" {
		fields["location"] = "location is required"
	}
	if p.FundingAmount <= 0 {
		fields["funding_amount"] = "funding amount must be positive"
	}
	if p.AnnualRevenue < 0 {
		fields["annual_revenue"] = "annual revenue must not be negative"
	}
	if p.BusinessAge < 0 {
		fields["business_age"] = "business age must not be negative"
	}
	if p.Employees < 0 {
		fields["employees"] = "employee count must not be negative"
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func failedResult(businessID string, start time.Time, errs ...string) *Result {
	return &Result{
		BusinessID:      businessID,
		Recommendations: []Recommendation{},
		ExecutionMS:     time.Since(start).Milliseconds(),
		Confidence:      ConfidenceNone,
		Success:         false,
		Errors:          errs,
	}
}

// slugify derives a stable business ID from a company name, e.g.
// "Smith & Sons Ltd" becomes "smith_sons_ltd".
func slugify(name string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			b.WriteByte('_')
			lastUnderscore = true
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
