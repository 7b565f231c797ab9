// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

import (
	"fmt"
	"math"
)

// weightSumTolerance absorbs float rounding when checking that the four
// scoring weights sum to 1.0.
const weightSumTolerance = 1e-9

// Weights defines the contribution of each scoring dimension to the
// overall match score. Unlike ensemble weights that can be renormalized,
// these are a published business contract: they must sum to exactly 1.0
// and are rejected at startup otherwise.
type Weights struct {
	// Compatibility weights structural fit (sector, amount alignment).
	// Default: 0.40.
	Compatibility float64 `json:"compatibility" koanf:"compatibility"`

	// ApprovalProbability weights historical approval likelihood.
	// Default: 0.35.
	ApprovalProbability float64 `json:"approval_probability" koanf:"approval_probability"`

	// CommercialValue weights broker commission potential.
	// Default: 0.15.
	CommercialValue float64 `json:"commercial_value" koanf:"commercial_value"`

	// StrategicFit weights long-term relationship value.
	// Default: 0.10.
	StrategicFit float64 `json:"strategic_fit" koanf:"strategic_fit"`
}

// Sum returns the total of the four weights.
func (w Weights) Sum() float64 {
	return w.Compatibility + w.ApprovalProbability + w.CommercialValue + w.StrategicFit
}

// Config contains all tunable parameters for scoring and ranking.
// A Config is validated once at engine construction and never mutated
// during a request.
type Config struct {
	// Weights blends the four sub-scores into the overall score.
	Weights Weights `json:"weights" koanf:"weights"`

	// MinMatchScore is the retention threshold: matches scoring below it
	// are dropped before ranking. Must be in [0, 1]. Default: 0.6.
	MinMatchScore float64 `json:"min_match_score" koanf:"min_match_score"`

	// MaxRecommendations caps the returned list length. Default: 5.
	MaxRecommendations int `json:"max_recommendations" koanf:"max_recommendations"`

	// DiversityMaxPerType caps how many recommendations may share a
	// funding type, applied during truncation. Zero disables the cap.
	// Default: 2.
	DiversityMaxPerType int `json:"diversity_max_per_type" koanf:"diversity_max_per_type"`

	// BaseApprovalRates maps funding types to historical approval base
	// rates. Types absent from the map use DefaultApprovalRate.
	BaseApprovalRates map[FundingType]float64 `json:"base_approval_rates" koanf:"base_approval_rates"`

	// DefaultApprovalRate is the base rate for unknown funding types.
	// Default: 0.5.
	DefaultApprovalRate float64 `json:"default_approval_rate" koanf:"default_approval_rate"`

	// AppetiteMultipliers scales approval probability by the source's
	// current market appetite. Unknown appetites multiply by 1.0.
	AppetiteMultipliers map[Appetite]float64 `json:"appetite_multipliers" koanf:"appetite_multipliers"`
}

// DefaultConfig returns the production scoring configuration. The values
// mirror observed UK market approval rates and the broker-facing weighting
// agreed with the business.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Compatibility:       0.40,
			ApprovalProbability: 0.35,
			CommercialValue:     0.15,
			StrategicFit:        0.10,
		},
		MinMatchScore:       0.6,
		MaxRecommendations:  5,
		DiversityMaxPerType: 2,
		BaseApprovalRates: map[FundingType]float64{
			TypeBankLoan:        0.65,
			TypeAssetFinance:    0.75,
			TypeAngelInvestment: 0.25,
			TypeVentureCapital:  0.15,
			TypeCrowdfunding:    0.45,
			TypeGovernmentGrant: 0.35,
		},
		DefaultApprovalRate: 0.5,
		AppetiteMultipliers: map[Appetite]float64{
			AppetiteAggressive: 1.2,
			AppetiteNeutral:    1.0,
			AppetiteSelective:  0.8,
			AppetiteCautious:   0.6,
		},
	}
}

// Validate checks the configuration for errors. A non-nil return is
// always a *ConfigError.
func (c *Config) Validate() error {
	if diff := math.Abs(c.Weights.Sum() - 1.0); diff > weightSumTolerance {
		return &ConfigError{
			Field:  "weights",
			Reason: fmt.Sprintf("must sum to 1.0, got %g", c.Weights.Sum()),
		}
	}
	for name, w := range map[string]float64{
		"weights.compatibility":        c.Weights.Compatibility,
		"weights.approval_probability": c.Weights.ApprovalProbability,
		"weights.commercial_value":     c.Weights.CommercialValue,
		"weights.strategic_fit":        c.Weights.StrategicFit,
	} {
		if w < 0 || w > 1 {
			return &ConfigError{Field: name, Reason: fmt.Sprintf("must be in [0, 1], got %g", w)}
		}
	}

	if c.MinMatchScore < 0 || c.MinMatchScore > 1 {
		return &ConfigError{
			Field:  "min_match_score",
			Reason: fmt.Sprintf("must be in [0, 1], got %g", c.MinMatchScore),
		}
	}
	if c.MaxRecommendations < 1 {
		return &ConfigError{
			Field:  "max_recommendations",
			Reason: fmt.Sprintf("must be positive, got %d", c.MaxRecommendations),
		}
	}
	if c.DiversityMaxPerType < 0 {
		return &ConfigError{
			Field:  "diversity_max_per_type",
			Reason: fmt.Sprintf("must be non-negative, got %d", c.DiversityMaxPerType),
		}
	}
	if c.DefaultApprovalRate < 0 || c.DefaultApprovalRate > 1 {
		return &ConfigError{
			Field:  "default_approval_rate",
			Reason: fmt.Sprintf("must be in [0, 1], got %g", c.DefaultApprovalRate),
		}
	}
	for t, rate := range c.BaseApprovalRates {
		if rate < 0 || rate > 1 {
			return &ConfigError{
				Field:  "base_approval_rates." + string(t),
				Reason: fmt.Sprintf("must be in [0, 1], got %g", rate),
			}
		}
	}
	for a, m := range c.AppetiteMultipliers {
		if m < 0 {
			return &ConfigError{
				Field:  "appetite_multipliers." + string(a),
				Reason: fmt.Sprintf("must be non-negative, got %g", m),
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	out.BaseApprovalRates = make(map[FundingType]float64, len(c.BaseApprovalRates))
	for k, v := range c.BaseApprovalRates {
		out.BaseApprovalRates[k] = v
	}
	out.AppetiteMultipliers = make(map[Appetite]float64, len(c.AppetiteMultipliers))
	for k, v := range c.AppetiteMultipliers {
		out.AppetiteMultipliers[k] = v
	}
	return &out
}

// baseRate returns the historical approval base rate for a funding type.
func (c *Config) baseRate(t FundingType) float64 {
	if rate, ok := c.BaseApprovalRates[t]; ok {
		return rate
	}
	return c.DefaultApprovalRate
}

// appetiteMultiplier returns the multiplier for a source's appetite.
func (c *Config) appetiteMultiplier(a Appetite) float64 {
	if m, ok := c.AppetiteMultipliers[a]; ok {
		return m
	}
	return 1.0
}
