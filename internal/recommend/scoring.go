// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

import "math"

// Scorer computes match scores for eligible source/profile pairs. It is
// immutable after construction and safe for concurrent use.
type Scorer struct {
	cfg *Config
}

// NewScorer creates a scorer with the given validated configuration.
func NewScorer(cfg *Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score evaluates a single eligible source against a profile. Every
// sub-score and the overall score are clamped to [0, 1].
func (s *Scorer) Score(p *BusinessProfile, intel *BusinessIntelligence, src *FundingSource) Match {
	compat := s.Compatibility(p, src)
	approval := s.ApprovalProbability(intel, src)
	commercial := s.CommercialValue(p, src)
	strategic := s.StrategicFit(src)

	w := s.cfg.Weights
	overall := clamp01(w.Compatibility*compat +
		w.ApprovalProbability*approval +
		w.CommercialValue*commercial +
		w.StrategicFit*strategic)

	return Match{
		Source:              *src,
		Compatibility:       compat,
		ApprovalProbability: approval,
		CommercialValue:     commercial,
		StrategicFit:        strategic,
		OverallScore:        overall,
		SuccessProbability:  clamp01(0.7*approval + 0.3*compat),
	}
}

// ScoreAll scores every source and drops matches below the retention
// threshold. Input order is preserved for surviving matches.
func (s *Scorer) ScoreAll(p *BusinessProfile, intel *BusinessIntelligence, sources []FundingSource) []Match {
	matches := make([]Match, 0, len(sources))
	for i := range sources {
		m := s.Score(p, intel, &sources[i])
		if m.OverallScore >= s.cfg.MinMatchScore {
			matches = append(matches, m)
		}
	}
	return matches
}

// Compatibility measures structural fit beyond the eligibility gates.
// Eligibility already guarantees a baseline, so scoring starts at 0.8
// and rewards explicit sector listing and amount alignment.
func (s *Scorer) Compatibility(p *BusinessProfile, src *FundingSource) float64 {
	score := 0.8
	if src.ListsSector(p.Sector) {
		score += 0.1
	}
	mid := src.Amount.Midpoint()
	if mid > 0 && math.Abs(p.FundingAmount-mid) < 0.5*mid {
		score += 0.1
	}
	return clamp01(score)
}

// ApprovalProbability estimates the chance of a successful application
// from the type's historical base rate, the applicant's
// creditworthiness and the source's current appetite.
func (s *Scorer) ApprovalProbability(intel *BusinessIntelligence, src *FundingSource) float64 {
	rate := s.cfg.baseRate(src.Type)
	return clamp01(rate * intel.Creditworthiness * s.cfg.appetiteMultiplier(src.Appetite))
}

// CommercialValue estimates broker revenue from the commission range.
// Sources without a published commission earn a neutral 0.5.
func (s *Scorer) CommercialValue(p *BusinessProfile, src *FundingSource) float64 {
	if src.Commission == nil {
		return 0.5
	}
	expected := src.Commission.Average() / 100 * p.FundingAmount
	return clamp01(expected / 10_000)
}

// StrategicFit values the long-term relationship by funding type.
// Equity introductions open follow-on rounds, debt and asset finance
// repeat, one-off instruments rank lowest. The optional Category field
// is display metadata and never drives scoring.
func (s *Scorer) StrategicFit(src *FundingSource) float64 {
	switch src.Type {
	case TypeAngelInvestment, TypeVentureCapital:
		return 0.8
	case TypeBankLoan, TypeAssetFinance:
		return 0.6
	default:
		return 0.4
	}
}
