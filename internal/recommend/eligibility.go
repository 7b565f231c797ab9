// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

// Eligible reports whether a source can be offered to a profile at all.
// Every rule is a hard gate; scoring handles soft preferences. Both
// amount range bounds are inclusive so a request exactly at a lender's
// ceiling still qualifies.
func Eligible(p *BusinessProfile, s *FundingSource) bool {
	if !s.Amount.Contains(p.FundingAmount) {
		return false
	}
	if p.BusinessAge < s.MinTradingYears {
		return false
	}
	if s.MaxTradingYears > 0 && p.BusinessAge > s.MaxTradingYears {
		return false
	}
	return s.AcceptsSector(p.Sector)
}

// FilterEligible returns the subset of sources a profile qualifies for.
// An empty result is a normal outcome, not an error.
func FilterEligible(p *BusinessProfile, sources []FundingSource) []FundingSource {
	eligible := make([]FundingSource, 0, len(sources))
	for i := range sources {
		if Eligible(p, &sources[i]) {
			eligible = append(eligible, sources[i])
		}
	}
	return eligible
}
