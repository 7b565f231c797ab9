// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Output list caps. Requirements and next steps are trimmed so the
// formatted record stays scannable in broker tooling.
const (
	maxRequirements = 5
	maxNextSteps    = 4
)

// Ranker orders scored matches and formats them into recommendations.
// Immutable after construction and safe for concurrent use.
type Ranker struct {
	cfg *Config
}

// NewRanker creates a ranker with the given validated configuration.
func NewRanker(cfg *Config) *Ranker {
	return &Ranker{cfg: cfg}
}

// Rank sorts matches, applies the diversity cap and truncation, and
// formats the survivors. The input slice is not modified.
func (r *Ranker) Rank(p *BusinessProfile, intel *BusinessIntelligence, matches []Match) []Recommendation {
	ordered := make([]Match, len(matches))
	copy(ordered, matches)

	// Deterministic total order: score, then approval probability, then
	// source ID so equal-quality matches never reorder between runs.
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if a.OverallScore != b.OverallScore {
			return a.OverallScore > b.OverallScore
		}
		if a.ApprovalProbability != b.ApprovalProbability {
			return a.ApprovalProbability > b.ApprovalProbability
		}
		return a.Source.ID < b.Source.ID
	})

	selected := r.applyDiversity(ordered)

	recs := make([]Recommendation, 0, len(selected))
	for i, m := range selected {
		recs = append(recs, r.format(i+1, p, intel, m))
	}
	return recs
}

// applyDiversity walks the ordered matches, skipping any whose funding
// type has hit the per-type cap, until MaxRecommendations are chosen.
func (r *Ranker) applyDiversity(ordered []Match) []Match {
	selected := make([]Match, 0, r.cfg.MaxRecommendations)
	perType := make(map[FundingType]int)
	for _, m := range ordered {
		if len(selected) >= r.cfg.MaxRecommendations {
			break
		}
		if r.cfg.DiversityMaxPerType > 0 && perType[m.Source.Type] >= r.cfg.DiversityMaxPerType {
			continue
		}
		perType[m.Source.Type]++
		selected = append(selected, m)
	}
	return selected
}

// Confidence labels the set by the mean overall score of the returned
// recommendations. An empty set yields ConfidenceNone.
func (r *Ranker) Confidence(recs []Recommendation) ConfidenceLevel {
	if len(recs) == 0 {
		return ConfidenceNone
	}
	var total float64
	for _, rec := range recs {
		total += rec.MatchScore
	}
	mean := total / float64(len(recs))
	switch {
	case mean >= 0.85:
		return ConfidenceVeryHigh
	case mean >= 0.75:
		return ConfidenceHigh
	case mean >= 0.65:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

func (r *Ranker) format(rank int, p *BusinessProfile, intel *BusinessIntelligence, m Match) Recommendation {
	src := m.Source
	return Recommendation{
		Rank:               rank,
		FundingSource:      src.Name,
		SourceID:           src.ID,
		Type:               src.Type,
		MatchScore:         round2(m.OverallScore),
		SuccessProbability: round2(m.SuccessProbability),
		AmountRange:        formatAmountRange(src.Amount),
		Timeline:           src.ApprovalTimeline,
		BrokerCommission:   formatCommission(src.Commission),
		Requirements:       requirements(p, intel, &src),
		ContactInfo:        src.Contact,
		NextSteps:          nextSteps(&src),
		Reasoning:          reasoning(m),
	}
}

// requirements lists application prerequisites for the source, capped
// at maxRequirements.
func requirements(p *BusinessProfile, intel *BusinessIntelligence, src *FundingSource) []string {
	reqs := make([]string, 0, maxRequirements)
	if src.MinTradingYears > 0 {
		reqs = append(reqs, fmt.Sprintf("Minimum %d years trading history", src.MinTradingYears))
	}
	if src.MaxTradingYears > 0 {
		reqs = append(reqs, fmt.Sprintf("Business no older than %d years", src.MaxTradingYears))
	}
	if src.MinAnnualRevenue > 0 {
		reqs = append(reqs, fmt.Sprintf("Annual revenue of at least %s", formatGBP(src.MinAnnualRevenue)))
	}
	if src.InnovationRequired {
		reqs = append(reqs, "Demonstrable innovation or R&D activity")
	}
	if src.AssetRequired {
		reqs = append(reqs, "Qualifying business assets as security")
	}
	switch src.Type {
	case TypeAngelInvestment, TypeVentureCapital:
		reqs = append(reqs, "Business plan and growth projections")
	case TypeBankLoan, TypeAssetFinance:
		reqs = append(reqs, "Filed accounts and recent bank statements")
	case TypeGovernmentGrant:
		reqs = append(reqs, "Project proposal aligned with the scheme's objectives")
	case TypeCrowdfunding:
		reqs = append(reqs, "Public campaign materials and pitch video")
	}
	if len(reqs) > maxRequirements {
		reqs = reqs[:maxRequirements]
	}
	return reqs
}

// nextSteps lists concrete actions for the applicant, capped at
// maxNextSteps.
func nextSteps(src *FundingSource) []string {
	steps := []string{
		fmt.Sprintf("Review eligibility criteria for %s", src.Name),
		"Prepare financial statements for the last two years",
	}
	if src.Contact.Email != "" {
		steps = append(steps, fmt.Sprintf("Contact %s to open an application", src.Contact.Email))
	} else {
		steps = append(steps, "Submit an initial enquiry through the provider's portal")
	}
	steps = append(steps, fmt.Sprintf("Expect a decision within %s", src.ApprovalTimeline))
	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}

// reasoning names the dimensions that drove the match, strongest first.
func reasoning(m Match) string {
	type dim struct {
		name  string
		score float64
	}
	dims := []dim{
		{"strong sector and amount fit", m.Compatibility},
		{"high approval likelihood", m.ApprovalProbability},
		{"attractive commercial terms", m.CommercialValue},
		{"good strategic relationship value", m.StrategicFit},
	}
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].score > dims[j].score })

	var drivers []string
	for _, d := range dims[:2] {
		if d.score >= 0.6 {
			drivers = append(drivers, d.name)
		}
	}
	if len(drivers) == 0 {
		return fmt.Sprintf("Balanced match with an overall score of %.2f", m.OverallScore)
	}
	return fmt.Sprintf("Recommended for %s (overall score %.2f)",
		strings.Join(drivers, " and "), m.OverallScore)
}

// formatAmountRange renders an inclusive range as "£5,000 - £250,000".
func formatAmountRange(r AmountRange) string {
	return formatGBP(r.Min) + " - " + formatGBP(r.Max)
}

// formatCommission renders a commission range as "1.5%-3.0%", or a
// fixed text for sources without a structured range.
func formatCommission(c *CommissionRange) string {
	if c == nil {
		return "not disclosed"
	}
	if c.Min == c.Max {
		return fmt.Sprintf("%.1f%%", c.Min)
	}
	return fmt.Sprintf("%.1f%%-%.1f%%", c.Min, c.Max)
}

// formatGBP renders a sterling amount with thousands separators, e.g.
// 250000 becomes "£250,000". Sub-pound precision is dropped: catalog
// amounts are whole pounds.
func formatGBP(amount float64) string {
	digits := strconv.FormatFloat(amount, 'f', 0, 64)
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteRune('£')
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// round2 rounds to two decimal places for presentation.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
