// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

import "math"

// Default financial assumptions applied when a profile omits the
// optional financials block. Chosen to represent an average trading
// UK small business rather than a distressed one.
const (
	defaultProfitMargin   = 0.05
	defaultCashFlowMonths = 2.0
)

// Business stage boundaries in years of trading.
const (
	startupMaxAge = 2
	growthMaxAge  = 7
)

// sectorRisk classifies sectors by historical default and volatility
// data. Sectors not listed are treated as medium risk.
var sectorRisk = map[string]RiskLevel{
	"technology":   RiskMedium,
	"retail":       RiskHigh,
	"hospitality":  RiskHigh,
	"construction": RiskHigh,
	"manufacturing": RiskMedium,
	"healthcare":   RiskLow,
	"professional_services": RiskLow,
	"finance":      RiskLow,
	"agriculture":  RiskMedium,
	"gambling":     RiskHigh,
}

// sectorAttractiveness reflects current funder demand per sector, in
// [0, 1]. Sectors not listed default to 0.5.
var sectorAttractiveness = map[string]float64{
	"technology":            0.9,
	"healthcare":            0.8,
	"finance":               0.7,
	"professional_services": 0.7,
	"manufacturing":         0.6,
	"agriculture":           0.5,
	"construction":          0.4,
	"retail":                0.4,
	"hospitality":           0.3,
	"gambling":              0.2,
}

// regionRisk classifies UK regions by economic resilience. Regions not
// listed are treated as medium risk.
var regionRisk = map[string]RiskLevel{
	"london":           RiskLow,
	"south_east":       RiskLow,
	"south_west":       RiskMedium,
	"east_of_england":  RiskLow,
	"midlands":         RiskMedium,
	"north_west":       RiskMedium,
	"north_east":       RiskHigh,
	"yorkshire":        RiskMedium,
	"scotland":         RiskMedium,
	"wales":            RiskHigh,
	"northern_ireland": RiskHigh,
}

// UK company size thresholds (Companies Act 2006 definitions). A band
// applies when both the turnover and headcount ceilings hold.
const (
	microTurnover  = 632_000
	smallTurnover  = 10_200_000
	mediumTurnover = 50_000_000

	microEmployees  = 9
	smallEmployees  = 49
	mediumEmployees = 249
)

// Analyzer derives business intelligence from a raw profile. It is
// stateless and safe for concurrent use.
type Analyzer struct{}

// NewAnalyzer creates an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze computes the full intelligence snapshot for a profile. The
// profile is assumed to have passed structural validation.
func (a *Analyzer) Analyze(p *BusinessProfile) *BusinessIntelligence {
	credit := a.Creditworthiness(p)
	risk := a.RiskLevel(p)
	intel := &BusinessIntelligence{
		RiskLevel:            risk,
		Stage:                a.Stage(p),
		Creditworthiness:     credit,
		SectorAttractiveness: a.SectorAttractiveness(p.Sector),
		AmountJustification:  a.AmountJustification(p),
		SizeBand:             a.SizeBand(p),
		RedFlags:             a.RedFlags(p),
	}
	intel.FundingReadiness = a.FundingReadiness(p, credit, risk)
	intel.MatchingTags = a.matchingTags(p, intel)
	intel.RecommendedTypes = a.recommendedTypes(p, intel)
	return intel
}

// Stage buckets the business by trading age.
func (a *Analyzer) Stage(p *BusinessProfile) BusinessStage {
	switch {
	case p.BusinessAge <= startupMaxAge:
		return StageStartup
	case p.BusinessAge <= growthMaxAge:
		return StageGrowth
	default:
		return StageMature
	}
}

// Creditworthiness estimates repayment capacity in [0, 1] from profit
// margin, cash runway and revenue scale. Missing financials fall back
// to conservative sector averages.
func (a *Analyzer) Creditworthiness(p *BusinessProfile) float64 {
	margin := defaultProfitMargin
	cashFlow := defaultCashFlowMonths
	if p.Financials != nil {
		margin = p.Financials.ProfitMargin
		cashFlow = p.Financials.CashFlowMonths
	}

	marginScore := clamp01(margin * 10)
	cashScore := clamp01(cashFlow / 6)
	revenueScore := clamp01(p.AnnualRevenue / 1_000_000)

	return clamp01(0.4*marginScore + 0.3*cashScore + 0.3*revenueScore)
}

// FundingReadiness blends creditworthiness, maturity, sector demand and
// risk into a single readiness score in [0, 1].
func (a *Analyzer) FundingReadiness(p *BusinessProfile, credit float64, risk RiskLevel) float64 {
	ageScore := clamp01(float64(p.BusinessAge) / 10)
	return clamp01(0.4*credit + 0.25*ageScore + 0.2*a.SectorAttractiveness(p.Sector) + 0.15*risk.Score())
}

// RiskLevel combines sector, regional and financial risk into an
// overall level. Each component contributes its ordinal (low=1,
// medium=2, high=3) and the mean is re-bucketed.
func (a *Analyzer) RiskLevel(p *BusinessProfile) RiskLevel {
	sector := lookupRisk(sectorRisk, p.Sector)
	region := lookupRisk(regionRisk, p.Location)
	financial := a.financialRisk(p)

	mean := float64(int(sector)+int(region)+int(financial)) / 3
	switch {
	case mean <= 1.5:
		return RiskLow
	case mean <= 2.5:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// financialRisk assesses risk from the financials block alone.
func (a *Analyzer) financialRisk(p *BusinessProfile) RiskLevel {
	if p.Financials == nil {
		return RiskMedium
	}
	f := p.Financials
	switch {
	case f.ProfitMargin < 0 || f.CashFlowMonths < 1 || f.DebtToEquity > 2:
		return RiskHigh
	case f.ProfitMargin >= 0.10 && f.CashFlowMonths >= 3 && f.DebtToEquity <= 1:
		return RiskLow
	default:
		return RiskMedium
	}
}

// SectorAttractiveness returns current funder demand for a sector.
func (a *Analyzer) SectorAttractiveness(sector string) float64 {
	if v, ok := sectorAttractiveness[sector]; ok {
		return v
	}
	return 0.5
}

// AmountJustification classifies the requested amount against annual
// revenue. Zero-revenue businesses requesting any amount are treated as
// a 1.0 ratio so pre-revenue startups land on "reasonable" rather than
// dividing by zero.
func (a *Analyzer) AmountJustification(p *BusinessProfile) AmountJustification {
	ratio := amountToRevenueRatio(p)
	switch {
	case ratio <= 0.5:
		return JustificationConservative
	case ratio <= 1.0:
		return JustificationReasonable
	case ratio <= 2.0:
		return JustificationOptimistic
	default:
		return JustificationExcessive
	}
}

// SizeBand classifies the company under UK size thresholds.
func (a *Analyzer) SizeBand(p *BusinessProfile) SizeBand {
	switch {
	case p.AnnualRevenue <= microTurnover && p.Employees <= microEmployees:
		return SizeMicro
	case p.AnnualRevenue <= smallTurnover && p.Employees <= smallEmployees:
		return SizeSmall
	case p.AnnualRevenue <= mediumTurnover && p.Employees <= mediumEmployees:
		return SizeMedium
	default:
		return SizeLarge
	}
}

// RedFlags collects advisory warnings. Flags never reject a profile;
// they surface in logs and scoring context only.
func (a *Analyzer) RedFlags(p *BusinessProfile) []string {
	var flags []string
	if amountToRevenueRatio(p) > 2.0 {
		flags = append(flags, "excessive_funding_request")
	}
	if p.BusinessAge < 1 {
		flags = append(flags, "very_new_business")
	}
	return flags
}

// matchingTags summarizes the profile as tags used in reasoning text.
func (a *Analyzer) matchingTags(p *BusinessProfile, intel *BusinessIntelligence) []string {
	tags := []string{
		intel.Stage.String(),
		string(intel.SizeBand),
		p.Sector,
	}
	if intel.Creditworthiness >= 0.7 {
		tags = append(tags, "strong_financials")
	}
	if intel.SectorAttractiveness >= 0.7 {
		tags = append(tags, "high_demand_sector")
	}
	return tags
}

// recommendedTypes suggests funding types suited to the stage and risk
// profile. Advisory only: scoring evaluates every eligible source.
func (a *Analyzer) recommendedTypes(p *BusinessProfile, intel *BusinessIntelligence) []FundingType {
	switch intel.Stage {
	case StageStartup:
		types := []FundingType{TypeAngelInvestment, TypeCrowdfunding, TypeGovernmentGrant}
		if intel.Creditworthiness >= 0.6 {
			types = append(types, TypeBankLoan)
		}
		return types
	case StageGrowth:
		types := []FundingType{TypeBankLoan, TypeAssetFinance, TypeCrowdfunding}
		if intel.SectorAttractiveness >= 0.7 {
			types = append(types, TypeVentureCapital)
		}
		return types
	default:
		return []FundingType{TypeBankLoan, TypeAssetFinance}
	}
}

// amountToRevenueRatio is the funding request relative to revenue.
func amountToRevenueRatio(p *BusinessProfile) float64 {
	if p.AnnualRevenue <= 0 {
		return 1.0
	}
	return p.FundingAmount / p.AnnualRevenue
}

func lookupRisk(table map[string]RiskLevel, key string) RiskLevel {
	if r, ok := table[key]; ok {
		return r
	}
	return RiskMedium
}

// clamp01 bounds v to [0, 1].
func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
