// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

// FundingType identifies a category of funding product.
type FundingType string

// Known funding types. Unknown types are tolerated throughout scoring and
// fall back to neutral defaults.
const (
	TypeBankLoan        FundingType = "bank_loan"
	TypeAssetFinance    FundingType = "asset_finance"
	TypeAngelInvestment FundingType = "angel_investment"
	TypeVentureCapital  FundingType = "venture_capital"
	TypeCrowdfunding    FundingType = "crowdfunding"
	TypeGovernmentGrant FundingType = "government_grant"
)

// Appetite describes a funding source's current willingness to lend or invest.
type Appetite string

// Appetite levels, from most to least willing.
const (
	AppetiteAggressive Appetite = "aggressive"
	AppetiteNeutral    Appetite = "neutral"
	AppetiteSelective  Appetite = "selective"
	AppetiteCautious   Appetite = "cautious"
)

// RiskLevel is an ordinal risk bucket.
type RiskLevel int

const (
	// RiskLow indicates a low-risk profile.
	RiskLow RiskLevel = iota + 1
	// RiskMedium indicates a medium-risk profile.
	RiskMedium
	// RiskHigh indicates a high-risk profile.
	RiskHigh
)

// String returns a human-readable name for the risk level.
func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Score returns the funding-readiness contribution for this risk level.
// Lower risk contributes more.
func (r RiskLevel) Score() float64 {
	switch r {
	case RiskLow:
		return 1.0
	case RiskMedium:
		return 0.7
	case RiskHigh:
		return 0.4
	default:
		return 0.5
	}
}

// MarshalText implements encoding.TextMarshaler so risk levels serialize
// as their names rather than ordinals.
func (r RiskLevel) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// BusinessStage classifies business maturity.
type BusinessStage int

const (
	// StageStartup covers businesses up to 2 years old.
	StageStartup BusinessStage = iota
	// StageGrowth covers businesses older than 2 and up to 7 years.
	StageGrowth
	// StageMature covers businesses older than 7 years.
	StageMature
)

// String returns a human-readable name for the business stage.
func (s BusinessStage) String() string {
	switch s {
	case StageStartup:
		return "startup"
	case StageGrowth:
		return "growth"
	case StageMature:
		return "mature"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s BusinessStage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AmountJustification buckets how reasonable a funding request is relative
// to the business's revenue.
type AmountJustification string

// Justification buckets, keyed on funding-amount / revenue ratio.
const (
	JustificationConservative AmountJustification = "conservative" // ratio <= 0.5
	JustificationReasonable   AmountJustification = "reasonable"   // ratio <= 1.0
	JustificationOptimistic   AmountJustification = "optimistic"   // ratio <= 2.0
	JustificationExcessive    AmountJustification = "excessive"    // ratio > 2.0
)

// SizeBand is the UK company size classification.
type SizeBand string

// Size bands per the UK Companies Act thresholds.
const (
	SizeMicro  SizeBand = "micro"
	SizeSmall  SizeBand = "small"
	SizeMedium SizeBand = "medium"
	SizeLarge  SizeBand = "large"
)

// ConfidenceLevel labels the aggregate quality of a recommendation set.
type ConfidenceLevel string

// Confidence labels derived from the mean overall score.
const (
	ConfidenceVeryHigh ConfidenceLevel = "very_high" // mean >= 0.85
	ConfidenceHigh     ConfidenceLevel = "high"      // mean >= 0.75
	ConfidenceMedium   ConfidenceLevel = "medium"    // mean >= 0.65
	ConfidenceLow      ConfidenceLevel = "low"       // below
	ConfidenceNone     ConfidenceLevel = "none"      // empty list
)

// Financials is the optional financial detail block of a business profile.
type Financials struct {
	// ProfitMargin is the net profit margin as a fraction (0.15 = 15%).
	ProfitMargin float64 `json:"profit_margin"`

	// CashFlowMonths is the number of months of operating costs covered
	// by current cash flow.
	CashFlowMonths float64 `json:"cash_flow_months"`

	// DebtToEquity is the debt-to-equity ratio.
	DebtToEquity float64 `json:"debt_to_equity,omitempty"`
}

// BusinessProfile is the validated input to the engine. It is constructed
// once per request and never mutated afterwards.
type BusinessProfile struct {
	// CompanyName is the registered business name. Required.
	CompanyName string `json:"company_name" validate:"required"`

	// Sector is the business sector identifier (e.g. "technology"). Required.
	Sector string `json:"sector" validate:"required"`

	// AnnualRevenue is the latest annual revenue in GBP. Must be >= 0.
	AnnualRevenue float64 `json:"annual_revenue" validate:"gte=0"`

	// Employees is the headcount. Must be >= 0.
	Employees int `json:"employees" validate:"gte=0"`

	// Location is the UK region code (e.g. "london", "scotland"). Required.
	Location string `json:"location" validate:"required"`

	// BusinessAge is the trading age in whole years. Must be >= 0.
	BusinessAge int `json:"business_age" validate:"gte=0"`

	// FundingAmount is the requested amount in GBP. Must be > 0.
	FundingAmount float64 `json:"funding_amount" validate:"gt=0"`

	// FundingPurpose describes what the funding is for.
	FundingPurpose string `json:"funding_purpose,omitempty"`

	// Timeline is the desired funding timeline (e.g. "3_months").
	Timeline string `json:"timeline,omitempty"`

	// Financials is the optional financial detail block. Derivations fall
	// back to conservative defaults when absent.
	Financials *Financials `json:"financials,omitempty"`
}

// BusinessIntelligence holds the attributes derived from a BusinessProfile
// by the analyzer. It is produced once per request and read-only afterwards.
type BusinessIntelligence struct {
	// RiskLevel is the blended sector/geographic/financial risk bucket.
	RiskLevel RiskLevel `json:"risk_level"`

	// Stage is the business maturity stage, derived from age only.
	Stage BusinessStage `json:"stage"`

	// Creditworthiness is a 0-1 composite of margin, cash flow and revenue.
	Creditworthiness float64 `json:"creditworthiness"`

	// FundingReadiness is a 0-1 composite of financial health, maturity,
	// sector attractiveness and inverse risk.
	FundingReadiness float64 `json:"funding_readiness"`

	// SectorAttractiveness is a 0-1 measure of how fundable the sector is.
	SectorAttractiveness float64 `json:"sector_attractiveness"`

	// AmountJustification buckets the funding-amount-to-revenue ratio.
	AmountJustification AmountJustification `json:"amount_justification"`

	// SizeBand is the UK company size classification.
	SizeBand SizeBand `json:"size_band"`

	// MatchingTags are descriptive tags for downstream source matching.
	MatchingTags []string `json:"matching_tags"`

	// RedFlags lists potential deal-breaker issues.
	RedFlags []string `json:"red_flags"`

	// RecommendedTypes lists funding types suggested by readiness band.
	RecommendedTypes []FundingType `json:"recommended_funding_types"`
}

// AmountRange is an inclusive funding amount range in GBP.
type AmountRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether amount lies within the range, inclusive at
// both boundaries.
func (r AmountRange) Contains(amount float64) bool {
	return amount >= r.Min && amount <= r.Max
}

// Midpoint returns the center of the range.
func (r AmountRange) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// CommissionRange is a broker commission range in percent.
type CommissionRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Average returns the midpoint commission percentage.
func (c CommissionRange) Average() float64 {
	return (c.Min + c.Max) / 2
}

// Funding categories group products by commercial relationship.
const (
	CategoryDebt         = "debt"
	CategoryEquity       = "equity"
	CategoryAssetFinance = "asset_finance"
	CategoryGrant        = "grant"
	CategoryCrowdfunding = "crowdfunding"
)

// Contact holds contact details for a funding source.
type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// FundingSource is a single funding option in the catalog. Sources are
// loaded once at startup and never mutated at request time.
type FundingSource struct {
	// ID is the stable source identifier (e.g. "barclays_business_loan").
	ID string `json:"source_id"`

	// Name is the display name.
	Name string `json:"name"`

	// Type is the funding product category.
	Type FundingType `json:"type"`

	// Category is the commercial grouping (e.g. CategoryDebt).
	Category string `json:"category,omitempty"`

	// Amount is the inclusive funding amount range.
	Amount AmountRange `json:"amount_range"`

	// Sectors is the sector allow-list. The single entry "all" accepts
	// every sector.
	Sectors []string `json:"sectors"`

	// ExcludedSectors always reject, even when Sectors is ["all"].
	ExcludedSectors []string `json:"excluded_sectors,omitempty"`

	// MinTradingYears is the minimum business age to apply.
	MinTradingYears int `json:"min_trading_years"`

	// MaxTradingYears caps business age when > 0. Zero means no cap.
	MaxTradingYears int `json:"max_trading_years,omitempty"`

	// MinAnnualRevenue is an advisory revenue floor, surfaced in
	// requirements but not used as a hard eligibility gate.
	MinAnnualRevenue float64 `json:"min_annual_revenue,omitempty"`

	// Commission is the broker commission range in percent. Sources
	// without a structured range score a flat commercial value.
	Commission *CommissionRange `json:"broker_commission,omitempty"`

	// ApprovalTimeline is the human-readable approval timeline.
	ApprovalTimeline string `json:"approval_timeline"`

	// Contact holds application contact details.
	Contact Contact `json:"contact,omitempty"`

	// AvailabilityStatus describes current intake (e.g.
	// "accepting_applications", "seasonal_rounds").
	AvailabilityStatus string `json:"availability_status,omitempty"`

	// Appetite is the source's current market appetite.
	Appetite Appetite `json:"current_appetite"`

	// InnovationRequired marks sources that require an R&D focus.
	InnovationRequired bool `json:"innovation_requirement,omitempty"`

	// AssetRequired marks sources that require asset backing.
	AssetRequired bool `json:"asset_requirement,omitempty"`
}

// AcceptsSector reports whether the source's allow/exclude lists admit
// the given sector.
func (s *FundingSource) AcceptsSector(sector string) bool {
	for _, excluded := range s.ExcludedSectors {
		if sector == excluded {
			return false
		}
	}
	if len(s.Sectors) == 1 && s.Sectors[0] == "all" {
		return true
	}
	return s.ListsSector(sector)
}

// ListsSector reports whether the sector appears explicitly in the
// allow-list (an "all" wildcard does not count as an explicit listing).
func (s *FundingSource) ListsSector(sector string) bool {
	for _, allowed := range s.Sectors {
		if sector == allowed {
			return true
		}
	}
	return false
}

// Match pairs a funding source with its per-request scores. Matches are
// created per eligible source and discarded after formatting.
type Match struct {
	// Source is the scored funding source.
	Source FundingSource `json:"source"`

	// Compatibility is the structural fit sub-score in [0, 1].
	Compatibility float64 `json:"compatibility"`

	// ApprovalProbability is the approval likelihood sub-score in [0, 1].
	ApprovalProbability float64 `json:"approval_probability"`

	// CommercialValue is the broker revenue sub-score in [0, 1].
	CommercialValue float64 `json:"commercial_value"`

	// StrategicFit is the relationship value sub-score in [0, 1].
	StrategicFit float64 `json:"strategic_fit"`

	// OverallScore is the weighted blend of the four sub-scores in [0, 1].
	OverallScore float64 `json:"overall_score"`

	// SuccessProbability is 0.7 x approval + 0.3 x compatibility. It is
	// reported to callers and never used for ranking.
	SuccessProbability float64 `json:"success_probability"`
}

// Recommendation is a single formatted output record. Immutable once built.
type Recommendation struct {
	// Rank is the 1-based position in the recommendation list.
	Rank int `json:"rank"`

	// FundingSource is the source display name.
	FundingSource string `json:"funding_source"`

	// SourceID is the stable source identifier.
	SourceID string `json:"source_id"`

	// Type is the funding product category.
	Type FundingType `json:"type"`

	// MatchScore is the overall weighted score in [0, 1].
	MatchScore float64 `json:"match_score"`

	// SuccessProbability is the reported success likelihood in [0, 1].
	SuccessProbability float64 `json:"success_probability"`

	// AmountRange is the formatted range, e.g. "£5,000 - £250,000".
	AmountRange string `json:"amount_range"`

	// Timeline is the approval timeline text.
	Timeline string `json:"timeline"`

	// BrokerCommission is the formatted commission range, e.g. "1.5%-3.0%".
	BrokerCommission string `json:"broker_commission"`

	// Requirements lists key application requirements (at most 5).
	Requirements []string `json:"requirements"`

	// ContactInfo holds the source's contact details.
	ContactInfo Contact `json:"contact_info"`

	// NextSteps lists actionable next steps (at most 4).
	NextSteps []string `json:"next_steps"`

	// Reasoning explains which score dimensions drove the recommendation.
	Reasoning string `json:"reasoning"`
}

// Result is the engine's response for a single recommendation request.
type Result struct {
	// BusinessID is a slug derived from the company name.
	BusinessID string `json:"business_id"`

	// Recommendations is the ranked, possibly empty, output list.
	Recommendations []Recommendation `json:"recommendations"`

	// TotalEvaluated is the number of catalog sources considered.
	TotalEvaluated int `json:"total_sources_evaluated"`

	// ExecutionMS is the engine wall time in milliseconds.
	ExecutionMS int64 `json:"execution_time_ms"`

	// Confidence labels the aggregate quality of the recommendation set.
	Confidence ConfidenceLevel `json:"confidence_level"`

	// Success is false only for validation failures or internal errors;
	// an empty recommendation list is still a successful result.
	Success bool `json:"success"`

	// Errors holds human-readable messages when Success is false.
	Errors []string `json:"errors,omitempty"`
}

// SourceProvider supplies the funding source catalog to the engine.
// Implementations must return stable, immutable data: the engine performs
// no locking because nothing is mutated after catalog load.
type SourceProvider interface {
	// All returns every funding source in the catalog.
	All() []FundingSource
}
