// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package catalog

import "github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"

// defaultSources is the built-in UK funding source list. Amounts are
// GBP, commission ranges are percentages of the facilitated amount.
func defaultSources() []recommend.FundingSource {
	return []recommend.FundingSource{
		{
			ID:       "barclays_business_loan",
			Name:     "Barclays Business Loan",
			Type:     recommend.TypeBankLoan,
			Category: recommend.CategoryDebt,
			Amount:   recommend.AmountRange{Min: 5_000, Max: 250_000},
			Sectors:  []string{"all"},
			ExcludedSectors: []string{"gambling"},
			MinTradingYears: 2,
			Commission:      &recommend.CommissionRange{Min: 1.0, Max: 2.0},
			ApprovalTimeline: "2-4 weeks",
			Contact: recommend.Contact{
				Email: "business.lending@barclays.co.uk",
				Phone: "+44 345 605 2345",
			},
			AvailabilityStatus: "accepting_applications",
			Appetite:           recommend.AppetiteSelective,
		},
		{
			ID:       "lloyds_asset_finance",
			Name:     "Lloyds Asset Finance",
			Type:     recommend.TypeAssetFinance,
			Category: recommend.CategoryAssetFinance,
			Amount:   recommend.AmountRange{Min: 10_000, Max: 2_000_000},
			Sectors:  []string{"manufacturing", "construction", "agriculture", "technology"},
			MinTradingYears: 1,
			Commission:      &recommend.CommissionRange{Min: 1.5, Max: 3.0},
			ApprovalTimeline: "1-3 weeks",
			Contact: recommend.Contact{
				Email: "asset.finance@lloydsbank.co.uk",
				Phone: "+44 345 606 2172",
			},
			AvailabilityStatus: "accepting_applications",
			Appetite:           recommend.AppetiteAggressive,
			AssetRequired:      true,
		},
		{
			ID:       "uk_angel_network",
			Name:     "UK Angel Investment Network",
			Type:     recommend.TypeAngelInvestment,
			Category: recommend.CategoryEquity,
			Amount:   recommend.AmountRange{Min: 25_000, Max: 500_000},
			Sectors:  []string{"technology", "healthcare", "finance"},
			MaxTradingYears: 5,
			Commission:      &recommend.CommissionRange{Min: 3.0, Max: 5.0},
			ApprovalTimeline: "6-12 weeks",
			Contact: recommend.Contact{
				Email: "deals@ukangelnetwork.co.uk",
			},
			AvailabilityStatus: "accepting_applications",
			Appetite:           recommend.AppetiteAggressive,
		},
		{
			ID:       "seedcamp_ventures",
			Name:     "Seedcamp Ventures",
			Type:     recommend.TypeVentureCapital,
			Category: recommend.CategoryEquity,
			Amount:   recommend.AmountRange{Min: 250_000, Max: 5_000_000},
			Sectors:  []string{"technology", "healthcare"},
			MaxTradingYears: 7,
			Commission:      &recommend.CommissionRange{Min: 2.0, Max: 4.0},
			ApprovalTimeline: "3-6 months",
			Contact: recommend.Contact{
				Email: "pitch@seedcamp.example",
			},
			AvailabilityStatus: "selective_intake",
			Appetite:           recommend.AppetiteSelective,
		},
		{
			ID:       "crowdcube_platform",
			Name:     "Crowdcube",
			Type:     recommend.TypeCrowdfunding,
			Category: recommend.CategoryCrowdfunding,
			Amount:   recommend.AmountRange{Min: 10_000, Max: 1_000_000},
			Sectors:  []string{"all"},
			ExcludedSectors: []string{"gambling"},
			Commission:      &recommend.CommissionRange{Min: 5.0, Max: 7.0},
			ApprovalTimeline: "4-8 weeks",
			Contact: recommend.Contact{
				Email: "raise@crowdcube.com",
			},
			AvailabilityStatus: "accepting_applications",
			Appetite:           recommend.AppetiteNeutral,
		},
		{
			ID:       "innovate_uk_grant",
			Name:     "Innovate UK Smart Grant",
			Type:     recommend.TypeGovernmentGrant,
			Category: recommend.CategoryGrant,
			Amount:   recommend.AmountRange{Min: 25_000, Max: 500_000},
			Sectors:  []string{"technology", "healthcare", "manufacturing", "agriculture"},
			ApprovalTimeline: "8-16 weeks",
			Contact: recommend.Contact{
				Email: "support@innovateuk.ukri.org",
				Phone: "+44 300 321 4357",
			},
			AvailabilityStatus: "seasonal_rounds",
			Appetite:           recommend.AppetiteNeutral,
			InnovationRequired: true,
		},
	}
}
