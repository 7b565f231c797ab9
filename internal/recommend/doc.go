// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

// Package recommend implements the funding recommendation engine.
//
// The engine turns a BusinessProfile plus a catalog of funding sources into a
// ranked, filtered list of Recommendation records. Processing is a pure,
// synchronous pipeline with no I/O:
//
//	Profile -> Analyze -> Eligibility Filter -> Scoring -> Rank/Format -> Result
//
// Scoring combines four independent sub-scores per eligible source, each
// clamped to [0, 1]:
//
//   - Compatibility: structural fit (sector, amount placement in range)
//   - Approval probability: type base rate x creditworthiness x appetite
//   - Commercial value: broker commission potential
//   - Strategic fit: long-term relationship value by funding type
//
// The overall score is a weighted blend; weights are configuration, validated
// to sum to 1.0 at engine construction. A separate success probability
// (0.7 x approval + 0.3 x compatibility) is reported but never ranked on.
//
// This package has no dependencies on other internal packages. The
// SourceProvider interface allows the catalog package (or a future live data
// feed) to supply funding sources without creating circular imports. Engines
// share only immutable state between requests, so a single Engine is safe for
// concurrent use.
package recommend
