// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

// Package catalog supplies the funding source catalog consumed by the
// recommendation engine. The catalog is loaded once at startup, either
// from the built-in UK source list or from a JSON file, and is
// immutable afterwards.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

// Catalog is an immutable collection of funding sources. It implements
// recommend.SourceProvider and is safe for concurrent use.
type Catalog struct {
	sources []recommend.FundingSource
	byID    map[string]int
}

// New builds a catalog from the given sources. Duplicate source IDs and
// structurally invalid entries are rejected.
func New(sources []recommend.FundingSource) (*Catalog, error) {
	byID := make(map[string]int, len(sources))
	for i := range sources {
		if err := validateSource(&sources[i]); err != nil {
			return nil, err
		}
		if _, dup := byID[sources[i].ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate source ID %q", sources[i].ID)
		}
		byID[sources[i].ID] = i
	}

	owned := make([]recommend.FundingSource, len(sources))
	copy(owned, sources)
	return &Catalog{sources: owned, byID: byID}, nil
}

// Default returns the built-in UK funding source catalog.
func Default() *Catalog {
	c, err := New(defaultSources())
	if err != nil {
		// The built-in list is fixed at compile time; a failure here is
		// a programming error.
		panic(fmt.Sprintf("catalog: built-in sources invalid: %v", err))
	}
	return c
}

// LoadFile reads a catalog from a JSON file. The file holds an array of
// funding source objects in the same shape the API serves.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var sources []recommend.FundingSource
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}
	if len(sources) == 0 {
		return nil, fmt.Errorf("catalog: %s contains no sources", path)
	}

	c, err := New(sources)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	return c, nil
}

// All returns every source in the catalog. Implements
// recommend.SourceProvider. Callers must not mutate the returned slice.
func (c *Catalog) All() []recommend.FundingSource {
	return c.sources
}

// Len returns the number of sources in the catalog.
func (c *Catalog) Len() int {
	return len(c.sources)
}

// ByID returns the source with the given ID.
func (c *Catalog) ByID(id string) (recommend.FundingSource, bool) {
	i, ok := c.byID[id]
	if !ok {
		return recommend.FundingSource{}, false
	}
	return c.sources[i], true
}

// ByType returns every source of the given funding type, ordered by ID.
func (c *Catalog) ByType(t recommend.FundingType) []recommend.FundingSource {
	var out []recommend.FundingSource
	for i := range c.sources {
		if c.sources[i].Type == t {
			out = append(out, c.sources[i])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// validateSource checks the structural invariants a source must satisfy
// before the engine may evaluate it.
func validateSource(s *recommend.FundingSource) error {
	switch {
	case s.ID == "":
		return fmt.Errorf("catalog: source with empty ID")
	case s.Name == "":
		return fmt.Errorf("catalog: source %q has no name", s.ID)
	case s.Type == "":
		return fmt.Errorf("catalog: source %q has no funding type", s.ID)
	case s.Amount.Min <= 0 || s.Amount.Max < s.Amount.Min:
		return fmt.Errorf("catalog: source %q has invalid amount range [%g, %g]",
			s.ID, s.Amount.Min, s.Amount.Max)
	case len(s.Sectors) == 0:
		return fmt.Errorf("catalog: source %q has no sector list", s.ID)
	case s.MinTradingYears < 0 || s.MaxTradingYears < 0:
		return fmt.Errorf("catalog: source %q has negative trading year bounds", s.ID)
	case s.MaxTradingYears > 0 && s.MaxTradingYears < s.MinTradingYears:
		return fmt.Errorf("catalog: source %q has max trading years below min", s.ID)
	}
	if s.Commission != nil && (s.Commission.Min < 0 || s.Commission.Max < s.Commission.Min) {
		return fmt.Errorf("catalog: source %q has invalid commission range [%g, %g]",
			s.ID, s.Commission.Min, s.Commission.Max)
	}
	return nil
}
