// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError reports one or more invalid business profile fields.
// It is surfaced to callers as a failed Result and never retried.
type ValidationError struct {
	// Fields maps field names to the reason they failed.
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid business profile"
	}
	return "invalid business profile: " + strings.Join(e.Messages(), "; ")
}

// Messages returns one human-readable message per failed field, sorted
// for deterministic output.
func (e *ValidationError) Messages() []string {
	msgs := make([]string, 0, len(e.Fields))
	for field, reason := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, reason))
	}
	sort.Strings(msgs)
	return msgs
}

// ConfigError reports invalid engine configuration. It is fatal at
// construction time: the engine refuses to score until corrected.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid scoring config: %s: %s", e.Field, e.Reason)
}
