// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitAndLog(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf, Timestamp: true})
	defer Init(DefaultConfig())

	Info().Str("key", "value").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"key":"value"`) {
		t.Errorf("missing structured field in output: %s", out)
	}
	if !strings.Contains(out, `"message":"hello"`) {
		t.Errorf("missing message in output: %s", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Msg("suppressed")
	Warn().Msg("emitted")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Error("debug message leaked through warn level")
	}
	if !strings.Contains(out, "emitted") {
		t.Error("warn message missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"garbage", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Output: &buf})
	defer Init(DefaultConfig())

	engineLogger := WithComponent("recommend")
	engineLogger.Info().Msg("scored")

	if !strings.Contains(buf.String(), `"component":"recommend"`) {
		t.Errorf("component field missing: %s", buf.String())
	}
}

func TestContextRequestID(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("empty context yielded request ID %q", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("RequestIDFromContext() = %q, want %q", got, "req-123")
	}
}

func TestCtxAttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	ctx := ContextWithLogger(context.Background(), logger)
	ctx = ContextWithRequestID(ctx, "req-456")

	Ctx(ctx).Info().Msg("handled")

	if !strings.Contains(buf.String(), `"request_id":"req-456"`) {
		t.Errorf("request_id missing from output: %s", buf.String())
	}
}

func TestGenerateRequestIDUnique(t *testing.T) {
	a, b := GenerateRequestID(), GenerateRequestID()
	if a == b {
		t.Error("consecutive request IDs collided")
	}
	if len(a) != 36 {
		t.Errorf("request ID %q is not a UUID", a)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	slogger := slog.New(NewSlogHandlerWithLogger(logger))
	slogger = slogger.With("service", "supervisor")
	slogger.Info("service started", "restarts", int64(2))

	out := buf.String()
	if !strings.Contains(out, `"service":"supervisor"`) {
		t.Errorf("WithAttrs field missing: %s", out)
	}
	if !strings.Contains(out, `"restarts":2`) {
		t.Errorf("record attr missing: %s", out)
	}
	if !strings.Contains(out, `"message":"service started"`) {
		t.Errorf("message missing: %s", out)
	}
}

func TestSlogAdapterGroups(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	slogger := slog.New(NewSlogHandlerWithLogger(logger)).WithGroup("http")
	slogger.Warn("slow response", "latency_ms", int64(900))

	if !strings.Contains(buf.String(), `"http.latency_ms":900`) {
		t.Errorf("grouped key missing: %s", buf.String())
	}
}

func TestSlogAdapterLevelMapping(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf).Level(zerolog.ErrorLevel)
	h := NewSlogHandlerWithLogger(logger)

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled on an error-level logger")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error disabled on an error-level logger")
	}
}
