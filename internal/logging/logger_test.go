// Marquee - Movie Catalog Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Level != "info" {
		t.Errorf("expected default level 'info', got '%s'", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("expected default format 'json', got '%s'", cfg.Format)
	}
	if cfg.Caller {
		t.Error("expected default caller to be false")
	}
	if !cfg.Timestamp {
		t.Error("expected default timestamp to be true")
	}
}

func TestInit(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{
		Level:     "debug",
		Format:    "json",
		Timestamp: true,
		Output:    &buf,
	})

	Info().Str("collection", "movies").Msg("indexes ensured")

	output := buf.String()
	if !strings.Contains(output, "indexes ensured") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, `"level":"info"`) {
		t.Errorf("expected output to contain level, got: %s", output)
	}
	if !strings.Contains(output, `"collection":"movies"`) {
		t.Errorf("expected output to contain field, got: %s", output)
	}
}

func TestInit_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Level: "info", Format: "console", Output: &buf})
	Warn().Msg("console line")

	output := buf.String()
	if !strings.Contains(output, "console line") {
		t.Errorf("expected console output to contain message, got: %s", output)
	}
	if strings.Contains(output, `"message"`) {
		t.Errorf("console output should not be JSON, got: %s", output)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"panic", zerolog.PanicLevel},
		{"disabled", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
		{" debug ", zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := parseLevel(tt.input); got != tt.expected {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestInit_ServiceField(t *testing.T) {
	var buf bytes.Buffer
	defer Init(DefaultConfig())

	Init(Config{Level: "info", Output: &buf})
	Info().Msg("hello")

	if !strings.Contains(buf.String(), `"service":"marquee"`) {
		t.Errorf("expected service field, got: %s", buf.String())
	}
	if strings.Contains(buf.String(), `"time"`) {
		t.Errorf("timestamp disabled but present: %s", buf.String())
	}
}

func TestSetLevelString(t *testing.T) {
	prev := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(prev)

	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)
	SetLogger(NewTestLogger(&buf))

	SetLevelString("error")
	Info().Msg("suppressed")
	Error().Msg("kept")

	if strings.Contains(buf.String(), "suppressed") {
		t.Errorf("info line should be filtered at error level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("error line missing: %s", buf.String())
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)

	SetLogger(NewTestLogger(&buf))
	Err(nil).Msg("nil error still logs")
	Error().Str("operation", "delete_movie").Msg("store failure")

	output := buf.String()
	if !strings.Contains(output, "store failure") {
		t.Errorf("expected output to contain message, got: %s", output)
	}
	if !strings.Contains(output, `"operation":"delete_movie"`) {
		t.Errorf("expected output to contain operation field, got: %s", output)
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	original := Logger()
	defer SetLogger(original)

	SetLogger(NewTestLogger(&buf))
	child := With().Str("component", "store").Logger()
	child.Info().Msg("child message")

	if !strings.Contains(buf.String(), `"component":"store"`) {
		t.Errorf("expected component field, got: %s", buf.String())
	}
}
