// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestNewLoggerHandlerChoice(t *testing.T) {
	var text, structured bytes.Buffer
	newLogger(&text, true, slog.LevelInfo).Info("loaded", "transactions", 3)
	newLogger(&structured, false, slog.LevelInfo).Info("loaded", "transactions", 3)

	if !strings.Contains(text.String(), "transactions=3") {
		t.Errorf("terminal output = %q, want key=value text", text.String())
	}
	if !strings.Contains(structured.String(), `"transactions":3`) {
		t.Errorf("non-terminal output = %q, want JSON", structured.String())
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var buffer bytes.Buffer
	logger := newLogger(&buffer, false, slog.LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown")
	if strings.Contains(buffer.String(), "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(buffer.String(), "shown") {
		t.Error("warn record missing")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
	}
	for _, test := range tests {
		if got := ParseLevel(test.name); got != test.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}
