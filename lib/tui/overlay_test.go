// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestSpliceOverlayReplacesRegion(t *testing.T) {
	view := strings.Join([]string{
		"aaaaaaaaaa",
		"bbbbbbbbbb",
		"cccccccccc",
	}, "\n")

	result := SpliceOverlay(view, []string{"XX", "YY"}, 3, 1)
	lines := strings.Split(ansi.Strip(result), "\n")

	want := []string{"aaaaaaaaaa", "bbbXXbbbbb", "cccYYccccc"}
	for index := range want {
		if lines[index] != want[index] {
			t.Errorf("line %d = %q, want %q", index, lines[index], want[index])
		}
	}
}

func TestSpliceOverlayClipsOutsideView(t *testing.T) {
	view := "one\ntwo"
	result := SpliceOverlay(view, []string{"A", "B", "C"}, 0, 1)
	lines := strings.Split(ansi.Strip(result), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "one" || lines[1] != "Awo" {
		t.Errorf("lines = %q, want [one Awo]", lines)
	}
}

func TestSpliceOverlayPadsShortLines(t *testing.T) {
	result := SpliceOverlay("ab", []string{"Z"}, 5, 0)
	if got := ansi.Strip(result); got != "ab   Z" {
		t.Errorf("result = %q, want %q", got, "ab   Z")
	}
}

func TestSpliceOverlayEmpty(t *testing.T) {
	if got := SpliceOverlay("view", nil, 0, 0); got != "view" {
		t.Errorf("SpliceOverlay with no lines = %q, want unchanged", got)
	}
}

func TestPadLine(t *testing.T) {
	style := lipgloss.NewStyle()
	if got := ansi.StringWidth(PadLine("abc", 8, style)); got != 8 {
		t.Errorf("padded width = %d, want 8", got)
	}
	if got := ansi.Strip(PadLine("abcdefgh", 4, style)); got != "abcd" {
		t.Errorf("truncated = %q, want abcd", got)
	}
}
