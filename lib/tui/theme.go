// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the inspector. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// FocusAccent marks the focused pane's border and scrollbar thumb.
	FocusAccent lipgloss.Color

	// Mode badges in the help bar.
	ModeNormal lipgloss.Color
	ModeInsert lipgloss.Color

	// SearchHighlightBackground tints the part of an id that matched
	// the query.
	SearchHighlightBackground lipgloss.Color

	// SegwitMarker colors the witness indicator in list rows.
	SegwitMarker lipgloss.Color

	// Modal boxes.
	TooltipForeground lipgloss.Color
	TooltipBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	FocusAccent: lipgloss.Color("220"), // yellow/amber

	ModeNormal: lipgloss.Color("75"),  // blue
	ModeInsert: lipgloss.Color("114"), // green

	SearchHighlightBackground: lipgloss.Color("58"), // dark amber

	SegwitMarker: lipgloss.Color("141"), // light purple

	TooltipForeground: lipgloss.Color("252"),
	TooltipBackground: lipgloss.Color("237"),
}
