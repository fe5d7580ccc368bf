// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Field is one labelled row in an [InfoModal].
type Field struct {
	Label string
	Value string
}

// InfoModal is a read-only box of labelled values with a title and a
// footer hint, drawn centred over the current view.
type InfoModal struct {
	Title  string
	Fields []Field
	Footer string
	Theme  Theme
}

// infoModalChromeWidth is the horizontal overhead: 2 columns of
// border plus 2 columns of padding.
const infoModalChromeWidth = 4

// Render produces the modal lines for splicing onto the view with
// [SpliceOverlay], and the anchor that centres them on a screen of the
// given size. Values wider than the screen allows are truncated.
func (modal InfoModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	labelWidth := 0
	for _, field := range modal.Fields {
		labelWidth = max(labelWidth, ansi.StringWidth(field.Label))
	}

	innerWidth := max(ansi.StringWidth(modal.Title), ansi.StringWidth(modal.Footer))
	for _, field := range modal.Fields {
		innerWidth = max(innerWidth, labelWidth+2+ansi.StringWidth(field.Value))
	}
	if limit := screenWidth - infoModalChromeWidth; innerWidth > limit {
		innerWidth = max(limit, 1)
	}

	backgroundStyle := lipgloss.NewStyle().Background(modal.Theme.TooltipBackground)
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Theme.HeaderForeground).
		Background(modal.Theme.TooltipBackground)
	labelStyle := lipgloss.NewStyle().
		Foreground(modal.Theme.FaintText).
		Background(modal.Theme.TooltipBackground)
	valueStyle := lipgloss.NewStyle().
		Foreground(modal.Theme.TooltipForeground).
		Background(modal.Theme.TooltipBackground)
	footerStyle := lipgloss.NewStyle().
		Foreground(modal.Theme.HelpText).
		Background(modal.Theme.TooltipBackground)

	lines := make([]string, 0, len(modal.Fields)+3)
	lines = append(lines, PadLine(titleStyle.Render(modal.Title), innerWidth, backgroundStyle))
	lines = append(lines, PadLine("", innerWidth, backgroundStyle))
	for _, field := range modal.Fields {
		label := field.Label + strings.Repeat(" ", labelWidth-ansi.StringWidth(field.Label)+2)
		row := labelStyle.Render(label) + valueStyle.Render(field.Value)
		lines = append(lines, PadLine(row, innerWidth, backgroundStyle))
	}
	lines = append(lines, PadLine(footerStyle.Render(modal.Footer), innerWidth, backgroundStyle))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Theme.BorderColor).
		BorderBackground(modal.Theme.TooltipBackground).
		Background(modal.Theme.TooltipBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))

	resultLines := strings.Split(rendered, "\n")
	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}

	anchorX := max((screenWidth-renderedWidth)/2, 0)
	anchorY := max((screenHeight-len(resultLines))/2, 0)
	return resultLines, anchorX, anchorY
}
