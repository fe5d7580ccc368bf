// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/mempoolview/lib/tui"
)

// Renderer draws a Frame. Implementations must not retain or modify
// the frame.
type Renderer interface {
	Render(frame Frame) string
}

// chromeRows is the number of screen rows that are not list or detail
// content: title bar, column header, separator, help bar.
const chromeRows = 4

// RenderOptions configures a [TerminalRenderer].
type RenderOptions struct {
	Theme tui.Theme
	Keys  KeyMap
	// ListWidthPercent is the share of the screen width given to the
	// list pane.
	ListWidthPercent int
	// Color enables ANSI colors and detail highlighting. When false
	// the output is plain text.
	Color bool
	// Title is shown at the left of the title bar.
	Title string
}

// TerminalRenderer draws frames with lipgloss, highlighting the
// detail pane's JSON with chroma.
type TerminalRenderer struct {
	options  RenderOptions
	renderer *lipgloss.Renderer
}

// NewTerminalRenderer returns a renderer for options. A zero
// ListWidthPercent means 30.
func NewTerminalRenderer(options RenderOptions) *TerminalRenderer {
	if options.ListWidthPercent == 0 {
		options.ListWidthPercent = 30
	}
	options.ListWidthPercent = min(max(options.ListWidthPercent, 20), 80)

	// Force the profile: bubbletea owns the terminal, so detection
	// against the output would only ever downgrade.
	profile := termenv.Ascii
	if options.Color {
		profile = termenv.ANSI256
	}
	renderer := lipgloss.NewRenderer(os.Stdout, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &TerminalRenderer{options: options, renderer: renderer}
}

func (terminal *TerminalRenderer) style() lipgloss.Style {
	return terminal.renderer.NewStyle()
}

// Render implements [Renderer].
func (terminal *TerminalRenderer) Render(frame Frame) string {
	if frame.Width <= 0 || frame.Height < chromeRows+1 {
		return "Terminal too small."
	}

	listWidth := max(frame.Width*terminal.options.ListWidthPercent/100, 12)
	// List content, its scrollbar, then the divider.
	detailWidth := max(frame.Width-listWidth-2, 1)
	listContentWidth := listWidth - 1

	listPane := terminal.renderList(frame, listContentWidth)
	scrollbar := tui.RenderScrollbar(terminal.options.Theme, frame.ListHeight,
		frame.Filtered, frame.ListHeight, frame.ScrollOffset, frame.Focus == FocusList)
	divider := terminal.renderDivider(frame.ListHeight)
	detailPane := terminal.renderDetail(frame, detailWidth)

	body := lipgloss.JoinHorizontal(lipgloss.Top, listPane, scrollbar, divider, detailPane)

	sections := []string{
		terminal.renderTitle(frame),
		terminal.renderColumnHeaders(frame, listWidth+1, detailWidth),
		body,
		terminal.style().Foreground(terminal.options.Theme.BorderColor).
			Render(strings.Repeat("─", frame.Width)),
		terminal.renderHelp(frame),
	}
	view := strings.Join(sections, "\n")

	if frame.HeaderInfo != nil {
		modal := tui.InfoModal{
			Title:  "Mempool header",
			Fields: frame.HeaderInfo,
			Footer: "Esc close",
			Theme:  terminal.options.Theme,
		}
		lines, anchorX, anchorY := modal.Render(frame.Width, frame.Height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	return view
}

func (terminal *TerminalRenderer) renderTitle(frame Frame) string {
	theme := terminal.options.Theme
	title := terminal.style().Bold(true).Foreground(theme.HeaderForeground).
		Render(" " + terminal.options.Title)
	summary := terminal.style().Foreground(theme.FaintText).
		Render(fmt.Sprintf("  %d transactions", frame.Total))
	return ansi.Truncate(title+summary, frame.Width, "…")
}

func (terminal *TerminalRenderer) renderColumnHeaders(frame Frame, listWidth, detailWidth int) string {
	theme := terminal.options.Theme
	listStyle := terminal.style().Foreground(theme.FaintText).Width(listWidth)
	detailStyle := terminal.style().Foreground(theme.FaintText).Width(detailWidth + 1)
	if frame.Focus == FocusList {
		listStyle = listStyle.Foreground(theme.FocusAccent).Bold(true)
	} else {
		detailStyle = detailStyle.Foreground(theme.FocusAccent).Bold(true)
	}

	listHeader := fmt.Sprintf("  %s", strings.ToUpper(frame.SearchMode.String()))
	detailHeader := " " + frame.DetailTitle
	return listStyle.Render(ansi.Truncate(listHeader, listWidth, "")) +
		detailStyle.Render(ansi.Truncate(detailHeader, detailWidth+1, ""))
}

func (terminal *TerminalRenderer) renderList(frame Frame, width int) string {
	theme := terminal.options.Theme
	lines := make([]string, frame.ListHeight)

	if frame.Filtered == 0 {
		message := "No transactions."
		if frame.SearchQuery != "" {
			message = "No matches."
		}
		lines[0] = terminal.style().Foreground(theme.FaintText).Render(" " + message)
	}

	for index, row := range frame.Rows {
		if index >= len(lines) {
			break
		}
		lines[index] = terminal.renderRow(row, width)
	}

	for index, line := range lines {
		lines[index] = padTo(line, width)
	}
	return strings.Join(lines, "\n")
}

func (terminal *TerminalRenderer) renderRow(row Row, width int) string {
	theme := terminal.options.Theme
	base := terminal.style().Foreground(theme.NormalText)
	if row.Selected {
		base = base.Background(theme.SelectedBackground).Foreground(theme.SelectedForeground).Bold(true)
	}
	match := base.Background(theme.SearchHighlightBackground)

	marker := "  "
	if row.Selected {
		marker = "▸ "
	}

	// Marker, id, space, segwit flag.
	idWidth := max(width-4, 1)
	identifier := row.ID
	var rendered string
	if row.MatchEnd > row.MatchStart {
		rendered = base.Render(identifier[:row.MatchStart]) +
			match.Render(identifier[row.MatchStart:row.MatchEnd]) +
			base.Render(identifier[row.MatchEnd:])
	} else {
		rendered = base.Render(identifier)
	}
	rendered = ansi.Truncate(rendered, idWidth, "…")
	rendered += base.Render(strings.Repeat(" ", idWidth-ansi.StringWidth(rendered)))

	flag := base.Render("  ")
	if row.Segwit {
		flag = base.Render(" ") + base.Foreground(theme.SegwitMarker).Render("w")
	}
	return base.Render(marker) + rendered + flag
}

func (terminal *TerminalRenderer) renderDivider(height int) string {
	lines := make([]string, height)
	for index := range lines {
		lines[index] = "│"
	}
	return terminal.style().Foreground(terminal.options.Theme.BorderColor).
		Render(strings.Join(lines, "\n"))
}

func (terminal *TerminalRenderer) renderDetail(frame Frame, width int) string {
	lines := make([]string, frame.DetailHeight)

	content := frame.Detail
	if terminal.options.Color && len(content) > 0 {
		content = terminal.highlight(content)
	}
	for index := range lines {
		line := ""
		if index < len(content) {
			line = " " + content[index]
		}
		lines[index] = padTo(ansi.Truncate(line, width, "…"), width)
	}
	return strings.Join(lines, "\n")
}

// highlight syntax-highlights the visible JSON lines. Falls back to
// the plain lines if chroma fails or changes the line count.
func (terminal *TerminalRenderer) highlight(lines []string) []string {
	var buffer strings.Builder
	err := quick.Highlight(&buffer, strings.Join(lines, "\n"), "json", "terminal256", "monokai")
	if err != nil {
		return lines
	}
	highlighted := strings.Split(strings.TrimRight(buffer.String(), "\n"), "\n")
	if len(highlighted) != len(lines) {
		return lines
	}
	return highlighted
}

func (terminal *TerminalRenderer) renderHelp(frame Frame) string {
	theme := terminal.options.Theme
	style := terminal.style().Foreground(theme.HelpText)

	modeColor := theme.ModeNormal
	if frame.Mode == ModeInsert {
		modeColor = theme.ModeInsert
	}
	badge := terminal.style().Bold(true).Foreground(modeColor).Render(fmt.Sprintf(" [%s]", frame.Mode))

	var help string
	if frame.Mode == ModeInsert {
		help = fmt.Sprintf(" [%s] search %s: %s▏  Esc done  BS delete", frame.Focus, frame.SearchMode, frame.SearchQuery)
	} else {
		var parts []string
		for _, binding := range terminal.options.Keys.ShortHelp() {
			parts = append(parts, binding.Help().Key+" "+binding.Help().Desc)
		}
		help = fmt.Sprintf(" [%s] %s", frame.Focus, strings.Join(parts, "  "))
		if frame.SearchQuery != "" {
			help += fmt.Sprintf("  %s~%q", frame.SearchMode, frame.SearchQuery)
		}
	}
	help += fmt.Sprintf("  %d/%d", frame.Position, frame.Filtered)
	if frame.Filtered != frame.Total {
		help += fmt.Sprintf(" (of %d)", frame.Total)
	}

	return ansi.Truncate(badge+style.Render(help), frame.Width, "…")
}

// padTo pads line with spaces to width columns.
func padTo(line string, width int) string {
	if gap := width - ansi.StringWidth(line); gap > 0 {
		return line + strings.Repeat(" ", gap)
	}
	return line
}
