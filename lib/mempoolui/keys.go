// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the Normal-mode key bindings. Insert mode only
// recognises Exit and Backspace; every other printable key is text.
type KeyMap struct {
	// Navigation (context-sensitive: list movement or detail scrolling
	// depending on current focus).
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	// Top fires on its second consecutive press.
	Top    key.Binding
	Bottom key.Binding

	FocusToggle key.Binding

	// Search.
	Insert           key.Binding
	SearchModeToggle key.Binding
	SearchClear      key.Binding

	HeaderInfo key.Binding

	// Exit dismisses the popup in Normal mode and leaves Insert mode.
	Exit      key.Binding
	Backspace key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside the arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("b", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "f"),
		key.WithHelp("f", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("gg", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "bottom"),
	),
	FocusToggle: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "focus"),
	),
	Insert: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "search"),
	),
	SearchModeToggle: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "txid/wtxid"),
	),
	SearchClear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	HeaderInfo: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "header"),
	),
	Exit: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back"),
	),
	Backspace: key.NewBinding(
		key.WithKeys("backspace"),
		key.WithHelp("BS", "delete"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns the bindings listed in the help bar for Normal
// mode.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		keys.Quit, keys.Down, keys.Up, keys.PageDown, keys.Top, keys.Bottom,
		keys.FocusToggle, keys.Insert, keys.SearchModeToggle, keys.SearchClear, keys.HeaderInfo,
	}
}
