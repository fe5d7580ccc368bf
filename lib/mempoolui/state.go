// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

// Mode is the input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (mode Mode) String() string {
	if mode == ModeInsert {
		return "INSERT"
	}
	return "NORMAL"
}

// Focus is the pane that receives navigation keys.
type Focus int

const (
	FocusList Focus = iota
	FocusDetail
)

func (focus Focus) String() string {
	if focus == FocusDetail {
		return "DETAIL"
	}
	return "LIST"
}

// SearchMode selects which identifier the search query matches.
type SearchMode int

const (
	SearchTxID SearchMode = iota
	SearchWTxID
)

func (mode SearchMode) String() string {
	if mode == SearchWTxID {
		return "wtxid"
	}
	return "txid"
}

// Popup is the overlay drawn above both panes, if any.
type Popup int

const (
	PopupNone Popup = iota
	PopupHeaderInfo
)

// pageSize is how far PgUp/PgDn move the selection or the detail
// scroll.
const pageSize = 10

// State is everything the inspector remembers between key events. It
// is a value: [Engine.Reduce] returns a new State and never modifies
// the one it was given.
type State struct {
	Mode        Mode
	Focus       Focus
	SearchMode  SearchMode
	SearchQuery string
	// PendingG is set after one "g" in Normal mode. Any other key
	// clears it.
	PendingG bool

	// SelectedIndex and ScrollOffset are positions in Filtered.
	SelectedIndex int
	ScrollOffset  int
	// DetailScrollOffset is the first visible line of the detail
	// pane.
	DetailScrollOffset int

	Popup Popup

	// Filtered holds the snapshot indices matching the current
	// search, in file order. Treated as immutable once built.
	Filtered []int

	// ListHeight and DetailHeight are the visible row counts, set by
	// [Engine.Resize].
	ListHeight   int
	DetailHeight int

	// Quit is set by the quit key. The event loop exits after seeing
	// it.
	Quit bool
}

// Selected returns the snapshot index of the selected transaction, or
// false when the filtered list is empty.
func (state State) Selected() (int, bool) {
	if state.SelectedIndex < 0 || state.SelectedIndex >= len(state.Filtered) {
		return 0, false
	}
	return state.Filtered[state.SelectedIndex], true
}
