// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/mempoolview/lib/mempool"
)

// Source is the data the inspector browses: a decoded snapshot and
// facts about the file it came from, shown in the header popup.
type Source struct {
	Snapshot    *mempool.Snapshot
	Path        string
	Fingerprint string
	Compression string
}

// Engine holds the read-only inputs of the reducer: the snapshot, the
// key map, and the lowercase display hex of every identifier,
// computed once so that filtering does not re-encode hashes.
type Engine struct {
	source Source
	keys   KeyMap

	txids  []string
	wtxids []string
	all    []int
}

// NewEngine prepares an engine for source.
func NewEngine(source Source, keys KeyMap) *Engine {
	transactions := source.Snapshot.Transactions
	engine := &Engine{
		source: source,
		keys:   keys,
		txids:  make([]string, len(transactions)),
		wtxids: make([]string, len(transactions)),
		all:    make([]int, len(transactions)),
	}
	for index, tx := range transactions {
		engine.txids[index] = tx.TxID.String()
		engine.wtxids[index] = tx.WTxID.String()
		engine.all[index] = index
	}
	return engine
}

// Source returns the engine's source.
func (engine *Engine) Source() Source {
	return engine.source
}

// Initial returns the starting state: Normal mode, list focus, no
// query, first transaction selected.
func (engine *Engine) Initial() State {
	return State{
		Filtered:     engine.all,
		ListHeight:   1,
		DetailHeight: 1,
	}
}

// Resize records the visible row counts and re-clamps both scroll
// offsets.
func (engine *Engine) Resize(state State, listHeight, detailHeight int) State {
	state.ListHeight = max(listHeight, 1)
	state.DetailHeight = max(detailHeight, 1)
	state.ScrollOffset = ensureVisible(state.SelectedIndex, state.ScrollOffset, len(state.Filtered), state.ListHeight)
	state.DetailScrollOffset = engine.clampDetailScroll(state, state.DetailScrollOffset)
	return state
}

// Reduce applies one key event. Keys with no meaning in the current
// mode, and movement past either end of the list, leave the state
// unchanged apart from clearing a pending "g".
func (engine *Engine) Reduce(state State, message tea.KeyMsg) State {
	if state.Mode == ModeInsert {
		return engine.reduceInsert(state, message)
	}
	return engine.reduceNormal(state, message)
}

func (engine *Engine) reduceNormal(state State, message tea.KeyMsg) State {
	keys := engine.keys
	pendingG := state.PendingG
	state.PendingG = false

	switch {
	case key.Matches(message, keys.Top):
		if !pendingG {
			state.PendingG = true
			return state
		}
		state = engine.selectIndex(state, 0)
		state.ScrollOffset = 0
		state.DetailScrollOffset = 0

	case key.Matches(message, keys.Bottom):
		state = engine.selectIndex(state, len(state.Filtered)-1)

	case key.Matches(message, keys.Quit):
		state.Quit = true

	case key.Matches(message, keys.FocusToggle):
		if state.Focus == FocusList {
			state.Focus = FocusDetail
		} else {
			state.Focus = FocusList
		}

	case key.Matches(message, keys.Insert):
		state.Mode = ModeInsert

	case key.Matches(message, keys.Down):
		state = engine.move(state, 1)

	case key.Matches(message, keys.Up):
		state = engine.move(state, -1)

	case key.Matches(message, keys.PageDown):
		state = engine.move(state, pageSize)

	case key.Matches(message, keys.PageUp):
		state = engine.move(state, -pageSize)

	case key.Matches(message, keys.SearchModeToggle):
		if state.SearchMode == SearchTxID {
			state.SearchMode = SearchWTxID
		} else {
			state.SearchMode = SearchTxID
		}
		state = engine.applyFilter(state)

	case key.Matches(message, keys.SearchClear):
		state.SearchQuery = ""
		state = engine.applyFilter(state)

	case key.Matches(message, keys.HeaderInfo):
		state.Popup = PopupHeaderInfo

	case key.Matches(message, keys.Exit):
		state.Popup = PopupNone
	}

	return state
}

func (engine *Engine) reduceInsert(state State, message tea.KeyMsg) State {
	switch {
	case key.Matches(message, engine.keys.Exit):
		state.Mode = ModeNormal

	case key.Matches(message, engine.keys.Backspace):
		if state.SearchQuery == "" {
			return state
		}
		_, size := utf8.DecodeLastRuneInString(state.SearchQuery)
		state.SearchQuery = state.SearchQuery[:len(state.SearchQuery)-size]
		state = engine.applyFilter(state)

	case message.Type == tea.KeyRunes && !message.Alt:
		var builder strings.Builder
		for _, character := range message.Runes {
			if unicode.IsPrint(character) {
				builder.WriteRune(character)
			}
		}
		if builder.Len() == 0 {
			return state
		}
		state.SearchQuery += builder.String()
		state = engine.applyFilter(state)

	case message.Type == tea.KeySpace:
		state.SearchQuery += " "
		state = engine.applyFilter(state)
	}
	return state
}

// move shifts the selection in list focus, or the detail scroll in
// detail focus, by delta, clamping at both ends.
func (engine *Engine) move(state State, delta int) State {
	if state.Focus == FocusDetail {
		state.DetailScrollOffset = engine.clampDetailScroll(state, state.DetailScrollOffset+delta)
		return state
	}
	return engine.selectIndex(state, state.SelectedIndex+delta)
}

// selectIndex moves the selection to index, clamped to the filtered
// list, and scrolls to keep it visible. Changing the selection resets
// the detail scroll.
func (engine *Engine) selectIndex(state State, index int) State {
	if len(state.Filtered) == 0 {
		state.SelectedIndex = 0
		state.ScrollOffset = 0
		state.DetailScrollOffset = 0
		return state
	}
	index = min(max(index, 0), len(state.Filtered)-1)
	if index != state.SelectedIndex {
		state.DetailScrollOffset = 0
	}
	state.SelectedIndex = index
	state.ScrollOffset = ensureVisible(index, state.ScrollOffset, len(state.Filtered), state.ListHeight)
	return state
}

// applyFilter recomputes Filtered from the query and search mode and
// returns to the top of the new list.
func (engine *Engine) applyFilter(state State) State {
	query := strings.ToLower(state.SearchQuery)
	if query == "" {
		state.Filtered = engine.all
	} else {
		identifiers := engine.txids
		if state.SearchMode == SearchWTxID {
			identifiers = engine.wtxids
		}
		filtered := make([]int, 0)
		for index, identifier := range identifiers {
			if strings.Contains(identifier, query) {
				filtered = append(filtered, index)
			}
		}
		state.Filtered = filtered
	}
	state.SelectedIndex = 0
	state.ScrollOffset = 0
	state.DetailScrollOffset = 0
	return state
}

// clampDetailScroll bounds offset to the selected transaction's detail
// text.
func (engine *Engine) clampDetailScroll(state State, offset int) int {
	lines := 0
	if index, ok := state.Selected(); ok {
		lines = len(DetailLines(engine.source.Snapshot.Transactions[index]))
	}
	maxOffset := max(lines-state.DetailHeight, 0)
	return min(max(offset, 0), maxOffset)
}

// ensureVisible returns the scroll offset that keeps selected within a
// window of height rows, changing offset as little as possible and
// never scrolling past the end of a list of length rows.
func ensureVisible(selected, offset, length, height int) int {
	height = max(height, 1)
	maxOffset := max(length-height, 0)
	offset = min(offset, maxOffset)
	if selected < offset {
		offset = selected
	}
	if selected >= offset+height {
		offset = selected - height + 1
	}
	return max(offset, 0)
}
