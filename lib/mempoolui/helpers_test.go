// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/mempoolview/lib/mempool"
	"github.com/bureau-foundation/mempoolview/lib/testutil"
)

// testSnapshot decodes a file of count transactions. Every third one
// carries witness data so txid and wtxid searches differ.
func testSnapshot(t *testing.T, count int) *mempool.Snapshot {
	t.Helper()
	if count > 256 {
		t.Fatalf("testSnapshot supports at most 256 transactions, got %d", count)
	}

	entries := make([]mempool.Entry, 0, count)
	for index := range count {
		tx := testutil.SimpleTx(byte(index))
		if index%3 == 0 {
			tx = testutil.WitnessTx(byte(index))
		}
		entries = append(entries, mempool.Entry{
			Transaction: tx.Bytes(),
			Timestamp:   1700000000 + int64(index),
		})
	}

	data, err := mempool.Encoder{Version: 2, XorKey: []byte{0x5a, 0xa5}}.Encode(entries, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	snapshot, err := mempool.Decode(data, mempool.Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return snapshot
}

// newTestEngine returns an engine over count transactions and a state
// sized to listHeight rows in both panes.
func newTestEngine(t *testing.T, count, listHeight int) (*Engine, State) {
	t.Helper()
	engine := NewEngine(Source{Snapshot: testSnapshot(t, count)}, DefaultKeyMap)
	return engine, engine.Resize(engine.Initial(), listHeight, listHeight)
}

func runeKey(character rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{character}}
}

var (
	tabKey       = tea.KeyMsg{Type: tea.KeyTab}
	escKey       = tea.KeyMsg{Type: tea.KeyEsc}
	backspaceKey = tea.KeyMsg{Type: tea.KeyBackspace}
	pageDownKey  = tea.KeyMsg{Type: tea.KeyPgDown}
	pageUpKey    = tea.KeyMsg{Type: tea.KeyPgUp}
	downKey      = tea.KeyMsg{Type: tea.KeyDown}
	upKey        = tea.KeyMsg{Type: tea.KeyUp}
)

// press applies keys in order. A string argument is typed one rune at
// a time.
func press(engine *Engine, state State, keys ...any) State {
	for _, pressed := range keys {
		switch pressed := pressed.(type) {
		case tea.KeyMsg:
			state = engine.Reduce(state, pressed)
		case string:
			for _, character := range pressed {
				state = engine.Reduce(state, runeKey(character))
			}
		default:
			panic("press: unsupported key type")
		}
	}
	return state
}

// checkScrollInvariant fails the test if the selection is outside the
// visible window or the scroll offset is out of range.
func checkScrollInvariant(t *testing.T, state State, context string) {
	t.Helper()
	length := len(state.Filtered)
	maxOffset := max(length-state.ListHeight, 0)
	if state.ScrollOffset < 0 || state.ScrollOffset > maxOffset {
		t.Errorf("%s: ScrollOffset = %d, want within [0, %d]", context, state.ScrollOffset, maxOffset)
	}
	if length == 0 {
		return
	}
	if state.SelectedIndex < state.ScrollOffset || state.SelectedIndex >= state.ScrollOffset+state.ListHeight {
		t.Errorf("%s: SelectedIndex %d outside window [%d, %d)", context,
			state.SelectedIndex, state.ScrollOffset, state.ScrollOffset+state.ListHeight)
	}
}
