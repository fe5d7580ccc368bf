// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import (
	"strings"
	"testing"
)

func TestProjectListWindow(t *testing.T) {
	engine, state := newTestEngine(t, 30, 8)
	state = press(engine, state, "f", "jj")

	frame := engine.Project(state, 120, 12)
	if len(frame.Rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(frame.Rows))
	}
	if frame.Rows[0].Position != state.ScrollOffset {
		t.Errorf("first row position = %d, want %d", frame.Rows[0].Position, state.ScrollOffset)
	}

	selected := 0
	for _, row := range frame.Rows {
		if row.Selected {
			selected++
			if row.Position != 12 {
				t.Errorf("selected row position = %d, want 12", row.Position)
			}
		}
	}
	if selected != 1 {
		t.Errorf("%d rows marked selected, want 1", selected)
	}
	if frame.Position != 13 || frame.Filtered != 30 || frame.Total != 30 {
		t.Errorf("position %d of %d (total %d), want 13 of 30 (30)", frame.Position, frame.Filtered, frame.Total)
	}
}

func TestProjectShortList(t *testing.T) {
	engine, state := newTestEngine(t, 3, 8)
	frame := engine.Project(state, 80, 12)
	if len(frame.Rows) != 3 {
		t.Errorf("got %d rows, want 3", len(frame.Rows))
	}
}

func TestProjectRowIdentifierFollowsSearchMode(t *testing.T) {
	engine, state := newTestEngine(t, 4, 8)
	tx := engine.Source().Snapshot.Transactions[0]

	frame := engine.Project(state, 80, 12)
	if frame.Rows[0].ID != tx.TxID.String() {
		t.Errorf("txid mode row ID = %s, want %s", frame.Rows[0].ID, tx.TxID)
	}
	if !frame.Rows[0].Segwit {
		t.Error("witness transaction row not marked segwit")
	}

	state = press(engine, state, "m")
	frame = engine.Project(state, 80, 12)
	if frame.Rows[0].ID != tx.WTxID.String() {
		t.Errorf("wtxid mode row ID = %s, want %s", frame.Rows[0].ID, tx.WTxID)
	}
}

func TestProjectMatchRange(t *testing.T) {
	engine, state := newTestEngine(t, 10, 8)
	identifier := engine.txids[2]
	query := identifier[30:36]

	state = press(engine, state, "i", strings.ToUpper(query))
	frame := engine.Project(state, 80, 12)

	for _, row := range frame.Rows {
		if row.ID[row.MatchStart:row.MatchEnd] != query {
			t.Errorf("row %d match %q, want %q", row.Index, row.ID[row.MatchStart:row.MatchEnd], query)
		}
	}
}

func TestProjectDetailWindow(t *testing.T) {
	engine, state := newTestEngine(t, 5, 6)
	state = press(engine, state, "j", tabKey, "jjj")

	frame := engine.Project(state, 100, 10)
	lines := DetailLines(engine.Source().Snapshot.Transactions[1])
	if frame.DetailLines != len(lines) {
		t.Errorf("DetailLines = %d, want %d", frame.DetailLines, len(lines))
	}
	if len(frame.Detail) != 6 {
		t.Fatalf("got %d detail lines, want 6", len(frame.Detail))
	}
	if frame.Detail[0] != lines[3] {
		t.Errorf("first visible detail line = %q, want %q", frame.Detail[0], lines[3])
	}
	if frame.DetailTitle != "Transaction 2 of 5" {
		t.Errorf("DetailTitle = %q", frame.DetailTitle)
	}
}

func TestProjectDetailContent(t *testing.T) {
	engine, state := newTestEngine(t, 2, 100)
	frame := engine.Project(state, 100, 104)
	text := strings.Join(frame.Detail, "\n")
	tx := engine.Source().Snapshot.Transactions[0]
	for _, want := range []string{`"txid": "` + tx.TxID.String(), `"wtxid"`, `"witness"`, `"trailing_bytes"`} {
		if !strings.Contains(text, want) {
			t.Errorf("detail text missing %s", want)
		}
	}
}

func TestProjectHeaderInfo(t *testing.T) {
	engine := NewEngine(Source{
		Snapshot:    testSnapshot(t, 4),
		Path:        "/data/mempool.dat",
		Fingerprint: "abc123",
		Compression: "zstd",
	}, DefaultKeyMap)
	state := engine.Resize(engine.Initial(), 8, 8)

	if frame := engine.Project(state, 80, 12); frame.HeaderInfo != nil {
		t.Error("HeaderInfo set without the popup open")
	}

	state = press(engine, state, "h")
	frame := engine.Project(state, 80, 12)
	values := map[string]string{}
	for _, field := range frame.HeaderInfo {
		values[field.Label] = field.Value
	}
	want := map[string]string{
		"Version":      "2",
		"Format":       "V2",
		"XOR key":      "5aa5",
		"Transactions": "4",
		"Fingerprint":  "abc123",
		"Compression":  "zstd",
		"File":         "/data/mempool.dat",
	}
	for label, value := range want {
		if values[label] != value {
			t.Errorf("%s = %q, want %q", label, values[label], value)
		}
	}
}

func TestProjectEmptyFilter(t *testing.T) {
	engine, state := newTestEngine(t, 4, 8)
	state = press(engine, state, "i", "xyz")
	frame := engine.Project(state, 80, 12)
	if len(frame.Rows) != 0 || frame.Position != 0 || frame.Detail != nil {
		t.Errorf("empty filter frame: %d rows, position %d, %d detail lines",
			len(frame.Rows), frame.Position, len(frame.Detail))
	}
}
