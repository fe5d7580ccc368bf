// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bureau-foundation/mempoolview/lib/mempool"
	"github.com/bureau-foundation/mempoolview/lib/tui"
)

// Row is one visible list entry.
type Row struct {
	// Index is the position in the snapshot; Position is the position
	// in the filtered list.
	Index    int
	Position int
	// ID is the identifier selected by the search mode, in display
	// hex.
	ID          string
	Time        string
	VirtualSize int
	Segwit      bool
	Selected    bool
	// MatchStart and MatchEnd bound the query match within ID. Both
	// are zero when there is no query.
	MatchStart int
	MatchEnd   int
}

// Frame is a complete, unstyled description of one screen.
type Frame struct {
	Width  int
	Height int

	Mode        Mode
	Focus       Focus
	SearchMode  SearchMode
	SearchQuery string

	// Rows is the visible window of the filtered list.
	Rows         []Row
	ScrollOffset int
	ListHeight   int
	// Filtered and Total count matching and all transactions.
	Filtered int
	Total    int
	// Position is the 1-based selected position, or 0 when nothing
	// matches.
	Position int

	// Detail is the visible window of the selected transaction's
	// detail text; DetailLines is its full length.
	DetailTitle        string
	Detail             []string
	DetailLines        int
	DetailScrollOffset int
	DetailHeight       int

	// HeaderInfo is set when the header popup is open.
	HeaderInfo []tui.Field
}

// Project builds the Frame for state on a screen of the given size. It
// has no side effects.
func (engine *Engine) Project(state State, width, height int) Frame {
	frame := Frame{
		Width:              width,
		Height:             height,
		Mode:               state.Mode,
		Focus:              state.Focus,
		SearchMode:         state.SearchMode,
		SearchQuery:        state.SearchQuery,
		ScrollOffset:       state.ScrollOffset,
		ListHeight:         state.ListHeight,
		Filtered:           len(state.Filtered),
		Total:              len(engine.source.Snapshot.Transactions),
		DetailScrollOffset: state.DetailScrollOffset,
		DetailHeight:       state.DetailHeight,
	}

	identifiers := engine.txids
	if state.SearchMode == SearchWTxID {
		identifiers = engine.wtxids
	}
	query := strings.ToLower(state.SearchQuery)

	end := min(state.ScrollOffset+state.ListHeight, len(state.Filtered))
	for position := state.ScrollOffset; position < end; position++ {
		index := state.Filtered[position]
		tx := engine.source.Snapshot.Transactions[index]
		row := Row{
			Index:       index,
			Position:    position,
			ID:          identifiers[index],
			Time:        time.Unix(tx.Timestamp, 0).UTC().Format("2006-01-02 15:04:05"),
			VirtualSize: tx.VirtualSize(),
			Segwit:      tx.HasWitness,
			Selected:    position == state.SelectedIndex,
		}
		if query != "" {
			if start := strings.Index(row.ID, query); start >= 0 {
				row.MatchStart, row.MatchEnd = start, start+len(query)
			}
		}
		frame.Rows = append(frame.Rows, row)
	}

	if index, ok := state.Selected(); ok {
		frame.Position = state.SelectedIndex + 1
		tx := engine.source.Snapshot.Transactions[index]
		lines := DetailLines(tx)
		frame.DetailTitle = fmt.Sprintf("Transaction %d of %d", index+1, frame.Total)
		frame.DetailLines = len(lines)
		start := min(state.DetailScrollOffset, len(lines))
		stop := min(start+state.DetailHeight, len(lines))
		frame.Detail = lines[start:stop]
	}

	if state.Popup == PopupHeaderInfo {
		frame.HeaderInfo = engine.headerFields()
	}

	return frame
}

func (engine *Engine) headerFields() []tui.Field {
	snapshot := engine.source.Snapshot
	header := snapshot.Header
	xorKey := "(none)"
	if header.Format == mempool.FormatV2 {
		xorKey = header.XorKey.String()
		if xorKey == "" {
			xorKey = "(empty)"
		}
	}

	fields := []tui.Field{
		{Label: "Version", Value: fmt.Sprintf("%d", header.Version)},
		{Label: "Format", Value: header.Format.String()},
		{Label: "XOR key", Value: xorKey},
		{Label: "Transactions", Value: fmt.Sprintf("%d", header.TxCount)},
	}
	if engine.source.Fingerprint != "" {
		fields = append(fields, tui.Field{Label: "Fingerprint", Value: engine.source.Fingerprint})
	}
	if len(snapshot.Trailer) > 0 {
		fields = append(fields, tui.Field{Label: "Trailer", Value: fmt.Sprintf("%d bytes", len(snapshot.Trailer))})
	}
	if engine.source.Compression != "" && engine.source.Compression != mempool.CompressionNone.String() {
		fields = append(fields, tui.Field{Label: "Compression", Value: engine.source.Compression})
	}
	if engine.source.Path != "" {
		fields = append(fields, tui.Field{Label: "File", Value: engine.source.Path})
	}
	return fields
}
