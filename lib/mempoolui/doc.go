// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mempoolui implements the interactive mempool inspector: a
// modal, vim-style browser over a decoded [mempool.Snapshot].
//
// The package is split so that behaviour can be tested without a
// terminal:
//
//   - [Engine.Reduce] is a pure reducer from (State, key event) to
//     State. It owns modal dispatch, the "gg" pending sequence, search
//     filtering, selection, and scroll clamping.
//   - [Engine.Project] turns a State into a [Frame], the complete
//     description of what is on screen, with no styling.
//   - A [Renderer] draws a Frame. [TerminalRenderer] produces styled
//     lipgloss output with a chroma-highlighted detail pane; tests
//     substitute a recording renderer and assert on Frames.
//   - [Model] adapts the three to bubbletea's Elm architecture.
//
// The snapshot is shared read-only. State holds only indices into it.
package mempoolui
