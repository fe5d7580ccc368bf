// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface pieces for
// mempoolview's inspector: the colour theme, a scrollbar, centred
// modal boxes, and ANSI-aware overlay splicing.
//
// Everything here is a pure string function. Callers own layout and
// state; this package only draws.
package tui
