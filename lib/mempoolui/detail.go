// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempoolui

import (
	"encoding/json"
	"strings"

	"github.com/bureau-foundation/mempoolview/lib/mempool"
)

// DetailLines returns the detail pane text for tx: its
// [mempool.TransactionView] as indented JSON, one element per line.
func DetailLines(tx *mempool.Transaction) []string {
	encoded, err := json.MarshalIndent(mempool.Describe(tx), "", "  ")
	if err != nil {
		// TransactionView holds only strings, integers, and slices of
		// them.
		panic("mempoolui: encoding transaction view: " + err.Error())
	}
	return strings.Split(string(encoded), "\n")
}
