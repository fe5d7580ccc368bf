// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"encoding/json"
	"testing"

	"github.com/bureau-foundation/mempoolview/lib/testutil"
)

func TestDescribe(t *testing.T) {
	snapshot := mustDecode(t, v1File(1, entriesFor(testutil.WitnessTx(3))), Options{})
	tx := snapshot.Transactions[0]

	view := Describe(tx)
	if view.TxID != tx.TxID.String() || view.WTxID != tx.WTxID.String() {
		t.Errorf("view ids = %s %s, want %s %s", view.TxID, view.WTxID, tx.TxID, tx.WTxID)
	}
	if view.Time != "2023-11-14T22:13:20Z" {
		t.Errorf("Time = %q, want 2023-11-14T22:13:20Z", view.Time)
	}
	if !view.Segwit {
		t.Error("Segwit = false for a witness transaction")
	}
	if view.TotalOutput != 3000 {
		t.Errorf("TotalOutput = %d, want 3000", view.TotalOutput)
	}
	if len(view.Inputs) != 1 || len(view.Inputs[0].Witness) != 2 {
		t.Fatalf("inputs = %+v, want one input with two witness items", view.Inputs)
	}
	if view.Inputs[0].Witness[0] != "304403" {
		t.Errorf("first witness item = %q, want 304403", view.Inputs[0].Witness[0])
	}
	if view.TrailingBytes != "0000000000000000" {
		t.Errorf("TrailingBytes = %q, want 16 zeros", view.TrailingBytes)
	}
	if view.Size != tx.Size() || view.VirtualSize != tx.VirtualSize() || view.Weight != tx.Weight() {
		t.Errorf("view sizes %d/%d/%d, want %d/%d/%d",
			view.Size, view.VirtualSize, view.Weight, tx.Size(), tx.VirtualSize(), tx.Weight())
	}
}

func TestDescribeJSONFieldNames(t *testing.T) {
	snapshot := mustDecode(t, v1File(1, entriesFor(testutil.SimpleTx(1))), Options{})
	encoded, err := json.Marshal(Describe(snapshot.Transactions[0]))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, name := range []string{"txid", "wtxid", "timestamp", "vsize", "inputs", "outputs", "trailing_bytes"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("JSON output missing field %q", name)
		}
	}
	inputs := fields["inputs"].([]any)
	if _, ok := inputs[0].(map[string]any)["witness"]; ok {
		t.Error("legacy input emitted a witness field")
	}
}
