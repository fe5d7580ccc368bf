// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/bureau-foundation/mempoolview/lib/codec"
	"github.com/bureau-foundation/mempoolview/lib/mempool"
)

func TestExportToFile(t *testing.T) {
	path, transactions := writeMempool(t, 3)
	output := filepath.Join(t.TempDir(), "mempool.cbor")

	got := mustExecute(t, "-f", path, "export", "-o", output)
	if got.stdout != "" {
		t.Errorf("stdout = %q, want nothing when writing to a file", got.stdout)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer file.Close()
	decoder := codec.NewDecoder(file)

	var header exportHeader
	if err := decoder.Decode(&header); err != nil {
		t.Fatalf("decoding header record: %v", err)
	}
	if header.Version != 2 || header.Format != "V2" || header.Transactions != 3 {
		t.Errorf("header = %+v, want version 2, V2, 3 transactions", header)
	}
	if !bytes.Equal(header.XorKey, testKey) {
		t.Errorf("xor_key = %x, want %x", header.XorKey, testKey)
	}

	for index, tx := range transactions {
		var view mempool.TransactionView
		if err := decoder.Decode(&view); err != nil {
			t.Fatalf("decoding record %d: %v", index, err)
		}
		if view.TxID != expectedTxID(tx) {
			t.Errorf("record %d txid = %s, want %s", index, view.TxID, expectedTxID(tx))
		}
		if len(view.Inputs) != 1 || len(view.Outputs) != 1 {
			t.Errorf("record %d has %d inputs, %d outputs, want 1 and 1",
				index, len(view.Inputs), len(view.Outputs))
		}
	}

	var extra mempool.TransactionView
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		t.Errorf("decoding past the last record = %v, want io.EOF", err)
	}
}

func TestExportToStdoutIsDeterministic(t *testing.T) {
	path, _ := writeMempool(t, 5)

	first := mustExecute(t, "-f", path, "export")
	second := mustExecute(t, "-f", path, "export", "-o", "-")

	if len(first.stdout) == 0 {
		t.Fatal("export wrote nothing to stdout")
	}
	if first.stdout != second.stdout {
		t.Error("exporting the same snapshot twice produced different bytes")
	}
}

func TestExportVersion1OmitsKey(t *testing.T) {
	data := encodeMempool(t, mempool.Encoder{Version: 1}, buildTransactions(1))
	path := filepath.Join(t.TempDir(), "v1.dat")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	got := mustExecute(t, "-f", path, "export")

	var header map[string]any
	if err := codec.NewDecoder(bytes.NewReader([]byte(got.stdout))).Decode(&header); err != nil {
		t.Fatalf("decoding header record: %v", err)
	}
	if _, present := header["xor_key"]; present {
		t.Errorf("version 1 export header has xor_key: %v", header)
	}
	if header["format"] != "V1" {
		t.Errorf("format = %v, want V1", header["format"])
	}
}
