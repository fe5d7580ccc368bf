// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/bureau-foundation/mempoolview/lib/mempool"
	"github.com/bureau-foundation/mempoolview/lib/testutil"
)

func TestHeaderVersion2(t *testing.T) {
	path, _ := writeMempool(t, 3)

	got := mustExecute(t, "--file", path, "header")

	for _, want := range []string{
		"Version:       2",
		"Format:        V2",
		"XOR key:       5aa501807f33cc00",
		"Transactions:  3",
		"Trailer:       0 bytes",
	} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("header output missing %q:\n%s", want, got.stdout)
		}
	}
	if strings.Contains(got.stdout, "Compression:") {
		t.Errorf("uncompressed file shows a compression line:\n%s", got.stdout)
	}
}

func TestHeaderVersion1HasNoKey(t *testing.T) {
	data := encodeMempool(t, mempool.Encoder{Version: 1}, buildTransactions(2))
	path := testutil.WriteFile(t, "v1.dat", data)

	got := mustExecute(t, "header", "-f", path)

	if strings.Contains(got.stdout, "XOR key") {
		t.Errorf("version 1 header shows an XOR key:\n%s", got.stdout)
	}
	if !strings.Contains(got.stdout, "Format:        V1") {
		t.Errorf("header output missing V1 format:\n%s", got.stdout)
	}
}

func TestHeaderJSON(t *testing.T) {
	path, _ := writeMempool(t, 4)

	got := mustExecute(t, "-f", path, "header", "--json")

	var summary headerSummary
	if err := json.Unmarshal([]byte(got.stdout), &summary); err != nil {
		t.Fatalf("header --json output is not JSON: %v\n%s", err, got.stdout)
	}
	if summary.Version != 2 || summary.Format != "V2" {
		t.Errorf("version/format = %d/%s, want 2/V2", summary.Version, summary.Format)
	}
	if summary.Transactions != 4 {
		t.Errorf("transactions = %d, want 4", summary.Transactions)
	}
	if summary.XorKey != "5aa501807f33cc00" {
		t.Errorf("xor_key = %q, want 5aa501807f33cc00", summary.XorKey)
	}
	if len(summary.Fingerprint) != 64 {
		t.Errorf("fingerprint = %q, want 64 hex characters", summary.Fingerprint)
	}
	if summary.Compression != "none" {
		t.Errorf("compression = %q, want none", summary.Compression)
	}
}

func TestHeaderTrailerAndStrict(t *testing.T) {
	entries := []mempool.Entry{{Transaction: testutil.SimpleTx(1).Bytes(), Timestamp: 1700000000}}
	// An empty fee-delta map and an empty unbroadcast set.
	data, err := mempool.Encoder{Version: 1}.Encode(entries, []byte{0x00, 0x00})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := testutil.WriteFile(t, "trailer.dat", data)

	got := mustExecute(t, "-f", path, "header")
	if !strings.Contains(got.stdout, "Trailer:       2 bytes") {
		t.Errorf("header output missing the trailer size:\n%s", got.stdout)
	}

	strict := execute(t, "-f", path, "--strict", "header")
	if !errors.Is(strict.err, mempool.ErrTransactionCountMismatch) {
		t.Fatalf("--strict error = %v, want ErrTransactionCountMismatch", strict.err)
	}
	if !strings.Contains(strict.err.Error(), "drop --strict") {
		t.Errorf("--strict error = %q, want a hint about --strict", strict.err.Error())
	}
}
