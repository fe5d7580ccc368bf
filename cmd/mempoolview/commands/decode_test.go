// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/cli"
	"github.com/bureau-foundation/mempoolview/lib/mempool"
	"github.com/bureau-foundation/mempoolview/lib/testutil"
)

func countPrefixed(output string) int {
	count := 0
	for _, line := range strings.Split(output, "\n") {
		if strings.HasPrefix(line, "[") {
			count++
		}
	}
	return count
}

func TestDecodeDefaultLimit(t *testing.T) {
	path, transactions := writeMempool(t, 12)

	got := mustExecute(t, "-f", path, "decode")

	if count := countPrefixed(got.stdout); count != 10 {
		t.Errorf("printed %d entries, want the default 10", count)
	}
	if !strings.Contains(got.stdout, "[0] "+expectedTxID(transactions[0])) {
		t.Errorf("first heading missing txid %s:\n%s", expectedTxID(transactions[0]), got.stdout)
	}
	if strings.Contains(got.stdout, "[10] ") {
		t.Error("entry 10 printed past the limit")
	}
	// The multi-line form shows per-field lines.
	for _, want := range []string{"    wtxid:", "    time:     2023-11-14T22:13:20Z (1700000000)", "    inputs:   1"} {
		if !strings.Contains(got.stdout, want) {
			t.Errorf("block output missing %q", want)
		}
	}
}

func TestDecodeCompact(t *testing.T) {
	path, transactions := writeMempool(t, 5)

	got := mustExecute(t, "-f", path, "decode", "--limit", "3", "-c")

	lines := strings.Split(strings.TrimRight(got.stdout, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("compact output has %d lines, want 3:\n%s", len(lines), got.stdout)
	}
	for index, line := range lines {
		prefix := fmt.Sprintf("[%d] %s ", index, expectedTxID(transactions[index]))
		if !strings.HasPrefix(line, prefix) {
			t.Errorf("line %d = %q, want prefix %q", index, line, prefix)
		}
	}
	if !strings.HasSuffix(lines[1], " segwit") {
		t.Errorf("witness entry line = %q, want segwit marker", lines[1])
	}
	if strings.HasSuffix(lines[0], " segwit") {
		t.Errorf("legacy entry line = %q, has segwit marker", lines[0])
	}
}

func TestDecodeLimitBeyondCount(t *testing.T) {
	path, _ := writeMempool(t, 2)

	got := mustExecute(t, "-f", path, "decode", "-l", "50", "-c")
	if count := countPrefixed(got.stdout); count != 2 {
		t.Errorf("printed %d entries, want 2", count)
	}
}

func TestDecodeNegativeLimit(t *testing.T) {
	path, _ := writeMempool(t, 2)

	got := execute(t, "-f", path, "decode", "-l", "-1")
	var toolErr *cli.ToolError
	if !errors.As(got.err, &toolErr) || toolErr.Category != cli.CategoryValidation {
		t.Errorf("error = %v, want a validation error", got.err)
	}
}

func TestDecodeJSON(t *testing.T) {
	path, transactions := writeMempool(t, 4)

	got := mustExecute(t, "-f", path, "decode", "--json", "-l", "3")

	var views []mempool.TransactionView
	if err := json.Unmarshal([]byte(got.stdout), &views); err != nil {
		t.Fatalf("decode --json output is not a JSON array: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("got %d views, want 3", len(views))
	}
	for index, view := range views {
		if view.TxID != expectedTxID(transactions[index]) {
			t.Errorf("view %d txid = %s, want %s", index, view.TxID, expectedTxID(transactions[index]))
		}
		if view.Timestamp != 1700000000+int64(index) {
			t.Errorf("view %d timestamp = %d", index, view.Timestamp)
		}
		if view.Segwit != transactions[index].HasWitness() {
			t.Errorf("view %d segwit = %t, want %t", index, view.Segwit, transactions[index].HasWitness())
		}
	}
}

func TestDecodeJSONZeroLimit(t *testing.T) {
	path, _ := writeMempool(t, 4)

	got := mustExecute(t, "-f", path, "decode", "--json", "-l", "0")
	if strings.TrimSpace(got.stdout) != "[]" {
		t.Errorf("output = %q, want []", got.stdout)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	missing := t.TempDir() + "/absent.dat"

	got := execute(t, "-f", missing, "decode")
	if got.err == nil {
		t.Fatal("decode of a missing file succeeded")
	}
	if got.stdout != "" {
		t.Errorf("stdout = %q, want nothing on failure", got.stdout)
	}
	var toolErr *cli.ToolError
	if !errors.As(got.err, &toolErr) || toolErr.Category != cli.CategoryNotFound {
		t.Fatalf("error = %#v, want a not-found ToolError", got.err)
	}
	if toolErr.Hint == "" {
		t.Error("not-found error carries no hint")
	}
	if !errors.Is(got.err, fs.ErrNotExist) {
		t.Error("errors.Is(err, fs.ErrNotExist) = false")
	}
	if !errors.Is(got.err, mempool.ErrIOFailure) {
		t.Error("errors.Is(err, mempool.ErrIOFailure) = false")
	}
}

func TestDecodeTruncatedFilePrintsNothing(t *testing.T) {
	path, _ := writeMempool(t, 3)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	truncated := testutil.WriteFile(t, "truncated.dat", data[:len(data)-5])

	got := execute(t, "-f", truncated, "decode", "-c")
	if !errors.Is(got.err, mempool.ErrTruncatedData) {
		t.Fatalf("error = %v, want truncated data", got.err)
	}
	if got.stdout != "" {
		t.Errorf("stdout = %q, want nothing for a partially valid file", got.stdout)
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 7
	path := testutil.WriteFile(t, "v7.dat", data)

	got := execute(t, "-f", path, "header")
	var versionErr *mempool.UnsupportedVersionError
	if !errors.As(got.err, &versionErr) || versionErr.Version != 7 {
		t.Errorf("error = %v, want unsupported version 7", got.err)
	}
}

func TestDecodeFileAlignment(t *testing.T) {
	transactions := buildTransactions(3)
	data := encodeMempool(t, mempool.Encoder{
		Version:      2,
		XorKey:       testKey,
		KeyAlignment: mempool.AlignFile,
	}, transactions)
	path := testutil.WriteFile(t, "aligned.dat", data)

	got := mustExecute(t, "-f", path, "--xor-alignment", "file", "decode", "-c")
	if count := countPrefixed(got.stdout); count != 3 {
		t.Errorf("printed %d entries, want 3", count)
	}
	if !strings.HasPrefix(got.stdout, "[0] "+expectedTxID(transactions[0])) {
		t.Errorf("output = %q, want first txid %s", got.stdout, expectedTxID(transactions[0]))
	}
}

func TestDecodeInvalidAlignment(t *testing.T) {
	path, _ := writeMempool(t, 1)

	got := execute(t, "-f", path, "--xor-alignment", "sideways", "decode")
	var toolErr *cli.ToolError
	if !errors.As(got.err, &toolErr) || toolErr.Category != cli.CategoryValidation {
		t.Errorf("error = %v, want a validation error", got.err)
	}
}
