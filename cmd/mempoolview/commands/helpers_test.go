// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/bureau-foundation/mempoolview/lib/config"
	"github.com/bureau-foundation/mempoolview/lib/mempool"
	"github.com/bureau-foundation/mempoolview/lib/testutil"
)

// testKey is the obfuscation key of version 2 test files.
var testKey = []byte{0x5a, 0xa5, 0x01, 0x80, 0x7f, 0x33, 0xcc, 0x00}

// buildTransactions returns count transactions, every second one
// carrying witness data.
func buildTransactions(count int) []testutil.Tx {
	transactions := make([]testutil.Tx, count)
	for index := range transactions {
		seed := byte(index + 1)
		if index%2 == 1 {
			transactions[index] = testutil.WitnessTx(seed)
		} else {
			transactions[index] = testutil.SimpleTx(seed)
		}
	}
	return transactions
}

// encodeMempool encodes transactions with encoder, one second apart.
func encodeMempool(t *testing.T, encoder mempool.Encoder, transactions []testutil.Tx) []byte {
	t.Helper()
	entries := make([]mempool.Entry, len(transactions))
	for index, tx := range transactions {
		entries[index] = mempool.Entry{
			Transaction: tx.Bytes(),
			Timestamp:   1700000000 + int64(index),
		}
	}
	data, err := encoder.Encode(entries, nil)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return data
}

// writeMempool writes a version 2 file holding count transactions.
func writeMempool(t *testing.T, count int) (string, []testutil.Tx) {
	t.Helper()
	transactions := buildTransactions(count)
	data := encodeMempool(t, mempool.Encoder{Version: 2, XorKey: testKey}, transactions)
	return testutil.WriteFile(t, "mempool.dat", data), transactions
}

// expectedTxID is the display-order txid of tx.
func expectedTxID(tx testutil.Tx) string {
	return chainhash.DoubleHashH(tx.StrippedBytes()).String()
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the command tree with args and captured streams. The
// config environment variable is cleared so a developer's own file
// does not leak into tests.
func execute(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")

	var stdout, stderr bytes.Buffer
	root := Root(Streams{Stdin: strings.NewReader(""), Stdout: &stdout, Stderr: &stderr})
	err := root.Execute(context.Background(), args)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func mustExecute(t *testing.T, args ...string) result {
	t.Helper()
	got := execute(t, args...)
	if got.err != nil {
		t.Fatalf("mempoolview %s: %v", strings.Join(args, " "), got.err)
	}
	return got
}
