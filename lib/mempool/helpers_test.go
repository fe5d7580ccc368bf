// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"encoding/binary"
	"testing"

	"github.com/bureau-foundation/mempoolview/lib/testutil"
)

// baseTimestamp is the acceptance time given to the first test entry.
const baseTimestamp = 1700000000

// entriesFor wraps transactions as entries with increasing timestamps
// and a metadata region that records the entry's position.
func entriesFor(transactions ...testutil.Tx) []Entry {
	entries := make([]Entry, 0, len(transactions))
	for index, tx := range transactions {
		metadata := binary.LittleEndian.AppendUint64(nil, uint64(index)*100)
		entries = append(entries, Entry{
			Transaction: tx.Bytes(),
			Timestamp:   baseTimestamp + int64(index),
			Metadata:    metadata,
		})
	}
	return entries
}

// v1Payload returns the body of a version 1 file after the version
// field: the count, then each entry.
func v1Payload(count uint64, entries []Entry) []byte {
	payload := binary.LittleEndian.AppendUint64(nil, count)
	for _, entry := range entries {
		payload = append(payload, entry.Transaction...)
		payload = binary.LittleEndian.AppendUint64(payload, uint64(entry.Timestamp))
		payload = append(payload, entry.Metadata...)
	}
	return payload
}

func v1File(count uint64, entries []Entry) []byte {
	file := binary.LittleEndian.AppendUint64(nil, 1)
	return append(file, v1Payload(count, entries)...)
}

func mustEncode(t *testing.T, encoder Encoder, entries []Entry, trailer []byte) []byte {
	t.Helper()
	data, err := encoder.Encode(entries, trailer)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return data
}

func mustDecode(t *testing.T, data []byte, options Options) *Snapshot {
	t.Helper()
	snapshot, err := Decode(data, options)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return snapshot
}

func txids(snapshot *Snapshot) []Hash {
	ids := make([]Hash, 0, len(snapshot.Transactions))
	for _, tx := range snapshot.Transactions {
		ids = append(ids, tx.TxID)
	}
	return ids
}
