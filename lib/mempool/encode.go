// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"encoding/binary"
	"fmt"

	"github.com/bureau-foundation/mempoolview/lib/xorkey"
)

// Entry is one record to encode: a consensus-encoded transaction, its
// acceptance time, and the 8-byte metadata region. Nil Metadata is
// written as eight zero bytes.
type Entry struct {
	Transaction []byte
	Timestamp   int64
	Metadata    []byte
}

// EntryOf returns the entry that encodes tx back to its original
// bytes.
func EntryOf(tx *Transaction) Entry {
	return Entry{Transaction: tx.Raw, Timestamp: tx.Timestamp, Metadata: tx.TrailingBytes}
}

// Encoder writes mempool files.
type Encoder struct {
	// Version is 1 or 2.
	Version uint64
	// XorKey is written and applied for version 2 only. At most 255
	// bytes.
	XorKey []byte
	// KeyAlignment must match the alignment the reader will use.
	KeyAlignment KeyAlignment
}

// Encode returns the file bytes for entries followed by trailer. The
// trailer is appended verbatim; pass nil for none.
func (e Encoder) Encode(entries []Entry, trailer []byte) ([]byte, error) {
	var payload []byte
	payload = binary.LittleEndian.AppendUint64(payload, uint64(len(entries)))
	for index, entry := range entries {
		switch len(entry.Metadata) {
		case 0:
			entry.Metadata = make([]byte, entryMetadataLength)
		case entryMetadataLength:
		default:
			return nil, fmt.Errorf("entry %d: metadata is %d bytes, want %d",
				index, len(entry.Metadata), entryMetadataLength)
		}
		payload = append(payload, entry.Transaction...)
		payload = binary.LittleEndian.AppendUint64(payload, uint64(entry.Timestamp))
		payload = append(payload, entry.Metadata...)
	}
	payload = append(payload, trailer...)

	output := binary.LittleEndian.AppendUint64(nil, e.Version)
	switch e.Version {
	case 1:
		return append(output, payload...), nil
	case 2:
		if len(e.XorKey) > 255 {
			return nil, fmt.Errorf("XOR key is %d bytes, maximum 255", len(e.XorKey))
		}
		output = append(output, byte(len(e.XorKey)))
		output = append(output, e.XorKey...)
		keyOffset := 0
		if e.KeyAlignment == AlignFile {
			keyOffset = len(output)
		}
		xorkey.InPlace(payload, e.XorKey, keyOffset)
		return append(output, payload...), nil
	default:
		return nil, &UnsupportedVersionError{Version: e.Version}
	}
}
