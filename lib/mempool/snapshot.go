// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"log/slog"

	"github.com/bureau-foundation/mempoolview/lib/compactsize"
)

// Options controls decoding.
type Options struct {
	// KeyAlignment selects how the V2 key is aligned to the payload.
	KeyAlignment KeyAlignment
	// AllowTrailer accepts bytes after the declared entries when they
	// frame as Bitcoin Core's fee-delta map and unbroadcast set. When
	// false, any byte after the last entry is a count mismatch.
	AllowTrailer bool
	// Logger receives debug-level progress. Nil disables logging.
	Logger *slog.Logger
}

// Snapshot is a fully decoded mempool file. It is not modified after
// [Decode] returns.
type Snapshot struct {
	Header       Header
	Transactions []*Transaction
	// Trailer holds the sections Bitcoin Core writes after the
	// entries (fee-delta map, unbroadcast set), uninterpreted.
	Trailer []byte
}

// progressInterval is how many entries pass between debug log lines.
const progressInterval = 10000

// Sizes of the records inside the trailer sections.
const (
	feeDeltaRecordLength    = 32 + 8
	unbroadcastRecordLength = 32
)

// Decode decodes a complete mempool file. Exactly Header.TxCount
// entries must be present; a stream that ends early, or that leaves
// bytes after the entries, fails with [TransactionCountMismatchError].
// With [Options.AllowTrailer] the remainder is kept as the trailer
// instead, provided it frames as one and does not itself decode as an
// entry. Errors inside an entry are wrapped in [EntryError].
func Decode(data []byte, options Options) (*Snapshot, error) {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	header, reader, err := parseHeader(data, options)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed mempool header",
		"version", header.Version,
		"format", header.Format.String(),
		"xor_key_length", len(header.XorKey),
		"declared_transactions", header.TxCount,
	)

	capacity := reader.remaining() / minimumEntryLength
	if header.TxCount < uint64(capacity) {
		capacity = int(header.TxCount)
	}
	snapshot := &Snapshot{
		Header:       header,
		Transactions: make([]*Transaction, 0, capacity),
	}

	for index := range header.TxCount {
		if reader.remaining() == 0 {
			return nil, &TransactionCountMismatchError{
				Declared: header.TxCount,
				Parsed:   index,
			}
		}
		tx, err := decodeEntry(reader)
		if err != nil {
			return nil, &EntryError{Index: index, Err: err}
		}
		snapshot.Transactions = append(snapshot.Transactions, tx)

		if (index+1)%progressInterval == 0 {
			logger.Debug("decoding mempool entries",
				"decoded", index+1,
				"declared", header.TxCount,
				"offset", reader.offset(),
			)
		}
	}

	if reader.remaining() > 0 {
		rest := reader.data[reader.position:]
		if !options.AllowTrailer || decodesAsEntry(rest) || !isTrailer(rest) {
			return nil, &TransactionCountMismatchError{
				Declared:  header.TxCount,
				Parsed:    header.TxCount,
				Remaining: len(rest),
			}
		}
		snapshot.Trailer = rest
		logger.Debug("accepted mempool trailer", "bytes", len(rest))
	}

	return snapshot, nil
}

// decodesAsEntry reports whether data starts with a complete entry,
// meaning the file holds more transactions than it declares.
func decodesAsEntry(data []byte) bool {
	_, err := decodeEntry(newCursor(data, 0))
	return err == nil
}

// isTrailer reports whether rest is exactly a fee-delta map, optionally
// followed by an unbroadcast set, in Bitcoin Core's layout:
//
//	compactSize n, n × (32-byte txid, int64 delta)
//	compactSize m, m × 32-byte txid     (optional)
func isTrailer(rest []byte) bool {
	consumed, ok := skipSection(rest, feeDeltaRecordLength)
	if !ok {
		return false
	}
	rest = rest[consumed:]
	if len(rest) == 0 {
		return true
	}
	consumed, ok = skipSection(rest, unbroadcastRecordLength)
	return ok && consumed == len(rest)
}

// skipSection returns the length of a compact-size counted run of
// fixed-size records at the start of data.
func skipSection(data []byte, recordLength int) (int, bool) {
	count, prefixLength, err := compactsize.Decode(data)
	if err != nil {
		return 0, false
	}
	available := uint64(len(data)-prefixLength) / uint64(recordLength)
	if count > available {
		return 0, false
	}
	return prefixLength + int(count)*recordLength, true
}
