// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"bytes"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// Hash is a double SHA256 transaction identifier in internal byte
// order. String returns the conventional byte-reversed hex.
type Hash = chainhash.Hash

// Transaction is one decoded mempool entry.
type Transaction struct {
	TxID  Hash
	WTxID Hash
	// Raw is the full consensus encoding, witness included.
	Raw []byte
	// Timestamp is the unix time the node accepted the transaction.
	Timestamp int64
	// TrailingBytes is the per-entry metadata after the timestamp,
	// kept verbatim.
	TrailingBytes []byte

	// Msg holds the parsed consensus fields. Its scripts and witness
	// items are its own copies, independent of Raw.
	Msg        *wire.MsgTx
	HasWitness bool
	// BaseSize is the length of the encoding without witness data.
	BaseSize int
}

// Size is the length of the full encoding.
func (tx *Transaction) Size() int {
	return len(tx.Raw)
}

// Weight is BaseSize*3 + Size, as defined by BIP 141.
func (tx *Transaction) Weight() int {
	return tx.BaseSize*3 + tx.Size()
}

// VirtualSize is Weight divided by four, rounded up.
func (tx *Transaction) VirtualSize() int {
	return (tx.Weight() + 3) / 4
}

// entryMetadataLength is the opaque region after the timestamp.
// Bitcoin Core writes a signed fee delta there.
const entryMetadataLength = 8

// minimumEntryLength is the smallest possible entry: version, one-byte
// input and output counts, locktime, timestamp, and metadata. It bounds
// preallocation.
const minimumEntryLength = 4 + 1 + 1 + 4 + 8 + entryMetadataLength

// witnessMarkerOffset is where a segwit encoding places its 0x00
// marker, right after the version.
const witnessMarkerOffset = 4

// DecodeTransaction decodes one entry (a transaction, its timestamp,
// and its metadata region) from the start of data. It returns the
// transaction and the number of bytes consumed. The returned
// transaction owns a copy of its bytes.
func DecodeTransaction(data []byte) (*Transaction, int, error) {
	reader := newCursor(data, 0)
	tx, err := decodeEntry(reader)
	if err != nil {
		return nil, 0, err
	}
	tx.Raw = bytes.Clone(tx.Raw)
	tx.TrailingBytes = bytes.Clone(tx.TrailingBytes)
	return tx, reader.position, nil
}

// decodeEntry decodes one entry at the cursor. Raw and TrailingBytes
// alias the cursor's buffer.
func decodeEntry(reader *cursor) (*Transaction, error) {
	start := reader.position
	stream := newEntryReader(reader.data[start:], reader.offset())

	msg := &wire.MsgTx{}
	if err := msg.Deserialize(stream); err != nil {
		return nil, stream.classify(err)
	}
	raw, err := reader.take(stream.consumed(), "transaction")
	if err != nil {
		return nil, err
	}

	// Deserialize only takes the segwit path after a zero input count
	// followed by the 0x01 flag, so a zero here is the marker.
	if raw[witnessMarkerOffset] == 0x00 && !msg.HasWitness() {
		return nil, &MalformedTransactionError{
			Offset: reader.base + start,
			Reason: "segwit marker present but every witness stack is empty",
		}
	}

	tx := &Transaction{
		TxID:       msg.TxHash(),
		WTxID:      msg.WitnessHash(),
		Raw:        raw,
		Msg:        msg,
		HasWitness: msg.HasWitness(),
		BaseSize:   msg.SerializeSizeStripped(),
	}

	tx.Timestamp, err = reader.int64("entry timestamp")
	if err != nil {
		return nil, err
	}
	tx.TrailingBytes, err = reader.take(entryMetadataLength, "entry metadata")
	if err != nil {
		return nil, err
	}
	return tx, nil
}
