// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"encoding/binary"

	"github.com/bureau-foundation/mempoolview/lib/compactsize"
)

// Input is one transaction input.
type Input struct {
	PrevTxID  [32]byte
	PrevIndex uint32
	Script    []byte
	Sequence  uint32
	Witness   [][]byte
}

// Output is one transaction output.
type Output struct {
	Value  int64
	Script []byte
}

// Tx is a transaction under construction.
type Tx struct {
	Version  int32
	Inputs   []Input
	Outputs  []Output
	LockTime uint32
}

// HasWitness reports whether any input carries witness items, which
// selects the segwit serialization in [Tx.Bytes].
func (tx Tx) HasWitness() bool {
	for _, input := range tx.Inputs {
		if len(input.Witness) > 0 {
			return true
		}
	}
	return false
}

// Bytes returns the full consensus encoding, including the marker,
// flag, and witness stacks when any input has witness items.
func (tx Tx) Bytes() []byte {
	return tx.serialize(tx.HasWitness())
}

// StrippedBytes returns the encoding without witness data, the
// serialization a txid commits to.
func (tx Tx) StrippedBytes() []byte {
	return tx.serialize(false)
}

func (tx Tx) serialize(withWitness bool) []byte {
	var buffer []byte
	buffer = binary.LittleEndian.AppendUint32(buffer, uint32(tx.Version))
	if withWitness {
		buffer = append(buffer, 0x00, 0x01)
	}

	buffer = compactsize.Append(buffer, uint64(len(tx.Inputs)))
	for _, input := range tx.Inputs {
		buffer = append(buffer, input.PrevTxID[:]...)
		buffer = binary.LittleEndian.AppendUint32(buffer, input.PrevIndex)
		buffer = appendVarBytes(buffer, input.Script)
		buffer = binary.LittleEndian.AppendUint32(buffer, input.Sequence)
	}

	buffer = compactsize.Append(buffer, uint64(len(tx.Outputs)))
	for _, output := range tx.Outputs {
		buffer = binary.LittleEndian.AppendUint64(buffer, uint64(output.Value))
		buffer = appendVarBytes(buffer, output.Script)
	}

	if withWitness {
		for _, input := range tx.Inputs {
			buffer = compactsize.Append(buffer, uint64(len(input.Witness)))
			for _, item := range input.Witness {
				buffer = appendVarBytes(buffer, item)
			}
		}
	}

	return binary.LittleEndian.AppendUint32(buffer, tx.LockTime)
}

func appendVarBytes(buffer, data []byte) []byte {
	buffer = compactsize.Append(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// SimpleTx returns a version 2 transaction with one input and one
// output and empty scripts. The seed fills the previous txid and sets
// the output value, so different seeds give different txids. The
// encoding is 60 bytes.
func SimpleTx(seed byte) Tx {
	var previous [32]byte
	for index := range previous {
		previous[index] = seed
	}
	return Tx{
		Version: 2,
		Inputs: []Input{{
			PrevTxID:  previous,
			PrevIndex: uint32(seed),
			Sequence:  0xfffffffd,
		}},
		Outputs: []Output{{
			Value: int64(seed) * 1000,
		}},
	}
}

// WitnessTx is [SimpleTx] with a two-item witness stack on its input.
func WitnessTx(seed byte) Tx {
	tx := SimpleTx(seed)
	tx.Inputs[0].Witness = [][]byte{
		{0x30, 0x44, seed},
		{0x02, seed, seed},
	}
	return tx
}
