// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"encoding/hex"
	"time"
)

// TransactionView is the presentation form of a [Transaction]: hashes
// in display order, byte fields as hex, sizes precomputed. It is the
// shape emitted by JSON and CBOR output and shown in the inspector's
// detail pane.
type TransactionView struct {
	TxID          string       `json:"txid"`
	WTxID         string       `json:"wtxid"`
	Timestamp     int64        `json:"timestamp"`
	Time          string       `json:"time"`
	Version       int32        `json:"version"`
	LockTime      uint32       `json:"locktime"`
	Segwit        bool         `json:"segwit"`
	Size          int          `json:"size"`
	VirtualSize   int          `json:"vsize"`
	Weight        int          `json:"weight"`
	TotalOutput   int64        `json:"total_output_sats"`
	Inputs        []InputView  `json:"inputs"`
	Outputs       []OutputView `json:"outputs"`
	TrailingBytes string       `json:"trailing_bytes"`
}

// InputView is the presentation form of an [Input].
type InputView struct {
	PrevTxID  string   `json:"prev_txid"`
	PrevIndex uint32   `json:"prev_index"`
	ScriptSig string   `json:"script_sig"`
	Sequence  uint32   `json:"sequence"`
	Witness   []string `json:"witness,omitempty"`
}

// OutputView is the presentation form of an [Output].
type OutputView struct {
	Value        int64  `json:"value_sats"`
	ScriptPubKey string `json:"script_pubkey"`
}

// Describe returns the presentation form of tx.
func Describe(tx *Transaction) TransactionView {
	view := TransactionView{
		TxID:          tx.TxID.String(),
		WTxID:         tx.WTxID.String(),
		Timestamp:     tx.Timestamp,
		Time:          time.Unix(tx.Timestamp, 0).UTC().Format(time.RFC3339),
		Version:       tx.Msg.Version,
		LockTime:      tx.Msg.LockTime,
		Segwit:        tx.HasWitness,
		Size:          tx.Size(),
		VirtualSize:   tx.VirtualSize(),
		Weight:        tx.Weight(),
		Inputs:        make([]InputView, 0, len(tx.Msg.TxIn)),
		Outputs:       make([]OutputView, 0, len(tx.Msg.TxOut)),
		TrailingBytes: hex.EncodeToString(tx.TrailingBytes),
	}

	for _, input := range tx.Msg.TxIn {
		inputView := InputView{
			PrevTxID:  input.PreviousOutPoint.Hash.String(),
			PrevIndex: input.PreviousOutPoint.Index,
			ScriptSig: hex.EncodeToString(input.SignatureScript),
			Sequence:  input.Sequence,
		}
		for _, item := range input.Witness {
			inputView.Witness = append(inputView.Witness, hex.EncodeToString(item))
		}
		view.Inputs = append(view.Inputs, inputView)
	}

	for _, output := range tx.Msg.TxOut {
		view.TotalOutput += output.Value
		view.Outputs = append(view.Outputs, OutputView{
			Value:        output.Value,
			ScriptPubKey: hex.EncodeToString(output.PkScript),
		})
	}

	return view
}
