// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides mempoolview's CBOR encoding configuration.
//
// The export command writes a CBOR sequence (RFC 8742): a header record
// followed by one record per mempool entry. Encoding uses Core
// Deterministic Encoding (RFC 8949 §4.2), so exporting the same
// snapshot twice yields identical bytes and exports can be compared
// with cmp or hashed.
//
// For buffer-oriented operations:
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For sequences:
//
//	encoder := codec.NewEncoder(file)
//	decoder := codec.NewDecoder(file)
//
// # Struct Tag Rules
//
// Types that are also printed by --json carry only `json` tags.
// fxamacker/cbor reads `json` tags when `cbor` tags are absent, so one
// tag names the field in both formats. Types that only ever appear in
// CBOR carry `cbor` tags. Never put both on the same field.
package codec
