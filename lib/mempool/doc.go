// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package mempool decodes Bitcoin Core's mempool.dat snapshot file.
//
// The file begins with a little-endian uint64 version that selects the
// layout:
//
//	version 1: u64 txCount, then txCount entries
//	version 2: u8 keyLen, keyLen key bytes, then everything that
//	           follows is XOR-obfuscated with the key: u64 txCount,
//	           then txCount entries
//
// Each entry is a consensus-encoded transaction followed by an int64
// unix timestamp and an 8-byte metadata region that is kept verbatim
// as [Transaction.TrailingBytes]. After the entries Bitcoin Core
// appends a fee-delta map and an unbroadcast set; [Decode] accepts
// those sections when they frame exactly and keeps them, opaque, in
// [Snapshot.Trailer]. Anything else left over is a
// [TransactionCountMismatchError].
//
// Decoding is a single sequential pass over an in-memory buffer. Every
// read is bounds-checked: running off the end yields a
// [TruncatedDataError] naming the field and file offset, never a
// partial result. A [Snapshot] is either fully valid or not returned.
//
// [LoadFile] and [Load] add input plumbing on top of [Decode]:
// transparent zstd and LZ4 decompression, a BLAKE3 fingerprint of the
// snapshot bytes, and [IOFailureError] for anything the filesystem or
// decompressor reports.
//
// [Encoder] writes version 1 and version 2 files and exists so that
// round trips can be checked without binary fixtures.
package mempool
