// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package compactsize implements Bitcoin's self-describing variable
// length unsigned integer encoding ("CompactSize").
//
// The first byte selects the size class:
//
//	< 0xfd   the byte itself is the value
//	  0xfd   a little-endian uint16 follows
//	  0xfe   a little-endian uint32 follows
//	  0xff   a little-endian uint64 follows
//
// [Encode] and [Append] always emit the smallest class that holds the
// value. [Decode] rejects encodings that use a larger class than
// necessary, matching the consensus reader: a value that fits in one
// byte must not be spelled with a 0xfd prefix, and so on. Decoding
// never reads past the end of its input.
//
// The codec itself is btcd's wire varint; this package adds the typed
// errors and the slice-oriented API the mempool decoder frames with.
package compactsize
