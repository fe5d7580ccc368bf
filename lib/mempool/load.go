// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
)

// Compression identifies how the input was stored on disk.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

// String returns the human-readable name of a compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Frame magic numbers, as they appear in the first four bytes. Neither
// can begin a mempool file, whose first eight bytes are 1 or 2.
var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// zstdDecoder is shared across loads. zstd.Decoder is safe for
// concurrent use via DecodeAll.
var zstdDecoder *zstd.Decoder

func init() {
	var err error
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("mempool: zstd decoder initialization failed: " + err.Error())
	}
}

// Fingerprint is the BLAKE3-256 digest of the uncompressed snapshot
// bytes. It identifies a snapshot independently of how it was stored.
type Fingerprint [32]byte

// String returns the fingerprint as lowercase hex.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Short returns the first 12 hex characters, enough to tell snapshots
// apart at a glance.
func (f Fingerprint) Short() string {
	return f.String()[:12]
}

// LoadResult is a decoded snapshot plus facts about its input.
type LoadResult struct {
	Snapshot    *Snapshot
	Fingerprint Fingerprint
	Compression Compression
	// Size is the uncompressed snapshot size in bytes.
	Size int
	// StoredSize is the size as read, before decompression.
	StoredSize int
}

// LoadFile reads, decompresses if needed, and decodes the mempool file
// at path. Filesystem and decompression failures are
// [IOFailureError]; decode failures are returned as from [Decode].
func LoadFile(path string, options Options) (*LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOFailureError{Path: path, Op: "open", Err: err}
	}
	defer file.Close()

	return load(file, path, options)
}

// Load is [LoadFile] for an already-open reader.
func Load(reader io.Reader, options Options) (*LoadResult, error) {
	return load(reader, "", options)
}

func load(reader io.Reader, path string, options Options) (*LoadResult, error) {
	stored, err := io.ReadAll(reader)
	if err != nil {
		return nil, &IOFailureError{Path: path, Op: "read", Err: err}
	}

	data, compression, err := decompress(stored)
	if err != nil {
		return nil, &IOFailureError{Path: path, Op: "decompress", Err: err}
	}

	snapshot, err := Decode(data, options)
	if err != nil {
		return nil, err
	}

	return &LoadResult{
		Snapshot:    snapshot,
		Fingerprint: Fingerprint(blake3.Sum256(data)),
		Compression: compression,
		Size:        len(data),
		StoredSize:  len(stored),
	}, nil
}

// decompress detects a zstd or LZ4 frame by its magic number and
// returns the decompressed bytes. Other input is returned unchanged.
func decompress(stored []byte) ([]byte, Compression, error) {
	switch {
	case bytes.HasPrefix(stored, zstdMagic):
		data, err := zstdDecoder.DecodeAll(stored, nil)
		if err != nil {
			return nil, CompressionZstd, fmt.Errorf("zstd: %w", err)
		}
		return data, CompressionZstd, nil

	case bytes.HasPrefix(stored, lz4Magic):
		data, err := io.ReadAll(lz4.NewReader(bytes.NewReader(stored)))
		if err != nil {
			return nil, CompressionLZ4, fmt.Errorf("lz4: %w", err)
		}
		return data, CompressionLZ4, nil

	default:
		return stored, CompressionNone, nil
	}
}
