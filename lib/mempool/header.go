// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"fmt"

	"github.com/bureau-foundation/mempoolview/lib/xorkey"
)

// Format is the file layout selected by the version field.
type Format int

const (
	// FormatV1 files are plaintext.
	FormatV1 Format = 1
	// FormatV2 files carry an XOR key and obfuscate everything after
	// it.
	FormatV2 Format = 2
)

func (f Format) String() string {
	switch f {
	case FormatV1:
		return "V1"
	case FormatV2:
		return "V2"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// KeyAlignment selects which key byte the first obfuscated byte is
// XORed with.
type KeyAlignment int

const (
	// AlignStream starts the key at index 0 on the first byte after
	// the key itself.
	AlignStream KeyAlignment = iota
	// AlignFile keys every byte by its absolute file offset modulo
	// the key length, the way Bitcoin Core's obfuscated file stream
	// does.
	AlignFile
)

func (a KeyAlignment) String() string {
	switch a {
	case AlignStream:
		return "stream"
	case AlignFile:
		return "file"
	default:
		return fmt.Sprintf("KeyAlignment(%d)", int(a))
	}
}

// ParseKeyAlignment parses "stream" or "file".
func ParseKeyAlignment(name string) (KeyAlignment, error) {
	switch name {
	case "stream", "":
		return AlignStream, nil
	case "file":
		return AlignFile, nil
	default:
		return 0, fmt.Errorf("unknown XOR key alignment %q (expected stream or file)", name)
	}
}

// Header is the decoded file header.
type Header struct {
	Version uint64
	Format  Format
	// XorKey is empty for V1. For V2 it is the key as stored, which
	// may itself be empty.
	XorKey xorkey.Key
	// TxCount is the declared number of entries.
	TxCount uint64
}

// versionLength is the size of the leading version field.
const versionLength = 8

// ParseHeader decodes only the header of a mempool file.
func ParseHeader(data []byte, options Options) (Header, error) {
	header, _, err := parseHeader(data, options)
	return header, err
}

// parseHeader decodes the header and returns a cursor positioned at
// the first entry. The cursor reads a private copy of the payload
// (de-obfuscated for V2), so transactions decoded from it never alias
// the caller's buffer.
func parseHeader(data []byte, options Options) (Header, *cursor, error) {
	var header Header
	reader := newCursor(data, 0)

	version, err := reader.uint64("version")
	if err != nil {
		return header, nil, err
	}
	header.Version = version

	switch version {
	case 1:
		header.Format = FormatV1
		payloadOffset := reader.offset()
		plain := append([]byte(nil), data[payloadOffset:]...)
		reader = newCursor(plain, payloadOffset)
	case 2:
		header.Format = FormatV2
		keyLength, err := reader.uint8("XOR key length")
		if err != nil {
			return header, nil, err
		}
		key, err := reader.take(int(keyLength), "XOR key")
		if err != nil {
			return header, nil, err
		}
		header.XorKey = xorkey.Key(append([]byte(nil), key...))

		payloadOffset := reader.offset()
		keyOffset := 0
		if options.KeyAlignment == AlignFile {
			keyOffset = payloadOffset
		}
		plain := xorkey.ApplyAt(data[payloadOffset:], header.XorKey, keyOffset)
		reader = newCursor(plain, payloadOffset)
	default:
		return header, nil, &UnsupportedVersionError{Version: version}
	}

	header.TxCount, err = reader.uint64("transaction count")
	if err != nil {
		return header, nil, err
	}
	return header, reader, nil
}
