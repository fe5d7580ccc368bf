// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package compactsize

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// Class prefixes. A first byte below prefix16 is the value itself.
const (
	prefix16 = 0xfd
	prefix32 = 0xfe
	prefix64 = 0xff
)

// MaxLen is the longest possible encoding: one prefix byte plus a
// uint64.
const MaxLen = 9

// protocolVersion is passed to the wire codec, which ignores it for
// varints.
const protocolVersion = 0

// TruncatedError reports that the input ended before the size class
// named by the first byte could be read in full.
type TruncatedError struct {
	// Needed is the total encoding length the prefix byte demands.
	Needed int
	// Available is how many bytes the input actually held.
	Available int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("compact size needs %d bytes, %d available", e.Needed, e.Available)
}

// NonCanonicalError reports a value encoded with a larger size class
// than its magnitude requires. Err is the wire codec's error.
type NonCanonicalError struct {
	Prefix byte
	Err    error
}

func (e *NonCanonicalError) Error() string {
	return fmt.Sprintf("non-canonical compact size with prefix 0x%02x: %v", e.Prefix, e.Err)
}

func (e *NonCanonicalError) Unwrap() error { return e.Err }

// ContinuationLength returns how many bytes follow a first byte of
// prefix: 0, 2, 4, or 8.
func ContinuationLength(prefix byte) int {
	switch prefix {
	case prefix16:
		return 2
	case prefix32:
		return 4
	case prefix64:
		return 8
	default:
		return 0
	}
}

// IsPrefix reports whether prefix announces a continuation.
func IsPrefix(prefix byte) bool {
	return ContinuationLength(prefix) > 0
}

// Len returns the number of bytes [Encode] produces for value.
func Len(value uint64) int {
	return wire.VarIntSerializeSize(value)
}

// Encode returns the minimal encoding of value.
func Encode(value uint64) []byte {
	var buffer bytes.Buffer
	buffer.Grow(Len(value))
	// Writes to a bytes.Buffer cannot fail.
	_ = wire.WriteVarInt(&buffer, protocolVersion, value)
	return buffer.Bytes()
}

// Append appends the minimal encoding of value to destination and
// returns the extended slice.
func Append(destination []byte, value uint64) []byte {
	return append(destination, Encode(value)...)
}

// Decode reads one compact size from the start of data. It returns the
// value and the number of bytes consumed. Errors are *TruncatedError
// when data is too short for the class its first byte announces, and
// *NonCanonicalError when the class is wider than the value needs.
func Decode(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, &TruncatedError{Needed: 1, Available: 0}
	}

	length := 1 + ContinuationLength(data[0])
	if len(data) < length {
		return 0, 0, &TruncatedError{Needed: length, Available: len(data)}
	}

	value, err := wire.ReadVarInt(bytes.NewReader(data[:length]), protocolVersion)
	if err != nil {
		var messageError *wire.MessageError
		if errors.As(err, &messageError) {
			return 0, 0, &NonCanonicalError{Prefix: data[0], Err: err}
		}
		return 0, 0, err
	}
	return value, length, nil
}
