// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"errors"
	"io"
	"strings"

	"github.com/btcsuite/btcd/wire"

	"github.com/bureau-foundation/mempoolview/lib/compactsize"
)

// entryField names the region a transaction decode error falls in.
const entryField = "transaction"

// entryReader feeds one transaction to the wire decoder and records
// enough about the reads it served to say where, and why, a failed
// decode stopped. The decoder reads every compact size as a single
// class byte followed by one read of its continuation, and issues no
// other single-byte reads apart from the segwit flag.
type entryReader struct {
	data     []byte
	position int
	// base is the file offset of data[0].
	base int

	// classByte and classEnd describe the latest single-byte read.
	classByte byte
	classEnd  int

	// lastSize and lastSizeEnd hold the latest complete compact size.
	lastSize    uint64
	lastSizeEnd int

	// shortAt and shortWant describe the first read that could not be
	// served in full.
	short     bool
	shortAt   int
	shortWant int
}

func newEntryReader(data []byte, base int) *entryReader {
	return &entryReader{data: data, base: base, classEnd: -1, lastSizeEnd: -1}
}

func (r *entryReader) Read(buffer []byte) (int, error) {
	if len(buffer) == 0 {
		return 0, nil
	}
	start := r.position
	count := copy(buffer, r.data[r.position:])
	r.position += count

	if count < len(buffer) {
		if !r.short {
			r.short, r.shortAt, r.shortWant = true, start, len(buffer)
		}
		if count == 0 {
			return 0, io.EOF
		}
		return count, nil
	}

	switch {
	case len(buffer) == 1:
		r.classByte, r.classEnd = buffer[0], r.position
		if !compactsize.IsPrefix(buffer[0]) {
			r.lastSize, r.lastSizeEnd = uint64(buffer[0]), r.position
		}
	case start == r.classEnd && len(buffer) == compactsize.ContinuationLength(r.classByte):
		if value, _, err := compactsize.Decode(r.data[start-1 : r.position]); err == nil {
			r.lastSize, r.lastSizeEnd = value, r.position
		}
	}
	return count, nil
}

// consumed is the number of bytes the decoder has read.
func (r *entryReader) consumed() int {
	return r.position
}

func (r *entryReader) remaining() int {
	return len(r.data) - r.position
}

// classify maps a wire decode failure onto the package's error types.
func (r *entryReader) classify(err error) error {
	var messageError *wire.MessageError
	switch {
	case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
		available := len(r.data) - r.shortAt
		if r.shortAt == r.classEnd && compactsize.IsPrefix(r.classByte) &&
			r.shortWant == compactsize.ContinuationLength(r.classByte) {
			return &InvalidCompactSizeError{
				Offset: r.base + r.classEnd - 1,
				Field:  entryField,
				Err:    &compactsize.TruncatedError{Needed: 1 + r.shortWant, Available: 1 + available},
			}
		}
		return &TruncatedDataError{
			Needed:    r.shortWant,
			Available: available,
			Offset:    r.base + r.shortAt,
			Field:     entryField,
		}

	case errors.As(err, &messageError) && isNonCanonical(messageError):
		return &InvalidCompactSizeError{
			Offset: r.base + r.classEnd - 1,
			Field:  entryField,
			Err:    &compactsize.NonCanonicalError{Prefix: r.classByte, Err: err},
		}

	case errors.As(err, &messageError) && isLimit(messageError) &&
		r.position == r.lastSizeEnd && r.lastSize > uint64(r.remaining()):
		// A count or length past the decoder's limits that the rest
		// of the stream could not hold anyway.
		return &TruncatedDataError{
			Needed:    clampLength(r.lastSize),
			Available: r.remaining(),
			Offset:    r.base + r.position,
			Field:     entryField,
		}

	default:
		return &MalformedTransactionError{Offset: r.base + r.position, Err: err}
	}
}

func isNonCanonical(err *wire.MessageError) bool {
	return err.Func == "ReadVarInt" || strings.Contains(err.Description, "non-canonical")
}

// isLimit reports whether err rejects a count or length for exceeding
// the decoder's size limits.
func isLimit(err *wire.MessageError) bool {
	return strings.Contains(err.Description, "max")
}
