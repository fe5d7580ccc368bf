// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/bureau-foundation/mempoolview/lib/compactsize"
)

// Sentinel errors for errors.Is checks. Every typed error below
// reports itself as its category sentinel.
var (
	ErrUnsupportedVersion       = errors.New("unsupported mempool version")
	ErrTruncatedData            = errors.New("truncated mempool data")
	ErrInvalidCompactSize       = errors.New("invalid compact size")
	ErrTransactionCountMismatch = errors.New("transaction count mismatch")
	ErrIOFailure                = errors.New("mempool input failure")
	ErrMalformedTransaction     = errors.New("malformed transaction")
)

// UnsupportedVersionError reports a version field other than 1 or 2.
type UnsupportedVersionError struct {
	Version uint64
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported mempool version %d (supported: 1, 2)", e.Version)
}

func (e *UnsupportedVersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// TruncatedDataError reports a fixed-size or length-prefixed read that
// needed more bytes than remained.
type TruncatedDataError struct {
	// Needed is the byte count the read required.
	Needed int
	// Available is the byte count that remained.
	Available int
	// Offset is the file offset at which the read started.
	Offset int
	// Field names what was being read, e.g. "input script".
	Field string
}

func (e *TruncatedDataError) Error() string {
	return fmt.Sprintf("truncated data reading %s at offset %d: need %d bytes, %d available",
		e.Field, e.Offset, e.Needed, e.Available)
}

func (e *TruncatedDataError) Is(target error) bool {
	return target == ErrTruncatedData
}

// InvalidCompactSizeError reports a malformed compact size: a class
// byte without all its continuation bytes, or a value spelled with a
// wider class than it needs. Err holds the codec's own error. A missing
// continuation is also reported as [ErrTruncatedData].
type InvalidCompactSizeError struct {
	Offset int
	Field  string
	Err    error
}

func (e *InvalidCompactSizeError) Error() string {
	return fmt.Sprintf("invalid compact size for %s at offset %d: %v", e.Field, e.Offset, e.Err)
}

func (e *InvalidCompactSizeError) Unwrap() error { return e.Err }

func (e *InvalidCompactSizeError) Is(target error) bool {
	if target == ErrTruncatedData {
		var truncated *compactsize.TruncatedError
		return errors.As(e.Err, &truncated)
	}
	return target == ErrInvalidCompactSize
}

// MalformedTransactionError reports a transaction that frames
// correctly but that the consensus decoder rejects: a segwit marker
// with no witness data, a bad flag byte, or a count beyond the
// decoder's limits. Reason describes rejections found here; Err holds
// the wire decoder's error otherwise.
type MalformedTransactionError struct {
	Offset int
	Reason string
	Err    error
}

func (e *MalformedTransactionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed transaction at offset %d: %v", e.Offset, e.Err)
	}
	return fmt.Sprintf("malformed transaction at offset %d: %s", e.Offset, e.Reason)
}

func (e *MalformedTransactionError) Unwrap() error { return e.Err }

func (e *MalformedTransactionError) Is(target error) bool {
	return target == ErrMalformedTransaction
}

// TransactionCountMismatchError reports that the stream held fewer
// complete entries than the header declared, or that undecodable bytes
// remained after the declared entries.
type TransactionCountMismatchError struct {
	Declared uint64
	Parsed   uint64
	// Remaining is the number of unconsumed bytes. Zero when the
	// stream ran out early.
	Remaining int
}

func (e *TransactionCountMismatchError) Error() string {
	if e.Remaining > 0 {
		return fmt.Sprintf("transaction count mismatch: header declares %d, parsed %d with %d bytes left over",
			e.Declared, e.Parsed, e.Remaining)
	}
	return fmt.Sprintf("transaction count mismatch: header declares %d, stream ended after %d",
		e.Declared, e.Parsed)
}

func (e *TransactionCountMismatchError) Is(target error) bool {
	return target == ErrTransactionCountMismatch
}

// IOFailureError reports a failure to obtain the snapshot bytes.
type IOFailureError struct {
	Path string
	// Op is the step that failed: "open", "read", or "decompress".
	Op  string
	Err error
}

func (e *IOFailureError) Error() string {
	// *fs.PathError already names the operation and path.
	var pathError *fs.PathError
	if errors.As(e.Err, &pathError) {
		return e.Err.Error()
	}
	if e.Path == "" {
		return fmt.Sprintf("%s mempool input: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOFailureError) Unwrap() error { return e.Err }

func (e *IOFailureError) Is(target error) bool {
	return target == ErrIOFailure
}

// EntryError attaches the zero-based entry index to an error raised
// while decoding that entry.
type EntryError struct {
	Index uint64
	Err   error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d: %v", e.Index, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }
