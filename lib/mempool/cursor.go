// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package mempool

import (
	"encoding/binary"
)

// cursor reads sequentially from a byte slice. base is the file offset
// of data[0], used only for error reporting.
type cursor struct {
	data     []byte
	position int
	base     int
}

func newCursor(data []byte, base int) *cursor {
	return &cursor{data: data, base: base}
}

func (c *cursor) remaining() int {
	return len(c.data) - c.position
}

func (c *cursor) offset() int {
	return c.base + c.position
}

// take returns the next count bytes as a subslice of the underlying
// buffer and advances past them.
func (c *cursor) take(count int, field string) ([]byte, error) {
	if count < 0 || count > c.remaining() {
		return nil, &TruncatedDataError{
			Needed:    count,
			Available: c.remaining(),
			Offset:    c.offset(),
			Field:     field,
		}
	}
	start := c.position
	c.position += count
	return c.data[start:c.position:c.position], nil
}

func (c *cursor) uint8(field string) (uint8, error) {
	raw, err := c.take(1, field)
	if err != nil {
		return 0, err
	}
	return raw[0], nil
}

func (c *cursor) uint64(field string) (uint64, error) {
	raw, err := c.take(8, field)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(raw), nil
}

func (c *cursor) int64(field string) (int64, error) {
	value, err := c.uint64(field)
	return int64(value), err
}

// clampLength converts a decoded length for error reporting without
// overflowing int.
func clampLength(length uint64) int {
	const maxInt = int(^uint(0) >> 1)
	if length > uint64(maxInt) {
		return maxInt
	}
	return int(length)
}
