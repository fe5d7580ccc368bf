// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package xorkey applies the cyclic XOR obfuscation Bitcoin Core uses
// for its on-disk files. Output byte i is input byte i XORed with key
// byte (offset+i) mod len(key). An empty key is the identity. The
// transform is its own inverse.
package xorkey

import "encoding/hex"

// Key is an obfuscation key. Bitcoin Core generates eight random bytes
// per file, but any length up to 255 is representable on disk.
type Key []byte

// String returns the key as lowercase hex.
func (k Key) String() string {
	return hex.EncodeToString(k)
}

// Apply returns a new slice holding data XORed with key, starting at
// key index 0. The input is not modified.
func Apply(data, key []byte) []byte {
	return ApplyAt(data, key, 0)
}

// ApplyAt is [Apply] with the key stream advanced by offset bytes.
// Bitcoin Core keys its file streams by absolute file position, which
// is what a non-zero offset reproduces.
func ApplyAt(data, key []byte, offset int) []byte {
	output := make([]byte, len(data))
	copy(output, data)
	InPlace(output, key, offset)
	return output
}

// InPlace XORs data with key in place, starting at key index
// offset mod len(key).
func InPlace(data, key []byte, offset int) {
	if len(key) == 0 {
		return
	}
	keyIndex := offset % len(key)
	if keyIndex < 0 {
		keyIndex += len(key)
	}
	for index := range data {
		data[index] ^= key[keyIndex]
		keyIndex++
		if keyIndex == len(key) {
			keyIndex = 0
		}
	}
}
