// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the mempoolview command tree: header,
// decode, interact, export, and version, sharing the global --file,
// --config, --verbose, and --xor-alignment flags.
//
// Settings resolve with the precedence explicit flag, then config file,
// then built-in default. Every command that reads a snapshot decodes it
// completely before printing anything, so a bad file produces an error
// and a non-zero exit rather than partial output.
package commands
