// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional mempoolview configuration file.
//
// The file is named by either the MEMPOOLVIEW_CONFIG environment
// variable (via [Load]) or a --config flag (via [LoadFile]). There are
// no fallbacks and no automatic file search: without one of the two,
// the built-in [Default] values apply.
//
// YAML is read for .yaml and .yml files. JSON with comments and
// trailing commas is read for .json and .jsonc files. Any other
// extension is an error rather than a guess.
//
// Key exports:
//
//   - [Config] -- the settings struct
//   - [Default] -- built-in defaults
//   - [Load] and [LoadFile] -- the two entry points for loading
//   - [Config.Validate] -- field checks, each error naming its field
//
// This package depends on no other mempoolview packages.
package config
