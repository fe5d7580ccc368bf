// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for mempoolview
// packages.
//
// [Tx] builds consensus-encoded Bitcoin transactions without touching
// the decoder under test, so decoder tests compare against bytes that
// were assembled independently. [SimpleTx] and [WitnessTx] return
// small deterministic transactions distinguished by a seed byte.
//
// [WriteFile] writes bytes into a per-test temporary directory and
// returns the path.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package depends only on lib/compactsize.
package testutil
