// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package version describes the mempoolview binary.
//
// Release builds inject [Version], [GitCommit], [GitDirty], and
// [BuildTime] with -ldflags -X, for example:
//
//	go build -ldflags "-X github.com/bureau-foundation/mempoolview/lib/version.Version=0.2.0"
//
// Anything not injected comes from the toolchain's embedded build
// info: the module version for `go install` builds, and the VCS
// revision, time, and modified flag for builds inside a checkout.
// [Full] also names the btcd release that decodes transactions, since
// decode behavior follows it.
package version
