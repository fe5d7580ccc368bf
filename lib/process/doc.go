// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process turns the error returned by a binary's run function
// into an exit status. It is the one place outside the CLI output
// paths that writes to stderr directly, because the structured logger
// may never have been built when run fails.
package process
