// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"fmt"
	"io"
	"os"
)

// Exit ends the process according to err. A nil error returns without
// exiting. An error with an ExitCode() int method exits with that code
// and prints nothing, since the command has already written its own
// output. Anything else prints "error: err" to stderr and exits 1.
func Exit(err error) {
	if err == nil {
		return
	}
	os.Exit(Report(os.Stderr, err))
}

// Report writes the message Exit would print for err to w and returns
// the exit code Exit would use. A nil error is code 0.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}
