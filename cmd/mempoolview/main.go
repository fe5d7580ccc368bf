// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// mempoolview decodes Bitcoin Core mempool.dat snapshots and browses
// them in the terminal.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/commands"
	"github.com/bureau-foundation/mempoolview/lib/process"
)

func main() {
	process.Exit(run())
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return commands.Root(commands.StandardStreams()).Execute(ctx, os.Args[1:])
}
