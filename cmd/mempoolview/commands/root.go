// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/cli"
	"github.com/bureau-foundation/mempoolview/lib/version"
)

// Streams are the process's standard streams. Tests substitute buffers.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// StandardStreams returns the process's real stdin, stdout, and stderr.
func StandardStreams() Streams {
	return Streams{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// globalOptions are the flags accepted before or after any subcommand.
type globalOptions struct {
	File         string `flag:"file,f" desc:"path to mempool.dat (optionally .zst or .lz4 compressed)" default:"mempool.dat"`
	Config       string `flag:"config" desc:"configuration file (.yaml, .yml, .json, .jsonc); overrides MEMPOOLVIEW_CONFIG"`
	Verbose      bool   `flag:"verbose,v" desc:"log load and decode progress to stderr"`
	XorAlignment string `flag:"xor-alignment" desc:"XOR key alignment for version 2 files: stream or file" default:"stream"`
	Strict       bool   `flag:"strict" desc:"reject any bytes after the declared entries, including Bitcoin Core's fee-delta and unbroadcast sections"`
}

// Root builds and returns the complete mempoolview command tree.
func Root(streams Streams) *cli.Command {
	env := newEnvironment(streams)

	var showVersion bool
	root := &cli.Command{
		Name: "mempoolview",
		Description: `mempoolview: inspect Bitcoin Core mempool.dat snapshots.

Decodes version 1 and version 2 (XOR-obfuscated) files, transparently
decompressing zstd and LZ4 copies, and prints the header, individual
transactions, or a CBOR export. "interact" opens a vim-style browser.`,
		PersistentFlags: env.persistent,
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("mempoolview", pflag.ContinueOnError)
			flagSet.BoolVar(&showVersion, "version", false, "print version information")
			return flagSet
		},
		Logger: env.logger,
		Output: streams.Stderr,
		Subcommands: []*cli.Command{
			headerCommand(env),
			decodeCommand(env),
			interactCommand(env),
			exportCommand(env),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, _ []string, _ *slog.Logger) error {
					fmt.Fprintf(streams.Stdout, "mempoolview %s\n", version.Full())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Show the header of the node's snapshot",
				Command:     "mempoolview -f ~/.bitcoin/mempool.dat header",
			},
			{
				Description: "Print the first five transactions, one per line",
				Command:     "mempoolview decode --limit 5 --compact",
			},
			{
				Description: "Browse a compressed copy interactively",
				Command:     "mempoolview -f mempool.dat.zst interact",
			},
			{
				Description: "Export every entry as a CBOR sequence",
				Command:     "mempoolview export -o mempool.cbor",
			},
		},
	}
	root.Run = func(context.Context, []string, *slog.Logger) error {
		if showVersion {
			fmt.Fprintf(streams.Stdout, "mempoolview %s\n", version.Info())
			return nil
		}
		root.PrintHelp(streams.Stderr)
		return nil
	}
	return root
}
