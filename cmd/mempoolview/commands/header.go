// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/cli"
	"github.com/bureau-foundation/mempoolview/lib/mempool"
)

type headerParams struct {
	cli.JSONOutput
}

// headerSummary is the header command's output, in both text and
// --json form.
type headerSummary struct {
	File         string `json:"file"`
	Version      uint64 `json:"version"`
	Format       string `json:"format"`
	XorKey       string `json:"xor_key,omitempty"`
	Transactions uint64 `json:"transactions"`
	Fingerprint  string `json:"fingerprint"`
	TrailerBytes int    `json:"trailer_bytes"`
	Compression  string `json:"compression"`
	Size         int    `json:"size"`
}

func summarize(path string, result *mempool.LoadResult) headerSummary {
	header := result.Snapshot.Header
	summary := headerSummary{
		File:         path,
		Version:      header.Version,
		Format:       header.Format.String(),
		Transactions: header.TxCount,
		Fingerprint:  result.Fingerprint.String(),
		TrailerBytes: len(result.Snapshot.Trailer),
		Compression:  result.Compression.String(),
		Size:         result.Size,
	}
	if header.Format == mempool.FormatV2 {
		summary.XorKey = header.XorKey.String()
	}
	return summary
}

func headerCommand(env *environment) *cli.Command {
	var params headerParams

	return &cli.Command{
		Name:    "header",
		Summary: "Show the snapshot header",
		Description: `Decode the snapshot and print its header: version, layout, the XOR
key of a version 2 file, the transaction count, and a BLAKE3
fingerprint of the uncompressed bytes.

The whole file is decoded first, so a corrupt body is reported here
too.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("header", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Header as JSON",
				Command:     "mempoolview header --json",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}
			result, resolved, err := env.load("header", logger)
			if err != nil {
				return err
			}
			summary := summarize(resolved.File, result)

			if done, err := params.EmitJSON(env.streams.Stdout, summary); done {
				return err
			}
			return writeHeader(env, summary)
		},
	}
}

func writeHeader(env *environment, summary headerSummary) error {
	writer := tabwriter.NewWriter(env.streams.Stdout, 2, 0, 2, ' ', 0)
	fmt.Fprintf(writer, "File:\t%s\n", summary.File)
	fmt.Fprintf(writer, "Version:\t%d\n", summary.Version)
	fmt.Fprintf(writer, "Format:\t%s\n", summary.Format)
	if summary.Format == mempool.FormatV2.String() {
		key := summary.XorKey
		if key == "" {
			key = "(empty)"
		}
		fmt.Fprintf(writer, "XOR key:\t%s\n", key)
	}
	fmt.Fprintf(writer, "Transactions:\t%d\n", summary.Transactions)
	fmt.Fprintf(writer, "Fingerprint:\t%s\n", summary.Fingerprint)
	fmt.Fprintf(writer, "Trailer:\t%d bytes\n", summary.TrailerBytes)
	if summary.Compression != mempool.CompressionNone.String() {
		fmt.Fprintf(writer, "Compression:\t%s\n", summary.Compression)
	}
	return writer.Flush()
}
