// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/cli"
	"github.com/bureau-foundation/mempoolview/lib/codec"
	"github.com/bureau-foundation/mempoolview/lib/mempool"
)

type exportParams struct {
	Output string `flag:"output,o" desc:"write to this file instead of stdout (\"-\" is stdout)"`
}

// exportHeader is the first record of an export. Entry records that
// follow are [mempool.TransactionView] values.
type exportHeader struct {
	Version      uint64 `cbor:"version"`
	Format       string `cbor:"format"`
	XorKey       []byte `cbor:"xor_key,omitempty"`
	Transactions uint64 `cbor:"transactions"`
	Fingerprint  string `cbor:"fingerprint"`
	Trailer      []byte `cbor:"trailer,omitempty"`
}

func exportCommand(env *environment) *cli.Command {
	var params exportParams

	return &cli.Command{
		Name:    "export",
		Summary: "Write the snapshot as a CBOR sequence",
		Description: `Decode the snapshot and write it as a CBOR sequence (RFC 8742): one
header record, then one record per transaction with the same fields
as "decode --json". Encoding is deterministic, so exporting the same
snapshot twice produces identical bytes.`,
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("export", &params)
		},
		Examples: []cli.Example{
			{
				Description: "Export to a file",
				Command:     "mempoolview export -o mempool.cbor",
			},
			{
				Description: "Inspect the first record with a CBOR tool",
				Command:     "mempoolview export | cbor2diag.rb | head",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}

			result, _, err := env.load("export", logger)
			if err != nil {
				return err
			}

			if params.Output == "" || params.Output == "-" {
				return writeExport(env.streams.Stdout, result.Snapshot, result.Fingerprint)
			}

			file, err := os.Create(params.Output)
			if err != nil {
				return cli.Internal("creating export: %w", err).WithHint("Check the path passed with --output.")
			}
			if err := writeExport(file, result.Snapshot, result.Fingerprint); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return cli.Internal("closing %s: %w", params.Output, err)
			}
			logger.Info("exported snapshot",
				"output", params.Output,
				"records", len(result.Snapshot.Transactions)+1,
			)
			return nil
		},
	}
}

func writeExport(w io.Writer, snapshot *mempool.Snapshot, fingerprint mempool.Fingerprint) error {
	buffered := bufio.NewWriter(w)
	encoder := codec.NewEncoder(buffered)

	header := snapshot.Header
	record := exportHeader{
		Version:      header.Version,
		Format:       header.Format.String(),
		Transactions: header.TxCount,
		Fingerprint:  fingerprint.String(),
		Trailer:      snapshot.Trailer,
	}
	if header.Format == mempool.FormatV2 {
		record.XorKey = header.XorKey
	}
	if err := encoder.Encode(record); err != nil {
		return cli.Internal("encoding export header: %w", err)
	}

	for index, tx := range snapshot.Transactions {
		if err := encoder.Encode(mempool.Describe(tx)); err != nil {
			return cli.Internal("encoding entry %d: %w", index, err)
		}
	}

	if err := buffered.Flush(); err != nil {
		return cli.Internal("writing export: %w", err)
	}
	return nil
}
