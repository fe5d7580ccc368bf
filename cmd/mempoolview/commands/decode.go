// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/cli"
	"github.com/bureau-foundation/mempoolview/lib/mempool"
)

type decodeParams struct {
	cli.JSONOutput
	Limit   int  `flag:"limit,l" desc:"number of transactions to print" default:"10"`
	Compact bool `flag:"compact,c" desc:"print one line per transaction"`
}

func decodeCommand(env *environment) *cli.Command {
	var params decodeParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "decode",
		Summary: "Print the first N transactions",
		Description: `Decode the snapshot and print its first N transactions (default 10)
in file order. The default form is a multi-line block per entry;
--compact prints one line each; --json prints an array of objects.

The whole file is decoded before anything is printed.`,
		Usage: "mempoolview decode [--limit N] [--compact] [--json]",
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("decode", &params)
			return flagSet
		},
		Examples: []cli.Example{
			{
				Description: "First three entries, one line each",
				Command:     "mempoolview decode -l 3 -c",
			},
			{
				Description: "Every entry as JSON",
				Command:     "mempoolview decode --limit 1000000 --json",
			},
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}

			result, resolved, err := env.load("decode", logger)
			if err != nil {
				return err
			}

			limit, compact := resolved.Decode.Limit, resolved.Decode.Compact
			if flagSet.Changed("limit") {
				limit = params.Limit
			}
			if flagSet.Changed("compact") {
				compact = params.Compact
			}
			if limit < 0 {
				return cli.Validation("--limit must not be negative, got %d", limit)
			}

			transactions := result.Snapshot.Transactions
			transactions = transactions[:min(limit, len(transactions))]

			if params.OutputJSON {
				views := make([]mempool.TransactionView, len(transactions))
				for index, tx := range transactions {
					views[index] = mempool.Describe(tx)
				}
				_, err := params.EmitJSON(env.streams.Stdout, views)
				return err
			}

			printer := newEntryPrinter(env.streams.Stdout)
			for index, tx := range transactions {
				if compact {
					printer.compact(index, tx)
				} else {
					printer.block(index, tx)
				}
			}
			return printer.err
		},
	}
}

// entryPrinter formats transactions as text. Headings are bold when
// the output is a terminal.
type entryPrinter struct {
	writer  io.Writer
	heading lipgloss.Style
	err     error
}

func newEntryPrinter(writer io.Writer) *entryPrinter {
	profile := termenv.Ascii
	if isTerminal(writer) {
		profile = termenv.ANSI256
	}
	renderer := lipgloss.NewRenderer(writer, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)
	return &entryPrinter{
		writer:  writer,
		heading: renderer.NewStyle().Bold(true),
	}
}

func (printer *entryPrinter) printf(format string, args ...any) {
	if printer.err != nil {
		return
	}
	_, printer.err = fmt.Fprintf(printer.writer, format, args...)
}

// compact prints one line:
//
//	[0] <txid> 2023-11-14T22:13:20Z vsize=141 in=1 out=2 segwit
func (printer *entryPrinter) compact(index int, tx *mempool.Transaction) {
	segwit := ""
	if tx.HasWitness {
		segwit = " segwit"
	}
	printer.printf("[%d] %s %s vsize=%d in=%d out=%d%s\n",
		index, tx.TxID, formatTime(tx.Timestamp), tx.VirtualSize(),
		len(tx.Msg.TxIn), len(tx.Msg.TxOut), segwit)
}

func (printer *entryPrinter) block(index int, tx *mempool.Transaction) {
	view := mempool.Describe(tx)

	printer.printf("%s\n", printer.heading.Render(fmt.Sprintf("[%d] %s", index, view.TxID)))
	printer.printf("    wtxid:    %s\n", view.WTxID)
	printer.printf("    time:     %s (%d)\n", view.Time, view.Timestamp)
	printer.printf("    version:  %d\n", view.Version)
	printer.printf("    size:     %d bytes, vsize %d, weight %d\n", view.Size, view.VirtualSize, view.Weight)
	printer.printf("    segwit:   %t\n", view.Segwit)
	printer.printf("    locktime: %d\n", view.LockTime)
	printer.printf("    inputs:   %d\n", len(view.Inputs))
	for inputIndex, input := range view.Inputs {
		printer.printf("      #%d %s:%d sequence 0x%08x\n", inputIndex, input.PrevTxID, input.PrevIndex, input.Sequence)
		if input.ScriptSig != "" {
			printer.printf("         script_sig %s\n", input.ScriptSig)
		}
		if len(input.Witness) > 0 {
			printer.printf("         witness %s\n", strings.Join(input.Witness, " "))
		}
	}
	printer.printf("    outputs:  %d (%d sats)\n", len(view.Outputs), view.TotalOutput)
	for outputIndex, output := range view.Outputs {
		printer.printf("      #%d %d sats %s\n", outputIndex, output.Value, output.ScriptPubKey)
	}
	printer.printf("    metadata: %s\n", view.TrailingBytes)
}

func formatTime(timestamp int64) string {
	return time.Unix(timestamp, 0).UTC().Format(time.RFC3339)
}
