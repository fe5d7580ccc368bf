// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/cli"
	"github.com/bureau-foundation/mempoolview/lib/mempoolui"
	"github.com/bureau-foundation/mempoolview/lib/tui"
)

func interactCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name:    "interact",
		Summary: "Browse transactions in a terminal UI",
		Description: `Decode the snapshot, then open a full-screen browser: a transaction
list on the left and the selected transaction's detail on the right.

Keys (normal mode):
  j/k, arrows    move selection (or scroll detail when it has focus)
  f/b, PgDn/PgUp move by 10
  gg / G         first / last
  tab            switch focus between list and detail
  i              search (type hex, Esc to leave)
  m              toggle search between txid and wtxid
  c              clear the search
  h              header information
  q              quit

A decode failure is reported before the screen is taken over.`,
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument %q", args[0])
			}

			result, resolved, err := env.load("interact", logger)
			if err != nil {
				return err
			}

			engine := mempoolui.NewEngine(mempoolui.Source{
				Snapshot:    result.Snapshot,
				Path:        resolved.File,
				Fingerprint: result.Fingerprint.String(),
				Compression: result.Compression.String(),
			}, mempoolui.DefaultKeyMap)

			renderer := mempoolui.NewTerminalRenderer(mempoolui.RenderOptions{
				Theme:            tui.DefaultTheme,
				Keys:             mempoolui.DefaultKeyMap,
				ListWidthPercent: resolved.ListWidthPercent,
				Color:            isTerminal(env.streams.Stdout),
				Title:            "mempoolview " + resolved.File,
			})

			// Nothing logs from here on: the program owns the screen.
			program := tea.NewProgram(
				mempoolui.NewModel(engine, renderer),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithInput(env.streams.Stdin),
				tea.WithOutput(env.streams.Stdout),
			)
			_, err = program.Run()
			if err != nil {
				return cli.Internal("terminal UI: %w", err)
			}
			return nil
		},
	}
}

func isTerminal(stream any) bool {
	file, ok := stream.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}
