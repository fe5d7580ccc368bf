// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/mempoolview/cmd/mempoolview/cli"
	"github.com/bureau-foundation/mempoolview/lib/config"
	"github.com/bureau-foundation/mempoolview/lib/mempool"
)

// settings is the resolved configuration a command runs with.
type settings struct {
	File             string
	KeyAlignment     mempool.KeyAlignment
	AllowTrailer     bool
	LogLevel         slog.Level
	Decode           config.DecodeConfig
	ListWidthPercent int
}

// environment is shared by every command in one tree. It owns the
// global flags and resolves them against the config file once.
type environment struct {
	streams    Streams
	globals    globalOptions
	persistent *pflag.FlagSet

	resolved bool
	settings settings
	err      error
}

func newEnvironment(streams Streams) *environment {
	env := &environment{streams: streams}
	env.persistent = cli.FlagsFromParams("global", &env.globals)
	return env
}

// resolve merges flags, the config file, and defaults. The result is
// cached: the logger and the command body both need it.
func (env *environment) resolve() (settings, error) {
	if env.resolved {
		return env.settings, env.err
	}
	env.resolved = true
	env.settings, env.err = env.merge()
	return env.settings, env.err
}

func (env *environment) merge() (settings, error) {
	cfg, err := env.loadConfig()
	if err != nil {
		return settings{}, err
	}

	resolved := settings{
		File:             cfg.File,
		LogLevel:         cli.ParseLevel(cfg.LogLevel),
		Decode:           cfg.Decode,
		ListWidthPercent: cfg.Viewer.ListWidthPercent,
		AllowTrailer:     !env.globals.Strict,
	}
	if env.persistent.Changed("file") {
		resolved.File = env.globals.File
	}
	if env.globals.Verbose {
		resolved.LogLevel = slog.LevelDebug
	}

	alignment := cfg.XorKeyAlignment
	if env.persistent.Changed("xor-alignment") {
		alignment = env.globals.XorAlignment
	}
	resolved.KeyAlignment, err = mempool.ParseKeyAlignment(alignment)
	if err != nil {
		return settings{}, cli.Validation("--xor-alignment: %w", err)
	}

	return resolved, nil
}

func (env *environment) loadConfig() (*config.Config, error) {
	if env.globals.Config != "" {
		cfg, err := config.LoadFile(env.globals.Config)
		if err != nil {
			return nil, cli.Validation("%w", err).WithHint("Check the file passed with --config.")
		}
		return cfg, nil
	}
	cfg, _, err := config.Load()
	if err != nil {
		return nil, cli.Validation("%w", err).WithHint("Check the file named by " + config.EnvironmentVariable + ".")
	}
	return cfg, nil
}

// logger is the root command's Logger hook. A config error is reported
// by the command itself; here it only falls back to the default level.
func (env *environment) logger() *slog.Logger {
	level := slog.LevelWarn
	if resolved, err := env.resolve(); err == nil {
		level = resolved.LogLevel
	} else if env.globals.Verbose {
		level = slog.LevelDebug
	}
	return cli.NewCommandLogger(level)
}

// load resolves settings and decodes the snapshot they name, logging
// under the command's name. Errors come back as categorized
// [cli.ToolError] values.
func (env *environment) load(command string, logger *slog.Logger) (*mempool.LoadResult, settings, error) {
	resolved, err := env.resolve()
	if err != nil {
		return nil, settings{}, err
	}
	logger = logger.With("command", command, "file", resolved.File)

	start := time.Now()
	result, err := mempool.LoadFile(resolved.File, mempool.Options{
		KeyAlignment: resolved.KeyAlignment,
		AllowTrailer: resolved.AllowTrailer,
		Logger:       logger,
	})
	if err != nil {
		return nil, resolved, loadError(resolved, err)
	}

	header := result.Snapshot.Header
	logger.Info("loaded mempool",
		"version", header.Version,
		"format", header.Format.String(),
		"transactions", len(result.Snapshot.Transactions),
		"bytes", result.Size,
		"compression", result.Compression.String(),
		"duration", time.Since(start),
	)
	return result, resolved, nil
}

// loadError categorizes a load failure and attaches a next step.
func loadError(resolved settings, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return cli.NotFound("%w", err).WithHint("Check the path with --file.")
	case errors.Is(err, mempool.ErrIOFailure):
		return cli.Internal("%w", err)
	case errors.Is(err, mempool.ErrUnsupportedVersion):
		return cli.Internal("%w", err).WithHint("Only Bitcoin Core mempool.dat files (version 1 or 2) can be decoded.")
	case !resolved.AllowTrailer && trailingBytes(err):
		return cli.Internal("%w", err).WithHint("Bitcoin Core writes fee-delta and unbroadcast sections after the entries; drop --strict to accept them.")
	case resolved.KeyAlignment == mempool.AlignStream &&
		(errors.Is(err, mempool.ErrTruncatedData) ||
			errors.Is(err, mempool.ErrInvalidCompactSize) ||
			errors.Is(err, mempool.ErrMalformedTransaction) ||
			errors.Is(err, mempool.ErrTransactionCountMismatch)):
		return cli.Internal("%w", err).WithHint("For a version 2 file, try --xor-alignment file.")
	default:
		return cli.Internal("%w", err)
	}
}

// trailingBytes reports whether err is a count mismatch caused by bytes
// left after the declared entries.
func trailingBytes(err error) bool {
	var mismatch *mempool.TransactionCountMismatchError
	return errors.As(err, &mismatch) && mismatch.Remaining > 0
}
