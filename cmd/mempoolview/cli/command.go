// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command represents a CLI command or subcommand.
type Command struct {
	// Name is the command name as typed by the user (e.g., "decode").
	Name string

	// Summary is a one-line description shown in the parent's help listing.
	Summary string

	// Description is a detailed multi-line description shown in the command's
	// own help output.
	Description string

	// Usage is the usage string (e.g., "mempoolview decode [flags]").
	// If empty, it is synthesized from the command path and subcommands.
	Usage string

	// Examples are shown in the help output after the description.
	Examples []Example

	// Flags returns a configured *pflag.FlagSet for this command. Called
	// lazily on first use. If nil, the command accepts no flags of its own.
	Flags func() *pflag.FlagSet

	// PersistentFlags are accepted by this command and all of its
	// descendants. The same *pflag.Flag values are shared, so a flag set
	// before the subcommand name stays set (and Changed) below it.
	PersistentFlags *pflag.FlagSet

	// Subcommands are nested commands dispatched by the first positional arg.
	Subcommands []*Command

	// Run executes the command with the remaining args (after flag parsing).
	// If both Run and Subcommands are set, Run is used when no positional
	// argument names a subcommand.
	Run func(ctx context.Context, args []string, logger *slog.Logger) error

	// Logger builds the logger handed to Run. It is consulted on the
	// root command after all flags are parsed, so it can depend on
	// persistent flags such as --verbose. Nil discards log output.
	Logger func() *slog.Logger

	// Output receives help text. Nil means stderr.
	Output io.Writer

	// parent is set during dispatch to build the full command path for help.
	parent *Command
}

// Example is a usage example shown in help output.
type Example struct {
	// Description explains what the example does.
	Description string
	// Command is the literal command line.
	Command string
}

// Execute parses args and dispatches to the appropriate subcommand or Run
// function. This is the main entry point for the command tree.
func (c *Command) Execute(ctx context.Context, args []string) error {
	// Check for help flags before anything else.
	if len(args) > 0 && isHelpFlag(args[0]) {
		c.PrintHelp(c.output())
		return nil
	}

	// Leading flags ("mempoolview -f x decode") are consumed here so
	// the subcommand name becomes the first positional arg. The set is
	// kept for the final parse: calling Flags again would rebind its
	// targets to their defaults.
	var flagSet *pflag.FlagSet
	if len(c.Subcommands) > 0 && len(args) > 0 && strings.HasPrefix(args[0], "-") {
		flagSet = c.inheritedFlags()
		flagSet.SetInterspersed(false)
		flagSet.SetOutput(io.Discard)
		if err := flagSet.Parse(args); err != nil {
			if err == pflag.ErrHelp {
				c.PrintHelp(c.output())
				return nil
			}
			return c.flagError(err, args, c.inheritedFlags())
		}
		args = flagSet.Args()
		if len(args) > 0 && isHelpFlag(args[0]) {
			c.PrintHelp(c.output())
			return nil
		}
	}

	// If we have subcommands, try to dispatch.
	if len(c.Subcommands) > 0 && len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		name := args[0]
		for _, sub := range c.Subcommands {
			if sub.Name == name {
				sub.parent = c
				return sub.Execute(ctx, args[1:])
			}
		}

		// Unknown subcommand: suggest the closest match.
		suggestion := suggestCommand(name, c.Subcommands)
		if suggestion != "" {
			return Validation("unknown command %q (did you mean %q?)", name, suggestion).
				WithHint(fmt.Sprintf("Run '%s --help' for usage.", c.fullName()))
		}
		return Validation("unknown command %q", name).
			WithHint(fmt.Sprintf("Run '%s --help' for usage.", c.fullName()))
	}

	// If we have subcommands but no Run, show help.
	if len(c.Subcommands) > 0 && c.Run == nil {
		c.PrintHelp(c.output())
		if len(args) == 0 {
			return Validation("subcommand required")
		}
		return Validation("subcommand required (got flag %q)", args[0])
	}

	if flagSet == nil {
		flagSet = c.inheritedFlags()
		flagSet.SetOutput(io.Discard)
	}
	flagSet.SetInterspersed(true)
	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			c.PrintHelp(c.output())
			return nil
		}
		return c.flagError(err, args, c.inheritedFlags())
	}
	args = flagSet.Args()

	if c.Run != nil {
		return c.Run(ctx, args, c.logger())
	}

	// No Run, no subcommands matched: show help.
	c.PrintHelp(c.output())
	return fmt.Errorf("no action defined for %q", c.fullName())
}

// flagError builds a helpful error for a failed parse: the pflag
// message, a suggestion when the flag is unknown, and a pointer to
// --help. lookup is a fresh set, since the failed one may hold state.
func (c *Command) flagError(err error, args []string, lookup *pflag.FlagSet) error {
	message := err.Error()
	hint := fmt.Sprintf("Run '%s --help' for usage.", c.fullName())

	if strings.Contains(message, "unknown flag") || strings.Contains(message, "unknown shorthand flag") {
		if suggestion := suggestFlag(args, lookup); suggestion != "" {
			return Validation("%s (did you mean %s?)", message, suggestion).WithHint(hint)
		}
	}
	return Validation("%s", message).WithHint(hint)
}

// inheritedFlags returns a new FlagSet holding this command's own
// flags plus the persistent flags of the command and every ancestor.
func (c *Command) inheritedFlags() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(c.Name, pflag.ContinueOnError)
	if c.Flags != nil {
		flagSet.AddFlagSet(c.Flags())
	}
	for command := c; command != nil; command = command.parent {
		if command.PersistentFlags != nil {
			flagSet.AddFlagSet(command.PersistentFlags)
		}
	}
	return flagSet
}

func (c *Command) root() *Command {
	command := c
	for command.parent != nil {
		command = command.parent
	}
	return command
}

func (c *Command) logger() *slog.Logger {
	if build := c.root().Logger; build != nil {
		return build()
	}
	return slog.New(slog.DiscardHandler)
}

func (c *Command) output() io.Writer {
	if output := c.root().Output; output != nil {
		return output
	}
	return os.Stderr
}

// PrintHelp writes structured help output to w.
func (c *Command) PrintHelp(w io.Writer) {
	name := c.fullName()

	// Description or summary.
	if c.Description != "" {
		fmt.Fprintf(w, "%s\n\n", c.Description)
	} else if c.Summary != "" {
		fmt.Fprintf(w, "%s\n\n", c.Summary)
	}

	// Usage line.
	if c.Usage != "" {
		fmt.Fprintf(w, "Usage:\n  %s\n", c.Usage)
	} else if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "Usage:\n  %s <command> [flags]\n", name)
	} else {
		fmt.Fprintf(w, "Usage:\n  %s [flags]\n", name)
	}

	// Subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nCommands:\n")
		tw := tabwriter.NewWriter(w, 2, 0, 3, ' ', 0)
		for _, sub := range c.Subcommands {
			fmt.Fprintf(tw, "  %s\t%s\n", sub.Name, sub.Summary)
		}
		tw.Flush()
	}

	// Own flags, then flags inherited from ancestors.
	if c.Flags != nil {
		writeFlagDefaults(w, "Flags", c.Flags())
	}
	global := pflag.NewFlagSet("global", pflag.ContinueOnError)
	for command := c; command != nil; command = command.parent {
		if command.PersistentFlags != nil {
			global.AddFlagSet(command.PersistentFlags)
		}
	}
	writeFlagDefaults(w, "Global flags", global)

	// Examples.
	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, example := range c.Examples {
			if example.Description != "" {
				fmt.Fprintf(w, "  # %s\n", example.Description)
			}
			fmt.Fprintf(w, "  %s\n", example.Command)
			if example.Description != "" {
				fmt.Fprintln(w)
			}
		}
	}

	// Footer: help hint for subcommands.
	if len(c.Subcommands) > 0 {
		fmt.Fprintf(w, "\nRun '%s <command> --help' for more information on a command.\n", name)
	}
}

func writeFlagDefaults(w io.Writer, heading string, flagSet *pflag.FlagSet) {
	usage := flagSet.FlagUsages()
	if usage != "" {
		fmt.Fprintf(w, "\n%s:\n%s", heading, usage)
	}
}

// fullName returns the complete command path (e.g., "mempoolview decode").
func (c *Command) fullName() string {
	if c.parent == nil {
		return c.Name
	}
	return c.parent.fullName() + " " + c.Name
}

// isHelpFlag returns true for common help flag variants.
func isHelpFlag(arg string) bool {
	return arg == "-h" || arg == "--help" || arg == "help"
}
