// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

// worldini inspects and edits the World.ini of a level.
//
// Every command takes a FILE argument: a path to a World.ini, a level
// directory containing one, or "-" for standard input.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"zombiezen.com/go/log"
)

type globalFlags struct {
	verbose bool
	crlf    bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	cfg, err := loadConfig()
	if err != nil {
		cancel()
		os.Stderr.WriteString("worldini: load .env: " + err.Error() + "\n")
		os.Exit(1)
	}
	g := &globalFlags{verbose: cfg.verbose, crlf: cfg.crlf}
	log.SetDefault(newLogger(os.Stderr, g.verbose))
	root := newRootCommand(g)
	root.PersistentPreRun = func(*cobra.Command, []string) {
		// --verbose is known only once flags are parsed.
		log.SetDefault(newLogger(os.Stderr, g.verbose))
	}
	err = root.ExecuteContext(ctx)
	cancel()
	if err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

func newRootCommand(g *globalFlags) *cobra.Command {
	root := &cobra.Command{
		Use:           "worldini",
		Short:         "Inspect and edit level World.ini files",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", g.verbose, "show debug output (default from $WORLDINI_VERBOSE)")
	root.PersistentFlags().BoolVar(&g.crlf, "crlf", g.crlf, "write CRLF line endings (default from $WORLDINI_CRLF)")

	root.AddCommand(
		newCatCommand(g),
		newGetCommand(),
		newSetCommand(g),
		newSectionsCommand(),
		newCheckCommand(),
	)
	return root
}
