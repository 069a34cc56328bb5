// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"

	"github.com/knytt-tools/levelkit/worldini"
	"github.com/spf13/cobra"
	"zombiezen.com/go/log"
)

func newCatCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "cat FILE",
		Short: "Print a World.ini in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadDocument(cmd.Context(), cmd.InOrStdin(), args[0], nil)
			if err != nil {
				return err
			}
			data, err := d.Serialize(&worldini.SerializeOptions{CRLF: g.crlf})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE SECTION KEY",
		Short: "Print a property value",
		Long: "Print the value of KEY in SECTION. Names are matched case-insensitively.\n" +
			"Use an empty SECTION for properties before the first header.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadDocument(cmd.Context(), cmd.InOrStdin(), args[0], nil)
			if err != nil {
				return err
			}
			section, key := args[1], args[2]
			v, ok := d.Lookup(section, key)
			if !ok {
				return fmt.Errorf("get [%s] %s: %w", section, key, errNotFound)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v)
			return err
		},
	}
}

func newSetCommand(g *globalFlags) *cobra.Command {
	var output string
	var canonical bool
	c := &cobra.Command{
		Use:   "set FILE SECTION KEY VALUE",
		Short: "Set a property value",
		Long: "Set KEY in SECTION to VALUE and write the document back to FILE,\n" +
			"or to the path given by --output (\"-\" for stdout). Comments, blank\n" +
			"lines and other properties are kept as written unless --canonical is set.",
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			section, key, value := args[1], args[2], args[3]
			if !worldini.IsValidSection(section) {
				return fmt.Errorf("set: invalid section name %q", section)
			}
			if !worldini.IsValidKey(key) {
				return fmt.Errorf("set: invalid key %q", key)
			}
			if !worldini.IsValidValue(value) {
				return fmt.Errorf("set: invalid value %q", value)
			}
			d, path, err := loadDocument(ctx, cmd.InOrStdin(), args[0], nil)
			if err != nil {
				return err
			}
			dst := output
			if dst == "" {
				dst = path
			}
			if old, ok := d.Lookup(section, key); ok {
				log.Debugf(ctx, "Replacing [%s] %s=%s", section, key, old)
			}
			d.Set(section, key, value)
			opts := &worldini.SerializeOptions{CRLF: g.crlf, Preserve: !canonical}
			if dst == "-" {
				data, err := d.Serialize(opts)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := d.WriteFile(dst, opts); err != nil {
				return err
			}
			log.Infof(ctx, "Wrote %s", dst)
			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "", "write to `path` instead of FILE")
	c.Flags().BoolVar(&canonical, "canonical", false, "rewrite the whole document in canonical form")
	return c
}

func newSectionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sections FILE",
		Short: "List section names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _, err := loadDocument(cmd.Context(), cmd.InOrStdin(), args[0], nil)
			if err != nil {
				return err
			}
			for _, name := range d.Sections() {
				if name == "" && d.Section("").Len() == 0 {
					continue
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newCheckCommand() *cobra.Command {
	var strict bool
	c := &cobra.Command{
		Use:   "check FILE",
		Short: "Report lines that are ignored when a World.ini is read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ignored := 0
			opts := &worldini.ParseOptions{
				Ignored: func(lineno int, line string) {
					ignored++
					log.Warnf(ctx, "%s:%d: ignored line %q", args[0], lineno, line)
				},
			}
			d, path, err := loadDocument(ctx, cmd.InOrStdin(), args[0], opts)
			if err != nil {
				return err
			}
			names := d.Sections()
			log.Debugf(ctx, "%s: %d sections", path, len(names))
			if d.Get("World", "Name") == "" {
				log.Warnf(ctx, "%s: no [World] Name", path)
			}
			if ignored > 0 && strict {
				return fmt.Errorf("check %s: %d ignored line(s)", path, ignored)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", path)
			return err
		},
	}
	c.Flags().BoolVar(&strict, "strict", false, "fail if any line is ignored")
	return c
}

var errNotFound = errors.New("not found")
