// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/knytt-tools/levelkit/worldini"
	"zombiezen.com/go/log"
)

// resolvePath returns the World.ini path named by a FILE argument. A
// directory is treated as a level directory.
func resolvePath(arg string) (string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return arg, nil
	}
	return worldini.FindWorld(arg)
}

// loadDocument parses the World.ini named by a FILE argument. It returns the
// path it read from, or "-" for stdin.
func loadDocument(ctx context.Context, stdin io.Reader, arg string, opts *worldini.ParseOptions) (*worldini.Document, string, error) {
	if arg == "-" {
		d, err := worldini.Read(stdin, opts)
		if err != nil {
			return nil, "", err
		}
		return d, arg, nil
	}
	path, err := resolvePath(arg)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", arg, err)
	}
	log.Debugf(ctx, "Reading %s", path)
	d, err := worldini.ParseFile(path, opts)
	if err != nil {
		return nil, "", err
	}
	return d, path, nil
}
