// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"io"

	"zombiezen.com/go/log"
)

// newLogger returns the logger installed by main. Debug entries are dropped
// unless verbose is set.
func newLogger(w io.Writer, verbose bool) log.Logger {
	level := log.Info
	if verbose {
		level = log.Debug
	}
	return &log.LevelFilter{
		Min:    level,
		Output: log.New(w, "worldini: ", log.ShowLevel, nil),
	}
}
