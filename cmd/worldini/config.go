// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// config holds the defaults for the persistent flags. Flags override it.
type config struct {
	verbose bool
	crlf    bool
}

// loadConfig reads the environment, first loading any .env file in the
// working directory. Variables already set in the environment take
// precedence over the .env file.
func loadConfig() (*config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return configFromEnv(), nil
}

func configFromEnv() *config {
	return &config{
		verbose: envBool("WORLDINI_VERBOSE"),
		crlf:    envBool("WORLDINI_CRLF"),
	}
}

// envBool returns the value of a boolean environment variable. If it is
// unset or not one of the strings 1, t, T, TRUE, true, or True, then it
// returns false.
func envBool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
