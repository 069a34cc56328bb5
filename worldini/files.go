// Copyright 2026 The Levelkit Authors
// SPDX-License-Identifier: BSD-3-Clause

package worldini

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the name of the world-settings document in a level directory.
const FileName = "World.ini"

// ParseFile reads and parses the file at the given path.
func ParseFile(path string, opts *ParseOptions) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parse world ini: %w", err)
	}
	return Parse(data, opts), nil
}

// LoadWorld parses the World.ini of the level in dir. Levels are often
// authored on case-insensitive file systems, so if dir has no file named
// exactly World.ini, LoadWorld uses the first file whose name matches
// case-insensitively.
func LoadWorld(dir string, opts *ParseOptions) (*Document, error) {
	path, err := FindWorld(dir)
	if err != nil {
		return nil, err
	}
	return ParseFile(path, opts)
}

// FindWorld returns the path of the World.ini in the level directory dir,
// following the same name matching rules as LoadWorld.
func FindWorld(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("find world ini: %w", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("find world ini: %w", err)
	}
	for _, ent := range entries {
		if !ent.IsDir() && strings.EqualFold(ent.Name(), FileName) {
			return filepath.Join(dir, ent.Name()), nil
		}
	}
	return "", fmt.Errorf("find world ini: %s: %w", path, os.ErrNotExist)
}

// WriteFile serializes the document and writes it to the given path,
// creating or truncating the file. Nil options are treated identically as
// passing the zero value.
func (d *Document) WriteFile(path string, opts *SerializeOptions) error {
	data, err := d.Serialize(opts)
	if err != nil {
		return fmt.Errorf("write world ini %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o666); err != nil {
		return fmt.Errorf("write world ini: %w", err)
	}
	return nil
}
