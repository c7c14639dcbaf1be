// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io/fs"
	"log/slog"
	"os"

	"github.com/jinzhu/copier"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/outline/base/errors"
	"cogentcore.org/outline/base/indent"
	"cogentcore.org/outline/base/iox/tomlx"
	"cogentcore.org/outline/tree/show"
)

// DefaultConfigFile is the config file that is read when none is given.
// When it is not in the current directory, [UserConfigFile] is read
// instead, and it is fine for neither to exist.
const DefaultConfigFile = "outline.toml"

// UserConfigFile is the config file in the home directory of the user.
const UserConfigFile = "~/.outline.toml"

// Config is the configuration of the outline command,
// read from a TOML file and overridden by flags.
type Config struct {

	// Headings are the column headings of new trees made by the repl.
	Headings []string `toml:"headings"`

	// Unique is whether sibling names must be unique in new and opened trees.
	Unique bool `toml:"unique"`

	// Indent is the number of indentation characters per level.
	Indent int `toml:"indent"`

	// Char is the indentation character: space or tab.
	Char string `toml:"char"`

	// Color is whether to style output for the terminal.
	Color bool `toml:"color"`

	// IDs is whether to show the id of each record in outlines.
	IDs bool `toml:"ids"`

	// Table is whether to show trees as a table of all columns.
	Table bool `toml:"table"`
}

// DefaultConfig returns the configuration used when no file sets otherwise.
func DefaultConfig() *Config {
	return &Config{
		Headings: []string{"Value"},
		Indent:   3,
		Char:     indent.Space.String(),
		Color:    true,
	}
}

// LoadConfig returns the [DefaultConfig] overridden by the given TOML file.
// A leading ~ in the file name is expanded to the home directory.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()
	if file == "" {
		return cfg, nil
	}
	optional := file == DefaultConfigFile
	if optional && !exists(file) {
		file = UserConfigFile
	}
	fn, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	err = tomlx.Open(cfg, fn)
	if optional && errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no config file", "file", fn)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded config", "file", fn)
	return cfg, nil
}

// exists returns whether the given file exists.
func exists(file string) bool {
	_, err := os.Stat(file)
	return err == nil
}

// Merge sets the fields of cfg to the non-zero fields of from.
func (cfg *Config) Merge(from *Config) error {
	return copier.CopyWithOption(cfg, from, copier.Option{IgnoreEmpty: true})
}

// ShowOptions returns the rendering options for the config.
func (cfg *Config) ShowOptions() (show.Options, error) {
	opts := show.DefaultOptions()
	ch, err := indent.ParseCharacter(cfg.Char)
	if err != nil {
		return opts, err
	}
	opts.Char = ch
	if cfg.Indent > 0 {
		opts.Indent = cfg.Indent
	}
	opts.IDs = cfg.IDs
	opts.Color = cfg.Color
	return opts, nil
}
