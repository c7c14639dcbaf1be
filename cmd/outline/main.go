// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command outline shows, converts and edits outline files: trees of
// named records with one value per heading, stored as JSON, YAML or TOML.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/docopt/docopt-go"

	"cogentcore.org/outline/base/errors"
	"cogentcore.org/outline/base/logx"
	"cogentcore.org/outline/tree"
	"cogentcore.org/outline/tree/show"
)

// Version is the version of the outline command.
const Version = "0.1.0"

const usage = `Outline shows, converts and edits outline files.

Usage:
    outline show <file> [--table] [--ids] [--watch] [--config=<config>] [-v... | -q]
    outline convert <in> <out> [-v... | -q]
    outline repl [<file>] [--config=<config>] [-v... | -q]
    outline -h | --help
    outline --version

Options:
    -h --help           Show this screen.
    --version           Show version.
    --table             Show all of the columns as a table.
    --ids               Show the id of each record.
    --watch             Show the file again whenever it changes.
    --config=<config>   Location of the config file [default: outline.toml].
    -v                  Log more; repeat for debug messages.
    -q                  Only log errors.
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], Version)
	if err != nil {
		os.Exit(1)
	}
	setLogLevel(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if errors.Log(run(ctx, opts, os.Stdin, os.Stdout)) != nil {
		os.Exit(1)
	}
}

// setLogLevel sets the default logger at the verbosity given by the flags.
func setLogLevel(opts docopt.Opts) {
	v, _ := opts["-v"].(int)
	q, _ := opts.Bool("-q")
	logx.UserLevel = logx.LevelFromFlags(v >= 2, v == 1, q)
	logx.SetDefaultLogger()
}

// run runs the command selected by opts.
func run(ctx context.Context, opts docopt.Opts, in io.Reader, out io.Writer) error {
	if conv, _ := opts.Bool("convert"); conv {
		src, _ := opts.String("<in>")
		dst, _ := opts.String("<out>")
		return convert(src, dst)
	}

	cfgFile, _ := opts.String("--config")
	cfg, err := LoadConfig(cfgFile)
	if err != nil {
		return err
	}
	table, _ := opts.Bool("--table")
	ids, _ := opts.Bool("--ids")
	if err := cfg.Merge(&Config{Table: table, IDs: ids}); err != nil {
		return err
	}

	if sh, _ := opts.Bool("show"); sh {
		file, _ := opts.String("<file>")
		update := func() error { return showFile(out, file, cfg) }
		if w, _ := opts.Bool("--watch"); w {
			errors.Log(update())
			return watch(ctx, file, update)
		}
		return update()
	}

	file, _ := opts.String("<file>")
	rp, err := newREPL(file, cfg, out)
	if err != nil {
		return err
	}
	return rp.run(ctx, in)
}

// convert reads the outline file src and saves it to dst, with the
// formats determined by the file extensions.
func convert(src, dst string) error {
	t, err := tree.Open(src)
	if err != nil {
		return err
	}
	if err := t.Save(dst); err != nil {
		return err
	}
	slog.Info("converted", "from", src, "to", dst, "records", t.Count())
	return nil
}

// showFile opens the given outline file and renders it to w.
func showFile(w io.Writer, file string, cfg *Config) error {
	t, err := tree.Open(file)
	if err != nil {
		return err
	}
	return render(w, t, &t.Container, cfg)
}

// render writes c as an outline, or all of t as a table, as set by cfg.
func render(w io.Writer, t *tree.Tree, c *tree.Container, cfg *Config) error {
	opts, err := cfg.ShowOptions()
	if err != nil {
		return err
	}
	if cfg.Table {
		return show.Table(w, t, opts)
	}
	if err := show.Outline(w, c, opts); err != nil {
		return err
	}
	if c.Len() == 0 {
		_, err = fmt.Fprintln(w, "(empty)")
	}
	return err
}
