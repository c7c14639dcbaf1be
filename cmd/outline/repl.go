// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-shellwords"

	"cogentcore.org/outline/base/errors"
	"cogentcore.org/outline/tree"
)

const replUsage = `Commands:

Usage:
    > ls [<path>]
    > cd [<path>]
    > show [<path>] [--table] [--ids]
    > add <parent> <name> [<values>...]
    > mkdir <parent> <name> [<values>...]
    > rm <path>
    > get <path> [<index>...]
    > set <path> <column> <value>
    > find <path>
    > findall [-r] <path>
    > mv <path> <dest>
    > cp <path> <dest>
    > reindex [<start>]
    > headings [<heading>...]
    > save [<file>]
    > help
    > quit
    > exit

Paths are names, / separated paths, or record ids.
"." is the current container, ".." its parent and "/" the root.
Values are parsed as numbers, true, false or null where possible.
`

// repl is an interactive session editing one tree.
type repl struct {

	// tree is the tree being edited.
	tree *tree.Tree

	// cwd is the current container, which relative paths start from.
	cwd *tree.Container

	// file is the file the tree is saved to by default.
	file string

	// cfg is the configuration for rendering.
	cfg *Config

	// out is where command output is written.
	out io.Writer

	// parser parses each command line.
	parser *docopt.Parser
}

// newREPL returns a session for the given file, or for a new tree
// with the configured headings if file is empty.
func newREPL(file string, cfg *Config, out io.Writer) (*repl, error) {
	var t *tree.Tree
	if file == "" {
		t = tree.NewTree(cfg.Headings...)
	} else {
		var err error
		t, err = tree.Open(file)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Unique {
		t.SetUnique(true)
	}
	rp := &repl{tree: t, cwd: &t.Container, file: file, cfg: cfg, out: out}
	rp.parser = &docopt.Parser{
		HelpHandler:   docopt.NoHelpHandler,
		SkipHelpFlags: true,
	}
	return rp, nil
}

// run reads commands from in until it ends, the context is done,
// or a quit command is given. Command errors are written to the
// output and do not stop the session.
func (rp *repl) run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()

	for {
		fmt.Fprint(rp.out, rp.prompt())
		select {
		case <-ctx.Done():
			fmt.Fprintln(rp.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(rp.out)
				return <-errc
			}
			quit, err := rp.exec(line)
			if err != nil {
				fmt.Fprintln(rp.out, "error:", err)
			}
			if quit {
				return nil
			}
		}
	}
}

// prompt returns the prompt showing the current container.
func (rp *repl) prompt() string {
	return "/" + rp.cwd.Path() + "> "
}

// exec runs one command line, returning whether the session should end.
func (rp *repl) exec(line string) (quit bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return false, nil
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return false, err
	}
	if len(args) == 0 {
		return false, nil
	}
	opts, err := rp.parser.ParseArgs(replUsage, args, "")
	if err != nil {
		return false, fmt.Errorf("invalid command %q; type help for usage", args[0])
	}
	cmd := args[0]
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		_, err = fmt.Fprint(rp.out, replUsage)
	case "ls":
		err = rp.ls(opts)
	case "cd":
		err = rp.cd(opts)
	case "show":
		err = rp.show(opts)
	case "add", "mkdir":
		err = rp.add(opts, cmd == "mkdir")
	case "rm":
		err = rp.rm(opts)
	case "get":
		err = rp.get(opts)
	case "set":
		err = rp.set(opts)
	case "find":
		err = rp.find(opts)
	case "findall":
		err = rp.findAll(opts)
	case "mv":
		err = rp.mv(opts)
	case "cp":
		err = rp.cp(opts)
	case "reindex":
		err = rp.reindex(opts)
	case "headings":
		err = rp.headings(opts)
	case "save":
		err = rp.save(opts)
	}
	return false, err
}

// lookup returns the record addressed by sel, relative to the current
// container. Numeric selectors are ids.
func (rp *repl) lookup(sel string) (tree.Record, error) {
	switch sel {
	case "", ".":
		return rp.cwd, nil
	case "/":
		return &rp.tree.Container, nil
	case "..":
		if p := rp.cwd.Parent(); p != nil {
			return p, nil
		}
		return rp.cwd, nil
	}
	if id, err := strconv.Atoi(sel); err == nil {
		if r := rp.tree.Query(id); r != nil {
			return r, nil
		}
		return nil, fmt.Errorf("no record with id %d", id)
	}
	if r := rp.cwd.Find(sel); r != nil {
		return r, nil
	}
	return nil, rp.notFound(sel)
}

// notFound returns the error for a failed lookup of sel,
// suggesting records with similar names.
func (rp *repl) notFound(sel string) error {
	similar := rp.tree.FindSimilar(path.Base(sel), 3)
	if len(similar) == 0 {
		return fmt.Errorf("%q not found", sel)
	}
	paths := make([]string, len(similar))
	for i, r := range similar {
		paths[i] = strconv.Quote("/" + r.AsRecord().Path())
	}
	return fmt.Errorf("%q not found; did you mean %s?", sel, strings.Join(paths, " or "))
}

// lookupContainer is like lookup, but requires a container.
func (rp *repl) lookupContainer(sel string) (*tree.Container, error) {
	r, err := rp.lookup(sel)
	if err != nil {
		return nil, err
	}
	c := r.AsContainer()
	if c == nil {
		return nil, fmt.Errorf("%q is not a container", sel)
	}
	return c, nil
}

func (rp *repl) ls(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	c, err := rp.lookupContainer(sel)
	if err != nil {
		return err
	}
	for _, ch := range c.Children {
		name := ch.AsRecord().Name
		if tree.IsContainer(ch) {
			name += "/"
		}
		fmt.Fprintln(rp.out, name)
	}
	return nil
}

func (rp *repl) cd(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	if sel == "" {
		sel = "/"
	}
	c, err := rp.lookupContainer(sel)
	if err != nil {
		return err
	}
	rp.cwd = c
	return nil
}

func (rp *repl) show(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	c, err := rp.lookupContainer(sel)
	if err != nil {
		return err
	}
	cfg := *rp.cfg
	if table, _ := opts.Bool("--table"); table {
		cfg.Table = true
	}
	if ids, _ := opts.Bool("--ids"); ids {
		cfg.IDs = true
	}
	return render(rp.out, rp.tree, c, &cfg)
}

func (rp *repl) add(opts docopt.Opts, container bool) error {
	sel, _ := opts.String("<parent>")
	name, _ := opts.String("<name>")
	vals, _ := opts["<values>"].([]string)
	p, err := rp.lookupContainer(sel)
	if err != nil {
		return err
	}
	columns := make([]any, len(vals))
	for i, v := range vals {
		columns[i] = parseValue(v)
	}
	var r tree.Record
	if container {
		r, err = p.AddContainer(name, columns...)
	} else {
		r, err = p.AddLeaf(name, columns...)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(rp.out, "added %s #%d\n", r.AsRecord().Path(), r.AsRecord().ID())
	return nil
}

func (rp *repl) rm(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	r, err := rp.lookup(sel)
	if err != nil {
		return err
	}
	rb := r.AsRecord()
	if rb.Parent() == nil {
		return errors.New("cannot remove the root")
	}
	if rp.contains(r, rp.cwd) {
		rp.cwd = rb.Parent()
	}
	rb.Delete()
	return nil
}

// contains returns whether c is r or one of its descendants.
func (rp *repl) contains(r tree.Record, c *tree.Container) bool {
	for p := c; p != nil; p = p.Parent() {
		if tree.Record(p) == r {
			return true
		}
	}
	return false
}

func (rp *repl) get(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	r, err := rp.lookup(sel)
	if err != nil {
		return err
	}
	idxs, err := parseIndexes(opts["<index>"])
	if err != nil {
		return err
	}
	vals := r.AsRecord().Get(idxs...)
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = formatValue(v)
	}
	_, err = fmt.Fprintln(rp.out, strings.Join(strs, "\t"))
	return err
}

func (rp *repl) set(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	r, err := rp.lookup(sel)
	if err != nil {
		return err
	}
	rb := r.AsRecord()
	if rb.Parent() == nil {
		return errors.New("cannot set values of the root")
	}
	i, err := opts.Int("<column>")
	if err != nil {
		return err
	}
	if i < 0 || i > len(rb.Columns) {
		return fmt.Errorf("index %d out of range [0, %d]", i, len(rb.Columns))
	}
	val, _ := opts.String("<value>")
	if i == 0 {
		p := rb.Parent()
		if p.Tree() != nil && p.Tree().Unique && val != rb.Name && p.ChildByName(val) != nil {
			return fmt.Errorf("%w: %q in %q", tree.ErrDuplicateName, val, "/"+p.Path())
		}
		rb.Set(0, val)
		return nil
	}
	rb.Set(i, parseValue(val))
	return nil
}

func (rp *repl) find(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	r, err := rp.lookup(sel)
	if err != nil {
		return err
	}
	rp.printRecords([]tree.Record{r})
	return nil
}

func (rp *repl) findAll(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	recursive, _ := opts.Bool("-r")
	found := rp.cwd.FindAll(sel, recursive)
	if len(found) == 0 {
		return rp.notFound(sel)
	}
	rp.printRecords(found)
	return nil
}

// printRecords writes the id and path of each record.
func (rp *repl) printRecords(rs []tree.Record) {
	for _, r := range rs {
		rb := r.AsRecord()
		fmt.Fprintf(rp.out, "#%d\t/%s\n", rb.ID(), rb.Path())
	}
}

func (rp *repl) mv(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	dsel, _ := opts.String("<dest>")
	r, err := rp.lookup(sel)
	if err != nil {
		return err
	}
	dst, err := rp.lookupContainer(dsel)
	if err != nil {
		return err
	}
	rb := r.AsRecord()
	if rb.Parent() == nil {
		return errors.New("cannot move the root")
	}
	if c := r.AsContainer(); c != nil {
		inCwd := rp.contains(c, rp.cwd)
		moved, err := c.Move(dst)
		if err != nil {
			return err
		}
		if inCwd {
			rp.cwd = moved.Parent()
		}
		return nil
	}
	from, index := rb.Parent(), rb.IndexInParent()
	rb.Delete()
	if _, err := dst.Append(r); err != nil {
		if _, rerr := from.Insert(index, r); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}

func (rp *repl) cp(opts docopt.Opts) error {
	sel, _ := opts.String("<path>")
	dsel, _ := opts.String("<dest>")
	r, err := rp.lookup(sel)
	if err != nil {
		return err
	}
	dst, err := rp.lookupContainer(dsel)
	if err != nil {
		return err
	}
	rb := r.AsRecord()
	if rb.Parent() == nil {
		return errors.New("cannot copy the root")
	}
	if c := r.AsContainer(); c != nil {
		_, err = c.Clone(dst)
		return err
	}
	_, err = dst.AddLeaf(rb.Name, slices.Clone(rb.Columns)...)
	return err
}

func (rp *repl) reindex(opts docopt.Opts) error {
	start := 0
	if s, err := opts.String("<start>"); err == nil && s != "" {
		start, err = strconv.Atoi(s)
		if err != nil {
			return err
		}
	}
	rp.tree.Reindex(start)
	return nil
}

func (rp *repl) headings(opts docopt.Opts) error {
	hs, _ := opts["<heading>"].([]string)
	if len(hs) == 0 {
		_, err := fmt.Fprintln(rp.out, strings.Join(rp.tree.Headings, "\t"))
		return err
	}
	if len(hs) < len(rp.tree.Headings) {
		return fmt.Errorf("cannot remove headings: have %d, got %d", len(rp.tree.Headings), len(hs))
	}
	rp.tree.Headings = hs
	// pad existing records to the new headings
	rp.tree.WalkDown(func(r tree.Record) bool {
		rb := r.AsRecord()
		if rb.Parent() != nil {
			for len(rb.Columns) < len(hs) {
				rb.Columns = append(rb.Columns, nil)
			}
		}
		return tree.Continue
	})
	return nil
}

func (rp *repl) save(opts docopt.Opts) error {
	file, _ := opts.String("<file>")
	if file == "" {
		file = rp.file
	}
	if file == "" {
		return errors.New("no file to save to")
	}
	if err := rp.tree.Save(file); err != nil {
		return err
	}
	rp.file = file
	slog.Info("saved", "file", file, "records", rp.tree.Count())
	fmt.Fprintf(rp.out, "saved %s\n", file)
	return nil
}

// parseValue returns the column value for the given text.
func parseValue(s string) any {
	switch s {
	case "null", "nil":
		return nil
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// formatValue returns the text of a column value.
func formatValue(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprint(v)
}

// parseIndexes parses a list of column indexes given as an argument.
func parseIndexes(arg any) ([]int, error) {
	strs, _ := arg.([]string)
	idxs := make([]int, len(strs))
	for i, s := range strs {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q", s)
		}
		idxs[i] = n
	}
	return idxs, nil
}
