// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package show renders record trees as text for terminals:
// an indented outline of names, or a table of all of the columns.
package show

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"cogentcore.org/outline/base/indent"
	"cogentcore.org/outline/tree"
)

// Options are the rendering options for [Outline] and [Table].
type Options struct {

	// Indent is the number of spaces per level in [Outline].
	Indent int

	// Char is the indentation character used by [Outline].
	Char indent.Character

	// IDs is whether to show the id of each record in [Outline].
	IDs bool

	// Color is whether to style the output for the terminal profile
	// of the writer. Without it, the output is always plain text.
	Color bool
}

// DefaultOptions returns the default rendering options.
func DefaultOptions() Options {
	return Options{Indent: 3, Char: indent.Space}
}

// output returns the termenv output to use for w.
func (o *Options) output(w io.Writer) *termenv.Output {
	if o.Color {
		return termenv.NewOutput(w)
	}
	return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
}

// Outline writes the names of all of the records under c to w, one per
// line in pre-order, indented by their depth below c. Containers are
// shown bold, and ids follow the names when [Options.IDs] is set.
func Outline(w io.Writer, c *tree.Container, opts Options) error {
	out := opts.output(w)
	bw := bufio.NewWriter(w)
	base := c.Depth()
	for _, ch := range c.Children {
		ch.AsRecord().WalkDown(func(r tree.Record) bool {
			rb := r.AsRecord()
			bw.WriteString(indent.String(opts.Char, rb.Depth()-base-1, opts.Indent))
			name := out.String(rb.Name)
			if tree.IsContainer(r) {
				name = name.Foreground(out.Color("4")).Bold()
			}
			bw.WriteString(name.String())
			if opts.IDs {
				bw.WriteString(" " + out.String("#"+strconv.Itoa(rb.ID())).Faint().String())
			}
			bw.WriteByte('\n')
			return tree.Continue
		})
	}
	return bw.Flush()
}

// Table writes a table of all of the records of t to w, with a header
// line followed by one line per record in pre-order. The columns are
// the id, the path, and then one column per heading. Nil values are
// shown as empty cells.
func Table(w io.Writer, t *tree.Tree, opts Options) error {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	header := append([]string{"ID", "Path"}, t.Headings...)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	t.WalkDown(func(r tree.Record) bool {
		rb := r.AsRecord()
		if rb.Parent() == nil {
			return tree.Continue
		}
		cells := []string{strconv.Itoa(rb.ID()), rb.Path()}
		for i := range t.Headings {
			cells = append(cells, cellString(rb.Cell(i+1)))
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
		return tree.Continue
	})
	if err := tw.Flush(); err != nil {
		return err
	}

	// style after alignment so escape sequences do not count as width
	out := opts.output(w)
	bw := bufio.NewWriter(w)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for i, ln := range lines {
		ln = strings.TrimRight(ln, " ")
		if i == 0 {
			ln = out.String(ln).Bold().String()
		}
		bw.WriteString(ln)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// cellString returns the text of a column value.
func cellString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
