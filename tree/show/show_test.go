// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package show

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/outline/base/indent"
	"cogentcore.org/outline/tree"
)

func testTree(t *testing.T) *tree.Tree {
	tr := tree.NewTree("Kind", "Size")
	_, err := tr.Populate([]tree.Item{
		{Name: "docs", Columns: []any{"dir"}, Children: []tree.Item{
			{Name: "README", Columns: []any{"file", 120}},
		}},
		{Name: "LICENSE", Columns: []any{"file"}},
	})
	require.NoError(t, err)
	return tr
}

func TestOutline(t *testing.T) {
	tr := testTree(t)
	var buf bytes.Buffer
	require.NoError(t, Outline(&buf, &tr.Container, DefaultOptions()))
	assert.Equal(t, "docs\n   README\nLICENSE\n", buf.String())

	buf.Reset()
	opts := DefaultOptions()
	opts.IDs = true
	opts.Char = indent.Tab
	require.NoError(t, Outline(&buf, &tr.Container, opts))
	assert.Equal(t, "docs #1\n\tREADME #2\nLICENSE #3\n", buf.String())

	buf.Reset()
	require.NoError(t, Outline(&buf, tr.Find("docs").AsContainer(), DefaultOptions()))
	assert.Equal(t, "README\n", buf.String())
}

func TestTable(t *testing.T) {
	tr := testTree(t)
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, tr, DefaultOptions()))
	want := "ID  Path         Kind  Size\n" +
		"1   docs         dir\n" +
		"2   docs/README  file  120\n" +
		"3   LICENSE      file\n"
	assert.Equal(t, want, buf.String())
}

func TestTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, tree.NewTree("A"), DefaultOptions()))
	assert.Equal(t, "ID  Path  A\n", buf.String())
}
