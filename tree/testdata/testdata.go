// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides a shared record tree for tests.
package testdata

import "cogentcore.org/outline/tree"

// Headings are the column headings of the test tree.
var Headings = []string{"Column1", "Column2", "Column3"}

// Items returns a fresh description of the test tree:
//
//	Node One
//	   Leaf One
//	   Node Two
//	      Leaf Two
//	   Leaf Five
//	   Node Three
//	      Leaf Three
//	      Node Four
//	         Leaf Four
//	Leaf Six
func Items() []tree.Item {
	return []tree.Item{
		{Name: "Node One", Columns: []any{"4 items"}, Children: []tree.Item{
			{Name: "Leaf One", Columns: []any{"leaf", "one"}},
			{Name: "Node Two", Children: []tree.Item{
				{Name: "Leaf Two"},
			}},
			{Name: "Leaf Five", Columns: []any{"leaf", "five", "5"}},
			{Name: "Node Three", Children: []tree.Item{
				{Name: "Leaf Three"},
				{Name: "Node Four", Columns: []any{"1 item"}, Children: []tree.Item{
					{Name: "Leaf Four", Columns: []any{"leaf", "four"}},
				}},
			}},
		}},
		{Name: "Leaf Six"},
	}
}

// New returns a new tree with the test headings, populated with [Items].
func New() *tree.Tree {
	t := tree.NewTree(Headings...)
	if _, err := t.Populate(Items()); err != nil {
		panic(err)
	}
	return t
}
