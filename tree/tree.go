// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides an ordered tree of named records with a fixed set
// of columns, where every record has a stable integer identity and can be
// addressed by id, name or slash-separated path.
//
// A [Tree] is the root [Container]; it owns the identity counter and the
// column headings. Records are [*Leaf] values, which hold only data, and
// [*Container] values, which also own an ordered list of children. All
// records are added through [Container.Insert], which links them to
// their parent and assigns their ids.
package tree

import (
	"log/slog"
	"slices"
)

// RootName is the name of the root container of every [Tree].
const RootName = "."

// Tree is the root [Container] of a record tree. It owns the identity
// counter and the column schema shared by all of its records.
type Tree struct {
	Container

	// Headings are the names of the columns of every record, not counting
	// the name, which is always column 0. They are fixed for the lifetime
	// of the tree.
	Headings []string

	// Items is the identity counter: the id most recently handed out by
	// [Tree.NextID]. It starts at 0, which is the id of the root.
	Items int

	// Unique is whether sibling names must be unique; see [Tree.SetUnique].
	Unique bool
}

// NewTree returns a new empty tree with the given column headings.
func NewTree(headings ...string) *Tree {
	t := &Tree{Headings: slices.Clone(headings)}
	t.Name = RootName
	t.this = &t.Container
	t.tree = t
	return t
}

// SetUnique sets whether sibling names must be unique, which makes
// [Container.Insert] return [ErrDuplicateName] on a collision. It only
// affects future insertions.
func (t *Tree) SetUnique(unique bool) *Tree {
	t.Unique = unique
	return t
}

// NextID increments the identity counter and returns the new value.
// It is called exactly once for each record that becomes live.
func (t *Tree) NextID() int {
	t.Items++
	return t.Items
}

// attach makes the given newly linked item and all of its descendants
// live: it assigns ids in pre-order and pads the columns to the headings.
func (t *Tree) attach(item Record) {
	n := len(t.Headings)
	walkDown(item, func(r Record) bool {
		initRecord(r)
		rb := r.AsRecord()
		rb.id = t.NextID()
		padColumns(rb, n)
		return Continue
	})
}

// Reindex resets the identity counter to start and then renumbers every
// record in pre-order, so that the ids are start+1, start+2 and so on.
// Names and columns are not affected.
func (t *Tree) Reindex(start int) {
	t.Items = start
	for _, ch := range t.Children {
		walkDown(ch, func(r Record) bool {
			r.AsRecord().id = t.NextID()
			return Continue
		})
	}
	slog.Debug("tree: reindexed", "start", start, "items", t.Items)
}

// Count returns the number of live records in the tree,
// not counting the root.
func (t *Tree) Count() int {
	n := 0
	for _, ch := range t.Children {
		walkDown(ch, func(r Record) bool {
			n++
			return Continue
		})
	}
	return n
}

// GetCell returns the value at column index i of the record addressed by
// the given selector (see [Container.Query]), or nil if there is no such
// record or index.
func (t *Tree) GetCell(sel any, i int) any {
	r := t.Query(sel)
	if r == nil {
		return nil
	}
	return r.AsRecord().Cell(i)
}

// SetCell sets the value at column index i of the record addressed by the
// given selector (see [Container.Query]). It returns false if there is no
// such record or index.
func (t *Tree) SetCell(sel any, i int, value any) bool {
	r := t.Query(sel)
	if r == nil {
		return false
	}
	rb := r.AsRecord()
	if _, ok := rb.cell(i); !ok {
		return false
	}
	rb.Set(i, value)
	return true
}
