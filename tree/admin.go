// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"errors"
	"fmt"
	"math"
)

// admin.go has infrastructure code outside of the Record interface.

const (
	// Start is the index sentinel for inserting before all existing children.
	// Any smaller index is clamped to Start.
	Start = 0

	// End is the index sentinel for inserting after all existing children.
	End = math.MaxInt
)

var (
	// ErrDuplicateName is returned when adding a record to a container
	// of a [Tree] with [Tree.Unique] set, and a sibling already has its name.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrMoveIntoSelf is returned by [Container.Move] when the destination
	// is the moved container or one of its descendants.
	ErrMoveIntoSelf = errors.New("cannot move a container into itself")
)

// initRecord makes sure that the [RecordBase.This] of the given
// record is set, which is needed for records created as struct literals.
func initRecord(r Record) {
	rb := r.AsRecord()
	if rb.this != r {
		rb.this = r
	}
}

// checkInsertable panics if the given item can not be added to c.
func (c *Container) checkInsertable(item Record) {
	if item == nil {
		panic("tree: cannot add a nil record")
	}
	initRecord(item)
	ib := item.AsRecord()
	if ib.parent != nil {
		panic(fmt.Sprintf("tree: cannot add %q to %q: it is already a child of %q; delete it first", ib.Name, c.label(), ib.parent.label()))
	}
	ic := item.AsContainer()
	if ic == nil {
		return
	}
	if ic.tree != nil {
		panic(fmt.Sprintf("tree: cannot add the root of a tree to %q", c.label()))
	}
	for p := c; p != nil; p = p.parent {
		if p == ic {
			panic(fmt.Sprintf("tree: cannot add %q to its own descendant %q", ib.Name, c.label()))
		}
	}
}

// clampIndex clamps the given insertion index to [Start, n].
func clampIndex(index, n int) int {
	if index < Start {
		return Start
	}
	if index > n {
		return n
	}
	return index
}

// padColumns pads the columns of the given record with nil
// up to n values. Extra values are kept.
func padColumns(rb *RecordBase, n int) {
	for len(rb.Columns) < n {
		rb.Columns = append(rb.Columns, nil)
	}
}

// label returns a name for the container for use in messages.
func (c *Container) label() string {
	if c.isRoot() {
		return "/"
	}
	return c.Path()
}
