// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"log/slog"
	"slices"
)

// Populate creates records from the given descriptions and appends them
// to this container in document order, descending into the children of
// each container description. It returns the created records in
// pre-order. An item with non-nil Children becomes a [Container], and
// any other item a [Leaf].
//
// Populate stops at the first error (see [Container.Insert]), returning
// the records created up to that point along with the error.
func (c *Container) Populate(data []Item) ([]Record, error) {
	var made []Record
	err := c.populate(data, &made)
	return made, err
}

func (c *Container) populate(data []Item, made *[]Record) error {
	for _, it := range data {
		var r Record
		if it.IsContainer() {
			r = NewContainer(it.Name, it.Columns...)
		} else {
			r = NewLeaf(it.Name, it.Columns...)
		}
		if _, err := c.Append(r); err != nil {
			return err
		}
		*made = append(*made, r)
		if it.IsContainer() {
			if err := r.AsContainer().populate(it.Children, made); err != nil {
				return err
			}
		}
	}
	return nil
}

// ToList returns the descriptions of the children of this container,
// the inverse of [Container.Populate]. Column values are copied, and
// trailing nil columns are trimmed. A container always has a non-nil
// Children, even when it is empty.
func (c *Container) ToList() []Item {
	items := make([]Item, len(c.Children))
	for i, ch := range c.Children {
		items[i] = toItem(ch)
	}
	return items
}

// toItem returns the description of the given record and its subtree.
func toItem(r Record) Item {
	rb := r.AsRecord()
	it := Item{Name: rb.Name}
	n := len(rb.Columns)
	for n > 0 && rb.Columns[n-1] == nil {
		n--
	}
	if n > 0 {
		it.Columns = slices.Clone(rb.Columns[:n])
	}
	if c := r.AsContainer(); c != nil {
		it.Children = c.ToList()
	}
	return it
}

// Clone appends a copy of this container, including all of its
// descendants, as the last child of dst, and returns the copy. The
// copies get fresh ids. The subtree is captured before dst is modified,
// so dst may be this container or one of its descendants.
func (c *Container) Clone(dst *Container) (*Container, error) {
	if c.isRoot() {
		panic("tree: cannot clone the root of a tree")
	}
	snap := toItem(c)
	made, err := dst.Populate([]Item{snap})
	if len(made) == 0 {
		return nil, err
	}
	return made[0].AsContainer(), err
}

// Move moves this container, including all of its descendants, to be
// the last child of dst, and returns the moved copy. It works by cloning
// the container into dst and then deleting the original, so the moved
// records get fresh ids. It returns an error wrapping [ErrMoveIntoSelf]
// if dst is this container or one of its descendants. It panics if this
// container is the root of a tree.
func (c *Container) Move(dst *Container) (*Container, error) {
	if c.isRoot() {
		panic("tree: cannot move the root of a tree")
	}
	for p := dst; p != nil; p = p.parent {
		if p == c {
			return nil, fmt.Errorf("%w: %q into %q", ErrMoveIntoSelf, c.Path(), dst.label())
		}
	}
	moved, err := c.Clone(dst)
	if err != nil {
		if moved != nil {
			moved.Delete()
		}
		return nil, err
	}
	if c.parent != nil {
		c.Delete()
	}
	slog.Debug("tree: moved", "from", c.Name, "to", moved.Path())
	return moved, nil
}
