// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"slices"
)

// Container is a [Record] that owns an ordered list of child records,
// each either a [*Leaf] or another [*Container]. A child belongs to
// exactly one container at a time.
//
// All additions go through [Container.Insert] (and [Container.Append],
// which calls it), the single place where parent links are set and
// identities are assigned.
type Container struct {
	RecordBase

	// Children is the ordered list of children of this container.
	// All of them have this container as their parent. Use the
	// Container methods to modify it so that links and identities
	// stay consistent.
	Children []Record

	// tree is set on the root container of a [Tree] only.
	tree *Tree
}

// NewContainer returns a new detached container with the given name
// and column values.
func NewContainer(name string, columns ...any) *Container {
	c := &Container{}
	c.Name = name
	c.Columns = slices.Clone(columns)
	c.this = c
	return c
}

// AsRecord returns the [RecordBase] of this container.
func (c *Container) AsRecord() *RecordBase {
	return &c.RecordBase
}

// AsContainer returns the container itself.
func (c *Container) AsContainer() *Container {
	return c
}

// Children:

// Len returns the number of children of this container.
func (c *Container) Len() int {
	return len(c.Children)
}

// HasChildren returns whether this container has any children.
func (c *Container) HasChildren() bool {
	return len(c.Children) > 0
}

// Child returns the child at the given index, or nil if the index is
// out of range. Negative indices count back from the end, so -1 is
// the last child.
func (c *Container) Child(i int) Record {
	if i < 0 {
		i += len(c.Children)
	}
	if i < 0 || i >= len(c.Children) {
		return nil
	}
	return c.Children[i]
}

// ChildByName returns the first child that has the given name,
// or nil if there is none.
func (c *Container) ChildByName(name string) Record {
	idx := IndexByName(c.Children, name)
	if idx < 0 {
		return nil
	}
	return c.Children[idx]
}

// Adding and Inserting Children:

// Append adds the given item as the last child of this container.
// See [Container.Insert] for the full contract.
func (c *Container) Append(item Record) (Record, error) {
	return c.Insert(End, item)
}

// Insert adds the given item as a child of this container at the given
// index, and returns the now live item. [End] (or any index past the
// last child) appends, and [Start] (or any smaller index) prepends.
//
// If the owning tree has [Tree.Unique] set and a sibling already has the
// item's name, Insert returns an error wrapping [ErrDuplicateName] and
// changes nothing. Otherwise it links the item to this container and,
// if this container is reachable from a [Tree], assigns fresh ids to
// the item and all of its descendants in pre-order and pads their
// columns to the number of headings.
//
// The item must be detached: Insert panics if it already has a parent,
// is the root of a tree, or is this container or one of its ancestors.
func (c *Container) Insert(index int, item Record) (Record, error) {
	c.checkInsertable(item)
	ib := item.AsRecord()
	t := c.Tree()
	if t != nil && t.Unique && c.ChildByName(ib.Name) != nil {
		return nil, fmt.Errorf("%w: %q already exists in %q", ErrDuplicateName, ib.Name, c.label())
	}
	index = clampIndex(index, len(c.Children))
	c.Children = slices.Insert(c.Children, index, item)
	ib.parent = c
	ib.index = index
	if t != nil {
		t.attach(item)
	}
	return item, nil
}

// Add is a generic helper for [Container.Append] that returns the
// item with its own type, for chaining:
//
//	dir, err := tree.Add(t.AsContainer(), tree.NewContainer("dir"))
func Add[T Record](c *Container, item T) (T, error) {
	_, err := c.Append(item)
	if err != nil {
		var zero T
		return zero, err
	}
	return item, nil
}

// AddLeaf creates a new leaf with the given name and columns
// and appends it to this container.
func (c *Container) AddLeaf(name string, columns ...any) (*Leaf, error) {
	return Add(c, NewLeaf(name, columns...))
}

// AddContainer creates a new container with the given name and columns
// and appends it to this container.
func (c *Container) AddContainer(name string, columns ...any) (*Container, error) {
	return Add(c, NewContainer(name, columns...))
}

// Deleting Children:

// DeleteChildAt removes the child at the given index and detaches it.
// It returns false if there is no child at the given index.
func (c *Container) DeleteChildAt(index int) bool {
	if index < 0 || index >= len(c.Children) {
		return false
	}
	child := c.Children[index]
	c.Children = slices.Delete(c.Children, index, index+1)
	child.AsRecord().parent = nil
	return true
}

// DeleteChild removes the given child, returning false if
// it is not a child of this container.
func (c *Container) DeleteChild(child Record) bool {
	if child == nil {
		return false
	}
	return c.DeleteChildAt(IndexOf(c.Children, child, child.AsRecord().index))
}

// DeleteChildByName removes the first child with the given name,
// returning false if there is none.
func (c *Container) DeleteChildByName(name string) bool {
	return c.DeleteChildAt(IndexByName(c.Children, name))
}

// DeleteChildren removes all children of this container.
func (c *Container) DeleteChildren() {
	kids := c.Children
	c.Children = nil
	for _, kid := range kids {
		kid.AsRecord().parent = nil
	}
}

// MoveChild moves the child at index from to index to, keeping its
// identity. It returns false if either index is out of range.
func (c *Container) MoveChild(from, to int) bool {
	n := len(c.Children)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	c.Children = moveIndex(c.Children, from, to)
	return true
}
