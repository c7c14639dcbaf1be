// Copyright (c) 2020, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
This file provides tree walking functions: WalkDown and WalkUp visit
many records with a callback, and Next, Previous and Last step through
the tree one record at a time in pre-order.
*/

package tree

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// WalkUp calls the given function on the record and all of its parents,
// sequentially in the current goroutine (generally necessary for going up,
// which is typically quite fast anyway). It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (r *RecordBase) WalkUp(fun func(r Record) bool) bool {
	if r.this == nil {
		return true
	}
	if !fun(r.this) {
		return false
	}
	for p := r.parent; p != nil; p = p.parent {
		if !fun(p) {
			return false
		}
	}
	return true
}

// WalkDown calls the given function on the record and all of its
// descendants in pre-order (depth-first, in child order). If the function
// returns [Break] for a container, its children are skipped; walking
// continues with its next sibling.
func (r *RecordBase) WalkDown(fun func(r Record) bool) {
	if r.this == nil {
		return
	}
	walkDown(r.this, fun)
}

func walkDown(r Record, fun func(r Record) bool) {
	if !fun(r) {
		return
	}
	c := r.AsContainer()
	if c == nil {
		return
	}
	for _, ch := range c.Children {
		walkDown(ch, fun)
	}
}

// Last returns the last record in the pre-order of the subtree
// rooted at the given record.
func Last(r Record) Record {
	for {
		c := r.AsContainer()
		if c == nil || !c.HasChildren() {
			return r
		}
		r = c.Child(-1)
	}
}

// Previous returns the record before the given one in pre-order:
// the last record under its previous sibling, or its parent if it
// is the first child. It returns nil for a record without a parent.
func Previous(r Record) Record {
	rb := r.AsRecord()
	if rb.parent == nil {
		return nil
	}
	if prev := PrevSibling(r); prev != nil {
		return Last(prev)
	}
	return rb.parent
}

// Next returns the record after the given one in pre-order,
// or nil if it is the last one.
func Next(r Record) Record {
	if c := r.AsContainer(); c != nil && c.HasChildren() {
		return c.Child(0)
	}
	for ; r != nil; r = parentRecord(r) {
		if next := NextSibling(r); next != nil {
			return next
		}
	}
	return nil
}

// NextSibling returns the sibling right after the given record,
// or nil if it is the last child or has no parent.
func NextSibling(r Record) Record {
	rb := r.AsRecord()
	if rb.parent == nil {
		return nil
	}
	idx := rb.IndexInParent()
	if idx < 0 {
		return nil
	}
	return rb.parent.Child(idx + 1)
}

// PrevSibling returns the sibling right before the given record,
// or nil if it is the first child or has no parent.
func PrevSibling(r Record) Record {
	rb := r.AsRecord()
	if rb.parent == nil {
		return nil
	}
	idx := rb.IndexInParent()
	if idx <= 0 {
		return nil
	}
	return rb.parent.Child(idx - 1)
}

// parentRecord returns the parent of r as a [Record], or nil.
// A nil *Container must not leak into a non-nil interface.
func parentRecord(r Record) Record {
	if p := r.AsRecord().parent; p != nil {
		return p
	}
	return nil
}
