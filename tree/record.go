// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"strings"
)

// Record is the interface that all items stored in a [Tree] satisfy:
// [*Leaf] and [*Container]. The shared state and behavior of records is
// defined on [RecordBase], which both types embed; call [Record.AsRecord]
// to access it. Whether a record can hold children is a capability,
// tested with [IsContainer] or [Record.AsContainer], never by inspecting
// the concrete type.
type Record interface {

	// AsRecord returns the [RecordBase] of this Record.
	AsRecord() *RecordBase

	// AsContainer returns this Record as a [*Container],
	// or nil if it can not hold children.
	AsContainer() *Container
}

// Kind is the variant of a [Record].
type Kind int32

const (
	// KindLeaf is a record without children.
	KindLeaf Kind = iota

	// KindContainer is a record that owns an ordered list of children.
	KindContainer
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindContainer:
		return "container"
	}
	return fmt.Sprintf("Kind(%d)", int32(k))
}

// KindOf returns the [Kind] of the given record.
func KindOf(r Record) Kind {
	if IsContainer(r) {
		return KindContainer
	}
	return KindLeaf
}

// IsContainer returns whether the given record is a [Container].
// It returns false for a nil record.
func IsContainer(r Record) bool {
	return r != nil && r.AsContainer() != nil
}

// RecordBase holds the state shared by every [Record]: identity, name,
// column values and the link to the parent container. It must be
// embedded in all record types.
//
// The id and parent are managed by [Container.Insert] and
// [Container.DeleteChildAt]; they are read through [RecordBase.ID]
// and [RecordBase.Parent].
type RecordBase struct {

	// Name is the name of this record. It is shown as column 0 by
	// [RecordBase.Get] and forms one segment of [RecordBase.Path].
	// It only has to be unique among siblings when [Tree.Unique] is set.
	Name string

	// Columns are the values of this record, one per [Tree.Headings]
	// entry. Missing values are padded with nil when the record is
	// added to a tree.
	Columns []any

	// id is the identity assigned by the owning tree, 0 until live.
	id int

	// parent is the container whose Children hold this record.
	// It is a back-link only; the parent owns the child.
	parent *Container

	// this is the record as its true underlying type.
	this Record

	// index is the last known index in the parent, used as the
	// starting point for the next [RecordBase.IndexInParent] search.
	index int
}

// String implements the [fmt.Stringer] interface by returning the path of the record.
func (r *RecordBase) String() string {
	if r == nil {
		return "nil"
	}
	return r.Path()
}

// ID returns the identity of this record within its tree.
// It is 0 for the tree root and for records that have never
// been reachable from a tree.
func (r *RecordBase) ID() int {
	return r.id
}

// Parent returns the container that holds this record,
// or nil for a root or detached record.
func (r *RecordBase) Parent() *Container {
	return r.parent
}

// This returns the record as its true underlying type.
// It is nil until the record has been constructed with [NewLeaf]
// or [NewContainer] or added to a container.
func (r *RecordBase) This() Record {
	return r.this
}

// isRoot returns whether this record is the root container of a [Tree].
func (r *RecordBase) isRoot() bool {
	if r.parent != nil || r.this == nil {
		return false
	}
	c := r.this.AsContainer()
	return c != nil && c.tree != nil
}

// Tree returns the tree this record is reachable from, or nil if it is detached.
func (r *RecordBase) Tree() *Tree {
	c := Root(r.this)
	if c == nil {
		return nil
	}
	return c.tree
}

// Depth returns the number of ancestors of this record.
func (r *RecordBase) Depth() int {
	d := 0
	for p := r.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// IndexInParent returns the index of this record within its parent.
// It caches the last value and uses that for an optimized search, so
// subsequent calls are typically quite fast. It returns -1 if the
// record has no parent.
func (r *RecordBase) IndexInParent() int {
	if r.parent == nil {
		return -1
	}
	idx := IndexOf(r.parent.Children, r.this, r.index)
	if idx >= 0 {
		r.index = idx
	}
	return idx
}

// Columns:

// Get returns the values at the given indices, in order. Index 0 is the
// name and 1..N are the columns. With no indices it returns the name
// followed by all of the columns. Indices outside of that range are
// skipped.
func (r *RecordBase) Get(sel ...int) []any {
	if len(sel) == 0 {
		vals := make([]any, 0, len(r.Columns)+1)
		vals = append(vals, r.Name)
		return append(vals, r.Columns...)
	}
	vals := make([]any, 0, len(sel))
	for _, i := range sel {
		if v, ok := r.cell(i); ok {
			vals = append(vals, v)
		}
	}
	return vals
}

// Cell returns the value at the given index, where 0 is the name and
// 1..N are the columns. It returns nil if the index is out of range.
func (r *RecordBase) Cell(i int) any {
	v, _ := r.cell(i)
	return v
}

func (r *RecordBase) cell(i int) (any, bool) {
	switch {
	case i == 0:
		return r.Name, true
	case i > 0 && i <= len(r.Columns):
		return r.Columns[i-1], true
	}
	return nil, false
}

// Set sets the value at the given index. Index 0 renames the record,
// formatting non-string values with [fmt.Sprint]; 1..N set a column.
// Indices out of range are ignored.
func (r *RecordBase) Set(i int, value any) {
	switch {
	case i == 0:
		if s, ok := value.(string); ok {
			r.Name = s
		} else {
			r.Name = fmt.Sprint(value)
		}
	case i > 0 && i <= len(r.Columns):
		r.Columns[i-1] = value
	}
}

// SetCells sets the values at the given indices, pairing indices and
// values by position. Extra indices or values are ignored, as are
// indices out of range.
func (r *RecordBase) SetCells(sel []int, values []any) {
	n := min(len(sel), len(values))
	for k := range n {
		r.Set(sel[k], values[k])
	}
}

// Paths:

// Path returns the path to this record from the tree root, using
// the names of its ancestors separated by / delimiters. The name of
// the tree root is not included, so a leaf B in container A at the
// top of the tree has the path "A/B". It is computed on every call.
func (r *RecordBase) Path() string {
	if r.isRoot() {
		return ""
	}
	if r.parent == nil || r.parent.isRoot() {
		return r.Name
	}
	return r.parent.Path() + "/" + r.Name
}

// PathFrom returns the path to this record from the given ancestor
// container, excluding the name of the ancestor. For example, in the
// tree a/b/c/d, the result of d.PathFrom(b) is c/d. It returns the
// empty string when called on the ancestor itself.
func (r *RecordBase) PathFrom(ancestor *Container) string {
	if ancestor != nil && r == &ancestor.RecordBase {
		return ""
	}
	if r.parent == nil || r.parent == ancestor {
		return r.Name
	}
	return r.parent.PathFrom(ancestor) + "/" + r.Name
}

// Deleting:

// Delete removes this record from the children of its parent.
// The record keeps its name, columns and children, but is detached
// from the tree and can be added to a container again.
// It panics if the record has no parent, which includes the tree root.
func (r *RecordBase) Delete() {
	if r.parent == nil {
		panic(fmt.Sprintf("tree: cannot delete %q: it has no parent", r.Name))
	}
	if !r.parent.DeleteChild(r.this) {
		panic(fmt.Sprintf("tree: %q is not among the children of its parent %q", r.Name, r.parent.Path()))
	}
}

// Root returns the topmost container above the given record, which is
// the tree root for live records. For a detached container it is the
// container itself, and for a detached leaf it is nil.
func Root(r Record) *Container {
	if r == nil {
		return nil
	}
	var top *Container
	if c := r.AsContainer(); c != nil {
		top = c
	}
	for p := r.AsRecord().parent; p != nil; p = p.parent {
		top = p
	}
	return top
}

// splitPath splits the given path into its non-empty segments.
func splitPath(path string) []string {
	segs := strings.Split(path, "/")
	out := segs[:0]
	for _, s := range segs {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
