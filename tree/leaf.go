// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// Leaf is a [Record] without children. It has no Len method,
// which distinguishes it from a [Container] in generic code.
type Leaf struct {
	RecordBase
}

// NewLeaf returns a new detached leaf with the given name and column values.
// It becomes live once it is added to a container that is part of a [Tree].
func NewLeaf(name string, columns ...any) *Leaf {
	l := &Leaf{}
	l.Name = name
	l.Columns = slices.Clone(columns)
	l.this = l
	return l
}

// AsRecord returns the [RecordBase] of this leaf.
func (l *Leaf) AsRecord() *RecordBase {
	return &l.RecordBase
}

// AsContainer returns nil, as a leaf can not hold children.
func (l *Leaf) AsContainer() *Container {
	return nil
}
