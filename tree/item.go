// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Item is the nested description of a record, used to build a tree with
// [Container.Populate] and returned by [Container.ToList]. It is also the
// element type of the serialized form of a tree.
type Item struct {

	// Name is the name of the record.
	Name string

	// Columns are the column values of the record, if any.
	Columns []any

	// Children are the descriptions of the children of a container.
	// A nil Children means that the record is a leaf; a non-nil,
	// possibly empty, Children means that it is a container.
	Children []Item
}

// IsContainer returns whether the item describes a [Container].
func (it Item) IsContainer() bool {
	return it.Children != nil
}

// wireItem is the serialized form of an [Item]. Children is a pointer so
// that an empty container keeps its children key and a leaf omits it.
type wireItem struct {
	Name     string      `json:"name" yaml:"name" toml:"name"`
	Columns  []any       `json:"columns,omitempty" yaml:"columns,omitempty" toml:"columns,omitempty"`
	Children *[]wireItem `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

func toWire(items []Item) []wireItem {
	ws := make([]wireItem, len(items))
	for i, it := range items {
		ws[i] = wireItem{Name: it.Name, Columns: it.Columns}
		if it.Children != nil {
			ch := toWire(it.Children)
			ws[i].Children = &ch
		}
	}
	return ws
}

func fromWire(ws []wireItem) []Item {
	items := make([]Item, len(ws))
	for i, w := range ws {
		items[i] = Item{Name: w.Name, Columns: w.Columns}
		if w.Children != nil {
			items[i].Children = fromWire(*w.Children)
		}
	}
	return items
}

// MarshalJSON implements [json.Marshaler].
func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire([]Item{it})[0])
}

// UnmarshalJSON implements [json.Unmarshaler].
func (it *Item) UnmarshalJSON(b []byte) error {
	var w wireItem
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*it = fromWire([]wireItem{w})[0]
	return nil
}

// MarshalYAML implements [yaml.Marshaler].
func (it Item) MarshalYAML() (any, error) {
	return toWire([]Item{it})[0], nil
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (it *Item) UnmarshalYAML(value *yaml.Node) error {
	var w wireItem
	if err := value.Decode(&w); err != nil {
		return err
	}
	*it = fromWire([]wireItem{w})[0]
	return nil
}
