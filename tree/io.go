// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/outline/base/iox/jsonx"
	"cogentcore.org/outline/base/iox/tomlx"
	"cogentcore.org/outline/base/iox/yamlx"
)

// Document is the serialized form of a [Tree]: its schema and policy
// along with the nested descriptions of its records.
type Document struct {
	Headings []string `json:"headings" yaml:"headings"`
	Unique   bool     `json:"unique,omitempty" yaml:"unique,omitempty"`
	Items    []Item   `json:"items" yaml:"items"`
}

// tomlDocument is the TOML form of a [Document]; go-toml does not use
// the JSON and YAML marshalers of [Item].
type tomlDocument struct {
	Headings []string   `toml:"headings"`
	Unique   bool       `toml:"unique,omitempty"`
	Items    []wireItem `toml:"items"`
}

// Document returns the serialized form of the tree.
// Record ids are not included.
func (t *Tree) Document() *Document {
	return &Document{
		Headings: slices.Clone(t.Headings),
		Unique:   t.Unique,
		Items:    t.ToList(),
	}
}

// NewTreeFromDocument returns a new tree built from the given document.
// If populating fails, the partially built tree is returned with the error.
func NewTreeFromDocument(doc *Document) (*Tree, error) {
	t := NewTree(doc.Headings...).SetUnique(doc.Unique)
	if _, err := t.Populate(doc.Items); err != nil {
		return t, err
	}
	return t, nil
}

// Format is a file format for a [Document].
type Format int32

const (
	// JSON is the JSON format, with the .json extension.
	JSON Format = iota

	// YAML is the YAML format, with the .yaml or .yml extension.
	YAML

	// TOML is the TOML format, with the .toml extension.
	TOML
)

// String returns the lower-case name of the format.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// FormatOf returns the format of the given filename based on its extension.
func FormatOf(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("tree: unknown file format for %q", filename)
}

// Open returns a new tree read from the given file, in the format
// given by its extension (see [FormatOf]).
func Open(filename string) (*Tree, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	return openFormat(filename, f)
}

// Save writes the tree to the given file, in the format
// given by its extension (see [FormatOf]).
func (t *Tree) Save(filename string) error {
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	return t.saveFormat(filename, f)
}

// Read returns a new tree read from the given reader in the given format.
func Read(r io.Reader, f Format) (*Tree, error) {
	doc := &Document{}
	var err error
	switch f {
	case JSON:
		err = jsonx.Read(doc, r)
	case YAML:
		err = yamlx.Read(doc, r)
	case TOML:
		td := &tomlDocument{}
		err = tomlx.Read(td, r)
		doc = td.document()
	default:
		err = fmt.Errorf("unknown format %v", f)
	}
	if err != nil {
		return nil, fmt.Errorf("tree: reading %v: %w", f, err)
	}
	return NewTreeFromDocument(doc)
}

// Write writes the tree to the given writer in the given format.
// TOML has no null value, so writing a tree with a nil column
// other than a trailing one to TOML returns an error.
func (t *Tree) Write(w io.Writer, f Format) error {
	doc := t.Document()
	var err error
	switch f {
	case JSON:
		err = jsonx.WriteIndent(doc, w)
	case YAML:
		err = yamlx.Write(doc, w)
	case TOML:
		err = tomlx.Write(newTOMLDocument(doc), w)
	default:
		err = fmt.Errorf("unknown format %v", f)
	}
	if err != nil {
		return fmt.Errorf("tree: writing %v: %w", f, err)
	}
	return nil
}

// OpenJSON returns a new tree read from the given JSON file.
func OpenJSON(filename string) (*Tree, error) {
	return openFormat(filename, JSON)
}

// SaveJSON writes the tree to the given JSON file.
func (t *Tree) SaveJSON(filename string) error {
	return t.saveFormat(filename, JSON)
}

// OpenYAML returns a new tree read from the given YAML file.
func OpenYAML(filename string) (*Tree, error) {
	return openFormat(filename, YAML)
}

// SaveYAML writes the tree to the given YAML file.
func (t *Tree) SaveYAML(filename string) error {
	return t.saveFormat(filename, YAML)
}

// OpenTOML returns a new tree read from the given TOML file.
func OpenTOML(filename string) (*Tree, error) {
	return openFormat(filename, TOML)
}

// SaveTOML writes the tree to the given TOML file.
func (t *Tree) SaveTOML(filename string) error {
	return t.saveFormat(filename, TOML)
}

func openFormat(filename string, f Format) (*Tree, error) {
	doc := &Document{}
	var err error
	switch f {
	case JSON:
		err = jsonx.Open(doc, filename)
	case YAML:
		err = yamlx.Open(doc, filename)
	case TOML:
		td := &tomlDocument{}
		err = tomlx.Open(td, filename)
		doc = td.document()
	}
	if err != nil {
		return nil, fmt.Errorf("tree: opening %q: %w", filename, err)
	}
	return NewTreeFromDocument(doc)
}

func (t *Tree) saveFormat(filename string, f Format) error {
	doc := t.Document()
	var err error
	switch f {
	case JSON:
		err = jsonx.SaveIndent(doc, filename)
	case YAML:
		err = yamlx.Save(doc, filename)
	case TOML:
		err = tomlx.Save(newTOMLDocument(doc), filename)
	}
	if err != nil {
		return fmt.Errorf("tree: saving %q: %w", filename, err)
	}
	return nil
}

func newTOMLDocument(doc *Document) *tomlDocument {
	return &tomlDocument{Headings: doc.Headings, Unique: doc.Unique, Items: toWire(doc.Items)}
}

func (td *tomlDocument) document() *Document {
	return &Document{Headings: td.Headings, Unique: td.Unique, Items: fromWire(td.Items)}
}
