// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"cmp"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Query returns the record addressed by the given selector: an integer
// selects by id with [Container.FindByID], and a string selects by name
// or path with [Container.Find]. It returns nil if nothing matches or
// the selector has any other type.
func (c *Container) Query(sel any) Record {
	switch s := sel.(type) {
	case string:
		return c.Find(s)
	case int:
		return c.FindByID(s)
	case int32:
		return c.FindByID(int(s))
	case int64:
		return c.FindByID(int(s))
	case uint:
		return c.FindByID(int(s))
	case uint32:
		return c.FindByID(int(s))
	case uint64:
		return c.FindByID(int(s))
	}
	return nil
}

// FindByID returns the descendant with the given id, searching depth-first
// in child order, or nil if there is none.
func (c *Container) FindByID(id int) Record {
	if id <= 0 {
		return nil
	}
	for _, ch := range c.Children {
		if ch.AsRecord().id == id {
			return ch
		}
		if cc := ch.AsContainer(); cc != nil {
			if r := cc.FindByID(id); r != nil {
				return r
			}
		}
	}
	return nil
}

// Find returns the first descendant matching the given name or path,
// or nil if there is none.
//
// A selector without a / is a name: the immediate children are checked
// first, and then each child container is searched in order.
//
// A selector with a leading / is an absolute path from the tree root,
// matched segment by segment against child names. Any other selector
// containing a / is a relative path, matched the same way starting at
// this container; if that fails, the first descendant in pre-order whose
// path ends with the selector at a segment boundary is returned.
func (c *Container) Find(sel string) Record {
	if !strings.Contains(sel, "/") {
		return c.findName(sel)
	}
	segs := splitPath(sel)
	if len(segs) == 0 {
		return nil
	}
	if strings.HasPrefix(sel, "/") {
		return Root(c).findSegments(segs)
	}
	if r := c.findSegments(segs); r != nil {
		return r
	}
	return c.findRelative(strings.Join(segs, "/"))
}

// findName implements the name lookup of [Container.Find].
func (c *Container) findName(name string) Record {
	if r := c.ChildByName(name); r != nil {
		return r
	}
	for _, ch := range c.Children {
		if cc := ch.AsContainer(); cc != nil {
			if r := cc.findName(name); r != nil {
				return r
			}
		}
	}
	return nil
}

// findSegments returns the first record reached by following the given
// names down from c, trying siblings in order.
func (c *Container) findSegments(segs []string) Record {
	for _, ch := range c.Children {
		if ch.AsRecord().Name != segs[0] {
			continue
		}
		if len(segs) == 1 {
			return ch
		}
		if cc := ch.AsContainer(); cc != nil {
			if r := cc.findSegments(segs[1:]); r != nil {
				return r
			}
		}
	}
	return nil
}

// findRelative implements the relative path lookup of [Container.Find].
func (c *Container) findRelative(path string) Record {
	suffix := "/" + path
	var visit func(p *Container) Record
	visit = func(p *Container) Record {
		for _, ch := range p.Children {
			rel := ch.AsRecord().PathFrom(c)
			if strings.HasSuffix(rel, suffix) {
				return ch
			}
			if cc := ch.AsContainer(); cc != nil {
				if r := visit(cc); r != nil {
					return r
				}
			}
		}
		return nil
	}
	return visit(c)
}

// FindAll returns all of the records matching the given name or path,
// in pre-order. Names must match exactly. A selector containing a /
// matches every record whose path contains it. A leading / anchors the
// selector at the tree root instead, matching the record at that path
// and all of its descendants. Only the immediate children are checked
// unless recursive is set.
func (c *Container) FindAll(sel string, recursive bool) []Record {
	var match func(r Record) bool
	switch {
	case strings.HasPrefix(sel, "/"):
		abs := "/" + strings.Join(splitPath(sel), "/")
		match = func(r Record) bool {
			p := "/" + r.AsRecord().Path()
			return p == abs || strings.HasPrefix(p, abs+"/")
		}
	case strings.Contains(sel, "/"):
		match = func(r Record) bool {
			return strings.Contains(r.AsRecord().Path(), sel)
		}
	default:
		match = func(r Record) bool { return r.AsRecord().Name == sel }
	}
	var res []Record
	c.collect(match, recursive, &res)
	return res
}

func (c *Container) collect(match func(r Record) bool, recursive bool, res *[]Record) {
	for _, ch := range c.Children {
		if match(ch) {
			*res = append(*res, ch)
		}
		if cc := ch.AsContainer(); cc != nil && recursive {
			cc.collect(match, recursive, res)
		}
	}
}

// FindSimilar returns up to limit descendants whose names are similar to
// the given name, most similar first, for suggesting alternatives when a
// lookup fails. Similarity is the normalized Levenshtein similarity, and
// only names scoring at least 0.5 are returned. Ties keep pre-order.
func (c *Container) FindSimilar(name string, limit int) []Record {
	type scored struct {
		rec   Record
		score float64
	}
	var cands []scored
	metric := metrics.NewLevenshtein()
	c.collect(func(r Record) bool {
		s := strutil.Similarity(name, r.AsRecord().Name, metric)
		if s >= 0.5 {
			cands = append(cands, scored{r, s})
		}
		return false
	}, true, nil)
	slices.SortStableFunc(cands, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})
	if limit > 0 && len(cands) > limit {
		cands = cands[:limit]
	}
	res := make([]Record, len(cands))
	for i, s := range cands {
		res[i] = s.rec
	}
	return res
}
