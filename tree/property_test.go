// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	. "cogentcore.org/outline/tree"
)

var propHeadings = []string{"A", "B", "C"}

// randomItems returns a random description with sibling-unique names,
// up to depth levels deep, whose columns never end in nil.
func randomItems(rnd *rand.Rand, depth int) []Item {
	n := rnd.Intn(5)
	items := make([]Item, n)
	for i := range items {
		it := Item{Name: fmt.Sprintf("n%d", i)}
		if nc := rnd.Intn(5); nc > 0 {
			it.Columns = make([]any, nc)
			for j := range it.Columns {
				it.Columns[j] = fmt.Sprintf("v%d", rnd.Intn(100))
			}
		}
		if depth > 0 && rnd.Intn(2) == 0 {
			it.Children = randomItems(rnd, depth-1)
		}
		items[i] = it
	}
	return items
}

func newRandomTree(seed int64, depth int) (*Tree, []Item, []Record) {
	items := randomItems(rand.New(rand.NewSource(seed)), depth)
	tr := NewTree(propHeadings...)
	made, err := tr.Populate(items)
	if err != nil {
		panic(err)
	}
	return tr, items, made
}

func TestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("ids increase in insertion order", prop.ForAll(
		func(seed int64, depth int) bool {
			tr, _, made := newRandomTree(seed, depth)
			for i, r := range made {
				if r.AsRecord().ID() != i+1 {
					return false
				}
			}
			return tr.Items == len(made) && tr.Count() == len(made)
		},
		gen.Int64(), gen.IntRange(0, 4),
	))

	properties.Property("columns are padded to the headings", prop.ForAll(
		func(seed int64, depth int) bool {
			_, _, made := newRandomTree(seed, depth)
			for _, r := range made {
				if len(r.AsRecord().Columns) < len(propHeadings) {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(0, 4),
	))

	properties.Property("ToList inverts Populate", prop.ForAll(
		func(seed int64, depth int) bool {
			tr, items, _ := newRandomTree(seed, depth)
			return reflect.DeepEqual(items, tr.ToList())
		},
		gen.Int64(), gen.IntRange(0, 4),
	))

	properties.Property("Reindex is contiguous in pre-order", prop.ForAll(
		func(seed int64, depth int, start int) bool {
			tr, _, made := newRandomTree(seed, depth)
			if len(made) > 1 {
				made[len(made)/2].AsRecord().Delete()
			}
			tr.Reindex(start)
			want := start
			ok := true
			tr.WalkDown(func(r Record) bool {
				if r.AsRecord().Parent() == nil {
					return Continue
				}
				want++
				if r.AsRecord().ID() != want {
					ok = false
				}
				return Continue
			})
			return ok && tr.Items == want
		},
		gen.Int64(), gen.IntRange(0, 4), gen.IntRange(0, 1000),
	))

	properties.Property("every record is found by its path and id", prop.ForAll(
		func(seed int64, depth int) bool {
			tr, _, made := newRandomTree(seed, depth)
			for _, r := range made {
				rb := r.AsRecord()
				if tr.Find(rb.Path()) != r || tr.Find("/"+rb.Path()) != r {
					return false
				}
				if tr.Query(rb.ID()) != r {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(0, 4),
	))

	properties.Property("duplicate names are rejected without change", prop.ForAll(
		func(seed int64, depth int) bool {
			tr, _, made := newRandomTree(seed, depth)
			tr.SetUnique(true)
			for _, r := range made {
				p := r.AsRecord().Parent()
				items, count := tr.Items, p.Len()
				_, err := p.Append(NewLeaf(r.AsRecord().Name))
				if !errors.Is(err, ErrDuplicateName) || tr.Items != items || p.Len() != count {
					return false
				}
			}
			return true
		},
		gen.Int64(), gen.IntRange(0, 4),
	))

	properties.TestingRun(t)
}
