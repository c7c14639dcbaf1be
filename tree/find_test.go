// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "cogentcore.org/outline/tree"
	"cogentcore.org/outline/tree/testdata"
)

func TestFind(t *testing.T) {
	tr := testdata.New()

	n1 := tr.Query("Node One")
	require.NotNil(t, n1)
	assert.Same(t, tr.Child(0), n1)
	assert.Same(t, n1, tr.FindByID(n1.AsRecord().ID()))
	assert.Same(t, n1, tr.Find("Node One"))

	n4 := tr.Query("Node Four")
	require.NotNil(t, n4)
	assert.Same(t, tr.Child(0).AsContainer().Child(3).AsContainer().Child(1), n4)
	assert.Same(t, n4, tr.FindByID(n4.AsRecord().ID()))
	assert.Same(t, n4, tr.Find("Node Four"))
	assert.Equal(t, 8, n4.AsRecord().ID())

	assert.Nil(t, tr.Find("Nope"))
	assert.Nil(t, tr.Find(""))
}

func TestFindPath(t *testing.T) {
	tr := testdata.New()
	l4 := tr.Find("Leaf Four")
	require.NotNil(t, l4)

	assert.Same(t, l4, tr.Find("Node One/Node Three/Node Four/Leaf Four"))
	assert.Same(t, l4, tr.Find("/Node One/Node Three/Node Four/Leaf Four"))
	assert.Same(t, l4, tr.Find("Node Four/Leaf Four"))
	assert.Same(t, l4, tr.Find("Node Three/Node Four/Leaf Four/"))

	// no substring matches
	assert.Nil(t, tr.Find("Four/Leaf Four"))
	assert.Nil(t, tr.Find("Node Four/Leaf"))

	// absolute paths start at the top
	assert.Nil(t, tr.Find("/Node Four/Leaf Four"))
	assert.Nil(t, tr.Find("/"))

	n1 := tr.Find("Node One").AsContainer()
	n3 := tr.Find("Node Three").AsContainer()
	assert.Same(t, tr.Find("Leaf Three"), n1.Find("Node Three/Leaf Three"))
	assert.Same(t, tr.Find("Leaf Six"), n3.Find("/Leaf Six"))
	assert.Nil(t, n3.Find("Node One/Leaf One"))
	assert.Same(t, tr.Find("Node Two"), tr.Find("/Node One/Node Two"))
	assert.Same(t, tr.Find("Leaf One"), tr.Find("Node One/Leaf One"))
}

func TestFindBacktrack(t *testing.T) {
	tr := NewTree()
	_, err := tr.Populate([]Item{
		{Name: "a", Children: []Item{{Name: "x"}}},
		{Name: "a", Children: []Item{{Name: "b", Children: []Item{{Name: "x"}}}}},
	})
	require.NoError(t, err)
	x := tr.Find("/a/b/x")
	require.NotNil(t, x)
	assert.Same(t, tr.Child(1), x.AsRecord().Parent().Parent())
	assert.Same(t, tr.Child(0).AsContainer().Child(0), tr.Find("/a/x"))
}

func TestFindNamePrefersChildren(t *testing.T) {
	tr := NewTree()
	_, err := tr.Populate([]Item{
		{Name: "A", Children: []Item{{Name: "X"}}},
		{Name: "X"},
	})
	require.NoError(t, err)
	assert.Same(t, tr.Child(1), tr.Find("X"))
	assert.Same(t, tr.Child(0).AsContainer().Child(0), tr.Child(0).AsContainer().Find("X"))
}

func TestQuery(t *testing.T) {
	tr := testdata.New()
	assert.Equal(t, "Node One", tr.Query("Node One").AsRecord().Name)

	id := tr.Query("Leaf Three").AsRecord().ID()
	assert.Equal(t, "Leaf Three", tr.Query(id).AsRecord().Name)
	assert.Equal(t, "Leaf Three", tr.Query(int64(id)).AsRecord().Name)
	assert.Equal(t, "Leaf Three", tr.Query(uint32(id)).AsRecord().Name)

	id = tr.Query("Node One/Node Three/Node Four/Leaf Four").AsRecord().ID()
	assert.Equal(t, "Leaf Four", tr.Query(id).AsRecord().Name)

	assert.Nil(t, tr.Query(0))
	assert.Nil(t, tr.Query(-1))
	assert.Nil(t, tr.Query(999))
	assert.Nil(t, tr.Query(3.5))
	assert.Nil(t, tr.Query(nil))

	n3 := tr.Find("Node Three").AsContainer()
	assert.Nil(t, n3.Query(tr.Find("Leaf Six").AsRecord().ID()))
}

func TestFindAll(t *testing.T) {
	tr := testdata.New()
	n3 := tr.Find("Node Three").AsContainer()
	extra, err := n3.AddLeaf("Leaf One")
	require.NoError(t, err)

	all := tr.FindAll("Leaf One", true)
	require.Len(t, all, 2)
	assert.Same(t, tr.Find("Node One/Leaf One"), all[0])
	assert.Same(t, extra, all[1])

	assert.Empty(t, tr.FindAll("Leaf One", false))
	assert.Len(t, tr.Find("Node One").AsContainer().FindAll("Leaf One", false), 1)

	assert.Equal(t, []string{"Leaf Four"}, names(tr.FindAll("Node Four/", true)))
	assert.Equal(t, []string{"Node Two", "Leaf Two"}, names(tr.FindAll("/Node One/Node Two", true)))
	assert.Equal(t, []string{"Leaf Three", "Node Four", "Leaf Four", "Leaf One"}, names(tr.FindAll("Node Three/", true)))
	assert.Empty(t, tr.FindAll("/Node Two", true))
}

func TestFindSimilar(t *testing.T) {
	tr := testdata.New()
	sim := tr.FindSimilar("Leaf Thre", 3)
	require.NotEmpty(t, sim)
	assert.LessOrEqual(t, len(sim), 3)
	assert.Equal(t, "Leaf Three", sim[0].AsRecord().Name)

	assert.Empty(t, tr.FindSimilar("zzzzzzzzzz", 5))
}
