package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortBySizeLargestFirstStableTies(t *testing.T) {
	children := []*Node{
		{Name: "a", Size: 10},
		{Name: "b", Size: 30},
		{Name: "c", Size: 10},
		{Name: "d", Size: 20},
	}
	SortBySize(children)

	names := make([]string, len(children))
	for i, child := range children {
		names[i] = child.Name
	}
	// Ties keep their original order.
	assert.Equal(t, []string{"b", "d", "a", "c"}, names)
}

func TestCloneIsDeep(t *testing.T) {
	original := &Node{
		Name: "root", Path: "/root", IsDir: true, Size: 10,
		Identity: &Identity{Dev: 1, Ino: 2},
		Children: []*Node{
			{Name: "child", Path: "/root/child", Size: 10},
		},
	}

	clone := original.Clone()
	clone.Size = 99
	clone.Identity.Ino = 77
	clone.Children[0].Name = "mutated"

	assert.Equal(t, int64(10), original.Size)
	assert.Equal(t, uint64(2), original.Identity.Ino)
	assert.Equal(t, "child", original.Children[0].Name)
}

func TestChildLookup(t *testing.T) {
	node := &Node{
		Path: "/root", IsDir: true,
		Children: []*Node{
			{Path: "/root/a"},
			{Path: "/root/b"},
		},
	}

	found := node.Child("/root/b")
	require.NotNil(t, found)
	assert.Equal(t, "/root/b", found.Path)
	assert.Nil(t, node.Child("/root/missing"))
}
