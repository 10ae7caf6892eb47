package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maka/internal/domain"
)

func fixtureTree(root string, size int64) *domain.Node {
	childPath := filepath.Join(root, "child")
	leafPath := filepath.Join(childPath, "leaf.bin")
	return &domain.Node{
		Name: baseName(root), Path: root, IsDir: true, Size: size,
		ChildCount: 1, Visible: true,
		Children: []*domain.Node{
			{
				Name: "child", Path: childPath, IsDir: true, Size: size,
				ChildCount: 1, Visible: true,
				Children: []*domain.Node{
					{Name: "leaf.bin", Path: leafPath, Size: size, Visible: true},
				},
			},
		},
	}
}

func TestResolveDescendsByComponents(t *testing.T) {
	cache := NewTreeCache()
	root := filepath.Join(string(filepath.Separator), "data")
	cache.Put(root, fixtureTree(root, 10))

	node, err := cache.Resolve(filepath.Join(root, "child"), 1)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "child"), node.Path)
	require.Len(t, node.Children, 1)
	assert.Equal(t, "leaf.bin", node.Children[0].Name)
}

func TestResolvePrefersMostSpecificRoot(t *testing.T) {
	cache := NewTreeCache()
	outer := filepath.Join(string(filepath.Separator), "data")
	inner := filepath.Join(outer, "child")

	cache.Put(outer, fixtureTree(outer, 10))
	// A fresher, more specific build of the nested directory.
	cache.Put(inner, &domain.Node{
		Name: "child", Path: inner, IsDir: true, Size: 99, Visible: true,
	})

	node, err := cache.Resolve(inner, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(99), node.Size)
}

func TestResolveUncoveredPath(t *testing.T) {
	cache := NewTreeCache()
	_, err := cache.Resolve("/nowhere", 1)
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestResolveMissingComponent(t *testing.T) {
	cache := NewTreeCache()
	root := filepath.Join(string(filepath.Separator), "data")
	cache.Put(root, fixtureTree(root, 10))

	_, err := cache.Resolve(filepath.Join(root, "vanished"), 1)
	assert.ErrorIs(t, err, ErrNotCached)
}

func TestResolveReturnsIndependentCopy(t *testing.T) {
	cache := NewTreeCache()
	root := filepath.Join(string(filepath.Separator), "data")
	cache.Put(root, fixtureTree(root, 10))

	first, err := cache.Resolve(root, 2)
	require.NoError(t, err)
	first.Size = 12345
	first.Children[0].Name = "mutated"

	second, err := cache.Resolve(root, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), second.Size)
	assert.Equal(t, "child", second.Children[0].Name)
}

func TestPutReplacesEntry(t *testing.T) {
	cache := NewTreeCache()
	root := filepath.Join(string(filepath.Separator), "data")

	cache.Put(root, fixtureTree(root, 10))
	cache.Put(root, fixtureTree(root, 20))

	node, err := cache.Resolve(root, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(20), node.Size)
	assert.Len(t, cache.Roots(), 1)
}
