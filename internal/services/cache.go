package services

import (
	"fmt"
	"path/filepath"
	"sync"

	"maka/internal/domain"
)

// TreeCache maps a scanned root path to its fully built tree. An entry is
// written once per build (replaced wholesale, never merged) and read by any
// number of concurrent depth-limited queries. Entries live until rebuilt;
// staleness is the caller's responsibility.
type TreeCache struct {
	mu    sync.RWMutex
	roots map[string]*domain.Node
}

func NewTreeCache() *TreeCache {
	return &TreeCache{roots: make(map[string]*domain.Node)}
}

// Put stores the built tree for root, replacing any prior entry.
func (cache *TreeCache) Put(root string, node *domain.Node) {
	root = cleanPath(root)
	cache.mu.Lock()
	cache.roots[root] = node
	cache.mu.Unlock()
}

// Has reports whether root itself is a cached key.
func (cache *TreeCache) Has(root string) bool {
	root = cleanPath(root)
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	_, ok := cache.roots[root]
	return ok
}

// Roots returns the cached root paths, for diagnostics.
func (cache *TreeCache) Roots() []string {
	cache.mu.RLock()
	defer cache.mu.RUnlock()
	roots := make([]string, 0, len(cache.roots))
	for root := range cache.roots {
		roots = append(roots, root)
	}
	return roots
}

// Resolve locates the node for path under the most specific cached root
// covering it and returns the depth-limited view of that node. When
// several cached roots are prefixes of path, the longest one wins, so a
// nested path is never answered from a less specific, possibly staler
// ancestor tree. Returns ErrNotCached when no root covers the path or a
// component is missing from the cached tree (the filesystem changed since
// the build).
func (cache *TreeCache) Resolve(path string, maxDepth int) (*domain.Node, error) {
	path = cleanPath(path)

	cache.mu.RLock()
	defer cache.mu.RUnlock()

	var bestRoot string
	var bestNode *domain.Node
	for root, node := range cache.roots {
		if !isWithin(root, path) {
			continue
		}
		if bestNode == nil || len(root) > len(bestRoot) {
			bestRoot, bestNode = root, node
		}
	}
	if bestNode == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotCached, path)
	}

	node := bestNode
	walked := bestRoot
	for _, component := range componentsBelow(bestRoot, path) {
		walked = filepath.Join(walked, component)
		child := node.Child(walked)
		if child == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotCached, path)
		}
		node = child
	}

	return limitDepth(node, maxDepth), nil
}
