package domain

import "sort"

// Identity is the (device, inode) pair that names an underlying filesystem
// object. Two paths with the same Identity are hard links to the same data.
type Identity struct {
	Dev uint64
	Ino uint64
}

// Node is one entry of a scanned tree. For a directory, Size is the sum of
// all descendant file sizes after hard-link deduplication; pruning a view
// never changes Size or ChildCount, only Children. Partial marks a node
// whose subtree is knowingly under-counted (unreadable listing or capped
// fan-out), so degraded branches are visible in the data, not just in the
// error counters.
type Node struct {
	Name       string    `json:"name"`
	Path       string    `json:"path"`
	Size       int64     `json:"size"`
	IsDir      bool      `json:"isDirectory"`
	Children   []*Node   `json:"children,omitempty"`
	ChildCount int       `json:"childCount"`
	Visible    bool      `json:"visible"`
	Partial    bool      `json:"partial,omitempty"`
	Identity   *Identity `json:"-"`
}

// SortBySize orders children largest first. The sort is stable so ties keep
// the read order the walker produced, which makes repeated scans of an
// unchanged directory deterministic.
func SortBySize(children []*Node) {
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Size > children[j].Size
	})
}

// Clone returns a deep copy of the node. Cached trees are shared by
// concurrent readers, so anything handed out must be an independent copy.
func (node *Node) Clone() *Node {
	if node == nil {
		return nil
	}
	clone := *node
	if node.Identity != nil {
		id := *node.Identity
		clone.Identity = &id
	}
	if node.Children != nil {
		clone.Children = make([]*Node, len(node.Children))
		for i, child := range node.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return &clone
}

// Child returns the immediate child whose path equals the given path, or nil.
func (node *Node) Child(path string) *Node {
	for _, child := range node.Children {
		if child.Path == path {
			return child
		}
	}
	return nil
}
