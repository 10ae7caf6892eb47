package services

import "maka/internal/domain"

// limitDepth derives a shallow view from a fully built node. Truncation is
// a presentation concern: Size and ChildCount always reflect the full
// subtree, only Children is pruned. The result is an independent copy down
// to the cutoff, so concurrent readers of the cached source are never
// affected, and limiting an already-limited tree is a no-op at the same
// depth.
func limitDepth(node *domain.Node, maxDepth int) *domain.Node {
	if node == nil {
		return nil
	}
	clone := *node
	if node.Identity != nil {
		id := *node.Identity
		clone.Identity = &id
	}
	if maxDepth == 0 {
		clone.Children = nil
		if node.ChildCount > 0 {
			// Children exist but are not materialized in this view.
			clone.Visible = false
		}
		return &clone
	}
	if node.Children != nil {
		clone.Children = make([]*domain.Node, len(node.Children))
		for i, child := range node.Children {
			clone.Children[i] = limitDepth(child, maxDepth-1)
		}
	}
	return &clone
}
