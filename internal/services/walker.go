package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"maka/internal/domain"
)

// DefaultMaxEntriesPerDir bounds fan-out against pathologically wide
// directories. Entries beyond the cap are dropped from the materialized
// listing and its size (a liveness safeguard, not a correctness feature);
// ChildCount still reports the true post-filter count. The depth-collapsed
// size pass is uncapped, so a capped directory's collapsed total can
// exceed the sum of its materialized children.
const DefaultMaxEntriesPerDir = 256

// WalkOptions configure one traversal.
type WalkOptions struct {
	// MaxEntriesPerDir caps processed entries per directory; 0 means the
	// default cap.
	MaxEntriesPerDir int
	// SkipHidden drops dotfile entries.
	SkipHidden bool
	// Exclusions is a set of entry names never descended into, e.g.
	// pseudo-filesystem mounts. Policy, not a hardcoded list.
	Exclusions map[string]struct{}
	// MaxDepth, when > 0, stops materializing nodes below that depth.
	// Sizes below the cutoff are still computed by a full-depth
	// size-only pass so collapsed directories report accurate totals.
	MaxDepth int
	// Workers bounds concurrent subtree scans; 0 means max(2, NumCPU).
	Workers int
}

// TreeWalker builds a fully sized tree for one root. Each walker owns a
// fresh IdentitySet, so hard-link deduplication spans exactly one
// traversal: two links anywhere under the same root count once, while
// independent top-level scans never deduplicate against each other.
type TreeWalker struct {
	opts  WalkOptions
	sem   *semaphore.Weighted
	ids   *IdentitySet
	tally *ErrorTally
}

func NewTreeWalker(opts WalkOptions, tally *ErrorTally) *TreeWalker {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 2 {
		workers = 2
	}
	if opts.MaxEntriesPerDir <= 0 {
		opts.MaxEntriesPerDir = DefaultMaxEntriesPerDir
	}
	return &TreeWalker{
		opts:  opts,
		sem:   semaphore.NewWeighted(int64(workers)),
		ids:   NewIdentitySet(),
		tally: tally,
	}
}

// Walk builds the node for path, recursing depth-first with bounded
// parallel fan-out across sibling subdirectories. Only root-level failures
// come back as errors; failures inside the subtree are tallied and the
// offending branch degrades to a zero-size node.
func (walker *TreeWalker) Walk(ctx context.Context, path string, depth int) (*domain.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stat follows symlinks; cycle protection comes from the identity set.
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		}
		return nil, err
	}

	node := &domain.Node{
		Name:     baseName(path),
		Path:     path,
		IsDir:    info.IsDir(),
		Visible:  true,
		Identity: identityOf(info),
	}

	first := true
	if node.Identity != nil {
		first = walker.ids.MarkSeen(*node.Identity)
	}

	if !info.IsDir() {
		// A revisited identity is a hard link whose data was already
		// counted: keep the entry visible but size it at zero.
		if first {
			node.Size = info.Size()
		}
		return node, nil
	}

	if !first {
		// Already-seen directory: a hard link or symlink cycle. Do not
		// descend and do not count it again.
		return node, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		// One unreadable directory never aborts an ancestor's scan.
		walker.tally.Record(err)
		node.Partial = true
		return node, nil
	}

	entries = walker.filterEntries(entries)
	sortEntriesByName(entries)
	node.ChildCount = len(entries)

	if len(entries) > walker.opts.MaxEntriesPerDir {
		entries = entries[:walker.opts.MaxEntriesPerDir]
		// Dropped entries are missing from both the listing and the size.
		node.Partial = true
	}

	if walker.opts.MaxDepth > 0 && depth >= walker.opts.MaxDepth {
		node.Visible = false
		node.Size = walker.sizeOnly(path)
		return node, nil
	}

	children := make([]*domain.Node, len(entries))
	var wg sync.WaitGroup
	for i, entry := range entries {
		childPath := filepath.Join(path, entry.Name())
		// Only subdirectories are worth a pool slot; files and symlinks
		// are a single stat and run inline. When the pool is saturated
		// the subtree is scanned inline too, so a deep tree can never
		// deadlock waiting on its own descendants.
		if entry.IsDir() && walker.sem.TryAcquire(1) {
			wg.Add(1)
			go func(slot int, childPath string, isDir bool) {
				defer wg.Done()
				defer walker.sem.Release(1)
				children[slot] = walker.walkChild(ctx, childPath, depth+1, isDir)
			}(i, childPath, entry.IsDir())
			continue
		}
		children[i] = walker.walkChild(ctx, childPath, depth+1, entry.IsDir())
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	kept := children[:0]
	var total int64
	for _, child := range children {
		if child == nil {
			continue
		}
		total += child.Size
		kept = append(kept, child)
	}
	node.Children = kept
	node.Size = total
	domain.SortBySize(node.Children)

	return node, nil
}

// walkChild recovers child failures locally: the error is tallied and the
// entry kept as a zero-size degraded node, so the listing stays consistent
// with ChildCount. A dangling symlink, for example, still shows up.
func (walker *TreeWalker) walkChild(ctx context.Context, path string, depth int, isDir bool) *domain.Node {
	child, err := walker.Walk(ctx, path, depth)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		walker.tally.Record(err)
		return &domain.Node{
			Name:    baseName(path),
			Path:    path,
			IsDir:   isDir,
			Visible: true,
			Partial: true,
		}
	}
	return child
}

func (walker *TreeWalker) filterEntries(entries []os.DirEntry) []os.DirEntry {
	kept := entries[:0]
	for _, entry := range entries {
		if walker.opts.SkipHidden && isHidden(entry.Name()) {
			continue
		}
		if _, excluded := walker.opts.Exclusions[entry.Name()]; excluded {
			continue
		}
		kept = append(kept, entry)
	}
	return kept
}

// Case-insensitive name order makes traversal deterministic regardless of
// the filesystem's enumeration order.
func sortEntriesByName(entries []os.DirEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name()) < strings.ToLower(entries[j].Name())
	})
}
