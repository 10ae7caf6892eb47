package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"maka/internal/domain"
)

// DiskScanner is the engine facade: it owns the tree cache and the error
// tally, and builds a fresh walker (with a fresh identity set) for every
// full-depth scan. The cache is the only cross-build state, so concurrent
// builds of different roots never contend on deduplication.
type DiskScanner struct {
	cache    *TreeCache
	tally    *ErrorTally
	platform Platform
	opts     WalkOptions
}

func NewDiskScanner(platform Platform, opts WalkOptions) *DiskScanner {
	if opts.Exclusions == nil {
		opts.Exclusions = ExclusionSet(platform.DefaultExclusions())
	}
	return &DiskScanner{
		cache:    NewTreeCache(),
		tally:    NewErrorTally(),
		platform: platform,
		opts:     opts,
	}
}

// BuildCache runs a full-depth scan of the requested root and stores the
// resulting tree, replacing any prior entry for that key. A rebuild
// re-scans everything under the root; last build wins.
func (scanner *DiskScanner) BuildCache(ctx context.Context, req BuildRequest) (BuildResult, error) {
	start := time.Now()
	root := cleanPath(req.RootPath)

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return BuildResult{}, fmt.Errorf("%w: %s", ErrNotFound, root)
		}
		if os.IsPermission(err) {
			return BuildResult{}, fmt.Errorf("%w: %s", ErrPermission, root)
		}
		return BuildResult{}, err
	}
	if !info.IsDir() {
		return BuildResult{}, fmt.Errorf("%w: %s", ErrNotDirectory, root)
	}

	walker := NewTreeWalker(scanner.opts, scanner.tally)
	node, err := walker.Walk(ctx, root, 0)
	if err != nil {
		return BuildResult{}, err
	}
	scanner.cache.Put(root, node)

	return BuildResult{RootPath: root, Duration: time.Since(start)}, nil
}

// View returns the depth-limited tree for path from whichever cached root
// covers it. On a cache miss it auto-builds for the requested path and
// retries exactly once before surfacing the error.
func (scanner *DiskScanner) View(ctx context.Context, req ViewRequest) (*domain.Node, error) {
	node, err := scanner.cache.Resolve(req.Path, req.MaxDepth)
	if err == nil {
		return node, nil
	}
	if !errors.Is(err, ErrNotCached) {
		return nil, err
	}
	if _, buildErr := scanner.BuildCache(ctx, BuildRequest{RootPath: req.Path}); buildErr != nil {
		return nil, buildErr
	}
	return scanner.cache.Resolve(req.Path, req.MaxDepth)
}

// ListRoots delegates to the platform's volume enumeration; results are
// not cached.
func (scanner *DiskScanner) ListRoots() ([]string, error) {
	return scanner.platform.Roots()
}

// CachedRoots reports which roots currently have built trees.
func (scanner *DiskScanner) CachedRoots() []string {
	return scanner.cache.Roots()
}

// CanRead is the capability check the shell asks before offering a path.
func (scanner *DiskScanner) CanRead(path string) bool {
	return scanner.platform.CanRead(path)
}

func (scanner *DiskScanner) ErrorStats() (permission, notFound uint64) {
	return scanner.tally.Stats()
}

func (scanner *DiskScanner) ResetErrorStats() {
	scanner.tally.Reset()
}
