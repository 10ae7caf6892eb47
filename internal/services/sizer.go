package services

import (
	"io/fs"
	"os"
	"runtime"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"
)

// sizeOnly sums the logical size of every file under path without
// materializing nodes. It shares the traversal's identity set, so hard
// links already counted elsewhere in the scan stay counted once, and it
// applies the same entry filter the materializing walk uses. Failures are
// tallied and skipped, never propagated.
func (walker *TreeWalker) sizeOnly(path string) int64 {
	var total atomic.Int64

	conf := fastwalk.Config{
		Follow:     true,
		NumWorkers: runtime.NumCPU(),
	}
	walkFn := func(childPath string, entry fs.DirEntry, err error) error {
		if err != nil {
			walker.tally.Record(err)
			return nil
		}
		if childPath != path {
			if walker.opts.SkipHidden && isHidden(entry.Name()) {
				if entry.IsDir() {
					return fastwalk.SkipDir
				}
				return nil
			}
			if _, excluded := walker.opts.Exclusions[entry.Name()]; excluded {
				if entry.IsDir() {
					return fastwalk.SkipDir
				}
				return nil
			}
		}
		// Symlinks resolve to their target, like the materializing
		// walk's stat, so both size and identity are the target's.
		var info fs.FileInfo
		if entry.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(childPath)
		} else {
			info, err = entry.Info()
		}
		if err != nil {
			walker.tally.Record(err)
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if id := identityOf(info); id != nil {
			if !walker.ids.MarkSeen(*id) {
				return nil
			}
		}
		total.Add(info.Size())
		return nil
	}

	if err := fastwalk.Walk(&conf, path, walkFn); err != nil {
		walker.tally.Record(err)
	}
	return total.Load()
}
