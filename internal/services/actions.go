package services

import (
	"context"
	"fmt"
	"os"
	"time"
)

// FSRemover deletes files and directory trees. It has no caching concerns
// of its own: a caller holding cached trees over deleted paths rebuilds
// to refresh them.
type FSRemover struct{}

func NewFSRemover() *FSRemover {
	return &FSRemover{}
}

// Remove deletes each requested path, collecting per-path failures rather
// than stopping at the first one. Missing paths are skipped silently, so
// removing an already-deleted selection succeeds.
func (remover *FSRemover) Remove(ctx context.Context, req RemoveRequest) (RemoveResult, error) {
	start := time.Now()
	result := RemoveResult{}

	for _, path := range req.Paths {
		if err := ctx.Err(); err != nil {
			result.Duration = time.Since(start)
			return result, err
		}
		path = cleanPath(path)
		info, err := os.Lstat(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			result.FailureCount++
			result.Errors = append(result.Errors, err.Error())
			continue
		}
		if info.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			result.FailureCount++
			result.Errors = append(result.Errors, fmt.Sprintf("delete %s: %v", path, err))
			continue
		}
		result.SuccessCount++
	}

	result.Duration = time.Since(start)
	return result, nil
}
