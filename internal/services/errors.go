package services

import (
	"errors"
	"io/fs"
	"sync/atomic"
)

// Failure modes surfaced to callers. Failures inside a subtree are recorded
// on the tally and recovered locally; only root-level failures carry one of
// these out of the engine.
var (
	ErrNotFound     = errors.New("path does not exist")
	ErrPermission   = errors.New("permission denied")
	ErrNotDirectory = errors.New("not a directory")
	ErrNotCached    = errors.New("path not covered by any built cache")
)

type ErrorKind int

const (
	ErrorOther ErrorKind = iota
	ErrorPermissionDenied
	ErrorNotFound
)

// ErrorTally counts classified traversal failures. A scan never aborts on a
// child error: the walker records it here and moves on, so the counters are
// the only trace an unreadable branch leaves behind.
type ErrorTally struct {
	permission atomic.Uint64
	notFound   atomic.Uint64
	other      atomic.Uint64
}

func NewErrorTally() *ErrorTally {
	return &ErrorTally{}
}

// Record classifies err, bumps the matching counter and returns the kind.
// It always returns so the caller can decide to skip and continue.
func (tally *ErrorTally) Record(err error) ErrorKind {
	kind := Classify(err)
	switch kind {
	case ErrorPermissionDenied:
		tally.permission.Add(1)
	case ErrorNotFound:
		tally.notFound.Add(1)
	default:
		tally.other.Add(1)
	}
	return kind
}

// Stats returns the permission-denied and not-found counts.
func (tally *ErrorTally) Stats() (permission, notFound uint64) {
	return tally.permission.Load(), tally.notFound.Load()
}

// Other returns the count of failures that matched neither signature.
func (tally *ErrorTally) Other() uint64 {
	return tally.other.Load()
}

func (tally *ErrorTally) Reset() {
	tally.permission.Store(0)
	tally.notFound.Store(0)
	tally.other.Store(0)
}

// Classify maps an I/O failure onto the error taxonomy without recording it.
func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, fs.ErrPermission) || errors.Is(err, ErrPermission):
		return ErrorPermissionDenied
	case errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrNotFound):
		return ErrorNotFound
	default:
		return ErrorOther
	}
}
