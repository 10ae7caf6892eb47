package services

import (
	"sync"

	"maka/internal/domain"
)

// IdentitySet remembers which (device, inode) pairs a traversal has already
// counted. It lives for exactly one full-depth build: a rescan starts from an
// empty set, and two unrelated scans never share one, so hard links are
// deduplicated within a traversal and nowhere else.
type IdentitySet struct {
	seen sync.Map
}

func NewIdentitySet() *IdentitySet {
	return &IdentitySet{}
}

// MarkSeen registers an identity and reports whether this was its first
// observation. The first caller wins the "counts toward size" designation;
// every later caller must treat the object as a zero-size duplicate.
func (set *IdentitySet) MarkSeen(id domain.Identity) bool {
	_, loaded := set.seen.LoadOrStore(id, struct{}{})
	return !loaded
}

// Seen reports whether the identity was already marked, without marking it.
func (set *IdentitySet) Seen(id domain.Identity) bool {
	_, ok := set.seen.Load(id)
	return ok
}
