package services

import (
	"errors"
	"io"
	"os"
)

// Platform is the capability surface the scanning core needs from the host
// OS: which volumes exist, which entry names a deployment hides by
// default, and whether a path is readable at all. The core carries no
// compile-time platform branches; only the thin implementation behind this
// interface varies per target.
type Platform interface {
	Roots() ([]string, error)
	DefaultExclusions() []string
	CanRead(path string) bool
}

// HostPlatform answers capability queries for the machine the process runs
// on.
type HostPlatform struct{}

func NewHostPlatform() *HostPlatform {
	return &HostPlatform{}
}

func (platform *HostPlatform) Roots() ([]string, error) {
	return systemRoots()
}

func (platform *HostPlatform) DefaultExclusions() []string {
	return append([]string{}, defaultExcludedNames...)
}

// CanRead is the boolean stand-in for the host's permission-grant flow: a
// directory is readable when it can be listed, anything else when it can
// be statted.
func (platform *HostPlatform) CanRead(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()
	_, err = file.Readdirnames(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return false
	}
	return true
}

// ExclusionSet turns a name list into the set form WalkOptions wants.
func ExclusionSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
