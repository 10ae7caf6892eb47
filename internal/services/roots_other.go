//go:build !linux && !darwin && !windows

package services

var defaultExcludedNames []string

func systemRoots() ([]string, error) {
	return []string{"/"}, nil
}
