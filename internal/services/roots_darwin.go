//go:build darwin

package services

import "os"

var defaultExcludedNames = []string{".Spotlight-V100", ".fseventsd"}

func systemRoots() ([]string, error) {
	roots := []string{"/"}
	entries, err := os.ReadDir("/Volumes")
	if err != nil {
		return roots, nil
	}
	for _, entry := range entries {
		if entry.IsDir() {
			roots = append(roots, "/Volumes/"+entry.Name())
		}
	}
	return roots, nil
}
