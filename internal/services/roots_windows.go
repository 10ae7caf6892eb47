//go:build windows

package services

import "os"

var defaultExcludedNames = []string{"$Recycle.Bin", "System Volume Information"}

func systemRoots() ([]string, error) {
	var roots []string
	for letter := 'A'; letter <= 'Z'; letter++ {
		drive := string(letter) + `:\`
		if _, err := os.Stat(drive); err == nil {
			roots = append(roots, drive)
		}
	}
	if len(roots) == 0 {
		roots = []string{`C:\`}
	}
	return roots, nil
}
