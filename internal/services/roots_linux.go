//go:build linux

package services

import (
	"os/exec"
	"strings"
)

var defaultExcludedNames = []string{"proc", "sys", "dev", "run"}

// systemRoots lists mounted filesystems the way df reports them, skipping
// tmpfs and devtmpfs pseudo mounts.
func systemRoots() ([]string, error) {
	out, err := exec.Command("df", "-P", "-x", "tmpfs", "-x", "devtmpfs").Output()
	if err != nil {
		// df missing or failing still leaves the root filesystem.
		return []string{"/"}, nil
	}

	var roots []string
	lines := strings.Split(string(out), "\n")
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) >= 6 {
			roots = append(roots, fields[5])
		}
	}
	if len(roots) == 0 {
		roots = []string{"/"}
	}
	return roots, nil
}
