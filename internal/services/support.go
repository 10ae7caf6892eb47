package services

import (
	"path/filepath"
	"strings"
)

func cleanPath(path string) string {
	if path == "" {
		return path
	}
	clean := filepath.Clean(path)
	abs, err := filepath.Abs(clean)
	if err != nil {
		return clean
	}
	return abs
}

func isWithin(root, path string) bool {
	if root == path {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func baseName(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return path
	}
	return name
}

// componentsBelow splits the part of path below root into path components.
// Callers must have checked isWithin(root, path) first.
func componentsBelow(root, path string) []string {
	if root == path {
		return nil
	}
	rest := strings.TrimPrefix(path, root)
	rest = strings.TrimPrefix(rest, string(filepath.Separator))
	if rest == "" {
		return nil
	}
	return strings.Split(rest, string(filepath.Separator))
}
