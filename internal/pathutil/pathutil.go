// Package pathutil holds the filename manipulation helpers shared by the
// argument loader and the search-path resolver.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Clean normalizes a path without resolving symlinks. The empty string stays
// empty so optional path fields keep their "unset" meaning.
func Clean(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Clean(path)
}

// Dir returns the directory portion of path, "." when there is none.
func Dir(path string) string {
	return filepath.Dir(path)
}

// Base returns the last element of path.
func Base(path string) string {
	return filepath.Base(path)
}

// Join joins dir and name. An empty dir leaves name untouched, which lets an
// absolute module name be probed without a directory prefix.
func Join(dir, name string) string {
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// IsAbs reports whether path is absolute.
func IsAbs(path string) bool {
	return filepath.IsAbs(path)
}

// Substitute expands $VAR and ${VAR} environment references inside a path
// argument. Unset variables expand to the empty string.
func Substitute(path string) string {
	if !strings.ContainsRune(path, '$') {
		return path
	}
	return os.ExpandEnv(path)
}

// StripExt returns the base name of path with its final extension removed.
func StripExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// HasSuffix reports whether path ends with the given extension. A path
// shorter than the extension never matches.
func HasSuffix(path, ext string) bool {
	return len(path) > len(ext) && strings.HasSuffix(path, ext)
}
