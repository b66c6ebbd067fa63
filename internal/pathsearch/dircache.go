package pathsearch

import (
	"os"

	"github.com/iq-signum/verilator/internal/pathutil"
)

// DirCache memoizes directory listings. Probing candidate filenames one
// stat at a time is surprisingly slow on large library trees, so each
// directory is listed once and subsequent lookups hit the cached name set.
// Files created or removed after the first listing are not observed for the
// remainder of the run.
type DirCache struct {
	listings map[string]map[string]struct{}
}

// NewDirCache creates an empty cache.
func NewDirCache() *DirCache {
	return &DirCache{listings: make(map[string]map[string]struct{})}
}

// Lookup returns filename when it exists as a regular file, or "" when the
// entry is absent or is a directory.
func (c *DirCache) Lookup(filename string) string {
	dir := pathutil.Dir(filename)
	base := pathutil.Base(filename)

	set, ok := c.listings[dir]
	if !ok {
		set = make(map[string]struct{})
		c.listings[dir] = set
		// An unreadable directory caches as empty so it is not re-listed.
		if entries, err := os.ReadDir(dir); err == nil {
			for _, e := range entries {
				set[e.Name()] = struct{}{}
			}
		}
	}

	if _, found := set[base]; !found {
		return ""
	}
	full := pathutil.Join(dir, base)
	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return ""
	}
	return full
}
