package detect

import (
	"path/filepath"
	"sort"
)

// collector accumulates discovered file paths across roots, dropping
// exact duplicates (the same file reachable from two roots, or a root
// nested inside another) and imposing the final lexicographic order.
type collector struct {
	seen  map[string]struct{}
	paths []string
}

func newCollector() *collector {
	return &collector{seen: make(map[string]struct{})}
}

func (c *collector) add(path string) {
	path = filepath.Clean(path)
	if _, dup := c.seen[path]; dup {
		return
	}
	c.seen[path] = struct{}{}
	c.paths = append(c.paths, path)
}

// finalize returns the collected paths in sorted order. Sorting here,
// after all roots have been walked, keeps the emitted output stable no
// matter how the filesystem enumerated entries.
func (c *collector) finalize() []string {
	sort.Strings(c.paths)
	return c.paths
}
