package adapter

import (
	"log/slog"

	m "clonex.dev/pkg/clonex/internal/model"
)

// SourceCache memoizes source file lookups for one run, keyed by the path
// string exactly as it appears in the record. A file that could not be found
// is cached as absent too. Entries are never evicted; the cache lives as long
// as the run that created it.
type SourceCache struct {
	fs      SourceFSAdapter
	root    m.Path
	entries map[string]*string
	misses  int
}

// NewSourceCache returns an empty cache. When root is non-empty, paths that
// do not resolve as given are retried relative to it.
func NewSourceCache(fs SourceFSAdapter, root m.Path) *SourceCache {
	return &SourceCache{
		fs:      fs,
		root:    root,
		entries: make(map[string]*string),
	}
}

// Load returns the text of the file behind path, reading it at most once.
func (c *SourceCache) Load(path string) (string, bool) {
	if path == "" {
		return "", false
	}

	if text, ok := c.entries[path]; ok {
		if text == nil {
			return "", false
		}

		return *text, true
	}

	text := c.resolve(path)
	c.entries[path] = text

	if text == nil {
		c.misses++
		slog.Debug("source file not found", "file", path, "projects_root", c.root)

		return "", false
	}

	return *text, true
}

func (c *SourceCache) resolve(path string) *string {
	candidates := []m.Path{m.Path(path)}
	if c.root != "" {
		candidates = append(candidates, c.fs.JoinPath(string(c.root), path))
	}

	for _, candidate := range candidates {
		if !c.fs.IsFile(candidate) {
			continue
		}

		text, err := c.fs.ReadText(candidate)
		if err != nil {
			slog.Warn("failed to read source file", "file", candidate, "error", err)
			return nil
		}

		return &text
	}

	return nil
}

// Len returns the number of distinct paths looked up so far.
func (c *SourceCache) Len() int {
	return len(c.entries)
}

// Misses returns the number of distinct paths that could not be resolved.
func (c *SourceCache) Misses() int {
	return c.misses
}
