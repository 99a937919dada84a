package tmplloader

import "github.com/itsatony/go-tmplloader/internal"

// PathEntry is one directory in the template search order.
type PathEntry struct {
	Priority int
	Path     string
}

// PathMap maps search priority to directory. Transformers may add, remove
// or move entries; lower priorities are searched first.
type PathMap map[int]string

// Clone returns a shallow copy of m. A nil map clones to an empty one.
func (m PathMap) Clone() PathMap {
	out := make(PathMap, len(m))
	for priority, dir := range m {
		out[priority] = dir
	}
	return out
}

// Sorted returns the entries of m ordered by ascending priority, each path
// normalised to exactly one trailing slash.
func (m PathMap) Sorted() []PathEntry {
	priorities := internal.SortedPriorities(m)
	entries := make([]PathEntry, 0, len(priorities))
	for _, priority := range priorities {
		entries = append(entries, PathEntry{
			Priority: priority,
			Path:     internal.TrailingSlash(m[priority]),
		})
	}
	return entries
}
