package internal

import (
	"sort"
	"strings"
)

// TrailingSlash returns dir with any run of trailing separators replaced by
// exactly one forward slash. An empty dir becomes "/".
func TrailingSlash(dir string) string {
	return Untrailing(dir) + PathSeparator
}

// Untrailing strips every trailing forward or back slash from dir.
func Untrailing(dir string) string {
	return strings.TrimRight(dir, PathSeparatorsAll)
}

// TrimLeadingSlashes removes leading forward slashes from a template name.
func TrimLeadingSlashes(name string) string {
	return strings.TrimLeft(name, PathSeparator)
}

// CompactNames returns names without empty entries, preserving order.
func CompactNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		out = append(out, name)
	}
	return out
}

// SortedPriorities returns the keys of a priority map in ascending order.
func SortedPriorities(paths map[int]string) []int {
	keys := make([]int, 0, len(paths))
	for priority := range paths {
		keys = append(keys, priority)
	}
	sort.Ints(keys)
	return keys
}
