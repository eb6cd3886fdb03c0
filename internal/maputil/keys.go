// Package maputil provides deterministic iteration helpers for maps.
//
// Scanner and generator output must be byte-for-byte stable across runs, so
// every map traversal that feeds output goes through SortedKeys rather than
// Go's randomized range order.
package maputil

import "sort"

// SortedKeys returns the keys of m in lexicographic order.
// A nil or empty map yields an empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
