package scanner

import (
	"github.com/erraggy/oasconst/internal/httputil"
	"github.com/erraggy/oasconst/internal/maputil"
	"github.com/erraggy/oasconst/parser"
)

// GroupPathsByTag maps every tag group to the lexicographically sorted,
// deduplicated paths whose operations declare that tag. A path joins a group
// when any of its operations carries the tag, so a path with differently
// tagged operations appears in several groups. Untagged operations
// contribute their path to defaultGroup (DefaultGroupName when empty).
//
// Only operation tags are read; schemas are never inspected. The result is
// never nil: a document without paths yields an empty map.
func GroupPathsByTag(doc *parser.Document, defaultGroup string) map[string][]string {
	if defaultGroup == "" {
		defaultGroup = DefaultGroupName
	}
	sets := make(map[string]map[string]bool)
	if doc != nil {
		for path, pi := range doc.Paths {
			if pi == nil {
				continue
			}
			for _, method := range httputil.ScanMethods {
				op := pi.Operation(method)
				if op == nil {
					continue
				}
				for _, group := range operationGroups(op, defaultGroup) {
					set := sets[group]
					if set == nil {
						set = make(map[string]bool)
						sets[group] = set
					}
					set[path] = true
				}
			}
		}
	}
	grouped := make(map[string][]string, len(sets))
	for group, set := range sets {
		grouped[group] = maputil.SortedKeys(set)
	}
	return grouped
}

// GroupPaths groups the document's paths by tag using the scanner's
// configured default group.
func (s *Scanner) GroupPaths(doc *parser.Document) map[string][]string {
	return GroupPathsByTag(doc, s.defaultGroup())
}
