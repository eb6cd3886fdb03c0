package generator

import (
	"github.com/erraggy/oasconst/internal/maputil"
	"github.com/erraggy/oasconst/scanner"
)

// templateData is the root object handed to the constants template. Every
// slice is pre-sorted; the template only iterates.
type templateData struct {
	PackageName string
	Source      string
	Groups      []constGroup
	Tables      []fieldTable
}

// constGroup is one const block: a tag and its path constants.
type constGroup struct {
	Tag    string
	Consts []pathConst
}

// pathConst is one emitted constant.
type pathConst struct {
	Name string
	Path string
}

// fieldTable is one emitted lookup table variable. Grouped selects the
// map[string]map[string][]string shape; otherwise map[string][]string.
type fieldTable struct {
	VarName string
	Comment string
	Grouped bool
	Entries []fieldEntry
}

// fieldEntry is one field key of a lookup table. Paths is set for flat
// tables, Groups for grouped tables.
type fieldEntry struct {
	Field  string
	Paths  []string
	Groups []groupPaths
}

// groupPaths is one tag bucket within a grouped table entry.
type groupPaths struct {
	Group string
	Paths []string
}

func flatTable(varName, comment string, scan *scanner.FieldScan) fieldTable {
	t := fieldTable{VarName: varName, Comment: comment}
	for _, field := range maputil.SortedKeys(scan.FieldPaths) {
		t.Entries = append(t.Entries, fieldEntry{
			Field: field,
			Paths: sortedUnique(scan.FieldPaths[field]),
		})
	}
	return t
}

func groupedTable(varName, comment string, scan *scanner.FieldScan) fieldTable {
	t := fieldTable{VarName: varName, Comment: comment, Grouped: true}
	for _, field := range maputil.SortedKeys(scan.GroupFieldPaths) {
		entry := fieldEntry{Field: field}
		groups := scan.GroupFieldPaths[field]
		for _, group := range maputil.SortedKeys(groups) {
			entry.Groups = append(entry.Groups, groupPaths{
				Group: group,
				Paths: sortedUnique(groups[group]),
			})
		}
		t.Entries = append(t.Entries, entry)
	}
	return t
}
