// This file implements const-name derivation from tag groups and path
// templates, including PascalCase conversion, initialism casing, reserved
// word escaping, and collision-stable deduplication.

package generator

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// goReservedWords contains Go reserved keywords that cannot be used as
// identifiers. Predeclared identifiers like "error" are not included because
// they can be shadowed.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// commonInitialisms maps lowercased words to their canonical Go casing, so
// "/user/{id}" names UserByID rather than UserById.
var commonInitialisms = map[string]string{
	"api":   "API",
	"html":  "HTML",
	"http":  "HTTP",
	"https": "HTTPS",
	"id":    "ID",
	"ids":   "IDs",
	"ip":    "IP",
	"json":  "JSON",
	"sql":   "SQL",
	"tls":   "TLS",
	"ui":    "UI",
	"uri":   "URI",
	"url":   "URL",
	"uuid":  "UUID",
	"xml":   "XML",
	"yaml":  "YAML",
}

// escapeReservedWord appends an underscore when the name is a Go keyword.
// The check is case-insensitive so an unprefixed name like "Range" is still
// escaped when a caller configures an empty const prefix.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// constName assembles the identifier for one path constant:
// <prefix><Group><PathWords>, e.g. PathUsersUserByIDPosts.
func constName(prefix, group, path string) string {
	name := prefix + toExportedName(group) + pathWords(path)
	if !unicode.IsLetter(rune(name[0])) {
		name = "P" + name
	}
	return escapeReservedWord(name)
}

// pathWords converts a path template to PascalCase words, mapping each
// "{param}" segment to "By<Param>". The root path "/" names Root.
func pathWords(path string) string {
	var b strings.Builder
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		if strings.HasPrefix(segment, "{") && strings.HasSuffix(segment, "}") {
			b.WriteString("By")
			segment = segment[1 : len(segment)-1]
		}
		b.WriteString(toExportedName(segment))
	}
	if b.Len() == 0 {
		return "Root"
	}
	return b.String()
}

// toExportedName converts a tag or path segment to an exported Go identifier
// fragment. Words split on non-alphanumeric runes and on lower-to-upper case
// boundaries, then each word is title-cased, with initialisms upgraded to
// their canonical casing ("petId" -> "PetID").
func toExportedName(s string) string {
	titleCaser := cases.Title(language.English, cases.NoLower)
	var b strings.Builder
	for _, word := range splitWords(s) {
		if canonical, ok := commonInitialisms[strings.ToLower(word)]; ok {
			b.WriteString(canonical)
			continue
		}
		b.WriteString(titleCaser.String(word))
	}
	return b.String()
}

// splitWords breaks s into words at non-alphanumeric runes and at
// lower-to-upper case transitions.
func splitWords(s string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}
	var prev rune
	for _, r := range s {
		switch {
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			flush()
		case unicode.IsUpper(r) && unicode.IsLower(prev):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
		prev = r
	}
	flush()
	return words
}

// nameTable assigns const names and resolves collisions by appending a
// counter (2, 3, ...). Callers assign in fully sorted order, so the names a
// document produces are stable across runs.
type nameTable struct {
	prefix string
	seen   map[string]bool
}

func newNameTable(prefix string) *nameTable {
	return &nameTable{prefix: prefix, seen: make(map[string]bool)}
}

func (t *nameTable) assign(group, path string) string {
	base := constName(t.prefix, group, path)
	name := base
	for n := 2; t.seen[name]; n++ {
		name = base + strconv.Itoa(n)
	}
	t.seen[name] = true
	return name
}
