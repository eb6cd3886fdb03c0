package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultMaxRefDepth caps chained $ref indirection during eager resolution.
// The resolving set already breaks true cycles; the depth cap guards
// pathological acyclic chains.
const DefaultMaxRefDepth = 100

// normalizeMapKeys rewrites a freshly unmarshaled YAML tree so every mapping
// is a map[string]any. YAML documents with non-string keys (unquoted status
// codes like 200:) otherwise decode as map[any]any and break the single
// decode path.
func normalizeMapKeys(v any) any {
	switch val := v.(type) {
	case map[string]any:
		for k, item := range val {
			val[k] = normalizeMapKeys(item)
		}
		return val
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalizeMapKeys(item)
		}
		return out
	case []any:
		for i, item := range val {
			val[i] = normalizeMapKeys(item)
		}
		return val
	}
	return v
}

// deepCopyValue copies a raw document subtree. Resolved $ref targets are
// copied before substitution so sibling references never alias the same
// maps.
func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = deepCopyValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	}
	return v
}

// refResolver performs eager, in-place resolution of local $ref nodes on the
// raw document map. External references are left intact with a warning, as
// are circular references and pointers that do not resolve; resolution never
// fails the parse.
type refResolver struct {
	root      map[string]any
	resolving map[string]bool
	warnings  []string
	maxDepth  int
}

func newRefResolver(root map[string]any, maxDepth int) *refResolver {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxRefDepth
	}
	return &refResolver{
		root:      root,
		resolving: make(map[string]bool),
		maxDepth:  maxDepth,
	}
}

func (r *refResolver) warnf(format string, args ...any) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

// resolveAll walks the whole document and substitutes local references.
func (r *refResolver) resolveAll() {
	for k, v := range r.root {
		r.root[k] = r.resolveValue(v, 0)
	}
}

// resolveValue resolves references within v. The depth parameter counts ref
// indirections only, not container nesting.
func (r *refResolver) resolveValue(v any, depth int) any {
	switch val := v.(type) {
	case map[string]any:
		if ref, ok := val["$ref"].(string); ok && ref != "" {
			if resolved, ok := r.resolveRef(ref, depth); ok {
				return resolved
			}
			return val
		}
		for k, item := range val {
			val[k] = r.resolveValue(item, depth)
		}
		return val
	case []any:
		for i, item := range val {
			val[i] = r.resolveValue(item, depth)
		}
		return val
	}
	return v
}

// resolveRef resolves a single reference string. It reports false when the
// node should be left intact.
func (r *refResolver) resolveRef(ref string, depth int) (any, bool) {
	if !strings.HasPrefix(ref, "#/") {
		r.warnf("resolver: external reference %q left unresolved (only local references are supported)", ref)
		return nil, false
	}
	if depth >= r.maxDepth {
		r.warnf("resolver: reference %q exceeds max depth %d, left unresolved", ref, r.maxDepth)
		return nil, false
	}
	if r.resolving[ref] {
		r.warnf("resolver: circular reference %q left unresolved", ref)
		return nil, false
	}
	target := lookupPointer(r.root, ref)
	if target == nil {
		r.warnf("resolver: reference %q does not resolve, left unresolved", ref)
		return nil, false
	}
	r.resolving[ref] = true
	resolved := r.resolveValue(deepCopyValue(target), depth+1)
	delete(r.resolving, ref)
	return resolved, true
}

// lookupPointer walks a local JSON pointer reference ("#/a/b/0/c") against
// the raw document map. It returns nil when any segment fails to resolve.
func lookupPointer(root map[string]any, ref string) any {
	var current any = root
	for _, segment := range strings.Split(strings.TrimPrefix(ref, "#/"), "/") {
		segment = unescapeJSONPointer(segment)
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil
			}
			current = next
		case []any:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil
			}
			current = node[idx]
		default:
			return nil
		}
	}
	return current
}

// unescapeJSONPointer applies RFC 6901 unescaping to a pointer segment.
// ~1 must be rewritten before ~0 so "~01" decodes to "~1" and not "/".
func unescapeJSONPointer(segment string) string {
	segment = strings.ReplaceAll(segment, "~1", "/")
	return strings.ReplaceAll(segment, "~0", "~")
}

// ResolveLocalRef resolves a local reference against the typed document and
// returns the referenced schema, or nil when the reference is external,
// malformed, or does not land on a schema. It never errors: callers that
// treat a reference as optional (schema scanning does) simply stop at nil.
//
// Supported roots are "#/components/schemas/<name>" and
// "#/definitions/<name>". Additional segments descend through schema facets:
// properties/<key>, items, items/<index>, additionalProperties,
// patternProperties/<key>, allOf/<index>, anyOf/<index>, oneOf/<index>,
// and not.
func (d *Document) ResolveLocalRef(ref string) *Schema {
	if d == nil || !strings.HasPrefix(ref, "#/") {
		return nil
	}
	segments := strings.Split(strings.TrimPrefix(ref, "#/"), "/")
	for i := range segments {
		segments[i] = unescapeJSONPointer(segments[i])
	}
	switch {
	case len(segments) >= 3 && segments[0] == "components" && segments[1] == "schemas":
		var root *Schema
		if d.Components != nil {
			root = d.Components.Schemas[segments[2]]
		}
		return resolveSchemaPath(root, segments[3:])
	case len(segments) >= 2 && segments[0] == "definitions":
		return resolveSchemaPath(d.Definitions[segments[1]], segments[2:])
	}
	return nil
}

// resolveSchemaPath descends from a named schema through facet segments.
func resolveSchemaPath(s *Schema, segments []string) *Schema {
	for i := 0; i < len(segments); i++ {
		if s == nil {
			return nil
		}
		switch segments[i] {
		case "properties":
			i++
			if i >= len(segments) {
				return nil
			}
			s = s.Properties[segments[i]]
		case "patternProperties":
			i++
			if i >= len(segments) {
				return nil
			}
			s = s.PatternProperties[segments[i]]
		case "items":
			items := s.ItemsSchemas()
			if len(items) == 0 {
				return nil
			}
			// A trailing index selects a tuple element; without one the
			// single items schema is taken.
			if i+1 < len(segments) {
				if idx, err := strconv.Atoi(segments[i+1]); err == nil {
					if idx < 0 || idx >= len(items) {
						return nil
					}
					s = items[idx]
					i++
					continue
				}
			}
			s = items[0]
		case "additionalProperties":
			s = s.AdditionalPropertiesSchema()
		case "allOf":
			i++
			s = schemaAt(s.AllOf, segments, i)
		case "anyOf":
			i++
			s = schemaAt(s.AnyOf, segments, i)
		case "oneOf":
			i++
			s = schemaAt(s.OneOf, segments, i)
		case "not":
			s = s.Not
		default:
			return nil
		}
	}
	return s
}

func schemaAt(schemas []*Schema, segments []string, i int) *Schema {
	if i >= len(segments) {
		return nil
	}
	idx, err := strconv.Atoi(segments[i])
	if err != nil || idx < 0 || idx >= len(schemas) {
		return nil
	}
	return schemas[idx]
}
