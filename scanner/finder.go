package scanner

import (
	"github.com/erraggy/oasconst/internal/maputil"
	"github.com/erraggy/oasconst/parser"
)

// DefaultMaxDepth is the schema recursion ceiling. Branches deeper than this
// stop descending and contribute no further findings.
const DefaultMaxDepth = 10

// ResolveFunc resolves a schema reference string to its target schema. It
// returns nil when the reference cannot be resolved; the walk then treats
// the reference as contributing nothing.
type ResolveFunc func(ref string) *parser.Schema

// FoundFunc receives each target field once, on its first discovery during a
// walk. nested is true when the discovery happened below the root schema.
type FoundFunc func(field string, nested bool)

// Finder locates target field names anywhere within a schema tree.
//
// Matching is deliberately conservative: schemas that admit arbitrary
// property names (a typed object without declared properties,
// additionalProperties: true, or a discriminator mapping whose variants are
// not inspected) report every target field as found. The Finder therefore
// over-approximates, never under-approximates: a field reported absent is
// genuinely absent from every closed schema shape.
//
// Finder methods never mutate the schema and never return errors; malformed
// fragments simply contribute nothing. A Finder is safe for concurrent use.
type Finder struct {
	// MaxDepth bounds schema recursion. Zero means DefaultMaxDepth.
	MaxDepth int

	// Resolve resolves $ref nodes encountered during the walk. Nil leaves
	// references uninspected, which is correct for pre-dereferenced
	// documents.
	Resolve ResolveFunc
}

// NewFinder creates a Finder with default settings.
func NewFinder() *Finder {
	return &Finder{}
}

// Find returns the set of target fields reachable from schema. Fields absent
// from the result were not found; present fields map to true.
func (f *Finder) Find(schema *parser.Schema, fields []string) map[string]bool {
	return f.FindFunc(schema, fields, nil)
}

// FindFunc is Find with a first-discovery callback. Passing a nil callback
// is equivalent to Find; the callback never affects the returned set.
func (f *Finder) FindFunc(schema *parser.Schema, fields []string, fn FoundFunc) map[string]bool {
	found := make(map[string]bool, len(fields))
	if schema == nil || len(fields) == 0 {
		return found
	}
	maxDepth := f.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	targets := 0
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if !seen[field] {
			seen[field] = true
			targets++
		}
	}
	w := &findWalk{
		fields:   fields,
		targets:  targets,
		found:    found,
		onFound:  fn,
		resolve:  f.Resolve,
		maxDepth: maxDepth,
		visiting: make(map[*parser.Schema]bool),
	}
	w.walk(schema, 0)
	return found
}

// findWalk carries the per-call state of one Find invocation, so the Finder
// itself stays immutable and shareable.
type findWalk struct {
	fields   []string
	targets  int
	found    map[string]bool
	onFound  FoundFunc
	resolve  ResolveFunc
	maxDepth int
	// visiting tracks schemas on the current recursion stack, cutting
	// cycles exactly instead of spending the whole depth budget on them.
	visiting map[*parser.Schema]bool
}

// done reports whether every distinct target has been found, allowing the
// walk to exit early.
func (w *findWalk) done() bool {
	return len(w.found) == w.targets
}

func (w *findWalk) markFound(field string, depth int) {
	if w.found[field] {
		return
	}
	w.found[field] = true
	if w.onFound != nil {
		w.onFound(field, depth > 0)
	}
}

func (w *findWalk) markAllFound(depth int) {
	for _, field := range w.fields {
		w.markFound(field, depth)
	}
}

func (w *findWalk) walk(schema *parser.Schema, depth int) {
	if schema == nil || w.done() {
		return
	}
	if depth > w.maxDepth {
		return
	}
	if w.visiting[schema] {
		return
	}
	w.visiting[schema] = true
	defer delete(w.visiting, schema)

	// A reference node is inspected through its target when a resolver is
	// available. Dereferencing does not consume depth: the target stands in
	// for this node, exactly as if the document had been pre-dereferenced.
	// Failed resolution contributes nothing.
	if schema.Ref != "" && w.resolve != nil {
		w.walk(w.resolve(schema.Ref), depth)
	}

	// Direct property keys.
	for _, field := range w.fields {
		if _, ok := schema.Properties[field]; ok {
			w.markFound(field, depth)
		}
	}
	if w.done() {
		return
	}

	// Open shapes admit arbitrary property names, so every target counts as
	// found here: a typed object without declared properties,
	// additionalProperties: true, and a discriminator mapping whose variants
	// are not individually inspected.
	if openSchema(schema) {
		w.markAllFound(depth)
		return
	}

	// Property values.
	for _, name := range maputil.SortedKeys(schema.Properties) {
		w.walk(schema.Properties[name], depth+1)
		if w.done() {
			return
		}
	}

	// Array elements, including the tuple form.
	for _, item := range schema.ItemsSchemas() {
		w.walk(item, depth+1)
		if w.done() {
			return
		}
	}

	// Typed additionalProperties values.
	if sub := schema.AdditionalPropertiesSchema(); sub != nil {
		w.walk(sub, depth+1)
		if w.done() {
			return
		}
	}

	// Every pattern schema, without evaluating the patterns themselves.
	for _, pattern := range maputil.SortedKeys(schema.PatternProperties) {
		w.walk(schema.PatternProperties[pattern], depth+1)
		if w.done() {
			return
		}
	}

	// Composition members.
	for _, group := range [][]*parser.Schema{schema.AllOf, schema.OneOf, schema.AnyOf} {
		for _, sub := range group {
			w.walk(sub, depth+1)
			if w.done() {
				return
			}
		}
	}
}

// openSchema reports whether the schema admits arbitrary property names and
// must be treated as containing every target field.
func openSchema(s *parser.Schema) bool {
	if s.AdditionalPropertiesAllowed() {
		return true
	}
	if s.Discriminator != nil && len(s.Discriminator.Mapping) > 0 {
		return true
	}
	// A declared object without declared properties is fully dynamic. A
	// schema with no type keyword declares nothing and stays closed.
	return s.HasType("object") && len(s.Properties) == 0
}
