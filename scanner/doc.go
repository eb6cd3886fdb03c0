// Package scanner discovers named fields in the request and response
// schemas of a parsed OpenAPI document and groups document paths by tag.
//
// The package has three entry points. The Finder answers "is this field
// reachable anywhere in this schema tree"; the Scanner applies the Finder
// across every operation of a document and aggregates the paths per field
// and per tag group; GroupPathsByTag groups paths by operation tag without
// touching schemas at all.
//
// # Quick Start
//
//	result, err := parser.New().Parse("api.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sc := scanner.New()
//	scan := sc.ScanResponseFields(result.Document, []string{"email", "ssn"})
//	for _, path := range scan.FieldPaths["email"] {
//	    fmt.Println(path)
//	}
//
// # Conservative Matching
//
// Schema shapes that admit arbitrary property names report every target
// field as found: objects without declared properties, schemas with
// additionalProperties: true, and discriminator mappings (variants are never
// inspected). Pattern property schemas are searched without evaluating the
// patterns against field names. The scan may therefore include a path whose
// schemas cannot actually produce the field, but it never misses a path that
// can. Callers filtering sensitive fields get the safe direction of error.
//
// # References and Recursion
//
// Schemas reachable through local $ref nodes are followed by resolving
// against the scanned document; documents that were parsed with eager
// resolution work identically. Unresolvable references contribute nothing.
// Recursion is bounded by an exact cycle cut on the walk stack plus a depth
// ceiling (DefaultMaxDepth) for legitimately deep trees, so self-referential
// schemas are safe to scan.
//
// # Determinism
//
// Every list in a scan result is lexicographically sorted and deduplicated,
// making output byte-for-byte reproducible for a fixed document and field
// list regardless of map iteration order.
//
// Scanning never returns an error: malformed document fragments are treated
// as containing nothing.
package scanner
