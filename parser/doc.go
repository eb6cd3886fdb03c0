// Package parser provides loading and modeling of OpenAPI Specification documents.
//
// The parser supports OAS 2.0 (Swagger) and OAS 3.x in YAML and JSON formats.
// It produces a single unified Document model carrying the parts oasconst
// consumes: paths, operations, request bodies, responses, and their schemas.
// Unknown fields are preserved in Extra maps for forward compatibility.
//
// # Quick Start
//
// Parse a file using functional options:
//
//	result, err := parser.ParseWithOptions(
//		parser.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s, paths: %d\n", result.Version, len(result.Document.Paths))
//
// Or create a reusable Parser instance:
//
//	p := parser.New()
//	p.ResolveRefs = true
//	result1, _ := p.Parse("api1.yaml")
//	result2, _ := p.Parse("api2.yaml")
//
// # Reference Resolution
//
// With ResolveRefs enabled, local "#/" references are resolved eagerly by
// replacing each $ref node with a copy of its target before the typed
// document is built. Unresolvable and external references are left intact
// and reported as warnings, never errors. Documents that were not eagerly
// resolved still work downstream: Document.ResolveLocalRef resolves local
// schema references on demand.
//
// # Circular Reference Handling
//
// When eager resolution detects a circular reference, the affected $ref
// nodes remain unresolved and parsing continues. Circular references are
// detected when a $ref points to an ancestor in the current resolution path
// or directly to the document root.
package parser
