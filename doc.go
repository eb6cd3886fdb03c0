// Package oasconst generates Go path-string constants and field lookup tables
// from OpenAPI Specification (OAS) documents.
//
// oasconst reads an OpenAPI document, groups its paths by operation tag, and
// optionally discovers which paths carry specific named fields anywhere in
// their request or response schemas. The results are rendered as a single
// formatted Go source file of constants and lookup tables.
//
// # Overview
//
// The library consists of three primary packages:
//
//   - parser: Load and model OpenAPI specifications (YAML or JSON)
//   - scanner: Group paths by tag and discover fields in request/response schemas
//   - generator: Render scanner output into a formatted Go source file
//
// All packages support OAS 2.0 (Swagger) and OAS 3.x documents:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.0.html
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasconst
//
// # Quick Start
//
// Parse a specification and group its paths by tag:
//
//	import (
//		"github.com/erraggy/oasconst/parser"
//		"github.com/erraggy/oasconst/scanner"
//	)
//
//	p := parser.New()
//	result, err := p.Parse("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	groups := scanner.GroupPathsByTag(result.Document, scanner.DefaultGroupName)
//	for tag, paths := range groups {
//		fmt.Printf("%s: %v\n", tag, paths)
//	}
//
// Discover which paths return an "email" field in any response schema:
//
//	sc := scanner.New()
//	scan := sc.ScanResponseFields(result.Document, []string{"email"})
//	fmt.Println(scan.FieldPaths["email"])
//
// Generate a constants file from both:
//
//	import "github.com/erraggy/oasconst/generator"
//
//	g := generator.New()
//	g.PackageName = "apipaths"
//	g.Source = result.SourcePath
//	out, err := g.Generate(&generator.Input{
//		GroupPaths:     groups,
//		ResponseFields: scan,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("apipaths_gen.go", out.File.Content, 0o644)
//
// # Field Discovery Semantics
//
// The scanner's field discovery is deliberately conservative: schemas that
// cannot rule a field out (free-form objects, additionalProperties: true,
// discriminator polymorphism) report every requested field as present.
// This trades precision for recall so generated lookup tables never miss a
// path. See the scanner package documentation for the full matching rules.
//
// # Command Line
//
// In addition to the library packages, oasconst provides a command-line
// interface:
//
//	# Generate a constants file
//	oasconst generate -out apipaths_gen.go -response-fields '["email"]' openapi.yaml
//
//	# Inspect field findings without generating code
//	oasconst scan -response-fields '["email","id"]' -format json openapi.yaml
//
//	# Print paths grouped by tag
//	oasconst groups openapi.yaml
//
//	# Serve the pipeline over the Model Context Protocol
//	oasconst mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasconst/cmd/oasconst@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/oasconst
//   - OpenAPI Specification: https://spec.openapis.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/oasconst
package oasconst
