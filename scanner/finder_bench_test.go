package scanner

import (
	"testing"

	"github.com/erraggy/oasconst/parser"
)

func BenchmarkFindSmallSchema(b *testing.B) {
	schema := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"id":   {Type: "integer"},
			"name": {Type: "string"},
			"owner": {
				Type: "object",
				Properties: map[string]*parser.Schema{
					"email": {Type: "string"},
				},
			},
		},
	}
	finder := NewFinder()
	fields := []string{"email", "ssn"}

	for b.Loop() {
		_ = finder.Find(schema, fields)
	}
}

func BenchmarkFindDeepSchema(b *testing.B) {
	schema := &parser.Schema{
		Type: "object",
		Properties: map[string]*parser.Schema{
			"email": {Type: "string"},
		},
	}
	for range 9 {
		schema = &parser.Schema{
			Type:       "object",
			Properties: map[string]*parser.Schema{"inner": schema},
		}
	}
	finder := NewFinder()
	fields := []string{"email"}

	for b.Loop() {
		_ = finder.Find(schema, fields)
	}
}

func BenchmarkScanResponseFields(b *testing.B) {
	// Build a medium-sized document with 50 paths
	paths := make(map[string]*parser.PathItem)
	for i := range 50 {
		pathName := "/resource" + string(rune('A'+i%26)) + string(rune('0'+i/26))
		paths[pathName] = &parser.PathItem{
			Get: &parser.Operation{
				Tags: []string{"resources"},
				Responses: &parser.Responses{
					Codes: map[string]*parser.Response{
						"200": {
							Description: "OK",
							Content: map[string]*parser.MediaType{
								"application/json": {
									Schema: &parser.Schema{
										Type: "object",
										Properties: map[string]*parser.Schema{
											"id":    {Type: "integer"},
											"email": {Type: "string"},
										},
									},
								},
							},
						},
					},
				},
			},
		}
	}
	doc := &parser.Document{
		OpenAPI: "3.0.3",
		Info:    &parser.Info{Title: "Test", Version: "1.0.0"},
		Paths:   paths,
	}
	sc := New()
	fields := []string{"email", "ssn"}

	for b.Loop() {
		_ = sc.ScanResponseFields(doc, fields)
	}
}
