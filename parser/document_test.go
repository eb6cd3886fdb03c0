package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOASVersionString tests version family names
func TestOASVersionString(t *testing.T) {
	assert.Equal(t, "2.0", OASVersion2.String())
	assert.Equal(t, "3.x", OASVersion3.String())
	assert.Equal(t, "unknown", OASVersionUnknown.String())
	assert.Equal(t, "unknown", OASVersion(99).String())
}

// TestClassifyVersion tests raw version string classification
func TestClassifyVersion(t *testing.T) {
	tests := []struct {
		version string
		want    OASVersion
	}{
		{"2.0", OASVersion2},
		{"3.0.0", OASVersion3},
		{"3.0.3", OASVersion3},
		{"3.1.0", OASVersion3},
		{"3.2", OASVersion3},
		{"3", OASVersionUnknown},
		{"30", OASVersionUnknown},
		{"4.0.0", OASVersionUnknown},
		{"1.2", OASVersionUnknown},
		{"", OASVersionUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyVersion(tt.version), "version %q", tt.version)
	}
}

// TestDocumentVersionPredicates tests IsOAS2/IsOAS3 including nil receivers
func TestDocumentVersionPredicates(t *testing.T) {
	assert.True(t, (&Document{Swagger: "2.0"}).IsOAS2())
	assert.False(t, (&Document{Swagger: "2.0"}).IsOAS3())
	assert.True(t, (&Document{OpenAPI: "3.1.0"}).IsOAS3())
	assert.False(t, (&Document{OpenAPI: "3.1.0"}).IsOAS2())
	assert.False(t, (&Document{}).IsOAS2())
	assert.False(t, (&Document{}).IsOAS3())

	var nilDoc *Document
	assert.False(t, nilDoc.IsOAS2())
	assert.False(t, nilDoc.IsOAS3())
}

// TestSchemaByName tests lookup order across components and definitions
func TestSchemaByName(t *testing.T) {
	fromComponents := &Schema{Title: "components"}
	fromDefinitions := &Schema{Title: "definitions"}

	doc := &Document{
		Components:  &Components{Schemas: map[string]*Schema{"User": fromComponents}},
		Definitions: map[string]*Schema{"User": fromDefinitions, "Legacy": fromDefinitions},
	}

	assert.Same(t, fromComponents, doc.SchemaByName("User"))
	assert.Same(t, fromDefinitions, doc.SchemaByName("Legacy"))
	assert.Nil(t, doc.SchemaByName("Missing"))

	assert.Nil(t, (&Document{}).SchemaByName("User"))

	var nilDoc *Document
	assert.Nil(t, nilDoc.SchemaByName("User"))
}
