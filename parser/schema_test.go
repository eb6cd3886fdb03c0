package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSchemaHasType tests the three representations of the type keyword
func TestSchemaHasType(t *testing.T) {
	assert.True(t, (&Schema{Type: "object"}).HasType("object"))
	assert.False(t, (&Schema{Type: "object"}).HasType("array"))
	assert.True(t, (&Schema{Type: []string{"object", "null"}}).HasType("null"))
	assert.True(t, (&Schema{Type: []any{"object", "null"}}).HasType("object"))
	assert.False(t, (&Schema{Type: []any{1, 2}}).HasType("object"))
	assert.False(t, (&Schema{}).HasType("object"))

	var nilSchema *Schema
	assert.False(t, nilSchema.HasType("object"))
}

// TestSchemaItemsSchemas tests single, tuple, and absent items
func TestSchemaItemsSchemas(t *testing.T) {
	single := &Schema{Type: "string"}
	s := &Schema{Items: single}
	require.Len(t, s.ItemsSchemas(), 1)
	assert.Same(t, single, s.ItemsSchemas()[0])

	a, b := &Schema{}, &Schema{}
	tuple := &Schema{Items: []*Schema{a, b}}
	require.Len(t, tuple.ItemsSchemas(), 2)
	assert.Same(t, b, tuple.ItemsSchemas()[1])

	assert.Nil(t, (&Schema{}).ItemsSchemas())
	assert.Nil(t, (&Schema{Items: true}).ItemsSchemas())

	var nilSchema *Schema
	assert.Nil(t, nilSchema.ItemsSchemas())
}

// TestSchemaAdditionalProperties tests the bool and schema forms
func TestSchemaAdditionalProperties(t *testing.T) {
	sub := &Schema{Type: "string"}

	assert.Same(t, sub, (&Schema{AdditionalProperties: sub}).AdditionalPropertiesSchema())
	assert.Nil(t, (&Schema{AdditionalProperties: true}).AdditionalPropertiesSchema())
	assert.Nil(t, (&Schema{}).AdditionalPropertiesSchema())

	assert.True(t, (&Schema{AdditionalProperties: true}).AdditionalPropertiesAllowed())
	assert.False(t, (&Schema{AdditionalProperties: false}).AdditionalPropertiesAllowed())
	assert.False(t, (&Schema{AdditionalProperties: sub}).AdditionalPropertiesAllowed())
	assert.False(t, (&Schema{}).AdditionalPropertiesAllowed())

	var nilSchema *Schema
	assert.Nil(t, nilSchema.AdditionalPropertiesSchema())
	assert.False(t, nilSchema.AdditionalPropertiesAllowed())
}
