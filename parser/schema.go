package parser

// Schema represents a JSON-Schema-like node as used by OpenAPI documents.
// All facets are optional and mutually non-exclusive. Schema graphs may be
// cyclic after reference resolution; consumers must bound their recursion.
type Schema struct {
	// Ref is a JSON reference to another schema (e.g., "#/components/schemas/User").
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Type is the JSON Schema type keyword: a string (e.g., "object") or,
	// in OAS 3.1, a list of strings. Use HasType to inspect it.
	Type any `yaml:"type,omitempty" json:"type,omitempty"`
	// Format refines Type (e.g., "int64", "date-time").
	Format string `yaml:"format,omitempty" json:"format,omitempty"`
	// Title is the schema's human-readable name.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	// Description documents the schema.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Required lists property names that must be present.
	Required []string `yaml:"required,omitempty" json:"required,omitempty"`
	// Properties maps property names to their schemas.
	Properties map[string]*Schema `yaml:"properties,omitempty" json:"properties,omitempty"`
	// PatternProperties maps regex patterns to schemas for matching keys.
	PatternProperties map[string]*Schema `yaml:"patternProperties,omitempty" json:"patternProperties,omitempty"`
	// AdditionalProperties is either a bool or a *Schema.
	// Use AdditionalPropertiesSchema and AdditionalPropertiesAllowed to inspect it.
	AdditionalProperties any `yaml:"additionalProperties,omitempty" json:"additionalProperties,omitempty"`
	// Items is the array element schema: a *Schema or, in draft-4 tuple
	// form, a []*Schema. Use ItemsSchemas to inspect it.
	Items any `yaml:"items,omitempty" json:"items,omitempty"`
	// AllOf, AnyOf, and OneOf compose subschemas.
	AllOf []*Schema `yaml:"allOf,omitempty" json:"allOf,omitempty"`
	AnyOf []*Schema `yaml:"anyOf,omitempty" json:"anyOf,omitempty"`
	OneOf []*Schema `yaml:"oneOf,omitempty" json:"oneOf,omitempty"`
	// Not negates a subschema.
	Not *Schema `yaml:"not,omitempty" json:"not,omitempty"`
	// Discriminator hints at polymorphic dispatch (OAS 3.x object form;
	// the OAS 2.0 string form is normalized into PropertyName).
	Discriminator *Discriminator `yaml:"discriminator,omitempty" json:"discriminator,omitempty"`
	// Extra preserves facets the model does not capture.
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Discriminator represents the discriminator object of a polymorphic schema.
type Discriminator struct {
	// PropertyName names the property whose value selects the variant.
	PropertyName string `yaml:"propertyName,omitempty" json:"propertyName,omitempty"`
	// Mapping maps property values to variant schema names or references.
	Mapping map[string]string `yaml:"mapping,omitempty" json:"mapping,omitempty"`
}

// HasType reports whether the schema's type keyword includes t. It handles
// the string form, the OAS 3.1 list form, and raw decoded lists.
func (s *Schema) HasType(t string) bool {
	if s == nil {
		return false
	}
	switch v := s.Type.(type) {
	case string:
		return v == t
	case []string:
		for _, item := range v {
			if item == t {
				return true
			}
		}
	case []any:
		for _, item := range v {
			if str, ok := item.(string); ok && str == t {
				return true
			}
		}
	}
	return false
}

// ItemsSchemas returns the item schemas in slice form: a single-element
// slice for the common schema form, every element for the tuple form, and
// nil when items is absent or not a schema.
func (s *Schema) ItemsSchemas() []*Schema {
	if s == nil {
		return nil
	}
	switch v := s.Items.(type) {
	case *Schema:
		return []*Schema{v}
	case []*Schema:
		return v
	}
	return nil
}

// AdditionalPropertiesSchema returns additionalProperties when it is a
// schema, or nil when it is absent or boolean.
func (s *Schema) AdditionalPropertiesSchema() *Schema {
	if s == nil {
		return nil
	}
	sub, _ := s.AdditionalProperties.(*Schema)
	return sub
}

// AdditionalPropertiesAllowed reports whether additionalProperties is the
// boolean true, i.e. the schema explicitly permits arbitrary extra keys.
func (s *Schema) AdditionalPropertiesAllowed() bool {
	if s == nil {
		return false
	}
	allowed, _ := s.AdditionalProperties.(bool)
	return allowed
}
