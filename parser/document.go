package parser

// Document is the unified model for an OpenAPI document, covering the parts
// oasconst consumes from both OAS 2.0 and OAS 3.x specifications. Exactly one
// of OpenAPI or Swagger is set, matching the source document's version field.
//
// Documents are read-only after parsing: the scanner and generator never
// mutate them, so a single Document may be shared across concurrent scans.
type Document struct {
	// OpenAPI is the OAS 3.x version string (e.g., "3.0.3", "3.1.0").
	OpenAPI string `yaml:"openapi,omitempty" json:"openapi,omitempty"`
	// Swagger is the OAS 2.0 version string (always "2.0" in valid documents).
	Swagger string `yaml:"swagger,omitempty" json:"swagger,omitempty"`
	// Info describes the API.
	Info *Info `yaml:"info,omitempty" json:"info,omitempty"`
	// Tags lists the document-level tag declarations.
	Tags []*Tag `yaml:"tags,omitempty" json:"tags,omitempty"`
	// Paths maps path templates (e.g., "/user/{id}") to their path items.
	Paths map[string]*PathItem `yaml:"paths,omitempty" json:"paths,omitempty"`
	// Components holds reusable objects (OAS 3.x).
	Components *Components `yaml:"components,omitempty" json:"components,omitempty"`
	// Definitions holds reusable schemas (OAS 2.0).
	Definitions map[string]*Schema `yaml:"definitions,omitempty" json:"definitions,omitempty"`
	// Extra preserves root-level fields the model does not capture
	// (servers, security, webhooks, extensions, ...).
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Info represents the metadata object of an OpenAPI document.
type Info struct {
	Title       string         `yaml:"title,omitempty" json:"title,omitempty"`
	Version     string         `yaml:"version,omitempty" json:"version,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Tag represents a document-level tag declaration.
type Tag struct {
	Name        string         `yaml:"name,omitempty" json:"name,omitempty"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Extra       map[string]any `yaml:",inline" json:"-"`
}

// Components holds the reusable objects of an OAS 3.x document. Only schemas
// are modeled; other component kinds are preserved in Extra.
type Components struct {
	Schemas map[string]*Schema `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Extra   map[string]any     `yaml:",inline" json:"-"`
}

// OASVersion classifies the major OpenAPI Specification family of a document.
type OASVersion int

const (
	// OASVersionUnknown indicates the version could not be classified.
	OASVersionUnknown OASVersion = iota
	// OASVersion2 is OAS 2.0 (Swagger).
	OASVersion2
	// OASVersion3 is any OAS 3.x version.
	OASVersion3
)

// String returns the family name ("2.0", "3.x", or "unknown").
func (v OASVersion) String() string {
	switch v {
	case OASVersion2:
		return "2.0"
	case OASVersion3:
		return "3.x"
	default:
		return "unknown"
	}
}

// classifyVersion maps a raw version string to its OASVersion family.
func classifyVersion(version string) OASVersion {
	switch {
	case version == "2.0":
		return OASVersion2
	case len(version) > 1 && version[0] == '3' && version[1] == '.':
		return OASVersion3
	default:
		return OASVersionUnknown
	}
}

// IsOAS2 reports whether the document declares OAS 2.0 (Swagger).
func (d *Document) IsOAS2() bool {
	return d != nil && classifyVersion(d.Swagger) == OASVersion2
}

// IsOAS3 reports whether the document declares an OAS 3.x version.
func (d *Document) IsOAS3() bool {
	return d != nil && classifyVersion(d.OpenAPI) == OASVersion3
}

// SchemaByName returns the named reusable schema, checking OAS 3.x components
// first and OAS 2.0 definitions second. Returns nil when absent.
func (d *Document) SchemaByName(name string) *Schema {
	if d == nil {
		return nil
	}
	if d.Components != nil {
		if s, ok := d.Components.Schemas[name]; ok {
			return s
		}
	}
	return d.Definitions[name]
}
