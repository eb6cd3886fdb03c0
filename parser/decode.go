package parser

import (
	"fmt"

	"github.com/erraggy/oasconst/internal/httputil"
)

// decoder builds the typed Document from a raw parsed map. Both YAML and
// JSON input funnel through the same raw-map representation, so one decode
// path serves both formats and works identically on reference-resolved maps.
// Decoding is total: malformed fragments are dropped, with a warning where
// the drop could surprise (e.g., an invalid responses key).
type decoder struct {
	warnings []string
}

func (dec *decoder) warnf(format string, args ...any) {
	dec.warnings = append(dec.warnings, fmt.Sprintf(format, args...))
}

// document decodes the root map.
func (dec *decoder) document(m map[string]any) *Document {
	doc := &Document{}
	for k, v := range m {
		switch k {
		case "openapi":
			doc.OpenAPI = asString(v)
		case "swagger":
			doc.Swagger = asString(v)
		case "info":
			doc.Info = dec.info(v)
		case "tags":
			doc.Tags = dec.tags(v)
		case "paths":
			doc.Paths = dec.paths(v)
		case "components":
			doc.Components = dec.components(v)
		case "definitions":
			doc.Definitions = dec.schemaMap(v)
		default:
			doc.Extra = putExtra(doc.Extra, k, v)
		}
	}
	return doc
}

func (dec *decoder) info(v any) *Info {
	m := asMap(v)
	if m == nil {
		return nil
	}
	info := &Info{}
	for k, val := range m {
		switch k {
		case "title":
			info.Title = asString(val)
		case "version":
			info.Version = asString(val)
		case "description":
			info.Description = asString(val)
		default:
			info.Extra = putExtra(info.Extra, k, val)
		}
	}
	return info
}

func (dec *decoder) tags(v any) []*Tag {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	tags := make([]*Tag, 0, len(arr))
	for _, item := range arr {
		m := asMap(item)
		if m == nil {
			continue
		}
		tag := &Tag{}
		for k, val := range m {
			switch k {
			case "name":
				tag.Name = asString(val)
			case "description":
				tag.Description = asString(val)
			default:
				tag.Extra = putExtra(tag.Extra, k, val)
			}
		}
		tags = append(tags, tag)
	}
	return tags
}

func (dec *decoder) components(v any) *Components {
	m := asMap(v)
	if m == nil {
		return nil
	}
	comp := &Components{}
	for k, val := range m {
		switch k {
		case "schemas":
			comp.Schemas = dec.schemaMap(val)
		default:
			comp.Extra = putExtra(comp.Extra, k, val)
		}
	}
	return comp
}

func (dec *decoder) paths(v any) map[string]*PathItem {
	m := asMap(v)
	if m == nil {
		return nil
	}
	paths := make(map[string]*PathItem, len(m))
	for path, val := range m {
		pm := asMap(val)
		if pm == nil {
			continue
		}
		paths[path] = dec.pathItem(pm)
	}
	return paths
}

func (dec *decoder) pathItem(m map[string]any) *PathItem {
	pi := &PathItem{}
	for k, v := range m {
		switch k {
		case "$ref":
			pi.Ref = asString(v)
		case "summary":
			pi.Summary = asString(v)
		case "description":
			pi.Description = asString(v)
		case httputil.MethodGet:
			pi.Get = dec.operation(v)
		case httputil.MethodPut:
			pi.Put = dec.operation(v)
		case httputil.MethodPost:
			pi.Post = dec.operation(v)
		case httputil.MethodDelete:
			pi.Delete = dec.operation(v)
		case httputil.MethodOptions:
			pi.Options = dec.operation(v)
		case httputil.MethodHead:
			pi.Head = dec.operation(v)
		case httputil.MethodPatch:
			pi.Patch = dec.operation(v)
		case httputil.MethodTrace:
			pi.Trace = dec.operation(v)
		case "parameters":
			pi.Parameters = dec.parameters(v)
		default:
			pi.Extra = putExtra(pi.Extra, k, v)
		}
	}
	return pi
}

func (dec *decoder) operation(v any) *Operation {
	m := asMap(v)
	if m == nil {
		return nil
	}
	op := &Operation{}
	for k, val := range m {
		switch k {
		case "tags":
			op.Tags = asStringSlice(val)
		case "summary":
			op.Summary = asString(val)
		case "description":
			op.Description = asString(val)
		case "operationId":
			op.OperationID = asString(val)
		case "deprecated":
			op.Deprecated = asBool(val)
		case "parameters":
			op.Parameters = dec.parameters(val)
		case "requestBody":
			op.RequestBody = dec.requestBody(val)
		case "responses":
			op.Responses = dec.responses(val)
		default:
			op.Extra = putExtra(op.Extra, k, val)
		}
	}
	return op
}

func (dec *decoder) parameters(v any) []*Parameter {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	params := make([]*Parameter, 0, len(arr))
	for _, item := range arr {
		m := asMap(item)
		if m == nil {
			continue
		}
		p := &Parameter{}
		for k, val := range m {
			switch k {
			case "$ref":
				p.Ref = asString(val)
			case "name":
				p.Name = asString(val)
			case "in":
				p.In = asString(val)
			case "required":
				p.Required = asBool(val)
			case "schema":
				p.Schema = dec.schema(val)
			default:
				p.Extra = putExtra(p.Extra, k, val)
			}
		}
		params = append(params, p)
	}
	return params
}

func (dec *decoder) requestBody(v any) *RequestBody {
	m := asMap(v)
	if m == nil {
		return nil
	}
	rb := &RequestBody{}
	for k, val := range m {
		switch k {
		case "$ref":
			rb.Ref = asString(val)
		case "description":
			rb.Description = asString(val)
		case "required":
			rb.Required = asBool(val)
		case "content":
			rb.Content = dec.content(val)
		default:
			rb.Extra = putExtra(rb.Extra, k, val)
		}
	}
	return rb
}

// responses splits the "default" key from status-code keys, validating each
// code the way the OpenAPI spec defines responses keys. Invalid keys are
// dropped with a warning rather than failing the parse; this tool is
// best-effort over heterogeneous real-world documents.
func (dec *decoder) responses(v any) *Responses {
	m := asMap(v)
	if m == nil {
		return nil
	}
	r := &Responses{Codes: make(map[string]*Response, len(m))}
	for code, val := range m {
		if code == "default" {
			r.Default = dec.response(val)
			continue
		}
		if !httputil.ValidateStatusCode(code) {
			dec.warnf("responses: dropped invalid status code key %q (must be a numeric code, wildcard class like 2XX, or x- extension)", code)
			continue
		}
		r.Codes[code] = dec.response(val)
	}
	return r
}

func (dec *decoder) response(v any) *Response {
	m := asMap(v)
	if m == nil {
		return nil
	}
	resp := &Response{}
	for k, val := range m {
		switch k {
		case "$ref":
			resp.Ref = asString(val)
		case "description":
			resp.Description = asString(val)
		case "content":
			resp.Content = dec.content(val)
		case "schema":
			resp.Schema = dec.schema(val)
		default:
			resp.Extra = putExtra(resp.Extra, k, val)
		}
	}
	return resp
}

func (dec *decoder) content(v any) map[string]*MediaType {
	m := asMap(v)
	if m == nil {
		return nil
	}
	content := make(map[string]*MediaType, len(m))
	for mediaType, val := range m {
		mm := asMap(val)
		if mm == nil {
			continue
		}
		mt := &MediaType{}
		for k, mval := range mm {
			switch k {
			case "schema":
				mt.Schema = dec.schema(mval)
			default:
				mt.Extra = putExtra(mt.Extra, k, mval)
			}
		}
		content[mediaType] = mt
	}
	return content
}

func (dec *decoder) schema(v any) *Schema {
	m := asMap(v)
	if m == nil {
		return nil
	}
	s := &Schema{}
	for k, val := range m {
		switch k {
		case "$ref":
			s.Ref = asString(val)
		case "type":
			s.Type = decodeTypeValue(val)
		case "format":
			s.Format = asString(val)
		case "title":
			s.Title = asString(val)
		case "description":
			s.Description = asString(val)
		case "required":
			s.Required = asStringSlice(val)
		case "properties":
			s.Properties = dec.schemaMap(val)
		case "patternProperties":
			s.PatternProperties = dec.schemaMap(val)
		case "additionalProperties":
			s.AdditionalProperties = dec.schemaOrBool(val)
		case "items":
			s.Items = dec.schemaOrBool(val)
		case "allOf":
			s.AllOf = dec.schemaSlice(val)
		case "anyOf":
			s.AnyOf = dec.schemaSlice(val)
		case "oneOf":
			s.OneOf = dec.schemaSlice(val)
		case "not":
			s.Not = dec.schema(val)
		case "discriminator":
			s.Discriminator = dec.discriminator(val)
		default:
			s.Extra = putExtra(s.Extra, k, val)
		}
	}
	return s
}

func (dec *decoder) schemaMap(v any) map[string]*Schema {
	m := asMap(v)
	if m == nil {
		return nil
	}
	schemas := make(map[string]*Schema, len(m))
	for name, val := range m {
		if s := dec.schema(val); s != nil {
			schemas[name] = s
		}
	}
	return schemas
}

func (dec *decoder) schemaSlice(v any) []*Schema {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	schemas := make([]*Schema, 0, len(arr))
	for _, item := range arr {
		if s := dec.schema(item); s != nil {
			schemas = append(schemas, s)
		}
	}
	return schemas
}

// schemaOrBool decodes a value that can be either a schema, a tuple of
// schemas (draft-4 items), or a bool, as used by Schema.Items and
// Schema.AdditionalProperties.
func (dec *decoder) schemaOrBool(v any) any {
	switch val := v.(type) {
	case map[string]any, map[any]any:
		return dec.schema(val)
	case []any:
		schemas := dec.schemaSlice(val)
		if len(schemas) == 0 {
			return nil
		}
		return schemas
	case bool:
		return val
	}
	return v
}

// discriminator accepts both the OAS 3.x object form and the OAS 2.0
// string form (a bare property name).
func (dec *decoder) discriminator(v any) *Discriminator {
	switch val := v.(type) {
	case string:
		return &Discriminator{PropertyName: val}
	case map[string]any, map[any]any:
		m := asMap(val)
		d := &Discriminator{PropertyName: asString(m["propertyName"])}
		if mm := asMap(m["mapping"]); mm != nil {
			d.Mapping = make(map[string]string, len(mm))
			for k, mv := range mm {
				if s, ok := mv.(string); ok {
					d.Mapping[k] = s
				}
			}
		}
		return d
	}
	return nil
}

// decodeTypeValue normalizes the type keyword: strings pass through, lists
// become []string, anything else is preserved raw.
func decodeTypeValue(v any) any {
	switch val := v.(type) {
	case string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return v
}

// asMap returns v as a map[string]any. YAML mappings whose keys are not all
// strings (e.g., unquoted status codes) decode as map[any]any; those keys
// are stringified.
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func asStringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func putExtra(extra map[string]any, k string, v any) map[string]any {
	if extra == nil {
		extra = make(map[string]any)
	}
	extra[k] = v
	return extra
}
