package parser

import (
	"encoding/json"

	"github.com/erraggy/oasconst/internal/httputil"
)

// PathItem represents the operations available on a single path.
type PathItem struct {
	// Ref is a reference to a path item defined elsewhere.
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	Get     *Operation `yaml:"get,omitempty" json:"get,omitempty"`
	Put     *Operation `yaml:"put,omitempty" json:"put,omitempty"`
	Post    *Operation `yaml:"post,omitempty" json:"post,omitempty"`
	Delete  *Operation `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options *Operation `yaml:"options,omitempty" json:"options,omitempty"`
	Head    *Operation `yaml:"head,omitempty" json:"head,omitempty"`
	Patch   *Operation `yaml:"patch,omitempty" json:"patch,omitempty"`
	// Trace is modeled for completeness (OAS 3.0+) but is outside the
	// scanner's fixed method set.
	Trace *Operation `yaml:"trace,omitempty" json:"trace,omitempty"`

	// Parameters apply to every operation on this path.
	Parameters []*Parameter   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Extra      map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation for the given lowercase HTTP method, or
// nil when the method is absent or unknown.
func (pi *PathItem) Operation(method string) *Operation {
	if pi == nil {
		return nil
	}
	switch method {
	case httputil.MethodGet:
		return pi.Get
	case httputil.MethodPut:
		return pi.Put
	case httputil.MethodPost:
		return pi.Post
	case httputil.MethodDelete:
		return pi.Delete
	case httputil.MethodOptions:
		return pi.Options
	case httputil.MethodHead:
		return pi.Head
	case httputil.MethodPatch:
		return pi.Patch
	case httputil.MethodTrace:
		return pi.Trace
	default:
		return nil
	}
}

// Operations returns the operations present on the path item, keyed by
// lowercase HTTP method. Trace is included when present; callers that only
// care about the scannable set should iterate httputil.ScanMethods instead.
func (pi *PathItem) Operations() map[string]*Operation {
	if pi == nil {
		return nil
	}
	ops := make(map[string]*Operation, 8)
	for _, method := range []string{
		httputil.MethodGet, httputil.MethodPut, httputil.MethodPost,
		httputil.MethodDelete, httputil.MethodOptions, httputil.MethodHead,
		httputil.MethodPatch, httputil.MethodTrace,
	} {
		if op := pi.Operation(method); op != nil {
			ops[method] = op
		}
	}
	return ops
}

// Operation represents a single API operation on a path.
type Operation struct {
	// Tags classify the operation; operations without tags fall into the
	// caller's default group downstream.
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary     string   `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	OperationID string   `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Deprecated  bool     `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// Parameters includes, for OAS 2.0 documents, the body parameter that
	// carries the request schema.
	Parameters []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// RequestBody carries the request schemas per media type (OAS 3.x).
	RequestBody *RequestBody `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	// Responses carries the response schemas per status code.
	Responses *Responses     `yaml:"responses,omitempty" json:"responses,omitempty"`
	Extra     map[string]any `yaml:",inline" json:"-"`
}

// Parameter locations.
const (
	ParamInQuery    = "query"
	ParamInHeader   = "header"
	ParamInPath     = "path"
	ParamInCookie   = "cookie"   // OAS 3.x only
	ParamInFormData = "formData" // OAS 2.0 only
	ParamInBody     = "body"     // OAS 2.0 only; carries the request schema
)

// Parameter represents an operation or path-item parameter. For OAS 2.0
// body parameters, Schema holds the request body schema.
type Parameter struct {
	Ref      string         `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	In       string         `yaml:"in,omitempty" json:"in,omitempty"`
	Required bool           `yaml:"required,omitempty" json:"required,omitempty"`
	Schema   *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Extra    map[string]any `yaml:",inline" json:"-"`
}

// RequestBody represents an OAS 3.x request body.
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}

// MediaType represents a media type object holding a schema.
type MediaType struct {
	Schema *Schema        `yaml:"schema,omitempty" json:"schema,omitempty"`
	Extra  map[string]any `yaml:",inline" json:"-"`
}

// Responses separates the "default" response from status-code responses.
// Keys that are not "default", a valid status code, a wildcard class
// (e.g., "2XX"), or an extension field are dropped with a parse warning.
type Responses struct {
	Default *Response
	Codes   map[string]*Response
}

// MarshalYAML flattens Responses back to its wire shape.
func (r *Responses) MarshalYAML() (any, error) {
	return r.toMap(), nil
}

// MarshalJSON flattens Responses back to its wire shape.
func (r *Responses) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.toMap())
}

func (r *Responses) toMap() map[string]*Response {
	if r == nil {
		return nil
	}
	out := make(map[string]*Response, len(r.Codes)+1)
	for code, resp := range r.Codes {
		out[code] = resp
	}
	if r.Default != nil {
		out["default"] = r.Default
	}
	return out
}

// Response represents a single response object. OAS 3.x documents carry
// schemas under Content; OAS 2.0 documents carry a single Schema directly.
type Response struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Schema      *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Extra       map[string]any        `yaml:",inline" json:"-"`
}
