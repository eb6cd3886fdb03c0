package scanner

import (
	"github.com/erraggy/oasconst/internal/httputil"
	"github.com/erraggy/oasconst/internal/maputil"
	"github.com/erraggy/oasconst/parser"
)

// DefaultGroupName is the group that receives paths of untagged operations
// unless the caller configures another name.
const DefaultGroupName = "default"

// Location identifies which side of an operation a scan inspected.
type Location string

const (
	// LocationResponse scans every declared response across all status
	// codes and media types.
	LocationResponse Location = "response"
	// LocationRequest scans the request body across all media types and,
	// for OAS 2.0 documents, body parameter schemas.
	LocationRequest Location = "request"
)

// Finding describes a single field discovery during a scan. Findings are
// informational: they are reported to OnFinding and narrated on the logger,
// but the scan aggregates are complete without observing them.
type Finding struct {
	// Path is the path template the finding belongs to.
	Path string
	// Method is the lowercase HTTP method of the operation.
	Method string
	// StatusCode is the response entry key ("200", "2XX", "default").
	// Empty in request mode.
	StatusCode string
	// MediaType is the content key the schema sat under. Empty for
	// OAS 2.0 schemas, which attach directly to responses and parameters.
	MediaType string
	// Field is the target field that was found.
	Field string
	// Location records the scanned side.
	Location Location
	// Nested is true when the field was found below the schema root.
	Nested bool
}

// FindingFunc receives findings as they are discovered.
type FindingFunc func(Finding)

// Scanner walks a parsed document and aggregates, per target field, the
// paths whose request or response schemas contain that field. The zero value
// is ready to use; New returns one with defaults applied.
//
// Scanner methods never mutate the document and never return errors, so a
// single Scanner may serve concurrent scans.
type Scanner struct {
	// DefaultGroup receives paths of untagged operations. Empty means
	// DefaultGroupName.
	DefaultGroup string

	// MaxDepth bounds schema recursion. Zero means DefaultMaxDepth.
	MaxDepth int

	// Resolve resolves schema references during the walk. When nil, scans
	// fall back to resolving against the scanned document itself, which is
	// the right behavior for both dereferenced and reference-carrying
	// documents.
	Resolve ResolveFunc

	// OnFinding receives every finding. Nil disables reporting.
	OnFinding FindingFunc

	// Logger narrates findings at debug level. Nil disables logging.
	Logger parser.Logger
}

// New creates a Scanner with default settings.
func New() *Scanner {
	return &Scanner{DefaultGroup: DefaultGroupName}
}

func (s *Scanner) defaultGroup() string {
	if s.DefaultGroup != "" {
		return s.DefaultGroup
	}
	return DefaultGroupName
}

func (s *Scanner) log() parser.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return parser.NopLogger{}
}

// FieldScan aggregates one scan's results.
type FieldScan struct {
	// Location records which side of the operations was scanned.
	Location Location `yaml:"location" json:"location"`

	// Fields preserves the requested field list in request order.
	Fields []string `yaml:"fields" json:"fields"`

	// FieldPaths maps each requested field to the lexicographically
	// sorted, deduplicated paths where it was found. Every requested field
	// is present, mapped to an empty list when nothing was found.
	FieldPaths map[string][]string `yaml:"fieldPaths" json:"fieldPaths"`

	// GroupFieldPaths maps each requested field to tag groups to sorted,
	// deduplicated paths. An operation with several tags contributes its
	// path to every tag's bucket; untagged operations contribute under the
	// default group. Every requested field is present, mapped to an empty
	// map when nothing was found.
	GroupFieldPaths map[string]map[string][]string `yaml:"groupFieldPaths" json:"groupFieldPaths"`
}

// ScanResponseFields returns, for each target field, the paths whose
// response schemas contain that field anywhere, across all status codes and
// media types.
func (s *Scanner) ScanResponseFields(doc *parser.Document, fields []string) *FieldScan {
	return s.scan(doc, fields, LocationResponse)
}

// ScanRequestFields returns, for each target field, the paths whose request
// body schemas contain that field anywhere, across all media types. For
// OAS 2.0 documents the request schema lives on body parameters, which are
// scanned instead.
func (s *Scanner) ScanRequestFields(doc *parser.Document, fields []string) *FieldScan {
	return s.scan(doc, fields, LocationRequest)
}

func (s *Scanner) scan(doc *parser.Document, fields []string, location Location) *FieldScan {
	resolve := s.Resolve
	if resolve == nil {
		resolve = doc.ResolveLocalRef
	}
	st := &scanState{
		scanner:  s,
		location: location,
		fields:   fields,
		finder:   &Finder{MaxDepth: s.MaxDepth, Resolve: resolve},
		paths:    make(map[string]map[string]bool, len(fields)),
		groups:   make(map[string]map[string]map[string]bool, len(fields)),
	}
	for _, field := range fields {
		if st.paths[field] == nil {
			st.paths[field] = make(map[string]bool)
			st.groups[field] = make(map[string]map[string]bool)
		}
	}

	if doc != nil {
		for _, path := range maputil.SortedKeys(doc.Paths) {
			pi := doc.Paths[path]
			if pi == nil {
				continue
			}
			for _, method := range httputil.ScanMethods {
				op := pi.Operation(method)
				if op == nil {
					continue
				}
				switch location {
				case LocationResponse:
					st.scanResponses(path, method, op)
				case LocationRequest:
					st.scanRequest(path, method, op, pi.Parameters)
				}
			}
		}
	}
	return st.result()
}

// scanState carries the aggregates of one scan invocation.
type scanState struct {
	scanner  *Scanner
	location Location
	fields   []string
	finder   *Finder
	// paths: field -> set of paths.
	paths map[string]map[string]bool
	// groups: field -> group -> set of paths.
	groups map[string]map[string]map[string]bool
}

func (st *scanState) scanResponses(path, method string, op *parser.Operation) {
	if op.Responses == nil {
		return
	}
	if op.Responses.Default != nil {
		st.scanResponse(path, method, "default", op, op.Responses.Default)
	}
	for _, code := range maputil.SortedKeys(op.Responses.Codes) {
		st.scanResponse(path, method, code, op, op.Responses.Codes[code])
	}
}

func (st *scanState) scanResponse(path, method, code string, op *parser.Operation, resp *parser.Response) {
	if resp == nil {
		return
	}
	// OAS 2.0 responses attach the schema directly.
	if resp.Schema != nil {
		st.findInSchema(path, method, code, "", op, resp.Schema)
	}
	for _, mediaType := range maputil.SortedKeys(resp.Content) {
		mt := resp.Content[mediaType]
		if mt == nil || mt.Schema == nil {
			continue
		}
		st.findInSchema(path, method, code, mediaType, op, mt.Schema)
	}
}

func (st *scanState) scanRequest(path, method string, op *parser.Operation, pathParams []*parser.Parameter) {
	if op.RequestBody != nil {
		for _, mediaType := range maputil.SortedKeys(op.RequestBody.Content) {
			mt := op.RequestBody.Content[mediaType]
			if mt == nil || mt.Schema == nil {
				continue
			}
			st.findInSchema(path, method, "", mediaType, op, mt.Schema)
		}
	}
	// OAS 2.0 keeps the request schema on a body parameter, declared on the
	// operation or shared at the path level.
	for _, param := range op.Parameters {
		st.scanBodyParameter(path, method, op, param)
	}
	for _, param := range pathParams {
		st.scanBodyParameter(path, method, op, param)
	}
}

func (st *scanState) scanBodyParameter(path, method string, op *parser.Operation, param *parser.Parameter) {
	if param == nil || param.In != parser.ParamInBody || param.Schema == nil {
		return
	}
	st.findInSchema(path, method, "", "", op, param.Schema)
}

func (st *scanState) findInSchema(path, method, statusCode, mediaType string, op *parser.Operation, schema *parser.Schema) {
	groups := operationGroups(op, st.scanner.defaultGroup())
	st.finder.FindFunc(schema, st.fields, func(field string, nested bool) {
		st.record(path, field, groups)
		if st.scanner.OnFinding != nil {
			st.scanner.OnFinding(Finding{
				Path:       path,
				Method:     method,
				StatusCode: statusCode,
				MediaType:  mediaType,
				Field:      field,
				Location:   st.location,
				Nested:     nested,
			})
		}
		st.scanner.log().Debug("field found",
			"field", field,
			"path", path,
			"method", method,
			"statusCode", statusCode,
			"mediaType", mediaType,
			"location", string(st.location),
			"nested", nested,
		)
	})
}

func (st *scanState) record(path, field string, groups []string) {
	st.paths[field][path] = true
	for _, group := range groups {
		set := st.groups[field][group]
		if set == nil {
			set = make(map[string]bool)
			st.groups[field][group] = set
		}
		set[path] = true
	}
}

func (st *scanState) result() *FieldScan {
	scan := &FieldScan{
		Location:        st.location,
		Fields:          append([]string(nil), st.fields...),
		FieldPaths:      make(map[string][]string, len(st.fields)),
		GroupFieldPaths: make(map[string]map[string][]string, len(st.fields)),
	}
	for _, field := range st.fields {
		scan.FieldPaths[field] = maputil.SortedKeys(st.paths[field])
		groupPaths := make(map[string][]string, len(st.groups[field]))
		for group, set := range st.groups[field] {
			groupPaths[group] = maputil.SortedKeys(set)
		}
		scan.GroupFieldPaths[field] = groupPaths
	}
	return scan
}

// operationGroups returns the group names an operation contributes to: its
// tags, or the default group when untagged.
func operationGroups(op *parser.Operation, defaultGroup string) []string {
	if op == nil || len(op.Tags) == 0 {
		return []string{defaultGroup}
	}
	return op.Tags
}
