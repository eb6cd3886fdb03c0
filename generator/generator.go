package generator

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/tools/imports"

	"github.com/erraggy/oasconst/internal/maputil"
	"github.com/erraggy/oasconst/parser"
	"github.com/erraggy/oasconst/scanner"
)

// ErrNoInput is returned by Generate when the input carries neither grouped
// paths nor field scans, so there is nothing to render.
var ErrNoInput = errors.New("generator: input carries no grouped paths and no field scans")

// GeneratedFile represents the generated Go source file.
type GeneratedFile struct {
	// Name is the file name (e.g., "apipaths_gen.go")
	Name string
	// Content is the formatted Go source code
	Content []byte
}

// Input carries the scan aggregates to render. GroupPaths drives the const
// blocks; the field scans drive the lookup tables. Either side may be absent,
// but not both.
type Input struct {
	// GroupPaths maps tag groups to their paths, as produced by
	// scanner.GroupPathsByTag.
	GroupPaths map[string][]string
	// ResponseFields is a response-side field scan, or nil.
	ResponseFields *scanner.FieldScan
	// RequestFields is a request-side field scan, or nil.
	RequestFields *scanner.FieldScan
}

// Result contains the outcome of one generation.
type Result struct {
	// File is the generated source file.
	File GeneratedFile
	// ConstCount is the number of path constants emitted.
	ConstCount int
	// GroupCount is the number of const blocks (tag groups) emitted.
	GroupCount int
	// Duration is the time generation took.
	Duration time.Duration
}

// Generator renders scanner aggregates into a single formatted Go source
// file of path constants and field lookup tables. The zero value is ready to
// use; New returns one with defaults applied.
type Generator struct {
	// PackageName is the package clause of the generated file. Empty means
	// "apipaths".
	PackageName string

	// ConstPrefix is prepended to every const name. Empty means "Path".
	ConstPrefix string

	// Source is recorded in the generated file header as provenance, e.g.
	// the document path. Empty omits the line.
	Source string

	// IncludeGroupTables additionally emits the per-tag lookup tables
	// (field -> group -> paths) for each provided field scan.
	IncludeGroupTables bool

	// Logger narrates generation at debug level. Nil disables logging.
	Logger parser.Logger
}

// New creates a Generator with default settings.
func New() *Generator {
	return &Generator{
		PackageName: "apipaths",
		ConstPrefix: "Path",
	}
}

func (g *Generator) packageName() string {
	if g.PackageName != "" {
		return g.PackageName
	}
	return "apipaths"
}

func (g *Generator) constPrefix() string {
	if g.ConstPrefix != "" {
		return g.ConstPrefix
	}
	return "Path"
}

func (g *Generator) log() parser.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return parser.NopLogger{}
}

// Generate renders the input into one formatted Go source file. Everything
// is emitted in sorted order (groups, paths within a group, table keys), so
// a given input produces byte-for-byte identical output on every run.
func (g *Generator) Generate(input *Input) (*Result, error) {
	start := time.Now()
	if input == nil || (len(input.GroupPaths) == 0 && input.ResponseFields == nil && input.RequestFields == nil) {
		return nil, ErrNoInput
	}

	data, constCount := g.buildTemplateData(input)
	fileName := g.packageName() + "_gen.go"

	raw, err := executeTemplate("constants.go.tmpl", data)
	if err != nil {
		return nil, fmt.Errorf("generator: failed to render template: %w", err)
	}
	content, err := imports.Process(fileName, raw, nil)
	if err != nil {
		// The raw source is part of the error so the defect is diagnosable.
		return nil, fmt.Errorf("generator: generated source failed to format: %w\n%s", err, raw)
	}

	result := &Result{
		File:       GeneratedFile{Name: fileName, Content: content},
		ConstCount: constCount,
		GroupCount: len(data.Groups),
		Duration:   time.Since(start),
	}
	g.log().Debug("constants generated",
		"file", result.File.Name,
		"constants", result.ConstCount,
		"groups", result.GroupCount,
		"duration", result.Duration,
	)
	return result, nil
}

func (g *Generator) buildTemplateData(input *Input) (*templateData, int) {
	data := &templateData{
		PackageName: g.packageName(),
		Source:      g.Source,
	}

	names := newNameTable(g.constPrefix())
	constCount := 0
	for _, tag := range maputil.SortedKeys(input.GroupPaths) {
		group := constGroup{Tag: tag}
		for _, path := range sortedUnique(input.GroupPaths[tag]) {
			group.Consts = append(group.Consts, pathConst{
				Name: names.assign(tag, path),
				Path: path,
			})
			constCount++
		}
		if len(group.Consts) > 0 {
			data.Groups = append(data.Groups, group)
		}
	}

	if input.ResponseFields != nil {
		data.Tables = append(data.Tables, flatTable("ResponseFieldPaths",
			"maps each scanned field name to the sorted paths whose response schemas contain it.",
			input.ResponseFields))
	}
	if input.RequestFields != nil {
		data.Tables = append(data.Tables, flatTable("RequestFieldPaths",
			"maps each scanned field name to the sorted paths whose request schemas contain it.",
			input.RequestFields))
	}
	if g.IncludeGroupTables {
		if input.ResponseFields != nil {
			data.Tables = append(data.Tables, groupedTable("ResponseFieldPathsByGroup",
				"maps each scanned field name to tag groups to the sorted paths whose response schemas contain it.",
				input.ResponseFields))
		}
		if input.RequestFields != nil {
			data.Tables = append(data.Tables, groupedTable("RequestFieldPathsByGroup",
				"maps each scanned field name to tag groups to the sorted paths whose request schemas contain it.",
				input.RequestFields))
		}
	}
	return data, constCount
}

// sortedUnique returns a sorted copy of paths with duplicates removed. The
// scanner already emits sorted deduplicated lists; hand-built input gets the
// same treatment so output stays deterministic.
func sortedUnique(paths []string) []string {
	out := make([]string, 0, len(paths))
	seen := make(map[string]bool, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}
