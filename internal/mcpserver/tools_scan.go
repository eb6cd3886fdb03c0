package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasconst/parser"
	"github.com/erraggy/oasconst/scanner"
)

type scanFieldsInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The OAS document to scan"`
	Fields       []string  `json:"fields"                  jsonschema:"Field names to search for in schemas"`
	Location     string    `json:"location,omitempty"      jsonschema:"Which side to scan: response, request, or both (default: both)"`
	DefaultGroup string    `json:"default_group,omitempty" jsonschema:"Group name for paths of untagged operations (default: default)"`
	ResolveRefs  bool      `json:"resolve_refs,omitempty"  jsonschema:"Eagerly resolve local $ref pointers before scanning"`
}

// fieldScanReport is one side's aggregates: every requested field is present
// in both maps even when nothing was found.
type fieldScanReport struct {
	Fields          []string                       `json:"fields"`
	FieldPaths      map[string][]string            `json:"field_paths"`
	GroupFieldPaths map[string]map[string][]string `json:"group_field_paths"`
}

type scanFieldsOutput struct {
	Source   string           `json:"source"`
	Version  string           `json:"version"`
	Response *fieldScanReport `json:"response,omitempty"`
	Request  *fieldScanReport `json:"request,omitempty"`
}

func handleScanFields(ctx context.Context, _ *mcp.CallToolRequest, input scanFieldsInput) (*mcp.CallToolResult, scanFieldsOutput, error) {
	if len(input.Fields) == 0 {
		return errResult(fmt.Errorf("fields is required and must not be empty")), scanFieldsOutput{}, nil
	}
	location := input.Location
	if location == "" {
		location = "both"
	}
	if location != "response" && location != "request" && location != "both" {
		return errResult(fmt.Errorf("invalid location %q: must be response, request, or both", location)), scanFieldsOutput{}, nil
	}

	var extraOpts []parser.Option
	if input.ResolveRefs {
		extraOpts = append(extraOpts, parser.WithResolveRefs(true))
	}
	result, err := input.Spec.resolve(ctx, extraOpts...)
	if err != nil {
		return errResult(err), scanFieldsOutput{}, nil
	}

	sc := scanner.New()
	if input.DefaultGroup != "" {
		sc.DefaultGroup = input.DefaultGroup
	}
	sc.Logger = serverLog

	output := scanFieldsOutput{
		Source:  result.SourcePath,
		Version: result.Version.String(),
	}
	if location != "request" {
		output.Response = newFieldScanReport(sc.ScanResponseFields(result.Document, input.Fields))
	}
	if location != "response" {
		output.Request = newFieldScanReport(sc.ScanRequestFields(result.Document, input.Fields))
	}

	return nil, output, nil
}

func newFieldScanReport(scan *scanner.FieldScan) *fieldScanReport {
	return &fieldScanReport{
		Fields:          scan.Fields,
		FieldPaths:      scan.FieldPaths,
		GroupFieldPaths: scan.GroupFieldPaths,
	}
}
