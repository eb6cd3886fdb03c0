package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasconst/generator"
	"github.com/erraggy/oasconst/parser"
	"github.com/erraggy/oasconst/scanner"
)

type generateConstantsInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The OAS document to generate constants from"`
	PackageName    string    `json:"package_name,omitempty"    jsonschema:"Go package name for the generated file (default: apipaths)"`
	ConstPrefix    string    `json:"const_prefix,omitempty"    jsonschema:"Prefix for generated constant names (default: Path)"`
	ResponseFields []string  `json:"response_fields,omitempty" jsonschema:"Fields to scan response schemas for"`
	RequestFields  []string  `json:"request_fields,omitempty"  jsonschema:"Fields to scan request schemas for"`
	DefaultGroup   string    `json:"default_group,omitempty"   jsonschema:"Group name for paths of untagged operations (default: default)"`
	GroupTables    bool      `json:"group_tables,omitempty"    jsonschema:"Also emit per-group lookup tables for scanned fields"`
	ResolveRefs    bool      `json:"resolve_refs,omitempty"    jsonschema:"Eagerly resolve local $ref pointers before scanning"`
}

type generateConstantsOutput struct {
	Source     string `json:"source"`
	FileName   string `json:"file_name"`
	Content    string `json:"content"`
	ConstCount int    `json:"const_count"`
	GroupCount int    `json:"group_count"`
}

func handleGenerateConstants(ctx context.Context, _ *mcp.CallToolRequest, input generateConstantsInput) (*mcp.CallToolResult, generateConstantsOutput, error) {
	var extraOpts []parser.Option
	if input.ResolveRefs {
		extraOpts = append(extraOpts, parser.WithResolveRefs(true))
	}
	result, err := input.Spec.resolve(ctx, extraOpts...)
	if err != nil {
		return errResult(err), generateConstantsOutput{}, nil
	}

	sc := scanner.New()
	if input.DefaultGroup != "" {
		sc.DefaultGroup = input.DefaultGroup
	}
	sc.Logger = serverLog

	genInput := &generator.Input{GroupPaths: sc.GroupPaths(result.Document)}
	if len(input.ResponseFields) > 0 {
		genInput.ResponseFields = sc.ScanResponseFields(result.Document, input.ResponseFields)
	}
	if len(input.RequestFields) > 0 {
		genInput.RequestFields = sc.ScanRequestFields(result.Document, input.RequestFields)
	}

	gen := generator.New()
	if input.PackageName != "" {
		gen.PackageName = input.PackageName
	}
	if input.ConstPrefix != "" {
		gen.ConstPrefix = input.ConstPrefix
	}
	gen.Source = result.SourcePath
	gen.IncludeGroupTables = input.GroupTables
	gen.Logger = serverLog

	genResult, err := gen.Generate(genInput)
	if err != nil {
		return errResult(err), generateConstantsOutput{}, nil
	}

	return nil, generateConstantsOutput{
		Source:     result.SourcePath,
		FileName:   genResult.File.Name,
		Content:    string(genResult.File.Content),
		ConstCount: genResult.ConstCount,
		GroupCount: genResult.GroupCount,
	}, nil
}
