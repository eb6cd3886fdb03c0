package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasconst/scanner"
)

type groupPathsInput struct {
	Spec         specInput `json:"spec"                    jsonschema:"The OAS document to group"`
	DefaultGroup string    `json:"default_group,omitempty" jsonschema:"Group name for paths of untagged operations (default: default)"`
}

type groupPathsOutput struct {
	Source     string              `json:"source"`
	Version    string              `json:"version"`
	GroupCount int                 `json:"group_count"`
	PathCount  int                 `json:"path_count"`
	Groups     map[string][]string `json:"groups"`
}

func handleGroupPaths(ctx context.Context, _ *mcp.CallToolRequest, input groupPathsInput) (*mcp.CallToolResult, groupPathsOutput, error) {
	result, err := input.Spec.resolve(ctx)
	if err != nil {
		return errResult(err), groupPathsOutput{}, nil
	}

	defaultGroup := input.DefaultGroup
	if defaultGroup == "" {
		defaultGroup = scanner.DefaultGroupName
	}
	groups := scanner.GroupPathsByTag(result.Document, defaultGroup)

	// A path with operations under several tags is in several groups; count
	// it once.
	distinct := make(map[string]bool)
	for _, paths := range groups {
		for _, path := range paths {
			distinct[path] = true
		}
	}

	return nil, groupPathsOutput{
		Source:     result.SourcePath,
		Version:    result.Version.String(),
		GroupCount: len(groups),
		PathCount:  len(distinct),
		Groups:     groups,
	}, nil
}
