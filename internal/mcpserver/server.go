// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the oasconst pipeline as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasconst"
	"github.com/erraggy/oasconst/parser"
)

const serverInstructions = `oasconst MCP server: scans OpenAPI specs for schema fields, groups paths by tag, and generates Go path-constant source.

Tools:
- scan_fields: report which paths carry the given fields in request/response schemas
- group_paths: map operation tags to the sorted paths they cover
- generate_constants: produce a complete formatted Go source file of path constants and field lookup tables

Specs can be provided as a file path, a URL, or inline content (exactly one per call). Parsed specs are cached per session: file entries are keyed by path+mtime (auto-invalidated on change), URL entries by URL, inline entries by content hash. A background sweeper removes expired entries every 60s.`

// serverLog receives server diagnostics. Run replaces it with the caller's
// logger; everything must go to stderr because stdout carries the transport.
var serverLog parser.Logger = parser.NopLogger{}

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context, logger parser.Logger) error {
	if logger != nil {
		serverLog = logger
	}
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasconst", Version: oasconst.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	serverLog.Info("mcp server started", "transport", "stdio", "version", oasconst.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "scan_fields",
		Description: "Scan an OpenAPI specification for schema fields. For each requested field, returns the paths whose request or response schemas contain it anywhere (including nested objects, arrays, and composition branches), plus the same mapping broken out by operation tag. Matching is conservative: open schemas (free-form objects, open additionalProperties, discriminators) count as containing every field. Use location to scan only one side; the default scans both.",
	}, handleScanFields)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "group_paths",
		Description: "Group the paths of an OpenAPI specification by operation tag. Returns a mapping from tag to the lexicographically sorted paths whose operations carry that tag. A path with operations under several tags appears in every tag's group; paths of untagged operations land under the default group.",
	}, handleGroupPaths)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_constants",
		Description: "Generate a Go source file of path-string constants from an OpenAPI specification, one const block per tag group, plus optional lookup tables of paths whose schemas carry the requested response_fields / request_fields. The returned content is complete, formatted Go source; output is deterministic for a given document. Nothing is written to disk.",
	}, handleGenerateConstants)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
