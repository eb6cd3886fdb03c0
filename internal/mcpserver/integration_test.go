package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasconst-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Tools, 3, "expected 3 registered tools")

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}

	expectedTools := []string{
		"scan_fields",
		"group_paths",
		"generate_constants",
	}

	for _, name := range expectedTools {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	// Every tool should have a non-empty description.
	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
}

func TestIntegration_CallTool_ScanFields(t *testing.T) {
	session := startTestSession(t)
	specCache.reset()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "scan_fields",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": accountsSpecYAML,
			},
			"fields": []string{"email", "password"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "scan_fields should succeed on valid spec")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "inline", structured["source"])
	assert.Equal(t, "3.x", structured["version"])

	response, ok := structured["response"].(map[string]any)
	require.True(t, ok, "response should be an object")
	fieldPaths, ok := response["field_paths"].(map[string]any)
	require.True(t, ok, "field_paths should be an object")
	assert.Equal(t, []any{"/user/{id}"}, fieldPaths["email"])
	assert.Equal(t, []any{}, fieldPaths["password"])

	request, ok := structured["request"].(map[string]any)
	require.True(t, ok, "request should be an object")
	requestPaths, ok := request["field_paths"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []any{"/login"}, requestPaths["password"])
}

func TestIntegration_CallTool_GroupPaths(t *testing.T) {
	session := startTestSession(t)
	specCache.reset()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "group_paths",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": accountsSpecYAML,
			},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "group_paths should succeed on valid spec")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(3), structured["group_count"])
	assert.Equal(t, float64(3), structured["path_count"])

	groups, ok := structured["groups"].(map[string]any)
	require.True(t, ok, "groups should be an object")
	assert.Equal(t, []any{"/login"}, groups["auth"])
	assert.Equal(t, []any{"/healthz"}, groups["default"])
	assert.Equal(t, []any{"/user/{id}"}, groups["users"])
}

func TestIntegration_CallTool_GenerateConstants(t *testing.T) {
	session := startTestSession(t)
	specCache.reset()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "generate_constants",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": accountsSpecYAML,
			},
			"response_fields": []string{"email"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "generate_constants should succeed on valid spec")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "apipaths_gen.go", structured["file_name"])
	assert.Equal(t, float64(3), structured["const_count"])
	assert.Equal(t, float64(3), structured["group_count"])

	content, ok := structured["content"].(string)
	require.True(t, ok, "content should be a string")
	assert.Contains(t, content, "// Code generated by oasconst. DO NOT EDIT.")
	assert.Contains(t, content, `PathAuthLogin = "/login"`)
	assert.Contains(t, content, "var ResponseFieldPaths = map[string][]string{")
}

func TestIntegration_CallTool_Error_InvalidSpec(t *testing.T) {
	session := startTestSession(t)
	specCache.reset()

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "group_paths",
		Arguments: map[string]any{
			"spec": map[string]any{
				"content": "this is not valid JSON or YAML for an OAS spec",
			},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "group_paths should return IsError for unparseable input")

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "error content should be TextContent")
	assert.NotEmpty(t, text.Text)
}

func TestIntegration_CallTool_Error_MissingSpec(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "scan_fields",
		Arguments: map[string]any{
			"spec":   map[string]any{},
			"fields": []string{"email"},
		},
	})
	require.NoError(t, err, "MCP protocol call should succeed even on tool error")
	require.NotNil(t, result)
	assert.True(t, result.IsError, "scan_fields should return IsError when no spec source is provided")
}

// unmarshalStructured extracts the structured output from a CallToolResult.
// It first checks StructuredContent, then falls back to parsing the first TextContent.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
