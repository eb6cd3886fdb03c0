package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasconst/parser"
)

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: "../../testdata/petstore-3.0.yaml"}
	result, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, result.Document)
	assert.Equal(t, parser.OASVersion3, result.Version)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.reset()
	content := `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`
	input := specInput{Content: content}
	result, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, parser.OASVersion3, result.Version)
	assert.Equal(t, inlineSourceName, result.SourcePath)
}

func TestSpecInput_ResolveNoneProvided(t *testing.T) {
	input := specInput{}
	_, err := input.resolve(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestSpecInput_ResolveMultipleProvided(t *testing.T) {
	input := specInput{File: "foo.yaml", Content: "bar"}
	_, err := input.resolve(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file, url, or content must be provided")
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	specCache.reset()
	input := specInput{File: "/nonexistent/path.yaml"}
	_, err := input.resolve(context.Background())
	assert.Error(t, err)
}

func TestSpecInput_InlineTooLarge(t *testing.T) {
	specCache.reset()
	old := cfg.MaxInlineSize
	cfg.MaxInlineSize = 8
	t.Cleanup(func() { cfg.MaxInlineSize = old })

	input := specInput{Content: `openapi: "3.0.0"`}
	_, err := input.resolve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSpecCache_HitOnSameFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: "../../testdata/petstore-3.0.yaml"}

	// First call populates cache.
	result1, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, specCache.size())

	// Second call should return the same pointer (cache hit).
	result2, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Same(t, result1, result2, "expected same pointer from cache hit")
}

func TestSpecCache_MissOnModifiedFile(t *testing.T) {
	specCache.reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "spec.yaml")
	content1 := []byte(`openapi: "3.0.0"
info:
  title: Test V1
  version: "1.0"
paths: {}
`)
	require.NoError(t, os.WriteFile(path, content1, 0644))

	input := specInput{File: path}
	result1, err := input.resolve(context.Background())
	require.NoError(t, err)
	require.NotNil(t, result1.Document.Info)
	assert.Equal(t, "Test V1", result1.Document.Info.Title)

	content2 := []byte(`openapi: "3.0.0"
info:
  title: Test V2
  version: "2.0"
paths: {}
`)
	require.NoError(t, os.WriteFile(path, content2, 0644))

	// Ensure mtime differs from the first write on coarse-grained filesystems.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	result2, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, result1, result2)
	require.NotNil(t, result2.Document.Info)
	assert.Equal(t, "Test V2", result2.Document.Info.Title)
}

func TestSpecCache_ContentHash(t *testing.T) {
	specCache.reset()
	content := `openapi: "3.0.0"
info:
  title: Hash Test
  version: "1.0"
paths: {}
`
	input := specInput{Content: content}

	result1, err := input.resolve(context.Background())
	require.NoError(t, err)

	// Same content should hit cache.
	result2, err := input.resolve(context.Background())
	require.NoError(t, err)
	assert.Same(t, result1, result2)
}

func TestSpecCache_SkippedWithExtraOptions(t *testing.T) {
	specCache.reset()
	content := `openapi: "3.0.0"
info:
  title: Uncached
  version: "1.0"
paths: {}
`
	input := specInput{Content: content}
	_, err := input.resolve(context.Background(), parser.WithResolveRefs(true))
	require.NoError(t, err)
	assert.Equal(t, 0, specCache.size(), "option-carrying parses must not be cached")
}

func TestSpecCache_TTLExpiry(t *testing.T) {
	specCache.reset()
	result := &parser.ParseResult{}
	specCache.putWithTTL("content:deadbeef", result, time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	assert.Nil(t, specCache.get("content:deadbeef"), "expired entry should be dropped on get")
	assert.Equal(t, 0, specCache.size())
}

func TestSpecCache_LRUEviction(t *testing.T) {
	specCache.reset()

	// Insert one spec more than the cache holds. Track the first content's
	// cache key to verify it is evicted.
	var firstKey string
	for i := range cfg.CacheMaxSize + 1 {
		content := `openapi: "3.0.0"
info:
  title: "Spec ` + string(rune('A'+i)) + `"
  version: "1.0"
paths: {}
`
		if i == 0 {
			firstKey = makeCacheKey(specInput{Content: content}, nil)
		}
		input := specInput{Content: content}
		_, err := input.resolve(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, cfg.CacheMaxSize, specCache.size())
	assert.Nil(t, specCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestMakeCacheKey(t *testing.T) {
	assert.Empty(t, makeCacheKey(specInput{}, nil))
	assert.Empty(t, makeCacheKey(specInput{File: "/nonexistent/nope.yaml"}, nil))
	assert.Empty(t, makeCacheKey(specInput{Content: "x"}, []parser.Option{parser.WithResolveRefs(true)}))

	assert.Equal(t, "url:https://example.com/api.yaml", makeCacheKey(specInput{URL: "https://example.com/api.yaml"}, nil))

	content := makeCacheKey(specInput{Content: "openapi"}, nil)
	assert.Contains(t, content, "content:")
	assert.Equal(t, content, makeCacheKey(specInput{Content: "openapi"}, nil), "content keys must be stable")
}
