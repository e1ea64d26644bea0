package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePath = "../../testdata/esign-3.0.yaml"

func TestDocumentInput_ResolveFile(t *testing.T) {
	docCache.reset()
	input := documentInput{File: fixturePath}
	doc, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.1", doc.Version)
}

func TestDocumentInput_ResolveContent(t *testing.T) {
	docCache.reset()
	content := `openapi: "3.0.0"
info:
  title: Test
  version: "1.0"
paths: {}
`
	input := documentInput{Content: content}
	doc, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", doc.Version)
	assert.Equal(t, "Test", doc.Title())
}

func TestDocumentInput_ResolveNoneProvided(t *testing.T) {
	input := documentInput{}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestDocumentInput_ResolveMultipleProvided(t *testing.T) {
	input := documentInput{File: "foo.yaml", Content: "bar"}
	_, err := input.resolve()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
}

func TestDocumentInput_ResolveFileNotFound(t *testing.T) {
	docCache.reset()
	input := documentInput{File: "/nonexistent/path.yaml"}
	_, err := input.resolve()
	assert.Error(t, err)
}

func TestDocumentInput_InlineSizeLimit(t *testing.T) {
	docCache.reset()
	saved := cfg.MaxInlineSize
	cfg.MaxInlineSize = 16
	defer func() { cfg.MaxInlineSize = saved }()

	input := documentInput{Content: "openapi: 3.0.0\ninfo:\n  title: too big"}
	_, err := input.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestDocCache_HitOnSameFile(t *testing.T) {
	docCache.reset()
	input := documentInput{File: fixturePath}

	// First call populates cache.
	doc1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, 1, docCache.size())

	// Second call should return the same pointer (cache hit).
	doc2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, doc1, doc2, "expected same pointer from cache hit")
}

func TestDocCache_MissOnModifiedFile(t *testing.T) {
	docCache.reset()

	dir := t.TempDir()
	path := filepath.Join(dir, "api.yaml")
	content1 := []byte(`openapi: "3.0.0"
info:
  title: Test V1
  version: "1.0"
paths: {}
`)
	require.NoError(t, os.WriteFile(path, content1, 0644))

	input := documentInput{File: path}
	doc1, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "Test V1", doc1.Title())

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

	doc2, err := input.resolve()
	require.NoError(t, err)
	assert.NotSame(t, doc1, doc2)
	assert.Equal(t, "Test V2", doc2.Title())
}

func TestDocCache_ContentHash(t *testing.T) {
	docCache.reset()
	content := `openapi: "3.0.0"
info:
  title: Hash Test
  version: "1.0"
paths: {}
`
	input := documentInput{Content: content}

	doc1, err := input.resolve()
	require.NoError(t, err)

	// Same content should hit cache.
	doc2, err := input.resolve()
	require.NoError(t, err)
	assert.Same(t, doc1, doc2)
}

func TestDocCache_DisabledSkipsCache(t *testing.T) {
	docCache.reset()
	saved := cfg.CacheEnabled
	cfg.CacheEnabled = false
	defer func() { cfg.CacheEnabled = saved }()

	input := documentInput{Content: "openapi: \"3.0.0\"\ninfo:\n  title: T\n  version: \"1\"\npaths: {}"}
	_, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, 0, docCache.size())
}

func TestDocCache_LRUEviction(t *testing.T) {
	docCache.reset()

	// Insert one more document than the cache holds and verify the first
	// (oldest) entry is evicted.
	var firstKey string
	for i := 0; i <= docCache.maxSize; i++ {
		content := fmt.Sprintf("openapi: \"3.0.0\"\ninfo:\n  title: Doc %d\n  version: \"1.0\"\npaths: {}\n", i)
		if i == 0 {
			firstKey = makeCacheKey(documentInput{Content: content})
		}
		input := documentInput{Content: content}
		_, err := input.resolve()
		require.NoError(t, err)
	}

	assert.Equal(t, docCache.maxSize, docCache.size())
	assert.Nil(t, docCache.get(firstKey), "expected oldest entry to be evicted")
}

func TestMakeCacheKey(t *testing.T) {
	t.Run("content keyed by hash", func(t *testing.T) {
		key := makeCacheKey(documentInput{Content: "openapi: 3.0.0"})
		assert.Contains(t, key, "content:")
		assert.Equal(t, key, makeCacheKey(documentInput{Content: "openapi: 3.0.0"}))
		assert.NotEqual(t, key, makeCacheKey(documentInput{Content: "openapi: 3.0.1"}))
	})

	t.Run("file keyed by path and mtime", func(t *testing.T) {
		key := makeCacheKey(documentInput{File: fixturePath})
		assert.Contains(t, key, "file:")
	})

	t.Run("missing file yields no key", func(t *testing.T) {
		assert.Empty(t, makeCacheKey(documentInput{File: "/nonexistent/path.yaml"}))
	})

	t.Run("empty input yields no key", func(t *testing.T) {
		assert.Empty(t, makeCacheKey(documentInput{}))
	})
}
