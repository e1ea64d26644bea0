package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/yaml/v4"
	"golang.org/x/text/encoding/unicode"

	"github.com/downspec/downspec/specerrors"
)

const minimalYAML = `openapi: 3.0.1
info:
  title: Minimal API
  version: 1.0.0
paths: {}
`

const minimalJSON = `{
  "openapi": "3.0.1",
  "info": {"title": "Minimal API", "version": "1.0.0"},
  "paths": {}
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeTemp(t, "api.yaml", minimalYAML)

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.SourcePath)
	assert.Equal(t, SourceFormatYAML, doc.SourceFormat)
	assert.Equal(t, int64(len(minimalYAML)), doc.SourceSize)
	assert.Equal(t, "3.0.1", doc.Version)
	assert.Equal(t, "Minimal API", doc.Title())
	assert.NotNil(t, doc.Root)
	assert.Positive(t, doc.LoadTime)
}

func TestLoadFixture(t *testing.T) {
	doc, err := Load("../testdata/esign-3.0.yaml")
	require.NoError(t, err)

	assert.Equal(t, "3.0.1", doc.Version)
	assert.Equal(t, "Envelope Service", doc.Title())

	stats := doc.Stats()
	assert.Equal(t, 2, stats.PathCount)
	assert.Equal(t, 3, stats.OperationCount)
	assert.Equal(t, 5, stats.SchemaCount)
}

func TestLoadJSONFile(t *testing.T) {
	path := writeTemp(t, "api.json", minimalJSON)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, doc.SourceFormat)
	assert.Equal(t, "3.0.1", doc.Version)
}

func TestLoadUnknownExtensionDetectsFromContent(t *testing.T) {
	path := writeTemp(t, "api.txt", minimalJSON)

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, SourceFormatJSON, doc.SourceFormat)
}

func TestLoadBytes(t *testing.T) {
	doc, err := New().LoadBytes([]byte(minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "LoadBytes.yaml", doc.SourcePath)
	assert.Equal(t, SourceFormatYAML, doc.SourceFormat)
	assert.Equal(t, "3.0.1", doc.Version)
}

func TestLoadReader(t *testing.T) {
	doc, err := New().LoadReader(strings.NewReader(minimalJSON))
	require.NoError(t, err)

	assert.Equal(t, "LoadReader.json", doc.SourcePath)
	assert.Equal(t, SourceFormatJSON, doc.SourceFormat)
}

func TestLoadWithOptions(t *testing.T) {
	t.Run("bytes with source name", func(t *testing.T) {
		doc, err := LoadWithOptions(
			WithBytes([]byte(minimalYAML)),
			WithSourceName("envelope.yaml"),
		)
		require.NoError(t, err)
		assert.Equal(t, "envelope.yaml", doc.SourcePath)
	})

	t.Run("file path", func(t *testing.T) {
		path := writeTemp(t, "api.yaml", minimalYAML)
		doc, err := LoadWithOptions(WithFilePath(path))
		require.NoError(t, err)
		assert.Equal(t, path, doc.SourcePath)
	})

	t.Run("reader", func(t *testing.T) {
		doc, err := LoadWithOptions(WithReader(strings.NewReader(minimalYAML)))
		require.NoError(t, err)
		assert.Equal(t, "3.0.1", doc.Version)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := LoadWithOptions()
		require.Error(t, err)
		assert.True(t, errors.Is(err, specerrors.ErrConfig))
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load("no/such/file.yaml")
		require.Error(t, err)
		assert.True(t, errors.Is(err, specerrors.ErrParse))

		var parseErr *specerrors.ParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "no/such/file.yaml", parseErr.Path)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := New().LoadBytes([]byte("a: [unclosed\n"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, specerrors.ErrParse))
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := New().LoadBytes([]byte("   \n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty document")
	})

	t.Run("comment-only document", func(t *testing.T) {
		_, err := New().LoadBytes([]byte("# nothing here\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty document")
	})

	t.Run("null document", func(t *testing.T) {
		_, err := New().LoadBytes([]byte("null\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty document")
	})

	t.Run("sequence root", func(t *testing.T) {
		_, err := New().LoadBytes([]byte("- a\n- b\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root must be a mapping")
	})

	t.Run("scalar root", func(t *testing.T) {
		_, err := New().LoadBytes([]byte(`"just a string"`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root must be a mapping")
	})
}

func TestLoadExpandsAliases(t *testing.T) {
	src := `openapi: 3.0.1
info:
  title: Anchored
  version: 1.0.0
components:
  schemas:
    base: &id
      type: string
      format: uuid
    envelopeId: *id
`
	doc, err := New().LoadBytes([]byte(src))
	require.NoError(t, err)

	schemas := MapGet(MapGet(doc.Root, "components"), "schemas")
	envelopeID := MapGet(schemas, "envelopeId")
	require.NotNil(t, envelopeID)
	assert.Equal(t, "uuid", ScalarValue(MapGet(envelopeID, "format")))

	assertNoAnchorsOrAliases(t, doc.Root)
}

// assertNoAnchorsOrAliases walks a tree checking that loading left no
// anchors or alias nodes behind.
func assertNoAnchorsOrAliases(t *testing.T, n *yaml.Node) {
	t.Helper()
	if n == nil {
		return
	}
	assert.Empty(t, n.Anchor, "anchor should be cleared")
	assert.NotEqual(t, yaml.AliasNode, n.Kind, "alias should be expanded")
	for _, child := range n.Content {
		assertNoAnchorsOrAliases(t, child)
	}
}

func TestLoadRejectsRecursiveAlias(t *testing.T) {
	src := `a: &loop
  b: *loop
`
	_, err := New().LoadBytes([]byte(src))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursive alias")
}

func TestLoadUTF16(t *testing.T) {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
	data, err := enc.Bytes([]byte(minimalYAML))
	require.NoError(t, err)

	doc, err := New().LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "3.0.1", doc.Version)
}

func TestLoadUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, minimalYAML...)

	doc, err := New().LoadBytes(data)
	require.NoError(t, err)
	assert.Equal(t, "Minimal API", doc.Title())
}
