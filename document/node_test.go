package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.yaml.in/yaml/v4"
)

// mustBody parses YAML source and returns the document body node.
func mustBody(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &root))
	body := Unwrap(&root)
	require.NotNil(t, body)
	return body
}

func TestMapGet(t *testing.T) {
	body := mustBody(t, "title: Envelope API\nversion: 2.1.0\n")

	assert.Equal(t, "Envelope API", ScalarValue(MapGet(body, "title")))
	assert.Equal(t, "2.1.0", ScalarValue(MapGet(body, "version")))
	assert.Nil(t, MapGet(body, "missing"))
	assert.Nil(t, MapGet(nil, "title"))

	scalar := StringNode("not a mapping")
	assert.Nil(t, MapGet(scalar, "title"))
}

func TestMapSetDictSemantics(t *testing.T) {
	t.Run("new key appended", func(t *testing.T) {
		body := mustBody(t, "a: 1\nb: 2\n")
		MapSet(body, "c", StringNode("3"))
		assert.Equal(t, []string{"a", "b", "c"}, MapKeys(body))
	})

	t.Run("existing key keeps position and takes new value", func(t *testing.T) {
		body := mustBody(t, "a: 1\nb: 2\nc: 3\n")
		MapSet(body, "b", StringNode("updated"))
		assert.Equal(t, []string{"a", "b", "c"}, MapKeys(body))
		assert.Equal(t, "updated", ScalarValue(MapGet(body, "b")))
	})

	t.Run("non-mapping target ignored", func(t *testing.T) {
		scalar := StringNode("x")
		MapSet(scalar, "a", StringNode("1"))
		assert.Empty(t, scalar.Content)
	})
}

func TestMapSetNodeKeepsKeyTag(t *testing.T) {
	// Response status codes parse as integers in YAML; reusing the key node
	// must not restringify them.
	body := mustBody(t, "200: ok\n")
	key := body.Content[0]
	require.Equal(t, tagInt, key.Tag)

	out := NewMapping()
	MapSetNode(out, key, StringNode("converted"))
	assert.Equal(t, tagInt, out.Content[0].Tag)
	assert.Equal(t, "200", out.Content[0].Value)
}

func TestMapDelete(t *testing.T) {
	body := mustBody(t, "a: 1\nb: 2\nc: 3\n")

	assert.True(t, MapDelete(body, "b"))
	assert.Equal(t, []string{"a", "c"}, MapKeys(body))
	assert.False(t, MapDelete(body, "b"))
	assert.False(t, MapDelete(nil, "a"))
}

func TestMapKeysOrder(t *testing.T) {
	body := mustBody(t, "zebra: 1\nalpha: 2\nmiddle: 3\n")
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, MapKeys(body))
	assert.Nil(t, MapKeys(nil))
	assert.Equal(t, 3, MapLen(body))
	assert.Equal(t, 0, MapLen(StringNode("scalar")))
}

func TestClone(t *testing.T) {
	t.Run("deep copy shares no nodes", func(t *testing.T) {
		body := mustBody(t, "info:\n  title: Original\n")
		copied := Clone(body)

		MapSet(MapGet(copied, "info"), "title", StringNode("Changed"))
		assert.Equal(t, "Original", ScalarValue(MapGet(MapGet(body, "info"), "title")))
		assert.Equal(t, "Changed", ScalarValue(MapGet(MapGet(copied, "info"), "title")))
	})

	t.Run("resolves aliases and strips anchors", func(t *testing.T) {
		body := mustBody(t, "base: &shared\n  kind: envelope\nother: *shared\n")
		copied := Clone(body)

		other := MapGet(copied, "other")
		require.NotNil(t, other)
		assert.Equal(t, yaml.MappingNode, other.Kind)
		assert.Equal(t, "envelope", ScalarValue(MapGet(other, "kind")))
		assert.Empty(t, MapGet(copied, "base").Anchor)
	})

	t.Run("nil returns nil", func(t *testing.T) {
		assert.Nil(t, Clone(nil))
	})
}

func TestScalarValue(t *testing.T) {
	body := mustBody(t, "name: accountId\n")
	assert.Equal(t, "accountId", ScalarValue(MapGet(body, "name")))
	assert.Equal(t, "", ScalarValue(nil))
	assert.Equal(t, "", ScalarValue(body))
}

func TestIsNull(t *testing.T) {
	body := mustBody(t, "explicit: null\ntilde: ~\nvalue: something\n")
	assert.True(t, IsNull(MapGet(body, "explicit")))
	assert.True(t, IsNull(MapGet(body, "tilde")))
	assert.False(t, IsNull(MapGet(body, "value")))
	assert.False(t, IsNull(nil))
}

func TestIsTruthy(t *testing.T) {
	body := mustBody(t, `
nullValue: null
emptyString: ""
fullString: hello
falseBool: false
trueBool: true
zeroInt: 0
oneInt: 1
zeroFloat: 0.0
someFloat: 2.5
emptyMap: {}
fullMap: {a: 1}
emptySeq: []
fullSeq: [1]
`)

	tests := []struct {
		key  string
		want bool
	}{
		{"nullValue", false},
		{"emptyString", false},
		{"fullString", true},
		{"falseBool", false},
		{"trueBool", true},
		{"zeroInt", false},
		{"oneInt", true},
		{"zeroFloat", false},
		{"someFloat", true},
		{"emptyMap", false},
		{"fullMap", true},
		{"emptySeq", false},
		{"fullSeq", true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTruthy(MapGet(body, tt.key)))
		})
	}

	assert.False(t, IsTruthy(nil), "nil node is falsy")
	assert.False(t, IsTruthy(MapGet(body, "missing")), "absent key is falsy")
}

func TestIsExtensionKey(t *testing.T) {
	assert.True(t, IsExtensionKey("x-nullable"))
	assert.True(t, IsExtensionKey("x-ms-visibility"))
	assert.False(t, IsExtensionKey("nullable"))
	assert.False(t, IsExtensionKey(""))
	assert.False(t, IsExtensionKey("ax-"))
}

func TestNodeConstructors(t *testing.T) {
	m := NewMapping()
	assert.Equal(t, yaml.MappingNode, m.Kind)
	assert.Equal(t, tagMap, m.Tag)
	assert.Empty(t, m.Content)

	seq := NewSequence(StringNode("a"), StringNode("b"))
	assert.Equal(t, yaml.SequenceNode, seq.Kind)
	require.Len(t, seq.Content, 2)
	assert.Equal(t, "b", seq.Content[1].Value)

	s := StringNode("body")
	assert.Equal(t, yaml.ScalarNode, s.Kind)
	assert.Equal(t, tagString, s.Tag)
	assert.Equal(t, "body", s.Value)

	b := BoolNode(true)
	assert.Equal(t, tagBool, b.Tag)
	assert.Equal(t, "true", b.Value)

	ss := StringSequence("application/json", "application/xml")
	require.Len(t, ss.Content, 2)
	assert.Equal(t, "application/json", ss.Content[0].Value)
	assert.Equal(t, tagString, ss.Content[0].Tag)
}

func TestUnwrap(t *testing.T) {
	var root yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a: 1\n"), &root))
	require.Equal(t, yaml.DocumentNode, root.Kind)

	body := Unwrap(&root)
	assert.Equal(t, yaml.MappingNode, body.Kind)
	assert.Same(t, body, Unwrap(body), "non-document nodes pass through")
	assert.Nil(t, Unwrap(nil))
}
