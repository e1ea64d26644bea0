package document

import (
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Scalar tags assigned by the YAML resolver.
const (
	tagString = "!!str"
	tagInt    = "!!int"
	tagFloat  = "!!float"
	tagBool   = "!!bool"
	tagNull   = "!!null"
	tagMap    = "!!map"
	tagSeq    = "!!seq"
)

// Resolve follows an alias node to its target. Non-alias nodes return
// themselves. Trees produced by this package's loader are already
// alias-free; Resolve guards helpers against hand-built trees.
func Resolve(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		return n.Alias
	}
	return n
}

// Unwrap returns the body of a document node, or the node itself when it is
// already a body node.
func Unwrap(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

// MapGet returns the value node for key in a mapping node, or nil when the
// node is not a mapping or the key is absent.
func MapGet(n *yaml.Node, key string) *yaml.Node {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}

// MapSet writes key/value into a mapping node with dictionary semantics: an
// existing key keeps its position and takes the new value, a new key is
// appended at the end.
func MapSet(m *yaml.Node, key string, value *yaml.Node) {
	MapSetNode(m, StringNode(key), value)
}

// MapSetNode is MapSet with a caller-supplied key node, preserving the key's
// scalar tag (a status code parsed as an integer stays an integer key).
func MapSetNode(m, key, value *yaml.Node) {
	if m == nil || m.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key.Value {
			m.Content[i+1] = value
			return
		}
	}
	m.Content = append(m.Content, key, value)
}

// MapDelete removes key from a mapping node, reporting whether it was present.
func MapDelete(m *yaml.Node, key string) bool {
	if m == nil || m.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			m.Content = append(m.Content[:i], m.Content[i+2:]...)
			return true
		}
	}
	return false
}

// MapLen returns the number of key/value pairs in a mapping node.
func MapLen(n *yaml.Node) int {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return 0
	}
	return len(n.Content) / 2
}

// MapKeys returns the mapping's keys in declaration order.
func MapKeys(n *yaml.Node) []string {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	keys := make([]string, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		keys = append(keys, n.Content[i].Value)
	}
	return keys
}

// NewMapping returns an empty mapping node.
func NewMapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: tagMap}
}

// NewSequence returns a sequence node holding the given items.
func NewSequence(items ...*yaml.Node) *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: tagSeq, Content: items}
}

// StringNode returns a string scalar node.
func StringNode(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagString, Value: value}
}

// BoolNode returns a boolean scalar node.
func BoolNode(value bool) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tagBool, Value: strconv.FormatBool(value)}
}

// StringSequence returns a sequence node of string scalars.
func StringSequence(values ...string) *yaml.Node {
	seq := NewSequence()
	for _, v := range values {
		seq.Content = append(seq.Content, StringNode(v))
	}
	return seq
}

// Clone returns a deep copy of a node with anchors, comments, styles, and
// source positions stripped. Alias nodes are replaced by a copy of their
// target, so clones never depend on anchors defined elsewhere.
func Clone(n *yaml.Node) *yaml.Node {
	n = Resolve(n)
	if n == nil {
		return nil
	}
	out := &yaml.Node{
		Kind:  n.Kind,
		Tag:   n.Tag,
		Value: n.Value,
	}
	if len(n.Content) > 0 {
		out.Content = make([]*yaml.Node, len(n.Content))
		for i, child := range n.Content {
			out.Content[i] = Clone(child)
		}
	}
	return out
}

// ScalarValue returns the scalar value of a node, or "" when the node is nil
// or not a scalar.
func ScalarValue(n *yaml.Node) string {
	n = Resolve(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// IsNull reports whether a node is an explicit YAML null.
func IsNull(n *yaml.Node) bool {
	n = Resolve(n)
	return n != nil && n.Kind == yaml.ScalarNode && n.Tag == tagNull
}

// IsTruthy reports whether a node carries a non-empty, non-zero value:
// mappings and sequences with at least one element, non-empty strings, true
// booleans, non-zero numbers. Nil nodes and explicit nulls are falsy. The
// converter uses this for fields where an empty value counts as absent,
// such as descriptions and schemas.
func IsTruthy(n *yaml.Node) bool {
	n = Resolve(n)
	if n == nil {
		return false
	}
	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode, yaml.DocumentNode:
		return len(n.Content) > 0
	case yaml.ScalarNode:
		switch n.Tag {
		case tagNull:
			return false
		case tagBool:
			return strings.EqualFold(n.Value, "true")
		case tagInt:
			v, err := strconv.ParseInt(n.Value, 0, 64)
			return err != nil || v != 0
		case tagFloat:
			v, err := strconv.ParseFloat(n.Value, 64)
			return err != nil || v != 0
		default:
			return n.Value != ""
		}
	}
	return true
}

// IsExtensionKey reports whether key names a vendor extension (x- prefix).
func IsExtensionKey(key string) bool {
	return strings.HasPrefix(key, "x-")
}
