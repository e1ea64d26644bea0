package converter

import (
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
)

// copyExtensions copies every vendor-extension key from src into dst in
// declaration order. A key dst already carries keeps its position and takes
// the new value.
func copyExtensions(dst, src *yaml.Node) {
	src = document.Resolve(src)
	if src == nil || src.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(src.Content); i += 2 {
		if document.IsExtensionKey(src.Content[i].Value) {
			document.MapSetNode(dst, document.Clone(src.Content[i]), document.Clone(src.Content[i+1]))
		}
	}
}

// mergeFields writes every pair of src into dst with dictionary semantics.
// src is expected to be a freshly built mapping, so values are adopted
// without cloning.
func mergeFields(dst, src *yaml.Node) {
	if src == nil || src.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(src.Content); i += 2 {
		document.MapSetNode(dst, src.Content[i], src.Content[i+1])
	}
}

// exampleValue unwraps the value field of a named example payload. Payloads
// that are not mappings or carry no value field are used whole.
func exampleValue(payload *yaml.Node) *yaml.Node {
	p := document.Resolve(payload)
	if p != nil && p.Kind == yaml.MappingNode {
		if v := document.MapGet(p, "value"); v != nil {
			return document.Clone(v)
		}
	}
	return document.Clone(payload)
}

// ensureExamples returns the examples mapping of a converted response,
// creating an empty one when absent.
func ensureExamples(response *yaml.Node) *yaml.Node {
	if existing := document.MapGet(response, "examples"); existing != nil {
		return existing
	}
	created := document.NewMapping()
	document.MapSet(response, "examples", created)
	return created
}

// sortedUnique returns the values sorted lexicographically with duplicates
// removed. The input slice is not modified.
func sortedUnique(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
