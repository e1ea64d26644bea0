// Package document loads, inspects, and serializes API description
// documents as ordered trees.
//
// Documents are represented as *yaml.Node trees (go.yaml.in/yaml/v4) rather
// than typed models or map[string]any. The node tree preserves three things
// a conversion pipeline must not lose:
//
//   - mapping key order, which survives into the serialized output
//   - unknown and vendor-extension keys, carried verbatim
//   - scalar tags, so "2.0" (string) and 2.0 (float) stay distinct
//
// # Loading
//
//	doc, err := document.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(doc.Version, doc.SourceFormat)
//
// Sources may be file paths, readers, or byte slices (see LoadWithOptions).
// The format is detected from the file extension first, then from content.
// UTF-8 and UTF-16 input (with or without byte order marks) is accepted;
// everything is normalized to UTF-8 before parsing.
//
// # Tree helpers
//
// The package exposes the small set of ordered-tree operations the converter
// and callers need: MapGet, MapSet, MapDelete for mapping nodes, Clone for
// aliasing-safe deep copies, and scalar constructors. Mapping nodes store
// pairs as a flat Content slice:
//
//	for i := 0; i+1 < len(node.Content); i += 2 {
//		key, value := node.Content[i], node.Content[i+1]
//		// ...
//	}
//
// # Serializing
//
// Marshal emits YAML (2-space indent) or indented JSON with key order
// intact. The original text formatting (comments, quoting style, line
// breaks) is not preserved; key order and values are.
package document
