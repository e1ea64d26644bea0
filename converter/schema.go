package converter

import (
	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
)

// parameterFields is the allow-list of keys kept when a schema is flattened
// into inline parameter constraints, in emission order.
var parameterFields = []string{
	"type",
	"format",
	"default",
	"maximum",
	"exclusiveMaximum",
	"minimum",
	"exclusiveMinimum",
	"maxLength",
	"minLength",
	"pattern",
	"maxItems",
	"minItems",
	"uniqueItems",
	"multipleOf",
	"enum",
	"collectionFormat",
	"x-nullable",
	"x-deprecated",
	"x-example",
	"x-examples",
}

// convertSchema recursively rewrites a schema subtree into its Swagger 2.0
// form. Mappings are rebuilt key by key, sequences element-wise, and scalars
// cloned unchanged, so the result never aliases the input tree.
//
// Per-key rules: $ref values are rewritten, nullable becomes x-nullable only
// when true, deprecated/discriminator/examples are renamed to their x- forms
// verbatim, composition keywords (allOf/anyOf/oneOf/not) are renamed to x-
// forms with converted elements, items/additionalProperties/properties/
// patternProperties recurse under the same key, example and xml pass through
// untouched, and any other key recurses into its value.
func convertSchema(schema *yaml.Node) *yaml.Node {
	schema = document.Resolve(schema)
	if schema == nil {
		return nil
	}
	if schema.Kind == yaml.SequenceNode {
		out := document.NewSequence()
		for _, item := range schema.Content {
			out.Content = append(out.Content, convertSchema(item))
		}
		return out
	}
	if schema.Kind != yaml.MappingNode {
		return document.Clone(schema)
	}

	out := document.NewMapping()
	for i := 0; i+1 < len(schema.Content); i += 2 {
		key, value := schema.Content[i], schema.Content[i+1]
		switch key.Value {
		case "$ref":
			if ref := document.ScalarValue(value); ref != "" {
				document.MapSet(out, "$ref", document.StringNode(RewriteRef(ref)))
			} else {
				document.MapSet(out, "$ref", document.Clone(value))
			}
		case "nullable":
			if document.IsTruthy(value) {
				document.MapSet(out, "x-nullable", document.BoolNode(true))
			}
		case "deprecated":
			document.MapSet(out, "x-deprecated", document.Clone(value))
		case "discriminator":
			document.MapSet(out, "x-discriminator", document.Clone(value))
		case "example":
			document.MapSet(out, "example", document.Clone(value))
		case "examples":
			document.MapSet(out, "x-examples", document.Clone(value))
		case "allOf", "anyOf", "oneOf", "not":
			document.MapSet(out, "x-"+key.Value, convertSchema(value))
		case "items", "additionalProperties":
			document.MapSet(out, key.Value, convertSchema(value))
		case "properties", "patternProperties":
			document.MapSet(out, key.Value, convertSchemaMap(value))
		case "xml":
			document.MapSet(out, "xml", document.Clone(value))
		default:
			document.MapSetNode(out, document.Clone(key), convertSchema(value))
		}
	}
	return out
}

// convertSchemaMap converts each value of a name-to-schema mapping, leaving
// the names untouched. Non-mapping nodes are cloned as-is.
func convertSchemaMap(schemas *yaml.Node) *yaml.Node {
	schemas = document.Resolve(schemas)
	if schemas == nil || schemas.Kind != yaml.MappingNode {
		return document.Clone(schemas)
	}
	out := document.NewMapping()
	for i := 0; i+1 < len(schemas.Content); i += 2 {
		document.MapSetNode(out, document.Clone(schemas.Content[i]), convertSchema(schemas.Content[i+1]))
	}
	return out
}

// extractParameterFields flattens an already-converted schema into the inline
// constraint fields a Swagger 2.0 parameter carries. Array schemas extract
// their items first, then allow-listed fields follow in a fixed order, then
// any remaining vendor extensions in declaration order. Structural keys
// outside the allow-list are dropped.
func extractParameterFields(schema *yaml.Node) *yaml.Node {
	out := document.NewMapping()
	schema = document.Resolve(schema)
	if schema == nil || schema.Kind != yaml.MappingNode {
		return out
	}

	items := document.Resolve(document.MapGet(schema, "items"))
	if document.ScalarValue(document.MapGet(schema, "type")) == "array" &&
		items != nil && items.Kind == yaml.MappingNode {
		document.MapSet(out, "items", extractParameterFields(items))
	}

	for _, field := range parameterFields {
		if value := document.MapGet(schema, field); value != nil {
			document.MapSet(out, field, document.Clone(value))
		}
	}

	for i := 0; i+1 < len(schema.Content); i += 2 {
		key := schema.Content[i].Value
		if document.IsExtensionKey(key) && document.MapGet(out, key) == nil {
			document.MapSet(out, key, document.Clone(schema.Content[i+1]))
		}
	}
	return out
}
