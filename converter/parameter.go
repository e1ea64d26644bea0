package converter

import (
	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
)

// parameterCopyKeys are the parameter fields copied ahead of any derived
// fields, in emission order. deprecated is renamed to x-deprecated.
var parameterCopyKeys = []string{"name", "in", "description", "required", "deprecated", "allowEmptyValue"}

// convertParameter converts one OpenAPI 3.0 parameter into its Swagger 2.0
// form. Body parameters keep a full converted schema; every other location
// has its schema flattened into inline constraint fields. Vendor extensions
// on the parameter are copied through last so they win over derived fields.
func (c *Converter) convertParameter(param *yaml.Node, result *Result, path string) *yaml.Node {
	out := document.NewMapping()
	param = document.Resolve(param)
	if param == nil || param.Kind != yaml.MappingNode {
		return out
	}

	for _, key := range parameterCopyKeys {
		value := document.MapGet(param, key)
		if value == nil {
			continue
		}
		if key == "deprecated" {
			document.MapSet(out, "x-deprecated", document.Clone(value))
		} else {
			document.MapSet(out, key, document.Clone(value))
		}
	}

	location := document.ScalarValue(document.MapGet(param, "in"))
	if location == "cookie" {
		c.addIssueWithContext(result, path,
			"Cookie parameters have no Swagger 2.0 equivalent",
			"The parameter was kept with in: cookie, which Swagger 2.0 tooling may reject")
	}

	if location == "body" {
		if schema := convertSchema(document.MapGet(param, "schema")); document.IsTruthy(schema) {
			document.MapSet(out, "schema", schema)
		}
		copyExtensions(out, param)
		return out
	}

	if schema := document.MapGet(param, "schema"); document.IsTruthy(schema) {
		converted := convertSchema(schema)
		mergeFields(out, extractParameterFields(converted))
		if example := document.MapGet(converted, "example"); example != nil && document.MapGet(out, "x-example") == nil {
			document.MapSet(out, "x-example", example)
		}
	}

	style := document.ScalarValue(document.MapGet(param, "style"))
	switch {
	case style == "form" && document.IsTruthy(document.MapGet(param, "explode")):
		document.MapSet(out, "collectionFormat", document.StringNode("multi"))
	case style == "form":
		document.MapSet(out, "collectionFormat", document.StringNode("csv"))
	case style == "spaceDelimited":
		document.MapSet(out, "collectionFormat", document.StringNode("ssv"))
	case style == "pipeDelimited":
		document.MapSet(out, "collectionFormat", document.StringNode("pipes"))
	}

	copyExtensions(out, param)
	return out
}
