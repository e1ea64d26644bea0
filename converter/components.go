package converter

import (
	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/issues"
)

// convertComponents converts the reusable-definitions section into the
// corresponding Swagger 2.0 top-level sections, written into dst in fixed
// order: definitions, parameters, responses, securityDefinitions. Absent or
// empty sections are omitted. Reusable request bodies have no Swagger 2.0
// section and are dropped with an informational issue; references to them
// were already rewritten to the #/x-requestBodies/ prefix.
func (c *Converter) convertComponents(components *yaml.Node, dst *yaml.Node, result *Result) {
	components = document.Resolve(components)
	if components == nil || components.Kind != yaml.MappingNode {
		return
	}

	if schemas := document.Resolve(document.MapGet(components, "schemas")); document.IsTruthy(schemas) && schemas.Kind == yaml.MappingNode {
		definitions := document.NewMapping()
		for i := 0; i+1 < len(schemas.Content); i += 2 {
			document.MapSetNode(definitions, document.Clone(schemas.Content[i]), convertSchema(schemas.Content[i+1]))
		}
		document.MapSet(dst, "definitions", definitions)
	}

	if parameters := document.Resolve(document.MapGet(components, "parameters")); document.IsTruthy(parameters) && parameters.Kind == yaml.MappingNode {
		converted := document.NewMapping()
		for i := 0; i+1 < len(parameters.Content); i += 2 {
			name := parameters.Content[i]
			document.MapSetNode(converted, document.Clone(name),
				c.convertParameter(parameters.Content[i+1], result, issues.FormatPath("components", "parameters", name.Value)))
		}
		document.MapSet(dst, "parameters", converted)
	}

	if responses := document.Resolve(document.MapGet(components, "responses")); document.IsTruthy(responses) && responses.Kind == yaml.MappingNode {
		converted := document.NewMapping()
		for i := 0; i+1 < len(responses.Content); i += 2 {
			name := responses.Content[i]
			response, _ := c.convertResponse(responses.Content[i+1], result, issues.FormatPath("components", "responses", name.Value))
			document.MapSetNode(converted, document.Clone(name), response)
		}
		document.MapSet(dst, "responses", converted)
	}

	if requestBodies := document.MapGet(components, "requestBodies"); document.IsTruthy(requestBodies) {
		c.addIssue(result, "components.requestBodies",
			"Reusable request bodies have no Swagger 2.0 section and were dropped; references to them now use the #/x-requestBodies/ prefix",
			SeverityInfo)
	}

	if schemes := document.Resolve(document.MapGet(components, "securitySchemes")); document.IsTruthy(schemes) && schemes.Kind == yaml.MappingNode {
		securityDefinitions := document.NewMapping()
		for i := 0; i+1 < len(schemes.Content); i += 2 {
			name := schemes.Content[i]
			document.MapSetNode(securityDefinitions, document.Clone(name),
				c.convertSecurityScheme(schemes.Content[i+1], result, issues.FormatPath("components", "securitySchemes", name.Value)))
		}
		document.MapSet(dst, "securityDefinitions", securityDefinitions)
	}
}

// convertSecurityScheme rewrites one security scheme. HTTP basic becomes the
// native basic type; HTTP bearer becomes an apiKey header parameter with the
// original scheme recorded under x-original-http-scheme. Every scheme gains
// a default x-ms-visibility when one is not already set.
func (c *Converter) convertSecurityScheme(scheme *yaml.Node, result *Result, path string) *yaml.Node {
	out := document.Clone(scheme)
	if out == nil || out.Kind != yaml.MappingNode {
		return out
	}

	if document.ScalarValue(document.MapGet(out, "type")) == "http" {
		switch document.ScalarValue(document.MapGet(out, "scheme")) {
		case "basic":
			document.MapSet(out, "type", document.StringNode("basic"))
			document.MapDelete(out, "scheme")
		case "bearer":
			document.MapSet(out, "type", document.StringNode("apiKey"))
			if document.MapGet(out, "name") == nil {
				document.MapSet(out, "name", document.StringNode("Authorization"))
			}
			if document.MapGet(out, "in") == nil {
				document.MapSet(out, "in", document.StringNode("header"))
			}
			document.MapSet(out, "x-original-http-scheme", document.StringNode("bearer"))
			document.MapDelete(out, "scheme")
			c.addIssue(result, path,
				"HTTP bearer authentication became an apiKey header parameter", SeverityInfo)
		}
	}

	if document.MapGet(out, "x-ms-visibility") == nil {
		document.MapSet(out, "x-ms-visibility", document.StringNode("important"))
	}
	return out
}
