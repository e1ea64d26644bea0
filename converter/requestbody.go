package converter

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/issues"
)

// convertRequestBody synthesizes a body parameter from a requestBody node.
// The first declared media type is representative; additional media types are
// dropped with a warning. Returns the parameter (an empty mapping when the
// body declares no content) and the consumed media types.
func (c *Converter) convertRequestBody(requestBody *yaml.Node, result *Result, path string) (*yaml.Node, []string) {
	bodyParam := document.NewMapping()
	requestBody = document.Resolve(requestBody)
	if requestBody == nil || requestBody.Kind != yaml.MappingNode {
		return bodyParam, nil
	}

	content := document.Resolve(document.MapGet(requestBody, "content"))
	if content == nil || content.Kind != yaml.MappingNode || len(content.Content) < 2 {
		return bodyParam, nil
	}
	if document.MapLen(content) > 1 {
		c.addIssueWithContext(result, issues.FormatPath(path, "content"),
			fmt.Sprintf("Request body declares %d media types; only the first is converted", document.MapLen(content)),
			"A Swagger 2.0 body parameter carries exactly one schema")
	}

	mediaType := content.Content[0].Value
	mediaObj := content.Content[1]
	consumes := []string{mediaType}

	document.MapSet(bodyParam, "name", document.StringNode("body"))
	document.MapSet(bodyParam, "in", document.StringNode("body"))
	if description := document.MapGet(requestBody, "description"); document.IsTruthy(description) {
		document.MapSet(bodyParam, "description", document.Clone(description))
	}
	if required := document.MapGet(requestBody, "required"); required != nil {
		document.MapSet(bodyParam, "required", document.Clone(required))
	} else {
		document.MapSet(bodyParam, "required", document.BoolNode(false))
	}

	if schema := document.MapGet(mediaObj, "schema"); document.IsTruthy(schema) {
		document.MapSet(bodyParam, "schema", convertSchema(schema))
	}
	if example := document.MapGet(mediaObj, "example"); example != nil && !document.IsNull(example) {
		document.MapSet(bodyParam, "x-example", document.Clone(example))
	}
	if examples := document.Resolve(document.MapGet(mediaObj, "examples")); examples != nil && examples.Kind == yaml.MappingNode {
		extracted := document.NewMapping()
		for i := 0; i+1 < len(examples.Content); i += 2 {
			document.MapSetNode(extracted, document.Clone(examples.Content[i]), exampleValue(examples.Content[i+1]))
		}
		if document.MapLen(extracted) > 0 {
			document.MapSet(bodyParam, "x-examples", extracted)
		}
	}

	copyExtensions(bodyParam, requestBody)
	return bodyParam, consumes
}
