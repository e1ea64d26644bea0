package converter

import (
	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/issues"
)

// operationCopyKeys are the operation fields copied verbatim, in emission
// order.
var operationCopyKeys = []string{"tags", "summary", "description", "operationId", "deprecated", "security", "externalDocs"}

// pathItemMethods are the HTTP methods recognized on a path item, in the
// fixed order they are emitted.
var pathItemMethods = []string{"get", "put", "post", "delete", "options", "head", "patch"}

// convertOperation converts one HTTP-method operation: verbatim metadata
// first, then converted parameters with any request body appended as a body
// parameter, converted responses, sorted consumes/produces, and finally the
// extension keys, with callbacks and servers preserved under x- names.
func (c *Converter) convertOperation(operation *yaml.Node, result *Result, opPath string) *yaml.Node {
	out := document.NewMapping()
	operation = document.Resolve(operation)
	if operation == nil || operation.Kind != yaml.MappingNode {
		document.MapSet(out, "responses", document.NewMapping())
		return out
	}

	for _, key := range operationCopyKeys {
		if value := document.MapGet(operation, key); value != nil {
			document.MapSet(out, key, document.Clone(value))
		}
	}

	parameters := document.NewSequence()
	if declared := document.Resolve(document.MapGet(operation, "parameters")); declared != nil && declared.Kind == yaml.SequenceNode {
		for i, param := range declared.Content {
			parameters.Content = append(parameters.Content,
				c.convertParameter(param, result, issues.IndexedPath(issues.FormatPath(opPath, "parameters"), i)))
		}
	}

	var consumes []string
	if requestBody := document.MapGet(operation, "requestBody"); requestBody != nil {
		bodyParam, bodyConsumes := c.convertRequestBody(requestBody, result, issues.FormatPath(opPath, "requestBody"))
		if document.MapLen(bodyParam) > 0 {
			parameters.Content = append(parameters.Content, bodyParam)
		}
		consumes = append(consumes, bodyConsumes...)
	}

	if len(parameters.Content) > 0 {
		document.MapSet(out, "parameters", parameters)
	}

	responses, produces := c.convertResponses(document.MapGet(operation, "responses"), result, issues.FormatPath(opPath, "responses"))
	document.MapSet(out, "responses", responses)

	if len(consumes) > 0 {
		document.MapSet(out, "consumes", document.StringSequence(sortedUnique(consumes)...))
	}
	if len(produces) > 0 {
		document.MapSet(out, "produces", document.StringSequence(sortedUnique(produces)...))
	}

	for i := 0; i+1 < len(operation.Content); i += 2 {
		key, value := operation.Content[i], operation.Content[i+1]
		switch {
		case document.IsExtensionKey(key.Value):
			document.MapSetNode(out, document.Clone(key), document.Clone(value))
		case key.Value == "callbacks":
			document.MapSet(out, "x-callbacks", document.Clone(value))
		case key.Value == "servers":
			document.MapSet(out, "x-servers", document.Clone(value))
		}
	}

	return out
}

// convertPathItem converts one URL path: shared parameters first, then each
// recognized method in fixed order, then extension keys with a path-level
// servers override preserved as x-servers. TRACE operations have no Swagger
// 2.0 equivalent and are dropped with a critical issue.
func (c *Converter) convertPathItem(pathItem *yaml.Node, result *Result, pathPrefix string) *yaml.Node {
	out := document.NewMapping()
	pathItem = document.Resolve(pathItem)
	if pathItem == nil || pathItem.Kind != yaml.MappingNode {
		return out
	}

	if declared := document.Resolve(document.MapGet(pathItem, "parameters")); declared != nil {
		parameters := document.NewSequence()
		if declared.Kind == yaml.SequenceNode {
			for i, param := range declared.Content {
				parameters.Content = append(parameters.Content,
					c.convertParameter(param, result, issues.IndexedPath(issues.FormatPath(pathPrefix, "parameters"), i)))
			}
		}
		document.MapSet(out, "parameters", parameters)
	}

	for _, method := range pathItemMethods {
		if operation := document.MapGet(pathItem, method); operation != nil {
			document.MapSet(out, method, c.convertOperation(operation, result, issues.FormatPath(pathPrefix, method)))
		}
	}
	if document.MapGet(pathItem, "trace") != nil {
		c.addIssue(result, issues.FormatPath(pathPrefix, "trace"),
			"TRACE operations cannot be represented and were dropped", SeverityCritical)
	}

	for i := 0; i+1 < len(pathItem.Content); i += 2 {
		key, value := pathItem.Content[i], pathItem.Content[i+1]
		switch {
		case document.IsExtensionKey(key.Value):
			document.MapSetNode(out, document.Clone(key), document.Clone(value))
		case key.Value == "servers":
			document.MapSet(out, "x-servers", document.Clone(value))
		}
	}

	return out
}
