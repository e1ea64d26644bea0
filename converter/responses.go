package converter

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/issues"
)

// pdfMediaType marks binary document responses that Swagger 2.0 represents
// with a file-typed schema instead of a structural one.
const pdfMediaType = "application/pdf"

// convertHeader converts one response-header declaration: description first,
// then constraint fields flattened from the schema, then vendor extensions.
func convertHeader(header *yaml.Node) *yaml.Node {
	out := document.NewMapping()
	header = document.Resolve(header)
	if header == nil || header.Kind != yaml.MappingNode {
		return out
	}
	if description := document.MapGet(header, "description"); description != nil {
		document.MapSet(out, "description", document.Clone(description))
	}
	if schema := document.MapGet(header, "schema"); document.IsTruthy(schema) {
		mergeFields(out, extractParameterFields(convertSchema(schema)))
	}
	copyExtensions(out, header)
	return out
}

// convertResponses converts a status-code-keyed response map, preserving key
// order and scalar tags (integer status codes stay integers). Returns the
// converted map plus the produced media types in declaration order, one entry
// per response that declares content.
func (c *Converter) convertResponses(responses *yaml.Node, result *Result, path string) (*yaml.Node, []string) {
	out := document.NewMapping()
	responses = document.Resolve(responses)
	if responses == nil || responses.Kind != yaml.MappingNode {
		return out, nil
	}
	var produces []string
	for i := 0; i+1 < len(responses.Content); i += 2 {
		status := responses.Content[i]
		converted, mediaTypes := c.convertResponse(responses.Content[i+1], result, issues.FormatPath(path, status.Value))
		produces = append(produces, mediaTypes...)
		document.MapSetNode(out, document.Clone(status), converted)
	}
	return out, produces
}

// convertResponse converts a single response object. The description is
// always present, defaulting to the empty string. The first declared media
// type is representative: it contributes the schema (a file marker for PDF
// payloads) and keys the collapsed examples mapping.
func (c *Converter) convertResponse(response *yaml.Node, result *Result, path string) (*yaml.Node, []string) {
	out := document.NewMapping()
	response = document.Resolve(response)
	if response == nil || response.Kind != yaml.MappingNode {
		document.MapSet(out, "description", document.StringNode(""))
		return out, nil
	}

	if description := document.MapGet(response, "description"); description != nil {
		document.MapSet(out, "description", document.Clone(description))
	} else {
		document.MapSet(out, "description", document.StringNode(""))
	}

	if headers := document.Resolve(document.MapGet(response, "headers")); document.IsTruthy(headers) && headers.Kind == yaml.MappingNode {
		headerMap := document.NewMapping()
		for i := 0; i+1 < len(headers.Content); i += 2 {
			document.MapSetNode(headerMap, document.Clone(headers.Content[i]), convertHeader(headers.Content[i+1]))
		}
		if document.MapLen(headerMap) > 0 {
			document.MapSet(out, "headers", headerMap)
		}
	}

	var produces []string
	content := document.Resolve(document.MapGet(response, "content"))
	if content != nil && content.Kind == yaml.MappingNode && len(content.Content) >= 2 {
		if document.MapLen(content) > 1 {
			c.addIssueWithContext(result, issues.FormatPath(path, "content"),
				fmt.Sprintf("Response declares %d media types; only the first is converted", document.MapLen(content)),
				"A Swagger 2.0 response carries exactly one schema")
		}

		mediaType := content.Content[0].Value
		mediaObj := content.Content[1]
		produces = append(produces, mediaType)

		if mediaType == pdfMediaType {
			fileSchema := document.NewMapping()
			document.MapSet(fileSchema, "type", document.StringNode("file"))
			document.MapSet(out, "schema", fileSchema)
		} else if schema := document.MapGet(mediaObj, "schema"); document.IsTruthy(schema) {
			document.MapSet(out, "schema", convertSchema(schema))
		}

		if example := document.MapGet(mediaObj, "example"); example != nil && !document.IsNull(example) {
			document.MapSet(ensureExamples(out), mediaType, document.Clone(example))
		}
		if examples := document.Resolve(document.MapGet(mediaObj, "examples")); examples != nil && examples.Kind == yaml.MappingNode {
			dest := ensureExamples(out)
			if document.MapLen(examples) > 1 {
				c.addIssueWithContext(result, issues.FormatPath(path, "content", mediaType, "examples"),
					fmt.Sprintf("%d named examples collapse onto media type %q; the last one wins", document.MapLen(examples), mediaType),
					"Swagger 2.0 keys response examples by media type, not by name")
			}
			for i := 0; i+1 < len(examples.Content); i += 2 {
				document.MapSet(dest, mediaType, exampleValue(examples.Content[i+1]))
			}
		}
	}

	copyExtensions(out, response)
	return out, produces
}
