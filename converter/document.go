package converter

import (
	"fmt"

	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/issues"
)

// swaggerVersion is the fixed version marker written to converted documents.
const swaggerVersion = "2.0"

// defaultMediaType seeds the root-level consumes and produces lists.
const defaultMediaType = "application/json"

// rootCopyKeys are the root fields copied verbatim when non-empty, in
// emission order.
var rootCopyKeys = []string{"tags", "externalDocs", "security"}

// connectorMetadata returns the fixed categorization block attached to every
// converted document.
func connectorMetadata() *yaml.Node {
	out := document.NewMapping()
	document.MapSet(out, "categories", document.StringSequence("eSignature"))
	document.MapSet(out, "visibility", document.StringNode("important"))
	return out
}

// convertDocument assembles the Swagger 2.0 root from an OpenAPI 3.0 root.
// Key order is fixed: version marker, info, default media types, connector
// metadata, host/basePath/schemes from the first server, passthrough
// metadata, component sections, paths, and top-level extensions last.
func (c *Converter) convertDocument(src *yaml.Node, result *Result) *yaml.Node {
	out := document.NewMapping()
	document.MapSet(out, "swagger", document.StringNode(swaggerVersion))

	info := document.Clone(document.MapGet(src, "info"))
	if info == nil {
		info = document.NewMapping()
	}
	document.MapSet(out, "info", info)
	document.MapSet(out, "consumes", document.StringSequence(defaultMediaType))
	document.MapSet(out, "produces", document.StringSequence(defaultMediaType))
	document.MapSet(out, "x-ms-connector-metadata", connectorMetadata())

	if servers := document.Resolve(document.MapGet(src, "servers")); servers != nil && servers.Kind == yaml.SequenceNode && len(servers.Content) > 0 {
		if len(servers.Content) > 1 {
			c.addIssueWithContext(result, "servers",
				fmt.Sprintf("%d servers declared; only the first is converted", len(servers.Content)),
				"Swagger 2.0 documents describe a single host")
		}
		host, basePath, schemes := splitServerURL(serverURL(servers.Content[0]))
		if host != "" {
			document.MapSet(out, "host", document.StringNode(host))
		}
		if basePath != "" && basePath != "/" {
			document.MapSet(out, "basePath", document.StringNode(basePath))
		}
		if len(schemes) > 0 {
			document.MapSet(out, "schemes", document.StringSequence(schemes...))
		}
	}

	for _, key := range rootCopyKeys {
		if value := document.MapGet(src, key); document.IsTruthy(value) {
			document.MapSet(out, key, document.Clone(value))
		}
	}

	c.convertComponents(document.MapGet(src, "components"), out, result)

	paths := document.NewMapping()
	if srcPaths := document.Resolve(document.MapGet(src, "paths")); srcPaths != nil && srcPaths.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(srcPaths.Content); i += 2 {
			pathKey := srcPaths.Content[i]
			document.MapSetNode(paths, document.Clone(pathKey),
				c.convertPathItem(srcPaths.Content[i+1], result, issues.FormatPath("paths", pathKey.Value)))
		}
	}
	document.MapSet(out, "paths", paths)

	for i := 0; i+1 < len(src.Content); i += 2 {
		if document.IsExtensionKey(src.Content[i].Value) {
			document.MapSetNode(out, document.Clone(src.Content[i]), document.Clone(src.Content[i+1]))
		}
	}

	return out
}
