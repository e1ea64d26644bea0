package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/downspec/downspec/document"
)

type inspectInput struct {
	Doc documentInput `json:"doc" jsonschema:"The OpenAPI or Swagger document to inspect"`
}

type inspectServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type inspectOutput struct {
	Title          string          `json:"title"`
	Description    string          `json:"description,omitempty"`
	Version        string          `json:"version"`
	Format         string          `json:"format"`
	SourceSize     int64           `json:"source_size"`
	PathCount      int             `json:"path_count"`
	OperationCount int             `json:"operation_count"`
	SchemaCount    int             `json:"schema_count"`
	Servers        []inspectServer `json:"servers,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
}

func handleInspect(_ context.Context, _ *mcp.CallToolRequest, input inspectInput) (*mcp.CallToolResult, inspectOutput, error) {
	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), inspectOutput{}, nil
	}

	stats := doc.Stats()
	output := inspectOutput{
		Title:          doc.Title(),
		Version:        doc.Version,
		Format:         string(doc.SourceFormat),
		SourceSize:     doc.SourceSize,
		PathCount:      stats.PathCount,
		OperationCount: stats.OperationCount,
		SchemaCount:    stats.SchemaCount,
	}

	info := document.MapGet(doc.Root, "info")
	output.Description = document.ScalarValue(document.MapGet(info, "description"))

	if servers := document.Resolve(document.MapGet(doc.Root, "servers")); servers != nil {
		for _, server := range servers.Content {
			output.Servers = append(output.Servers, inspectServer{
				URL:         document.ScalarValue(document.MapGet(server, "url")),
				Description: document.ScalarValue(document.MapGet(server, "description")),
			})
		}
	}

	if tags := document.Resolve(document.MapGet(doc.Root, "tags")); tags != nil {
		for _, tag := range tags.Content {
			if name := document.ScalarValue(document.MapGet(tag, "name")); name != "" {
				output.Tags = append(output.Tags, name)
			}
		}
	}

	return nil, output, nil
}
