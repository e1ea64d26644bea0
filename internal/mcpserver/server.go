// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the downspec converter as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/downspec/downspec"
)

const serverInstructions = `downspec MCP server — converts OpenAPI 3.0 documents to Swagger 2.0 and inspects their structure.

Configuration: All defaults are configurable via DOWNSPEC_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- DOWNSPEC_CACHE_ENABLED (default: true) — disable document caching entirely
- DOWNSPEC_CACHE_MAX_SIZE (default: 10) — maximum cached documents
- DOWNSPEC_CACHE_FILE_TTL (default: 15m) — cache TTL for local file documents
- DOWNSPEC_CACHE_CONTENT_TTL (default: 15m) — cache TTL for inline content
- DOWNSPEC_MAX_INLINE_SIZE (default: 10485760) — maximum inline content bytes
- DOWNSPEC_CONVERT_STRICT (default: false) — fail conversions on warnings by default
- DOWNSPEC_CONVERT_INCLUDE_INFO (default: true) — include informational issues by default

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change). Inline content is keyed by hash. A background sweeper removes expired entries every 60s.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "downspec", Version: downspec.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert an OpenAPI 3.0 document to Swagger 2.0. Returns the converted document in the source format (YAML or JSON) plus the list of conversion issues with severity and location. Lossy steps (extra servers, extra media types, trace operations) are deterministic and always reported. Use strict=true to fail on any warning; use include_info=false to drop informational issues. Defaults are configurable via DOWNSPEC_CONVERT_STRICT and DOWNSPEC_CONVERT_INCLUDE_INFO env vars.",
	}, handleConvert)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Inspect an OpenAPI or Swagger document without converting it. Returns a structural summary: title, declared version, detected format, source size, and path/operation/schema counts.",
	}, handleInspect)
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
