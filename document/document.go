package document

import (
	"time"

	"go.yaml.in/yaml/v4"
)

// Document is a parsed API description held as an ordered node tree.
//
// Callers should treat a Document as read-only after loading. The converter
// never mutates its input; code that needs to modify a tree in place should
// work on a Copy.
type Document struct {
	// Root is the document body, a mapping node.
	Root *yaml.Node
	// SourcePath is the input path the document was read from. When the
	// source was a reader or byte slice this is the configured source name.
	SourcePath string
	// SourceFormat is the detected text format of the source.
	SourceFormat SourceFormat
	// SourceSize is the size of the source text in bytes.
	SourceSize int64
	// Version is the declared dialect version: the value of the "openapi"
	// key for OpenAPI 3.x documents, or of "swagger" for 2.0 documents.
	Version string
	// LoadTime is the time taken to read and parse the source.
	LoadTime time.Duration
}

// DocumentStats contains statistical information about a document.
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of schemas (3.x) or definitions (2.0)
}

// operationMethods are the path-item keys counted as operations.
var operationMethods = map[string]bool{
	"get":     true,
	"put":     true,
	"post":    true,
	"delete":  true,
	"options": true,
	"head":    true,
	"patch":   true,
	"trace":   true,
}

// detectVersion returns the declared dialect version of a document body.
func detectVersion(root *yaml.Node) string {
	if v := ScalarValue(MapGet(root, "openapi")); v != "" {
		return v
	}
	return ScalarValue(MapGet(root, "swagger"))
}

// Title returns the document's info.title, or "" when absent.
func (d *Document) Title() string {
	return ScalarValue(MapGet(MapGet(d.Root, "info"), "title"))
}

// Stats computes path, operation, and schema counts for the document.
func (d *Document) Stats() DocumentStats {
	var stats DocumentStats

	paths := MapGet(d.Root, "paths")
	stats.PathCount = MapLen(paths)
	if paths != nil {
		for i := 0; i+1 < len(paths.Content); i += 2 {
			item := Resolve(paths.Content[i+1])
			for _, method := range MapKeys(item) {
				if operationMethods[method] {
					stats.OperationCount++
				}
			}
		}
	}

	stats.SchemaCount = MapLen(MapGet(MapGet(d.Root, "components"), "schemas")) +
		MapLen(MapGet(d.Root, "definitions"))

	return stats
}

// Copy returns a deep copy of the document. The copied tree shares no nodes
// with the original, so either side may be modified freely.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}
	out := *d
	out.Root = Clone(d.Root)
	return &out
}
