// Package downspec downgrades OpenAPI 3.0 documents to Swagger 2.0.
//
// downspec converts an OpenAPI 3.0 description into the older Swagger 2.0
// dialect while preserving as much information as possible: fields with a
// direct equivalent are renamed, nested schemas are flattened where the old
// dialect inlines constraints, and concepts Swagger 2.0 cannot express
// natively are carried across as x- vendor extensions instead of being
// dropped.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - document: Load, inspect, and serialize API documents as ordered
//     YAML/JSON trees
//   - converter: Transform an OpenAPI 3.0 document tree into Swagger 2.0
//
// Documents are handled as untyped, order-preserving trees rather than typed
// models. Key order, unknown fields, and vendor extensions survive the round
// trip from source text to converted output, which matters when the result
// is diffed, reviewed, or fed to tooling that is sensitive to extension
// blocks.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/downspec/downspec
//
// # Quick Start
//
// Convert an OpenAPI 3.0 file:
//
//	import "github.com/downspec/downspec/converter"
//
//	result, err := converter.Convert("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, err := result.Document.MarshalYAML()
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile("swagger.yaml", data, 0o644)
//
// Load a document without converting it:
//
//	import "github.com/downspec/downspec/document"
//
//	doc, err := document.Load("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Version: %s\n", doc.Version)
//
// # Conversion Issues
//
// Some OpenAPI 3.0 constructs have no Swagger 2.0 representation. The
// converter never fails on them; it applies a deterministic lossy policy
// (first declared media type wins, first server wins, extensions preserve
// the rest) and records what happened on the result:
//
//	result, err := converter.Convert("openapi.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, issue := range result.Issues {
//		fmt.Println(issue)
//	}
//
// # Command Line
//
// The downspec command wraps the library:
//
//	downspec convert api.yaml            # writes api-swagger.yaml
//	downspec convert -o out.yaml api.yaml
//	downspec inspect api.yaml
//	downspec mcp                         # serve tools over MCP stdio
//
// This root package only carries build metadata (Version, UserAgent); all
// functionality lives in the subpackages.
package downspec
