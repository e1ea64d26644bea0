// Package converter downgrades OpenAPI 3.0 documents to Swagger 2.0.
//
// The conversion is a pure tree-to-tree transformation over the ordered node
// model of the document package: schemas are rewritten recursively, request
// bodies become body parameters, server URLs split into host/basePath/schemes,
// and concepts Swagger 2.0 cannot express natively (nullable, composition
// keywords, callbacks) are preserved as vendor extensions. Output key order is
// deterministic and mirrors the order fields are produced.
//
// # Quick Start
//
// Convert a file using functional options:
//
//	result, err := converter.ConvertWithOptions(
//		converter.WithFilePath("api.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.HasCriticalIssues() {
//		fmt.Printf("%d critical issue(s)\n", result.CriticalCount)
//	}
//
// Or use a reusable Converter instance:
//
//	c := converter.New()
//	c.StrictMode = true
//	result1, _ := c.Convert("api1.yaml")
//	result2, _ := c.Convert("api2.yaml")
//
// # Conversion Issues
//
// The converter tracks three severity levels: Info (conversion choices),
// Warning (lossy conversions), and Critical (features that cannot be
// converted). Lossy steps are deterministic: only the first server, the first
// request-body media type, and the first response media type are
// representative; TRACE operations are dropped; multiple named response
// examples collapse onto a single media-type key. The conversion itself never
// fails over a well-formed 3.0 tree; inspect Result.Issues to decide whether
// the loss is acceptable.
//
// # Writing Output
//
// Result.Document is a regular document tree; serialize it with the format of
// your choice:
//
//	result, _ := converter.Convert("api.yaml")
//	data, _ := result.Document.Marshal(result.SourceFormat)
//	os.WriteFile("api-swagger.yaml", data, 0o644)
package converter
