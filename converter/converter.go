package converter

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/issues"
	"github.com/downspec/downspec/internal/severity"
	"github.com/downspec/downspec/specerrors"
)

// Severity indicates the severity level of a conversion issue.
type Severity = severity.Severity

const (
	// SeverityInfo indicates informational messages about conversion choices
	SeverityInfo = severity.SeverityInfo
	// SeverityWarning indicates lossy conversions where a representative value was kept
	SeverityWarning = severity.SeverityWarning
	// SeverityCritical indicates features that cannot be converted (data loss)
	SeverityCritical = severity.SeverityCritical
)

// Issue represents a single conversion issue or limitation.
type Issue = issues.Issue

// Result contains the outcome of converting a document.
type Result struct {
	// Document contains the converted Swagger 2.0 document
	Document *document.Document
	// SourceVersion is the detected OpenAPI version string of the input
	SourceVersion string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat document.SourceFormat
	// SourcePath is the path or synthetic name of the input
	SourcePath string
	// Issues contains all conversion issues in the order they were found
	Issues []Issue
	// InfoCount is the total number of info messages
	InfoCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// CriticalCount is the total number of critical issues
	CriticalCount int
	// Success is true if conversion completed without critical issues
	Success bool
}

// HasCriticalIssues returns true if there are any critical issues.
func (r *Result) HasCriticalIssues() bool {
	return r.CriticalCount > 0
}

// HasWarnings returns true if there are any warnings.
func (r *Result) HasWarnings() bool {
	return r.WarningCount > 0
}

// Converter converts OpenAPI 3.0 documents to Swagger 2.0.
type Converter struct {
	// StrictMode causes conversion to fail on any issues (even warnings)
	StrictMode bool
	// IncludeInfo determines whether to include informational messages
	IncludeInfo bool
	// Logger receives debug output from the document loader.
	// Defaults to the no-op logger when nil.
	Logger document.Logger
}

// New creates a new Converter instance with default settings.
func New() *Converter {
	return &Converter{
		StrictMode:  false,
		IncludeInfo: true,
	}
}

// Convert is a convenience function that converts a single file with default
// settings. It's equivalent to creating a Converter with New() and calling
// Convert().
//
// Example:
//
//	result, err := converter.Convert("api.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if result.HasCriticalIssues() {
//	    // Handle critical issues
//	}
func Convert(path string) (*Result, error) {
	return New().Convert(path)
}

// ConvertWithOptions is a convenience function that converts one input
// described by functional options with default settings.
func ConvertWithOptions(opts ...Option) (*Result, error) {
	return New().ConvertWithOptions(opts...)
}

// Convert loads the document at path and converts it.
func (c *Converter) Convert(path string) (*Result, error) {
	loader := document.New()
	loader.Logger = c.Logger
	doc, err := loader.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading source document: %w", err)
	}
	return c.ConvertDocument(doc)
}

// ConvertWithOptions loads the input described by the options and converts
// it.
//
// Example:
//
//	result, err := converter.ConvertWithOptions(
//	    converter.WithBytes(data),
//	    converter.WithSourceName("api.yaml"),
//	)
func (c *Converter) ConvertWithOptions(opts ...Option) (*Result, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("converter: invalid options: %w", err)
	}

	doc := cfg.document
	if doc == nil {
		loader := &document.Loader{Logger: c.Logger}
		switch {
		case cfg.filePath != nil:
			doc, err = loader.Load(*cfg.filePath)
		case cfg.reader != nil:
			doc, err = loader.LoadReader(cfg.reader)
		default:
			doc, err = loader.LoadBytes(cfg.bytes)
		}
		if err != nil {
			return nil, fmt.Errorf("loading source document: %w", err)
		}
	}

	if cfg.sourceName != nil {
		renamed := *doc
		renamed.SourcePath = *cfg.sourceName
		doc = &renamed
	}

	return c.ConvertDocument(doc)
}

// ConvertDocument converts an already-loaded document. The input tree is not
// modified; the result holds a fully independent document.
func (c *Converter) ConvertDocument(doc *document.Document) (*Result, error) {
	if doc == nil || doc.Root == nil {
		return nil, &specerrors.ConversionError{Message: "document has no content"}
	}
	root := document.Unwrap(doc.Root)
	if root == nil || root.Kind != yaml.MappingNode {
		return nil, &specerrors.ConversionError{Path: doc.SourcePath, Message: "document root must be a mapping"}
	}
	if doc.Version == "" {
		return nil, &specerrors.ConversionError{Path: doc.SourcePath, Message: "document declares no openapi version"}
	}
	if !strings.HasPrefix(doc.Version, "3.") {
		return nil, &specerrors.ConversionError{
			SourceVersion: doc.Version,
			Path:          doc.SourcePath,
			Unsupported:   true,
		}
	}

	result := &Result{
		SourceVersion: doc.Version,
		SourceFormat:  doc.SourceFormat,
		SourcePath:    doc.SourcePath,
		Issues:        make([]Issue, 0),
	}

	converted := c.convertDocument(root, result)

	result.Document = &document.Document{
		Root:         converted,
		SourcePath:   doc.SourcePath,
		SourceFormat: doc.SourceFormat,
		SourceSize:   doc.SourceSize,
		Version:      swaggerVersion,
	}

	c.updateCounts(result)
	result.Success = result.CriticalCount == 0

	// In strict mode, fail on any issues
	if c.StrictMode && (result.CriticalCount > 0 || result.WarningCount > 0) {
		return result, fmt.Errorf("conversion failed in strict mode: %d critical issue(s), %d warning(s)",
			result.CriticalCount, result.WarningCount)
	}

	// Filter info messages if not included
	if !c.IncludeInfo {
		filtered := make([]Issue, 0, len(result.Issues))
		for _, issue := range result.Issues {
			if issue.Severity != SeverityInfo {
				filtered = append(filtered, issue)
			}
		}
		result.Issues = filtered
		result.InfoCount = 0
	}

	return result, nil
}

// updateCounts updates the issue counts in the result.
func (c *Converter) updateCounts(result *Result) {
	result.InfoCount = 0
	result.WarningCount = 0
	result.CriticalCount = 0

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityInfo:
			result.InfoCount++
		case SeverityWarning:
			result.WarningCount++
		case SeverityCritical:
			result.CriticalCount++
		}
	}
}

// addIssue is a helper to add a conversion issue to the result.
func (c *Converter) addIssue(result *Result, path, message string, severity Severity) {
	result.Issues = append(result.Issues, Issue{
		Path:     path,
		Message:  message,
		Severity: severity,
	})
}

// addIssueWithContext is a helper to add a warning issue with context.
func (c *Converter) addIssueWithContext(result *Result, path, message, context string) {
	result.Issues = append(result.Issues, Issue{
		Path:     path,
		Message:  message,
		Severity: SeverityWarning,
		Context:  context,
	})
}
