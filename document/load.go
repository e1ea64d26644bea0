package document

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/downspec/downspec/specerrors"
)

// Loader reads API documents into ordered node trees.
// The zero value is usable; New is provided for symmetry with the rest of
// the module.
type Loader struct {
	// Logger receives debug information about loading.
	// Defaults to NopLogger when nil.
	Logger Logger
}

// New creates a Loader with default settings.
func New() *Loader {
	return &Loader{}
}

func (l *Loader) log() Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return NopLogger{}
}

// Load reads and parses the document at path with default settings.
func Load(path string) (*Document, error) {
	return New().Load(path)
}

// LoadWithOptions loads a document using functional options.
//
// Example:
//
//	doc, err := document.LoadWithOptions(
//	    document.WithBytes(data),
//	    document.WithSourceName("api.yaml"),
//	)
func LoadWithOptions(opts ...Option) (*Document, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("document: invalid options: %w", err)
	}

	l := &Loader{Logger: cfg.logger}

	var doc *Document
	switch {
	case cfg.filePath != nil:
		doc, err = l.Load(*cfg.filePath)
	case cfg.reader != nil:
		doc, err = l.LoadReader(cfg.reader)
	default:
		doc, err = l.LoadBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		doc.SourcePath = *cfg.sourceName
	}
	return doc, nil
}

// Load reads and parses the document at path.
func (l *Loader) Load(path string) (*Document, error) {
	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &specerrors.ParseError{Path: path, Message: "reading file", Cause: err}
	}

	doc, err := l.parse(data, path, detectFormatFromPath(path))
	if err != nil {
		return nil, err
	}
	doc.LoadTime = time.Since(start)
	return doc, nil
}

// LoadReader reads and parses a document from r.
func (l *Loader) LoadReader(r io.Reader) (*Document, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &specerrors.ParseError{Path: "LoadReader", Message: "reading source", Cause: err}
	}

	doc, err := l.parse(data, "", SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	doc.SourcePath = "LoadReader" + doc.SourceFormat.Ext()
	doc.LoadTime = time.Since(start)
	return doc, nil
}

// LoadBytes parses a document from a byte slice.
func (l *Loader) LoadBytes(data []byte) (*Document, error) {
	start := time.Now()
	doc, err := l.parse(data, "", SourceFormatUnknown)
	if err != nil {
		return nil, err
	}
	doc.SourcePath = "LoadBytes" + doc.SourceFormat.Ext()
	doc.LoadTime = time.Since(start)
	return doc, nil
}

// parse normalizes, format-detects, and unmarshals source text into a
// Document. sourcePath is used for error reporting only.
func (l *Loader) parse(data []byte, sourcePath string, format SourceFormat) (*Document, error) {
	normalized, err := normalizeEncoding(data)
	if err != nil {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: "decoding source text", Cause: err}
	}

	if format == SourceFormatUnknown {
		format = detectFormatFromContent(normalized)
	}
	if format == SourceFormatUnknown {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: "empty document"}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(normalized, &root); err != nil {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: fmt.Sprintf("invalid %s", format), Cause: err}
	}

	body := Unwrap(&root)
	if body == nil || body.Kind == 0 || (body.Kind == yaml.ScalarNode && body.Tag == tagNull) {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: "empty document"}
	}
	if body.Kind != yaml.MappingNode {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: "document root must be a mapping"}
	}

	if err := expandAliases(body, make(map[*yaml.Node]bool)); err != nil {
		return nil, &specerrors.ParseError{Path: sourcePath, Message: "expanding anchors", Cause: err}
	}

	doc := &Document{
		Root:         body,
		SourcePath:   sourcePath,
		SourceFormat: format,
		SourceSize:   int64(len(data)),
		Version:      detectVersion(body),
	}

	l.log().Debug("parsed document",
		"source", sourcePath,
		"format", string(format),
		"bytes", doc.SourceSize,
		"version", doc.Version)

	return doc, nil
}

// expandAliases rewrites alias nodes to their anchor targets in place, so
// the tree reads like the fully expanded document and anchors never leak
// into converted output. Self-referential anchors cannot be expanded into
// a finite tree and are rejected.
func expandAliases(n *yaml.Node, active map[*yaml.Node]bool) error {
	if n == nil {
		return nil
	}
	if active[n] {
		return fmt.Errorf("recursive alias via anchor %q", n.Anchor)
	}
	active[n] = true
	defer delete(active, n)

	for i, child := range n.Content {
		if child != nil && child.Kind == yaml.AliasNode {
			if child.Alias == nil {
				return fmt.Errorf("unresolved alias %q", child.Value)
			}
			child = child.Alias
			n.Content[i] = child
		}
		if err := expandAliases(child, active); err != nil {
			return err
		}
	}
	n.Anchor = ""
	return nil
}
