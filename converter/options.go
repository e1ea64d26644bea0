package converter

import (
	"fmt"
	"io"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/options"
)

// Option is a function that configures a conversion operation.
type Option func(*convertConfig) error

// convertConfig holds configuration for a conversion operation.
type convertConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	document *document.Document

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// WithFilePath converts the document at a file path.
func WithFilePath(path string) Option {
	return func(cfg *convertConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader converts a document read from r.
func WithReader(r io.Reader) Option {
	return func(cfg *convertConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes converts a document parsed from a byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *convertConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithDocument converts an already-loaded document, skipping the loader.
func WithDocument(doc *document.Document) Option {
	return func(cfg *convertConfig) error {
		if doc == nil {
			return fmt.Errorf("document cannot be nil")
		}
		cfg.document = doc
		return nil
	}
}

// WithSourceName overrides the SourcePath recorded on the result. Useful
// when converting from readers or byte slices where no path exists.
func WithSourceName(name string) Option {
	return func(cfg *convertConfig) error {
		if name == "" {
			return fmt.Errorf("source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*convertConfig, error) {
	cfg := &convertConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"converter: must specify an input source (use WithFilePath, WithReader, WithBytes, or WithDocument)",
		"converter: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.document != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}
