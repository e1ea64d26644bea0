package document

import (
	"fmt"
	"io"

	"github.com/downspec/downspec/internal/options"
)

// Option is a function that configures a load operation.
type Option func(*loadConfig) error

// loadConfig holds configuration for a load operation.
type loadConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	// Source identification
	sourceName *string // Override SourcePath in the result

	logger Logger
}

// WithFilePath loads the document from a file on disk.
func WithFilePath(path string) Option {
	return func(cfg *loadConfig) error {
		if path == "" {
			return fmt.Errorf("file path cannot be empty")
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader loads the document from an io.Reader.
func WithReader(r io.Reader) Option {
	return func(cfg *loadConfig) error {
		if r == nil {
			return fmt.Errorf("reader cannot be nil")
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes loads the document from a byte slice.
func WithBytes(data []byte) Option {
	return func(cfg *loadConfig) error {
		if data == nil {
			return fmt.Errorf("bytes cannot be nil")
		}
		cfg.bytes = data
		return nil
	}
}

// WithSourceName overrides the SourcePath recorded on the result. Useful
// when loading from readers or byte slices where no path exists.
func WithSourceName(name string) Option {
	return func(cfg *loadConfig) error {
		if name == "" {
			return fmt.Errorf("source name cannot be empty")
		}
		cfg.sourceName = &name
		return nil
	}
}

// WithLogger sets the logger used during loading. Defaults to NopLogger.
func WithLogger(logger Logger) Option {
	return func(cfg *loadConfig) error {
		if logger == nil {
			return fmt.Errorf("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// applyOptions applies option functions and validates configuration.
func applyOptions(opts ...Option) (*loadConfig, error) {
	cfg := &loadConfig{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource(
		"document: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"document: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}
