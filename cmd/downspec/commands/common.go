// Package commands provides CLI command handlers for downspec.
package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/cliutil"
)

// DefaultOutputPath derives the output path for a converted document from
// the input path: the input extension is replaced by "-swagger" plus the
// conventional extension for the output format, keeping the file next to
// its source.
func DefaultOutputPath(inputPath string, format document.SourceFormat) string {
	base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
	return base + "-swagger" + format.Ext()
}

// ValidateOutputPath checks that the output path is safe to write to. It
// refuses to overwrite the input file and warns on stderr when the output
// file already exists.
func ValidateOutputPath(outputPath, inputPath string) error {
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	if inputPath != cliutil.StdinPath {
		absInput, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutput == absInput {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	if _, err := os.Stat(outputPath); err == nil {
		cliutil.Writef(os.Stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}

	return nil
}
