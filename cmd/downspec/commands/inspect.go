package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/cliutil"
)

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
func SetupInspectFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: downspec inspect <file|->\n\n")
		cliutil.Writef(output, "Show a structural summary of an OpenAPI or Swagger document.\n\n")
		cliutil.Writef(output, "Examples:\n")
		cliutil.Writef(output, "  downspec inspect openapi.yaml\n")
		cliutil.Writef(output, "  downspec inspect swagger.json\n")
		cliutil.Writef(output, "  cat openapi.yaml | downspec inspect -\n")
	}

	return fs
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	fs := SetupInspectFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path or '-' for stdin")
	}

	inputPath := fs.Arg(0)

	var doc *document.Document
	var err error

	if inputPath == cliutil.StdinPath {
		doc, err = document.LoadWithOptions(
			document.WithReader(os.Stdin),
			document.WithSourceName(cliutil.DisplayPath(inputPath)),
		)
	} else {
		doc, err = document.Load(inputPath)
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", cliutil.DisplayPath(inputPath), err)
	}

	stats := doc.Stats()

	cliutil.Writef(os.Stdout, "Document: %s\n", cliutil.DisplayPath(inputPath))
	cliutil.Writef(os.Stdout, "Title: %s\n", doc.Title())
	cliutil.Writef(os.Stdout, "Version: %s\n", doc.Version)
	cliutil.Writef(os.Stdout, "Format: %s\n", doc.SourceFormat)
	cliutil.Writef(os.Stdout, "Source Size: %s\n", document.FormatBytes(doc.SourceSize))
	cliutil.Writef(os.Stdout, "Paths: %d\n", stats.PathCount)
	cliutil.Writef(os.Stdout, "Operations: %d\n", stats.OperationCount)
	cliutil.Writef(os.Stdout, "Schemas: %d\n", stats.SchemaCount)

	return nil
}
