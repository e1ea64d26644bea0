package commands

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/downspec/downspec/converter"
	"github.com/downspec/downspec/document"
	"github.com/downspec/downspec/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Output     string
	Stdout     bool
	Strict     bool
	NoWarnings bool
	Quiet      bool
	JSON       bool
	YAML       bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: <input>-swagger.<ext> next to the input)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: <input>-swagger.<ext> next to the input)")
	fs.BoolVar(&flags.Stdout, "stdout", false, "write the converted document to stdout instead of a file")
	fs.BoolVar(&flags.Strict, "strict", false, "fail on any conversion issues (even warnings)")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress informational conversion messages")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.JSON, "json", false, "write the converted document as JSON regardless of the input format")
	fs.BoolVar(&flags.YAML, "yaml", false, "write the converted document as YAML regardless of the input format")

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: downspec convert [flags] <file|->\n\n")
		cliutil.Writef(output, "Convert an OpenAPI 3.0 document to Swagger 2.0.\n\n")
		cliutil.Writef(output, "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(output, "\nExamples:\n")
		cliutil.Writef(output, "  downspec convert openapi.yaml\n")
		cliutil.Writef(output, "  downspec convert -o swagger.yaml openapi.yaml\n")
		cliutil.Writef(output, "  downspec convert --strict --no-warnings openapi.json\n")
		cliutil.Writef(output, "  downspec convert --json openapi.yaml\n")
		cliutil.Writef(output, "  cat openapi.yaml | downspec convert -q - > swagger.yaml\n")
		cliutil.Writef(output, "\nPipelining:\n")
		cliutil.Writef(output, "  - Use '-' as the file path to read from stdin\n")
		cliutil.Writef(output, "  - Reading from stdin writes the document to stdout unless -o is given\n")
		cliutil.Writef(output, "  - Use --quiet/-q to suppress diagnostic output for pipelining\n")
		cliutil.Writef(output, "\nNotes:\n")
		cliutil.Writef(output, "  - Critical issues indicate features that cannot be converted (data loss)\n")
		cliutil.Writef(output, "  - Warnings indicate lossy conversions where a representative value was kept\n")
		cliutil.Writef(output, "  - Info messages provide context about conversion choices\n")
		cliutil.Writef(output, "  - The output format follows the input format unless --json or --yaml is set\n")
		cliutil.Writef(output, "\nExit Codes:\n")
		cliutil.Writef(output, "  0    Conversion successful\n")
		cliutil.Writef(output, "  1    Conversion failed or critical issues found\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("convert command requires exactly one file path or '-' for stdin")
	}

	if flags.JSON && flags.YAML {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	inputPath := fs.Arg(0)

	// Create converter with options
	c := converter.New()
	c.StrictMode = flags.Strict
	c.IncludeInfo = !flags.NoWarnings

	var result *converter.Result
	var err error

	if inputPath == cliutil.StdinPath {
		result, err = c.ConvertWithOptions(
			converter.WithReader(os.Stdin),
			converter.WithSourceName(cliutil.DisplayPath(inputPath)),
		)
	} else {
		result, err = c.Convert(inputPath)
	}
	if err != nil {
		// Strict mode returns the result alongside the error so the
		// issues that tripped it can still be shown.
		if result != nil && !flags.Quiet {
			printIssues(result)
		}
		return fmt.Errorf("converting %s: %w", cliutil.DisplayPath(inputPath), err)
	}

	if !flags.Quiet {
		printIssues(result)
	}

	outputFormat := result.SourceFormat
	switch {
	case flags.JSON:
		outputFormat = document.SourceFormatJSON
	case flags.YAML:
		outputFormat = document.SourceFormatYAML
	}

	data, err := result.Document.Marshal(outputFormat)
	if err != nil {
		return fmt.Errorf("marshaling converted document: %w", err)
	}

	// Stdin input defaults to stdout output since there is no input path
	// to derive a file name from.
	toStdout := flags.Stdout || (flags.Output == "" && inputPath == cliutil.StdinPath)

	if toStdout {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing converted document to stdout: %w", err)
		}
	} else {
		outputPath := flags.Output
		if outputPath == "" {
			outputPath = DefaultOutputPath(inputPath, outputFormat)
		}
		if err := ValidateOutputPath(outputPath, inputPath); err != nil {
			return err
		}
		if err := os.WriteFile(outputPath, data, 0600); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
		if !flags.Quiet {
			cliutil.Writef(os.Stderr, "Converted %s -> %s\n", cliutil.DisplayPath(inputPath), outputPath)
		}
	}

	// Exit with error if conversion found critical issues
	if !result.Success {
		os.Exit(1)
	}

	return nil
}

// printIssues writes the conversion issue list to stderr.
func printIssues(result *converter.Result) {
	if len(result.Issues) == 0 {
		return
	}
	cliutil.Writef(os.Stderr, "Conversion Issues (%d):\n", len(result.Issues))
	for _, issue := range result.Issues {
		cliutil.Writef(os.Stderr, "  %s\n", issue.String())
	}
}
