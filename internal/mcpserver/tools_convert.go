package mcpserver

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/downspec/downspec/converter"
)

type convertInput struct {
	Doc         documentInput `json:"doc"                    jsonschema:"The OpenAPI 3.0 document to convert"`
	Strict      *bool         `json:"strict,omitempty"       jsonschema:"Fail the conversion when any warning or critical issue is found"`
	IncludeInfo *bool         `json:"include_info,omitempty" jsonschema:"Include informational issues in the result"`
	Output      string        `json:"output,omitempty"       jsonschema:"File path to write the converted document. If omitted the document is returned inline."`
}

type convertIssue struct {
	Severity string `json:"severity"`
	Path     string `json:"path"`
	Message  string `json:"message"`
	Context  string `json:"context,omitempty"`
}

type convertOutput struct {
	SourceVersion string         `json:"source_version"`
	Format        string         `json:"format"`
	Success       bool           `json:"success"`
	InfoCount     int            `json:"info_count"`
	WarningCount  int            `json:"warning_count"`
	CriticalCount int            `json:"critical_count"`
	Issues        []convertIssue `json:"issues,omitempty"`
	WrittenTo     string         `json:"written_to,omitempty"`
	Document      string         `json:"document,omitempty"`
}

func handleConvert(_ context.Context, _ *mcp.CallToolRequest, input convertInput) (*mcp.CallToolResult, convertOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	strict := cfg.ConvertStrict
	if input.Strict != nil {
		strict = *input.Strict
	}
	includeInfo := cfg.ConvertIncludeInfo
	if input.IncludeInfo != nil {
		includeInfo = *input.IncludeInfo
	}

	doc, err := input.Doc.resolve()
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	conv := &converter.Converter{StrictMode: strict, IncludeInfo: includeInfo}
	result, err := conv.ConvertDocument(doc)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	output := convertOutput{
		SourceVersion: result.SourceVersion,
		Format:        string(result.SourceFormat),
		Success:       result.Success,
		InfoCount:     result.InfoCount,
		WarningCount:  result.WarningCount,
		CriticalCount: result.CriticalCount,
	}

	output.Issues = makeSlice[convertIssue](len(result.Issues))
	for _, issue := range result.Issues {
		output.Issues = append(output.Issues, convertIssue{
			Severity: issue.Severity.String(),
			Path:     issue.Path,
			Message:  issue.Message,
			Context:  issue.Context,
		})
	}

	// Emit in the source format: YAML in, YAML out; JSON in, JSON out.
	data, err := result.Document.Marshal(result.SourceFormat)
	if err != nil {
		return errResult(err), convertOutput{}, nil
	}

	if input.Output != "" {
		if err := os.WriteFile(input.Output, data, 0o644); err != nil {
			return errResult(fmt.Errorf("failed to write output file: %w", err)), convertOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		output.Document = string(data)
	}

	return nil, output, nil
}
