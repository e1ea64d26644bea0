package main

import (
	"fmt"
	"os"

	"github.com/downspec/downspec"
	"github.com/downspec/downspec/cmd/downspec/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("downspec v%s\n", downspec.Version())
	case "help", "-h", "--help":
		printUsage()
	case "convert":
		if err := commands.HandleConvert(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "inspect":
		if err := commands.HandleInspect(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	known := []string{"convert", "inspect", "mcp", "version", "help"}

	best := ""
	bestDistance := 3
	for _, cmd := range known {
		if d := editDistance(input, cmd); d < bestDistance {
			best = cmd
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if a == b {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`downspec - OpenAPI 3.0 to Swagger 2.0 converter

Usage:
  downspec <command> [options]

Commands:
  convert     Convert an OpenAPI 3.0 document to Swagger 2.0
  inspect     Show a structural summary of an OpenAPI or Swagger document
  mcp         Run an MCP server over stdio exposing convert and inspect tools
  version     Show version information
  help        Show this help message

Examples:
  downspec convert openapi.yaml
  downspec convert -o swagger.yaml openapi.yaml
  downspec convert --strict openapi.json
  cat openapi.yaml | downspec convert -q - > swagger.yaml
  downspec inspect openapi.yaml

Run 'downspec <command> --help' for more information on a command.`)
}
