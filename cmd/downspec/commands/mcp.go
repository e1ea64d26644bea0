package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/downspec/downspec/internal/cliutil"
	"github.com/downspec/downspec/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		output := fs.Output()
		cliutil.Writef(output, "Usage: downspec mcp\n\n")
		cliutil.Writef(output, "Run an MCP (Model Context Protocol) server over stdio.\n\n")
		cliutil.Writef(output, "The server exposes convert and inspect tools to MCP clients such as\n")
		cliutil.Writef(output, "agent tooling and editor integrations. It reads requests from stdin\n")
		cliutil.Writef(output, "and writes responses to stdout, so it is meant to be launched by an\n")
		cliutil.Writef(output, "MCP client rather than interactively.\n\n")
		cliutil.Writef(output, "Configuration is taken from DOWNSPEC_* environment variables:\n")
		cliutil.Writef(output, "  DOWNSPEC_CACHE_ENABLED        enable document caching (default: true)\n")
		cliutil.Writef(output, "  DOWNSPEC_CACHE_MAX_SIZE       maximum cached documents (default: 10)\n")
		cliutil.Writef(output, "  DOWNSPEC_CACHE_FILE_TTL       cache TTL for file documents (default: 15m)\n")
		cliutil.Writef(output, "  DOWNSPEC_CACHE_CONTENT_TTL    cache TTL for inline content (default: 15m)\n")
		cliutil.Writef(output, "  DOWNSPEC_MAX_INLINE_SIZE      maximum inline content bytes (default: 10485760)\n")
		cliutil.Writef(output, "  DOWNSPEC_CONVERT_STRICT       fail conversions on warnings (default: false)\n")
		cliutil.Writef(output, "  DOWNSPEC_CONVERT_INCLUDE_INFO include informational issues (default: true)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client closes the
// stdio transport or the process receives an interrupt.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcpserver.Run(ctx)
}
