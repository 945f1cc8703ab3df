package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/oastables/internal/mcpserver"
)

// HandleMCP starts the MCP server over stdio and blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: oastables mcp\n\n")
		Writef(output, "Start an MCP server over stdio exposing list_endpoints, extract_section\n")
		Writef(output, "and export_tables. Defaults are read from OASTABLES_* environment variables.\n")
	}
	if stop, err := parseArgs(fs, args); stop {
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
