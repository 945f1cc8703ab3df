// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oastables extraction and export as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/oastables"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `oastables MCP server: flattens OpenAPI 2.0/3.x JSON documents into tables (endpoints, parameters, responses, tags, models, schemas, security) and exports them as CSV files and an xlsx workbook.

Configuration: All defaults are configurable via OASTABLES_* environment variables set in your MCP client config.

Key settings:
- OASTABLES_CACHE_ENABLED (default: true): cache loaded specs per session
- OASTABLES_CACHE_TTL (default: 15m): cache TTL for loaded specs
- OASTABLES_ROW_LIMIT (default: 100): default row limit for list_endpoints and extract_section
- OASTABLES_LENIENT (default: false): salvage documents wrapped in non-JSON text
- OASTABLES_EXCEL_BOM (default: false): prefix exported CSV files with a UTF-8 byte order mark

Caching: File entries use path+mtime as key (auto-invalidated on change). Content entries are keyed by hash.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oastables", Version: oastables.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List the endpoints of an OpenAPI document: one row per path and HTTP method with operationId, summary, tags, parameters, response codes and effective security. Filter by tag, method or path substring. Use offset/limit to paginate. The default limit is configurable via OASTABLES_ROW_LIMIT.",
	}, handleListEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_section",
		Description: "Extract one section of an OpenAPI document as a table. Sections: endpoints, parameters, responses, tags, models, schemas, security. Returns the column names and one record per row. Omit section to get the row count of every section.",
	}, handleExtractSection)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "export_tables",
		Description: "Export an OpenAPI document to disk. mode=full writes one CSV per section plus an xlsx workbook with one sheet per section; mode=list writes a single CSV of endpoint summaries. Requires output_dir. Returns a manifest of written files.",
	}, handleExportTables)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.RowLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.RowLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
