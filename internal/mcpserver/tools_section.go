package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/erraggy/oastables/extract"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type extractSectionInput struct {
	Spec    specInput `json:"spec"              jsonschema:"The OAS document to read"`
	Section string    `json:"section,omitempty" jsonschema:"Section to extract: endpoints\\, parameters\\, responses\\, tags\\, models\\, schemas or security. Omit for per-section row counts."`
	Limit   int       `json:"limit,omitempty"   jsonschema:"Maximum number of rows to return (default 100)"`
	Offset  int       `json:"offset,omitempty"  jsonschema:"Skip the first N rows (for pagination)"`
}

type extractSectionOutput struct {
	Version  string                `json:"version"`
	Section  string                `json:"section,omitempty"`
	Columns  []string              `json:"columns,omitempty"`
	Total    int                   `json:"total"`
	Returned int                   `json:"returned"`
	Rows     []map[string]string   `json:"rows,omitempty"`
	Sections []extract.SectionStat `json:"sections,omitempty"`
}

func handleExtractSection(_ context.Context, _ *mcp.CallToolRequest, input extractSectionInput) (*mcp.CallToolResult, any, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	if input.Section == "" {
		stats := result.Tables.Stats()
		total := 0
		for _, s := range stats {
			total += s.Rows
		}
		return nil, extractSectionOutput{
			Version:  result.Loaded.Version,
			Total:    total,
			Sections: stats,
		}, nil
	}

	table, ok := result.Tables.Table(strings.ToLower(input.Section))
	if !ok {
		return errResult(fmt.Errorf("unknown section %q; valid sections: %s",
			input.Section, strings.Join(extract.Sections(), ", "))), nil, nil
	}

	rows := paginate(table.Records(), input.Offset, input.Limit)
	return nil, extractSectionOutput{
		Version:  result.Loaded.Version,
		Section:  table.Name,
		Columns:  table.Columns,
		Total:    table.Len(),
		Returned: len(rows),
		Rows:     rows,
	}, nil
}
