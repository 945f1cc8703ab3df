package mcpserver

import (
	"context"
	"strings"

	"github.com/erraggy/oastables/extract"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listEndpointsInput struct {
	Spec   specInput `json:"spec"             jsonschema:"The OAS document to read"`
	Tag    string    `json:"tag,omitempty"    jsonschema:"Only endpoints carrying this tag (case-insensitive)"`
	Method string    `json:"method,omitempty" jsonschema:"Only endpoints with this HTTP method (case-insensitive)"`
	Path   string    `json:"path,omitempty"   jsonschema:"Only endpoints whose path contains this substring"`
	Limit  int       `json:"limit,omitempty"  jsonschema:"Maximum number of endpoints to return (default 100)"`
	Offset int       `json:"offset,omitempty" jsonschema:"Skip the first N endpoints (for pagination)"`
}

type endpointSummary struct {
	Method      string   `json:"method"`
	Path        string   `json:"path"`
	OperationID string   `json:"operation_id,omitempty"`
	Summary     string   `json:"summary,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
	Parameters  []string `json:"parameters,omitempty"`
	Responses   []string `json:"responses,omitempty"`
	Security    []string `json:"security,omitempty"`
}

type listEndpointsOutput struct {
	Version   string            `json:"version"`
	Total     int               `json:"total"`
	Matched   int               `json:"matched"`
	Returned  int               `json:"returned"`
	Endpoints []endpointSummary `json:"endpoints,omitempty"`
}

func handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, input listEndpointsInput) (*mcp.CallToolResult, any, error) {
	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	all := result.Tables.Endpoints
	matched := filterEndpoints(all, input)
	returned := paginate(matched, input.Offset, input.Limit)

	output := listEndpointsOutput{
		Version:  result.Loaded.Version,
		Total:    len(all),
		Matched:  len(matched),
		Returned: len(returned),
	}
	for _, op := range returned {
		output.Endpoints = append(output.Endpoints, endpointSummary{
			Method:      op.Method,
			Path:        op.Path,
			OperationID: op.OperationID,
			Summary:     op.Summary,
			Tags:        op.Tags,
			Deprecated:  op.Deprecated,
			Parameters:  op.Parameters,
			Responses:   op.Responses,
			Security:    op.Security,
		})
	}
	return nil, output, nil
}

func filterEndpoints(ops []extract.Operation, input listEndpointsInput) []extract.Operation {
	var matched []extract.Operation
	for _, op := range ops {
		if input.Method != "" && !strings.EqualFold(op.Method, input.Method) {
			continue
		}
		if input.Path != "" && !strings.Contains(op.Path, input.Path) {
			continue
		}
		if input.Tag != "" && !hasTag(op.Tags, input.Tag) {
			continue
		}
		matched = append(matched, op)
	}
	return matched
}

func hasTag(tags []string, want string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}
