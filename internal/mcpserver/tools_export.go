package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/oastables/export"
	"github.com/erraggy/oastables/internal/fileutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Export modes.
const (
	modeFull = "full"
	modeList = "list"
)

type exportTablesInput struct {
	Spec      specInput `json:"spec"                jsonschema:"The OAS document to export"`
	OutputDir string    `json:"output_dir"          jsonschema:"Directory to write files to (created if missing)"`
	Mode      string    `json:"mode,omitempty"      jsonschema:"full (default): every section plus a workbook; list: endpoint summary CSV only"`
	Workbook  string    `json:"workbook,omitempty"  jsonschema:"Workbook file name for mode=full (default <source-stem>_tables.xlsx)"`
	ListName  string    `json:"list_name,omitempty" jsonschema:"CSV file name for mode=list (default <source-stem>.csv)"`
	ExcelBOM  *bool     `json:"excel_bom,omitempty" jsonschema:"Prefix CSV files with a UTF-8 byte order mark (default from OASTABLES_EXCEL_BOM)"`
}

func handleExportTables(_ context.Context, _ *mcp.CallToolRequest, input exportTablesInput) (*mcp.CallToolResult, any, error) {
	if input.OutputDir == "" {
		return errResult(fmt.Errorf("output_dir is required")), nil, nil
	}
	mode := input.Mode
	if mode == "" {
		mode = modeFull
	}
	if mode != modeFull && mode != modeList {
		return errResult(fmt.Errorf("invalid mode %q: must be %s or %s", input.Mode, modeFull, modeList)), nil, nil
	}

	dir, err := fileutil.SanitizeOutputPath(input.OutputDir)
	if err != nil {
		return errResult(err), nil, nil
	}

	result, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), nil, nil
	}

	bom := cfg.ExcelBOM
	if input.ExcelBOM != nil {
		bom = *input.ExcelBOM
	}
	exp := export.New(
		export.WithOutputDir(dir),
		export.WithWorkbookName(input.Workbook),
		export.WithListName(input.ListName),
		export.WithExcelBOM(bom),
	)

	var manifest *export.Manifest
	if mode == modeList {
		manifest, err = exp.WriteList(result.Tables, input.Spec.sourcePath())
	} else {
		manifest, err = exp.WriteFull(result.Tables, input.Spec.sourcePath())
	}
	if err != nil {
		return errResult(err), nil, nil
	}
	return nil, manifest, nil
}
